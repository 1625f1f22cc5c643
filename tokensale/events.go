/*
SPDX-License-Identifier: Apache-2.0
*/

package tokensale

import (
	"encoding/json"
	"fmt"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

type ZAPPBoughtEvent struct {
	Buyer        string `json:"buyer"`
	ETH          string `json:"eth"`
	ZAPP         string `json:"zapp"`
	ReferralCode string `json:"referralCode,omitempty"`
}

// ETHRefundedEvent records an outbound ETH payment the bridge has to make:
// the excess of a partial fill, or a failed-raise refund.
type ETHRefundedEvent struct {
	Wallet string `json:"wallet"`
	ETH    string `json:"eth"`
	Reason string `json:"reason"`
}

type HunterRegisteredEvent struct {
	Hunter        string `json:"hunter"`
	Code          string `json:"code"`
	RegisterBonus string `json:"registerBonus"`
}

type TokenSaleEndedEvent struct {
	RaisedETH string `json:"raisedETH"`
	SoldZAPP  string `json:"soldZAPP"`
}

type ZAPPContractSetEvent struct {
	Contract string `json:"contract"`
}

type ZAPPClaimedEvent struct {
	Wallet string `json:"wallet"`
	ZAPP   string `json:"zapp"`
}

type ETHClaimedEvent struct {
	To  string `json:"to"`
	ETH string `json:"eth"`
}

func emitEvent(sdk kalpsdk.TransactionContextInterface, name string, payload interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = sdk.SetEvent(name, payloadJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

func EmitZAPPBought(sdk kalpsdk.TransactionContextInterface, buyer, eth, zapp, code string) error {
	return emitEvent(sdk, zappBoughtEvent, ZAPPBoughtEvent{
		Buyer:        buyer,
		ETH:          eth,
		ZAPP:         zapp,
		ReferralCode: code,
	})
}

func EmitETHRefunded(sdk kalpsdk.TransactionContextInterface, wallet, eth, reason string) error {
	return emitEvent(sdk, ethRefundedEvent, ETHRefundedEvent{
		Wallet: wallet,
		ETH:    eth,
		Reason: reason,
	})
}

func EmitHunterRegistered(sdk kalpsdk.TransactionContextInterface, hunter, code, registerBonus string) error {
	return emitEvent(sdk, hunterRegisteredEvent, HunterRegisteredEvent{
		Hunter:        hunter,
		Code:          code,
		RegisterBonus: registerBonus,
	})
}

func EmitTokenSaleEnded(sdk kalpsdk.TransactionContextInterface, raisedETH, soldZAPP string) error {
	return emitEvent(sdk, tokenSaleEndedEvent, TokenSaleEndedEvent{
		RaisedETH: raisedETH,
		SoldZAPP:  soldZAPP,
	})
}

func EmitZAPPContractSet(sdk kalpsdk.TransactionContextInterface, contract string) error {
	return emitEvent(sdk, zappContractEvent, ZAPPContractSetEvent{
		Contract: contract,
	})
}

func EmitZAPPClaimed(sdk kalpsdk.TransactionContextInterface, wallet, zapp string) error {
	return emitEvent(sdk, zappClaimedEvent, ZAPPClaimedEvent{
		Wallet: wallet,
		ZAPP:   zapp,
	})
}

func EmitETHClaimed(sdk kalpsdk.TransactionContextInterface, to, eth string) error {
	return emitEvent(sdk, ethClaimedEvent, ETHClaimedEvent{
		To:  to,
		ETH: eth,
	})
}
