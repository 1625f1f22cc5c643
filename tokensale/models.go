/*
SPDX-License-Identifier: Apache-2.0
*/

package tokensale

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// SaleConfig is written once by Initialize and never mutated. Amounts are
// base-10 strings of integers: ZAPP amounts carry 18 decimals, USD prices
// carry priceDecimals decimals, bonus percentages carry BonusDecimals
// decimals (the deployment variants disagree on 6 vs 8, so the scale is
// part of the configuration).
type SaleConfig struct {
	OpeningTime          uint64   `json:"openingTime"`
	ClosingTime          uint64   `json:"closingTime"`
	ClaimTime            uint64   `json:"claimTime"`
	SoftCap              string   `json:"softCap"`
	HardCap              string   `json:"hardCap"`
	ZAPPPrice            string   `json:"zappPrice"`
	OracleChaincode      string   `json:"oracleChaincode"`
	ReferrerMin          string   `json:"referrerMin"`
	RefereeMin           string   `json:"refereeMin"`
	ReferralBonus        string   `json:"referralBonus"`
	RankRewards          []string `json:"rankRewards"`
	EarlyAdoptionEndTime uint64   `json:"earlyAdoptionEndTime"`
	EarlyAdoptionBonus   string   `json:"earlyAdoptionBonus"`
	MaxHunters           uint64   `json:"maxHunters"`
	RegisterBonus        string   `json:"registerBonus"`
	BonusDecimals        uint64   `json:"bonusDecimals"`
}

// SaleState is the single mutable aggregate of the sale. Every mutating
// operation loads it, updates it and stores it back within one transaction.
type SaleState struct {
	Owner              string `json:"owner"`
	ZAPPContract       string `json:"zappContract"`
	Ended              bool   `json:"ended"`
	RaisedETH          string `json:"raisedETH"`
	ETHBalance         string `json:"ethBalance"`
	SoldZAPP           string `json:"soldZAPP"`
	EarlyAdoptionZAPP  string `json:"earlyAdoptionZAPP"`
	WithoutCodeZAPP    string `json:"withoutCodeZAPP"`
	ReferredZAPP       string `json:"referredZAPP"`
	HunterReferredZAPP string `json:"hunterReferredZAPP"`
	HunterCount        uint64 `json:"hunterCount"`
}

// Contribution is one buyer's ledger record, created on first purchase or
// hunter registration. Claimed guards the exactly-once settlement.
type Contribution struct {
	ZAPP              string `json:"zapp"`
	ETH               string `json:"eth"`
	EarlyAdopterBonus string `json:"earlyAdopterBonus"`
	RefereeBonus      string `json:"refereeBonus"`
	ReferrerBonus     string `json:"referrerBonus"`
	Claimed           bool   `json:"claimed"`
}

// Hunter is a registered referrer. Ordinal is the registration order and
// breaks leaderboard ties in favour of the earlier registration.
type Hunter struct {
	Code         string `json:"code"`
	ReferredZAPP string `json:"referredZAPP"`
	Ordinal      uint64 `json:"ordinal"`
}

type LeaderboardEntry struct {
	Address      string `json:"address"`
	ReferredZAPP string `json:"referredZAPP"`
	Ordinal      uint64 `json:"ordinal"`
}

func GetSaleConfig(ctx kalpsdk.TransactionContextInterface) (*SaleConfig, error) {
	configAsBytes, err := ctx.GetState(saleConfigKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to get sale config", err)
	}
	if configAsBytes == nil {
		return nil, NewCustomError(http.StatusInternalServerError, "sale config does not exist", nil)
	}

	var config SaleConfig
	err = json.Unmarshal(configAsBytes, &config)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal sale config", err)
	}

	return &config, nil
}

func SetSaleConfig(ctx kalpsdk.TransactionContextInterface, config *SaleConfig) error {
	configAsBytes, err := json.Marshal(config)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal sale config", err)
	}

	err = ctx.PutStateWithoutKYC(saleConfigKey, configAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set sale config", err)
	}

	return nil
}

func GetSaleState(ctx kalpsdk.TransactionContextInterface) (*SaleState, error) {
	stateAsBytes, err := ctx.GetState(saleStateKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to get sale state", err)
	}
	if stateAsBytes == nil {
		return nil, NewCustomError(http.StatusInternalServerError, "sale state does not exist", nil)
	}

	var state SaleState
	err = json.Unmarshal(stateAsBytes, &state)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal sale state", err)
	}

	return &state, nil
}

func SetSaleState(ctx kalpsdk.TransactionContextInterface, state *SaleState) error {
	stateAsBytes, err := json.Marshal(state)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal sale state", err)
	}

	err = ctx.PutStateWithoutKYC(saleStateKey, stateAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set sale state", err)
	}

	return nil
}

// GetContribution returns the buyer's ledger record, or a zeroed record if
// the buyer has not taken part yet.
func GetContribution(ctx kalpsdk.TransactionContextInterface, wallet string) (*Contribution, error) {
	buyerKey := buyerKeyPrefix + wallet
	buyerAsBytes, err := ctx.GetState(buyerKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get buyer with Key %s", buyerKey), err)
	}
	if buyerAsBytes == nil {
		return &Contribution{
			ZAPP:              "0",
			ETH:               "0",
			EarlyAdopterBonus: "0",
			RefereeBonus:      "0",
			ReferrerBonus:     "0",
		}, nil
	}

	var contribution Contribution
	err = json.Unmarshal(buyerAsBytes, &contribution)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal buyer", err)
	}

	return &contribution, nil
}

func SetContribution(ctx kalpsdk.TransactionContextInterface, wallet string, contribution *Contribution) error {
	buyerKey := buyerKeyPrefix + wallet
	buyerAsBytes, err := json.Marshal(contribution)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal buyer", err)
	}

	err = ctx.PutStateWithoutKYC(buyerKey, buyerAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set buyer with Key %s", buyerKey), err)
	}

	return nil
}

// GetHunter returns nil without error when the wallet never registered.
func GetHunter(ctx kalpsdk.TransactionContextInterface, wallet string) (*Hunter, error) {
	hunterKey := hunterKeyPrefix + wallet
	hunterAsBytes, err := ctx.GetState(hunterKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get hunter with Key %s", hunterKey), err)
	}
	if hunterAsBytes == nil {
		return nil, nil
	}

	var hunter Hunter
	err = json.Unmarshal(hunterAsBytes, &hunter)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal hunter", err)
	}

	return &hunter, nil
}

func SetHunter(ctx kalpsdk.TransactionContextInterface, wallet string, hunter *Hunter) error {
	hunterKey := hunterKeyPrefix + wallet
	hunterAsBytes, err := json.Marshal(hunter)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal hunter", err)
	}

	err = ctx.PutStateWithoutKYC(hunterKey, hunterAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set hunter with Key %s", hunterKey), err)
	}

	return nil
}

// getCodeOwner maps a referral code to the owning hunter's wallet, or ""
// when the code is unknown.
func getCodeOwner(ctx kalpsdk.TransactionContextInterface, code string) (string, error) {
	codeKey := refCodeKeyPrefix + code
	ownerAsBytes, err := ctx.GetState(codeKey)
	if err != nil {
		return "", NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get referral code with Key %s", codeKey), err)
	}

	return string(ownerAsBytes), nil
}

func setCodeOwner(ctx kalpsdk.TransactionContextInterface, code, wallet string) error {
	codeKey := refCodeKeyPrefix + code
	err := ctx.PutStateWithoutKYC(codeKey, []byte(wallet))
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set referral code with Key %s", codeKey), err)
	}

	return nil
}

func GetLeaderboard(ctx kalpsdk.TransactionContextInterface) ([]LeaderboardEntry, error) {
	leaderboardAsBytes, err := ctx.GetState(leaderboardKey)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to get leaderboard", err)
	}
	if leaderboardAsBytes == nil {
		return []LeaderboardEntry{}, nil
	}

	var leaderboard []LeaderboardEntry
	err = json.Unmarshal(leaderboardAsBytes, &leaderboard)
	if err != nil {
		return nil, NewCustomError(http.StatusInternalServerError, "failed to unmarshal leaderboard", err)
	}

	return leaderboard, nil
}

func SetLeaderboard(ctx kalpsdk.TransactionContextInterface, leaderboard []LeaderboardEntry) error {
	leaderboardAsBytes, err := json.Marshal(leaderboard)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal leaderboard", err)
	}

	err = ctx.PutStateWithoutKYC(leaderboardKey, leaderboardAsBytes)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set leaderboard", err)
	}

	return nil
}
