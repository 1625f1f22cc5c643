/*
SPDX-License-Identifier: Apache-2.0
*/

package tokensale

import (
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// The phase clock is a pure function of the transaction timestamp, the
// configured milestones and the ended flag. Phases are never stored; they
// are re-evaluated on every read.

func isOpenAt(config *SaleConfig, state *SaleState, now uint64) bool {
	return !state.Ended && now >= config.OpeningTime && now < config.ClosingTime
}

func isClosedAt(config *SaleConfig, state *SaleState, now uint64) bool {
	return state.Ended || now >= config.ClosingTime
}

func isEarlyAdoptionActiveAt(config *SaleConfig, state *SaleState, now uint64) bool {
	return isOpenAt(config, state, now) && now < config.EarlyAdoptionEndTime
}

func isClaimableAt(config *SaleConfig, state *SaleState, now uint64) bool {
	return state.Ended && now >= config.ClaimTime
}

// txTime reads the consensus timestamp of the running transaction.
func txTime(ctx kalpsdk.TransactionContextInterface) (uint64, error) {
	timestamp, err := ctx.GetTxTimestamp()
	if err != nil {
		return 0, NewCustomError(http.StatusInternalServerError, "failed to get transaction timestamp", err)
	}

	return uint64(timestamp.Seconds), nil
}

func loadSale(ctx kalpsdk.TransactionContextInterface) (*SaleConfig, *SaleState, uint64, error) {
	config, err := GetSaleConfig(ctx)
	if err != nil {
		return nil, nil, 0, err
	}

	state, err := GetSaleState(ctx)
	if err != nil {
		return nil, nil, 0, err
	}

	now, err := txTime(ctx)
	if err != nil {
		return nil, nil, 0, err
	}

	return config, state, now, nil
}

func (s *SmartContract) IsOpen(ctx kalpsdk.TransactionContextInterface) (bool, error) {
	config, state, now, err := loadSale(ctx)
	if err != nil {
		return false, err
	}

	return isOpenAt(config, state, now), nil
}

func (s *SmartContract) IsClosed(ctx kalpsdk.TransactionContextInterface) (bool, error) {
	config, state, now, err := loadSale(ctx)
	if err != nil {
		return false, err
	}

	return isClosedAt(config, state, now), nil
}

func (s *SmartContract) IsEnded(ctx kalpsdk.TransactionContextInterface) (bool, error) {
	state, err := GetSaleState(ctx)
	if err != nil {
		return false, err
	}

	return state.Ended, nil
}

func (s *SmartContract) IsEarlyAdoptionActive(ctx kalpsdk.TransactionContextInterface) (bool, error) {
	config, state, now, err := loadSale(ctx)
	if err != nil {
		return false, err
	}

	return isEarlyAdoptionActiveAt(config, state, now), nil
}

func (s *SmartContract) IsClaimable(ctx kalpsdk.TransactionContextInterface) (bool, error) {
	config, state, now, err := loadSale(ctx)
	if err != nil {
		return false, err
	}

	return isClaimableAt(config, state, now), nil
}
