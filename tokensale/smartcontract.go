/*
SPDX-License-Identifier: Apache-2.0
*/

package tokensale

import (
	"fmt"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

type SmartContract struct {
	kalpsdk.Contract
}

// Initialize deploys the sale. The deploying signer becomes the owner.
// All amounts are base-10 strings: caps, minimums, rank rewards and the
// register bonus in 18-decimal ZAPP bits, the ZAPP price in
// priceDecimals-decimal USD, bonus percentages in bonusDecimals decimals.
func (s *SmartContract) Initialize(
	ctx kalpsdk.TransactionContextInterface,
	openingTime uint64,
	closingTime uint64,
	claimTime uint64,
	softCap string,
	hardCap string,
	zappPrice string,
	oracleChaincode string,
	referrerMin string,
	refereeMin string,
	referralBonus string,
	rankRewards []string,
	earlyAdoptionEndTime uint64,
	earlyAdoptionBonus string,
	maxHunters uint64,
	registerBonus string,
	bonusDecimals uint64,
) error {
	existing, err := ctx.GetState(saleConfigKey)
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to get sale config", err)
	}
	if existing != nil {
		return ErrAlreadyInitialized
	}

	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	if openingTime >= closingTime {
		return ErrInvalidConfiguration("openingTime must be before closingTime")
	}
	if closingTime >= claimTime {
		return ErrInvalidConfiguration("closingTime must be before claimTime")
	}
	if earlyAdoptionEndTime < openingTime || earlyAdoptionEndTime > closingTime {
		return ErrInvalidConfiguration("earlyAdoptionEndTime must lie within the sale window")
	}
	if bonusDecimals == 0 || bonusDecimals > 18 {
		return ErrInvalidConfiguration("bonusDecimals must be between 1 and 18")
	}
	if !IsContractAddressValid(oracleChaincode) {
		return ErrInvalidContractAddress(oracleChaincode)
	}

	soft, err := toBigInt("softCap", softCap)
	if err != nil {
		return err
	}
	hard, err := toBigInt("hardCap", hardCap)
	if err != nil {
		return err
	}
	if soft.Sign() < 0 || hard.Sign() <= 0 || soft.Cmp(hard) > 0 {
		return ErrInvalidConfiguration("softCap must not exceed hardCap")
	}

	price, err := toBigInt("zappPrice", zappPrice)
	if err != nil {
		return err
	}
	if price.Sign() <= 0 {
		return ErrInvalidConfiguration("zappPrice must be positive")
	}

	for _, amount := range []struct{ entity, value string }{
		{"referrerMin", referrerMin},
		{"refereeMin", refereeMin},
		{"referralBonus", referralBonus},
		{"earlyAdoptionBonus", earlyAdoptionBonus},
		{"registerBonus", registerBonus},
	} {
		parsed, err := toBigInt(amount.entity, amount.value)
		if err != nil {
			return err
		}
		if parsed.Sign() < 0 {
			return ErrInvalidConfiguration(amount.entity + " must not be negative")
		}
	}

	if len(rankRewards) != rankRewardCount {
		return ErrInvalidConfiguration(fmt.Sprintf("rankRewards must hold %d entries", rankRewardCount))
	}
	for i, reward := range rankRewards {
		current, err := toBigInt("rankReward", reward)
		if err != nil {
			return err
		}
		if current.Sign() < 0 {
			return ErrInvalidConfiguration("rankRewards must not be negative")
		}
		if i > 0 {
			previous, err := toBigInt("rankReward", rankRewards[i-1])
			if err != nil {
				return err
			}
			if current.Cmp(previous) > 0 {
				return ErrInvalidConfiguration("rankRewards must be sorted non-increasing")
			}
		}
	}

	config := &SaleConfig{
		OpeningTime:          openingTime,
		ClosingTime:          closingTime,
		ClaimTime:            claimTime,
		SoftCap:              softCap,
		HardCap:              hardCap,
		ZAPPPrice:            zappPrice,
		OracleChaincode:      oracleChaincode,
		ReferrerMin:          referrerMin,
		RefereeMin:           refereeMin,
		ReferralBonus:        referralBonus,
		RankRewards:          rankRewards,
		EarlyAdoptionEndTime: earlyAdoptionEndTime,
		EarlyAdoptionBonus:   earlyAdoptionBonus,
		MaxHunters:           maxHunters,
		RegisterBonus:        registerBonus,
		BonusDecimals:        bonusDecimals,
	}
	if err := SetSaleConfig(ctx, config); err != nil {
		return err
	}

	state := &SaleState{
		Owner:              signer,
		RaisedETH:          "0",
		ETHBalance:         "0",
		SoldZAPP:           "0",
		EarlyAdoptionZAPP:  "0",
		WithoutCodeZAPP:    "0",
		ReferredZAPP:       "0",
		HunterReferredZAPP: "0",
	}
	return SetSaleState(ctx, state)
}

// BuyZAPP exchanges ETH (wei) for ZAPP entitlement at the oracle rate.
func (s *SmartContract) BuyZAPP(ctx kalpsdk.TransactionContextInterface, weiAmount string) (string, error) {
	return s.buyZAPP(ctx, weiAmount, "")
}

// BuyZAPPWithCode is BuyZAPP with a referral code attached. An invalid
// code does not fail the purchase; it just earns no bonus.
func (s *SmartContract) BuyZAPPWithCode(ctx kalpsdk.TransactionContextInterface, weiAmount, code string) (string, error) {
	return s.buyZAPP(ctx, weiAmount, code)
}

// EndTokenSale lets the owner end the sale at any time, including before
// the closing time.
func (s *SmartContract) EndTokenSale(ctx kalpsdk.TransactionContextInterface) error {
	state, err := GetSaleState(ctx)
	if err != nil {
		return err
	}

	if err := isSignerOwner(ctx, state); err != nil {
		return err
	}
	if state.Ended {
		return ErrAlreadyEnded
	}

	state.Ended = true
	if err := SetSaleState(ctx, state); err != nil {
		return err
	}

	return EmitTokenSaleEnded(ctx, state.RaisedETH, state.SoldZAPP)
}

// SetZAPPContract binds the token contract that mints claimed ZAPP.
// Owner-only, write-once.
func (s *SmartContract) SetZAPPContract(ctx kalpsdk.TransactionContextInterface, address string) error {
	state, err := GetSaleState(ctx)
	if err != nil {
		return err
	}

	if err := isSignerOwner(ctx, state); err != nil {
		return err
	}
	if !IsContractAddressValid(address) && !IsUserAddressValid(address) {
		return ErrInvalidContractAddress(address)
	}
	if state.ZAPPContract != "" {
		return ErrZAPPContractSet
	}

	state.ZAPPContract = address
	if err := SetSaleState(ctx, state); err != nil {
		return err
	}

	return EmitZAPPContractSet(ctx, address)
}

// ClaimETH transfers the whole ETH escrow to the given wallet once the
// sale has ended above the soft cap. The balance is zero afterwards, so a
// second call fails with InsufficientFunds.
func (s *SmartContract) ClaimETH(ctx kalpsdk.TransactionContextInterface, to string) (string, error) {
	config, state, _, err := loadSale(ctx)
	if err != nil {
		return "", err
	}

	if err := isSignerOwner(ctx, state); err != nil {
		return "", err
	}
	if !state.Ended {
		return "", ErrNotEnded
	}

	sold, err := toBigInt("soldZAPP", state.SoldZAPP)
	if err != nil {
		return "", err
	}
	softCap, err := toBigInt("softCap", config.SoftCap)
	if err != nil {
		return "", err
	}
	if sold.Cmp(softCap) < 0 {
		return "", ErrSoftCapNotReached
	}

	if !IsUserAddressValid(to) {
		return "", ErrInvalidUserAddress(to)
	}

	balance, err := toBigInt("ethBalance", state.ETHBalance)
	if err != nil {
		return "", err
	}
	if balance.Sign() == 0 {
		return "", ErrInsufficientFunds
	}

	state.ETHBalance = "0"
	if err := SetSaleState(ctx, state); err != nil {
		return "", err
	}

	if err := EmitETHClaimed(ctx, to, balance.String()); err != nil {
		return "", err
	}

	return balance.String(), nil
}

// ClaimZAPP computes a buyer's full entitlement (purchase plus all bonuses
// and any leaderboard rank reward) and returns the amount for the token
// contract to mint. Callable only by the bound ZAPP contract. The claimed
// flag is set before the amount leaves this method, closing the
// re-entrancy window.
func (s *SmartContract) ClaimZAPP(ctx kalpsdk.TransactionContextInterface, wallet string) (string, error) {
	config, state, now, err := loadSale(ctx)
	if err != nil {
		return "", err
	}

	if !state.Ended {
		return "", ErrNotEnded
	}

	sold, err := toBigInt("soldZAPP", state.SoldZAPP)
	if err != nil {
		return "", err
	}
	softCap, err := toBigInt("softCap", config.SoftCap)
	if err != nil {
		return "", err
	}
	if sold.Cmp(softCap) < 0 {
		return "", ErrSoftCapNotReached
	}

	if now < config.ClaimTime {
		return "", ErrNotClaimable
	}

	signer, err := GetUserId(ctx)
	if err != nil {
		return "", NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}
	if state.ZAPPContract == "" || signer != state.ZAPPContract {
		return "", ErrOnlyZAPPContract
	}

	if !IsUserAddressValid(wallet) {
		return "", ErrInvalidUserAddress(wallet)
	}

	contribution, err := GetContribution(ctx, wallet)
	if err != nil {
		return "", err
	}
	if contribution.Claimed {
		return "", ErrAlreadyClaimed
	}

	total, err := toBigInt("zapp", contribution.ZAPP)
	if err != nil {
		return "", err
	}
	for _, bonus := range []struct{ entity, value string }{
		{"earlyAdopterBonus", contribution.EarlyAdopterBonus},
		{"refereeBonus", contribution.RefereeBonus},
		{"referrerBonus", contribution.ReferrerBonus},
	} {
		amount, err := toBigInt(bonus.entity, bonus.value)
		if err != nil {
			return "", err
		}
		total.Add(total, amount)
	}

	hunter, err := GetHunter(ctx, wallet)
	if err != nil {
		return "", err
	}
	if hunter != nil {
		leaderboard, err := GetLeaderboard(ctx)
		if err != nil {
			return "", err
		}
		rank := leaderboardRank(leaderboard, wallet)
		if rank >= 0 && rank < len(config.RankRewards) {
			reward, err := toBigInt("rankReward", config.RankRewards[rank])
			if err != nil {
				return "", err
			}
			total.Add(total, reward)
		}
	}

	if total.Sign() == 0 {
		return "", ErrNothingToClaim
	}

	// Mark before the external mint happens on the caller's side.
	contribution.Claimed = true
	if err := SetContribution(ctx, wallet, contribution); err != nil {
		return "", err
	}

	if err := EmitZAPPClaimed(ctx, wallet, total.String()); err != nil {
		return "", err
	}

	return total.String(), nil
}

// ClaimRefund pays a contributor their ETH back after a failed raise.
func (s *SmartContract) ClaimRefund(ctx kalpsdk.TransactionContextInterface) (string, error) {
	signer, err := GetUserId(ctx)
	if err != nil {
		return "", NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	config, state, _, err := loadSale(ctx)
	if err != nil {
		return "", err
	}

	if !state.Ended {
		return "", ErrNotEnded
	}

	sold, err := toBigInt("soldZAPP", state.SoldZAPP)
	if err != nil {
		return "", err
	}
	softCap, err := toBigInt("softCap", config.SoftCap)
	if err != nil {
		return "", err
	}
	if sold.Cmp(softCap) >= 0 {
		return "", ErrSoftCapReached
	}

	contribution, err := GetContribution(ctx, signer)
	if err != nil {
		return "", err
	}
	if contribution.Claimed {
		return "", ErrAlreadyClaimed
	}

	refund, err := toBigInt("eth", contribution.ETH)
	if err != nil {
		return "", err
	}
	if refund.Sign() == 0 {
		return "", ErrNothingToClaim
	}

	contribution.Claimed = true
	if err := SetContribution(ctx, signer, contribution); err != nil {
		return "", err
	}

	balance, err := toBigInt("ethBalance", state.ETHBalance)
	if err != nil {
		return "", err
	}
	state.ETHBalance = balance.Sub(balance, refund).String()
	if err := SetSaleState(ctx, state); err != nil {
		return "", err
	}

	if err := EmitETHRefunded(ctx, signer, refund.String(), "soft cap not reached"); err != nil {
		return "", err
	}

	return refund.String(), nil
}

func (s *SmartContract) IsSoftCapReached(ctx kalpsdk.TransactionContextInterface) (bool, error) {
	config, err := GetSaleConfig(ctx)
	if err != nil {
		return false, err
	}
	state, err := GetSaleState(ctx)
	if err != nil {
		return false, err
	}

	sold, err := toBigInt("soldZAPP", state.SoldZAPP)
	if err != nil {
		return false, err
	}
	softCap, err := toBigInt("softCap", config.SoftCap)
	if err != nil {
		return false, err
	}

	return sold.Cmp(softCap) >= 0, nil
}

func (s *SmartContract) IsHardCapReached(ctx kalpsdk.TransactionContextInterface) (bool, error) {
	config, err := GetSaleConfig(ctx)
	if err != nil {
		return false, err
	}
	state, err := GetSaleState(ctx)
	if err != nil {
		return false, err
	}

	sold, err := toBigInt("soldZAPP", state.SoldZAPP)
	if err != nil {
		return false, err
	}
	hardCap, err := toBigInt("hardCap", config.HardCap)
	if err != nil {
		return false, err
	}

	return sold.Cmp(hardCap) >= 0, nil
}

func (s *SmartContract) GetBuyerZAPP(ctx kalpsdk.TransactionContextInterface, wallet string) (string, error) {
	contribution, err := GetContribution(ctx, wallet)
	if err != nil {
		return "", err
	}
	return contribution.ZAPP, nil
}

func (s *SmartContract) GetBuyerETH(ctx kalpsdk.TransactionContextInterface, wallet string) (string, error) {
	contribution, err := GetContribution(ctx, wallet)
	if err != nil {
		return "", err
	}
	return contribution.ETH, nil
}

func (s *SmartContract) GetEarlyAdopterBonus(ctx kalpsdk.TransactionContextInterface, wallet string) (string, error) {
	contribution, err := GetContribution(ctx, wallet)
	if err != nil {
		return "", err
	}
	return contribution.EarlyAdopterBonus, nil
}

func (s *SmartContract) GetRefereeBonus(ctx kalpsdk.TransactionContextInterface, wallet string) (string, error) {
	contribution, err := GetContribution(ctx, wallet)
	if err != nil {
		return "", err
	}
	return contribution.RefereeBonus, nil
}

func (s *SmartContract) GetReferrerBonus(ctx kalpsdk.TransactionContextInterface, wallet string) (string, error) {
	contribution, err := GetContribution(ctx, wallet)
	if err != nil {
		return "", err
	}
	return contribution.ReferrerBonus, nil
}

func (s *SmartContract) HasWalletClaimed(ctx kalpsdk.TransactionContextInterface, wallet string) (bool, error) {
	contribution, err := GetContribution(ctx, wallet)
	if err != nil {
		return false, err
	}
	return contribution.Claimed, nil
}

func (s *SmartContract) GetRaisedETH(ctx kalpsdk.TransactionContextInterface) (string, error) {
	state, err := GetSaleState(ctx)
	if err != nil {
		return "", err
	}
	return state.RaisedETH, nil
}

func (s *SmartContract) GetTotalEarlyAdoptionZAPP(ctx kalpsdk.TransactionContextInterface) (string, error) {
	state, err := GetSaleState(ctx)
	if err != nil {
		return "", err
	}
	return state.EarlyAdoptionZAPP, nil
}

func (s *SmartContract) GetTotalWithoutCodeZAPP(ctx kalpsdk.TransactionContextInterface) (string, error) {
	state, err := GetSaleState(ctx)
	if err != nil {
		return "", err
	}
	return state.WithoutCodeZAPP, nil
}

func (s *SmartContract) GetTotalReferredZAPP(ctx kalpsdk.TransactionContextInterface) (string, error) {
	state, err := GetSaleState(ctx)
	if err != nil {
		return "", err
	}
	return state.ReferredZAPP, nil
}

func (s *SmartContract) GetTotalHunterReferredZAPP(ctx kalpsdk.TransactionContextInterface) (string, error) {
	state, err := GetSaleState(ctx)
	if err != nil {
		return "", err
	}
	return state.HunterReferredZAPP, nil
}

func (s *SmartContract) GetZAPPContract(ctx kalpsdk.TransactionContextInterface) (string, error) {
	state, err := GetSaleState(ctx)
	if err != nil {
		return "", err
	}
	return state.ZAPPContract, nil
}
