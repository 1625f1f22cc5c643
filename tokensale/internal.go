/*
SPDX-License-Identifier: Apache-2.0
*/

package tokensale

import (
	"math/big"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// buyZAPP is the shared purchase path of BuyZAPP and BuyZAPPWithCode.
// It runs the whole ledger update in one transaction: quote, hard-cap
// partial fill, contribution and totals update, early-adoption bonus and
// referral attribution. Returns the admitted ZAPP amount.
func (s *SmartContract) buyZAPP(ctx kalpsdk.TransactionContextInterface, weiAmount, code string) (string, error) {
	signer, err := GetUserId(ctx)
	if err != nil {
		return "", NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	config, state, now, err := loadSale(ctx)
	if err != nil {
		return "", err
	}

	if !isOpenAt(config, state, now) {
		return "", ErrNotOpen
	}

	wei, err := toBigInt("weiAmount", weiAmount)
	if err != nil {
		return "", err
	}
	if wei.Sign() <= 0 {
		return "", ErrInvalidAmount("weiAmount", weiAmount)
	}

	ethPrice, err := fetchETHPrice(ctx, config.OracleChaincode)
	if err != nil {
		return "", err
	}
	zappPrice, err := toBigInt("zappPrice", config.ZAPPPrice)
	if err != nil {
		return "", err
	}

	tokens := quoteZAPP(wei, ethPrice, zappPrice)
	if tokens.Sign() == 0 {
		return "", ErrInvalidAmount("zappAmount", tokens.String())
	}

	hardCap, err := toBigInt("hardCap", config.HardCap)
	if err != nil {
		return "", err
	}
	sold, err := toBigInt("soldZAPP", state.SoldZAPP)
	if err != nil {
		return "", err
	}

	remaining := new(big.Int).Sub(hardCap, sold)
	if remaining.Sign() <= 0 {
		return "", ErrHardCapReached
	}

	// Partial fill: admit only what fits under the hard cap and refund the
	// excess ETH right away.
	weiAdmitted := wei
	tokensAdmitted := tokens
	if tokens.Cmp(remaining) > 0 {
		tokensAdmitted = remaining
		weiAdmitted = new(big.Int).Mul(wei, tokensAdmitted)
		weiAdmitted.Div(weiAdmitted, tokens)

		refund := new(big.Int).Sub(wei, weiAdmitted)
		if err := EmitETHRefunded(ctx, signer, refund.String(), "hard cap excess"); err != nil {
			return "", err
		}
	}

	contribution, err := GetContribution(ctx, signer)
	if err != nil {
		return "", err
	}

	owed, err := toBigInt("zapp", contribution.ZAPP)
	if err != nil {
		return "", err
	}
	owed.Add(owed, tokensAdmitted)
	contribution.ZAPP = owed.String()

	contributed, err := toBigInt("eth", contribution.ETH)
	if err != nil {
		return "", err
	}
	contribution.ETH = contributed.Add(contributed, weiAdmitted).String()

	raised, err := toBigInt("raisedETH", state.RaisedETH)
	if err != nil {
		return "", err
	}
	state.RaisedETH = raised.Add(raised, weiAdmitted).String()

	balance, err := toBigInt("ethBalance", state.ETHBalance)
	if err != nil {
		return "", err
	}
	state.ETHBalance = balance.Add(balance, weiAdmitted).String()

	state.SoldZAPP = sold.Add(sold, tokensAdmitted).String()

	// The early-adopter bonus is fixed at purchase time and never revoked,
	// even if the window closes before the claim phase.
	if isEarlyAdoptionActiveAt(config, state, now) {
		if err := applyEarlyAdoptionBonus(config, state, contribution, tokensAdmitted); err != nil {
			return "", err
		}
	}

	attributed := false
	if code != "" {
		attributed, err = s.attributeReferral(ctx, config, state, signer, code, tokensAdmitted, owed, contribution)
		if err != nil {
			return "", err
		}
	}
	if !attributed {
		withoutCode, err := toBigInt("withoutCodeZAPP", state.WithoutCodeZAPP)
		if err != nil {
			return "", err
		}
		state.WithoutCodeZAPP = withoutCode.Add(withoutCode, tokensAdmitted).String()
	}

	if err := SetContribution(ctx, signer, contribution); err != nil {
		return "", err
	}
	if err := SetSaleState(ctx, state); err != nil {
		return "", err
	}

	if err := EmitZAPPBought(ctx, signer, weiAdmitted.String(), tokensAdmitted.String(), code); err != nil {
		return "", err
	}

	return tokensAdmitted.String(), nil
}

func applyEarlyAdoptionBonus(config *SaleConfig, state *SaleState, contribution *Contribution, tokensAdmitted *big.Int) error {
	earlyAdoptionBonus, err := toBigInt("earlyAdoptionBonus", config.EarlyAdoptionBonus)
	if err != nil {
		return err
	}

	bonus := percentOf(tokensAdmitted, earlyAdoptionBonus, config.BonusDecimals)

	buyerBonus, err := toBigInt("earlyAdopterBonus", contribution.EarlyAdopterBonus)
	if err != nil {
		return err
	}
	contribution.EarlyAdopterBonus = buyerBonus.Add(buyerBonus, bonus).String()

	totalBonus, err := toBigInt("earlyAdoptionZAPP", state.EarlyAdoptionZAPP)
	if err != nil {
		return err
	}
	state.EarlyAdoptionZAPP = totalBonus.Add(totalBonus, bonus).String()

	return nil
}

// attributeReferral credits referee and referrer bonuses for a coded
// purchase and re-ranks the leaderboard. An unknown code, or a hunter
// buying on their own code, is not an error: the purchase simply counts as
// without-code and the caller keeps going.
func (s *SmartContract) attributeReferral(
	ctx kalpsdk.TransactionContextInterface,
	config *SaleConfig,
	state *SaleState,
	buyer string,
	code string,
	tokensAdmitted *big.Int,
	buyerOwed *big.Int,
	contribution *Contribution,
) (bool, error) {
	hunterWallet, err := getCodeOwner(ctx, code)
	if err != nil {
		return false, err
	}
	if hunterWallet == "" || hunterWallet == buyer {
		return false, nil
	}

	hunter, err := GetHunter(ctx, hunterWallet)
	if err != nil {
		return false, err
	}
	if hunter == nil {
		return false, NewCustomError(http.StatusInternalServerError, "referral code "+code+" maps to unknown hunter "+hunterWallet, nil)
	}

	referralBonus, err := toBigInt("referralBonus", config.ReferralBonus)
	if err != nil {
		return false, err
	}
	bonus := percentOf(tokensAdmitted, referralBonus, config.BonusDecimals)

	// Referee side: the buyer's cumulative purchase must reach the minimum.
	refereeMin, err := toBigInt("refereeMin", config.RefereeMin)
	if err != nil {
		return false, err
	}
	if buyerOwed.Cmp(refereeMin) >= 0 {
		refereeBonus, err := toBigInt("refereeBonus", contribution.RefereeBonus)
		if err != nil {
			return false, err
		}
		contribution.RefereeBonus = refereeBonus.Add(refereeBonus, bonus).String()
	}

	// Referrer side: checked after accumulating this purchase.
	referred, err := toBigInt("referredZAPP", hunter.ReferredZAPP)
	if err != nil {
		return false, err
	}
	referred.Add(referred, tokensAdmitted)
	hunter.ReferredZAPP = referred.String()

	referrerMin, err := toBigInt("referrerMin", config.ReferrerMin)
	if err != nil {
		return false, err
	}
	if referred.Cmp(referrerMin) >= 0 {
		hunterContribution, err := GetContribution(ctx, hunterWallet)
		if err != nil {
			return false, err
		}
		referrerBonus, err := toBigInt("referrerBonus", hunterContribution.ReferrerBonus)
		if err != nil {
			return false, err
		}
		hunterContribution.ReferrerBonus = referrerBonus.Add(referrerBonus, bonus).String()
		if err := SetContribution(ctx, hunterWallet, hunterContribution); err != nil {
			return false, err
		}
	}

	if err := SetHunter(ctx, hunterWallet, hunter); err != nil {
		return false, err
	}

	leaderboard, err := GetLeaderboard(ctx)
	if err != nil {
		return false, err
	}
	leaderboard, err = rankOnLeaderboard(leaderboard, LeaderboardEntry{
		Address:      hunterWallet,
		ReferredZAPP: hunter.ReferredZAPP,
		Ordinal:      hunter.Ordinal,
	})
	if err != nil {
		return false, err
	}
	if err := SetLeaderboard(ctx, leaderboard); err != nil {
		return false, err
	}

	totalReferred, err := toBigInt("referredZAPP", state.ReferredZAPP)
	if err != nil {
		return false, err
	}
	state.ReferredZAPP = totalReferred.Add(totalReferred, tokensAdmitted).String()

	hunterReferred, err := toBigInt("hunterReferredZAPP", state.HunterReferredZAPP)
	if err != nil {
		return false, err
	}
	state.HunterReferredZAPP = hunterReferred.Add(hunterReferred, tokensAdmitted).String()

	return true, nil
}
