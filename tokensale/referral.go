/*
SPDX-License-Identifier: Apache-2.0
*/

package tokensale

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// deriveReferralCode derives a hunter's code from their wallet and
// registration order. The derivation is deterministic; the nonce is only
// bumped when a code collides or comes out all-zero.
func deriveReferralCode(wallet string, ordinal, nonce uint64) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%d:%d", wallet, ordinal, nonce)))
	return hex.EncodeToString(sum[:referralCodeLength/2])
}

func generateReferralCode(ctx kalpsdk.TransactionContextInterface, wallet string, ordinal uint64) (string, error) {
	for nonce := uint64(0); ; nonce++ {
		code := deriveReferralCode(wallet, ordinal, nonce)
		if code == zeroReferralCode {
			continue
		}

		owner, err := getCodeOwner(ctx, code)
		if err != nil {
			return "", err
		}
		if owner == "" {
			return code, nil
		}
	}
}

// rankOnLeaderboard re-ranks a hunter after their referred volume changed.
// The board is a fixed-capacity array sorted by referred ZAPP descending,
// ties broken by earlier registration, so the insertion is O(size) with
// size <= leaderboardSize.
func rankOnLeaderboard(leaderboard []LeaderboardEntry, entry LeaderboardEntry) ([]LeaderboardEntry, error) {
	updated := make([]LeaderboardEntry, 0, leaderboardSize+1)
	for _, existing := range leaderboard {
		if existing.Address != entry.Address {
			updated = append(updated, existing)
		}
	}

	referred, err := toBigInt("referredZAPP", entry.ReferredZAPP)
	if err != nil {
		return nil, err
	}

	position := len(updated)
	for i, existing := range updated {
		existingReferred, err := toBigInt("referredZAPP", existing.ReferredZAPP)
		if err != nil {
			return nil, err
		}

		cmp := referred.Cmp(existingReferred)
		if cmp > 0 || (cmp == 0 && entry.Ordinal < existing.Ordinal) {
			position = i
			break
		}
	}

	updated = append(updated, LeaderboardEntry{})
	copy(updated[position+1:], updated[position:])
	updated[position] = entry

	if len(updated) > leaderboardSize {
		updated = updated[:leaderboardSize]
	}

	return updated, nil
}

// leaderboardRank returns the hunter's position on the board, or -1.
func leaderboardRank(leaderboard []LeaderboardEntry, wallet string) int {
	for i, entry := range leaderboard {
		if entry.Address == wallet {
			return i
		}
	}
	return -1
}

// RegisterHunter enrolls the signer as a referral hunter. Registration is
// allowed any time before the sale closes, bounded by maxHunters, and a
// wallet can hold at most one code. The register bonus is credited once as
// claim entitlement.
func (s *SmartContract) RegisterHunter(ctx kalpsdk.TransactionContextInterface) (string, error) {
	signer, err := GetUserId(ctx)
	if err != nil {
		return "", NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	config, state, now, err := loadSale(ctx)
	if err != nil {
		return "", err
	}

	if isClosedAt(config, state, now) {
		return "", ErrSaleClosed
	}

	existing, err := GetHunter(ctx, signer)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrAlreadyRegistered
	}

	if state.HunterCount >= config.MaxHunters {
		return "", ErrMaxHunters
	}

	ordinal := state.HunterCount
	code, err := generateReferralCode(ctx, signer, ordinal)
	if err != nil {
		return "", err
	}

	hunter := &Hunter{
		Code:         code,
		ReferredZAPP: "0",
		Ordinal:      ordinal,
	}
	if err := SetHunter(ctx, signer, hunter); err != nil {
		return "", err
	}
	if err := setCodeOwner(ctx, code, signer); err != nil {
		return "", err
	}

	state.HunterCount++
	if err := SetSaleState(ctx, state); err != nil {
		return "", err
	}

	// The register bonus rides on the hunter's contribution record so the
	// claim payout formula covers it without a separate term.
	contribution, err := GetContribution(ctx, signer)
	if err != nil {
		return "", err
	}

	referrerBonus, err := toBigInt("referrerBonus", contribution.ReferrerBonus)
	if err != nil {
		return "", err
	}
	registerBonus, err := toBigInt("registerBonus", config.RegisterBonus)
	if err != nil {
		return "", err
	}
	contribution.ReferrerBonus = referrerBonus.Add(referrerBonus, registerBonus).String()

	if err := SetContribution(ctx, signer, contribution); err != nil {
		return "", err
	}

	if err := EmitHunterRegistered(ctx, signer, code, config.RegisterBonus); err != nil {
		return "", err
	}

	return code, nil
}

// GetReferralCode returns the wallet's code, or the zero code for wallets
// that never registered.
func (s *SmartContract) GetReferralCode(ctx kalpsdk.TransactionContextInterface, wallet string) (string, error) {
	hunter, err := GetHunter(ctx, wallet)
	if err != nil {
		return "", err
	}
	if hunter == nil {
		return zeroReferralCode, nil
	}

	return hunter.Code, nil
}

// IsReferralCodeValid reports whether the code belongs to a registered
// hunter while the sale is not closed.
func (s *SmartContract) IsReferralCodeValid(ctx kalpsdk.TransactionContextInterface, code string) (bool, error) {
	config, state, now, err := loadSale(ctx)
	if err != nil {
		return false, err
	}

	if isClosedAt(config, state, now) {
		return false, nil
	}

	owner, err := getCodeOwner(ctx, code)
	if err != nil {
		return false, err
	}

	return owner != "", nil
}

// GetTopReferrers returns the referred ZAPP totals of the leaderboard,
// zero-padded to rankRewardCount entries.
func (s *SmartContract) GetTopReferrers(ctx kalpsdk.TransactionContextInterface) ([]string, error) {
	leaderboard, err := GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	top := make([]string, rankRewardCount)
	for i := range top {
		if i < len(leaderboard) {
			top[i] = leaderboard[i].ReferredZAPP
		} else {
			top[i] = "0"
		}
	}

	return top, nil
}
