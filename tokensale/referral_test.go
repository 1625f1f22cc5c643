package tokensale_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	Hunter1 = "1111111111111111111111111111111111111111"
	Hunter2 = "2222222222222222222222222222222222222222"
	Hunter3 = "3333333333333333333333333333333333333333"
	Hunter4 = "4444444444444444444444444444444444444444"
	Hunter5 = "5555555555555555555555555555555555555555"
	Hunter6 = "6666666666666666666666666666666666666666"

	Referee1 = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	Referee2 = "cacacacacacacacacacacacacacacacacacacaca"
	Referee3 = "dcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdc"
	Referee4 = "edededededededededededededededededededed"
	Referee5 = "fefefefefefefefefefefefefefefefefefefefe"
	Referee6 = "abababababababababababababababababababab"
)

func TestRegisterHunter(t *testing.T) {
	t.Parallel()
	transactionContext, _ := newSaleContext()
	saleContract := initSale(t, transactionContext)

	SetUserID(transactionContext, Hunter1)
	code, err := saleContract.RegisterHunter(transactionContext)
	require.NoError(t, err)
	require.Len(t, code, 6)
	require.NotEqual(t, "000000", code)

	stored, err := saleContract.GetReferralCode(transactionContext, Hunter1)
	require.NoError(t, err)
	require.Equal(t, code, stored)

	valid, err := saleContract.IsReferralCodeValid(transactionContext, code)
	require.NoError(t, err)
	require.True(t, valid)

	valid, err = saleContract.IsReferralCodeValid(transactionContext, "000000")
	require.NoError(t, err)
	require.False(t, valid)

	// The register bonus is claim entitlement, credited once at enrollment.
	registerBonus, err := saleContract.GetReferrerBonus(transactionContext, Hunter1)
	require.NoError(t, err)
	require.Equal(t, zapp(400), registerBonus)

	require.Len(t, eventsByName(transactionContext, "HunterRegistered"), 1)

	_, err = saleContract.RegisterHunter(transactionContext)
	require.Error(t, err)
	require.Contains(t, err.Error(), "HunterAlreadyRegistered")
}

func TestRegisterHunterCapped(t *testing.T) {
	t.Parallel()
	transactionContext, _ := newSaleContext()
	saleContract := initSale(t, transactionContext) // maxHunters 3

	for _, wallet := range []string{Hunter1, Hunter2, Hunter3} {
		SetUserID(transactionContext, wallet)
		_, err := saleContract.RegisterHunter(transactionContext)
		require.NoError(t, err)
	}

	SetUserID(transactionContext, Hunter4)
	_, err := saleContract.RegisterHunter(transactionContext)
	require.Error(t, err)
	require.Contains(t, err.Error(), "max hunters")
}

func TestRegisterHunterAfterClose(t *testing.T) {
	t.Parallel()
	transactionContext, _ := newSaleContext()
	saleContract := initSale(t, transactionContext)

	// Registration works before the sale opens but not once it closed.
	setTxTime(transactionContext, OpeningTime-100)
	SetUserID(transactionContext, Hunter1)
	_, err := saleContract.RegisterHunter(transactionContext)
	require.NoError(t, err)

	setTxTime(transactionContext, ClosingTime)
	SetUserID(transactionContext, Hunter2)
	_, err = saleContract.RegisterHunter(transactionContext)
	require.Error(t, err)
	require.Contains(t, err.Error(), "closed")
}

// The code derivation is deterministic: the same wallet registering first
// in two separate sales receives the same code.
func TestReferralCodeDeterministic(t *testing.T) {
	t.Parallel()

	codes := make([]string, 2)
	for i := range codes {
		transactionContext, _ := newSaleContext()
		saleContract := initSale(t, transactionContext)

		SetUserID(transactionContext, Hunter1)
		code, err := saleContract.RegisterHunter(transactionContext)
		require.NoError(t, err)
		codes[i] = code
	}
	require.Equal(t, codes[0], codes[1])
}

func TestBuyWithCode(t *testing.T) {
	t.Parallel()
	transactionContext, _ := newSaleContext()
	saleContract := initSale(t, transactionContext)
	setTxTime(transactionContext, EarlyAdoptionEndTime+10)

	SetUserID(transactionContext, Hunter1)
	code, err := saleContract.RegisterHunter(transactionContext)
	require.NoError(t, err)

	// 0.125 ETH buys 2500 ZAPP. The buyer earns the 5% referee bonus
	// immediately (refereeMin is 0) and the hunter crosses the 2000 ZAPP
	// referrer minimum with this single purchase.
	SetUserID(transactionContext, Referee1)
	bought, err := saleContract.BuyZAPPWithCode(transactionContext, "125000000000000000", code)
	require.NoError(t, err)
	require.Equal(t, zapp(2500), bought)

	refereeBonus, err := saleContract.GetRefereeBonus(transactionContext, Referee1)
	require.NoError(t, err)
	require.Equal(t, zapp(125), refereeBonus)

	referrerBonus, err := saleContract.GetReferrerBonus(transactionContext, Hunter1)
	require.NoError(t, err)
	require.Equal(t, zapp(525), referrerBonus) // 400 register + 125 referral

	totalReferred, err := saleContract.GetTotalReferredZAPP(transactionContext)
	require.NoError(t, err)
	require.Equal(t, zapp(2500), totalReferred)

	totalHunterReferred, err := saleContract.GetTotalHunterReferredZAPP(transactionContext)
	require.NoError(t, err)
	require.Equal(t, zapp(2500), totalHunterReferred)

	withoutCode, err := saleContract.GetTotalWithoutCodeZAPP(transactionContext)
	require.NoError(t, err)
	require.Equal(t, "0", withoutCode)

	top, err := saleContract.GetTopReferrers(transactionContext)
	require.NoError(t, err)
	require.Equal(t, []string{zapp(2500), "0", "0", "0", "0"}, top)
}

func TestBuyWithCodeBelowReferrerMinimum(t *testing.T) {
	t.Parallel()
	transactionContext, _ := newSaleContext()
	saleContract := initSale(t, transactionContext)
	setTxTime(transactionContext, EarlyAdoptionEndTime+10)

	SetUserID(transactionContext, Hunter1)
	code, err := saleContract.RegisterHunter(transactionContext)
	require.NoError(t, err)

	// 0.095 ETH buys 1900 ZAPP, below the 2000 referrer minimum: the buyer
	// earns the referee bonus, the hunter only keeps the register bonus.
	SetUserID(transactionContext, Referee1)
	_, err = saleContract.BuyZAPPWithCode(transactionContext, "95000000000000000", code)
	require.NoError(t, err)

	refereeBonus, err := saleContract.GetRefereeBonus(transactionContext, Referee1)
	require.NoError(t, err)
	require.Equal(t, zapp(95), refereeBonus)

	referrerBonus, err := saleContract.GetReferrerBonus(transactionContext, Hunter1)
	require.NoError(t, err)
	require.Equal(t, zapp(400), referrerBonus)

	// The next referred purchase pushes the hunter over the minimum; only
	// the new purchase earns the referrer bonus.
	SetUserID(transactionContext, Referee2)
	_, err = saleContract.BuyZAPPWithCode(transactionContext, "5000000000000000", code) // 100 ZAPP
	require.NoError(t, err)

	referrerBonus, err = saleContract.GetReferrerBonus(transactionContext, Hunter1)
	require.NoError(t, err)
	require.Equal(t, zapp(405), referrerBonus)
}

func TestRefereeMinimum(t *testing.T) {
	t.Parallel()
	transactionContext, _ := newSaleContext()
	params := defaultSaleParams()
	params.RefereeMin = zapp(2000)
	saleContract := initSaleWithParams(t, transactionContext, params)
	setTxTime(transactionContext, EarlyAdoptionEndTime+10)

	SetUserID(transactionContext, Hunter1)
	code, err := saleContract.RegisterHunter(transactionContext)
	require.NoError(t, err)

	// 1900 ZAPP cumulative is below the referee minimum: no bonus.
	SetUserID(transactionContext, Referee1)
	_, err = saleContract.BuyZAPPWithCode(transactionContext, "95000000000000000", code)
	require.NoError(t, err)

	refereeBonus, err := saleContract.GetRefereeBonus(transactionContext, Referee1)
	require.NoError(t, err)
	require.Equal(t, "0", refereeBonus)

	// 100 more ZAPP reaches 2000 cumulative; the bonus applies to the new
	// purchase only, never retroactively.
	_, err = saleContract.BuyZAPPWithCode(transactionContext, "5000000000000000", code)
	require.NoError(t, err)

	refereeBonus, err = saleContract.GetRefereeBonus(transactionContext, Referee1)
	require.NoError(t, err)
	require.Equal(t, zapp(5), refereeBonus)
}

// Buying on one's own code earns nothing; the purchase counts as made
// without a code.
func TestSelfReferral(t *testing.T) {
	t.Parallel()
	transactionContext, _ := newSaleContext()
	saleContract := initSale(t, transactionContext)
	setTxTime(transactionContext, EarlyAdoptionEndTime+10)

	SetUserID(transactionContext, Hunter1)
	code, err := saleContract.RegisterHunter(transactionContext)
	require.NoError(t, err)

	_, err = saleContract.BuyZAPPWithCode(transactionContext, "125000000000000000", code)
	require.NoError(t, err)

	refereeBonus, err := saleContract.GetRefereeBonus(transactionContext, Hunter1)
	require.NoError(t, err)
	require.Equal(t, "0", refereeBonus)

	referrerBonus, err := saleContract.GetReferrerBonus(transactionContext, Hunter1)
	require.NoError(t, err)
	require.Equal(t, zapp(400), referrerBonus)

	totalReferred, err := saleContract.GetTotalReferredZAPP(transactionContext)
	require.NoError(t, err)
	require.Equal(t, "0", totalReferred)

	withoutCode, err := saleContract.GetTotalWithoutCodeZAPP(transactionContext)
	require.NoError(t, err)
	require.Equal(t, zapp(2500), withoutCode)
}

// An unknown code never fails a purchase; it just earns no bonus.
func TestBuyWithUnknownCode(t *testing.T) {
	t.Parallel()
	transactionContext, _ := newSaleContext()
	saleContract := initSale(t, transactionContext)
	setTxTime(transactionContext, EarlyAdoptionEndTime+10)

	SetUserID(transactionContext, Referee1)
	bought, err := saleContract.BuyZAPPWithCode(transactionContext, "125000000000000000", "f0f0f0")
	require.NoError(t, err)
	require.Equal(t, zapp(2500), bought)

	refereeBonus, err := saleContract.GetRefereeBonus(transactionContext, Referee1)
	require.NoError(t, err)
	require.Equal(t, "0", refereeBonus)

	totalReferred, err := saleContract.GetTotalReferredZAPP(transactionContext)
	require.NoError(t, err)
	require.Equal(t, "0", totalReferred)

	withoutCode, err := saleContract.GetTotalWithoutCodeZAPP(transactionContext)
	require.NoError(t, err)
	require.Equal(t, zapp(2500), withoutCode)
}

func TestReferralCodeInvalidOnceClosed(t *testing.T) {
	t.Parallel()
	transactionContext, _ := newSaleContext()
	saleContract := initSale(t, transactionContext)

	SetUserID(transactionContext, Hunter1)
	code, err := saleContract.RegisterHunter(transactionContext)
	require.NoError(t, err)

	valid, err := saleContract.IsReferralCodeValid(transactionContext, code)
	require.NoError(t, err)
	require.True(t, valid)

	setTxTime(transactionContext, ClosingTime)
	valid, err = saleContract.IsReferralCodeValid(transactionContext, code)
	require.NoError(t, err)
	require.False(t, valid)
}

// Six hunters compete for five leaderboard slots. Rank rewards go to the
// final top five only, ties broken by earlier registration.
func TestLeaderboardAndRankRewards(t *testing.T) {
	t.Parallel()
	transactionContext, _ := newSaleContext()
	params := defaultSaleParams()
	params.MaxHunters = 10
	saleContract := initSaleWithParams(t, transactionContext, params)
	setTxTime(transactionContext, EarlyAdoptionEndTime+10)

	hunters := []string{Hunter1, Hunter2, Hunter3, Hunter4, Hunter5, Hunter6}
	codes := make([]string, len(hunters))
	for i, wallet := range hunters {
		SetUserID(transactionContext, wallet)
		code, err := saleContract.RegisterHunter(transactionContext)
		require.NoError(t, err)
		codes[i] = code
	}

	// Referred volumes per hunter: 400, 300, 200, 100, 100, 10 ZAPP, bought
	// out of rank order so the board has to reorder.
	purchases := []struct {
		buyer     string
		hunter    int
		weiAmount string
	}{
		{Referee6, 5, "500000000000000"},   // 10 ZAPP
		{Referee5, 4, "5000000000000000"},  // 100 ZAPP
		{Referee1, 0, "20000000000000000"}, // 400 ZAPP
		{Referee4, 3, "5000000000000000"},  // 100 ZAPP
		{Referee2, 1, "15000000000000000"}, // 300 ZAPP
		{Referee3, 2, "10000000000000000"}, // 200 ZAPP
	}
	for _, purchase := range purchases {
		SetUserID(transactionContext, purchase.buyer)
		_, err := saleContract.BuyZAPPWithCode(transactionContext, purchase.weiAmount, codes[purchase.hunter])
		require.NoError(t, err)
	}

	top, err := saleContract.GetTopReferrers(transactionContext)
	require.NoError(t, err)
	require.Equal(t, []string{zapp(400), zapp(300), zapp(200), zapp(100), zapp(100)}, top)

	// Push the raise over the soft cap so the claim phase can start.
	SetUserID(transactionContext, Buyer)
	_, err = saleContract.BuyZAPP(transactionContext, "125000000000000000")
	require.NoError(t, err)

	SetUserID(transactionContext, Owner)
	require.NoError(t, saleContract.EndTokenSale(transactionContext))
	require.NoError(t, saleContract.SetZAPPContract(transactionContext, ZAPPContract))
	setTxTime(transactionContext, ClaimTime+1)

	SetUserID(transactionContext, ZAPPContract)

	// Rank 1: register bonus plus the top rank reward. No hunter crossed
	// the 2000 ZAPP referrer minimum, so no referral bonuses are due.
	claimed, err := saleContract.ClaimZAPP(transactionContext, Hunter1)
	require.NoError(t, err)
	require.Equal(t, zapp(400+20000), claimed)

	// Hunters 4 and 5 both referred 100 ZAPP; the earlier registration
	// takes rank 4 and its larger reward.
	claimed, err = saleContract.ClaimZAPP(transactionContext, Hunter4)
	require.NoError(t, err)
	require.Equal(t, zapp(400+6000), claimed)

	claimed, err = saleContract.ClaimZAPP(transactionContext, Hunter5)
	require.NoError(t, err)
	require.Equal(t, zapp(400+4000), claimed)

	// The sixth hunter fell off the board and claims the register bonus
	// only.
	claimed, err = saleContract.ClaimZAPP(transactionContext, Hunter6)
	require.NoError(t, err)
	require.Equal(t, zapp(400), claimed)
}
