/*
SPDX-License-Identifier: Apache-2.0
*/

package tokensale

const (
	saleConfigKey  = "saleconfig"
	saleStateKey   = "salestate"
	leaderboardKey = "leaderboard"

	buyerKeyPrefix   = "buyer_"
	hunterKeyPrefix  = "hunter_"
	refCodeKeyPrefix = "refcode_"

	// ETH/USD and ZAPP/USD prices carry 8 decimals (Chainlink scale).
	priceDecimals = 8

	// Referral codes are 3 bytes, hex encoded. The all-zero code is
	// reserved for "not a hunter".
	referralCodeLength = 6
	zeroReferralCode   = "000000"

	leaderboardSize = 5
	rankRewardCount = 5

	// Method invoked on the price oracle chaincode. The payload is the
	// current ETH/USD price as a base-10 string with priceDecimals decimals.
	oracleMethod = "GetLatestPrice"

	contractAddressRegex = `^klp-[a-fA-F0-9]+-cc$`
	hexAddressRegex      = `^[0-9a-fA-F]{40}$`

	zappBoughtEvent        = "ZAPPBought"
	ethRefundedEvent       = "ETHRefunded"
	hunterRegisteredEvent  = "HunterRegistered"
	tokenSaleEndedEvent    = "TokenSaleEnded"
	zappContractEvent      = "SetZAPPContract"
	zappClaimedEvent       = "ZAPPClaimed"
	ethClaimedEvent        = "ETHClaimed"
)
