/*
SPDX-License-Identifier: Apache-2.0
*/

package tokensale

import (
	"math/big"
	"net/http"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

// fetchETHPrice reads the current ETH/USD price from the oracle chaincode.
// The oracle is the only external dependency of a purchase; any failure
// here aborts the whole transaction and is never retried locally.
func fetchETHPrice(ctx kalpsdk.TransactionContextInterface, oracleChaincode string) (*big.Int, error) {
	response := ctx.InvokeChaincode(oracleChaincode, [][]byte{[]byte(oracleMethod)}, ctx.GetChannelID())
	if response.Response.Status != http.StatusOK {
		return nil, NewCustomError(http.StatusInternalServerError, "price oracle unavailable: "+response.Response.Message, nil)
	}
	if len(response.Response.Payload) == 0 {
		return nil, NewCustomError(http.StatusInternalServerError, "price oracle returned an empty payload", nil)
	}

	price, ok := new(big.Int).SetString(string(response.Response.Payload), 10)
	if !ok {
		return nil, ErrInvalidAmount("ethPrice", string(response.Response.Payload))
	}
	if price.Sign() <= 0 {
		return nil, ErrInvalidAmount("ethPrice", price.String())
	}

	return price, nil
}

// quoteZAPP converts an ETH amount in wei to 18-decimal ZAPP bits.
// Both prices carry priceDecimals decimals, so the scales cancel:
//
//	zapp = wei * ethPrice / zappPrice
//
// Division truncates toward zero so a buyer is never over-credited.
func quoteZAPP(wei, ethPrice, zappPrice *big.Int) *big.Int {
	zapp := new(big.Int).Mul(wei, ethPrice)
	return zapp.Div(zapp, zappPrice)
}
