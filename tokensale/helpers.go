/*
SPDX-License-Identifier: Apache-2.0
*/

package tokensale

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"net/http"
	"regexp"
	"strings"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

func GetUserId(ctx kalpsdk.TransactionContextInterface) (string, error) {
	b64ID, err := ctx.GetClientIdentity().GetID()
	if err != nil {
		return "", fmt.Errorf("failed to read clientID: %v", err)
	}

	decodeID, err := base64.StdEncoding.DecodeString(b64ID)
	if err != nil {
		return "", fmt.Errorf("failed to base64 decode clientID: %v", err)
	}

	completeId := string(decodeID)
	userId := completeId[(strings.Index(completeId, "x509::CN=") + 9):strings.Index(completeId, ",")]

	if !IsUserAddressValid(userId) {
		return "", ErrInvalidUserAddress(userId)
	}

	return userId, nil
}

func IsContractAddressValid(address string) bool {
	if address == "" {
		return false
	}

	isValid, _ := regexp.MatchString(contractAddressRegex, address)
	return isValid
}

func IsUserAddressValid(address string) bool {
	if address == "" {
		return false
	}

	isValid, _ := regexp.MatchString(hexAddressRegex, address)
	return isValid
}

func Decimals() uint64 {
	return 18
}

// ConvertZAPPToBits scales a whole ZAPP amount to 18-decimal bits.
func ConvertZAPPToBits(zappAmount uint64) string {
	decimals := Decimals()

	zappAmountBigInt := new(big.Int).SetUint64(zappAmount)

	multiplier := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)

	bitsAmount := new(big.Int).Mul(zappAmountBigInt, multiplier)

	return bitsAmount.String()
}

// toBigInt parses a base-10 amount string held in a state document.
func toBigInt(entity, value string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, ErrInvalidAmount(entity, value)
	}
	return amount, nil
}

func pow10(decimals uint64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(decimals), nil)
}

// percentOf applies a fixed-point percentage to amount, truncating toward
// zero. The percentage carries `decimals` decimals, so 5% at 8 decimals is
// 5000000.
func percentOf(amount, percentage *big.Int, decimals uint64) *big.Int {
	result := new(big.Int).Mul(amount, percentage)
	return result.Div(result, pow10(decimals))
}

func isSignerOwner(ctx kalpsdk.TransactionContextInterface, state *SaleState) error {
	signer, err := GetUserId(ctx)
	if err != nil {
		return NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	if signer != state.Owner {
		return ErrOnlyOwner
	}

	return nil
}
