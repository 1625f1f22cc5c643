/*
SPDX-License-Identifier: Apache-2.0
*/

package tokensale

import (
	"errors"
	"fmt"
)

// Reason strings follow the sale's error taxonomy: phase violations,
// authorization, cap/limit violations, malformed input and double claims.
var (
	ErrNotOpen           = errors.New("PhaseError: token sale is not open")
	ErrSaleClosed        = errors.New("PhaseError: token sale is closed")
	ErrNotEnded          = errors.New("PhaseError: token sale has not ended")
	ErrAlreadyEnded      = errors.New("PhaseError: token sale already ended")
	ErrNotClaimable      = errors.New("PhaseError: token sale is not claimable yet")
	ErrSoftCapNotReached = errors.New("PhaseError: hasn't reached soft cap")

	ErrOnlyOwner        = errors.New("AuthError: caller is not the owner")
	ErrOnlyZAPPContract = errors.New("AuthError: caller is not the ZAPP contract")

	ErrHardCapReached = errors.New("CapError: hard cap reached")
	ErrSoftCapReached = errors.New("CapError: soft cap reached, nothing to refund")
	ErrMaxHunters     = errors.New("CapError: max hunters reached")

	ErrAlreadyClaimed    = errors.New("AlreadyClaimed: wallet has claimed yet")
	ErrNothingToClaim    = errors.New("NothingToClaim")
	ErrInsufficientFunds = errors.New("InsufficientFunds")

	ErrAlreadyInitialized = errors.New("ContractAlreadyInitialized")
	ErrZAPPContractSet    = errors.New("ZAPPContractAlreadySet")
	ErrAlreadyRegistered  = errors.New("HunterAlreadyRegistered")
)

type CustomError struct {
	Code    int
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func NewCustomError(code int, message string, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func ErrInvalidAmount(entity, value string) error {
	return fmt.Errorf("ValidationError: InvalidAmount for %s with value %s", entity, value)
}

func ErrInvalidUserAddress(address string) error {
	return fmt.Errorf("ValidationError: InvalidUserAddress %s", address)
}

func ErrInvalidContractAddress(address string) error {
	return fmt.Errorf("ValidationError: InvalidContractAddress %s", address)
}

func ErrInvalidConfiguration(detail string) error {
	return fmt.Errorf("ValidationError: InvalidConfiguration: %s", detail)
}
