/*
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"log"

	"github.com/Zappermint/ZappermintTokenSale/tokensale"
	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
)

func main() {
	contract := kalpsdk.Contract{IsPayableContract: true}
	contract.Logger = kalpsdk.NewLogger()
	saleChaincode, err := kalpsdk.NewChaincode(&tokensale.SmartContract{Contract: contract})
	if err != nil {
		log.Panicf("Error creating token sale chaincode: %v", err)
	}

	if err := saleChaincode.Start(); err != nil {
		log.Panicf("Error starting token sale chaincode: %v", err)
	}
}
