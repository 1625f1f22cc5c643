package mocks

import (
	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
)

type ClientIdentity struct {
	cid.ClientIdentity

	GetIDStub    func() (string, error)
	getIDReturns struct {
		result1 string
		result2 error
	}
}

func (fake *ClientIdentity) GetID() (string, error) {
	if fake.GetIDStub != nil {
		return fake.GetIDStub()
	}
	return fake.getIDReturns.result1, fake.getIDReturns.result2
}

func (fake *ClientIdentity) GetIDReturns(result1 string, result2 error) {
	fake.getIDReturns = struct {
		result1 string
		result2 error
	}{result1, result2}
}
