// Hand-maintained fakes for the kalpsdk transaction context, shaped after
// counterfeiter output so tests can drive them with Stub funcs and
// Returns setters. The real interface is embedded; only the methods the
// sale touches are faked.
package mocks

import (
	"sync"

	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
	"github.com/p2eengineering/kalp-sdk-public/response"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type TransactionContext struct {
	kalpsdk.TransactionContextInterface

	GetStateStub        func(string) ([]byte, error)
	getStateMutex       sync.RWMutex
	getStateArgsForCall []struct{ arg1 string }
	getStateReturns     struct {
		result1 []byte
		result2 error
	}
	getStateReturnsOnCall map[int]struct {
		result1 []byte
		result2 error
	}

	PutStateWithoutKYCStub        func(string, []byte) error
	putStateWithoutKYCMutex       sync.RWMutex
	putStateWithoutKYCArgsForCall []struct {
		arg1 string
		arg2 []byte
	}
	putStateWithoutKYCReturns struct{ result1 error }

	DelStateWithoutKYCStub    func(string) error
	delStateWithoutKYCReturns struct{ result1 error }

	SetEventStub        func(string, []byte) error
	setEventMutex       sync.RWMutex
	setEventArgsForCall []struct {
		arg1 string
		arg2 []byte
	}
	setEventReturns struct{ result1 error }

	GetTxTimestampStub    func() (*timestamppb.Timestamp, error)
	getTxTimestampReturns struct {
		result1 *timestamppb.Timestamp
		result2 error
	}

	GetTxIDStub    func() string
	getTxIDReturns struct{ result1 string }

	GetChannelIDStub    func() string
	getChannelIDReturns struct{ result1 string }

	InvokeChaincodeStub        func(string, [][]byte, string) response.Response
	invokeChaincodeMutex       sync.RWMutex
	invokeChaincodeArgsForCall []struct {
		arg1 string
		arg2 [][]byte
		arg3 string
	}
	invokeChaincodeReturns struct{ result1 response.Response }

	GetClientIdentityStub    func() cid.ClientIdentity
	getClientIdentityReturns struct{ result1 cid.ClientIdentity }
}

func (fake *TransactionContext) GetState(arg1 string) ([]byte, error) {
	fake.getStateMutex.Lock()
	callCount := len(fake.getStateArgsForCall)
	fake.getStateArgsForCall = append(fake.getStateArgsForCall, struct{ arg1 string }{arg1})
	ret, hasRet := fake.getStateReturnsOnCall[callCount]
	fake.getStateMutex.Unlock()
	if hasRet {
		return ret.result1, ret.result2
	}
	if fake.GetStateStub != nil {
		return fake.GetStateStub(arg1)
	}
	return fake.getStateReturns.result1, fake.getStateReturns.result2
}

func (fake *TransactionContext) GetStateCallCount() int {
	fake.getStateMutex.RLock()
	defer fake.getStateMutex.RUnlock()
	return len(fake.getStateArgsForCall)
}

func (fake *TransactionContext) GetStateReturns(result1 []byte, result2 error) {
	fake.getStateReturns = struct {
		result1 []byte
		result2 error
	}{result1, result2}
}

func (fake *TransactionContext) GetStateReturnsOnCall(i int, result1 []byte, result2 error) {
	if fake.getStateReturnsOnCall == nil {
		fake.getStateReturnsOnCall = make(map[int]struct {
			result1 []byte
			result2 error
		})
	}
	fake.getStateReturnsOnCall[i] = struct {
		result1 []byte
		result2 error
	}{result1, result2}
}

func (fake *TransactionContext) PutStateWithoutKYC(arg1 string, arg2 []byte) error {
	fake.putStateWithoutKYCMutex.Lock()
	fake.putStateWithoutKYCArgsForCall = append(fake.putStateWithoutKYCArgsForCall, struct {
		arg1 string
		arg2 []byte
	}{arg1, arg2})
	fake.putStateWithoutKYCMutex.Unlock()
	if fake.PutStateWithoutKYCStub != nil {
		return fake.PutStateWithoutKYCStub(arg1, arg2)
	}
	return fake.putStateWithoutKYCReturns.result1
}

func (fake *TransactionContext) PutStateWithoutKYCCallCount() int {
	fake.putStateWithoutKYCMutex.RLock()
	defer fake.putStateWithoutKYCMutex.RUnlock()
	return len(fake.putStateWithoutKYCArgsForCall)
}

func (fake *TransactionContext) PutStateWithoutKYCReturns(result1 error) {
	fake.putStateWithoutKYCReturns = struct{ result1 error }{result1}
}

func (fake *TransactionContext) DelStateWithoutKYC(arg1 string) error {
	if fake.DelStateWithoutKYCStub != nil {
		return fake.DelStateWithoutKYCStub(arg1)
	}
	return fake.delStateWithoutKYCReturns.result1
}

func (fake *TransactionContext) DelStateWithoutKYCReturns(result1 error) {
	fake.delStateWithoutKYCReturns = struct{ result1 error }{result1}
}

func (fake *TransactionContext) SetEvent(arg1 string, arg2 []byte) error {
	fake.setEventMutex.Lock()
	fake.setEventArgsForCall = append(fake.setEventArgsForCall, struct {
		arg1 string
		arg2 []byte
	}{arg1, arg2})
	fake.setEventMutex.Unlock()
	if fake.SetEventStub != nil {
		return fake.SetEventStub(arg1, arg2)
	}
	return fake.setEventReturns.result1
}

func (fake *TransactionContext) SetEventCallCount() int {
	fake.setEventMutex.RLock()
	defer fake.setEventMutex.RUnlock()
	return len(fake.setEventArgsForCall)
}

func (fake *TransactionContext) SetEventArgsForCall(i int) (string, []byte) {
	fake.setEventMutex.RLock()
	defer fake.setEventMutex.RUnlock()
	call := fake.setEventArgsForCall[i]
	return call.arg1, call.arg2
}

func (fake *TransactionContext) SetEventReturns(result1 error) {
	fake.setEventReturns = struct{ result1 error }{result1}
}

func (fake *TransactionContext) GetTxTimestamp() (*timestamppb.Timestamp, error) {
	if fake.GetTxTimestampStub != nil {
		return fake.GetTxTimestampStub()
	}
	return fake.getTxTimestampReturns.result1, fake.getTxTimestampReturns.result2
}

func (fake *TransactionContext) GetTxTimestampReturns(result1 *timestamppb.Timestamp, result2 error) {
	fake.getTxTimestampReturns = struct {
		result1 *timestamppb.Timestamp
		result2 error
	}{result1, result2}
}

func (fake *TransactionContext) GetTxID() string {
	if fake.GetTxIDStub != nil {
		return fake.GetTxIDStub()
	}
	return fake.getTxIDReturns.result1
}

func (fake *TransactionContext) GetTxIDReturns(result1 string) {
	fake.getTxIDReturns = struct{ result1 string }{result1}
}

func (fake *TransactionContext) GetChannelID() string {
	if fake.GetChannelIDStub != nil {
		return fake.GetChannelIDStub()
	}
	return fake.getChannelIDReturns.result1
}

func (fake *TransactionContext) GetChannelIDReturns(result1 string) {
	fake.getChannelIDReturns = struct{ result1 string }{result1}
}

func (fake *TransactionContext) InvokeChaincode(arg1 string, arg2 [][]byte, arg3 string) response.Response {
	fake.invokeChaincodeMutex.Lock()
	fake.invokeChaincodeArgsForCall = append(fake.invokeChaincodeArgsForCall, struct {
		arg1 string
		arg2 [][]byte
		arg3 string
	}{arg1, arg2, arg3})
	fake.invokeChaincodeMutex.Unlock()
	if fake.InvokeChaincodeStub != nil {
		return fake.InvokeChaincodeStub(arg1, arg2, arg3)
	}
	return fake.invokeChaincodeReturns.result1
}

func (fake *TransactionContext) InvokeChaincodeCallCount() int {
	fake.invokeChaincodeMutex.RLock()
	defer fake.invokeChaincodeMutex.RUnlock()
	return len(fake.invokeChaincodeArgsForCall)
}

func (fake *TransactionContext) InvokeChaincodeReturns(result1 response.Response) {
	fake.invokeChaincodeReturns = struct{ result1 response.Response }{result1}
}

func (fake *TransactionContext) GetClientIdentity() cid.ClientIdentity {
	if fake.GetClientIdentityStub != nil {
		return fake.GetClientIdentityStub()
	}
	return fake.getClientIdentityReturns.result1
}

func (fake *TransactionContext) GetClientIdentityReturns(result1 cid.ClientIdentity) {
	fake.getClientIdentityReturns = struct{ result1 cid.ClientIdentity }{result1}
}
