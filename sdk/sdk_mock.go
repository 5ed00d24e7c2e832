//go:build !wasm

package sdk

import "fmt"

// Functional host stand-in for running the contract logic natively.
// Keeps kv state, env and ledger balances in memory so tests can script a
// transaction and assert on the resulting state and token movements.

type RevertError struct {
	Msg    string
	Symbol string
}

func (e RevertError) Error() string {
	return e.Symbol + ": " + e.Msg
}

type AbortError struct {
	Msg string
}

func (e AbortError) Error() string {
	return e.Msg
}

// LedgerCall records a single token movement the contract asked the host for.
type LedgerCall struct {
	Op     string
	From   Address
	To     Address
	Amount uint64
	Asset  Asset
}

var (
	mockState    = map[string]string{}
	mockBalances = map[Address]map[Asset]uint64{}
	mockCalls    = []LedgerCall{}
	mockEnv      = defaultEnv()
)

func defaultEnv() Env {
	return Env{
		ContractId: "milkerfun",
		TxId:       "mock-tx-0",
		Timestamp:  "0",
		Sender:     Sender{Address: Address("hive:tester")},
	}
}

// MockReset wipes state, balances, recorded calls and the env between tests.
func MockReset() {
	mockState = map[string]string{}
	mockBalances = map[Address]map[Asset]uint64{}
	mockCalls = []LedgerCall{}
	mockEnv = defaultEnv()
}

func MockSetSender(addr Address) {
	mockEnv.Sender = Sender{Address: addr, RequiredAuths: []Address{addr}}
}

func MockSetTimestamp(ts string) {
	mockEnv.Timestamp = ts
}

func MockSetTxId(id string) {
	mockEnv.TxId = id
}

func MockSetIntents(intents []Intent) {
	mockEnv.Intents = intents
}

func MockSetBalance(addr Address, asset Asset, amount uint64) {
	if mockBalances[addr] == nil {
		mockBalances[addr] = map[Asset]uint64{}
	}
	mockBalances[addr][asset] = amount
}

// MockLedgerCalls returns every draw/transfer/mint/burn recorded since reset.
func MockLedgerCalls() []LedgerCall {
	return mockCalls
}

// MockContractAddress is the pool account the host credits draws into.
func MockContractAddress() Address {
	return Address("contract:" + mockEnv.ContractId)
}

func Log(s string) {
	fmt.Println("SDK log:", s)
}

func Abort(msg string) {
	panic(AbortError{Msg: msg})
}

func Revert(msg string, symbol string) {
	panic(RevertError{Msg: msg, Symbol: symbol})
}

func StateSetObject(key string, value string) {
	mockState[key] = value
}

func StateGetObject(key string) *string {
	value, ok := mockState[key]
	if !ok {
		return nil
	}
	return &value
}

func StateDeleteObject(key string) {
	delete(mockState, key)
}

func GetEnv() Env {
	return mockEnv
}

func GetEnvKey(key string) *string {
	switch key {
	case "tx.id":
		return &mockEnv.TxId
	case "timestamp":
		return &mockEnv.Timestamp
	}
	return nil
}

func GetBalance(address Address, asset Asset) uint64 {
	return mockBalances[address][asset]
}

func TokenDraw(amount uint64, asset Asset) {
	from := mockEnv.Sender.Address
	if mockBalances[from][asset] < amount {
		panic(RevertError{Msg: "insufficient balance for draw", Symbol: "draw_failed"})
	}
	MockSetBalance(from, asset, mockBalances[from][asset]-amount)
	MockSetBalance(MockContractAddress(), asset, mockBalances[MockContractAddress()][asset]+amount)
	mockCalls = append(mockCalls, LedgerCall{Op: "draw", From: from, To: MockContractAddress(), Amount: amount, Asset: asset})
}

func TokenTransfer(to Address, amount uint64, asset Asset) {
	pool := MockContractAddress()
	if mockBalances[pool][asset] < amount {
		panic(RevertError{Msg: "insufficient contract balance", Symbol: "transfer_failed"})
	}
	MockSetBalance(pool, asset, mockBalances[pool][asset]-amount)
	MockSetBalance(to, asset, mockBalances[to][asset]+amount)
	mockCalls = append(mockCalls, LedgerCall{Op: "transfer", From: pool, To: to, Amount: amount, Asset: asset})
}

func TokenMint(to Address, amount uint64, asset Asset) {
	MockSetBalance(to, asset, mockBalances[to][asset]+amount)
	mockCalls = append(mockCalls, LedgerCall{Op: "mint", To: to, Amount: amount, Asset: asset})
}

func TokenBurn(from Address, amount uint64, asset Asset) {
	if mockBalances[from][asset] < amount {
		panic(RevertError{Msg: "insufficient balance for burn", Symbol: "burn_failed"})
	}
	MockSetBalance(from, asset, mockBalances[from][asset]-amount)
	mockCalls = append(mockCalls, LedgerCall{Op: "burn", From: from, Amount: amount, Asset: asset})
}
