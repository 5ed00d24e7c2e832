//go:build wasm

package sdk

import (
	"encoding/json"
	"strconv"
)

//go:wasmimport sdk console.log
func log(s *string) *string

// Log writes a message to the wasm console so we can trace contract steps.
// Example payload: sdk.Log("bought 3 cows")
func Log(s string) {
	log(&s)
}

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk tokens.get_balance
func getBalance(arg1 *string, arg2 *string) *string

//go:wasmimport sdk tokens.draw
func tokenDraw(arg1 *string, arg2 *string) *string

//go:wasmimport sdk tokens.transfer
func tokenTransfer(arg1 *string, arg2 *string, arg3 *string) *string

//go:wasmimport sdk tokens.mint
func tokenMint(arg1 *string, arg2 *string, arg3 *string) *string

//go:wasmimport sdk tokens.burn
func tokenBurn(arg1 *string, arg2 *string, arg3 *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func revert(msg, symbol *string)

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("state corrupted")
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// Revert throws a named error back to the caller with a short symbol.
// The host discards the whole transaction, nothing written so far survives.
// Example payload: sdk.Revert("amount must be > 0", "invalid_amount")
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
	panic(symbol + ": " + msg)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("count", "5")
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("count")
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("count")
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	envStr := *getEnv(nil)
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	if sender, ok := envMap["msg.sender"].(string); ok {
		env.Sender = Sender{Address: Address(sender)}
	}
	if auths, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				env.Sender.RequiredAuths = append(env.Sender.RequiredAuths, Address(addr))
			}
		}
	}
	return env
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("block.timestamp")
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// GetBalance queries the ledger balance for the given account+asset combo.
// Example payload: sdk.GetBalance(sdk.Address("contract:milkerfun"), sdk.AssetMilk)
func GetBalance(address Address, asset Asset) uint64 {
	addr := address.String()
	as := asset.String()
	balStr := *getBalance(&addr, &as)
	bal, err := strconv.ParseUint(balStr, 10, 64)
	if err != nil {
		panic(err)
	}
	return bal
}

// TokenDraw pulls tokens from the caller into the contract within the transfer.allow limit.
// Example payload: sdk.TokenDraw(6_000_000_000, sdk.AssetMilk)
func TokenDraw(amount uint64, asset Asset) {
	amt := strconv.FormatUint(amount, 10)
	as := asset.String()
	tokenDraw(&amt, &as)
}

// TokenTransfer sends tokens from the contract towards a user address.
// Example payload: sdk.TokenTransfer(sdk.Address("hive:alice"), 500, sdk.AssetMilk)
func TokenTransfer(to Address, amount uint64, asset Asset) {
	toaddr := to.String()
	amt := strconv.FormatUint(amount, 10)
	as := asset.String()
	tokenTransfer(&toaddr, &amt, &as)
}

// TokenMint issues new units of a contract-owned asset to an address.
// Example payload: sdk.TokenMint(sdk.Address("hive:alice"), 3, sdk.AssetCow)
func TokenMint(to Address, amount uint64, asset Asset) {
	toaddr := to.String()
	amt := strconv.FormatUint(amount, 10)
	as := asset.String()
	tokenMint(&toaddr, &amt, &as)
}

// TokenBurn destroys units of a contract-owned asset held by an address.
// Example payload: sdk.TokenBurn(sdk.Address("hive:alice"), 3, sdk.AssetCow)
func TokenBurn(from Address, amount uint64, asset Asset) {
	fromaddr := from.String()
	amt := strconv.FormatUint(amount, 10)
	as := asset.String()
	tokenBurn(&fromaddr, &amt, &as)
}
