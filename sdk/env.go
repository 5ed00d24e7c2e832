package sdk

// Env mirrors the execution environment blob the host hands to the contract.
// Timestamp arrives either as unix seconds or RFC3339, the contract parses it.
type Env struct {
	ContractId  string   `json:"contract_id"`
	TxId        string   `json:"tx.id"`
	Index       int64    `json:"index"`
	OpIndex     int64    `json:"op_index"`
	BlockId     string   `json:"block.id"`
	BlockHeight uint64   `json:"block.height"`
	Timestamp   string   `json:"timestamp"`
	Sender      Sender   `json:"-"`
	Intents     []Intent `json:"intents"`
}
