package model

// AccountState is a point-in-time snapshot of an account as reported by algod.
type AccountState struct {
	Address              string
	AmountMicroAlgos     uint64
	MinBalanceMicroAlgos uint64
	AssetCount           uint64
	AppCount             uint64
	Status               string
	Round                uint64
}

// NetworkParams holds suggested transaction parameters fetched from algod.
// They are fetched fresh for every transaction and never cached across builds.
type NetworkParams struct {
	FeePerByte  uint64
	MinFee      uint64
	GenesisID   string
	GenesisHash []byte
	FirstValid  uint64
	LastValid   uint64
}

// PendingTransaction is algod's view of a submitted transaction.
// ConfirmedRound is zero while the transaction sits in the pool.
type PendingTransaction struct {
	TxID             string
	ConfirmedRound   uint64
	PoolError        string
	Type             string
	Sender           string
	Receiver         string
	AmountMicroAlgos uint64
	FeeMicroAlgos    uint64
	Note             []byte
}

// RawTransaction is a flattened indexer record before normalization.
type RawTransaction struct {
	ID               string
	ConfirmedRound   uint64
	RoundTime        uint64
	Type             string
	Sender           string
	Receiver         string
	AmountMicroAlgos uint64
	FeeMicroAlgos    uint64
	Note             []byte
}
