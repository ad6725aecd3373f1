package node

// Balance is the spendable state of one address as reported by the node.
type Balance struct {
	Balance       string `json:"balance"`
	BalanceHint   string `json:"balanceHint"`
	LockedBalance string `json:"lockedBalance"`
	UtxoNum       int    `json:"utxoNum"`
}

// Destination is a single transfer output.
type Destination struct {
	Address        string `json:"address"`
	AttoAlphAmount string `json:"attoAlphAmount"`
}

// BuildTransactionRequest asks the node to assemble an unsigned transfer.
type BuildTransactionRequest struct {
	FromPublicKey string        `json:"fromPublicKey"`
	Destinations  []Destination `json:"destinations"`
}

// UnsignedTransaction is the node's build result; TxID is what gets signed.
type UnsignedTransaction struct {
	UnsignedTx string `json:"unsignedTx"`
	TxID       string `json:"txId"`
	FromGroup  int    `json:"fromGroup"`
	ToGroup    int    `json:"toGroup"`
	GasAmount  int    `json:"gasAmount"`
	GasPrice   string `json:"gasPrice"`
}

// SubmitTransactionRequest carries a signed transaction to the node.
type SubmitTransactionRequest struct {
	UnsignedTx string `json:"unsignedTx"`
	Signature  string `json:"signature"`
}

// SubmitTransactionResult reports the accepted transaction.
type SubmitTransactionResult struct {
	TxID      string `json:"txId"`
	FromGroup int    `json:"fromGroup"`
	ToGroup   int    `json:"toGroup"`
}
