package ledgerrepo

import "context"

// Ack is the acknowledgement every mutating ledger call produces.
type Ack struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

// Client submits transactions to the Hedera-style ledger. The only
// implementation today is the mock; a real HashConnect-backed client
// would slot in behind the same interface.
type Client interface {
	Submit(ctx context.Context, op, memo string) (*Ack, error)
}
