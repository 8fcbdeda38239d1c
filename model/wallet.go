// model/wallet.go
package model

// Pairing is a mock wallet session. In production this would come out
// of the HashConnect pairing flow; here the account id is synthetic.
type Pairing struct {
	AccountID   string `json:"account_id"`
	Network     string `json:"network"`
	Topic       string `json:"topic"`
	ConnectedAt int64  `json:"connected_at"`
}
