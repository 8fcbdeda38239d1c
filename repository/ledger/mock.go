package ledgerrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/seniormugambe/lend/util/metrics"
)

type mockClient struct {
	contractID string
	network    string
	latency    time.Duration
}

// NewMock returns a Client that fabricates acknowledgements locally.
// latency simulates the round trip to the network; pass 0 in tests.
func NewMock(contractID, network string, latency time.Duration) Client {
	return &mockClient{contractID: contractID, network: network, latency: latency}
}

func (c *mockClient) Submit(ctx context.Context, op, memo string) (*Ack, error) {
	if c.latency > 0 {
		select {
		case <-time.After(c.latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	metrics.RecordLedgerSubmission(op)

	return &Ack{
		Success:       true,
		TransactionID: newTransactionID(),
		Message:       fmt.Sprintf("%s transaction submitted to %s", op, c.network),
	}, nil
}

// newTransactionID fabricates an id shaped like a Hedera transaction id,
// 0.0.<account>@<seconds>.<nanos>, with the numeric parts drawn from a
// uuid instead of bare rand to keep ids collision-free.
func newTransactionID() string {
	now := time.Now()
	return fmt.Sprintf("0.0.%d@%d.%d", uuid.New().ID()%1000000, now.Unix(), now.Nanosecond())
}
