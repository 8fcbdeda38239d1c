package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/seniormugambe/lend/model"
	"github.com/seniormugambe/lend/repository/kv"
	jwtutil "github.com/seniormugambe/lend/util/jwt"
)

type ErrCode string

const (
	ErrNotConnected ErrCode = "NOT_CONNECTED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Connected struct {
	Pairing model.Pairing `json:"pairing"`
	Token   string        `json:"token"`
}

type Service interface {
	// Connect creates a mock pairing and issues the session token the
	// HTTP layer uses to resolve the connected account.
	Connect(ctx context.Context) (*Connected, error)

	// Disconnect tears the pairing down.
	Disconnect(ctx context.Context, accountID string) error

	// Pairing returns the session for a connected account.
	Pairing(ctx context.Context, accountID string) (*model.Pairing, error)
}

type service struct {
	store     kv.Store
	secret    string
	network   string
	latency   time.Duration
	tokenTTLH int
}

func New(store kv.Store, secret, network string, latency time.Duration) Service {
	return &service{store: store, secret: secret, network: network, latency: latency, tokenTTLH: 24}
}

func pairingKey(accountID string) string { return "pairing:" + accountID }

func (s *service) Connect(ctx context.Context) (*Connected, error) {
	// simulate the wallet-extension round trip
	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	p := model.Pairing{
		AccountID:   fmt.Sprintf("0.0.%d", uuid.New().ID()%100000),
		Network:     s.network,
		Topic:       uuid.NewString(),
		ConnectedAt: time.Now().UnixMilli(),
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, pairingKey(p.AccountID), raw); err != nil {
		return nil, err
	}

	token, err := jwtutil.Issue(s.secret, p.AccountID, p.Network, s.tokenTTLH)
	if err != nil {
		return nil, err
	}
	return &Connected{Pairing: p, Token: token}, nil
}

func (s *service) Disconnect(ctx context.Context, accountID string) error {
	if accountID == "" {
		return makeErr(ErrNotConnected)
	}
	return s.store.Delete(ctx, pairingKey(accountID))
}

func (s *service) Pairing(ctx context.Context, accountID string) (*model.Pairing, error) {
	if accountID == "" {
		return nil, makeErr(ErrNotConnected)
	}
	raw, found, err := s.store.Get(ctx, pairingKey(accountID))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, makeErr(ErrNotConnected)
	}
	var p model.Pairing
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
