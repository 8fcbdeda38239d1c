package identitysvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/seniormugambe/lend/model"
	"github.com/seniormugambe/lend/repository/kv"
	ledgerrepo "github.com/seniormugambe/lend/repository/ledger"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotConnected     ErrCode = "NOT_CONNECTED"
	ErrIdentityNotFound ErrCode = "IDENTITY_NOT_FOUND"
	ErrIdentityExists   ErrCode = "IDENTITY_EXISTS"
	ErrBadInput         ErrCode = "BAD_INPUT"
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

// OnExisting is the re-registration policy.
type OnExisting string

const (
	Reject    OnExisting = "reject"
	Overwrite OnExisting = "overwrite"
	Merge     OnExisting = "merge"
)

type Service interface {
	// Register creates the identity record for the connected account.
	Register(ctx context.Context, accountID string, req model.RegisterIdentityReq) (*model.Identity, *ledgerrepo.Ack, error)

	// Get reads an identity; IDENTITY_NOT_FOUND when absent.
	Get(ctx context.Context, accountID string) (*model.Identity, error)

	// Verify flips IsVerified and stamps VerifiedAt.
	Verify(ctx context.Context, callerID, accountID string) (*ledgerrepo.Ack, error)
}

type service struct {
	store      kv.Store
	ledger     ledgerrepo.Client
	onExisting OnExisting
}

func New(store kv.Store, ledger ledgerrepo.Client, onExisting OnExisting) Service {
	if onExisting == "" {
		onExisting = Reject
	}
	return &service{store: store, ledger: ledger, onExisting: onExisting}
}

func identityKey(accountID string) string { return "identity:" + accountID }

func (s *service) Register(ctx context.Context, accountID string, req model.RegisterIdentityReq) (*model.Identity, *ledgerrepo.Ack, error) {
	if accountID == "" {
		return nil, nil, makeErr(ErrNotConnected)
	}

	id := &model.Identity{
		AccountID:    accountID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		UserType:     model.UserType(req.UserType),
		Location:     req.Location,
		IsVerified:   false,
		RegisteredAt: time.Now().UnixMilli(),
		IdentityHash: "IDENTITY-" + uuid.NewString(),
	}

	existing, err := s.load(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		switch s.onExisting {
		case Reject:
			return nil, nil, makeErr(ErrIdentityExists)
		case Merge:
			// profile fields change, provenance and verification stay
			id.RegisteredAt = existing.RegisteredAt
			id.IdentityHash = existing.IdentityHash
			id.IsVerified = existing.IsVerified
			id.VerifiedAt = existing.VerifiedAt
		}
	}

	if err := s.persist(ctx, id); err != nil {
		return nil, nil, err
	}

	ack, err := s.ledger.Submit(ctx, "register_identity", fmt.Sprintf("account=%s", accountID))
	if err != nil {
		return nil, nil, err
	}
	return id, ack, nil
}

func (s *service) Get(ctx context.Context, accountID string) (*model.Identity, error) {
	id, err := s.load(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, makeErr(ErrIdentityNotFound)
	}
	return id, nil
}

func (s *service) Verify(ctx context.Context, callerID, accountID string) (*ledgerrepo.Ack, error) {
	if callerID == "" {
		return nil, makeErr(ErrNotConnected)
	}

	id, err := s.load(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, makeErr(ErrIdentityNotFound)
	}

	now := time.Now().UnixMilli()
	id.IsVerified = true
	id.VerifiedAt = &now
	if err := s.persist(ctx, id); err != nil {
		return nil, err
	}

	return s.ledger.Submit(ctx, "verify_identity", fmt.Sprintf("account=%s", accountID))
}

func (s *service) load(ctx context.Context, accountID string) (*model.Identity, error) {
	raw, found, err := s.store.Get(ctx, identityKey(accountID))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var id model.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

func (s *service) persist(ctx context.Context, id *model.Identity) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, identityKey(id.AccountID), raw)
}
