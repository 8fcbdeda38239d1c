package equipmentsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/seniormugambe/lend/model"
	"github.com/seniormugambe/lend/repository/kv"
	ledgerrepo "github.com/seniormugambe/lend/repository/ledger"
)

type ErrCode string

const (
	ErrNotConnected      ErrCode = "NOT_CONNECTED"
	ErrEquipmentNotFound ErrCode = "EQUIPMENT_NOT_FOUND"
	ErrBadInput          ErrCode = "BAD_INPUT"
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

type CreateReq struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Location    string   `json:"location" validate:"required"`
	Features    []string `json:"features"`
}

type Created struct {
	Equipment model.Equipment `json:"equipment"`
	Ack       *ledgerrepo.Ack `json:"ack"`
}

type Service interface {
	List(ctx context.Context) ([]model.Equipment, error)
	Detail(ctx context.Context, id string) (*model.Equipment, error)

	// Create lists new equipment owned by the connected account and
	// submits the listing transaction.
	Create(ctx context.Context, ownerID string, req CreateReq) (*Created, error)

	// Seed inserts catalog items that are not present yet.
	Seed(ctx context.Context, items []model.Equipment) error
}

type service struct {
	store  kv.Store
	ledger ledgerrepo.Client
}

func New(store kv.Store, ledger ledgerrepo.Client) Service {
	return &service{store: store, ledger: ledger}
}

func equipmentKey(id string) string { return "equipment:" + id }

func (s *service) List(ctx context.Context) ([]model.Equipment, error) {
	entries, err := s.store.List(ctx, "equipment:")
	if err != nil {
		return nil, err
	}
	out := make([]model.Equipment, 0, len(entries))
	for _, e := range entries {
		var it model.Equipment
		if err := json.Unmarshal(e.Value, &it); err != nil {
			return nil, fmt.Errorf("decode %s: %w", e.Key, err)
		}
		out = append(out, it)
	}
	return out, nil
}

func (s *service) Detail(ctx context.Context, id string) (*model.Equipment, error) {
	raw, found, err := s.store.Get(ctx, equipmentKey(id))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, makeErr(ErrEquipmentNotFound)
	}
	var it model.Equipment
	if err := json.Unmarshal(raw, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateReq) (*Created, error) {
	if ownerID == "" {
		return nil, makeErr(ErrNotConnected)
	}
	if req.Name == "" || req.Category == "" || req.Price < 0 {
		return nil, makeErr(ErrBadInput)
	}

	it := model.Equipment{
		ID:           "EQ-" + uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		Location:     req.Location,
		Rating:       0,
		Availability: true,
		Features:     req.Features,
		OwnerAccount: ownerID,
	}

	raw, err := json.Marshal(it)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, equipmentKey(it.ID), raw); err != nil {
		return nil, err
	}

	ack, err := s.ledger.Submit(ctx, "list_equipment", fmt.Sprintf("equipment=%s owner=%s", it.ID, ownerID))
	if err != nil {
		return nil, err
	}
	return &Created{Equipment: it, Ack: ack}, nil
}

func (s *service) Seed(ctx context.Context, items []model.Equipment) error {
	for _, it := range items {
		_, found, err := s.store.Get(ctx, equipmentKey(it.ID))
		if err != nil {
			return err
		}
		if found {
			continue
		}
		raw, err := json.Marshal(it)
		if err != nil {
			return err
		}
		if err := s.store.Set(ctx, equipmentKey(it.ID), raw); err != nil {
			return err
		}
	}
	return nil
}
