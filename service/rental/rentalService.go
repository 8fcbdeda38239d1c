package rental

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/seniormugambe/lend/model"
	"github.com/seniormugambe/lend/repository/kv"
	ledgerrepo "github.com/seniormugambe/lend/repository/ledger"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotConnected  ErrCode = "NOT_CONNECTED"
	ErrNotFound      ErrCode = "RENTAL_NOT_FOUND"
	ErrEquipNotFound ErrCode = "EQUIPMENT_NOT_FOUND"
	ErrUnavailable   ErrCode = "EQUIPMENT_UNAVAILABLE"
	ErrNotActive     ErrCode = "RENTAL_NOT_ACTIVE"
	ErrBadInput      ErrCode = "BAD_INPUT"
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

type Created struct {
	Rental model.Rental    `json:"rental"`
	Ack    *ledgerrepo.Ack `json:"ack"`
}

type Service interface {
	// Rent records an active rental for the connected account and
	// submits the rent transaction.
	Rent(ctx context.Context, accountID, equipmentID string, days int) (*Created, error)

	// Return marks an active rental returned.
	Return(ctx context.Context, accountID, rentalID string) (*ledgerrepo.Ack, error)

	// History lists the account's rentals, newest first.
	History(ctx context.Context, accountID string) ([]model.Rental, error)

	// DemandHistory aggregates all rentals into per category+location
	// counts for demand prediction.
	DemandHistory(ctx context.Context) ([]model.DemandRecord, error)
}

type service struct {
	store  kv.Store
	ledger ledgerrepo.Client
}

func New(store kv.Store, ledger ledgerrepo.Client) Service {
	return &service{store: store, ledger: ledger}
}

func rentalKey(accountID, rentalID string) string {
	return "rental:" + accountID + ":" + rentalID
}

func (s *service) Rent(ctx context.Context, accountID, equipmentID string, days int) (*Created, error) {
	if accountID == "" {
		return nil, makeErr(ErrNotConnected)
	}
	if days <= 0 {
		return nil, makeErr(ErrBadInput)
	}

	raw, found, err := s.store.Get(ctx, "equipment:"+equipmentID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, makeErr(ErrEquipNotFound)
	}
	var eq model.Equipment
	if err := json.Unmarshal(raw, &eq); err != nil {
		return nil, err
	}
	if !eq.Availability {
		return nil, makeErr(ErrUnavailable)
	}

	ack, err := s.ledger.Submit(ctx, "rent_equipment",
		fmt.Sprintf("equipment=%s account=%s days=%d", equipmentID, accountID, days))
	if err != nil {
		return nil, err
	}

	r := model.Rental{
		RentalID:      "RENT-" + uuid.NewString(),
		AccountID:     accountID,
		EquipmentID:   eq.ID,
		EquipmentName: eq.Name,
		Category:      eq.Category,
		Location:      eq.Location,
		Days:          days,
		Price:         eq.Price * float64(days),
		Status:        model.RentalActive,
		RentedAt:      time.Now().UnixMilli(),
		TransactionID: ack.TransactionID,
	}

	buf, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, rentalKey(accountID, r.RentalID), buf); err != nil {
		return nil, err
	}
	return &Created{Rental: r, Ack: ack}, nil
}

func (s *service) Return(ctx context.Context, accountID, rentalID string) (*ledgerrepo.Ack, error) {
	if accountID == "" {
		return nil, makeErr(ErrNotConnected)
	}

	key := rentalKey(accountID, rentalID)
	raw, found, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, makeErr(ErrNotFound)
	}
	var r model.Rental
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	if r.Status != model.RentalActive {
		return nil, makeErr(ErrNotActive)
	}

	now := time.Now().UnixMilli()
	r.Status = model.RentalReturned
	r.ReturnedAt = &now

	buf, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, key, buf); err != nil {
		return nil, err
	}

	return s.ledger.Submit(ctx, "return_equipment", fmt.Sprintf("rental=%s account=%s", rentalID, accountID))
}

func (s *service) History(ctx context.Context, accountID string) ([]model.Rental, error) {
	if accountID == "" {
		return nil, makeErr(ErrNotConnected)
	}

	entries, err := s.store.List(ctx, "rental:"+accountID+":")
	if err != nil {
		return nil, err
	}
	out := make([]model.Rental, 0, len(entries))
	for _, e := range entries {
		var r model.Rental
		if err := json.Unmarshal(e.Value, &r); err != nil {
			return nil, fmt.Errorf("decode %s: %w", e.Key, err)
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RentedAt > out[j].RentedAt })
	return out, nil
}

func (s *service) DemandHistory(ctx context.Context) ([]model.DemandRecord, error) {
	entries, err := s.store.List(ctx, "rental:")
	if err != nil {
		return nil, err
	}

	counts := make(map[string]*model.DemandRecord)
	var order []string
	for _, e := range entries {
		var r model.Rental
		if err := json.Unmarshal(e.Value, &r); err != nil {
			return nil, fmt.Errorf("decode %s: %w", e.Key, err)
		}
		k := r.Category + "\x00" + r.Location
		rec, ok := counts[k]
		if !ok {
			rec = &model.DemandRecord{Category: r.Category, Location: r.Location}
			counts[k] = rec
			order = append(order, k)
		}
		rec.Rentals++
	}

	out := make([]model.DemandRecord, 0, len(order))
	for _, k := range order {
		out = append(out, *counts[k])
	}
	return out, nil
}
