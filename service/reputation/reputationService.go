package reputationsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/seniormugambe/lend/model"
	"github.com/seniormugambe/lend/repository/kv"
	ledgerrepo "github.com/seniormugambe/lend/repository/ledger"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotConnected    ErrCode = "NOT_CONNECTED"
	ErrInvalidRating   ErrCode = "INVALID_RATING"
	ErrDuplicateRating ErrCode = "DUPLICATE_RATING"
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

type Service interface {
	// Submit appends a rating to toAccount's ledger. Submissions are
	// idempotent on (rentalID, fromAccount).
	Submit(ctx context.Context, fromAccount, toAccount string, rating int, rentalID, review string) (*ledgerrepo.Ack, error)

	// Reputation derives the summary from the full stored rating set.
	Reputation(ctx context.Context, accountID string) (*model.ReputationSummary, error)
}

type service struct {
	store  kv.Store
	ledger ledgerrepo.Client

	// serialises the read-modify-write append per account; the kv
	// collaborator has no atomic append.
	mu       sync.Mutex
	accounts map[string]*sync.Mutex
}

func New(store kv.Store, ledger ledgerrepo.Client) Service {
	return &service{store: store, ledger: ledger, accounts: make(map[string]*sync.Mutex)}
}

func ratingsKey(accountID string) string { return "ratings:" + accountID }

func (s *service) accountLock(accountID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.accounts[accountID]
	if !ok {
		m = &sync.Mutex{}
		s.accounts[accountID] = m
	}
	return m
}

func (s *service) Submit(ctx context.Context, fromAccount, toAccount string, rating int, rentalID, review string) (*ledgerrepo.Ack, error) {
	if fromAccount == "" {
		return nil, makeErr(ErrNotConnected)
	}
	// checked before any read or write
	if rating < 1 || rating > 5 {
		return nil, makeErr(ErrInvalidRating)
	}

	lock := s.accountLock(toAccount)
	lock.Lock()
	defer lock.Unlock()

	records, err := s.load(ctx, toAccount)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.RentalID == rentalID && r.FromAccount == fromAccount {
			return nil, makeErr(ErrDuplicateRating)
		}
	}

	ack, err := s.ledger.Submit(ctx, "submit_rating", fmt.Sprintf("to=%s rental=%s", toAccount, rentalID))
	if err != nil {
		return nil, err
	}

	records = append(records, model.RatingRecord{
		FromAccount:   fromAccount,
		ToAccount:     toAccount,
		Rating:        rating,
		RentalID:      rentalID,
		Review:        review,
		Timestamp:     time.Now().UnixMilli(),
		TransactionID: ack.TransactionID,
	})

	raw, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, ratingsKey(toAccount), raw); err != nil {
		return nil, err
	}
	return ack, nil
}

func (s *service) Reputation(ctx context.Context, accountID string) (*model.ReputationSummary, error) {
	records, err := s.load(ctx, accountID)
	if err != nil {
		return nil, err
	}

	summary := &model.ReputationSummary{
		AccountID: accountID,
		Badges:    []string{},
		Reviews:   []model.RatingRecord{},
	}
	if len(records) == 0 {
		return summary, nil
	}

	total := 0
	for _, r := range records {
		total += r.Rating
	}
	avg := float64(total) / float64(len(records))

	summary.TotalRatings = len(records)
	summary.TotalRentals = len(records)
	summary.AverageRating = math.Round(avg*100) / 100
	summary.ReputationScore = reputationScore(avg, len(records))

	if summary.ReputationScore >= 90 {
		summary.Badges = append(summary.Badges, "Trusted Elite")
	}
	if summary.ReputationScore >= 70 {
		summary.Badges = append(summary.Badges, "Verified Provider")
	}
	if len(records) >= 10 {
		summary.Badges = append(summary.Badges, "Experienced")
	}
	if avg >= 4.5 {
		summary.Badges = append(summary.Badges, "Top Rated")
	}

	// last five records, newest first
	start := len(records) - 5
	if start < 0 {
		start = 0
	}
	for i := len(records) - 1; i >= start; i-- {
		summary.Reviews = append(summary.Reviews, records[i])
	}

	return summary, nil
}

// reputationScore maps the raw average and count into 0-100. Count
// contributes without bound until the clamp dominates.
func reputationScore(avg float64, count int) int {
	score := int(math.Floor(avg/5*100 + float64(count)*2))
	if score > 100 {
		return 100
	}
	return score
}

func (s *service) load(ctx context.Context, accountID string) ([]model.RatingRecord, error) {
	raw, found, err := s.store.Get(ctx, ratingsKey(accountID))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var records []model.RatingRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}
