// service/reputation/reputation_service_test.go
package reputationsvc

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/seniormugambe/lend/repository/kv"
	ledgerrepo "github.com/seniormugambe/lend/repository/ledger"
)

func newSvc() (Service, kv.Store) {
	store := kv.NewMemory()
	return New(store, ledgerrepo.NewMock("0.0.123456", "testnet", 0)), store
}

func TestReputation_ZeroState(t *testing.T) {
	svc, _ := newSvc()
	got, err := svc.Reputation(context.Background(), "0.0.1001")
	if err != nil {
		t.Fatalf("Reputation: %v", err)
	}
	if got.AccountID != "0.0.1001" || got.AverageRating != 0 || got.TotalRatings != 0 ||
		got.TotalRentals != 0 || got.ReputationScore != 0 {
		t.Fatalf("zero state: %+v", got)
	}
	if got.Badges == nil || len(got.Badges) != 0 {
		t.Fatalf("badges should be empty, not nil: %v", got.Badges)
	}
	if got.Reviews == nil || len(got.Reviews) != 0 {
		t.Fatalf("reviews should be empty, not nil: %v", got.Reviews)
	}
}

func TestSubmit_FivePerfectRatings(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSvc()

	for i := 0; i < 5; i++ {
		ack, err := svc.Submit(ctx, "0.0.2000", "0.0.1001", 5, fmt.Sprintf("RENT-%d", i), "excellent")
		if err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
		if !ack.Success || ack.TransactionID == "" {
			t.Fatalf("bad ack: %+v", ack)
		}
	}

	got, err := svc.Reputation(ctx, "0.0.1001")
	if err != nil {
		t.Fatalf("Reputation: %v", err)
	}
	if got.AverageRating != 5.00 {
		t.Fatalf("avg %v; want 5.00", got.AverageRating)
	}
	if got.TotalRatings != 5 {
		t.Fatalf("total %d; want 5", got.TotalRatings)
	}
	// min(100, floor(100 + 10)) = 100
	if got.ReputationScore != 100 {
		t.Fatalf("score %d; want 100", got.ReputationScore)
	}
	if !hasBadge(got.Badges, "Trusted Elite") || !hasBadge(got.Badges, "Top Rated") {
		t.Fatalf("badges %v; want Trusted Elite and Top Rated", got.Badges)
	}
	if hasBadge(got.Badges, "Experienced") {
		t.Fatalf("Experienced needs >= 10 ratings, got %v", got.Badges)
	}
}

func TestSubmit_InvalidRatingWritesNothing(t *testing.T) {
	ctx := context.Background()
	svc, store := newSvc()

	for _, bad := range []int{0, 6, -1} {
		_, err := svc.Submit(ctx, "0.0.2000", "0.0.1001", bad, "RENT-x", "")
		if Code(err) != ErrInvalidRating {
			t.Fatalf("rating %d: code %q; want INVALID_RATING", bad, Code(err))
		}
	}

	if _, found, _ := store.Get(ctx, "ratings:0.0.1001"); found {
		t.Fatal("invalid rating reached the store")
	}
}

func TestSubmit_NotConnected(t *testing.T) {
	svc, _ := newSvc()
	_, err := svc.Submit(context.Background(), "", "0.0.1001", 5, "RENT-1", "")
	if Code(err) != ErrNotConnected {
		t.Fatalf("code %q; want NOT_CONNECTED", Code(err))
	}
}

func TestSubmit_DuplicateRentalRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSvc()

	if _, err := svc.Submit(ctx, "0.0.2000", "0.0.1001", 4, "RENT-1", ""); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	_, err := svc.Submit(ctx, "0.0.2000", "0.0.1001", 2, "RENT-1", "")
	if Code(err) != ErrDuplicateRating {
		t.Fatalf("code %q; want DUPLICATE_RATING", Code(err))
	}
	// a different rater on the same rental is fine
	if _, err := svc.Submit(ctx, "0.0.3000", "0.0.1001", 5, "RENT-1", ""); err != nil {
		t.Fatalf("other rater: %v", err)
	}

	got, _ := svc.Reputation(ctx, "0.0.1001")
	if got.TotalRatings != 2 {
		t.Fatalf("total %d; want 2", got.TotalRatings)
	}
}

func TestReputation_LastFiveNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSvc()

	for i := 1; i <= 7; i++ {
		if _, err := svc.Submit(ctx, "0.0.2000", "0.0.1001", 3, fmt.Sprintf("RENT-%d", i), fmt.Sprintf("review %d", i)); err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
	}

	got, err := svc.Reputation(ctx, "0.0.1001")
	if err != nil {
		t.Fatalf("Reputation: %v", err)
	}
	if len(got.Reviews) != 5 {
		t.Fatalf("reviews %d; want 5", len(got.Reviews))
	}
	for i, want := range []string{"RENT-7", "RENT-6", "RENT-5", "RENT-4", "RENT-3"} {
		if got.Reviews[i].RentalID != want {
			t.Fatalf("review %d = %s; want %s", i, got.Reviews[i].RentalID, want)
		}
	}
}

func TestReputation_BadgeThresholds(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSvc()

	// ten ratings of 3: avg 3, score = floor(60 + 20) = 80
	for i := 0; i < 10; i++ {
		if _, err := svc.Submit(ctx, "0.0.2000", "0.0.1001", 3, fmt.Sprintf("RENT-%d", i), ""); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	got, _ := svc.Reputation(ctx, "0.0.1001")
	if got.ReputationScore != 80 {
		t.Fatalf("score %d; want 80", got.ReputationScore)
	}
	if !hasBadge(got.Badges, "Verified Provider") || !hasBadge(got.Badges, "Experienced") {
		t.Fatalf("badges %v", got.Badges)
	}
	if hasBadge(got.Badges, "Trusted Elite") || hasBadge(got.Badges, "Top Rated") {
		t.Fatalf("badges %v", got.Badges)
	}
}

func TestSubmit_ConcurrentWritersAllLand(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSvc()

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = svc.Submit(ctx, fmt.Sprintf("0.0.%d", 3000+n), "0.0.1001", 4, fmt.Sprintf("RENT-%d", n), "")
		}(i)
	}
	wg.Wait()

	got, err := svc.Reputation(ctx, "0.0.1001")
	if err != nil {
		t.Fatalf("Reputation: %v", err)
	}
	if got.TotalRatings != writers {
		t.Fatalf("dropped writes: %d of %d landed", got.TotalRatings, writers)
	}
}

func hasBadge(badges []string, want string) bool {
	for _, b := range badges {
		if b == want {
			return true
		}
	}
	return false
}
