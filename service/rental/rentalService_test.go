// service/rental/rental_service_test.go
package rental

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seniormugambe/lend/model"
	"github.com/seniormugambe/lend/repository/kv"
	ledgerrepo "github.com/seniormugambe/lend/repository/ledger"
)

func seed(t *testing.T, store kv.Store, items ...model.Equipment) {
	t.Helper()
	for _, it := range items {
		raw, err := json.Marshal(it)
		require.NoError(t, err)
		require.NoError(t, store.Set(context.Background(), "equipment:"+it.ID, raw))
	}
}

func newSvc() (Service, kv.Store) {
	store := kv.NewMemory()
	return New(store, ledgerrepo.NewMock("0.0.123456", "testnet", 0)), store
}

func TestRent_Success(t *testing.T) {
	ctx := context.Background()
	svc, store := newSvc()
	seed(t, store, model.Equipment{
		ID: "EQ-1", Name: "CAT 320", Category: "Excavators",
		Location: "Kampala", Price: 450, Availability: true,
	})

	created, err := svc.Rent(ctx, "0.0.7", "EQ-1", 3)
	require.NoError(t, err)
	require.True(t, created.Ack.Success)
	require.Equal(t, model.RentalActive, created.Rental.Status)
	require.Equal(t, float64(1350), created.Rental.Price)
	require.Equal(t, "Excavators", created.Rental.Category)
	require.NotEmpty(t, created.Rental.RentalID)
	require.Equal(t, created.Ack.TransactionID, created.Rental.TransactionID)
}

func TestRent_Errors(t *testing.T) {
	ctx := context.Background()
	svc, store := newSvc()
	seed(t, store, model.Equipment{ID: "EQ-off", Availability: false})

	_, err := svc.Rent(ctx, "", "EQ-1", 1)
	require.Equal(t, ErrNotConnected, Code(err))

	_, err = svc.Rent(ctx, "0.0.7", "EQ-1", 0)
	require.Equal(t, ErrBadInput, Code(err))

	_, err = svc.Rent(ctx, "0.0.7", "EQ-missing", 1)
	require.Equal(t, ErrEquipNotFound, Code(err))

	_, err = svc.Rent(ctx, "0.0.7", "EQ-off", 1)
	require.Equal(t, ErrUnavailable, Code(err))
}

func TestReturn(t *testing.T) {
	ctx := context.Background()
	svc, store := newSvc()
	seed(t, store, model.Equipment{ID: "EQ-1", Category: "c", Availability: true})

	created, err := svc.Rent(ctx, "0.0.7", "EQ-1", 1)
	require.NoError(t, err)

	ack, err := svc.Return(ctx, "0.0.7", created.Rental.RentalID)
	require.NoError(t, err)
	require.True(t, ack.Success)

	rows, err := svc.History(ctx, "0.0.7")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, model.RentalReturned, rows[0].Status)
	require.NotNil(t, rows[0].ReturnedAt)

	// double return
	_, err = svc.Return(ctx, "0.0.7", created.Rental.RentalID)
	require.Equal(t, ErrNotActive, Code(err))

	// unknown rental, wrong account
	_, err = svc.Return(ctx, "0.0.8", created.Rental.RentalID)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestHistory_NewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, store := newSvc()
	seed(t, store,
		model.Equipment{ID: "EQ-1", Category: "a", Availability: true},
		model.Equipment{ID: "EQ-2", Category: "b", Availability: true},
	)

	first, err := svc.Rent(ctx, "0.0.7", "EQ-1", 1)
	require.NoError(t, err)
	second, err := svc.Rent(ctx, "0.0.7", "EQ-2", 1)
	require.NoError(t, err)

	rows, err := svc.History(ctx, "0.0.7")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// ms timestamps can collide; accept either strict order or tie
	require.GreaterOrEqual(t, rows[0].RentedAt, rows[1].RentedAt)
	ids := []string{rows[0].RentalID, rows[1].RentalID}
	require.ElementsMatch(t, ids, []string{first.Rental.RentalID, second.Rental.RentalID})
}

func TestDemandHistory(t *testing.T) {
	ctx := context.Background()
	svc, store := newSvc()
	seed(t, store,
		model.Equipment{ID: "EQ-1", Category: "Excavators", Location: "Kampala", Availability: true},
		model.Equipment{ID: "EQ-2", Category: "Excavators", Location: "Kampala", Availability: true},
		model.Equipment{ID: "EQ-3", Category: "Tractors", Location: "Gulu", Availability: true},
	)

	for _, eq := range []string{"EQ-1", "EQ-2", "EQ-3"} {
		_, err := svc.Rent(ctx, "0.0.7", eq, 1)
		require.NoError(t, err)
	}
	_, err := svc.Rent(ctx, "0.0.8", "EQ-1", 2)
	require.NoError(t, err)

	rows, err := svc.DemandHistory(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byKey := map[string]int{}
	for _, r := range rows {
		byKey[r.Category+"/"+r.Location] = r.Rentals
	}
	require.Equal(t, 3, byKey["Excavators/Kampala"])
	require.Equal(t, 1, byKey["Tractors/Gulu"])
}
