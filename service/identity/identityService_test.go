// service/identity/identity_service_test.go
package identitysvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seniormugambe/lend/model"
	"github.com/seniormugambe/lend/repository/kv"
	ledgerrepo "github.com/seniormugambe/lend/repository/ledger"
)

func newSvc(t *testing.T, policy OnExisting) (Service, kv.Store) {
	t.Helper()
	store := kv.NewMemory()
	ledger := ledgerrepo.NewMock("0.0.123456", "testnet", 0)
	return New(store, ledger, policy), store
}

func profile() model.RegisterIdentityReq {
	return model.RegisterIdentityReq{
		Name:     "Asha Nansubuga",
		Email:    "asha@example.com",
		Phone:    "+256700000001",
		UserType: "both",
		Location: "Kampala",
	}
}

func TestRegister_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSvc(t, Reject)

	id, ack, err := svc.Register(ctx, "0.0.1001", profile())
	require.NoError(t, err)
	require.True(t, ack.Success)
	require.NotEmpty(t, ack.TransactionID)
	require.False(t, id.IsVerified)
	require.Nil(t, id.VerifiedAt)
	require.NotEmpty(t, id.IdentityHash)
	require.NotZero(t, id.RegisteredAt)
	require.Equal(t, model.UserBoth, id.UserType)

	got, err := svc.Get(ctx, "0.0.1001")
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestRegister_NotConnected(t *testing.T) {
	svc, _ := newSvc(t, Reject)
	_, _, err := svc.Register(context.Background(), "", profile())
	require.Error(t, err)
	require.Equal(t, ErrNotConnected, Code(err))
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := newSvc(t, Reject)
	_, err := svc.Get(context.Background(), "0.0.9999")
	require.Error(t, err)
	require.Equal(t, ErrIdentityNotFound, Code(err))
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSvc(t, Reject)

	_, _, err := svc.Register(ctx, "0.0.1001", profile())
	require.NoError(t, err)

	ack, err := svc.Verify(ctx, "0.0.9", "0.0.1001")
	require.NoError(t, err)
	require.True(t, ack.Success)

	got, err := svc.Get(ctx, "0.0.1001")
	require.NoError(t, err)
	require.True(t, got.IsVerified)
	require.NotNil(t, got.VerifiedAt)
}

func TestVerify_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSvc(t, Reject)

	_, err := svc.Verify(ctx, "", "0.0.1001")
	require.Equal(t, ErrNotConnected, Code(err))

	_, err = svc.Verify(ctx, "0.0.9", "0.0.1001")
	require.Equal(t, ErrIdentityNotFound, Code(err))
}

func TestRegister_OnExistingReject(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSvc(t, Reject)

	_, _, err := svc.Register(ctx, "0.0.1001", profile())
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "0.0.1001", profile())
	require.Error(t, err)
	require.Equal(t, ErrIdentityExists, Code(err))
}

func TestRegister_OnExistingOverwrite(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSvc(t, Overwrite)

	first, _, err := svc.Register(ctx, "0.0.1001", profile())
	require.NoError(t, err)

	p := profile()
	p.Name = "New Name"
	second, _, err := svc.Register(ctx, "0.0.1001", p)
	require.NoError(t, err)
	require.Equal(t, "New Name", second.Name)
	require.NotEqual(t, first.IdentityHash, second.IdentityHash)
}

func TestRegister_OnExistingMerge(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSvc(t, Merge)

	first, _, err := svc.Register(ctx, "0.0.1001", profile())
	require.NoError(t, err)

	_, err = svc.Verify(ctx, "0.0.9", "0.0.1001")
	require.NoError(t, err)

	p := profile()
	p.Location = "Gulu"
	merged, _, err := svc.Register(ctx, "0.0.1001", p)
	require.NoError(t, err)

	require.Equal(t, "Gulu", merged.Location)
	require.Equal(t, first.IdentityHash, merged.IdentityHash)
	require.Equal(t, first.RegisteredAt, merged.RegisteredAt)
	require.True(t, merged.IsVerified, "merge keeps verification state")
	require.NotNil(t, merged.VerifiedAt)
}
