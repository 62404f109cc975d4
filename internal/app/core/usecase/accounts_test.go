package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-pay-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-pay-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-pay-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-pay-ledger/pkg/password"
)

func newAccountService(t *testing.T) (*usecase.AccountService, *memory.Store) {
	t.Helper()
	store, err := memory.NewStore(nil)
	require.NoError(t, err)
	fixed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	svc := usecase.NewAccountService(store, password.NewHasher(password.MinCost), zerolog.Nop(),
		usecase.WithClock(func() time.Time { return fixed }))
	return svc, store
}

func TestAccountService_Register(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()
	dob := time.Date(1995, 7, 14, 0, 0, 0, 0, time.UTC)

	a, err := svc.Register(ctx, usecase.RegisterInput{Email: " alice@x.io ", Password: "s3cret", Name: "Alice", DateOfBirth: dob})
	require.NoError(t, err)
	assert.NotZero(t, a.ID)
	assert.Equal(t, "alice@x.io", a.Email)
	assert.Equal(t, int64(0), a.Balance)
	assert.Equal(t, dob, a.DateOfBirth)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), a.CreatedAt)
	assert.NotEqual(t, "s3cret", a.PasswordHash)

	_, err = svc.Register(ctx, usecase.RegisterInput{Email: "alice@x.io", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

	_, err = svc.Register(ctx, usecase.RegisterInput{Email: "not-an-email", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.Register(ctx, usecase.RegisterInput{Email: "bob@x.io"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAccountService_Authenticate(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()
	registered, err := svc.Register(ctx, usecase.RegisterInput{Email: "alice@x.io", Password: "s3cret", Name: "Alice"})
	require.NoError(t, err)

	a, err := svc.Authenticate(ctx, "alice@x.io", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, a.ID)

	_, err = svc.Authenticate(ctx, "alice@x.io", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@x.io", "s3cret")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestCoreUseCase(t *testing.T) {
	store, err := memory.NewStore(nil)
	require.NoError(t, err)
	core := usecase.NewCoreUseCase(
		usecase.NewLedgerService(store, zerolog.Nop()),
		usecase.NewHistoryQuery(store),
		usecase.NewAccountService(store, password.NewHasher(password.MinCost), zerolog.Nop()),
	)
	ctx := context.Background()

	a, err := core.Register(ctx, usecase.RegisterInput{Email: "a@x.io", Password: "pw"})
	require.NoError(t, err)
	who := domain.Principal{AccountID: a.ID, Email: a.Email}

	out, err := core.Deposit(ctx, who, 250)
	require.NoError(t, err)
	assert.True(t, out.Applied)

	balance, err := core.GetAccountBalance(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(250), balance)

	_, err = core.GetAccountBalance(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	page, err := core.ListHistory(ctx, who, 1)
	require.NoError(t, err)
	assert.Len(t, page.Records, 1)
}
