package usecase_test

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-pay-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-pay-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-pay-ledger/internal/app/core/usecase"
)

type fixture struct {
	store   *memory.Store
	ledger  *usecase.LedgerService
	history *usecase.HistoryQuery
	pub     *recordingPublisher
}

type recordingPublisher struct {
	mu      sync.Mutex
	records []*domain.TransactionRecord
	err     error
}

func (p *recordingPublisher) Publish(_ context.Context, r *domain.TransactionRecord) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records = append(p.records, r)
	return p.err
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := memory.NewStore(nil)
	require.NoError(t, err)
	pub := &recordingPublisher{}
	return &fixture{
		store:   store,
		ledger:  usecase.NewLedgerService(store, zerolog.Nop(), usecase.WithPublisher(pub)),
		history: usecase.NewHistoryQuery(store),
		pub:     pub,
	}
}

func (f *fixture) open(t *testing.T, email string, balance int64) domain.Principal {
	t.Helper()
	ctx := context.Background()
	a := &domain.Account{Email: email, Name: email, CreatedAt: time.Now().UTC()}
	require.NoError(t, f.store.CreateAccount(ctx, a))
	if balance > 0 {
		require.NoError(t, f.store.WithinTx(ctx, func(tx usecase.StoreTx) error {
			return tx.UpdateBalance(ctx, a.ID, balance)
		}))
	}
	return domain.Principal{AccountID: a.ID, Email: a.Email}
}

func (f *fixture) balance(t *testing.T, p domain.Principal) int64 {
	t.Helper()
	a, err := f.store.GetAccountByID(context.Background(), p.AccountID)
	require.NoError(t, err)
	return a.Balance
}

func (f *fixture) recordCount(t *testing.T, p domain.Principal) int64 {
	t.Helper()
	_, n, err := f.store.ListHistory(context.Background(), p.Email, 0, 0)
	require.NoError(t, err)
	return n
}

func TestDeposit(t *testing.T) {
	tests := []struct {
		name        string
		amount      int64
		wantApplied bool
		wantReason  domain.RejectReason
		wantBalance int64
		wantStatus  domain.Status
	}{
		{"at the ceiling", 10000, true, domain.ReasonNone, 10100, domain.StatusSuccess},
		{"above the ceiling", 10001, false, domain.ReasonLimitExceeded, 100, domain.StatusFail},
		{"small amount", 1, true, domain.ReasonNone, 101, domain.StatusSuccess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			alice := f.open(t, "alice@x.io", 100)

			out, err := f.ledger.Deposit(ctx, alice, tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.wantApplied, out.Applied)
			assert.Equal(t, tt.wantReason, out.Reason)
			assert.Equal(t, tt.wantBalance, out.Balance)
			assert.Equal(t, tt.wantBalance, f.balance(t, alice))

			require.NotNil(t, out.Record)
			assert.Equal(t, tt.wantStatus, out.Record.Status)
			assert.Equal(t, tt.amount, out.Record.Amount)
			assert.Equal(t, alice.Email, out.Record.Sender)
			assert.Equal(t, alice.Email, out.Record.Recipient)
			assert.Equal(t, alice.AccountID, out.Record.AccountID)
			assert.NotZero(t, out.Record.ID)
			assert.Equal(t, int64(1), f.recordCount(t, alice))
		})
	}
}

func TestDeposit_InvalidInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.open(t, "alice@x.io", 0)

	_, err := f.ledger.Deposit(ctx, alice, 0)
	assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)
	_, err = f.ledger.Deposit(ctx, alice, -5)
	assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)
	assert.Zero(t, f.recordCount(t, alice))

	_, err = f.ledger.Deposit(ctx, domain.Principal{AccountID: 404, Email: "ghost@x.io"}, 10)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Empty(t, f.pub.records)
}

func TestTransfer_RecipientNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.open(t, "alice@x.io", 500)

	out, err := f.ledger.Transfer(ctx, alice, "nobody@x.io", 100)
	require.NoError(t, err)
	assert.False(t, out.Applied)
	assert.Equal(t, domain.ReasonRecipientNotFound, out.Reason)
	assert.Equal(t, int64(500), f.balance(t, alice))

	require.NotNil(t, out.Record)
	assert.Equal(t, domain.StatusFail, out.Record.Status)
	assert.Equal(t, alice.Email, out.Record.Sender)
	assert.Equal(t, "nobody@x.io", out.Record.Recipient)
	assert.Equal(t, int64(100), out.Record.Amount)
	assert.Equal(t, alice.AccountID, out.Record.AccountID)
	assert.Equal(t, int64(1), f.recordCount(t, alice))
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.open(t, "alice@x.io", 50)
	bob := f.open(t, "bob@x.io", 0)

	out, err := f.ledger.Transfer(ctx, alice, bob.Email, 51)
	require.NoError(t, err)
	assert.False(t, out.Applied)
	assert.Equal(t, domain.ReasonInsufficientFunds, out.Reason)
	assert.Equal(t, int64(50), out.Balance)
	assert.Equal(t, int64(50), f.balance(t, alice))
	assert.Equal(t, int64(0), f.balance(t, bob))

	assert.Equal(t, domain.StatusFail, out.Record.Status)
	assert.Equal(t, bob.Email, out.Record.Recipient)
	assert.Equal(t, int64(51), out.Record.Amount)
	assert.Equal(t, int64(1), f.recordCount(t, alice))
}

func TestTransfer_Applied(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.open(t, "alice@x.io", 300)
	bob := f.open(t, "bob@x.io", 20)

	out, err := f.ledger.Transfer(ctx, alice, bob.Email, 300)
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.Equal(t, int64(0), out.Balance)
	assert.Equal(t, int64(0), f.balance(t, alice))
	assert.Equal(t, int64(320), f.balance(t, bob))

	// 一筆轉帳只有一筆紀錄，歸屬於付款方，但雙方都查得到
	assert.Equal(t, domain.StatusSuccess, out.Record.Status)
	assert.Equal(t, alice.AccountID, out.Record.AccountID)
	assert.Equal(t, int64(1), f.recordCount(t, alice))
	assert.Equal(t, int64(1), f.recordCount(t, bob))
	require.Len(t, f.pub.records, 1)
	assert.Equal(t, out.Record.RefID, f.pub.records[0].RefID)
}

func TestTransfer_ToSelf(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.open(t, "alice@x.io", 100)

	out, err := f.ledger.Transfer(ctx, alice, alice.Email, 60)
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.Equal(t, int64(100), out.Balance)
	assert.Equal(t, int64(100), f.balance(t, alice))
	assert.Equal(t, int64(1), f.recordCount(t, alice))

	out, err = f.ledger.Transfer(ctx, alice, alice.Email, 101)
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonInsufficientFunds, out.Reason)
}

func TestTransfer_InvalidInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.open(t, "alice@x.io", 100)
	bob := f.open(t, "bob@x.io", 0)

	_, err := f.ledger.Transfer(ctx, alice, bob.Email, 0)
	assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)

	_, err = f.ledger.Transfer(ctx, domain.Principal{AccountID: 77}, bob.Email, 1)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Zero(t, f.recordCount(t, bob))
}

// 任意順序的操作下：成功轉帳不改變總額，每次嘗試剛好一筆紀錄
func TestLedger_ConservationAndOneRecordPerAttempt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	users := []domain.Principal{
		f.open(t, "u1@x.io", 1000),
		f.open(t, "u2@x.io", 1000),
		f.open(t, "u3@x.io", 1000),
		f.open(t, "u4@x.io", 1000),
	}
	total := func() int64 {
		var sum int64
		for _, u := range users {
			sum += f.balance(t, u)
		}
		return sum
	}

	rng := rand.New(rand.NewSource(42))
	expectedTotal := total()
	attempts := 0
	for i := 0; i < 300; i++ {
		from := users[rng.Intn(len(users))]
		attempts++
		if rng.Intn(5) == 0 {
			amount := int64(rng.Intn(12000) + 1)
			out, err := f.ledger.Deposit(ctx, from, amount)
			require.NoError(t, err)
			if out.Applied {
				expectedTotal += amount
			}
			continue
		}
		to := users[rng.Intn(len(users))].Email
		if rng.Intn(10) == 0 {
			to = "missing@x.io"
		}
		_, err := f.ledger.Transfer(ctx, from, to, int64(rng.Intn(1500)+1))
		require.NoError(t, err)
		assert.Equal(t, expectedTotal, total())
	}

	assert.Equal(t, expectedTotal, total())
	assert.Len(t, f.pub.records, attempts)
	for _, u := range users {
		assert.GreaterOrEqual(t, f.balance(t, u), int64(0))
	}
}

// 同一帳戶的並發轉帳不能超額扣款
func TestTransfer_ConcurrentNoOverdraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.open(t, "alice@x.io", 1000)
	bob := f.open(t, "bob@x.io", 0)
	carol := f.open(t, "carol@x.io", 0)

	const workers = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	applied := 0
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			to := bob.Email
			if i%2 == 0 {
				to = carol.Email
			}
			out, err := f.ledger.Transfer(ctx, alice, to, 100)
			assert.NoError(t, err)
			if out.Applied {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, applied)
	assert.Equal(t, int64(0), f.balance(t, alice))
	assert.Equal(t, int64(1000), f.balance(t, bob)+f.balance(t, carol))
	assert.Equal(t, int64(workers), f.recordCount(t, alice))
}

func TestLedger_PublisherFailureDoesNotChangeOutcome(t *testing.T) {
	f := newFixture(t)
	f.pub.err = errors.New("broker down")
	alice := f.open(t, "alice@x.io", 0)

	out, err := f.ledger.Deposit(context.Background(), alice, 10)
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.Equal(t, int64(10), f.balance(t, alice))
}

// failingStore 讓 WithinTx 在指定步驟失敗，模擬資料庫中斷
type failingStore struct {
	usecase.Store
	failAppend bool
	failLock   bool
}

func (s *failingStore) WithinTx(ctx context.Context, fn func(tx usecase.StoreTx) error) error {
	return s.Store.WithinTx(ctx, func(tx usecase.StoreTx) error {
		return fn(&failingTx{StoreTx: tx, store: s})
	})
}

type failingTx struct {
	usecase.StoreTx
	store *failingStore
}

var errStoreDown = errors.New("connection refused")

func (t *failingTx) LockAccounts(ctx context.Context, ids ...int64) (map[int64]*domain.Account, error) {
	if t.store.failLock {
		return nil, errStoreDown
	}
	return t.StoreTx.LockAccounts(ctx, ids...)
}

func (t *failingTx) AppendRecord(ctx context.Context, r *domain.TransactionRecord) error {
	if t.store.failAppend {
		return errStoreDown
	}
	return t.StoreTx.AppendRecord(ctx, r)
}

func TestLedger_StoreFailurePropagatesWithoutPartialState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.open(t, "alice@x.io", 500)
	bob := f.open(t, "bob@x.io", 0)

	broken := &failingStore{Store: f.store, failAppend: true}
	ledger := usecase.NewLedgerService(broken, zerolog.Nop(), usecase.WithPublisher(f.pub))

	_, err := ledger.Transfer(ctx, alice, bob.Email, 200)
	assert.ErrorIs(t, err, errStoreDown)
	_, err = ledger.Deposit(ctx, alice, 200)
	assert.ErrorIs(t, err, errStoreDown)

	// 餘額變動已 rollback，沒有任何紀錄
	assert.Equal(t, int64(500), f.balance(t, alice))
	assert.Equal(t, int64(0), f.balance(t, bob))
	assert.Zero(t, f.recordCount(t, alice))
	assert.Empty(t, f.pub.records)

	broken.failAppend, broken.failLock = false, true
	_, err = ledger.Transfer(ctx, alice, bob.Email, 200)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestLedger_UsesInjectedClock(t *testing.T) {
	store, err := memory.NewStore(nil)
	require.NoError(t, err)
	fixed := time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC)
	ledger := usecase.NewLedgerService(store, zerolog.Nop(), usecase.WithClock(func() time.Time { return fixed }))

	a := &domain.Account{Email: "a@x.io"}
	require.NoError(t, store.CreateAccount(context.Background(), a))
	out, err := ledger.Deposit(context.Background(), domain.Principal{AccountID: a.ID, Email: a.Email}, 5)
	require.NoError(t, err)
	assert.Equal(t, fixed, out.Record.CreatedAt)
}

// 呼叫端修改回傳的紀錄，不會改到帳本
func TestDeposit_ReturnedRecordIsDetached(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.open(t, "alice@x.io", 0)

	out, err := f.ledger.Deposit(ctx, alice, 100)
	require.NoError(t, err)
	require.NotNil(t, out.Record)
	out.Record.Sender = "forged@x.io"
	out.Record.Amount = 999999

	forged, err := f.history.List(ctx, "forged@x.io", 1)
	require.NoError(t, err)
	assert.Zero(t, forged.Total)
	assert.Empty(t, forged.Records)

	page, err := f.history.List(ctx, alice.Email, 1)
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, alice.Email, page.Records[0].Sender)
	assert.Equal(t, int64(100), page.Records[0].Amount)
}
