package usecase

import (
	"context"

	"github.com/JoeShih716/go-pay-ledger/internal/app/core/domain"
)

// Store 帳戶與交易紀錄的持久層 (Account Store)
//
// 除了唯一性限制外不含任何業務邏輯。
type Store interface {
	// CreateAccount 建立帳戶並回填 account.ID，email 重複時回傳 domain.ErrAccountAlreadyExists
	CreateAccount(ctx context.Context, account *domain.Account) error
	// GetAccountByID 找不到時回傳 domain.ErrAccountNotFound
	GetAccountByID(ctx context.Context, id int64) (*domain.Account, error)
	// GetAccountByEmail 找不到時回傳 domain.ErrAccountNotFound
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	// ListHistory 依時間 (再依 ID) 由新到舊回傳 email 為寄件人或收件人的紀錄，
	// 以及符合條件的總筆數。兩者來自同一次一致的讀取。
	ListHistory(ctx context.Context, email string, offset, limit int) ([]*domain.TransactionRecord, int64, error)
	// WithinTx 在單一交易中執行 fn，fn 回傳 error 則整筆 rollback
	WithinTx(ctx context.Context, fn func(tx StoreTx) error) error
}

// StoreTx 交易中可用的操作，只給 Ledger Service 使用
type StoreTx interface {
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	// LockAccounts 依 ID 由小到大鎖定帳戶直到交易結束，不存在的 ID 不會出現在結果中
	LockAccounts(ctx context.Context, ids ...int64) (map[int64]*domain.Account, error)
	UpdateBalance(ctx context.Context, id int64, balance int64) error
	// AppendRecord 寫入交易紀錄，提交後 record.ID 會被回填
	AppendRecord(ctx context.Context, record *domain.TransactionRecord) error
}

// RecordPublisher 交易紀錄提交後的通知
type RecordPublisher interface {
	Publish(ctx context.Context, record *domain.TransactionRecord) error
}

// PasswordHasher 密碼雜湊
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) (bool, error)
}

// NopPublisher 不做任何事的 RecordPublisher
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *domain.TransactionRecord) error { return nil }
