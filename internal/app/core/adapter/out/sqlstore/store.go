package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-pay-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-pay-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-pay-ledger/pkg/database"
)

// Store 以 GORM 實作的 Account Store (MySQL / PostgreSQL / SQLite)
type Store struct {
	client *database.Client
}

func NewStore(client *database.Client) *Store {
	return &Store{
		client: client,
	}
}

// Migrate 建立 / 更新 accounts 與 transaction_records 資料表
func (s *Store) Migrate(ctx context.Context) error {
	return s.client.DB().WithContext(ctx).AutoMigrate(&sqlAccount{}, &sqlTransactionRecord{})
}

func (s *Store) db(ctx context.Context) *gorm.DB {
	return s.client.DB().WithContext(ctx)
}

// CreateAccount 建立帳戶並回填 ID
func (s *Store) CreateAccount(ctx context.Context, account *domain.Account) error {
	row := newSQLAccount(account)
	if err := s.db(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAccountAlreadyExists
		}
		return fmt.Errorf("create account: %w", err)
	}
	account.ID = row.ID
	return nil
}

// GetAccountByID 取得帳戶
func (s *Store) GetAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	return findAccount(s.db(ctx), "id = ?", id)
}

// GetAccountByEmail 以 email 取得帳戶
func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return findAccount(s.db(ctx), "email = ?", email)
}

// ListHistory 依時間 (再依 ID) 由新到舊回傳 email 相關的紀錄與總筆數
//
// Count 與 Find 在同一個 REPEATABLE READ 唯讀交易內執行，看到同一個快照。
func (s *Store) ListHistory(ctx context.Context, email string, offset, limit int) ([]*domain.TransactionRecord, int64, error) {
	var (
		total int64
		rows  []sqlTransactionRecord
	)
	err := s.db(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&sqlTransactionRecord{}).Scopes(involving(email)).Count(&total).Error; err != nil {
			return fmt.Errorf("count history: %w", err)
		}
		if limit <= 0 || int64(offset) >= total {
			return nil
		}
		err := tx.
			Scopes(involving(email)).
			Order("created_at DESC").
			Order("id DESC").
			Offset(offset).
			Limit(limit).
			Find(&rows).Error
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, 0, err
	}

	records := make([]*domain.TransactionRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].toDomain())
	}
	return records, total, nil
}

// WithinTx 開啟資料庫交易執行 fn，fn 回傳 error 或 panic 時 rollback
func (s *Store) WithinTx(ctx context.Context, fn func(tx usecase.StoreTx) error) error {
	return s.db(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&storeTx{db: tx})
	})
}

type storeTx struct {
	db *gorm.DB
}

func (t *storeTx) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return findAccount(t.db.WithContext(ctx), "email = ?", email)
}

// LockAccounts 取得鎖定帳號 悲觀鎖 (SELECT ... FOR UPDATE)，依 ID 排序避免死鎖
func (t *storeTx) LockAccounts(ctx context.Context, ids ...int64) (map[int64]*domain.Account, error) {
	lockIDs := domain.LockIDs(ids...)
	var rows []sqlAccount
	if err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", lockIDs).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("lock accounts: %w", err)
	}

	accounts := make(map[int64]*domain.Account, len(rows))
	for i := range rows {
		accounts[rows[i].ID] = rows[i].toDomain()
	}
	return accounts, nil
}

func (t *storeTx) UpdateBalance(ctx context.Context, id int64, balance int64) error {
	err := t.db.WithContext(ctx).
		Model(&sqlAccount{}).
		Where("id = ?", id).
		Update("balance", balance).Error
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	return nil
}

func (t *storeTx) AppendRecord(ctx context.Context, record *domain.TransactionRecord) error {
	row := newSQLTransactionRecord(record)
	if err := t.db.WithContext(ctx).Omit("Owner").Create(row).Error; err != nil {
		return fmt.Errorf("append transaction record: %w", err)
	}
	record.ID = row.ID
	return nil
}

func findAccount(db *gorm.DB, query string, arg any) (*domain.Account, error) {
	var row sqlAccount
	err := db.Where(query, arg).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	return row.toDomain(), nil
}

// involving 寄件人或收件人為 email 的紀錄
func involving(email string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("sender = ? OR recipient = ?", email, email)
	}
}

var _ usecase.Store = (*Store)(nil)
