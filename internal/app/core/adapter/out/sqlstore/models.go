package sqlstore

import (
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-pay-ledger/internal/app/core/domain"
)

// sqlAccount 對應資料庫的 accounts 表
type sqlAccount struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;size:100;not null"`
	Name         string    `gorm:"size:1000"`
	DateOfBirth  time.Time `gorm:"column:dob"`
	Balance      int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    int64 `gorm:"autoUpdateTime:milli"` // 自動更新時間
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

func (a *sqlAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:           a.ID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Name:         a.Name,
		DateOfBirth:  a.DateOfBirth,
		CreatedAt:    a.CreatedAt,
		Balance:      a.Balance,
	}
}

func newSQLAccount(a *domain.Account) *sqlAccount {
	return &sqlAccount{
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Name:         a.Name,
		DateOfBirth:  a.DateOfBirth,
		Balance:      a.Balance,
		CreatedAt:    a.CreatedAt,
	}
}

// sqlTransactionRecord 對應資料庫的 transaction_records 表
// Owner 只用來讓 AutoMigrate 建立外鍵，查詢時不 Preload
type sqlTransactionRecord struct {
	ID        int64       `gorm:"primaryKey;autoIncrement"`
	RefID     string      `gorm:"column:ref_id;size:36;uniqueIndex"` // 對應 domain.TransactionRecord.RefID
	Sender    string      `gorm:"size:100;index"`
	Recipient string      `gorm:"size:100;index"`
	Amount    int64       `gorm:"not null"`
	Status    string      `gorm:"size:16;not null"`
	AccountID int64       `gorm:"not null;index"`
	Owner     *sqlAccount `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt time.Time   `gorm:"index"`
}

func (*sqlTransactionRecord) TableName() string {
	return "transaction_records"
}

func (r *sqlTransactionRecord) toDomain() *domain.TransactionRecord {
	refID, _ := uuid.Parse(r.RefID)
	return &domain.TransactionRecord{
		ID:        r.ID,
		RefID:     refID,
		Sender:    r.Sender,
		Recipient: r.Recipient,
		Amount:    r.Amount,
		Status:    domain.Status(r.Status),
		AccountID: r.AccountID,
		CreatedAt: r.CreatedAt,
	}
}

func newSQLTransactionRecord(r *domain.TransactionRecord) *sqlTransactionRecord {
	return &sqlTransactionRecord{
		RefID:     r.RefID.String(),
		Sender:    r.Sender,
		Recipient: r.Recipient,
		Amount:    r.Amount,
		Status:    string(r.Status),
		AccountID: r.AccountID,
		CreatedAt: r.CreatedAt,
	}
}
