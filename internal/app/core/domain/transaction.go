package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// DepositLimit 單筆存款上限 (policy ceiling)
const DepositLimit int64 = 10000

// Status 交易紀錄狀態
type Status string

const (
	StatusSuccess Status = "Success"
	StatusFail    Status = "Fail"
)

// TransactionRecord 交易紀錄，建立後不可修改 (append-only)
//
// 每一次改變餘額的嘗試 (包含被拒絕的) 都剛好產生一筆紀錄，
// Amount 永遠是請求的金額。
type TransactionRecord struct {
	// ID: 資料庫流水號，同時作為同一時間戳內的排序依據
	ID int64 `json:"id"`
	// RefID: 對外追蹤號
	RefID     uuid.UUID `json:"ref_id"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Amount    int64     `json:"amount"`
	Status    Status    `json:"status"`
	// AccountID: 發起此操作的帳戶
	AccountID int64     `json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTransactionRecord 建立一筆尚未寫入的交易紀錄
func NewTransactionRecord(accountID int64, sender, recipient string, amount int64, status Status, now time.Time) *TransactionRecord {
	return &TransactionRecord{
		RefID:     uuid.New(),
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
		Status:    status,
		AccountID: accountID,
		CreatedAt: now,
	}
}

// Involves 判斷 email 是否為此紀錄的寄件人或收件人
func (r *TransactionRecord) Involves(email string) bool {
	return r.Sender == email || r.Recipient == email
}

// NewerThan 歷史紀錄排序：時間新的在前，同時間以 ID 大的在前
func (r *TransactionRecord) NewerThan(other *TransactionRecord) bool {
	if !r.CreatedAt.Equal(other.CreatedAt) {
		return r.CreatedAt.After(other.CreatedAt)
	}
	return r.ID > other.ID
}

// LockIDs 回傳需要鎖定的帳號 ID，由小到大排序並去除重複以避免死鎖
func LockIDs(ids ...int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
