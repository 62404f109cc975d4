package usecase

import (
	"context"

	"github.com/JoeShih716/go-pay-ledger/internal/app/core/domain"
)

// HistoryQuery 唯讀的交易紀錄分頁查詢
type HistoryQuery struct {
	store Store
}

func NewHistoryQuery(store Store) *HistoryQuery {
	return &HistoryQuery{store: store}
}

// List 回傳 email 為寄件人或收件人的紀錄，由新到舊，每頁 domain.HistoryPageSize 筆
// 頁碼從 1 開始，超出範圍的頁碼回傳空頁面而不是錯誤
func (q *HistoryQuery) List(ctx context.Context, email string, page int) (domain.HistoryPage, error) {
	result := domain.HistoryPage{
		Page:     page,
		PageSize: domain.HistoryPageSize,
		Records:  []*domain.TransactionRecord{},
	}

	// 頁碼小於 1 時只取總筆數
	offset, ok := domain.PageOffset(page, domain.HistoryPageSize)
	limit := domain.HistoryPageSize
	if !ok {
		offset, limit = 0, 0
	}

	records, total, err := q.store.ListHistory(ctx, email, offset, limit)
	if err != nil {
		return domain.HistoryPage{}, err
	}
	result.Total = total
	if len(records) > 0 {
		result.Records = records
	}
	return result, nil
}
