package domain

// HistoryPageSize 每頁筆數
const HistoryPageSize = 5

// HistoryPage 分頁後的交易紀錄，由新到舊
type HistoryPage struct {
	Page     int
	PageSize int
	Total    int64
	Records  []*TransactionRecord
}

// Pages 總頁數
func (p HistoryPage) Pages() int {
	if p.PageSize <= 0 || p.Total == 0 {
		return 0
	}
	return int((p.Total + int64(p.PageSize) - 1) / int64(p.PageSize))
}

func (p HistoryPage) HasPrev() bool {
	return p.Page > 1
}

func (p HistoryPage) HasNext() bool {
	return p.Page >= 1 && p.Page < p.Pages()
}

// PageOffset 將從 1 開始的頁碼轉成 offset，頁碼不合法時 ok=false
func PageOffset(page, size int) (offset int, ok bool) {
	if page < 1 || size <= 0 {
		return 0, false
	}
	return (page - 1) * size, true
}
