package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/JoeShih716/go-pay-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-pay-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-pay-ledger/pkg/wal"
)

// walEntry 一個已提交的單位 (建立帳戶，或一組餘額變動加上對應紀錄)
type walEntry struct {
	Account  *domain.Account             `json:"account,omitempty"`
	Balances map[int64]int64             `json:"balances,omitempty"`
	Records  []*domain.TransactionRecord `json:"records,omitempty"`
}

// Store 是一個使用 Mutex 實現的記憶體帳本
//
// 結構:
//
//	accounts: 帳戶資料 Map
//	byEmail: email 對應帳戶 ID
//	records: 交易紀錄 (append-only)
//	mu: 保護以上資料，WithinTx 期間持有寫鎖，所以同一帳戶的讀寫互斥
//	wal: Write-Ahead Log 實例，可為 nil (純記憶體)
type Store struct {
	mu       sync.RWMutex
	accounts map[int64]*domain.Account
	byEmail  map[string]int64
	records  []*domain.TransactionRecord
	nextID   int64
	wal      *wal.WAL
}

// NewStore 建立一個新的記憶體 Store，並從 WAL 恢復狀態
//
// 參數:
//
//	w: Write-Ahead Log 實例，nil 代表不持久化
//
// 回傳:
//
//	*Store: Store 實例
//	error: 初始化錯誤 (如 WAL 恢復失敗)
func NewStore(w *wal.WAL) (*Store, error) {
	s := &Store{
		accounts: make(map[int64]*domain.Account),
		byEmail:  make(map[string]int64),
		wal:      w,
	}
	if w != nil {
		if err := s.recoverFromWAL(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// recoverFromWAL 從 WAL 檔案恢復帳本狀態
// 只有 NewStore 呼叫，無需 Lock (單執行緒)
func (s *Store) recoverFromWAL() error {
	return s.wal.ReadAll(func(jsonRaw []byte) error {
		var entry walEntry
		if err := json.Unmarshal(jsonRaw, &entry); err != nil {
			return fmt.Errorf("decode wal entry: %w", err)
		}
		s.apply(&entry)
		return nil
	})
}

// apply 將已提交的單位套用到記憶體
func (s *Store) apply(entry *walEntry) {
	if entry.Account != nil {
		account := *entry.Account
		s.accounts[account.ID] = &account
		s.byEmail[account.Email] = account.ID
		if account.ID > s.nextID {
			s.nextID = account.ID
		}
	}
	for id, balance := range entry.Balances {
		if account, ok := s.accounts[id]; ok {
			account.Balance = balance
		}
	}
	// 存副本，呼叫端手上的指標與帳本分離
	for _, r := range entry.Records {
		copied := *r
		s.records = append(s.records, &copied)
	}
}

// commit 先寫 WAL 再套用，WAL 失敗時狀態不變
func (s *Store) commit(entry *walEntry) error {
	if s.wal != nil {
		if err := s.wal.Write(entry); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrWALWriteFailed, err)
		}
	}
	s.apply(entry)
	return nil
}

// CreateAccount 建立帳戶
func (s *Store) CreateAccount(ctx context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[account.Email]; ok {
		return domain.ErrAccountAlreadyExists
	}

	created := *account
	created.ID = s.nextID + 1
	if err := s.commit(&walEntry{Account: &created}); err != nil {
		return err
	}
	account.ID = created.ID
	return nil
}

// GetAccountByID 取得帳戶 (回傳副本)
func (s *Store) GetAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

// GetAccountByEmail 以 email 取得帳戶 (回傳副本)
func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountByEmail(email)
}

func (s *Store) accountByEmail(email string) (*domain.Account, error) {
	id, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	copied := *s.accounts[id]
	return &copied, nil
}

// ListHistory 依時間由新到舊回傳 email 相關紀錄 (副本) 與總筆數
//
// 篩選在同一把讀鎖內完成，總筆數與頁面內容一定一致。
func (s *Store) ListHistory(ctx context.Context, email string, offset, limit int) ([]*domain.TransactionRecord, int64, error) {
	s.mu.RLock()
	matched := make([]*domain.TransactionRecord, 0)
	for _, r := range s.records {
		if r.Involves(email) {
			copied := *r
			matched = append(matched, &copied)
		}
	}
	s.mu.RUnlock()

	total := int64(len(matched))
	if limit <= 0 || offset >= len(matched) {
		return []*domain.TransactionRecord{}, total, nil
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].NewerThan(matched[j])
	})
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

// WithinTx 持有寫鎖執行 fn，fn 成功才寫入 WAL 並套用
//
// 參數:
//
//	ctx: 上下文
//	fn: 交易內容
//
// 回傳:
//
//	error: fn 的錯誤，或 domain.ErrWALWriteFailed
func (s *Store) WithinTx(ctx context.Context, fn func(tx usecase.StoreTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &storeTx{store: s, balances: make(map[int64]int64)}
	if err := fn(tx); err != nil {
		return err
	}
	if len(tx.balances) == 0 && len(tx.records) == 0 {
		return nil
	}

	// 先分配紀錄 ID，WAL 失敗時還原
	base := int64(len(s.records))
	for i, r := range tx.records {
		r.ID = base + int64(i) + 1
	}
	entry := &walEntry{Balances: tx.balances, Records: tx.records}
	if err := s.commit(entry); err != nil {
		for _, r := range tx.records {
			r.ID = 0
		}
		return err
	}
	return nil
}

// storeTx 交易期間的暫存變更，提交前不影響 Store
type storeTx struct {
	store    *Store
	balances map[int64]int64
	records  []*domain.TransactionRecord
}

func (t *storeTx) view(id int64) (*domain.Account, bool) {
	account, ok := t.store.accounts[id]
	if !ok {
		return nil, false
	}
	copied := *account
	if balance, ok := t.balances[id]; ok {
		copied.Balance = balance
	}
	return &copied, true
}

func (t *storeTx) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	id, ok := t.store.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	account, _ := t.view(id)
	return account, nil
}

// LockAccounts Store 的寫鎖已涵蓋整筆交易，這裡只回傳目前的值
func (t *storeTx) LockAccounts(ctx context.Context, ids ...int64) (map[int64]*domain.Account, error) {
	out := make(map[int64]*domain.Account, len(ids))
	for _, id := range domain.LockIDs(ids...) {
		if account, ok := t.view(id); ok {
			out[id] = account
		}
	}
	return out, nil
}

func (t *storeTx) UpdateBalance(ctx context.Context, id int64, balance int64) error {
	if _, ok := t.store.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	t.balances[id] = balance
	return nil
}

func (t *storeTx) AppendRecord(ctx context.Context, record *domain.TransactionRecord) error {
	t.records = append(t.records, record)
	return nil
}

var _ usecase.Store = (*Store)(nil)
