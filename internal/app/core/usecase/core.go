package usecase

import (
	"context"

	"github.com/JoeShih716/go-pay-ledger/internal/app/core/domain"
)

// CoreUseCase 是核心業務邏輯層，給 driving adapter (gRPC / HTTP) 使用
type CoreUseCase struct {
	ledger   *LedgerService
	history  *HistoryQuery
	accounts *AccountService
}

func NewCoreUseCase(ledger *LedgerService, history *HistoryQuery, accounts *AccountService) *CoreUseCase {
	return &CoreUseCase{
		ledger:   ledger,
		history:  history,
		accounts: accounts,
	}
}

// Register 註冊
func (c *CoreUseCase) Register(ctx context.Context, in RegisterInput) (*domain.Account, error) {
	return c.accounts.Register(ctx, in)
}

// Authenticate 登入
func (c *CoreUseCase) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	return c.accounts.Authenticate(ctx, email, password)
}

// GetAccount 取得帳戶
func (c *CoreUseCase) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	return c.accounts.GetAccount(ctx, accountID)
}

// GetAccountBalance 取得帳戶餘額
func (c *CoreUseCase) GetAccountBalance(ctx context.Context, accountID int64) (int64, error) {
	account, err := c.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// Deposit 存款
func (c *CoreUseCase) Deposit(ctx context.Context, who domain.Principal, amount int64) (domain.Outcome, error) {
	return c.ledger.Deposit(ctx, who, amount)
}

// Transfer 轉帳
func (c *CoreUseCase) Transfer(ctx context.Context, who domain.Principal, recipientEmail string, amount int64) (domain.Outcome, error) {
	return c.ledger.Transfer(ctx, who, recipientEmail, amount)
}

// ListHistory 查詢交易紀錄
func (c *CoreUseCase) ListHistory(ctx context.Context, who domain.Principal, page int) (domain.HistoryPage, error) {
	return c.history.List(ctx, who.Email, page)
}
