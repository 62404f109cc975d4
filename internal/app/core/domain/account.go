package domain

import "time"

// Account 使用者帳戶 (錢包)
//
// Balance 以最小貨幣單位儲存，任何時刻都必須 >= 0，
// 且只能透過 Ledger Service 的操作改變。
type Account struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Name         string    `json:"name"`
	DateOfBirth  time.Time `json:"dob"`
	CreatedAt    time.Time `json:"created_at"`
	Balance      int64     `json:"balance"`
}

// Deposit 存款
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return ErrAmountMustBePositive
	}

	a.Balance = a.Balance + amount
	return nil
}

// Withdraw 提款
func (a *Account) Withdraw(amount int64) error {
	if amount <= 0 {
		return ErrAmountMustBePositive
	}

	if a.Balance < amount {
		return ErrInsufficientBalance
	}

	a.Balance = a.Balance - amount
	return nil
}

// Principal 經 Auth Gateway 驗證後的呼叫者身分
// 每次呼叫 Ledger / History 都必須顯式傳入，核心不保存任何全域 session 狀態
type Principal struct {
	AccountID int64
	Email     string
}
