package domain

import "errors"

var (
	// ErrAmountMustBePositive 金額必須為正數
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrInsufficientBalance 餘額不足
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists 帳戶已存在 (email 重複)
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrInvalidCredentials 密碼錯誤
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidEmail email 格式錯誤
	ErrInvalidEmail = errors.New("invalid email")

	// ErrWALWriteFailed WAL 寫入失敗
	ErrWALWriteFailed = errors.New("wal write failed")
)
