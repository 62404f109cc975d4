package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/JoeShih716/go-pay-ledger/internal/app/core/domain"
)

// RegisterInput 註冊資料
type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	DateOfBirth time.Time
}

// AccountService 註冊、登入與帳戶查詢
type AccountService struct {
	store  Store
	hasher PasswordHasher
	now    func() time.Time
	logger zerolog.Logger
}

func NewAccountService(store Store, hasher PasswordHasher, logger zerolog.Logger, opts ...Option) *AccountService {
	o := buildOptions(opts)
	return &AccountService{
		store:  store,
		hasher: hasher,
		now:    o.now,
		logger: logger.With().Str("component", "accounts").Logger(),
	}
}

// Register 建立新帳戶，初始餘額為 0
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*domain.Account, error) {
	email := strings.TrimSpace(in.Email)
	if !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidEmail
	}
	if in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	_, err := s.store.GetAccountByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrAccountAlreadyExists
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Email:        email,
		PasswordHash: hash,
		Name:         in.Name,
		DateOfBirth:  in.DateOfBirth,
		CreatedAt:    s.now(),
		Balance:      0,
	}
	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("account_id", account.ID).Msg("account registered")
	return account, nil
}

// Authenticate 以 email + 密碼登入
// email 不存在回傳 domain.ErrAccountNotFound，密碼錯誤回傳 domain.ErrInvalidCredentials
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.store.GetAccountByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	ok, err := s.hasher.Verify(account.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return account, nil
}

// GetAccount 取得帳戶
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return s.store.GetAccountByID(ctx, id)
}
