package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/JoeShih716/go-pay-ledger/internal/app/core/domain"
)

// LedgerService 負責所有改變餘額的操作 (存款、轉帳) 與對應的交易紀錄
//
// 每個操作都是單一交易：餘額與紀錄一起 commit 或一起 rollback。
// 業務拒絕以 domain.Outcome 回傳，只有基礎設施錯誤才回傳 error，且不會自動重試。
type LedgerService struct {
	store     Store
	publisher RecordPublisher
	now       func() time.Time
	logger    zerolog.Logger
}

func NewLedgerService(store Store, logger zerolog.Logger, opts ...Option) *LedgerService {
	o := buildOptions(opts)
	return &LedgerService{
		store:     store,
		publisher: o.publisher,
		now:       o.now,
		logger:    logger.With().Str("component", "ledger").Logger(),
	}
}

// Deposit 存款
//
// 參數:
//
//	ctx: 上下文
//	who: 發起的帳戶
//	amount: 金額 (最小貨幣單位)
//
// 回傳:
//
//	domain.Outcome: Applied(新餘額) 或 Rejected(LimitExceeded)
//	error: 基礎設施錯誤，或帳戶不存在 / 金額非正數
func (s *LedgerService) Deposit(ctx context.Context, who domain.Principal, amount int64) (domain.Outcome, error) {
	if amount <= 0 {
		return domain.Outcome{}, domain.ErrAmountMustBePositive
	}

	var outcome domain.Outcome
	err := s.store.WithinTx(ctx, func(tx StoreTx) error {
		accounts, err := tx.LockAccounts(ctx, who.AccountID)
		if err != nil {
			return err
		}
		account, ok := accounts[who.AccountID]
		if !ok {
			return domain.ErrAccountNotFound
		}

		// 超過單筆上限：只寫失敗紀錄，不動餘額
		if amount > domain.DepositLimit {
			record := domain.NewTransactionRecord(account.ID, account.Email, account.Email, amount, domain.StatusFail, s.now())
			if err := tx.AppendRecord(ctx, record); err != nil {
				return err
			}
			outcome = domain.Rejected(domain.ReasonLimitExceeded, account.Balance, record)
			return nil
		}

		if err := account.Deposit(amount); err != nil {
			return err
		}
		if err := tx.UpdateBalance(ctx, account.ID, account.Balance); err != nil {
			return err
		}
		record := domain.NewTransactionRecord(account.ID, account.Email, account.Email, amount, domain.StatusSuccess, s.now())
		if err := tx.AppendRecord(ctx, record); err != nil {
			return err
		}
		outcome = domain.Applied(account.Balance, record)
		return nil
	})
	if err != nil {
		s.logFailure(err, "deposit", who.AccountID, amount)
		return domain.Outcome{}, err
	}

	s.settle(ctx, "deposit", outcome)
	return outcome, nil
}

// Transfer 轉帳給指定 email 的帳戶
//
// 參數:
//
//	ctx: 上下文
//	who: 付款的帳戶
//	recipientEmail: 收款人 email
//	amount: 金額
//
// 回傳:
//
//	domain.Outcome: Applied(付款方新餘額) 或 Rejected(RecipientNotFound / InsufficientFunds)
//	error: 基礎設施錯誤，或付款帳戶不存在 / 金額非正數
//
// 不論成功與否只會產生一筆紀錄，歸屬於付款方。
func (s *LedgerService) Transfer(ctx context.Context, who domain.Principal, recipientEmail string, amount int64) (domain.Outcome, error) {
	if amount <= 0 {
		return domain.Outcome{}, domain.ErrAmountMustBePositive
	}

	var outcome domain.Outcome
	err := s.store.WithinTx(ctx, func(tx StoreTx) error {
		recipient, err := tx.GetAccountByEmail(ctx, recipientEmail)
		if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
			return err
		}

		// 1. 依 ID 排序一次鎖定雙方 (悲觀鎖)
		ids := []int64{who.AccountID}
		if recipient != nil {
			ids = append(ids, recipient.ID)
		}
		accounts, err := tx.LockAccounts(ctx, ids...)
		if err != nil {
			return err
		}
		source, ok := accounts[who.AccountID]
		if !ok {
			return domain.ErrAccountNotFound
		}
		if recipient != nil {
			recipient = accounts[recipient.ID]
		}

		// 2. 收款人不存在
		if recipient == nil {
			record := domain.NewTransactionRecord(source.ID, source.Email, recipientEmail, amount, domain.StatusFail, s.now())
			if err := tx.AppendRecord(ctx, record); err != nil {
				return err
			}
			outcome = domain.Rejected(domain.ReasonRecipientNotFound, source.Balance, record)
			return nil
		}

		// 3. 餘額不足 (以鎖定後讀到的餘額為準)
		if amount > source.Balance {
			record := domain.NewTransactionRecord(source.ID, source.Email, recipient.Email, amount, domain.StatusFail, s.now())
			if err := tx.AppendRecord(ctx, record); err != nil {
				return err
			}
			outcome = domain.Rejected(domain.ReasonInsufficientFunds, source.Balance, record)
			return nil
		}

		// 4. 扣款 + 入帳，轉給自己時餘額不變
		if source.ID != recipient.ID {
			if err := source.Withdraw(amount); err != nil {
				return err
			}
			if err := recipient.Deposit(amount); err != nil {
				return err
			}
			if err := tx.UpdateBalance(ctx, source.ID, source.Balance); err != nil {
				return err
			}
			if err := tx.UpdateBalance(ctx, recipient.ID, recipient.Balance); err != nil {
				return err
			}
		}
		record := domain.NewTransactionRecord(source.ID, source.Email, recipient.Email, amount, domain.StatusSuccess, s.now())
		if err := tx.AppendRecord(ctx, record); err != nil {
			return err
		}
		outcome = domain.Applied(source.Balance, record)
		return nil
	})
	if err != nil {
		s.logFailure(err, "transfer", who.AccountID, amount)
		return domain.Outcome{}, err
	}

	s.settle(ctx, "transfer", outcome)
	return outcome, nil
}

// settle 記錄結果並通知 publisher (best effort，失敗不影響結果)
func (s *LedgerService) settle(ctx context.Context, op string, outcome domain.Outcome) {
	record := outcome.Record
	if outcome.Applied {
		s.logger.Debug().
			Str("op", op).
			Int64("account_id", record.AccountID).
			Int64("amount", record.Amount).
			Int64("balance", outcome.Balance).
			Msg("ledger operation applied")
	} else {
		s.logger.Info().
			Str("op", op).
			Str("reason", string(outcome.Reason)).
			Int64("account_id", record.AccountID).
			Int64("amount", record.Amount).
			Msg("ledger operation rejected")
	}

	if err := s.publisher.Publish(ctx, record); err != nil {
		s.logger.Warn().Err(err).Str("ref_id", record.RefID.String()).Msg("publish transaction record failed")
	}
}

func (s *LedgerService) logFailure(err error, op string, accountID, amount int64) {
	if errors.Is(err, domain.ErrAccountNotFound) {
		s.logger.Warn().Str("op", op).Int64("account_id", accountID).Msg("account not found")
		return
	}
	s.logger.Error().Err(err).Str("op", op).Int64("account_id", accountID).Int64("amount", amount).Msg("ledger operation failed")
}
