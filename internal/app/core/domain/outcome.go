package domain

// RejectReason 業務拒絕原因
type RejectReason string

const (
	ReasonNone              RejectReason = ""
	ReasonLimitExceeded     RejectReason = "LimitExceeded"
	ReasonRecipientNotFound RejectReason = "RecipientNotFound"
	ReasonInsufficientFunds RejectReason = "InsufficientFunds"
)

// Outcome Ledger 操作的結果
//
// 業務拒絕不是 error，而是 Applied=false 並附上 Reason。
// Balance 為發起帳戶在此操作之後的餘額 (被拒絕時即原餘額)。
type Outcome struct {
	Applied bool
	Balance int64
	Reason  RejectReason
	Record  *TransactionRecord
}

// Applied 成功的結果
func Applied(balance int64, record *TransactionRecord) Outcome {
	return Outcome{Applied: true, Balance: balance, Record: record}
}

// Rejected 被拒絕的結果
func Rejected(reason RejectReason, balance int64, record *TransactionRecord) Outcome {
	return Outcome{Reason: reason, Balance: balance, Record: record}
}
