package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/JoeShih716/go-pay-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-pay-ledger/internal/app/core/usecase"
)

// dateLayout 生日格式 YYYY-MM-DD
const dateLayout = "2006-01-02"

type Handlers struct {
	core   *usecase.CoreUseCase
	tokens *TokenIssuer
	logger zerolog.Logger
}

func NewHandlers(core *usecase.CoreUseCase, tokens *TokenIssuer, logger zerolog.Logger) *Handlers {
	return &Handlers{core: core, tokens: tokens, logger: logger}
}

type registerRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dob"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type depositRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

type sendRequest struct {
	Email  string `json:"email" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
}

type walletResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dob,omitempty"`
	Balance     int64  `json:"balance"`
}

type tokenResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	Account   walletResponse `json:"account"`
}

type outcomeResponse struct {
	Applied bool                      `json:"applied"`
	Balance int64                     `json:"balance"`
	Reason  string                    `json:"reason,omitempty"`
	Record  *domain.TransactionRecord `json:"record"`
}

type historyResponse struct {
	Page     int                         `json:"page"`
	PageSize int                         `json:"page_size"`
	Total    int64                       `json:"total"`
	Pages    int                         `json:"pages"`
	HasNext  bool                        `json:"has_next"`
	HasPrev  bool                        `json:"has_prev"`
	Records  []*domain.TransactionRecord `json:"records"`
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handlers) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := usecase.RegisterInput{Email: req.Email, Password: req.Password, Name: req.Name}
	if req.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dob must be YYYY-MM-DD"})
			return
		}
		in.DateOfBirth = dob
	}

	account, err := h.core.Register(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeToken(c, http.StatusCreated, account)
}

func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.core.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeToken(c, http.StatusOK, account)
}

func (h *Handlers) Wallet(c *gin.Context) {
	who, _ := PrincipalFromContext(c.Request.Context())
	account, err := h.core.GetAccount(c.Request.Context(), who.AccountID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWallet(account))
}

func (h *Handlers) Deposit(c *gin.Context) {
	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	who, _ := PrincipalFromContext(c.Request.Context())
	out, err := h.core.Deposit(c.Request.Context(), who, req.Amount)
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeOutcome(c, out)
}

func (h *Handlers) Send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	who, _ := PrincipalFromContext(c.Request.Context())
	out, err := h.core.Transfer(c.Request.Context(), who, req.Email, req.Amount)
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeOutcome(c, out)
}

func (h *Handlers) History(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer"})
			return
		}
		page = n
	}

	who, _ := PrincipalFromContext(c.Request.Context())
	result, err := h.core.ListHistory(c.Request.Context(), who, page)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, historyResponse{
		Page:     result.Page,
		PageSize: result.PageSize,
		Total:    result.Total,
		Pages:    result.Pages(),
		HasNext:  result.HasNext(),
		HasPrev:  result.HasPrev(),
		Records:  result.Records,
	})
}

func (h *Handlers) writeToken(c *gin.Context, code int, account *domain.Account) {
	token, expiresAt, err := h.tokens.Issue(account)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(code, tokenResponse{Token: token, ExpiresAt: expiresAt, Account: toWallet(account)})
}

// writeOutcome 業務拒絕回 422 並附上原因與紀錄
func writeOutcome(c *gin.Context, out domain.Outcome) {
	code := http.StatusOK
	if !out.Applied {
		code = http.StatusUnprocessableEntity
	}
	c.JSON(code, outcomeResponse{
		Applied: out.Applied,
		Balance: out.Balance,
		Reason:  string(out.Reason),
		Record:  out.Record,
	})
}

// writeError 將錯誤轉為 HTTP 狀態碼
func (h *Handlers) writeError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrAmountMustBePositive), errors.Is(err, domain.ErrInvalidEmail):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, domain.ErrAccountNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrAccountAlreadyExists):
		code = http.StatusConflict
	}

	if code == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(code, gin.H{"error": "internal error"})
		return
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

func toWallet(a *domain.Account) walletResponse {
	w := walletResponse{ID: a.ID, Email: a.Email, Name: a.Name, Balance: a.Balance}
	if !a.DateOfBirth.IsZero() {
		w.DateOfBirth = a.DateOfBirth.Format(dateLayout)
	}
	return w
}
