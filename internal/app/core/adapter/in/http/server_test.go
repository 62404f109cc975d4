package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	http_adapter "github.com/JoeShih716/go-pay-ledger/internal/app/core/adapter/in/http"
	"github.com/JoeShih716/go-pay-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-pay-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-pay-ledger/pkg/password"
)

type api struct {
	t       *testing.T
	handler http.Handler
}

func newAPI(t *testing.T) *api {
	t.Helper()
	store, err := memory.NewStore(nil)
	require.NoError(t, err)
	core := usecase.NewCoreUseCase(
		usecase.NewLedgerService(store, zerolog.Nop()),
		usecase.NewHistoryQuery(store),
		usecase.NewAccountService(store, password.NewHasher(password.MinCost), zerolog.Nop()),
	)
	tokens := http_adapter.NewTokenIssuer("test-secret", "go-pay-ledger", time.Hour)
	srv := http_adapter.NewServer(":0", core, tokens, zerolog.Nop())
	return &api{t: t, handler: srv.Handler()}
}

func (a *api) do(method, path, token string, body any) (int, map[string]any) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec.Code, out
}

func (a *api) register(email string) string {
	a.t.Helper()
	code, body := a.do(http.MethodPost, "/register", "", map[string]any{
		"email": email, "password": "pw", "name": "N", "dob": "1990-02-03",
	})
	require.Equal(a.t, http.StatusCreated, code, body)
	return body["token"].(string)
}

func TestAPI_RegisterAndLogin(t *testing.T) {
	a := newAPI(t)

	code, _ := a.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, code)

	token := a.register("alice@x.io")
	assert.NotEmpty(t, token)

	code, body := a.do(http.MethodPost, "/register", "", map[string]any{"email": "alice@x.io", "password": "x"})
	assert.Equal(t, http.StatusConflict, code, body)

	code, _ = a.do(http.MethodPost, "/register", "", map[string]any{"email": "bob@x.io", "password": "x", "dob": "03/02/1990"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = a.do(http.MethodPost, "/register", "", map[string]any{"email": "bob", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = a.do(http.MethodPost, "/login", "", map[string]any{"email": "alice@x.io", "password": "pw"})
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["token"])

	code, _ = a.do(http.MethodPost, "/login", "", map[string]any{"email": "alice@x.io", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = a.do(http.MethodPost, "/login", "", map[string]any{"email": "nobody@x.io", "password": "pw"})
	assert.Equal(t, http.StatusNotFound, code)

	code, body = a.do(http.MethodGet, "/wallet", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice@x.io", body["email"])
	assert.Equal(t, "1990-02-03", body["dob"])
	assert.Equal(t, float64(0), body["balance"])
}

func TestAPI_RequiresToken(t *testing.T) {
	a := newAPI(t)
	for _, path := range []string{"/wallet", "/history"} {
		code, _ := a.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, code, path)
		code, _ = a.do(http.MethodGet, path, "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, code, path)
	}
	code, _ := a.do(http.MethodPost, "/deposit", "", map[string]any{"amount": 1})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAPI_DepositSendHistory(t *testing.T) {
	a := newAPI(t)
	alice := a.register("alice@x.io")
	bob := a.register("bob@x.io")

	code, body := a.do(http.MethodPost, "/deposit", alice, map[string]any{"amount": 10000})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, true, body["applied"])
	assert.Equal(t, float64(10000), body["balance"])

	code, body = a.do(http.MethodPost, "/deposit", alice, map[string]any{"amount": 10001})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "LimitExceeded", body["reason"])
	assert.Equal(t, "Fail", body["record"].(map[string]any)["status"])

	code, _ = a.do(http.MethodPost, "/deposit", alice, map[string]any{"amount": -5})
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = a.do(http.MethodPost, "/deposit", alice, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = a.do(http.MethodPost, "/send", alice, map[string]any{"email": "bob@x.io", "amount": 2500})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, float64(7500), body["balance"])

	code, body = a.do(http.MethodPost, "/send", alice, map[string]any{"email": "ghost@x.io", "amount": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "RecipientNotFound", body["reason"])

	code, body = a.do(http.MethodPost, "/send", alice, map[string]any{"email": "bob@x.io", "amount": 7501})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "InsufficientFunds", body["reason"])

	code, body = a.do(http.MethodGet, "/wallet", bob, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2500), body["balance"])

	// alice: 2 筆存款 + 3 筆轉帳 = 5，再加 1 筆跨到第二頁
	code, _ = a.do(http.MethodPost, "/deposit", alice, map[string]any{"amount": 1})
	require.Equal(t, http.StatusOK, code)

	code, body = a.do(http.MethodGet, "/history", alice, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(5), body["page_size"])
	assert.Equal(t, float64(6), body["total"])
	assert.Equal(t, float64(2), body["pages"])
	assert.Equal(t, true, body["has_next"])
	records := body["records"].([]any)
	require.Len(t, records, 5)
	assert.Equal(t, float64(1), records[0].(map[string]any)["amount"])

	code, body = a.do(http.MethodGet, "/history?page=2", alice, nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body["records"].([]any), 1)
	assert.Equal(t, float64(10000), body["records"].([]any)[0].(map[string]any)["amount"])

	code, body = a.do(http.MethodGet, fmt.Sprintf("/history?page=%d", 3), alice, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["records"].([]any))

	code, _ = a.do(http.MethodGet, "/history?page=abc", alice, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	// 餘額不足的失敗紀錄也算 bob 的歷史
	code, body = a.do(http.MethodGet, "/history", bob, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2), body["total"])
}
