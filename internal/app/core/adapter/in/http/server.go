package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/JoeShih716/go-pay-ledger/internal/app/core/usecase"
)

// Server gin JSON API
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	logger     zerolog.Logger
}

func NewServer(addr string, core *usecase.CoreUseCase, tokens *TokenIssuer, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	logger = logger.With().Str("component", "http").Logger()

	router := gin.New()
	router.Use(RequestLogger(logger), gin.Recovery())

	h := NewHandlers(core, tokens, logger)
	router.GET("/healthz", h.Health)
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)

	authed := router.Group("/", RequireAuth(tokens, logger))
	{
		authed.GET("/wallet", h.Wallet)
		authed.POST("/deposit", h.Deposit)
		authed.POST("/send", h.Send)
		authed.GET("/history", h.History)
	}

	return &Server{
		router: router,
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  20 * time.Second,
			WriteTimeout: 20 * time.Second,
		},
		logger: logger,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start 阻塞直到 Shutdown，正常關閉時回傳 nil
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("Starting HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
