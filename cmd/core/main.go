package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpc_adapter "github.com/JoeShih716/go-pay-ledger/internal/app/core/adapter/in/grpc"
	http_adapter "github.com/JoeShih716/go-pay-ledger/internal/app/core/adapter/in/http"
	amqp_adapter "github.com/JoeShih716/go-pay-ledger/internal/app/core/adapter/out/amqp"
	memory_adapter "github.com/JoeShih716/go-pay-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-pay-ledger/internal/app/core/adapter/out/sqlstore"
	"github.com/JoeShih716/go-pay-ledger/internal/app/core/config"
	"github.com/JoeShih716/go-pay-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-pay-ledger/pkg/database"
	"github.com/JoeShih716/go-pay-ledger/pkg/logger"
	"github.com/JoeShih716/go-pay-ledger/pkg/password"
	"github.com/JoeShih716/go-pay-ledger/pkg/wal"
	pb "github.com/JoeShih716/go-pay-ledger/proto"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	// 1. 載入設定
	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLog := logger.New()
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}
	log := logger.NewWithConfig(cfg.Logger)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}

	// 2. 初始化 Store
	store, closeStore := openStore(cfg, log)
	defer closeStore()

	// 3. 初始化交易紀錄發佈 (未設定 AMQP 時不發佈)
	var publisher usecase.RecordPublisher = usecase.NopPublisher{}
	if cfg.AMQP.URL != "" {
		conn, err := amqp_adapter.Dial(cfg.AMQP.URL, 15, 2*time.Second, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to RabbitMQ")
		}
		defer conn.Close()
		p, err := amqp_adapter.NewPublisher(conn, cfg.AMQP.Queue)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to init record publisher")
		}
		defer p.Close()
		publisher = p
	}

	// 4. 初始化 UseCase
	coreUseCase := usecase.NewCoreUseCase(
		usecase.NewLedgerService(store, log, usecase.WithPublisher(publisher)),
		usecase.NewHistoryQuery(store),
		usecase.NewAccountService(store, password.NewHasher(password.DefaultCost), log),
	)

	// 5. 啟動 gRPC Server (Driving Adapter)
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Server.GRPCAddr).Msg("failed to listen")
	}
	grpcServer := grpc.NewServer()
	pb.RegisterLedgerServiceServer(grpcServer, grpc_adapter.NewGrpcServer(coreUseCase, log))
	reflection.Register(grpcServer) // 方便 gRPC Client 測試 (如 grpcurl)

	go func() {
		log.Info().Str("addr", cfg.Server.GRPCAddr).Msg("Starting gRPC server")
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("failed to serve gRPC")
		}
	}()

	// 6. 啟動 HTTP Server (JSON API + JWT)
	tokens := http_adapter.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	httpServer := http_adapter.NewServer(cfg.Server.HTTPAddr, coreUseCase, tokens, log)
	go func() {
		if err := httpServer.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to serve HTTP")
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP shutdown")
	}
	grpcServer.GracefulStop()
	log.Info().Msg("Server exited")
}

// openStore 依 database.driver 選擇 Store
//
// 回傳:
//
//	usecase.Store: Store 實例
//	func(): 關閉資源
func openStore(cfg *config.Config, log zerolog.Logger) (usecase.Store, func()) {
	if cfg.UseMemoryStore() {
		walFile, err := wal.NewWAL(cfg.WAL.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.WAL.Path).Msg("Failed to init WAL")
		}
		store, err := memory_adapter.NewStore(walFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to recover memory store from WAL")
		}
		log.Info().Str("wal", cfg.WAL.Path).Msg("Using memory store")
		return store, func() { _ = walFile.Close() }
	}

	client, err := database.NewClient(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("Failed to connect to database")
	}
	store := sqlstore.NewStore(client)
	if cfg.Database.AutoMigrate {
		if err := store.Migrate(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("Connected to database")
	return store, func() { _ = client.Close() }
}
