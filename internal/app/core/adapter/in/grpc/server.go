package grpc

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-pay-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-pay-ledger/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-pay-ledger/proto"
)

type GrpcServer struct {
	pb.UnimplementedLedgerServiceServer
	core   *usecase.CoreUseCase
	logger zerolog.Logger
}

func NewGrpcServer(core *usecase.CoreUseCase, logger zerolog.Logger) *GrpcServer {
	return &GrpcServer{
		core:   core,
		logger: logger.With().Str("component", "grpc").Logger(),
	}
}

// principal 以 account_id 找出操作者身分 (gRPC 為內部通訊，不經 JWT)
func (s *GrpcServer) principal(ctx context.Context, accountID int64) (domain.Principal, error) {
	account, err := s.core.GetAccount(ctx, accountID)
	if err != nil {
		return domain.Principal{}, s.toStatus(err)
	}
	return domain.Principal{AccountID: account.ID, Email: account.Email}, nil
}

func (s *GrpcServer) Deposit(ctx context.Context, req *pb.DepositRequest) (*pb.OutcomeResponse, error) {
	who, err := s.principal(ctx, req.AccountId)
	if err != nil {
		return nil, err
	}
	out, err := s.core.Deposit(ctx, who, req.Amount)
	if err != nil {
		return nil, s.toStatus(err)
	}
	// 業務拒絕回傳 Applied=false (Soft Failure)
	return toOutcomeResponse(out), nil
}

func (s *GrpcServer) Transfer(ctx context.Context, req *pb.TransferRequest) (*pb.OutcomeResponse, error) {
	who, err := s.principal(ctx, req.AccountId)
	if err != nil {
		return nil, err
	}
	out, err := s.core.Transfer(ctx, who, req.RecipientEmail, req.Amount)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return toOutcomeResponse(out), nil
}

func (s *GrpcServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	balance, err := s.core.GetAccountBalance(ctx, req.AccountId)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.GetBalanceResponse{
		AccountId: req.AccountId,
		Balance:   balance,
	}, nil
}

func (s *GrpcServer) ListHistory(ctx context.Context, req *pb.ListHistoryRequest) (*pb.ListHistoryResponse, error) {
	who, err := s.principal(ctx, req.AccountId)
	if err != nil {
		return nil, err
	}
	page, err := s.core.ListHistory(ctx, who, int(req.Page))
	if err != nil {
		return nil, s.toStatus(err)
	}

	resp := &pb.ListHistoryResponse{
		Page:     int32(page.Page),
		PageSize: int32(page.PageSize),
		Total:    page.Total,
		Pages:    int32(page.Pages()),
		HasNext:  page.HasNext(),
		HasPrev:  page.HasPrev(),
		Records:  make([]*pb.TransactionRecord, 0, len(page.Records)),
	}
	for _, r := range page.Records {
		resp.Records = append(resp.Records, toRecord(r))
	}
	return resp, nil
}

// toStatus 將錯誤轉為 gRPC status
func (s *GrpcServer) toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrAmountMustBePositive):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		s.logger.Error().Err(err).Msg("request failed")
		return status.Error(codes.Internal, "internal error")
	}
}

func toOutcomeResponse(out domain.Outcome) *pb.OutcomeResponse {
	return &pb.OutcomeResponse{
		Applied: out.Applied,
		Balance: out.Balance,
		Reason:  string(out.Reason),
		Record:  toRecord(out.Record),
	}
}

func toRecord(r *domain.TransactionRecord) *pb.TransactionRecord {
	if r == nil {
		return nil
	}
	return &pb.TransactionRecord{
		Id:                 r.ID,
		RefId:              r.RefID.String(),
		Sender:             r.Sender,
		Recipient:          r.Recipient,
		Amount:             r.Amount,
		Status:             string(r.Status),
		AccountId:          r.AccountID,
		CreatedAtUnixMilli: r.CreatedAt.UnixMilli(),
	}
}
