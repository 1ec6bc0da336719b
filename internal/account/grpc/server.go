// Package grpc exposes the account service over its 12-operation RPC
// surface. The server owns no business logic; it maps requests onto the
// service layer and service errors onto status codes.
package grpc

import (
	"context"
	"net"

	"github.com/ddmitrenko/tools/internal/account/models"
	"github.com/ddmitrenko/tools/internal/logging"
	pb "github.com/ddmitrenko/tools/internal/proto"
	"google.golang.org/grpc"
)

// AccountService is the service-layer surface the transport depends on.
type AccountService interface {
	SignUp(ctx context.Context, email, pass string) error
	VerifySignUp(ctx context.Context, email, code string) error
	SignIn(ctx context.Context, email, pass string) (string, error)
	ChangeEmail(ctx context.Context, token, newEmail string) error
	VerifyChangeEmail(ctx context.Context, newEmail, code string) error
	ChangePassword(ctx context.Context, token, oldPass, newPass string) error
	RequestResetPassword(ctx context.Context, email string) error
	VerifyRequestResetPassword(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPass string) error
	GetAccount(ctx context.Context, token string) (*models.Account, error)
	DeleteAccount(ctx context.Context, token string) error
	ValidateToken(ctx context.Context, token string) (*models.Account, error)
}

type GRPCServer struct {
	pb.UnimplementedAccountServiceServer
	address  string
	accounts AccountService
	logger   logging.Logger
}

func NewGRPCServer(address string, logger logging.Logger, accounts AccountService) *GRPCServer {
	return &GRPCServer{
		address:  address,
		accounts: accounts,
		logger:   logger.With("module", "grpc_server"),
	}
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	pb.RegisterAccountServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
