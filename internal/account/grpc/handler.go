package grpc

import (
	"context"
	"errors"

	"github.com/ddmitrenko/tools/internal/account/models"
	"github.com/ddmitrenko/tools/internal/common"
	pb "github.com/ddmitrenko/tools/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// statusFromError maps the service error taxonomy onto gRPC codes. Anything
// unrecognized is reported as Internal without leaking the error text.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, "invalid input")
	case errors.Is(err, common.ErrCodeMismatch):
		return status.Error(codes.InvalidArgument, "wrong verification code")
	case errors.Is(err, common.ErrConflict):
		return status.Error(codes.AlreadyExists, "the email has been registered")
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrAuth), errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrDependency):
		return status.Error(codes.Unavailable, "dependency unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func opRes(err error) (*pb.OpRes, error) {
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.OpRes{IsSuccess: true}, nil
}

func roleToProto(role models.Role) pb.AccountRole {
	if role == models.RoleAdmin {
		return pb.AccountRole_ACCOUNT_ROLE_ADMIN
	}
	return pb.AccountRole_ACCOUNT_ROLE_USER
}

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpReq) (*pb.OpRes, error) {
	return opRes(s.accounts.SignUp(ctx, req.GetEmail(), req.GetPassword()))
}

func (s *GRPCServer) VerifySignUp(ctx context.Context, req *pb.VerifySignUpReq) (*pb.OpRes, error) {
	return opRes(s.accounts.VerifySignUp(ctx, req.GetEmail(), req.GetVerifyCode()))
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInReq) (*pb.SignInRes, error) {
	token, err := s.accounts.SignIn(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.SignInRes{Token: token}, nil
}

func (s *GRPCServer) ChangeEmail(ctx context.Context, req *pb.ChangeEmailReq) (*pb.OpRes, error) {
	return opRes(s.accounts.ChangeEmail(ctx, req.GetToken(), req.GetNewEmail()))
}

func (s *GRPCServer) VerifyChangeEmail(ctx context.Context, req *pb.VerifyChangeEmailReq) (*pb.OpRes, error) {
	return opRes(s.accounts.VerifyChangeEmail(ctx, req.GetNewEmail(), req.GetVerifyCode()))
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordReq) (*pb.OpRes, error) {
	return opRes(s.accounts.ChangePassword(ctx, req.GetToken(), req.GetOldPassword(), req.GetNewPassword()))
}

func (s *GRPCServer) RequestResetPassword(ctx context.Context, req *pb.RequestResetPasswordReq) (*pb.OpRes, error) {
	return opRes(s.accounts.RequestResetPassword(ctx, req.GetEmail()))
}

func (s *GRPCServer) VerifyRequestResetPassword(ctx context.Context, req *pb.VerifyRequestResetPasswordReq) (*pb.OpRes, error) {
	return opRes(s.accounts.VerifyRequestResetPassword(ctx, req.GetEmail(), req.GetVerifyCode()))
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordReq) (*pb.OpRes, error) {
	return opRes(s.accounts.ResetPassword(ctx, req.GetEmail(), req.GetVerifyCode(), req.GetNewPassword()))
}

func (s *GRPCServer) GetAccount(ctx context.Context, req *pb.GetAccountReq) (*pb.GetAccountRes, error) {
	account, err := s.accounts.GetAccount(ctx, req.GetToken())
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetAccountRes{
		Id:        account.ID,
		Email:     account.Email,
		CreatedAt: timestamppb.New(account.CreatedAt),
		UpdatedAt: timestamppb.New(account.UpdatedAt),
	}, nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, req *pb.DeleteAccountReq) (*pb.OpRes, error) {
	return opRes(s.accounts.DeleteAccount(ctx, req.GetToken()))
}

func (s *GRPCServer) ValidateToken(ctx context.Context, req *pb.ValidateTokenReq) (*pb.ValidateTokenRes, error) {
	account, err := s.accounts.ValidateToken(ctx, req.GetToken())
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.ValidateTokenRes{
		Id:   account.ID,
		Role: roleToProto(account.Role),
	}, nil
}
