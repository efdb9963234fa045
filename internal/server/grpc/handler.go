package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/studentteacher/internal/common"
	pb "github.com/dmitrijs2005/studentteacher/internal/proto"
	"github.com/dmitrijs2005/studentteacher/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const dateLayout = "2006-01-02"

// toStatus maps service errors to gRPC status codes.
func toStatus(err error) error {
	var fe *common.InvalidFieldError
	switch {
	case errors.As(err, &fe):
		return status.Error(codes.InvalidArgument, fe.Error())
	case errors.Is(err, common.ErrInvalidCredential):
		return status.Error(codes.Unauthenticated, common.ErrInvalidCredential.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "account already exists")
	case errors.Is(err, common.ErrDelivery):
		return status.Error(codes.Unavailable, "could not deliver the code")
	default:
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
}

func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal || status.Code(st) == codes.Unavailable {
		s.logger.Error(ctx, op+" failed", "error", err)
	}
	return st
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "DateOfBirth is invalid: expected YYYY-MM-DD")
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "Role is invalid: "+err.Error())
	}

	draft := models.DraftUser{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		DateOfBirth: dob,
	}

	if _, err := s.auth.Register(ctx, draft, role); err != nil {
		return nil, s.fail(ctx, "register", err)
	}

	return &pb.RegisterResponse{Status: "code sent"}, nil
}

func (s *GRPCServer) VerifyUser(ctx context.Context, req *pb.VerifyUserRequest) (*pb.AuthResponse, error) {
	user, token, err := s.auth.ValidateAccount(ctx, req.Email, int(req.Code))
	if err != nil {
		return nil, s.fail(ctx, "verify user", err)
	}
	return &pb.AuthResponse{UserId: user.ID, Role: user.Role.String(), AccessToken: token}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	res, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.fail(ctx, "login", err)
	}
	if !res.Found {
		return nil, status.Error(codes.NotFound, "no account with this email and password")
	}
	return &pb.AuthResponse{UserId: res.User.ID, Role: res.User.Role.String(), AccessToken: res.Token}, nil
}

func (s *GRPCServer) SendRecoveryCode(ctx context.Context, req *pb.SendRecoveryCodeRequest) (*pb.SendRecoveryCodeResponse, error) {
	if err := s.auth.SendRecoveryCode(ctx, req.UserId); err != nil {
		return nil, s.fail(ctx, "send recovery code", err)
	}
	return &pb.SendRecoveryCodeResponse{Status: "code sent"}, nil
}

func (s *GRPCServer) SetNewPassword(ctx context.Context, req *pb.SetNewPasswordRequest) (*pb.SetNewPasswordResponse, error) {
	if err := s.auth.SetNewPassword(ctx, req.UserId, int(req.Code), req.NewPassword); err != nil {
		return nil, s.fail(ctx, "set new password", err)
	}
	return &pb.SetNewPasswordResponse{Status: "password changed"}, nil
}

func (s *GRPCServer) WhoAmI(ctx context.Context, _ *pb.WhoAmIRequest) (*pb.WhoAmIResponse, error) {
	claims, ok := claimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	user, err := s.auth.Profile(ctx, claims.Subject)
	if err != nil {
		return nil, s.fail(ctx, "whoami", err)
	}

	return &pb.WhoAmIResponse{
		UserId:    user.ID,
		Role:      claims.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}, nil
}
