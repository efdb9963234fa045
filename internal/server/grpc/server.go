// Package grpc exposes the auth flows over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/studentteacher/internal/logging"
	pb "github.com/dmitrijs2005/studentteacher/internal/proto"
	"github.com/dmitrijs2005/studentteacher/internal/server/auth"
	"github.com/dmitrijs2005/studentteacher/internal/server/models"
	"github.com/dmitrijs2005/studentteacher/internal/server/services"
	"google.golang.org/grpc"
)

// AuthService is the part of services.AuthService the transport needs.
type AuthService interface {
	Register(ctx context.Context, draft models.DraftUser, role models.Role) (int, error)
	ValidateAccount(ctx context.Context, email string, code int) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (services.LoginResult, error)
	SendRecoveryCode(ctx context.Context, userID string) error
	SetNewPassword(ctx context.Context, userID string, code int, newPassword string) error
	Profile(ctx context.Context, userID string) (*models.User, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address string
	auth    AuthService
	issuer  *auth.Issuer
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, svc AuthService, issuer *auth.Issuer) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    svc,
		issuer:  issuer,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterAuthServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
