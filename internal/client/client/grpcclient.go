package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/studentteacher/internal/common"
	pb "github.com/dmitrijs2005/studentteacher/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.AuthServiceClient
	session     *SessionStore

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current token, if any. A token the
// server refuses is dropped from the session.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	token := s.token()
	if token == "" {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	err := invoker(withAccessToken(ctx, token), method, req, reply, cc, opts...)
	if status.Code(err) == codes.Unauthenticated && method == pb.AuthService_WhoAmI_FullMethodName {
		_ = s.setToken("")
	}
	return err
}

// NewGRPCClient connects lazily to endpointURL. A nil session keeps the
// token in memory only. Extra dial options are appended after the defaults.
func NewGRPCClient(endpointURL string, timeout time.Duration, session *SessionStore, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout, session: session}

	if session != nil {
		token, err := session.Load()
		if err != nil {
			return nil, err
		}
		c.accessToken = token
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewAuthServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) error {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	if token == "" {
		return s.session.Clear()
	}
	return s.session.Save(token)
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) LoggedIn() bool {
	return s.token() != ""
}

func (s *GRPCClient) Register(ctx context.Context, r Registration) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.RegisterRequest{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Password:    r.Password,
		DateOfBirth: r.DateOfBirth,
		Role:        r.Role,
	}
	if _, err := s.client.Register(ctx, req); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *GRPCClient) VerifyUser(ctx context.Context, email string, code int) (*Identity, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.VerifyUser(ctx, &pb.VerifyUserRequest{Email: email, Code: int32(code)})
	if err != nil {
		return nil, mapError(err)
	}
	return s.startSession(resp)
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*Identity, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	return s.startSession(resp)
}

func (s *GRPCClient) startSession(resp *pb.AuthResponse) (*Identity, error) {
	if err := s.setToken(resp.AccessToken); err != nil {
		return nil, err
	}
	return &Identity{UserID: resp.UserId, Role: resp.Role}, nil
}

func (s *GRPCClient) SendRecoveryCode(ctx context.Context, userID string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.SendRecoveryCode(ctx, &pb.SendRecoveryCodeRequest{UserId: userID}); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *GRPCClient) SetNewPassword(ctx context.Context, userID string, code int, newPassword string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.SetNewPasswordRequest{UserId: userID, Code: int32(code), NewPassword: newPassword}
	if _, err := s.client.SetNewPassword(ctx, req); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *GRPCClient) WhoAmI(ctx context.Context) (*Profile, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.WhoAmI(ctx, &pb.WhoAmIRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return &Profile{
		UserID:    resp.UserId,
		Role:      resp.Role,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Email:     resp.Email,
	}, nil
}

// Logout forgets the token locally; tokens are not revoked server-side.
func (s *GRPCClient) Logout() error {
	return s.setToken("")
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument, codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
