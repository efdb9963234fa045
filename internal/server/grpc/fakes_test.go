package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/studentteacher/internal/logging"
	pb "github.com/dmitrijs2005/studentteacher/internal/proto"
	"github.com/dmitrijs2005/studentteacher/internal/server/auth"
	"github.com/dmitrijs2005/studentteacher/internal/server/models"
	"github.com/dmitrijs2005/studentteacher/internal/server/services"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

type fakeAuth struct {
	gotDraft models.DraftUser
	gotRole  models.Role
	regErr   error

	user      *models.User
	token     string
	verifyErr error

	login    services.LoginResult
	loginErr error

	recoverErr error
	setErr     error
	gotCode    int

	profile    *models.User
	profileErr error
}

func (f *fakeAuth) Register(_ context.Context, d models.DraftUser, r models.Role) (int, error) {
	f.gotDraft, f.gotRole = d, r
	return 123456, f.regErr
}

func (f *fakeAuth) ValidateAccount(_ context.Context, _ string, code int) (*models.User, string, error) {
	f.gotCode = code
	return f.user, f.token, f.verifyErr
}

func (f *fakeAuth) Login(context.Context, string, string) (services.LoginResult, error) {
	return f.login, f.loginErr
}

func (f *fakeAuth) SendRecoveryCode(context.Context, string) error { return f.recoverErr }

func (f *fakeAuth) SetNewPassword(_ context.Context, _ string, code int, _ string) error {
	f.gotCode = code
	return f.setErr
}

func (f *fakeAuth) Profile(context.Context, string) (*models.User, error) {
	return f.profile, f.profileErr
}

func testIssuer(t *testing.T) *auth.Issuer {
	t.Helper()
	i, err := auth.NewIssuer([]byte("secret"), time.Hour)
	require.NoError(t, err)
	return i
}

// startBufServer serves s over an in-memory listener and returns a client.
func startBufServer(t *testing.T, s *GRPCServer) pb.AuthServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})

	return pb.NewAuthServiceClient(conn)
}

func newTestServer(t *testing.T, f *fakeAuth) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, f, testIssuer(t))
}
