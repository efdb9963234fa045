// Package server wires configuration, storage, code stores, the notifier and
// the gRPC transport into a runnable application and handles graceful
// shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/studentteacher/internal/common"
	"github.com/dmitrijs2005/studentteacher/internal/logging"
	"github.com/dmitrijs2005/studentteacher/internal/server/auth"
	"github.com/dmitrijs2005/studentteacher/internal/server/codes"
	"github.com/dmitrijs2005/studentteacher/internal/server/config"
	"github.com/dmitrijs2005/studentteacher/internal/server/metrics"
	"github.com/dmitrijs2005/studentteacher/internal/server/models"
	"github.com/dmitrijs2005/studentteacher/internal/server/notify"
	"github.com/dmitrijs2005/studentteacher/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studentteacher/internal/server/services"
	"github.com/go-redis/redis/v8"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/studentteacher/internal/server/grpc"
)

const (
	pendingPrefix  = "pending"
	recoveryPrefix = "recovery"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	authService   *services.AuthService
	issuer        *auth.Issuer
	metricsServer *metrics.Server
	stores        *codeStores
}

// codeStores holds the pending and recovery stores plus whatever keeps them
// tidy: sweepers for the in-memory backing, a client to close for Redis.
type codeStores struct {
	pending  codes.Store[models.DraftUser]
	recovery codes.Store[models.CodeInfo]
	sweepers []func(ctx context.Context)
	redis    *redis.Client
}

func newCodeStores(c *config.Config) (*codeStores, error) {
	switch c.CodeStore {
	case config.CodeStoreMemory, "":
		if c.SweepInterval <= 0 {
			return nil, fmt.Errorf("%w: sweep interval must be positive", common.ErrConfiguration)
		}
		p := codes.NewMemoryStore[models.DraftUser](codes.RegistrationWindow)
		r := codes.NewMemoryStore[models.CodeInfo](codes.RecoveryWindow)
		return &codeStores{
			pending:  p,
			recovery: r,
			sweepers: []func(ctx context.Context){
				func(ctx context.Context) { p.RunSweeper(ctx, c.SweepInterval, time.Now) },
				func(ctx context.Context) { r.RunSweeper(ctx, c.SweepInterval, time.Now) },
			},
		}, nil
	case config.CodeStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
		return &codeStores{
			pending:  codes.NewRedisStore[models.DraftUser](client, pendingPrefix, codes.RegistrationWindow),
			recovery: codes.NewRedisStore[models.CodeInfo](client, recoveryPrefix, codes.RecoveryWindow),
			redis:    client,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown code store %q", common.ErrConfiguration, c.CodeStore)
	}
}

func (s *codeStores) ping(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Ping(ctx).Err()
}

func (s *codeStores) close() error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Close()
}

// newNotifier picks SendGrid when an API key is configured and falls back to
// logging the messages otherwise.
func newNotifier(c *config.Config, l logging.Logger) notify.Notifier {
	if c.SendGridAPIKey == "" {
		l.Warn(context.Background(), "no SendGrid API key configured, codes will be logged")
		return notify.NewLogNotifier(l.With("module", "notifier"))
	}
	return notify.NewSendGridNotifier(c.SendGridAPIKey, c.MailFrom)
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	issuer, err := auth.IssuerFromConfig(c)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	stores, err := newCodeStores(c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := &App{
		config:      c,
		logger:      logger,
		db:          db,
		repomanager: repomanager.NewPostgresRepositoryManager(),
		issuer:      issuer,
		stores:      stores,
	}

	opts := []services.Option{
		services.WithLogger(logger.With("module", "auth_service")),
		services.WithPasswordRevalidation(c.RevalidatePassword),
	}
	if c.MetricsAddr != "" {
		app.metricsServer = metrics.NewServer(c.MetricsAddr)
		opts = append(opts, services.WithMetrics(app.metricsServer.Metrics()))
	}

	app.authService = services.NewAuthService(db, app.repomanager, stores.pending, stores.recovery,
		newNotifier(c, logger), issuer, opts...)

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService, app.issuer)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	errCh, err := app.metricsServer.Start()
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}
	app.logger.Info(ctx, "Metrics server started", "address", app.metricsServer.Addr())

	select {
	case <-ctx.Done():
	case err, ok := <-errCh:
		if ok && err != nil {
			app.logger.Error(ctx, "metrics server failed", "error", err)
			cancelFunc()
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.metricsServer.Stop(shutdownCtx); err != nil {
		app.logger.Error(ctx, "metrics server shutdown", "error", err)
	}
}

// prepare runs the startup checks that need the network: store
// connectivity and schema migrations.
func (app *App) prepare(ctx context.Context) error {
	if err := app.stores.ping(ctx); err != nil {
		return fmt.Errorf("code store: %w", err)
	}
	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return err
	}
	return nil
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.prepare(ctx); err != nil {
		app.logger.Error(ctx, "startup failed", "error", err)
		app.close(ctx)
		return
	}

	var wg sync.WaitGroup

	for _, sweep := range app.stores.sweepers {
		sweep := sweep
		wg.Add(1)
		go func() {
			defer wg.Done()
			sweep(ctx)
		}()
	}

	if app.metricsServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()
	app.close(ctx)
	app.logger.Info(ctx, "App stopped")
}

func (app *App) close(ctx context.Context) {
	if err := app.stores.close(); err != nil {
		app.logger.Warn(ctx, "closing code store", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "closing database", "error", err)
	}
}
