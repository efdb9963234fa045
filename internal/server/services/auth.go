// Package services contains server-side business logic. AuthService runs the
// registration, login and password recovery flows.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studentteacher/internal/common"
	"github.com/dmitrijs2005/studentteacher/internal/cryptox"
	"github.com/dmitrijs2005/studentteacher/internal/dbx"
	"github.com/dmitrijs2005/studentteacher/internal/logging"
	"github.com/dmitrijs2005/studentteacher/internal/server/auth"
	"github.com/dmitrijs2005/studentteacher/internal/server/codes"
	"github.com/dmitrijs2005/studentteacher/internal/server/metrics"
	"github.com/dmitrijs2005/studentteacher/internal/server/models"
	"github.com/dmitrijs2005/studentteacher/internal/server/notify"
	"github.com/dmitrijs2005/studentteacher/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studentteacher/internal/server/validation"
	"github.com/google/uuid"
)

// maxCodeAttempts bounds how many fresh codes are drawn when the generated
// one is already outstanding.
const maxCodeAttempts = 5

const (
	registrationSubject = "Confirm your email"
	recoverySubject     = "Password recovery"
)

// LoginResult is the outcome of Login. User and Token are set only when
// Found is true.
type LoginResult struct {
	Found bool
	User  *models.User
	Token string
}

// AuthService coordinates validation, code stores, the account store, the
// notifier and the token issuer.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	pending     codes.Store[models.DraftUser]
	recovery    codes.Store[models.CodeInfo]
	notifier    notify.Notifier
	issuer      *auth.Issuer

	generator          codes.Generator
	validator          *validation.Validator
	now                func() time.Time
	log                logging.Logger
	metrics            *metrics.Metrics
	revalidatePassword bool
}

// Option customizes an AuthService.
type Option func(*AuthService)

// WithClock replaces time.Now. The validator follows the same clock unless
// one is set explicitly.
func WithClock(now func() time.Time) Option {
	return func(s *AuthService) { s.now = now }
}

func WithGenerator(g codes.Generator) Option {
	return func(s *AuthService) { s.generator = g }
}

func WithValidator(v *validation.Validator) Option {
	return func(s *AuthService) { s.validator = v }
}

func WithLogger(l logging.Logger) Option {
	return func(s *AuthService) { s.log = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *AuthService) { s.metrics = m }
}

// WithPasswordRevalidation toggles the password format check in
// SetNewPassword. It is on by default.
func WithPasswordRevalidation(on bool) Option {
	return func(s *AuthService) { s.revalidatePassword = on }
}

func NewAuthService(
	db *sql.DB,
	rm repomanager.RepositoryManager,
	pending codes.Store[models.DraftUser],
	recovery codes.Store[models.CodeInfo],
	notifier notify.Notifier,
	issuer *auth.Issuer,
	opts ...Option,
) *AuthService {
	s := &AuthService{
		db:                 db,
		repomanager:        rm,
		pending:            pending,
		recovery:           recovery,
		notifier:           notifier,
		issuer:             issuer,
		generator:          codes.NewRandomGenerator(),
		now:                time.Now,
		log:                logging.Nop{},
		revalidatePassword: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.validator == nil {
		s.validator = validation.New(s.now)
	}
	return s
}

// Register validates draft, parks it with its password hashed under a fresh
// code and mails the code to draft.Email. The code is returned for callers that need to correlate it;
// it must never be echoed back to the registrant.
func (s *AuthService) Register(ctx context.Context, draft models.DraftUser, role models.Role) (code int, err error) {
	defer func() { s.record("register", err) }()

	if !role.Valid() {
		return 0, common.NewInvalidFieldError("Role", "must be Student or Teacher")
	}
	if err := s.validator.Validate(draft); err != nil {
		return 0, err
	}

	hash, err := cryptox.HashPassword(draft.Password)
	if err != nil {
		return 0, fmt.Errorf("register: %w", err)
	}

	now := s.now()
	draft.Password = hash
	draft.Role = role
	draft.CreatedAt = now

	code, err = issueCode(ctx, s.generator, s.pending, draft, now)
	if err != nil {
		return 0, fmt.Errorf("register: %w", err)
	}
	s.metrics.RecordCodeIssued(metrics.KindRegistration)

	if err := s.notifier.Send(ctx, notify.CodeMessage(draft.Email, registrationSubject, code)); err != nil {
		return 0, deliveryError(err)
	}

	s.log.Info(ctx, "registration code issued", "role", role.String())
	return code, nil
}

// ValidateAccount turns the pending registration behind code into a
// persisted user, provided email matches and the window has not passed.
func (s *AuthService) ValidateAccount(ctx context.Context, email string, code int) (user *models.User, token string, err error) {
	defer func() { s.record("validate_account", err) }()

	entry, ok, err := s.pending.TryGet(ctx, code)
	if err != nil {
		return nil, "", fmt.Errorf("validate account: %w", err)
	}
	if !ok || entry.Value.Email != email {
		return nil, "", common.ErrInvalidCredential
	}

	now := s.now()
	if entry.Expired(now, codes.RegistrationWindow) {
		if err := s.pending.Remove(ctx, code); err != nil {
			s.log.Warn(ctx, "failed to drop expired registration", "error", err)
		}
		return nil, "", common.ErrInvalidCredential
	}

	d := entry.Value
	user = &models.User{
		ID:          uuid.NewString(),
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Password:    d.Password,
		DateOfBirth: d.DateOfBirth,
		Role:        d.Role,
		CreatedAt:   now,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		taken, err := repo.ExistsByEmail(ctx, user.Email)
		if err != nil {
			return err
		}
		if taken {
			return common.ErrAlreadyExists
		}
		return repo.Insert(ctx, user)
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			if err := s.pending.Remove(ctx, code); err != nil {
				s.log.Warn(ctx, "failed to drop registration for a taken email", "error", err)
			}
			return nil, "", common.ErrAlreadyExists
		}
		return nil, "", fmt.Errorf("validate account: %w", err)
	}

	if err := s.pending.Remove(ctx, code); err != nil {
		s.log.Warn(ctx, "failed to drop consumed registration", "error", err)
	}

	token, err = s.issuer.Issue(user.ID, user.Role, now)
	if err != nil {
		return nil, "", fmt.Errorf("validate account: %w", err)
	}

	s.log.Info(ctx, "account created", "user_id", user.ID, "role", user.Role.String())
	return user, token, nil
}

// Login looks the account up by email and password. No match is reported as
// LoginResult{Found: false} with a nil error.
func (s *AuthService) Login(ctx context.Context, email, password string) (res LoginResult, err error) {
	defer func() {
		if err == nil && !res.Found {
			s.metrics.RecordOperation("login", metrics.ResultRejected)
			return
		}
		s.record("login", err)
	}()

	user, err := s.repomanager.Users(s.db).FindByEmailAndPassword(ctx, email, password)
	if err != nil {
		return LoginResult{}, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return LoginResult{}, nil
	}

	token, err := s.issuer.Issue(user.ID, user.Role, s.now())
	if err != nil {
		return LoginResult{}, fmt.Errorf("login: %w", err)
	}

	return LoginResult{Found: true, User: user, Token: token}, nil
}

// SendRecoveryCode mails a password recovery code to the user's address.
// Earlier outstanding codes for the same user stay valid.
func (s *AuthService) SendRecoveryCode(ctx context.Context, userID string) (err error) {
	defer func() { s.record("send_recovery_code", err) }()

	repo := s.repomanager.Users(s.db)

	exists, err := repo.ExistsByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("send recovery code: %w", err)
	}
	if !exists {
		return common.ErrorNotFound
	}

	user, err := repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("send recovery code: %w", err)
	}

	now := s.now()
	code, err := issueCode(ctx, s.generator, s.recovery, models.CodeInfo{UserID: userID, IssuedAt: now}, now)
	if err != nil {
		return fmt.Errorf("send recovery code: %w", err)
	}
	s.metrics.RecordCodeIssued(metrics.KindRecovery)

	if err := s.notifier.Send(ctx, notify.CodeMessage(user.Email, recoverySubject, code)); err != nil {
		return deliveryError(err)
	}

	s.log.Info(ctx, "recovery code issued", "user_id", userID)
	return nil
}

// SetNewPassword replaces the password of userID if code was issued to that
// user less than RecoveryWindow ago.
func (s *AuthService) SetNewPassword(ctx context.Context, userID string, code int, newPassword string) (err error) {
	defer func() { s.record("set_new_password", err) }()

	entry, ok, err := s.recovery.TryGet(ctx, code)
	if err != nil {
		return fmt.Errorf("set new password: %w", err)
	}
	if !ok || entry.Value.UserID != userID {
		return common.ErrInvalidCredential
	}
	if entry.Expired(s.now(), codes.RecoveryWindow) {
		if err := s.recovery.Remove(ctx, code); err != nil {
			s.log.Warn(ctx, "failed to drop expired recovery code", "error", err)
		}
		return common.ErrInvalidCredential
	}

	if s.revalidatePassword {
		if err := validation.ValidatePassword(newPassword); err != nil {
			return err
		}
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		if _, err := repo.FindByID(ctx, userID); err != nil {
			return err
		}
		return repo.UpdatePassword(ctx, userID, newPassword)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("set new password: %w", err)
	}

	if err := s.recovery.Remove(ctx, code); err != nil {
		s.log.Warn(ctx, "failed to drop consumed recovery code", "error", err)
	}

	s.log.Info(ctx, "password changed", "user_id", userID)
	return nil
}

// Profile returns the stored account for userID.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("profile: %w", err)
	}
	return user, nil
}

// issueCode draws codes until one is free in store and claims it.
func issueCode[V any](ctx context.Context, g codes.Generator, store codes.Store[V], v V, now time.Time) (int, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := g.Next()
		if err != nil {
			return 0, fmt.Errorf("generate code: %w", err)
		}
		ok, err := store.PutIfAbsent(ctx, code, v, now)
		if err != nil {
			return 0, err
		}
		if ok {
			return code, nil
		}
	}
	return 0, common.ErrCodeSpaceExhausted
}

func deliveryError(err error) error {
	if errors.Is(err, common.ErrDelivery) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrDelivery, err)
}

func (s *AuthService) record(operation string, err error) {
	switch {
	case err == nil:
		s.metrics.RecordOperation(operation, metrics.ResultOK)
	case errors.Is(err, common.ErrInvalidField),
		errors.Is(err, common.ErrInvalidCredential),
		errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrAlreadyExists):
		s.metrics.RecordOperation(operation, metrics.ResultRejected)
	default:
		s.metrics.RecordOperation(operation, metrics.ResultError)
	}
}
