// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/opinion-board/internal/core"
)

const (
	DefaultResetTokenTTL = time.Hour
	minPasswordLength    = 6

	resetAcknowledgement = "if this email exists, a reset token has been issued"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserInfo struct {
	ID                int64
	Email             string
	Username          string
	PasswordHash      string
	ResetTokenExpires *time.Time
}

type NewUser struct {
	Email        string
	Username     string
	PasswordHash string
	Age          *int
	State        *string
	Profession   *string
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByResetToken(ctx context.Context, tokenHash string) (*UserInfo, error)
	Create(ctx context.Context, nu NewUser) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	SetResetToken(
		ctx context.Context,
		userID int64,
		tokenHash string,
		expiresAt time.Time,
	) error
	ConsumeResetToken(
		ctx context.Context,
		userID int64,
		tokenHash, passwordHash string,
	) error
}

type Options struct {
	ResetTokenTTL time.Duration
	// ExposeResetToken returns issued tokens in the forgot-password
	// response in addition to handing them to the Notifier.
	ExposeResetToken bool
	Notifier         ResetNotifier
	Now              func() time.Time
}

type Service struct {
	users  UserProvider
	ttl    time.Duration
	expose bool
	notify ResetNotifier
	now    func() time.Time
}

func NewService(users UserProvider, opts Options) *Service {
	if opts.ResetTokenTTL <= 0 {
		opts.ResetTokenTTL = DefaultResetTokenTTL
	}
	if opts.Notifier == nil {
		opts.Notifier = LogNotifier{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Service{
		users:  users,
		ttl:    opts.ResetTokenTTL,
		expose: opts.ExposeResetToken,
		notify: opts.Notifier,
		now:    opts.Now,
	}
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (int64, error) {
	email := strings.TrimSpace(req.Email)
	username := strings.TrimSpace(req.Username)
	if email == "" || username == "" || req.Password == "" {
		return 0, core.ValidationError("email, username and password are required")
	}
	if err := checkNewPassword(req.Password, req.ConfirmPassword); err != nil {
		return 0, err
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, NewUser{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		Age:          req.Age,
		State:        req.State,
		Profession:   req.Profession,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return 0, core.ConflictError("email or username already exists")
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	return user.ID, nil
}

// Authenticate returns ErrInvalidCredentials for both an unknown email and
// a wrong password, and spends the same hashing work on either path.
func (s *Service) Authenticate(
	ctx context.Context,
	email, password string,
) (*PublicUser, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		if err := s.users.UpdatePassword(ctx, user.ID, newHash); err != nil {
			slog.WarnContext(ctx, "password rehash failed",
				"user_id", user.ID,
				"error", err,
			)
		}
	}

	return &PublicUser{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	}, nil
}

// RequestPasswordReset answers identically whether or not the email is
// registered. Only a known email gets a token stored and delivered.
func (s *Service) RequestPasswordReset(
	ctx context.Context,
	email string,
) (*ForgotPasswordResponse, error) {
	resp := &ForgotPasswordResponse{Message: resetAcknowledgement}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return resp, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	token, err := core.GenerateResetToken()
	if err != nil {
		return nil, fmt.Errorf("generate reset token: %w", err)
	}
	expiresAt := s.now().Add(s.ttl)

	if err := s.users.SetResetToken(
		ctx,
		user.ID,
		core.HashToken(token),
		expiresAt,
	); err != nil {
		return nil, fmt.Errorf("store reset token: %w", err)
	}

	core.AddSpanEvent(ctx, "password_reset.issued",
		attribute.Int64("user.id", user.ID),
	)

	if err := s.notify.SendPasswordReset(ctx, *user, token, expiresAt); err != nil {
		slog.ErrorContext(ctx, "reset notification failed",
			"user_id", user.ID,
			"error", err,
		)
	}

	if s.expose {
		resp.ResetToken = token
	}

	return resp, nil
}

func (s *Service) ResetPassword(
	ctx context.Context,
	req ResetPasswordRequest,
) error {
	if req.ResetToken == "" || req.NewPassword == "" {
		return core.ValidationError("resetToken and newPassword are required")
	}
	if err := checkNewPassword(req.NewPassword, req.ConfirmPassword); err != nil {
		return err
	}

	tokenHash := core.HashToken(req.ResetToken)

	user, err := s.users.GetByResetToken(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.TokenInvalidError()
		}
		return fmt.Errorf("find reset token: %w", err)
	}

	if user.ResetTokenExpires == nil || !s.now().Before(*user.ResetTokenExpires) {
		return core.TokenInvalidError()
	}

	passwordHash, err := core.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.users.ConsumeResetToken(ctx, user.ID, tokenHash, passwordHash)
	if err != nil {
		if errors.Is(err, core.ErrTokenInvalid) {
			return core.TokenInvalidError()
		}
		return fmt.Errorf("consume reset token: %w", err)
	}

	core.AddSpanEvent(ctx, "password_reset.completed",
		attribute.Int64("user.id", user.ID),
	)

	return nil
}

func checkNewPassword(password, confirm string) error {
	if password != confirm {
		return core.ValidationError("passwords do not match")
	}
	if len([]rune(password)) < minPasswordLength {
		return core.ValidationError("password must be at least 6 characters")
	}
	return nil
}
