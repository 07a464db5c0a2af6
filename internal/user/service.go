// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carterperez-dev/opinion-board/internal/auth"
	"github.com/carterperez-dev/opinion-board/internal/core"
)

const duplicateMessage = "email or username already exists"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var _ auth.UserProvider = (*Service)(nil)

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByResetToken(
	ctx context.Context,
	tokenHash string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByResetTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) Create(
	ctx context.Context,
	nu auth.NewUser,
) (*auth.UserInfo, error) {
	user := &User{
		Email:        NormalizeEmail(nu.Email),
		Username:     strings.TrimSpace(nu.Username),
		PasswordHash: nu.PasswordHash,
		Age:          nu.Age,
		State:        cleanOptional(nu.State),
		Profession:   cleanOptional(nu.Profession),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID int64,
	passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *Service) SetResetToken(
	ctx context.Context,
	userID int64,
	tokenHash string,
	expiresAt time.Time,
) error {
	return s.repo.SetResetToken(ctx, userID, tokenHash, expiresAt)
}

func (s *Service) ConsumeResetToken(
	ctx context.Context,
	userID int64,
	tokenHash, passwordHash string,
) error {
	return s.repo.ConsumeResetToken(ctx, userID, tokenHash, passwordHash)
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) CountUsers(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *Service) CreateUser(
	ctx context.Context,
	req CreateUserRequest,
) (*User, error) {
	email, username, err := requireIdentity(req.Email, req.Username)
	if err != nil {
		return nil, err
	}

	hash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Age:          req.Age,
		State:        cleanOptional(req.State),
		Profession:   cleanOptional(req.Profession),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, conflictOr(err)
	}

	return user, nil
}

// UpdateUser replaces the identity and profile fields of a user. A nil
// optional field clears the stored value.
func (s *Service) UpdateUser(
	ctx context.Context,
	id int64,
	req UpdateUserRequest,
) (*User, error) {
	email, username, err := requireIdentity(req.Email, req.Username)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Email = email
	user.Username = username
	user.Age = req.Age
	user.State = cleanOptional(req.State)
	user.Profession = cleanOptional(req.Profession)

	if req.Password != nil {
		hash, err := core.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, conflictOr(err)
	}

	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// NormalizeEmail trims and lower-cases an address so lookups and the
// unique index agree on one spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func requireIdentity(email, username string) (string, string, error) {
	email = NormalizeEmail(email)
	username = strings.TrimSpace(username)
	if email == "" || username == "" {
		return "", "", core.ValidationError("email and username are required")
	}
	return email, username, nil
}

func conflictOr(err error) error {
	if errors.Is(err, core.ErrDuplicateKey) {
		return core.ConflictError(duplicateMessage)
	}
	return err
}

func cleanOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:                u.ID,
		Email:             u.Email,
		Username:          u.Username,
		PasswordHash:      u.PasswordHash,
		ResetTokenExpires: u.ResetTokenExpires,
	}
}
