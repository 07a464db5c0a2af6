// AngelaMos | 2026
// notifier.go

package auth

import (
	"context"
	"log/slog"
	"time"
)

// ResetNotifier delivers an issued reset token to the account owner.
type ResetNotifier interface {
	SendPasswordReset(
		ctx context.Context,
		user UserInfo,
		token string,
		expiresAt time.Time,
	) error
}

// LogNotifier records that a token was issued without writing the token
// itself to the log.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) SendPasswordReset(
	ctx context.Context,
	user UserInfo,
	_ string,
	expiresAt time.Time,
) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.InfoContext(ctx, "password reset token issued",
		"user_id", user.ID,
		"expires_at", expiresAt,
	)
	return nil
}
