// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

// User mirrors a row of the users table. ResetTokenHash holds the SHA-256
// digest of an issued reset token and is set together with
// ResetTokenExpires.
type User struct {
	ID                int64      `db:"id"`
	Email             string     `db:"email"`
	Username          string     `db:"username"`
	PasswordHash      string     `db:"password"`
	Age               *int       `db:"age"`
	State             *string    `db:"state"`
	Profession        *string    `db:"profession"`
	ResetTokenHash    *string    `db:"reset_token"`
	ResetTokenExpires *time.Time `db:"reset_token_expires"`
	CreatedAt         time.Time  `db:"created_at"`
}

func (u *User) HasResetToken() bool {
	return u.ResetTokenHash != nil && u.ResetTokenExpires != nil
}
