// AngelaMos | 2026
// dto.go

package auth

type RegisterRequest struct {
	Email           string  `json:"email"           validate:"required,max=255"`
	Username        string  `json:"username"        validate:"required,max=100"`
	Password        string  `json:"password"        validate:"required,min=6,max=128"`
	ConfirmPassword string  `json:"confirmPassword" validate:"required,eqfield=Password"`
	Age             *int    `json:"age"             validate:"omitempty,min=0,max=150"`
	State           *string `json:"state"           validate:"omitempty,max=100"`
	Profession      *string `json:"profession"      validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,max=255"`
}

type ResetPasswordRequest struct {
	ResetToken      string `json:"resetToken"      validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// PublicUser is the projection of a user handed back after login.
type PublicUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

type LoginResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

// ForgotPasswordResponse omits ResetToken unless a token was issued and
// exposure is enabled.
type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}
