// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type CreateUserRequest struct {
	Email      string  `json:"email"      validate:"required,max=255"`
	Username   string  `json:"username"   validate:"required,max=100"`
	Password   string  `json:"password"   validate:"required,min=6,max=128"`
	Age        *int    `json:"age"        validate:"omitempty,min=0,max=150"`
	State      *string `json:"state"      validate:"omitempty,max=100"`
	Profession *string `json:"profession" validate:"omitempty,max=100"`
}

// UpdateUserRequest replaces the profile of a user. The password is only
// changed when present.
type UpdateUserRequest struct {
	Email      string  `json:"email"      validate:"required,max=255"`
	Username   string  `json:"username"   validate:"required,max=100"`
	Password   *string `json:"password"   validate:"omitempty,min=6,max=128"`
	Age        *int    `json:"age"        validate:"omitempty,min=0,max=150"`
	State      *string `json:"state"      validate:"omitempty,max=100"`
	Profession *string `json:"profession" validate:"omitempty,max=100"`
}

type UserResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	Age        *int      `json:"age"`
	State      *string   `json:"state"`
	Profession *string   `json:"profession"`
	CreatedAt  time.Time `json:"created_at"`
}

type UserEnvelope struct {
	User UserResponse `json:"user"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		Age:        u.Age,
		State:      u.State,
		Profession: u.Profession,
		CreatedAt:  u.CreatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
