package dto

import (
	"time"

	"taskbox/infras/jwt"
	userModel "taskbox/internal/domains/user/model"
	gModel "taskbox/shared/model"
)

type SignupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *SignupRequest) ToUserModel(email, hashedPassword string) userModel.User {
	now := time.Now().UTC()

	return userModel.User{
		Email:          email,
		HashedPassword: hashedPassword,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (l *LoginResponse) FromAccessToken(token *jwt.AccessToken) {
	l.AccessToken = token.Token
	l.TokenType = token.TokenType
	l.ExpiresIn = token.ExpiresIn
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func (u *UserResponse) FromModel(model userModel.User) {
	u.ID = model.ID
	u.Email = model.Email
}
