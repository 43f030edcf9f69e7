package auth

import (
	"github.com/ogeoseo/go-api-server/internal/model"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

// LoginUser is the authenticated user with badge summary attached.
type LoginUser struct {
	model.User
	Badges     []string `json:"badges"`
	BadgeCount int      `json:"badgeCount"`
}

type LoginResponse struct {
	User  LoginUser `json:"user"`
	Token string    `json:"token"`
}

// MeResponse adds the badge summary and leaderboard rank to the profile.
type MeResponse struct {
	model.User
	Badges     []string `json:"badges"`
	BadgeCount int      `json:"badgeCount"`
	Rank       int      `json:"rank"`
}
