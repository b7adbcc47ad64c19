package dto

// RegisterRequest creates a new (non-staff) user account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest authenticates by username and password.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the issued access token.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
}

// UserResponse is the transport shape of a user account.
type UserResponse struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"isStaff"`
}
