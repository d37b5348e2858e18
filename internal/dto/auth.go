package dto

// LoginRequest carries the credential pair for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries the ID token issued by Google sign-in.
type GoogleLoginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// TokenLoginRequest re-establishes a session from a previously issued token.
type TokenLoginRequest struct {
	Token  string `json:"token" binding:"required"`
	UserID int    `json:"user_id" binding:"required"`
}

// RegisterRequest carries the fields for creating a new account.
type RegisterRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	Name          string `json:"name" binding:"required"`
	Title         string `json:"title"`
	ScienceBranch string `json:"science_branch"`
	Location      string `json:"location"`
	YoksisID      string `json:"yoksis_id"`
	OrcidID       string `json:"orcid_id"`
}

// ForgotPasswordRequest starts the password reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes the password reset flow.
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// TokenResponse is the platform's answer to a successful authentication.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int    `json:"user_id"`
}
