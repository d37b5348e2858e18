package dto

// SessionResponse reports the gateway's current operator session.
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
	TokenExpiry   string        `json:"token_expiry,omitempty"`
}
