package domain

// Role is the closed set of platform roles. The backend is authoritative;
// the client only ever reads these off fetched users.
type Role string

const (
	RoleWriter     Role = "writer"
	RoleEditor     Role = "editor"
	RoleArbitrator Role = "arbitrator" // referee
	RoleAdmin      Role = "admin"
	RoleOwner      Role = "owner"
)

// IsAdminLevel reports whether the role carries platform-wide management
// rights. Owner is a superset of admin everywhere the client cares.
func (r Role) IsAdminLevel() bool {
	return r == RoleAdmin || r == RoleOwner
}

// User represents a platform user as served by the journal API.
type User struct {
	ID            int    `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Title         string `json:"title,omitempty"`
	Bio           string `json:"bio,omitempty"`
	Telephone     string `json:"telephone,omitempty"`
	ScienceBranch string `json:"science_branch,omitempty"`
	Location      string `json:"location,omitempty"`
	YoksisID      string `json:"yoksis_id,omitempty"`
	OrcidID       string `json:"orcid_id,omitempty"`
	Role          Role   `json:"role"`
	IsAuth        bool   `json:"is_auth"`
}
