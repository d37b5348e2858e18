package dto

import (
	"github.com/insanmekan/journal_management_app/internal/core/domain"
)

// UserUpdateRequest defines the profile fields a user may change.
// Pointers differentiate omitted fields from zero values.
type UserUpdateRequest struct {
	Name          *string `json:"name,omitempty"`
	Title         *string `json:"title,omitempty"`
	Bio           *string `json:"bio,omitempty"`
	Telephone     *string `json:"telephone,omitempty"`
	ScienceBranch *string `json:"science_branch,omitempty"`
	Location      *string `json:"location,omitempty"`
	YoksisID      *string `json:"yoksis_id,omitempty"`
	OrcidID       *string `json:"orcid_id,omitempty"`
}

// UserResponse is the outward projection of a user.
type UserResponse struct {
	ID            int    `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Title         string `json:"title,omitempty"`
	Bio           string `json:"bio,omitempty"`
	ScienceBranch string `json:"science_branch,omitempty"`
	Location      string `json:"location,omitempty"`
	YoksisID      string `json:"yoksis_id,omitempty"`
	OrcidID       string `json:"orcid_id,omitempty"`
	Role          string `json:"role"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Title:         u.Title,
		Bio:           u.Bio,
		ScienceBranch: u.ScienceBranch,
		Location:      u.Location,
		YoksisID:      u.YoksisID,
		OrcidID:       u.OrcidID,
		Role:          string(u.Role),
	}
}

// ToUserResponses converts a slice of domain users.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
