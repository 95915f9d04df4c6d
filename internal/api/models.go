package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/store"
)

// RegisterRequest defines the payload for the user registration endpoint.
// Length and format rules beyond presence are enforced by the domain.
type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required"`
	LoginID  string `json:"login_id"`
}

// LoginRequest defines the payload for the user login endpoint.
// Exactly one of Email or LoginID identifies the account.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required_without=LoginID"`
	LoginID  string `json:"login_id" validate:"required_without=Email"`
	Password string `json:"password" validate:"required"`
}

// Identifier returns the value used to look up the account.
func (r LoginRequest) Identifier() string {
	if r.Email != "" {
		return r.Email
	}
	return r.LoginID
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`

	// AccessToken authorizes API calls.
	AccessToken string `json:"token"`

	// RefreshToken obtains a new token pair from /api/auth/refresh.
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresAt is the RFC 3339 expiry of the access token.
	ExpiresAt string `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// UserResponse is the public view of a user. Credentials never leave the server.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	LoginID   string    `json:"login_id,omitempty"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

// MaintopicRequest is the payload for creating or updating a maintopic.
type MaintopicRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}

// MaintopicResponse represents a maintopic.
type MaintopicResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
	IsClosed    bool      `json:"is_closed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DiscussionRequest is the payload for posting to a maintopic.
type DiscussionRequest struct {
	Paragraph string `json:"paragraph" validate:"required"`
}

// DiscussionResponse represents a discussion.
type DiscussionResponse struct {
	ID          int64     `json:"id"`
	Paragraph   string    `json:"paragraph"`
	MaintopicID int64     `json:"maintopic_id"`
	AuthorID    uuid.UUID `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoleRequest is the payload for creating a role.
type RoleRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=ADMIN USER"`
}

// RoleResponse represents a role.
type RoleResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// PageResponse wraps one page of a listing.
type PageResponse[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func userToResponse(user *domain.User) UserResponse {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, string(r))
	}
	return UserResponse{
		ID:        user.ID,
		UserName:  user.UserName.Value(),
		Email:     user.Email.Value(),
		LoginID:   user.LoginID.Value(),
		Roles:     roles,
		CreatedAt: user.CreatedAt,
	}
}

func maintopicToResponse(m *domain.Maintopic) MaintopicResponse {
	return MaintopicResponse{
		ID:          m.ID,
		Title:       m.Title.Value(),
		Description: m.Description.Value(),
		OwnerID:     m.OwnerID,
		IsClosed:    m.IsClosed,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func discussionToResponse(d *domain.Discussion) DiscussionResponse {
	return DiscussionResponse{
		ID:          d.ID,
		Paragraph:   d.Paragraph.Value(),
		MaintopicID: d.MaintopicID,
		AuthorID:    d.AuthorID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func roleToResponse(r *domain.Role) RoleResponse {
	return RoleResponse{
		ID:        r.ID,
		Name:      r.Name.Value(),
		Type:      string(r.Type),
		CreatedAt: r.CreatedAt,
	}
}

func pageToResponse[D, R any](result store.PageResult[D], convert func(D) R) PageResponse[R] {
	items := make([]R, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, convert(item))
	}
	return PageResponse[R]{
		Items:      items,
		Page:       result.Page.Number,
		Size:       result.Page.Size,
		Total:      result.Total,
		TotalPages: result.TotalPages(),
	}
}
