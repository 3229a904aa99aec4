package dto

import "github.com/spec-kit/book-purple/internal/domain"

// IdentityResponse describes the caller attached to the request.
type IdentityResponse struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	UserRole string `json:"userRole"`
}

// UserProfileResponse is the public view of a stored user.
type UserProfileResponse struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	RoleID   string `json:"roleId"`
	RoleName string `json:"roleName"`
}

// NewIdentityResponse maps an identity.
func NewIdentityResponse(identity domain.Identity) IdentityResponse {
	return IdentityResponse{UserID: identity.UserID, UserName: identity.UserName, UserRole: identity.RoleID}
}

// NewUserProfileResponse maps a stored user without credential columns.
func NewUserProfileResponse(user *domain.User) UserProfileResponse {
	return UserProfileResponse{
		UserID:   user.UserID,
		UserName: user.UserName,
		Email:    user.Email,
		Phone:    user.Phone,
		RoleID:   user.Role.RoleID,
		RoleName: user.Role.RoleName,
	}
}
