package models

type ValidateTokenRequest struct {
	AccessToken      string           `json:"access_token" validate:"required"`
	RegistrationType RegistrationType `json:"registration_type" validate:"omitempty,oneof=CONTINGENT PRINCIPAL"`
}

type BlockUserRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UserInfo is what /auth/me and /auth/validate return: the user plus a
// trimmed view of the profile, if one has been submitted.
type UserInfo struct {
	UserID           string           `json:"userId"`
	Email            string           `json:"email"`
	Name             string           `json:"name"`
	Role             Role             `json:"role"`
	RegistrationType RegistrationType `json:"registration_type,omitempty"`
	IsBlocked        bool             `json:"is_blocked"`
	Profile          *ProfileSummary  `json:"profile"`
}

type ProfileSummary struct {
	ID          uint   `json:"id"`
	Contact     string `json:"contact"`
	CollegeName string `json:"college_name"`
	Status      Status `json:"status"`
}
