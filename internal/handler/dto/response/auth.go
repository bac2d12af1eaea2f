package response

import "repair-storefront/internal/domain/session"

type UserResponse struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

type MeResponse struct {
	IsAuthenticated bool          `json:"isAuthenticated"`
	User            *UserResponse `json:"user,omitempty"`
}

func FromAuthState(authenticated bool, profile *session.Profile) *MeResponse {
	resp := &MeResponse{IsAuthenticated: authenticated}
	if profile != nil {
		resp.User = &UserResponse{Name: profile.Name, Mobile: profile.Mobile}
	}
	return resp
}
