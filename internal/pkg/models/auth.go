package models

// Role identifies the actor class driving geofiltered queries
type Role string

const (
	RoleCollector Role = "collector"
	RoleCitizen   Role = "citizen"
)

// LoginRequest carries credentials for the backend login endpoints
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

// AuthResponse is the backend's login response; only the token is kept
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	Msg         string `json:"msg,omitempty"`
}
