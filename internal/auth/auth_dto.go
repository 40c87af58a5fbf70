package auth

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
}

type VerifyResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role,omitempty"`
}
