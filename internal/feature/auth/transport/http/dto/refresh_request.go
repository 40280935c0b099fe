package dto

// RefreshReq represents the request body for /auth/token/refresh.
type RefreshReq struct {
	Refresh string `json:"refresh" binding:"required"`
}

// LogoutReq represents the request body for /auth/logout.
// The refresh token to blacklist travels in the body, not the header.
type LogoutReq struct {
	Refresh string `json:"refresh" binding:"required"`
}
