// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /auth/register endpoint.
// It uses Gin's binding tags for validation; the password match and
// username uniqueness checks happen in the usecase.
type RegisterReq struct {
	Username  string `json:"username" binding:"required,max=150"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Password2 string `json:"password2" binding:"required"`
}

// RegisterRes represents the response for a successful registration.
type RegisterRes struct {
	User   UserInfo  `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// UserInfo is the public view of a user. The password hash is never exposed.
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
