package dto

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin faculty security"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login. Field names follow the wire
// contract consumed by the dashboards.
type LoginResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
}

// RegisterResponse confirms account creation
type RegisterResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
