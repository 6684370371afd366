package model

type RegisterRequest struct {
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=6"`
	FirstName string   `json:"firstName" binding:"required"`
	LastName  string   `json:"lastName" binding:"required"`
	Phone     string   `json:"phone"`
	Language  Language `json:"language" binding:"omitempty,oneof=SPANISH ENGLISH"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
