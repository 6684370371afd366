package model

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAgent Role = "AGENT"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

type Language string

const (
	LanguageSpanish Language = "SPANISH"
	LanguageEnglish Language = "ENGLISH"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	Language     Language  `json:"language"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserPatch is a partial update. Nil fields are left untouched.
type UserPatch struct {
	FirstName *string   `json:"firstName" binding:"omitempty,min=1"`
	LastName  *string   `json:"lastName" binding:"omitempty,min=1"`
	Phone     *string   `json:"phone"`
	Language  *Language `json:"language" binding:"omitempty,oneof=SPANISH ENGLISH"`
	Password  *string   `json:"password" binding:"omitempty,min=6"`
	Role      *Role     `json:"role" binding:"omitempty,oneof=USER AGENT ADMIN"`

	// PasswordHash is filled by the service from Password.
	PasswordHash *string `json:"-"`
}

// ChangedFields lists the request fields that carry a value.
func (p UserPatch) ChangedFields() []string {
	var fields []string
	if p.FirstName != nil {
		fields = append(fields, "firstName")
	}
	if p.LastName != nil {
		fields = append(fields, "lastName")
	}
	if p.Phone != nil {
		fields = append(fields, "phone")
	}
	if p.Language != nil {
		fields = append(fields, "language")
	}
	if p.Password != nil {
		fields = append(fields, "password")
	}
	if p.Role != nil && *p.Role != "" {
		fields = append(fields, "role")
	}
	return fields
}

func (p UserPatch) IsEmpty() bool {
	return len(p.ChangedFields()) == 0
}
