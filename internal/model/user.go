package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserStatus is the canonical account status vocabulary. Accounts are never
// hard-deleted; they are blocked instead.
type UserStatus string

const (
	UserActive  UserStatus = "Active"
	UserBlocked UserStatus = "Blocked"
)

// User represents an authenticated account in the system
type User struct {
	BaseModel
	Username string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"username" validate:"required"`
	Email    string     `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Password string     `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Status   UserStatus `gorm:"type:varchar(20);default:'Active'" json:"status"`
	Roles    []Role     `gorm:"many2many:user_roles;" json:"roles,omitempty"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// HasRole checks if the user carries a role with the given code
func (u *User) HasRole(code string) bool {
	for _, r := range u.Roles {
		if r.Code == code {
			return true
		}
	}
	return false
}

// RoleCodes returns the codes of all roles assigned to this user
func (u *User) RoleCodes() []string {
	codes := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		codes[i] = r.Code
	}
	return codes
}

// PrimaryRole returns the code used as the token's role claim. ADMIN wins
// over any other assignment so privileged menus survive multi-role users.
func (u *User) PrimaryRole() string {
	if u.HasRole(RoleAdmin) {
		return RoleAdmin
	}
	if len(u.Roles) > 0 {
		return u.Roles[0].Code
	}
	return ""
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Status    UserStatus `json:"status"`
	Roles     []string   `json:"roles"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Status:    u.Status,
		Roles:     u.RoleCodes(),
		CreatedAt: u.CreatedAt,
	}
}
