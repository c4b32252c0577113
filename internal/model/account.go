package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleBranch = "branch"
)

// Account is a user login. Branch users are scoped to their branch;
// admins see everything.
type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:'branch'"`
	BranchID     *uuid.UUID `gorm:"type:uuid;index"`
	// Email is optional — accounts with one get notification mails.
	Email     *string
	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Branch *Branch `gorm:"foreignKey:BranchID"`
}
