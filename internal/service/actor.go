package service

import (
	"github.com/google/uuid"

	"github.com/NightFoX54/ERP-Proje/internal/model"
)

// Actor identifies the authenticated caller of a branch-scoped operation.
// Handlers build it from the JWT claims and pass it in explicitly — services
// never read ambient security context.
type Actor struct {
	AccountID uuid.UUID
	BranchID  *uuid.UUID
	Role      string
}

func (a Actor) Admin() bool { return a.Role == model.RoleAdmin }

// MayManageBranch reports whether the actor can modify catalog data scoped to
// branchID. Admins may touch any branch.
func (a Actor) MayManageBranch(branchID uuid.UUID) bool {
	if a.Admin() {
		return true
	}
	return a.BranchID != nil && *a.BranchID == branchID
}
