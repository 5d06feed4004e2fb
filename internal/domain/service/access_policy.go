package service

import (
	"github.com/google/uuid"
)

// AccessPolicy decides whether an actor may perform a status-changing or
// deleting action on a target account. It is a pure decision function,
// evaluated before any store mutation.
type AccessPolicy interface {
	// CanModifyStatus reports whether actor may change target's status.
	CanModifyStatus(actorID, targetID uuid.UUID) bool

	// CanDelete reports whether actor may delete target.
	CanDelete(actorID, targetID uuid.UUID) bool
}

// selfGuardPolicy forbids an actor from acting on its own account. Both
// rules are identical today; they stay separate methods because their
// user-facing rejections differ.
type selfGuardPolicy struct{}

// NewSelfGuardPolicy is the constructor for the self-modification guard.
func NewSelfGuardPolicy() AccessPolicy {
	return selfGuardPolicy{}
}

// CanModifyStatus is false iff the actor targets itself.
func (selfGuardPolicy) CanModifyStatus(actorID, targetID uuid.UUID) bool {
	return actorID != targetID
}

// CanDelete is false iff the actor targets itself.
func (selfGuardPolicy) CanDelete(actorID, targetID uuid.UUID) bool {
	return actorID != targetID
}
