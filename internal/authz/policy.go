// Package authz holds the authorization policy as pure decision functions.
// Handlers thread an explicit Actor into every service call and services ask
// Decide before touching the data store; there is no ambient request state.
package authz

import (
	"github.com/google/uuid"

	"mingle/internal/models"
)

// Actor is the identity making a request, possibly anonymous.
type Actor struct {
	ID            uuid.UUID
	Authenticated bool
	IsStaff       bool
	IsSuperuser   bool
}

// Anonymous is the zero actor used for unauthenticated requests.
var Anonymous = Actor{}

// ActorForUser builds an authenticated Actor from a user row.
func ActorForUser(u *models.User) Actor {
	return Actor{
		ID:            u.ID,
		Authenticated: true,
		IsStaff:       u.IsStaff,
		IsSuperuser:   u.IsSuperuser,
	}
}

// Action enumerates the operations a policy decision can cover.
type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
)

// IsWrite reports whether the action mutates state.
func (a Action) IsWrite() bool {
	return a != ActionRead
}

// ResourceKind identifies the entity a decision is about.
type ResourceKind int

const (
	KindCategory ResourceKind = iota
	KindPost
	KindComment
	KindLike
	KindFollow
	KindUser
)

// Resource describes the target of a decision. OwnerID is the zero UUID for
// resources that do not exist yet (creates).
type Resource struct {
	Kind    ResourceKind
	OwnerID uuid.UUID
}

// Decision is the outcome of a policy evaluation.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow returns an allowing decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denying decision with the given reason.
func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Denial reasons surfaced to callers.
const (
	ReasonAuthenticationRequired = "authentication required"
	ReasonAdminOnly              = "admin only"
	ReasonNotOwnerOrAdmin        = "not owner or admin"
)

// Decide evaluates the policy for actor performing action on resource.
// Pure and deterministic: same inputs always yield the same decision.
// Rules in precedence order:
//  1. anonymous actors cannot write
//  2. category writes require a superuser
//  3. post/comment update and delete require the owner or a staff user
//  4. reads are allowed for everyone, including anonymous actors
func Decide(actor Actor, action Action, resource Resource) Decision {
	if action == ActionRead {
		return Allow()
	}
	if !actor.Authenticated {
		return Deny(ReasonAuthenticationRequired)
	}
	if resource.Kind == KindCategory {
		if !actor.IsSuperuser {
			return Deny(ReasonAdminOnly)
		}
		return Allow()
	}
	if action == ActionUpdate || action == ActionDelete {
		if actor.ID != resource.OwnerID && !actor.IsStaff {
			return Deny(ReasonNotOwnerOrAdmin)
		}
	}
	return Allow()
}

// Err converts a denial into the application error the HTTP layer expects:
// 401 for missing authentication, 403 otherwise. Returns nil for allows.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	if d.Reason == ReasonAuthenticationRequired {
		return models.NewUnauthorizedError("Authentication required")
	}
	return models.NewForbiddenError("Permission denied: " + d.Reason)
}
