// Package role defines the closed permission set and the actor→permission
// table of L1. HUMAN holds every permission; SYSTEM holds only EXECUTE.
package role

import "github.com/northwood-systems/govkernel/pkg/foundation"

// Permission is the closed set of operations a permission table can grant.
type Permission string

const (
	Initiate Permission = "INITIATE"
	Confirm  Permission = "CONFIRM"
	Override Permission = "OVERRIDE"
	Execute  Permission = "EXECUTE"
	Audit    Permission = "AUDIT"
)

var allPermissions = []Permission{Initiate, Confirm, Override, Execute, Audit}

var table = map[foundation.ActorKind]map[Permission]bool{
	foundation.ActorHuman: {
		Initiate: true,
		Confirm:  true,
		Override: true,
		Execute:  true,
		Audit:    true,
	},
	foundation.ActorSystem: {
		Execute: true,
	},
}

// HasPermission reports whether the given actor kind holds the given
// permission. Unknown actor kinds and unknown permissions both deny: the
// table has no default-grant path.
func HasPermission(kind foundation.ActorKind, perm Permission) bool {
	grants, ok := table[kind]
	if !ok {
		return false
	}
	if !isKnownPermission(perm) {
		return false
	}
	return grants[perm]
}

func isKnownPermission(perm Permission) bool {
	for _, p := range allPermissions {
		if p == perm {
			return true
		}
	}
	return false
}

// Authorize returns nil if the actor kind holds perm, or an
// UnauthorizedActorError otherwise. Unknown actor kinds and unknown
// permissions both deny.
func Authorize(kind foundation.ActorKind, perm Permission) error {
	if _, ok := foundation.ResolveActor(kind); !ok {
		return foundation.NewError(foundation.UnauthorizedActorError, "unknown actor kind")
	}
	if !HasPermission(kind, perm) {
		return foundation.NewError(foundation.UnauthorizedActorError, "actor lacks permission "+string(perm))
	}
	return nil
}
