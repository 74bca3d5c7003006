package domain

type capabilityKind int

const (
	capAuthenticated capabilityKind = iota
	capHasRole
	capIsOwner
)

// Capability is a named requirement a request must satisfy: any valid
// identity, a specific role, or ownership of a resource. Evaluation is a
// pure function of the identity; no ambient state is consulted.
type Capability struct {
	kind    capabilityKind
	role    Role
	ownerID string
}

// Authenticated requires any valid identity.
func Authenticated() Capability {
	return Capability{kind: capAuthenticated}
}

// HasRole requires the given role. Admin satisfies any role check.
func HasRole(role Role) Capability {
	return Capability{kind: capHasRole, role: role}
}

// IsOwner requires the identity to own the resource identified by ownerID.
// Admin satisfies any ownership check.
func IsOwner(ownerID string) Capability {
	return Capability{kind: capIsOwner, ownerID: ownerID}
}

// SatisfiedBy reports whether the identity meets the requirement.
// A nil identity satisfies nothing.
func (c Capability) SatisfiedBy(identity *Identity) bool {
	if identity == nil {
		return false
	}
	switch c.kind {
	case capAuthenticated:
		return true
	case capHasRole:
		return identity.HasRole(c.role) || identity.HasRole(RoleAdmin)
	case capIsOwner:
		return identity.ID == c.ownerID || identity.HasRole(RoleAdmin)
	default:
		return false
	}
}

// String renders the capability for logs and metrics labels.
func (c Capability) String() string {
	switch c.kind {
	case capAuthenticated:
		return "authenticated"
	case capHasRole:
		return "role:" + string(c.role)
	case capIsOwner:
		return "owner"
	default:
		return "unknown"
	}
}

// AuthDecision is the per-request outcome of an authorization check.
// Identity is nil when the request carried no valid token.
type AuthDecision struct {
	Identity      *Identity
	Authenticated bool
	Allowed       bool
	Roles         []Role
}
