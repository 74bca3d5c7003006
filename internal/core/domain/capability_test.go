package domain

import "testing"

func TestCapability_SatisfiedBy(t *testing.T) {
	user := &Identity{ID: "42", Username: "nur", Roles: []Role{RoleUser}}
	admin := &Identity{ID: "7", Username: "root", Roles: []Role{RoleAdmin}}
	svc := &Identity{ID: "9", Username: "bot", Roles: []Role{RoleService}}

	tests := []struct {
		name       string
		capability Capability
		identity   *Identity
		want       bool
	}{
		{"authenticated nil identity", Authenticated(), nil, false},
		{"authenticated user", Authenticated(), user, true},
		{"role match", HasRole(RoleUser), user, true},
		{"role mismatch", HasRole(RoleAdmin), user, false},
		{"admin override on role", HasRole(RoleService), admin, true},
		{"service role no override", HasRole(RoleAdmin), svc, false},
		{"owner by id", IsOwner("42"), user, true},
		{"not owner", IsOwner("42"), svc, false},
		{"admin override on ownership", IsOwner("42"), admin, true},
		{"owner nil identity", IsOwner("42"), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.capability.SatisfiedBy(tt.identity); got != tt.want {
				t.Fatalf("SatisfiedBy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIdentity_HasRole(t *testing.T) {
	identity := &Identity{Roles: []Role{RoleUser, RoleService}}
	if !identity.HasRole(RoleUser) || !identity.HasRole(RoleService) {
		t.Fatalf("expected roles present")
	}
	if identity.HasRole(RoleAdmin) {
		t.Fatalf("unexpected admin role")
	}
}

func TestRole_IsValid(t *testing.T) {
	for _, r := range []Role{RoleUser, RoleAdmin, RoleService} {
		if !r.IsValid() {
			t.Fatalf("role %s must be valid", r)
		}
	}
	if Role("root").IsValid() {
		t.Fatalf("unknown role must be invalid")
	}
}
