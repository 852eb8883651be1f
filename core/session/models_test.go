package session

import "testing"

func TestUser_HasAnyRole(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
		want    bool
	}{
		{name: "guru not in admin set", role: RoleGuru, allowed: AdminRoles, want: false},
		{name: "admin in admin set", role: RoleAdmin, allowed: AdminRoles, want: true},
		{name: "super user in admin set", role: RoleSuperUser, allowed: AdminRoles, want: true},
		{name: "empty role", role: "", allowed: AdminRoles, want: false},
		{name: "unknown role", role: "Wali Kelas", allowed: AdminRoles, want: false},
		{name: "empty allow-set", role: RoleAdmin, allowed: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr := &User{Role: tt.role}
			if got := usr.HasAnyRole(tt.allowed...); got != tt.want {
				t.Errorf("HasAnyRole() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSession_Present(t *testing.T) {
	usr := &User{ID: 1, NamaLengkap: "Guru Satu", Role: RoleGuru}

	tests := []struct {
		name string
		sess Session
		want bool
	}{
		{name: "absent", sess: Session{}},
		{name: "token only", sess: Session{AccessToken: "T1"}},
		{name: "user only", sess: Session{User: usr}},
		{name: "full", sess: Session{AccessToken: "T1", User: usr}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sess.Present(); got != tt.want {
				t.Errorf("Present() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSession_Role(t *testing.T) {
	if got := (Session{}).Role(); got != "" {
		t.Errorf("Role() = %q, want empty", got)
	}
	sess := Session{AccessToken: "T1", User: &User{Role: RoleGuru}}
	if got := sess.Role(); got != RoleGuru {
		t.Errorf("Role() = %q, want %q", got, RoleGuru)
	}
}
