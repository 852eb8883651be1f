package session

import "testing"

func TestGuard_Permitted(t *testing.T) {
	allowed := []string{RoleAdmin, RoleSuperUser}

	tests := []struct {
		name string
		sess *Session // nil = anonymous
		want bool
	}{
		{name: "anonymous", sess: nil},
		{name: "guru", sess: &Session{AccessToken: "T1", User: &User{Role: RoleGuru}}},
		{name: "admin", sess: &Session{AccessToken: "T1", User: &User{Role: RoleAdmin}}, want: true},
		{name: "super user", sess: &Session{AccessToken: "T1", User: &User{Role: RoleSuperUser}}, want: true},
		{name: "missing role", sess: &Session{AccessToken: "T1", User: &User{}}},
		{name: "partial session", sess: &Session{AccessToken: "T1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			if tt.sess != nil {
				if err := svc.store.Save(*tt.sess); err != nil {
					t.Fatalf("Save() failed: %v", err)
				}
			}
			g := NewGuard(svc)
			if got := g.Permitted(allowed...); got != tt.want {
				t.Errorf("Permitted() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGuard_Check(t *testing.T) {
	svc, _ := newTestService()
	g := NewGuard(svc)

	if err := g.Check(); err != ErrNotAuthenticated {
		t.Errorf("Check() error = %v, want ErrNotAuthenticated", err)
	}

	usr := &User{ID: 1, Role: RoleGuru}
	if err := svc.Save(Session{AccessToken: "T1", User: usr}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := g.Check(); err != nil {
		t.Errorf("Check() error = %v, want nil", err)
	}
	if err := g.Check(RoleAdmin, RoleSuperUser); err != ErrPermissionDenied {
		t.Errorf("Check(admin roles) error = %v, want ErrPermissionDenied", err)
	}
	if err := g.Check(RoleGuru); err != nil {
		t.Errorf("Check(guru) error = %v, want nil", err)
	}

	// guards are stateless: a logout between evaluations flips the decision
	if err := svc.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if err := g.Check(RoleGuru); err != ErrNotAuthenticated {
		t.Errorf("Check() after Clear() error = %v, want ErrNotAuthenticated", err)
	}
}
