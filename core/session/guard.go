package session

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrPermissionDenied = errors.New("permission denied")
)

// Guard gates access to protected surfaces. Both checks are stateless: every
// evaluation re-reads the store snapshot and holds no memory in between.
type Guard struct {
	svc *Service
}

func NewGuard(svc *Service) *Guard {
	return &Guard{svc: svc}
}

// Authenticated is the presence check: a fully present session exists.
func (g *Guard) Authenticated() bool {
	return g.svc.IsAuthenticated()
}

// Permitted reports whether the current role belongs to the allow-set.
// A missing or unknown role is denied.
func (g *Guard) Permitted(allowed ...string) bool {
	sess, err := g.svc.Current()
	if err != nil {
		return false
	}
	return sess.User.HasAnyRole(allowed...)
}

// Check runs the presence check then, when an allow-set is given, the role
// check.
func (g *Guard) Check(allowed ...string) error {
	if !g.Authenticated() {
		return ErrNotAuthenticated
	}
	if len(allowed) > 0 && !g.Permitted(allowed...) {
		return ErrPermissionDenied
	}
	return nil
}
