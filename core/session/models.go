package session

// Roles known to the backend. Role gating is a plain membership check, so a
// role added server-side simply never matches an existing allow-set.
const (
	RoleGuru      = "Guru"
	RoleAdmin     = "Admin"
	RoleSuperUser = "Super User"
)

var (
	AdminRoles = []string{RoleAdmin, RoleSuperUser}
	AllRoles   = []string{RoleGuru, RoleAdmin, RoleSuperUser}
)

// User is the profile blob the backend returns on login.
type User struct {
	ID          int    `json:"id"`
	NamaLengkap string `json:"nama_lengkap"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	SekolahID   *int   `json:"sekolah_id,omitempty"`
}

func (u *User) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if u.Role == role {
			return true
		}
	}
	return false
}

// Session pairs the opaque access token with the profile it was issued for.
// A token without a matching profile can exist at the Store level (partial
// write, manual tampering); Service normalizes it to absent.
type Session struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// Present reports whether the session is fully present: token and profile
// both set.
func (s Session) Present() bool {
	return s.AccessToken != "" && s.User != nil
}

func (s Session) Role() string {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}
