package authcore

// Role is the enumerated session role. The client recognizes exactly two
// values; anything else found in storage or claims is coerced to RoleUser.
type Role string

const (
	// RoleUser is the default role of an authenticated session.
	RoleUser Role = "USER"
	// RoleAdmin unlocks admin-flagged routes.
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Session is a read-only snapshot of the managed session state, taken under
// lock by [Manager.Snapshot]. SubjectID and Role are meaningful only when
// Authenticated is true.
type Session struct {
	Authenticated bool
	Token         string
	SubjectID     string
	Role          Role
}

// IsAdmin reports whether the snapshot carries an authenticated admin role.
func (s Session) IsAdmin() bool {
	return s.Authenticated && s.Role == RoleAdmin
}
