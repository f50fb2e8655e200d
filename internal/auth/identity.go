package auth

// Roles recognised in access tokens.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
)

// Principal is the caller identified by a validated access token. Subjects
// are issued by the upstream portal and are opaque to this service.
type Principal struct {
	Subject string
	Role    string
}

// IsAdmin reports whether the principal may use admin endpoints.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
