package entities

// Role is the closed set of caller roles. Handlers resolve the free-text
// token claim into a Role once, at the edge; everything below branches on
// the typed value.

type Role string

const (
	RoleHomeowner    Role = "homeowner"
	RoleCompanyAdmin Role = "company_admin"
	RoleProfessional Role = "professional"
	RoleAdmin        Role = "admin"
)

// ParseRole maps a token claim to a Role. Unknown values return false.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleHomeowner, RoleCompanyAdmin, RoleProfessional, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Actor is the authenticated caller identity attached to every operation.
type Actor struct {
	Role   Role
	UserID string
}

// CanBid reports whether the actor's role is allowed to submit quotes.
func (a Actor) CanBid() bool {
	return a.Role == RoleCompanyAdmin || a.Role == RoleProfessional
}
