package scheduling

// Actor roles, as claimed by the surrounding identity provider. The core
// trusts a passed-in identity and role; it never authenticates anyone.
const (
	RoleClient = "client"
	RoleBarber = "barber"
	RoleAdmin  = "admin"
)

// Actor is the identity performing an operation.
type Actor struct {
	ID   string
	Role string
}

func (a Actor) isStaff() bool {
	return a.Role == RoleBarber || a.Role == RoleAdmin
}
