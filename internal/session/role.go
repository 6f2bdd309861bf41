package session

// Role is the viewer's access class. It drives which UI actions are visible.
type Role int

const (
	Anonymous Role = iota
	Admin
	Doctor
	Patient
	LoggedPatient
)

var roleNames = map[Role]string{
	Anonymous:     "",
	Admin:         "admin",
	Doctor:        "doctor",
	Patient:       "patient",
	LoggedPatient: "loggedPatient",
}

// ParseRole maps a stored role string to a Role. Unknown values are Anonymous.
func ParseRole(s string) Role {
	for r, name := range roleNames {
		if name == s {
			return r
		}
	}
	return Anonymous
}

func (r Role) String() string {
	return roleNames[r]
}

// Authenticated reports whether the role can only exist alongside a token.
func (r Role) Authenticated() bool {
	return r == Admin || r == Doctor || r == LoggedPatient
}
