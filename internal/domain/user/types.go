package user

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleNurse        Role = "nurse"
	RolePharmacist   Role = "pharmacist"
	RoleReceptionist Role = "receptionist"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse, RolePharmacist, RoleReceptionist:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// AllRoles is the closed set, in the order shown to administrators.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleDoctor, RoleNurse, RolePharmacist, RoleReceptionist}
}
