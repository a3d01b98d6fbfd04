package user

type Role string

const (
	RoleTalent        Role = "talent"
	RoleCareerBuilder Role = "career_builder"
	RoleAdmin         Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleTalent, RoleCareerBuilder, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
