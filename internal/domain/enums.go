package domain

// UserRole represents the authorization level of a user inside an organization.
type UserRole string

const (
	UserRoleBoss   UserRole = "boss"
	UserRoleWorker UserRole = "worker"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleBoss, UserRoleWorker:
		return true
	}
	return false
}

func (r UserRole) IsBoss() bool {
	return r == UserRoleBoss
}
