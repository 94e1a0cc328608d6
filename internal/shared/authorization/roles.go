package authorization

// ActorRole identifies which of the three login-capable principal tables a
// token belongs to.
type ActorRole string

const (
	RoleSuperadmin ActorRole = "superadmin"
	RoleAgent      ActorRole = "agent"
	RoleHotel      ActorRole = "hotel"
)

func (r ActorRole) String() string {
	return string(r)
}

func (r ActorRole) IsSuperadmin() bool {
	return r == RoleSuperadmin
}

func (r ActorRole) IsValid() bool {
	return r == RoleSuperadmin || r == RoleAgent || r == RoleHotel
}
