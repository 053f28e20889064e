package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleLandlord Role = "landlord"
	RoleStudent  Role = "student"
)

// Actor identifies who is performing an operation. It is supplied by the
// external identity provider on every call; the ledger never reads it from
// ambient state.
type Actor struct {
	UserID int32 `json:"user_id"`
	Role   Role  `json:"role"`
}

func (a Actor) Is(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}
