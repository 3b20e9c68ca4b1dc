package models

// Role is the closed set of account roles. A role is fixed when the account
// is created and never changed by any endpoint.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleOwner:
		return true
	}
	return false
}

// RatesStores reports whether accounts with this role submit store ratings.
func (r Role) RatesStores() bool {
	return r == RoleUser
}

// OwnsStore reports whether accounts with this role can be assigned a store
// and see the owner dashboard.
func (r Role) OwnsStore() bool {
	return r == RoleOwner
}

func (r Role) String() string {
	return string(r)
}
