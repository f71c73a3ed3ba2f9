package user

import "time"

type Role string

const (
	RoleFarmer    Role = "FARMER"
	RoleProcessor Role = "PROCESSOR"
	RoleRetailer  Role = "RETAILER"
	RoleCustomer  Role = "CUSTOMER"
)

// ValidRole reports whether r names one of the supply-chain roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleFarmer, RoleProcessor, RoleRetailer, RoleCustomer:
		return true
	}
	return false
}

type User struct {
	ID        uint64
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
}
