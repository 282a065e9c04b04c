package model

// Role represents user roles in the system. Roles are read-only reference
// data from the API consumer's perspective; they are seeded at boot.
type Role struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Code        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Name        string `gorm:"type:varchar(100)" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// Role codes as constants. ADMIN is protected: it can never be removed from
// or reassigned away from a user that holds it.
const (
	RoleAdmin    = "ADMIN"
	RoleStaff    = "STAFF"
	RoleManage   = "MANAGE"
	RolePurchase = "PURCHASE"
	RoleSale     = "SALE"
)

// DefaultRoles defines the default roles in the system
var DefaultRoles = []Role{
	{Code: RoleAdmin, Name: "Administrator", Description: "Full system access"},
	{Code: RoleStaff, Name: "Warehouse Staff", Description: "Day-to-day warehouse operations"},
	{Code: RoleManage, Name: "Warehouse Manager", Description: "Approves inbound and outbound requests"},
	{Code: RolePurchase, Name: "Purchasing", Description: "Creates inbound stock requests"},
	{Code: RoleSale, Name: "Sales", Description: "Creates outbound stock requests"},
}
