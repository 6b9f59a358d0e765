// file: internals/constants/roles.go
package constants

import "fmt"

const (
	RoleParent      = "parent"
	RoleNanny       = "nanny"
	RoleCoordinator = "coordinator"
	RoleAdmin       = "admin"
)

const (
	ErrOnlyMembersCanAccess = "❌ Only association members may access %s."
	ErrOnlyStaffCanAccess   = "❌ Only nannies, coordinators or admins may access %s."
	ErrOnlyAdminsCanAccess  = "❌ Only coordinators or admins may access %s."
)

func RoleErrorMember(feature string) string {
	return fmt.Sprintf(ErrOnlyMembersCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

var (
	AllRoles = []string{
		RoleParent,
		RoleNanny,
		RoleCoordinator,
		RoleAdmin,
	}

	StaffRoles = []string{
		RoleNanny,
		RoleCoordinator,
		RoleAdmin,
	}

	AdminRoles = []string{
		RoleCoordinator,
		RoleAdmin,
	}
)
