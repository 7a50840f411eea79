package constants

// Administrative roles, ordered from narrowest to widest scope.
const (
	RoleWard    = "ward"
	RoleStake   = "stake"
	RoleMission = "mission"
	RoleRegion  = "region"
	RoleUltra   = "ultra"
)

var roleRank = map[string]int{
	RoleWard:    1,
	RoleStake:   2,
	RoleMission: 3,
	RoleRegion:  4,
	RoleUltra:   5,
}

// RoleAtLeast reports whether role has at least the scope of min.
// Unknown roles rank below everything.
func RoleAtLeast(role, min string) bool {
	return roleRank[role] >= roleRank[min]
}
