package constants

import "testing"

func TestRoleAtLeast(t *testing.T) {
	cases := []struct {
		role, min string
		want      bool
	}{
		{RoleWard, RoleWard, true},
		{RoleWard, RoleStake, false},
		{RoleStake, RoleWard, true},
		{RoleMission, RoleStake, true},
		{RoleRegion, RoleMission, true},
		{RoleUltra, RoleRegion, true},
		{"", RoleWard, false},
		{"janitor", RoleWard, false},
	}
	for _, c := range cases {
		if got := RoleAtLeast(c.role, c.min); got != c.want {
			t.Errorf("RoleAtLeast(%q, %q) = %v, want %v", c.role, c.min, got, c.want)
		}
	}
}
