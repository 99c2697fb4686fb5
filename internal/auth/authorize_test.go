package auth

import (
	"testing"

	"skyward/qualmatrix/internal/constants"
)

func TestCanActOnWing(t *testing.T) {
	admin := &JWTClaims{UserUUID: "u-1", RoleValue: constants.RoleAdmin}
	instructor := &JWTClaims{UserUUID: "u-2", RoleValue: constants.RoleInstructor, WingUUID: "wing-1"}
	pilot := &JWTClaims{UserUUID: "u-3", RoleValue: constants.RolePilot, WingUUID: "wing-1"}

	cases := []struct {
		name   string
		claims UserClaims
		wingID string
		want   bool
	}{
		{"nil claims", nil, "wing-1", false},
		{"admin any wing", admin, "wing-2", true},
		{"instructor own wing", instructor, "wing-1", true},
		{"instructor other wing", instructor, "wing-2", false},
		{"instructor empty wing id", instructor, "", false},
		{"pilot own wing", pilot, "wing-1", false},
	}
	for _, c := range cases {
		if got := CanActOnWing(c.claims, c.wingID); got != c.want {
			t.Errorf("%s: CanActOnWing = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCanViewWing(t *testing.T) {
	admin := &APIKeyClaims{UserUUID: "u-1", RoleValue: constants.RoleAdmin, KeyID: "k-1"}
	pilot := &JWTClaims{UserUUID: "u-3", RoleValue: constants.RolePilot, WingUUID: "wing-1"}

	if !CanViewWing(admin, "wing-2") {
		t.Error("admin must be able to view any wing")
	}
	if !CanViewWing(pilot, "wing-1") {
		t.Error("pilot must be able to view their own wing")
	}
	if CanViewWing(pilot, "wing-2") {
		t.Error("pilot must not view other wings")
	}
	if CanViewWing(nil, "wing-1") {
		t.Error("nil claims must not view anything")
	}
}
