package auth

import "skyward/qualmatrix/internal/constants"

// CanActOnWing is the single write-path authorization decision: admins may
// act on any wing, instructors only on their own, everyone else on none.
// Both the import reconciler and the CRUD handlers route through it instead
// of re-implementing role branching per operation.
func CanActOnWing(claims UserClaims, wingID string) bool {
	if claims == nil {
		return false
	}
	switch constants.Role(claims.Role()) {
	case constants.RoleAdmin:
		return true
	case constants.RoleInstructor:
		return wingID != "" && claims.WingID() == wingID
	default:
		return false
	}
}

// CanViewWing gates read endpoints: any member of the wing, or an admin.
func CanViewWing(claims UserClaims, wingID string) bool {
	if claims == nil {
		return false
	}
	if constants.Role(claims.Role()) == constants.RoleAdmin {
		return true
	}
	return wingID != "" && claims.WingID() == wingID
}
