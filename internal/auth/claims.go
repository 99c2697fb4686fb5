package auth

import "skyward/qualmatrix/internal/constants"

// UserClaims is the caller identity every request carries after the auth
// middleware runs. Tokens are issued by an external collaborator; this
// service only verifies and trusts them.
type UserClaims interface {
	UserID() string
	Role() string
	// WingID is empty for admins, who are not wing-scoped.
	WingID() string
	Source() string
}

type JWTClaims struct {
	UserUUID  string
	RoleValue constants.Role
	WingUUID  string
}

func (c *JWTClaims) UserID() string { return c.UserUUID }
func (c *JWTClaims) Role() string { // implements UserClaims
	return string(c.RoleValue)
}
func (c *JWTClaims) WingID() string { return c.WingUUID }
func (c *JWTClaims) Source() string { return "JWT" }

type APIKeyClaims struct {
	UserUUID  string
	RoleValue constants.Role
	WingUUID  string
	KeyID     string
}

func (c *APIKeyClaims) UserID() string { return c.UserUUID }
func (c *APIKeyClaims) Role() string { // implements UserClaims
	return string(c.RoleValue)
}
func (c *APIKeyClaims) WingID() string { return c.WingUUID }
func (c *APIKeyClaims) Source() string { return "API_KEY" }
