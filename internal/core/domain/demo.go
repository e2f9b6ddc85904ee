package domain

import "crypto/subtle"

// DemoIdentity is a fixed credential pair that bypasses the user store.
// The table below is a closed allowlist: it is checked before any database
// lookup and is not extensible at runtime.
type DemoIdentity struct {
	Email    string
	Password string
	Role     string
}

var demoIdentities = []DemoIdentity{
	{Email: "demoadmin@email.com", Password: "123456", Role: RoleAdmin},
	{Email: "demouser@email.com", Password: "654321", Role: RoleUser},
}

// LookupDemo returns the demo identity matching the given credentials
// exactly, or false. Password comparison is constant-time.
func LookupDemo(email, password string) (DemoIdentity, bool) {
	for _, d := range demoIdentities {
		if d.Email == email &&
			subtle.ConstantTimeCompare([]byte(d.Password), []byte(password)) == 1 {
			return d, true
		}
	}
	return DemoIdentity{}, false
}

// IsDemoEmail reports whether email belongs to one of the demo identities.
// Registration refuses these addresses so a stored record can never shadow
// the allowlist.
func IsDemoEmail(email string) bool {
	for _, d := range demoIdentities {
		if d.Email == email {
			return true
		}
	}
	return false
}
