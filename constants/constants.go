package constants

// List endpoints never return more than this many rows. There is no
// pagination beyond the cap.
const MaxListRows = 500

// User payload bounds
const (
	UserNameMinLen = 10
	UserNameMaxLen = 60
	AddressMaxLen  = 400
)

// Store payload bounds
const (
	StoreNameMinLen = 20
	StoreNameMaxLen = 60
)

// Password policy
const (
	PasswordMinLen = 8
	PasswordMaxLen = 16
	// PasswordSpecials is the fixed special-character set a password must
	// draw at least one character from.
	PasswordSpecials = "!@#$%^&*"
)

// DefaultTokenTTLMinutes is used when TOKEN_TTL_MINUTES is unset.
const DefaultTokenTTLMinutes = 60 * 24 * 3
