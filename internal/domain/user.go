package domain

import "time"

// Role is the authorization role of a user
type Role string

const (
	RoleStudent Role = "student"
	RoleCurator Role = "curator"
	RoleAdmin   Role = "admin"
)

// IsValid returns true for a known role
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleCurator || r == RoleAdmin
}

// RoleAllowed is the single authorization policy check: it reports whether
// role is one of the allowed roles. Every role-gated operation goes through
// this function; an unknown role is always denied.
func RoleAllowed(role Role, allowed ...Role) bool {
	if !role.IsValid() {
		return false
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// ModeratorRoles are the roles permitted to moderate applications and to see
// applications of all organizers.
var ModeratorRoles = []Role{RoleCurator, RoleAdmin}

// User represents a registered account
type User struct {
	ID             int64
	FullName       string
	Email          string
	HashedPassword string
	Role           Role

	// TelegramChatID заполняется ботом после привязки аккаунта.
	// nil - пользователь не привязал Telegram, уведомления не отправляются.
	TelegramChatID *int64
	Locale         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Principal is the authenticated caller of an operation, resolved from
// request credentials by the auth middleware.
type Principal struct {
	ID       int64
	Role     Role
	FullName string
}

// IsModerator returns true for curator/admin-class principals
func (p Principal) IsModerator() bool {
	return RoleAllowed(p.Role, ModeratorRoles...)
}
