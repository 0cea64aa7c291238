package entity

import "time"

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"
)

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// User is a marketplace account as seen by the admin console.
// Reports counts how often the user has been reported; it is bumped by
// report resolution flows, never directly by a moderator action.
type User struct {
	ID       string
	Name     string
	Email    string
	Avatar   string
	Status   UserStatus
	Role     UserRole
	JoinedAt time.Time
	Listings int
	Sales    int
	Rating   float64
	Reports  int
}
