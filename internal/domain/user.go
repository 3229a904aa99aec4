package domain

import "time"

// FlagYes marks an enabled CHAR(1) flag column.
const FlagYes = "Y"

// Role is a named permission group shared by many users.
type Role struct {
	RoleID    string
	RoleName  string
	UseYn     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active reports whether the role is enabled.
func (r Role) Active() bool {
	return r.UseYn == FlagYes
}

// User is the stored credential record together with profile columns.
type User struct {
	UserID       string
	PasswordHash string
	UserName     string
	Birth        string
	Gender       string
	Phone        string
	Email        string
	Addr         string
	AddrDetail   string
	UseYn        string
	DelYn        string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Active reports whether the account may log in.
func (u User) Active() bool {
	return u.UseYn == FlagYes && u.DelYn != FlagYes
}

// Identity returns the token subject for the user.
func (u User) Identity() Identity {
	return Identity{UserID: u.UserID, UserName: u.UserName, RoleID: u.Role.RoleID}
}
