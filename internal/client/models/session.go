package models

import "time"

// Session is the authenticated state of this client: the bearer credential,
// the user snapshot captured at login, and the absolute expiry embedded in
// the token. Role duplicates User.Role so access checks do not have to
// re-read the snapshot.
//
// A session is either fully present or absent; there is no partial state.
type Session struct {
	Token     string
	User      User
	Role      Role
	ExpiresAt time.Time
}
