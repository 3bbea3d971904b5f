package domain

// User is the authenticated caller as seen by the forum.
// Accounts themselves live in the user directory; we only read id and username.
type User struct {
	Id       UserId
	Username Username
}
