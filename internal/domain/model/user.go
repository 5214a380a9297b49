package model

// User is an account in the flat-file user directory. The stored password is
// compared in plain text, matching the reference system; this service makes
// no attempt at real credential security.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}
