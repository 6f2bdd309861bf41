package models

// Login carries credentials to the backend. Doctors and patients log in with
// their email; admins put their username in Email.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
