package models

// User is a learner account. Accounts are created and authenticated by
// the external identity provider; this system only reads them.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}
