package models

// User is the application-level user record kept alongside the identity
// provider's credentialed account. Created once at registration and looked
// up by email; there are no update or delete operations.
type User struct {
	ID    int64  `json:"_id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
