package models

// User is the demo session identity. Presence of a user implies an
// authenticated session; there are no credentials.
type User struct {
	Email string `json:"email" bson:"email"`
	Name  string `json:"name" bson:"name"`
}
