package model

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an account record. Password holds a bcrypt hash.
type User struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserCollection is the persisted accounts document.
type UserCollection struct {
	Users []User `json:"users"`
}

// Find returns the user with the given username, or nil.
func (c *UserCollection) Find(username string) *User {
	for i := range c.Users {
		if c.Users[i].Username == username {
			return &c.Users[i]
		}
	}
	return nil
}

// Actor identifies who performed a request, as supplied by the auth layer.
type Actor struct {
	Username string
	Role     string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
