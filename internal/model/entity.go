package model

// User is an account on the remote API. Users are loaded once at startup
// and never mutated; todos reference them by id.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Todo is the domain model for a todo entry. The server assigns the id on
// creation; only the completed flag is mutated afterwards.
type Todo struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
