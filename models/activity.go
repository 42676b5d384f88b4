package models

// UserRequest is one recorded operation in a user's activity history.
type UserRequest struct {
	Method string `json:"method"`
	Route  string `json:"route"`
}
