package models

// ErrorResponse is the JSON body of every user-visible failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
