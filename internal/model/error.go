package model

// ErrorResponse is the JSON shape of every failed API call. Code is a stable
// machine-readable kind for callers to branch on; Error carries the cause.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
