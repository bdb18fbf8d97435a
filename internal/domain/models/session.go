package models

// Profile holds the session-scoped user and unit context captured at login.
// It is display data plus the source of the employee name stamped on IN
// movements; it is never persisted.
type Profile struct {
	UserName string `json:"user_name"`
	UnitName string `json:"unit_name"`
	City     string `json:"city"`
}
