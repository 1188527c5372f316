package sqlite

// Profile is the profiles table row. Timestamps are RFC3339 text.
type Profile struct {
	ID           string
	Username     string
	FirstName    string
	LastName     string
	Role         string
	PasswordHash string
	CreatedAt    string
}

// TimeEntry is the time_entries table row. Date is YYYY-MM-DD and the times
// are HH:MM so that text ordering matches chronological ordering.
type TimeEntry struct {
	ID          string
	UserID      string
	Date        string
	StartTime   string
	EndTime     string
	Description string
	CreatedAt   string
}
