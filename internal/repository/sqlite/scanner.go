package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...any) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

const timeEntryColumns = "id, user_id, date, start_time, end_time, description, created_at"

// ScanTimeEntry scans a single time entry selected with timeEntryColumns
func ScanTimeEntry(scanner Scanner) (*TimeEntry, error) {
	entry := &TimeEntry{}
	err := scanner.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Date,
		&entry.StartTime,
		&entry.EndTime,
		&entry.Description,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ScanTimeEntries scans multiple time entries from database rows
func ScanTimeEntries(rows Rows) ([]*TimeEntry, error) {
	return scanAll(rows, ScanTimeEntry)
}

const profileColumns = "id, username, first_name, last_name, role, password_hash, created_at"

// ScanProfile scans a single profile selected with profileColumns
func ScanProfile(scanner Scanner) (*Profile, error) {
	p := &Profile{}
	err := scanner.Scan(
		&p.ID,
		&p.Username,
		&p.FirstName,
		&p.LastName,
		&p.Role,
		&p.PasswordHash,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ScanProfiles scans multiple profiles from database rows
func ScanProfiles(rows Rows) ([]*Profile, error) {
	return scanAll(rows, ScanProfile)
}

func scanAll[T any](rows Rows, scan func(Scanner) (*T, error)) ([]*T, error) {
	var out []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
