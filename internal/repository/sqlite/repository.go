package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"workhours/internal/domain"
	"workhours/internal/errors"
	"workhours/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Options tunes a Store. Zero values fall back to defaults.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
	Now          func() time.Time
	NewID        func() string
}

func (o Options) withDefaults() Options {
	if o.QueryTimeout <= 0 {
		o.QueryTimeout = 10 * time.Second
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = 5 * time.Second
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	return o
}

// Store implements domain.Store on SQLite.
type Store struct {
	db      *sql.DB
	opts    Options
	entries TimeEntryMapper
	users   ProfileMapper
}

var _ domain.Store = (*Store)(nil)

// Open opens (creating if needed) the database at dbPath and applies pending
// migrations. ":memory:" gives a private in-memory database.
func Open(ctx context.Context, dbPath string, opts Options) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// One connection: SQLite serialises writers anyway and an in-memory
	// database only exists on the connection that created it.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON", "PRAGMA busy_timeout=5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, errors.NewDatabaseError("configure database", err)
		}
	}

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &Store{db: db, opts: opts.withDefaults()}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()
	if err := s.db.PingContext(ctx); err != nil {
		return HandleDatabaseError("ping", err)
	}
	return nil
}

// CreateEntry stores a new entry for ownerID.
func (s *Store) CreateEntry(ctx context.Context, ownerID string, entry domain.NewEntry) (*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.WriteTimeout)
	defer cancel()

	created := entry.Materialize(s.opts.NewID(), ownerID, s.opts.Now())
	row := s.entries.ToDatabase(created)

	query := `
	INSERT INTO time_entries (id, user_id, date, start_time, end_time, description, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	err := ExecuteInsert(ctx, s.db, query, "time entry", row.ID,
		row.ID, row.UserID, row.Date, row.StartTime, row.EndTime, row.Description, row.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListEntries returns ownerID's entries, newest date first, later starts first.
func (s *Store) ListEntries(ctx context.Context, ownerID string) ([]domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	query := `
	SELECT ` + timeEntryColumns + `
	FROM time_entries
	WHERE user_id = ?
	ORDER BY date DESC, start_time DESC, created_at DESC`

	rows, err := QueryMultiple(ctx, s.db, query, ScanTimeEntries, "time entries", ownerID)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.FromDatabaseSlice(rows)
	if err != nil {
		return nil, HandleDatabaseError("decode time entries", err)
	}
	return entries, nil
}

// CreateProfile stores p, assigning its ID and creation time when unset.
func (s *Store) CreateProfile(ctx context.Context, p *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.WriteTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = s.opts.NewID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.opts.Now()
	}
	if p.Role == "" {
		p.Role = domain.RoleUser
	}
	row := s.users.ToDatabase(*p)

	query := `
	INSERT INTO profiles (id, username, first_name, last_name, role, password_hash, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	return ExecuteInsert(ctx, s.db, query, "profile", p.Username,
		row.ID, row.Username, row.FirstName, row.LastName, row.Role, row.PasswordHash, row.CreatedAt)
}

// GetProfile retrieves a profile by ID
func (s *Store) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ?`
	return s.getProfile(ctx, query, id)
}

// GetProfileByUsername retrieves a profile by its unique username
func (s *Store) GetProfileByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = ?`
	return s.getProfile(ctx, query, username)
}

func (s *Store) getProfile(ctx context.Context, query string, key string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	row, err := QuerySingle(ctx, s.db, query, ScanProfile, "profile", key, key)
	if err != nil {
		return nil, err
	}
	p, err := s.users.FromDatabase(*row)
	if err != nil {
		return nil, HandleDatabaseError("decode profile", err)
	}
	return &p, nil
}

// ListProfiles returns every profile, newest first.
func (s *Store) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC, username ASC`
	rows, err := QueryMultiple(ctx, s.db, query, ScanProfiles, "profiles")
	if err != nil {
		return nil, err
	}
	profiles, err := s.users.FromDatabaseSlice(rows)
	if err != nil {
		return nil, HandleDatabaseError("decode profiles", err)
	}
	return profiles, nil
}
