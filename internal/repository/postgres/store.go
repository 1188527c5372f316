package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"workhours/internal/domain"
	apperrors "workhours/internal/errors"
)

const uniqueViolation = "23505"

// Options tunes a Store. Zero values fall back to defaults.
type Options struct {
	MaxConns     int32
	QueryTimeout time.Duration
	WriteTimeout time.Duration
	Now          func() time.Time
}

// Store implements domain.Store on PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
	opts Options
}

var _ domain.Store = (*Store)(nil)

// Open migrates the schema and connects a pool.
func Open(ctx context.Context, dsn string, opts Options) (*Store, error) {
	if err := Migrate(dsn); err != nil {
		return nil, apperrors.NewDatabaseError("run migrations", err)
	}
	pool, err := NewPool(ctx, dsn, opts.MaxConns)
	if err != nil {
		return nil, apperrors.NewDatabaseError("connect", err)
	}
	return New(pool, opts), nil
}

// New wraps an existing pool. The schema must already be migrated.
func New(pool *pgxpool.Pool, opts Options) *Store {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 10 * time.Second
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 5 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{pool: pool, opts: opts}
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()
	if err := s.pool.Ping(ctx); err != nil {
		return mapError("ping", err)
	}
	return nil
}

func (s *Store) CreateEntry(ctx context.Context, ownerID string, entry domain.NewEntry) (*domain.TimeEntry, error) {
	if uuid.Validate(ownerID) != nil {
		return nil, apperrors.NewNotFoundError("profile", ownerID)
	}
	ctx, cancel := context.WithTimeout(ctx, s.opts.WriteTimeout)
	defer cancel()

	created := entry.Materialize(uuid.NewString(), ownerID, s.opts.Now().UTC().Truncate(time.Microsecond))
	_, err := s.pool.Exec(ctx, `
		INSERT INTO time_entries (id, user_id, date, start_time, end_time, description, created_at)
		VALUES ($1, $2, $3::text::date, $4::text::time, $5::text::time, $6, $7)`,
		created.ID, created.OwnerID, created.Date.String(), created.StartTime.String(), created.EndTime.String(),
		created.Description, created.CreatedAt)
	if err != nil {
		return nil, mapError("insert time entry", err)
	}
	return &created, nil
}

func (s *Store) ListEntries(ctx context.Context, ownerID string) ([]domain.TimeEntry, error) {
	if uuid.Validate(ownerID) != nil {
		return []domain.TimeEntry{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
		SELECT id::text, user_id::text, to_char(date, 'YYYY-MM-DD'), to_char(start_time, 'HH24:MI'),
		       to_char(end_time, 'HH24:MI'), description, created_at
		FROM time_entries
		WHERE user_id = $1
		ORDER BY date DESC, start_time DESC, created_at DESC`, ownerID)
	if err != nil {
		return nil, mapError("query time entries", err)
	}
	defer rows.Close()

	entries := []domain.TimeEntry{}
	for rows.Next() {
		var e domain.TimeEntry
		var date, start, end string
		if err := rows.Scan(&e.ID, &e.OwnerID, &date, &start, &end, &e.Description, &e.CreatedAt); err != nil {
			return nil, mapError("scan time entry", err)
		}
		if e.Date, err = domain.ParseDate(date); err != nil {
			return nil, mapError("decode time entry", err)
		}
		if e.StartTime, err = domain.ParseTimeOfDay(start); err != nil {
			return nil, mapError("decode time entry", err)
		}
		if e.EndTime, err = domain.ParseTimeOfDay(end); err != nil {
			return nil, mapError("decode time entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("query time entries", err)
	}
	return entries, nil
}

func (s *Store) CreateProfile(ctx context.Context, p *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.WriteTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.opts.Now().UTC().Truncate(time.Microsecond)
	}
	if p.Role == "" {
		p.Role = domain.RoleUser
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO profiles (id, username, first_name, last_name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Username, p.FirstName, p.LastName, string(p.Role), p.PasswordHash, p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.NewConflictError("profile", p.Username)
		}
		return mapError("insert profile", err)
	}
	return nil
}

const profileSelect = `
	SELECT id::text, username, first_name, last_name, role, password_hash, created_at
	FROM profiles`

func (s *Store) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	if uuid.Validate(id) != nil {
		return nil, apperrors.NewNotFoundError("profile", id)
	}
	return s.getProfile(ctx, profileSelect+` WHERE id = $1`, id)
}

func (s *Store) GetProfileByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	return s.getProfile(ctx, profileSelect+` WHERE username = $1`, username)
}

func (s *Store) getProfile(ctx context.Context, query, key string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	p, err := scanProfile(s.pool.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("profile", key)
		}
		return nil, mapError("get profile", err)
	}
	return p, nil
}

func (s *Store) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, profileSelect+` ORDER BY created_at DESC, username ASC`)
	if err != nil {
		return nil, mapError("query profiles", err)
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, mapError("scan profile", err)
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("query profiles", err)
	}
	return profiles, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	var role string
	if err := row.Scan(&p.ID, &p.Username, &p.FirstName, &p.LastName, &role, &p.PasswordHash, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Role = domain.Role(role)
	return &p, nil
}

func mapError(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewTimeoutError(operation, err.Error())
	}
	return apperrors.NewDatabaseError(operation, err)
}
