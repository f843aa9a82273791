package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kursusapp/kursus/internal/model"
	"github.com/kursusapp/kursus/internal/storage"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// DB is the subset of pgxpool.Pool the storage uses.
// pgxmock satisfies it for tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Storage is a PostgreSQL-backed implementation of the storage interface
type Storage struct {
	db   DB
	pool *pgxpool.Pool
}

// New connects to PostgreSQL, runs schema migrations and returns the storage
func New(ctx context.Context, dsn string) (*Storage, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := RunMigrations(ctx, dsn); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Storage{db: pool, pool: pool}, nil
}

// NewWithDB creates a storage over an existing connection (for testing)
func NewWithDB(db DB) *Storage {
	return &Storage{db: db}
}

// Close closes the connection pool
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

// User operations

// SaveUser inserts a new user. Users are created once and never updated.
func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (username, password, created_at)
			  VALUES ($1, $2, $3) RETURNING id`

	err := s.db.QueryRow(ctx, query, user.Username, user.Password, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrUsernameExists
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, username, password, created_at FROM users WHERE id = $1`

	err := s.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, username, password, created_at FROM users WHERE username = $1`

	err := s.db.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (s *Storage) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// Course operations

const courseColumns = `id, name, email, phone_number, registration_date, gender, subject, created_at, updated_at`

func scanCourse(row pgx.Row) (*model.Course, error) {
	course := &model.Course{}
	err := row.Scan(
		&course.ID, &course.Name, &course.Email, &course.PhoneNumber,
		&course.RegistrationDate, &course.Gender, &course.Subject,
		&course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

func (s *Storage) CreateCourse(ctx context.Context, course *model.Course) error {
	query := `INSERT INTO courses (name, email, phone_number, registration_date, gender, subject, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	err := s.db.QueryRow(ctx, query,
		course.Name, course.Email, course.PhoneNumber, course.RegistrationDate,
		course.Gender, course.Subject, course.CreatedAt, course.UpdatedAt,
	).Scan(&course.ID)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (s *Storage) GetCourse(ctx context.Context, id model.CourseID) (*model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

func (s *Storage) UpdateCourse(ctx context.Context, course *model.Course) error {
	query := `UPDATE courses
			  SET name = $2, email = $3, phone_number = $4, registration_date = $5,
			      gender = $6, subject = $7, updated_at = $8
			  WHERE id = $1`

	tag, err := s.db.Exec(ctx, query,
		course.ID, course.Name, course.Email, course.PhoneNumber,
		course.RegistrationDate, course.Gender, course.Subject, course.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCourseNotFound
	}
	return nil
}

func (s *Storage) DeleteCourse(ctx context.Context, id model.CourseID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCourseNotFound
	}
	return nil
}

func (s *Storage) ListCourses(ctx context.Context) ([]*model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	return collectCourses(rows)
}

// likeEscaper neutralises LIKE metacharacters so search terms match literally,
// like the in-memory store does.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *Storage) SearchCoursesByName(ctx context.Context, term string) ([]*model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE name ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY id`

	rows, err := s.db.Query(ctx, query, likeEscaper.Replace(term))
	if err != nil {
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}
	defer rows.Close()

	return collectCourses(rows)
}

func collectCourses(rows pgx.Rows) ([]*model.Course, error) {
	courses := make([]*model.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read courses: %w", err)
	}
	return courses, nil
}
