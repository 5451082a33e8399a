package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/nicknexus/impact/internal/contract"
	"github.com/nicknexus/impact/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

// Store is a database-backed snapshot provider. Metrics keep their import
// order in a position column so color assignment stays stable across
// loads.
type Store struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
	connStr    string
}

var _ contract.SnapshotProvider = (*Store)(nil)

// NewStore opens a store connection for the given backend. NoneBackend
// yields a disconnected no-op store.
func NewStore(backend schema.DatabaseBackend, connStr string) (*Store, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetStoreDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=secret dbname=impact
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		return &Store{backend: backend, connStr: connStr}, nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	return &Store{
		db:         db,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// placeholder returns the parameter placeholder for position n (1-based).
func (s *Store) placeholder(n int) string {
	if s.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Import replaces the store contents with the given snapshot inside a
// single transaction.
func (s *Store) Import(ctx context.Context, snap schema.Snapshot) error {
	if s.backend == schema.NoneBackend || s.db == nil {
		return fmt.Errorf("cannot import into the none backend")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM data_points"); err != nil {
		return fmt.Errorf("failed to clear data points: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM metrics"); err != nil {
		return fmt.Errorf("failed to clear metrics: %w", err)
	}

	metricQuery := fmt.Sprintf(
		"INSERT INTO metrics (id, title, unit, category, position) VALUES (%s, %s, %s, %s, %s)",
		s.placeholder(1), s.placeholder(2), s.placeholder(3), s.placeholder(4), s.placeholder(5))
	for i, m := range snap.Metrics {
		if _, err := tx.ExecContext(ctx, metricQuery, m.ID, m.Title, m.Unit, m.Category, i); err != nil {
			return fmt.Errorf("failed to insert metric %q: %w", m.ID, err)
		}
	}

	pointQuery := fmt.Sprintf(
		"INSERT INTO data_points (id, metric_id, value, represented_date, range_start, range_end, location) VALUES (%s, %s, %s, %s, %s, %s, %s)",
		s.placeholder(1), s.placeholder(2), s.placeholder(3), s.placeholder(4), s.placeholder(5), s.placeholder(6), s.placeholder(7))
	for _, p := range snap.DataPoints {
		if _, err := tx.ExecContext(ctx, pointQuery,
			p.ID, p.MetricID, p.Value,
			dayString(p.Date), dayString(p.RangeStart), dayString(p.RangeEnd),
			p.Location); err != nil {
			return fmt.Errorf("failed to insert data point %q: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// Load reads the full snapshot back out of the store. Metrics come back
// in their original import order.
func (s *Store) Load(ctx context.Context) (schema.Snapshot, error) {
	if s.backend == schema.NoneBackend || s.db == nil {
		return schema.Snapshot{}, fmt.Errorf("no snapshot store configured (backend is none)")
	}

	var snap schema.Snapshot

	rows, err := s.db.QueryContext(ctx, "SELECT id, title, unit, category FROM metrics ORDER BY position")
	if err != nil {
		return snap, fmt.Errorf("failed to load metrics: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var m schema.Metric
		if err := rows.Scan(&m.ID, &m.Title, &m.Unit, &m.Category); err != nil {
			return snap, fmt.Errorf("failed to scan metric: %w", err)
		}
		snap.Metrics = append(snap.Metrics, m)
	}
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("failed to iterate metrics: %w", err)
	}

	pointRows, err := s.db.QueryContext(ctx, "SELECT id, metric_id, value, represented_date, range_start, range_end, location FROM data_points")
	if err != nil {
		return snap, fmt.Errorf("failed to load data points: %w", err)
	}
	defer func() { _ = pointRows.Close() }()
	for pointRows.Next() {
		var p schema.DataPoint
		var date, rangeStart, rangeEnd sql.NullString
		if err := pointRows.Scan(&p.ID, &p.MetricID, &p.Value, &date, &rangeStart, &rangeEnd, &p.Location); err != nil {
			return snap, fmt.Errorf("failed to scan data point: %w", err)
		}
		if p.Date, err = dayPointer(date); err != nil {
			return snap, fmt.Errorf("data point %q: %w", p.ID, err)
		}
		if p.RangeStart, err = dayPointer(rangeStart); err != nil {
			return snap, fmt.Errorf("data point %q: %w", p.ID, err)
		}
		if p.RangeEnd, err = dayPointer(rangeEnd); err != nil {
			return snap, fmt.Errorf("data point %q: %w", p.ID, err)
		}
		snap.DataPoints = append(snap.DataPoints, p)
	}
	if err := pointRows.Err(); err != nil {
		return snap, fmt.Errorf("failed to iterate data points: %w", err)
	}

	return snap, nil
}

// Status returns counts and connectivity information about the store.
func (s *Store) Status(ctx context.Context) (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(s.backend),
		Connected: s.db != nil,
	}
	if s.backend == schema.NoneBackend || s.db == nil {
		return status, nil
	}

	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM metrics")
	if err := row.Scan(&status.MetricCount); err != nil {
		return status, fmt.Errorf("failed to count metrics: %w", err)
	}
	row = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM data_points")
	if err := row.Scan(&status.DataPointCount); err != nil {
		return status, fmt.Errorf("failed to count data points: %w", err)
	}
	return status, nil
}

// Close closes the underlying DB connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// dayString renders an optional day as its storage form ("" for absent).
func dayString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(schema.DayFormat)
}

// dayPointer parses an optional stored day back into a *time.Time.
func dayPointer(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := contract.ParseDay(s.String)
	if err != nil {
		return nil, fmt.Errorf("invalid stored day %q: %w", s.String, err)
	}
	return &t, nil
}
