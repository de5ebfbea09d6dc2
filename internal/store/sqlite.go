package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/joescharf/gedref/internal/models"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore implements Store using modernc.org/sqlite (pure Go, no CGO).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite only supports one concurrent writer. Limiting to a single connection
	// serializes all DB access through Go's connection pool, preventing
	// "database is locked" errors from concurrent HTTP requests.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for concurrent reads
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Set busy timeout so concurrent writes wait instead of failing immediately
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// boolToInt converts a bool to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// newULID generates a new ULID string.
func newULID() string {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(entropy, 0)).String()
}

// Migrate runs all embedded SQL migration files in order.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	// Create migrations tracking table
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		filename TEXT PRIMARY KEY,
		applied_at DATETIME NOT NULL DEFAULT (datetime('now'))
	)`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	// Sort by filename
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()

		// Check if already applied
		var count int
		err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations WHERE filename = ?", name).Scan(&count)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if count > 0 {
			continue
		}

		data, err := migrationsFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		if _, err := s.db.ExecContext(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}

		if _, err := s.db.ExecContext(ctx, "INSERT INTO schema_migrations (filename) VALUES (?)", name); err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// --- Trees ---

const treeColumns = `id, name, title, source_file, record_count, created_at, updated_at`

func scanTree(row interface{ Scan(...any) error }) (*models.Tree, error) {
	t := &models.Tree{}
	err := row.Scan(&t.ID, &t.Name, &t.Title, &t.SourceFile, &t.RecordCount, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (s *SQLiteStore) CreateTree(ctx context.Context, t *models.Tree) error {
	if t.ID == "" {
		t.ID = newULID()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO trees (`+treeColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Title, t.SourceFile, t.RecordCount, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create tree: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetTree(ctx context.Context, id string) (*models.Tree, error) {
	t, err := scanTree(s.db.QueryRowContext(ctx, `SELECT `+treeColumns+` FROM trees WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("tree %w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get tree: %w", err)
	}
	return t, nil
}

func (s *SQLiteStore) GetTreeByName(ctx context.Context, name string) (*models.Tree, error) {
	t, err := scanTree(s.db.QueryRowContext(ctx, `SELECT `+treeColumns+` FROM trees WHERE name = ?`, name))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("tree %w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("get tree by name: %w", err)
	}
	return t, nil
}

func (s *SQLiteStore) ListTrees(ctx context.Context) ([]*models.Tree, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+treeColumns+` FROM trees ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list trees: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var trees []*models.Tree
	for rows.Next() {
		t, err := scanTree(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tree: %w", err)
		}
		trees = append(trees, t)
	}
	return trees, rows.Err()
}

func (s *SQLiteStore) UpdateTree(ctx context.Context, t *models.Tree) error {
	t.UpdatedAt = time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`UPDATE trees SET name=?, title=?, source_file=?, record_count=?, updated_at=? WHERE id=?`,
		t.Name, t.Title, t.SourceFile, t.RecordCount, t.UpdatedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update tree: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("tree %w: %s", ErrNotFound, t.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteTree(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM trees WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete tree: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("tree %w: %s", ErrNotFound, id)
	}
	return nil
}

// --- Records ---

// ReplaceRecords swaps the tree's records for records in one transaction
// and updates the tree's record count.
func (s *SQLiteStore) ReplaceRecords(ctx context.Context, treeID string, records []models.TreeRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		"UPDATE trees SET record_count = ?, updated_at = ? WHERE id = ?",
		len(records), time.Now().UTC(), treeID)
	if err != nil {
		return fmt.Errorf("update tree: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("tree %w: %s", ErrNotFound, treeID)
	}

	if err := insertRecords(ctx, tx, treeID, records); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit records: %w", err)
	}
	return nil
}

// SaveImport stores an imported tree and its records in one transaction.
// A tree without an ID is created, otherwise it is updated. On error the
// database and t are left as they were.
func (s *SQLiteStore) SaveImport(ctx context.Context, t *models.Tree, records []models.TreeRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	id := t.ID
	created := id == ""
	if created {
		id = newULID()
		_, err := tx.ExecContext(ctx,
			`INSERT INTO trees (`+treeColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, t.Name, t.Title, t.SourceFile, len(records), now, now,
		)
		if err != nil {
			return fmt.Errorf("create tree: %w", err)
		}
	} else {
		result, err := tx.ExecContext(ctx,
			`UPDATE trees SET name=?, title=?, source_file=?, record_count=?, updated_at=? WHERE id=?`,
			t.Name, t.Title, t.SourceFile, len(records), now, id,
		)
		if err != nil {
			return fmt.Errorf("update tree: %w", err)
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return fmt.Errorf("tree %w: %s", ErrNotFound, id)
		}
	}

	if err := insertRecords(ctx, tx, id, records); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}

	t.ID = id
	if created {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	t.RecordCount = len(records)
	return nil
}

// insertRecords replaces the records of treeID inside tx.
func insertRecords(ctx context.Context, tx *sql.Tx, treeID string, records []models.TreeRecord) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM records WHERE tree_id = ?", treeID); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (tree_id, xref, type, has_source, media_type, uid) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, treeID, r.Xref, r.Type, boolToInt(r.HasSource), r.MediaType, r.UID); err != nil {
			return fmt.Errorf("insert record %s: %w", r.Xref, err)
		}
	}
	return nil
}

// Stats counts the tree's records by type.
func (s *SQLiteStore) Stats(ctx context.Context, treeID string) (*models.TreeStats, error) {
	if _, err := s.GetTree(ctx, treeID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT type, COUNT(*), SUM(has_source) FROM records WHERE tree_id = ? GROUP BY type`, treeID)
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	st := &models.TreeStats{TreeID: treeID}
	for rows.Next() {
		var typ string
		var count, withSource int
		if err := rows.Scan(&typ, &count, &withSource); err != nil {
			return nil, fmt.Errorf("scan counts: %w", err)
		}
		switch typ {
		case "INDI":
			st.Individuals, st.IndividualsWithSources = count, withSource
		case "FAM":
			st.Families, st.FamiliesWithSources = count, withSource
		case "SOUR":
			st.Sources = count
		case "REPO":
			st.Repositories = count
		case "NOTE":
			st.Notes = count
		case "OBJE":
			st.Media = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	st.MediaTypes, err = s.MediaTypeCounts(ctx, treeID, 0)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// MediaTypeCounts returns media object counts by type, most used first.
// A limit of 0 returns every type.
func (s *SQLiteStore) MediaTypeCounts(ctx context.Context, treeID string, limit int) ([]models.MediaTypeCount, error) {
	query := `SELECT media_type, COUNT(*) AS n FROM records WHERE tree_id = ? AND type = 'OBJE'
		GROUP BY media_type ORDER BY n DESC, media_type`
	args := []any{treeID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count media types: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var counts []models.MediaTypeCount
	for rows.Next() {
		var c models.MediaTypeCount
		if err := rows.Scan(&c.Type, &c.Count); err != nil {
			return nil, fmt.Errorf("scan media type: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
