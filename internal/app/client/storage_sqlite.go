package client

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteCache keeps credential metadata locally so `vault list --offline`
// works without the server. Secrets are never written here; the cache only
// mirrors what the list endpoint returns.
type SQLiteCache struct {
	db *sql.DB
}

func NewSQLiteCache(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	cache := &SQLiteCache{db: db}
	if err := cache.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache tables: %w", err)
	}

	return cache, nil
}

func (s *SQLiteCache) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS credentials (
			id TEXT PRIMARY KEY,
			service_name TEXT NOT NULL,
			username TEXT NOT NULL,
			category TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_credentials_service ON credentials(service_name);
	`)
	return err
}

// Replace swaps the whole cache for a fresh server listing. Partial updates
// are not worth it at this size and would let stale rows linger.
func (s *SQLiteCache) Replace(metas []CredentialMeta) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin cache update: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM credentials"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO credentials (id, service_name, username, category, created_at)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare cache insert: %w", err)
	}
	defer stmt.Close()

	for _, meta := range metas {
		if _, err := stmt.Exec(meta.ID, meta.ServiceName, meta.Username, meta.Category, meta.CreatedAt.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("insert cache row: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteCache) List() ([]CredentialMeta, error) {
	rows, err := s.db.Query(`
		SELECT id, service_name, username, category, created_at
		FROM credentials
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}
	defer rows.Close()

	var metas []CredentialMeta
	for rows.Next() {
		var meta CredentialMeta
		var createdAt string

		if err := rows.Scan(&meta.ID, &meta.ServiceName, &meta.Username, &meta.Category, &createdAt); err != nil {
			return nil, fmt.Errorf("scan cache row: %w", err)
		}

		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			meta.CreatedAt = t
		}

		metas = append(metas, meta)
	}

	return metas, rows.Err()
}

func (s *SQLiteCache) Close() error {
	return s.db.Close()
}
