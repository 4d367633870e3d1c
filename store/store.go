// Package store snapshots an annotated ontology into SQLite so
// companion tooling can query it relationally instead of re-walking
// the JSON document.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/brunobiangulo/ontotag/ontology"
	"github.com/brunobiangulo/ontotag/taxonomy"
)

// Entity is a row in the entities table.
type Entity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"entity_type"`
}

// Relation is a row in the relations table, joined back to entity names.
type Relation struct {
	ID       int64  `json:"id"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Type     string `json:"relation_type"`
	Position int    `json:"position"`
}

// Store wraps the SQLite database holding one ontology snapshot.
type Store struct {
	db *sql.DB
}

// New opens (or creates) a SQLite database at the given path and
// initialises the snapshot schema.
func New(dbPath string) (*Store, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	// Connection pool settings for SQLite.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for advanced queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ImportGraph replaces any previous snapshot with the given graph in a
// single transaction. Entities are deduplicated by name; relations keep
// their document position. Importing the same graph twice leaves the
// same row set.
func (s *Store) ImportGraph(ctx context.Context, g ontology.Graph) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM relations`); err != nil {
		return fmt.Errorf("clearing relations: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM entities`); err != nil {
		return fmt.Errorf("clearing entities: %w", err)
	}

	ids := make(map[string]int64)
	insertEntity := func(e *ontology.Entity) (int64, error) {
		if id, ok := ids[e.Name]; ok {
			return id, nil
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO entities (name, entity_type) VALUES (?, ?)`,
			e.Name, string(e.Type))
		if err != nil {
			return 0, fmt.Errorf("inserting entity %q: %w", e.Name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		ids[e.Name] = id
		return id, nil
	}

	for i := range g {
		srcID, err := insertEntity(&g[i].Source)
		if err != nil {
			return err
		}
		tgtID, err := insertEntity(&g[i].Target)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO relations (source_entity_id, target_entity_id, relation_type, position)
			VALUES (?, ?, ?, ?)
		`, srcID, tgtID, g[i].Label(), i); err != nil {
			return fmt.Errorf("inserting relation %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

// TypeCounts returns how many distinct entities carry each label.
func (s *Store) TypeCounts(ctx context.Context) (map[taxonomy.Label]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT entity_type, COUNT(*) FROM entities GROUP BY entity_type`)
	if err != nil {
		return nil, fmt.Errorf("counting entity types: %w", err)
	}
	defer rows.Close()

	counts := make(map[taxonomy.Label]int)
	for rows.Next() {
		var label string
		var n int
		if err := rows.Scan(&label, &n); err != nil {
			return nil, err
		}
		counts[taxonomy.Label(label)] = n
	}
	return counts, rows.Err()
}

// EntitiesByType returns every entity carrying the given label, sorted
// by name.
func (s *Store) EntitiesByType(ctx context.Context, label taxonomy.Label) ([]Entity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, entity_type FROM entities
		WHERE entity_type = ? ORDER BY name
	`, string(label))
	if err != nil {
		return nil, fmt.Errorf("querying entities: %w", err)
	}
	defer rows.Close()

	var entities []Entity
	for rows.Next() {
		var e Entity
		if err := rows.Scan(&e.ID, &e.Name, &e.Type); err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, rows.Err()
}

// RelationsFor returns every relation touching the named entity as
// source or target, in document order.
func (s *Store) RelationsFor(ctx context.Context, name string) ([]Relation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, src.name, tgt.name, r.relation_type, r.position
		FROM relations r
		JOIN entities src ON src.id = r.source_entity_id
		JOIN entities tgt ON tgt.id = r.target_entity_id
		WHERE src.name = ? OR tgt.name = ?
		ORDER BY r.position
	`, name, name)
	if err != nil {
		return nil, fmt.Errorf("querying relations: %w", err)
	}
	defer rows.Close()

	var relations []Relation
	for rows.Next() {
		var r Relation
		if err := rows.Scan(&r.ID, &r.Source, &r.Target, &r.Type, &r.Position); err != nil {
			return nil, err
		}
		relations = append(relations, r)
	}
	return relations, rows.Err()
}
