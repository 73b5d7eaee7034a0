//go:build cgo

package graphstore

import (
	"context"
	"fmt"

	kuzu "github.com/kuzudb/go-kuzu"
)

var _ Store = (*KuzuStore)(nil)

// KuzuStore implements Store using an in-memory KuzuDB instance, scoped to
// the File/IMPORTS schema this package needs.
type KuzuStore struct {
	db   *kuzu.Database
	conn *kuzu.Connection
}

// NewKuzuStore opens an in-memory KuzuDB instance and its connection.
func NewKuzuStore() (*KuzuStore, error) {
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(":memory:", cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

var ddlStatements = []string{
	`CREATE NODE TABLE IF NOT EXISTS File(path STRING, PRIMARY KEY(path))`,
	`CREATE REL TABLE IF NOT EXISTS IMPORTS(FROM File TO File)`,
}

// InitSchema creates the File node table and IMPORTS relationship table.
func (s *KuzuStore) InitSchema(_ context.Context) error {
	for _, stmt := range ddlStatements {
		res, err := s.conn.Query(stmt)
		if err != nil {
			return fmt.Errorf("kuzu: init schema: %w", err)
		}
		res.Close()
	}
	return nil
}

// Replace clears existing File/IMPORTS rows and repopulates them. KuzuDB
// has no table TRUNCATE, so deletion goes through a detach-delete of every
// File node, which cascades to its relationships.
func (s *KuzuStore) Replace(_ context.Context, files []FileNode, edges []Edge) error {
	if err := s.exec("MATCH (f:File) DETACH DELETE f", nil); err != nil {
		return err
	}
	for _, f := range files {
		if err := s.exec("CREATE (f:File {path: $path})", map[string]any{"path": f.Path}); err != nil {
			return err
		}
	}
	for _, e := range edges {
		err := s.exec(
			`MATCH (a:File {path: $src}), (b:File {path: $dst}) CREATE (a)-[:IMPORTS]->(b)`,
			map[string]any{"src": e.SourcePath, "dst": e.TargetPath},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// AssessImpact runs a variable-length Cypher path query to find every file
// reachable by following IMPORTS edges backwards from the changed set,
// rather than re-implementing BFS in Go the way MemStore does.
func (s *KuzuStore) AssessImpact(_ context.Context, changedPaths []string) (*ImpactResult, error) {
	changed := make(map[string]bool, len(changedPaths))
	for _, p := range changedPaths {
		changed[p] = true
	}

	directSet := make(map[string]bool)
	for _, p := range changedPaths {
		rows, err := s.query(
			`MATCH (dependent:File)-[:IMPORTS]->(changed:File {path: $path}) RETURN dependent.path`,
			map[string]any{"path": p},
		)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			dep := toString(r[0])
			if !changed[dep] {
				directSet[dep] = true
			}
		}
	}

	transitiveSet := make(map[string]bool, len(directSet))
	for k := range directSet {
		transitiveSet[k] = true
	}
	for _, p := range changedPaths {
		rows, err := s.query(
			`MATCH (dependent:File)-[:IMPORTS*1..50]->(changed:File {path: $path}) RETURN DISTINCT dependent.path`,
			map[string]any{"path": p},
		)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			dep := toString(r[0])
			if !changed[dep] {
				transitiveSet[dep] = true
			}
		}
	}

	stats, err := s.Stats(context.Background())
	if err != nil {
		return nil, err
	}
	var risk float64
	if stats.FileCount > 0 {
		risk = float64(len(transitiveSet)) / float64(stats.FileCount)
	}

	return &ImpactResult{
		DirectlyAffected:     setToSlice(directSet),
		TransitivelyAffected: setToSlice(transitiveSet),
		RiskScore:            risk,
	}, nil
}

// Stats returns the current file and import-edge counts.
func (s *KuzuStore) Stats(_ context.Context) (*Stats, error) {
	files, err := s.countScalar("MATCH (f:File) RETURN count(f)")
	if err != nil {
		return nil, err
	}
	edges, err := s.countScalar("MATCH ()-[r:IMPORTS]->() RETURN count(r)")
	if err != nil {
		return nil, err
	}
	return &Stats{FileCount: files, EdgeCount: edges}, nil
}

// Close releases the KuzuDB connection and database.
func (s *KuzuStore) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

func (s *KuzuStore) exec(cypher string, params map[string]any) error {
	stmt, err := s.conn.Prepare(cypher)
	if err != nil {
		return fmt.Errorf("kuzu: prepare: %w", err)
	}
	defer stmt.Close()
	res, err := s.conn.Execute(stmt, params)
	if err != nil {
		return fmt.Errorf("kuzu: execute: %w", err)
	}
	res.Close()
	return nil
}

func (s *KuzuStore) query(cypher string, params map[string]any) ([][]any, error) {
	var res *kuzu.QueryResult
	var err error
	if len(params) == 0 {
		res, err = s.conn.Query(cypher)
	} else {
		var stmt *kuzu.PreparedStatement
		stmt, err = s.conn.Prepare(cypher)
		if err != nil {
			return nil, fmt.Errorf("kuzu: prepare: %w", err)
		}
		defer stmt.Close()
		res, err = s.conn.Execute(stmt, params)
	}
	if err != nil {
		return nil, fmt.Errorf("kuzu: query: %w", err)
	}
	defer res.Close()

	var rows [][]any
	for res.HasNext() {
		tuple, err := res.Next()
		if err != nil {
			return nil, fmt.Errorf("kuzu: next: %w", err)
		}
		vals, err := tuple.GetAsSlice()
		if err != nil {
			return nil, fmt.Errorf("kuzu: row values: %w", err)
		}
		rows = append(rows, vals)
	}
	return rows, nil
}

func (s *KuzuStore) countScalar(cypher string) (int, error) {
	rows, err := s.query(cypher, nil)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, nil
	}
	return toInt(rows[0][0]), nil
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func toInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case int32:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
