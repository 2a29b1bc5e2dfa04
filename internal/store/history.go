package store

import (
	"context"
	"fmt"
)

// Computation is one recorded CLI computation.
type Computation struct {
	ID         string `json:"id"`
	Seq        int64  `json:"seq"`
	Operation  string `json:"operation"`
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Policy     string `json:"policy"`
}

// WriteComputation appends a computation to the history. The seq is
// assigned inside the insert from the current maximum, so concurrent
// writers (serialized by SQLite's single-writer mode) never collide.
func (s *Store) WriteComputation(ctx context.Context, c Computation) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO computations (id, seq, operation, expression, result, policy)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM computations), ?, ?, ?, ?)
	`,
		c.ID,
		c.Operation,
		c.Expression,
		c.Result,
		c.Policy,
	)
	if err != nil {
		return fmt.Errorf("write computation: %w", err)
	}
	return nil
}

// ListComputations returns up to limit computations in logical order.
// Deterministic ordering: ORDER BY seq ASC, id ASC. A limit of zero or
// less returns everything.
func (s *Store) ListComputations(ctx context.Context, limit int) ([]Computation, error) {
	query := `
		SELECT id, seq, operation, expression, result, policy
		FROM computations
		ORDER BY seq ASC, id ASC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list computations: %w", err)
	}
	defer rows.Close()

	var out []Computation
	for rows.Next() {
		var c Computation
		if err := rows.Scan(&c.ID, &c.Seq, &c.Operation, &c.Expression, &c.Result, &c.Policy); err != nil {
			return nil, fmt.Errorf("scan computation: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list computations: %w", err)
	}
	return out, nil
}
