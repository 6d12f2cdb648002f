// Package attemptstore persists settled purchase attempts in PostgreSQL.
package attemptstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/adiboy-23/fun-pump/pkg/sale"
	"github.com/adiboy-23/fun-pump/pkg/trade"
)

type pgStore struct {
	db *bun.DB
}

var _ trade.Store = (*pgStore)(nil)

// NewStore creates a new postgres implementation of the attempt store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// SaveAttempt upserts a by ID.
func (s *pgStore) SaveAttempt(ctx context.Context, a *trade.Attempt) error {
	_, err := s.db.NewInsert().
		Model(toAttemptDao(a)).
		On("CONFLICT (id) DO UPDATE").
		Set("state = EXCLUDED.state").
		Set("sold_at = EXCLUDED.sold_at").
		Set("unit_cost = EXCLUDED.unit_cost").
		Set("total_cost = EXCLUDED.total_cost").
		Set("tx_hash = EXCLUDED.tx_hash").
		Set("account = EXCLUDED.account").
		Set("chain_id = EXCLUDED.chain_id").
		Set("error_code = EXCLUDED.error_code").
		Set("error_class = EXCLUDED.error_class").
		Set("error_message = EXCLUDED.error_message").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save attempt %s: %w", a.ID, err)
	}
	return nil
}

func (s *pgStore) GetAttempt(ctx context.Context, id string) (*trade.Attempt, error) {
	dao := new(AttemptDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trade.ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	return toAttempt(dao), nil
}

// ListAttempts returns the newest attempts for tokenID.
func (s *pgStore) ListAttempts(ctx context.Context, tokenID sale.TokenID, limit int) ([]*trade.Attempt, error) {
	var daos []AttemptDao
	q := s.db.NewSelect().
		Model(&daos).
		Where("token_id = ?", int64(tokenID)).
		OrderExpr("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	out := make([]*trade.Attempt, len(daos))
	for i := range daos {
		out[i] = toAttempt(&daos[i])
	}
	return out, nil
}
