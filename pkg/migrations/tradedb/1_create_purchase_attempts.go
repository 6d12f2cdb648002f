package tradedb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/adiboy-23/fun-pump/pkg/attemptstore"
	mghelper "github.com/adiboy-23/fun-pump/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.CreateSchema(ctx, db, &attemptstore.AttemptDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &attemptstore.AttemptDao{}, "token_id, created_at", "tx_hash")
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &attemptstore.AttemptDao{})
	})
}
