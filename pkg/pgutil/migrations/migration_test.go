package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/adiboy-23/fun-pump/pkg/config"
	"github.com/adiboy-23/fun-pump/pkg/pgutil"
)

type testDao struct {
	bun.BaseModel `bun:"table:test_table"`
	ID            int64  `bun:",pk,autoincrement"`
	Name          string `bun:",notnull,type:varchar(100)"`
	Age           int    `bun:",nullzero"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	db, err := pgutil.ConnectDB(context.Background(), cfg)
	if err == nil {
		_ = db.Close()
		t.Error("ConnectDB() should fail with invalid host")
	}
}

// newDialectDB returns a bun.DB that never connects, for building queries only.
func newDialectDB() *bun.DB {
	return bun.NewDB(sql.OpenDB(pgdriver.NewConnector()), pgdialect.New())
}

func TestModelIndexName(t *testing.T) {
	tests := []struct {
		column string
		want   string
	}{
		{"name", "idx_test_table_name"},
		{"name, age", "idx_test_table_name_age"},
	}
	for _, tt := range tests {
		got, err := modelIndexName(newDialectDB(), &testDao{}, tt.column)
		if err != nil {
			t.Fatalf("modelIndexName(%q) failed: %v", tt.column, err)
		}
		if got != tt.want {
			t.Errorf("modelIndexName(%q) = %q, want %q", tt.column, got, tt.want)
		}
	}

	if _, err := modelIndexName(newDialectDB(), nil, "name"); err == nil {
		t.Error("expected error for nil model")
	}
}

func TestCreateSchemaAndDropTables(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "test_table")

	// idempotent
	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Errorf("CreateSchema() second call failed: %v", err)
	}

	if err := CreateModelIndexes(ctx, db, &testDao{}, "name", "name, age"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_test_table_name")
	pgutil.AssertIndexExists(t, db, "idx_test_table_name_age")

	if err := DropTables(ctx, db, &testDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "test_table")

	if err := DropTables(ctx, db, &testDao{}); err != nil {
		t.Errorf("DropTables() second call failed: %v", err)
	}
}

func TestRunMigrations(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	ms := migrate.NewMigrations()
	ms.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return CreateSchema(ctx, db, &testDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		return DropTables(ctx, db, &testDao{})
	})
	migrator := migrate.NewMigrator(db, ms)
	logger := zap.NewNop()

	if err := RunMigrations(ctx, migrator, logger); err == nil {
		t.Error("expected error without a command")
	}
	if err := RunMigrations(ctx, migrator, logger, "sideways"); err == nil {
		t.Error("expected error for unknown command")
	}

	for _, cmd := range []string{"init", "up", "status"} {
		if err := RunMigrations(ctx, migrator, logger, cmd); err != nil {
			t.Fatalf("%s failed: %v", cmd, err)
		}
	}
	pgutil.AssertTableExists(t, db, "test_table")

	if err := RunMigrations(ctx, migrator, logger, "down"); err != nil {
		t.Fatalf("down failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "test_table")
}
