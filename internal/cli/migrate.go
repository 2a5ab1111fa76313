package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"mcq-trainer/internal/bank"
	"mcq-trainer/internal/config"
	pgmigrations "mcq-trainer/internal/infra/postgres/migrations"
)

// NewMigrateCmd applies database migrations for the Postgres bank source
// and optionally seeds a bank from a JSON feed file.
func NewMigrateCmd(configPath *string) *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return runMigrations(cmd.Context(), cfg, seedPath)
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "JSON bank feed to upsert after migrating")
	return cmd
}

func runMigrations(ctx context.Context, cfg config.Config, seedPath string) error {
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)

	if err := migrator.Init(ctx); err != nil {
		return err
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		return err
	}
	log.Printf("migrations applied")

	if seedPath == "" {
		return nil
	}
	return seedBank(ctx, db, cfg.BankID(), seedPath)
}

// seedBank normalizes a feed file and upserts it as the configured bank.
func seedBank(ctx context.Context, db *bun.DB, bankID, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	questions := bank.NormalizeFeed(raw)
	feed, err := json.Marshal(map[string]any{"questions": questions})
	if err != nil {
		return fmt.Errorf("marshal feed: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO question_banks (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data, updated_at=now()`,
		bankID, string(feed)); err != nil {
		return fmt.Errorf("seed bank: %w", err)
	}
	log.Printf("seeded bank %q with %d questions", bankID, len(questions))
	return nil
}
