package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"mcq-trainer/internal/app"
	"mcq-trainer/internal/bank"
	"mcq-trainer/internal/config"
	"mcq-trainer/internal/infra/file"
	"mcq-trainer/internal/infra/memory"
	"mcq-trainer/internal/infra/postgres"
	redisstore "mcq-trainer/internal/infra/redis"
	"mcq-trainer/internal/infra/sqlite"
)

// buildService assembles the trainer from config: a persistence backend
// (file by default, sqlite or redis when configured), a bank source
// (Postgres when configured, else a JSON file, else the built-in sample
// bank), and a TTL cache in front of the bank. The returned cleanup
// closes whatever connections were opened.
func buildService(ctx context.Context, cfg config.Config) (*app.TrainerService, func(), error) {
	cleanups := []func(){}
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	var repo app.ResultsRepository
	switch cfg.Storage.Backend {
	case "redis":
		if cfg.Redis.Addr == "" {
			return nil, nil, fmt.Errorf("storage backend is redis but redis.addr is not configured")
		}
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cleanups = append(cleanups, func() { _ = client.Close() })
		repo = redisstore.NewStore(client, config.TTLDuration(cfg.Redis.TTL, 0))
	case "sqlite":
		if err := os.MkdirAll(cfg.StateDir(), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create state dir: %w", err)
		}
		store, err := sqlite.NewStore(filepath.Join(cfg.StateDir(), "trainer.db"))
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		cleanups = append(cleanups, func() { _ = store.Close() })
		repo = store
	default:
		store, err := file.NewStore(cfg.StateDir())
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		repo = store
	}

	var loader bank.Loader
	switch {
	case cfg.Postgres.URL != "":
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		cleanups = append(cleanups, pool.Close)
		loader = postgres.NewBankLoader(pool)
	case cfg.Bank.Path != "":
		loader = bank.NewFileLoader(cfg.Bank.Path)
	default:
		loader = bank.NewStaticLoader(sampleBanks(cfg.BankID()))
	}

	bankTTL := config.TTLDuration(cfg.Bank.TTL, 10*time.Minute)
	cached := memory.NewBankCache(loader, bankTTL)

	return app.NewTrainerService(repo, cached, cfg.BankID()), cleanup, nil
}
