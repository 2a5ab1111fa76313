package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"mcq-trainer/internal/bank"
	"mcq-trainer/internal/domain"
)

// BankLoader loads a question-bank feed stored as JSONB in Postgres and
// runs it through the normalizer, so a hand-edited row cannot produce a
// malformed bank.
type BankLoader struct {
	pool *pgxpool.Pool
}

func NewBankLoader(pool *pgxpool.Pool) *BankLoader {
	return &BankLoader{pool: pool}
}

func (l *BankLoader) LoadBank(ctx context.Context, bankID string) ([]domain.Question, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM question_banks WHERE id=$1`, bankID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBankNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	var feed any
	if err := json.Unmarshal(raw, &feed); err != nil {
		return nil, fmt.Errorf("unmarshal bank: %w", err)
	}
	return bank.NormalizeFeed(feed), nil
}
