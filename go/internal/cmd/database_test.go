package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestNewPoolWarmsUpOnProcessContext(t *testing.T) {
	poolConfig, err := pgxpool.ParseConfig("postgres://dynasty@127.0.0.1:1/dynasty_trades")
	if err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}

	returned := make(chan struct{})
	seen := make(chan error, 1)
	poolConfig.MinConns = 1
	poolConfig.BeforeConnect = func(ctx context.Context, _ *pgx.ConnConfig) error {
		<-returned
		select {
		case seen <- ctx.Err():
		default:
		}
		return errors.New("no database in tests")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := newPool(ctx, poolConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer pool.Close()
	close(returned)

	select {
	case err := <-seen:
		if err != nil {
			t.Errorf("warm-up connection saw a cancelled context: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("pool never tried to open its minimum connections")
	}
}
