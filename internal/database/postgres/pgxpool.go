package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"job-scout/internal/config"
	"job-scout/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Pool adapts a pgxpool.Pool to the database.DB interface and keeps a
// database/sql handle over the same pool for the migration runner.
type Pool struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	pcfg, err := pgxpool.ParseConfig(buildDSN(cfg))
	if err != nil {
		return nil, err
	}
	applyPoolConfig(pcfg, cfg)

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Pool{pool: pool, sqlDB: stdlib.OpenDBFromPool(pool)}, nil
}

func buildDSN(cfg config.DatabaseConfig) string {
	parts := []string{
		"host=" + strings.TrimSpace(cfg.DBHost),
		"port=" + strings.TrimSpace(cfg.DBPort),
		"user=" + strings.TrimSpace(cfg.DBUser),
		"password=" + cfg.DBPassword,
		"dbname=" + strings.TrimSpace(cfg.DBName),
	}
	if mode := strings.TrimSpace(cfg.DBSSLMode); mode != "" {
		parts = append(parts, "sslmode="+mode)
	}
	return strings.Join(parts, " ")
}

func applyPoolConfig(pcfg *pgxpool.Config, cfg config.DatabaseConfig) {
	if cfg.ConnectTimeout > 0 {
		pcfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	if cfg.PoolMaxConns > 0 {
		pcfg.MaxConns = cfg.PoolMaxConns
	}
	if cfg.PoolMinConns > 0 {
		pcfg.MinConns = cfg.PoolMinConns
	}
	if cfg.PoolMaxConnLifetime > 0 {
		pcfg.MaxConnLifetime = cfg.PoolMaxConnLifetime
	}
	if cfg.PoolMaxConnIdleTime > 0 {
		pcfg.MaxConnIdleTime = cfg.PoolMaxConnIdleTime
	}
	if cfg.PoolHealthCheckPeriod > 0 {
		pcfg.HealthCheckPeriod = cfg.PoolHealthCheckPeriod
	}
}

var errNilPool = fmt.Errorf("nil db")

func (p *Pool) Ping(ctx context.Context) error {
	if p == nil || p.pool == nil {
		return errNilPool
	}
	return p.pool.Ping(ctx)
}

func (p *Pool) Close() error {
	if p == nil {
		return nil
	}
	if p.sqlDB != nil {
		_ = p.sqlDB.Close()
	}
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Pool) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if p == nil || p.pool == nil {
		return 0, errNilPool
	}
	tag, err := p.pool.Exec(ctx, query, args...)
	return tag.RowsAffected(), err
}

func (p *Pool) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	if p == nil || p.pool == nil {
		return nil, errNilPool
	}
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return poolRows{rows}, nil
}

func (p *Pool) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	if p == nil || p.pool == nil {
		return errRow{}
	}
	return p.pool.QueryRow(ctx, query, args...)
}

func (p *Pool) Begin(ctx context.Context) (database.Tx, error) {
	if p == nil || p.pool == nil {
		return nil, errNilPool
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return poolTx{tx}, nil
}

func (p *Pool) SQLDB() *sql.DB {
	if p == nil {
		return nil
	}
	return p.sqlDB
}

type poolTx struct {
	tx pgx.Tx
}

func (t poolTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	tag, err := t.tx.Exec(ctx, query, args...)
	return tag.RowsAffected(), err
}

func (t poolTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	rows, err := t.tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return poolRows{rows}, nil
}

func (t poolTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.tx.QueryRow(ctx, query, args...)
}

func (t poolTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t poolTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

type poolRows struct {
	rows pgx.Rows
}

func (r poolRows) Close()                 { r.rows.Close() }
func (r poolRows) Next() bool             { return r.rows.Next() }
func (r poolRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r poolRows) Err() error             { return r.rows.Err() }

type errRow struct{}

func (errRow) Scan(...any) error { return errNilPool }
