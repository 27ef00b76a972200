package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const (
	DRIVER_SQLITE   = "sqlite"
	DRIVER_POSTGRES = "postgres"
)

type ConnectConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

func (c *ConnectConfig) FormatDSN() string {
	return c.DSN
}

// Executor is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx, so store
// code runs the same inside and outside a transaction.
type Executor interface {
	Get(dest interface{}, query string, args ...interface{}) error
	Select(dest interface{}, query string, args ...interface{}) error
	Exec(query string, args ...interface{}) (sql.Result, error)
}

type SqlProvider struct {
	driver   string
	master   *sqlx.DB
	replicas []*sqlx.DB
	next     int
}

type txContextKey struct{}

// MustSetupProvider connects the master (and optional read replicas) and
// configures the squirrel placeholder format for the driver. SQLite runs
// with a single connection; the driver serializes writers anyway and a
// pool breaks ":memory:" databases.
func MustSetupProvider(m ConnectConfig, s ...ConnectConfig) *SqlProvider {
	switch m.Driver {
	case DRIVER_POSTGRES:
		sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	case DRIVER_SQLITE:
		sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	default:
		panic(fmt.Sprintf("sqlstore: unsupported driver %q", m.Driver))
	}

	provider := &SqlProvider{
		driver: m.Driver,
		master: mustConnect(m),
	}
	for _, cfg := range s {
		provider.replicas = append(provider.replicas, mustConnect(cfg))
	}
	return provider
}

func mustConnect(cfg ConnectConfig) *sqlx.DB {
	if cfg.Driver == DRIVER_SQLITE && cfg.DSN != ":memory:" && !strings.HasPrefix(cfg.DSN, "file:") {
		if dir := filepath.Dir(cfg.DSN); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				panic(err)
			}
		}
	}

	db, err := sqlx.Connect(cfg.Driver, cfg.DSN)
	if err != nil {
		panic(err)
	}
	if cfg.Driver == DRIVER_SQLITE {
		db.SetMaxOpenConns(1)
	}
	return db
}

func (p *SqlProvider) Driver() string {
	return p.driver
}

// GetMaster returns the transaction bound to ctx when one is open,
// otherwise the master pool.
func (p *SqlProvider) GetMaster(ctx context.Context) Executor {
	if tx, ok := ctx.Value(txContextKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return p.master
}

// GetReplica prefers an open transaction for read-your-writes, then a
// replica, then the master.
func (p *SqlProvider) GetReplica(ctx context.Context) Executor {
	if tx, ok := ctx.Value(txContextKey{}).(*sqlx.Tx); ok {
		return tx
	}
	if len(p.replicas) == 0 {
		return p.master
	}
	p.next = (p.next + 1) % len(p.replicas)
	return p.replicas[p.next]
}

func (p *SqlProvider) GetMasterDB() *sqlx.DB {
	return p.master
}

// Transaction runs fn with a master transaction carried in ctx. Nested
// calls join the outer transaction.
func (p *SqlProvider) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txContextKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := p.master.Beginx()
	if err != nil {
		return fmt.Errorf("sqlstore: begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err = fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
