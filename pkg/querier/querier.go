package querier

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of database calls made through the querier",
		Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	},
	[]string{"kind", "in_tx"},
)

// Querier выбирает исполнителя из контекста: транзакцию, если её открыл
// tx.Manager, иначе пул.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	defer q.observe(ctx, "exec", time.Now())
	return q.get(ctx).Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	defer q.observe(ctx, "query", time.Now())
	return q.get(ctx).Query(ctx, sql, args...)
}

func (q *Querier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	defer q.observe(ctx, "query_row", time.Now())
	return q.get(ctx).QueryRow(ctx, sql, args...)
}

// ExecSq, QuerySq и QueryRowSq принимают squirrel-билдер вместо готовой строки.

func (q *Querier) ExecSq(ctx context.Context, builder sq.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return q.Exec(ctx, query, args...)
}

func (q *Querier) QuerySq(ctx context.Context, builder sq.Sqlizer) (pgx.Rows, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.Query(ctx, query, args...)
}

func (q *Querier) QueryRowSq(ctx context.Context, builder sq.Sqlizer) pgx.Row {
	query, args, err := builder.ToSql()
	if err != nil {
		return errRow{err: fmt.Errorf("build query: %w", err)}
	}
	return q.QueryRow(ctx, query, args...)
}

func (q *Querier) get(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}

func (q *Querier) observe(ctx context.Context, kind string, start time.Time) {
	inTx := "false"
	if q.getter.DefaultTrOrDB(ctx, nil) != nil {
		inTx = "true"
	}
	QueryDuration.WithLabelValues(kind, inTx).Observe(time.Since(start).Seconds())
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}
