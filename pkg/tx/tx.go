package tx

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TransactionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "db_transaction_duration_seconds",
		Help:    "Duration of database transactions by isolation level and result",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	},
	[]string{"isolation", "result"},
)

// Manager оборачивает avito trm: транзакция кладётся в ctx, и querier
// подхватывает её через pgxv5.CtxGetter.
type Manager struct {
	internal *manager.Manager
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)

	start := time.Now()
	err := m.internal.DoWithSettings(ctx, txSettings, fn)

	result := "commit"
	if err != nil {
		result = "rollback"
	}
	TransactionDuration.WithLabelValues(string(level), result).Observe(time.Since(start).Seconds())

	return err
}

// Do выполняет fn в serializable транзакции. Подходит для вставки заказа
// вместе с событием outbox, где конкурентных правок одной строки нет.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
}

// DoReadCommitted нужен для условных UPDATE ... WHERE: на read committed
// конкурирующая транзакция дожидается блокировки строки и перепроверяет
// условие, а не падает с 40001.
func (m *Manager) DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.execWithIsoLevel(ctx, pgx.ReadCommitted, fn)
}
