package outbox

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"order-service/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Record пишет событие в текущую транзакцию, если она открыта в ctx.
func (r *Repository) Record(ctx context.Context, event entities.OrderEvent) error {
	eventDB := FromDomain(&event)

	createdAt := eventDB.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `
		INSERT INTO order_events (order_id, status, courier_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.querier.Exec(ctx, query, eventDB.OrderID, eventDB.Status, eventDB.CourierID, createdAt)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository record error: %w", err)
	}
	return nil
}

// FetchUnpublished блокирует пачку неотправленных событий. SKIP LOCKED
// позволяет нескольким релеям работать параллельно без двойной отправки.
func (r *Repository) FetchUnpublished(ctx context.Context, limit int) ([]entities.OrderEvent, error) {
	builder := qb.
		Select("id", "order_id", "status", "courier_id", "created_at", "published_at").
		From("order_events").
		Where(sq.Eq{"published_at": nil}).
		OrderBy("id").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED")

	rows, err := r.querier.QuerySq(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetch error: %w", err)
	}
	defer rows.Close()

	events := make([]entities.OrderEvent, 0, limit)
	for rows.Next() {
		var eventDB OrderEventDB
		err := rows.Scan(
			&eventDB.ID,
			&eventDB.OrderID,
			&eventDB.Status,
			&eventDB.CourierID,
			&eventDB.CreatedAt,
			&eventDB.PublishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order event: %w", err)
		}
		events = append(events, *ToDomain(&eventDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order events: %w", err)
	}
	return events, nil
}

func (r *Repository) MarkPublished(ctx context.Context, ids []int64, publishedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE order_events
		SET published_at = $1
		WHERE id = ANY($2)
	`
	_, err := r.querier.Exec(ctx, query, publishedAt, ids)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository mark published error: %w", err)
	}
	return nil
}
