//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_test
package outbox

import (
	"context"
	"time"

	"order-service/internal/entities"
)

type Repository interface {
	FetchUnpublished(ctx context.Context, limit int) ([]entities.OrderEvent, error)
	MarkPublished(ctx context.Context, ids []int64, publishedAt time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, events []entities.OrderEvent) error
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
