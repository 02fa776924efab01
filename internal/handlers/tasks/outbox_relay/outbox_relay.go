//go:generate mockgen -source=outbox_relay.go -destination=./outbox_relay_mocks_test.go -package=outbox_relay_test
package outbox_relay

import (
	"context"
	"time"

	"order-service/pkg/logger"
)

type Service interface {
	Relay(ctx context.Context) (int, error)
}

type OutboxRelay struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOutboxRelay(log logger.Logger, service Service, interval time.Duration) *OutboxRelay {
	return &OutboxRelay{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

// Do гоняет пачки, пока очередь не опустеет или не выйдет интервал.
func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	total := 0
	for {
		published, err := o.service.Relay(ctxWithTimeout)
		total += published
		if err != nil || published == 0 || ctxWithTimeout.Err() != nil {
			if total > 0 {
				o.log.With(
					logger.NewField("published", total),
				).Info("outbox relay")
			}
			return err
		}
	}
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
