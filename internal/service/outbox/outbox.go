package outbox

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	repository Repository
	publisher  Publisher
	txManager  TxManager
	batchSize  int
}

func New(repository Repository, publisher Publisher, txManager TxManager, batchSize int) (*Service, error) {
	if batchSize <= 0 {
		return nil, ErrInvalidBatchSize
	}
	return &Service{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
		batchSize:  batchSize,
	}, nil
}

// Relay отправляет одну пачку событий и возвращает их количество.
// Отметка о публикации ставится в той же транзакции, что и выборка:
// если брокер ответил ошибкой, события останутся неотправленными и
// уйдут при следующем запуске. Доставка at-least-once.
func (s *Service) Relay(ctx context.Context) (int, error) {
	var published int
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		events, err := s.repository.FetchUnpublished(ctx, s.batchSize)
		if err != nil {
			RelayFailuresTotal.WithLabelValues("fetch").Inc()
			return fmt.Errorf("fetch unpublished events: %w", err)
		}
		if len(events) == 0 {
			return nil
		}

		if err := s.publisher.Publish(ctx, events); err != nil {
			RelayFailuresTotal.WithLabelValues("publish").Inc()
			return fmt.Errorf("publish events: %w", err)
		}

		ids := make([]int64, 0, len(events))
		for _, event := range events {
			ids = append(ids, event.ID)
		}

		if err := s.repository.MarkPublished(ctx, ids, time.Now().UTC()); err != nil {
			RelayFailuresTotal.WithLabelValues("mark").Inc()
			return fmt.Errorf("mark events published: %w", err)
		}

		published = len(events)
		return nil
	})
	if err != nil {
		return 0, err
	}

	EventsPublishedTotal.Add(float64(published))
	return published, nil
}
