package healthcheck_head

import "context"

// Checker - зависимость, без которой сервис не может обслуживать запросы.
type Checker interface {
	Ping(ctx context.Context) error
}
