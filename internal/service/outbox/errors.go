package outbox

import "errors"

var ErrInvalidBatchSize = errors.New("batch size must be positive")
