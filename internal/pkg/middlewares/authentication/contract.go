package authentication

import (
	"order-service/internal/entities"
	"order-service/pkg/logger"
)

type Verifier interface {
	Verify(token string) (entities.Caller, error)
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
