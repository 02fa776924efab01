package access_control

import (
	"order-service/internal/entities"
	"order-service/internal/service/access"
	"order-service/pkg/logger"
)

type Policy interface {
	Check(role entities.Role, op access.Operation) error
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
