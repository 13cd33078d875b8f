package metrics

import "logiflow/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
