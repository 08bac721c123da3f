package log

import (
	"log"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func Setup() *otelzap.Logger {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to setup logger: %v", err)
	}
	return otelzap.New(zapLogger)
}
