package logger

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// StructuredLogger implementa Logger com saída estruturada via zerolog
type StructuredLogger struct {
	zl zerolog.Logger
}

// NewStructuredLogger cria um Logger estruturado escrevendo JSON no stdout
func NewStructuredLogger() Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	zl := zerolog.New(os.Stdout).With().Timestamp().Logger()
	return &StructuredLogger{zl: zl}
}

// Info registra uma mensagem de informação
func (l *StructuredLogger) Info(msg string, keysAndValues ...interface{}) {
	l.emit(l.zl.Info(), msg, keysAndValues)
}

// Error registra uma mensagem de erro
func (l *StructuredLogger) Error(msg string, keysAndValues ...interface{}) {
	l.emit(l.zl.Error(), msg, keysAndValues)
}

// Debug registra uma mensagem de debug
func (l *StructuredLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.emit(l.zl.Debug(), msg, keysAndValues)
}

// Warn registra uma mensagem de aviso
func (l *StructuredLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.emit(l.zl.Warn(), msg, keysAndValues)
}

func (l *StructuredLogger) emit(event *zerolog.Event, msg string, keysAndValues []interface{}) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, keysAndValues[i+1])
	}
	event.Msg(msg)
}

// GinLogger é um middleware do Gin que registra as requisições HTTP
func GinLogger(l Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", statusCode,
			"client_ip", c.ClientIP(),
			"latency", latency.String(),
		}

		switch {
		case statusCode >= 500:
			l.Error("requisição processada", fields...)
		case statusCode >= 400:
			l.Warn("requisição processada", fields...)
		default:
			l.Info("requisição processada", fields...)
		}
	}
}
