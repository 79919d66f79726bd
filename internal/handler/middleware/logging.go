package middleware

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"rent-elegance/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type Logger struct {
	logger   *slog.Logger
	cfg      config.LogConfig
	timezone *time.Location
}

func NewLogger(cfg config.LogConfig) *Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		logLevel = slog.LevelInfo
	}

	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{
		logger:   logger,
		cfg:      cfg,
		timezone: timezone,
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware reuses logger when given so request logs share the
// application's handler; otherwise a logger is built from cfg.
func LoggingMiddleware(logger *slog.Logger, cfg config.LogConfig) gin.HandlerFunc {
	if logger == nil {
		return NewLogger(cfg).Middleware()
	}
	l := &Logger{
		logger:   logger,
		cfg:      cfg,
		timezone: time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset),
	}
	return l.Middleware()
}

func (l *Logger) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = l.newRequestID(startTime)
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		if c.Request.URL.RawQuery != "" {
			attrs = append(attrs, slog.String("query", c.Request.URL.RawQuery))
		}

		ctx := c.Request.Context()
		l.logger.LogAttrs(ctx, slog.LevelDebug, "Request started", attrs...)

		c.Next()

		statusCode := c.Writer.Status()

		// device_id is only known once the device middleware has run
		if deviceID, ok := GetDeviceID(c); ok {
			attrs = append(attrs, slog.String("device_id", deviceID.String()))
		}
		attrs = append(attrs,
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(startTime)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		l.logger.LogAttrs(ctx, levelForStatus(statusCode), "Request completed", attrs...)
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString("request_id")
}

// newRequestID prefixes a random id with the local timestamp so ids sort by arrival.
func (l *Logger) newRequestID(now time.Time) string {
	id := uuid.New().String()
	return now.In(l.timezone).Format("20060102150405") + "-" + id[:8]
}
