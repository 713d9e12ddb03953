package http

import (
	"go.uber.org/zap"

	"weather-dashboard/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called after a response the client treats as success
	LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after the final failed attempt
	LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, httpStatus int, latency int64, err error, retryCount, maxRetries int)
}

type zapHTTPLogger struct{}

// NewZapHTTPLogger logs outbound traffic through pkg/log. Bodies are only logged at debug level.
func NewZapHTTPLogger() HTTPLogger {
	return zapHTTPLogger{}
}

func (zapHTTPLogger) LogRequest(method, url string, headers map[string]string) {
	log.Debug("http request", zap.String("method", method), zap.String("url", url), zap.Int("headers", len(headers)))
}

func (zapHTTPLogger) LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency int64) {
	log.Info("http response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
	log.Debug("http response body", zap.String("url", url), zap.String("body", responseBody))
}

func (zapHTTPLogger) LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	log.Error("http request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("body", responseBody),
		zap.Error(err))
}

func (zapHTTPLogger) LogRequestRetry(method, url string, httpStatus int, latency int64, err error, retryCount, maxRetries int) {
	log.Warn("http request retry",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Int("retry", retryCount),
		zap.Int("max_retries", maxRetries),
		zap.Error(err))
}
