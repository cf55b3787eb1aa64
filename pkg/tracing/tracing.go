// Package tracing sets up the Jaeger tracer used for outbound request spans.
package tracing

import (
	"fmt"
	"io"
	"net"

	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go/config"
	"github.com/uber/jaeger-lib/metrics"
	"go.uber.org/zap"
)

// NewTracer creates a Jaeger tracer reporting to the agent at host:port and
// sampling every span. The returned closer flushes buffered spans.
func NewTracer(serviceName, host, port string, logger *zap.Logger) (opentracing.Tracer, io.Closer, error) {
	cfg := &config.Configuration{
		ServiceName: serviceName,
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &config.ReporterConfig{
			LocalAgentHostPort: net.JoinHostPort(host, port),
		},
	}
	tracer, closer, err := cfg.NewTracer(
		config.Logger(&jaegerLogger{logger: logger}),
		config.Metrics(metrics.NullFactory),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Jaeger tracer: %w", err)
	}
	return tracer, closer, nil
}

// jaegerLogger adapts zap to the Jaeger logger interface.
type jaegerLogger struct {
	logger *zap.Logger
}

func (l *jaegerLogger) Error(msg string) {
	l.logger.Error(msg)
}

func (l *jaegerLogger) Infof(msg string, args ...interface{}) {
	l.logger.Sugar().Debugf(msg, args...)
}
