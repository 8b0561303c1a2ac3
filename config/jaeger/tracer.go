package jaeger

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// InitTracer installs a global jaeger tracer for the named service. The
// returned closer flushes buffered spans and must be closed on shutdown.
func InitTracer(service string) io.Closer {
	cfg := jaegercfg.Configuration{
		ServiceName: service,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans: true,
		},
	}
	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		logrus.Errorf("failed to init jaeger tracer: %v", err)
		return io.NopCloser(nil)
	}
	opentracing.SetGlobalTracer(tracer)
	return closer
}
