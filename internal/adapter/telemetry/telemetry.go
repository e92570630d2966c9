// Package telemetry sets up request tracing for the HTTP surface.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

type Config struct {
	Enabled     bool
	Exporter    string
	Endpoint    string
	ServiceName string
}

// A Provider owns the tracer provider. The zero or nil Provider
// traces nothing.
type Provider struct {
	tp          *sdktrace.TracerProvider
	serviceName string
}

// Setup builds the tracer provider and installs it globally.
// Stdout spans are written to w.
func Setup(ctx context.Context, cfg Config, w io.Writer) (*Provider, error) {
	const op = "telemetry.Setup"
	log := slog.With("op", op)

	if !cfg.Enabled {
		log.Debug("tracing is disabled")
		return &Provider{}, nil
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(cfg.ServiceName),
	)

	var spanOpt sdktrace.TracerProviderOption
	switch cfg.Exporter {
	case ExporterStdout, "":
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		spanOpt = sdktrace.WithSyncer(exp)
	case ExporterOTLP:
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("%s: %w", op, errors.New("otlp endpoint is empty"))
		}
		exp, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.Endpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		spanOpt = sdktrace.WithBatcher(exp)
	default:
		return nil, fmt.Errorf("%s: unknown exporter %q", op, cfg.Exporter)
	}

	tp := sdktrace.NewTracerProvider(
		spanOpt,
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	log.Info("tracing is enabled", "exporter", cfg.Exporter)
	return &Provider{tp: tp, serviceName: cfg.ServiceName}, nil
}

// Middleware wraps next with a server span per request.
func (p *Provider) Middleware(next http.Handler) http.Handler {
	if p == nil || p.tp == nil {
		return next
	}
	return otelhttp.NewHandler(next, p.serviceName,
		otelhttp.WithTracerProvider(p.tp),
		otelhttp.WithSpanNameFormatter(
			func(_ string, r *http.Request) string {
				return "HTTP " + r.Method + " " + r.URL.Path
			},
		),
	)
}

func (p *Provider) Shutdown(ctx context.Context) error {
	const op = "Provider.Shutdown"

	if p == nil || p.tp == nil {
		return nil
	}
	if err := p.tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
