// Пакет telemetry — экспорт трейсов OTLP/HTTP для HTTP API и импорта расписания.
package telemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const (
	defaultEndpoint    = "localhost:4318"
	defaultServiceName = "dance-center"
)

// Shutdown — завершение провайдера с выгрузкой буфера спанов.
type Shutdown func(context.Context) error

// Options — параметры экспорта.
type Options struct {
	ServiceName string
	Endpoint    string  // host:port коллектора, без схемы
	SampleRatio float64 // доля семплируемых трейсов, [0..1]
}

// normalize — значения по умолчанию и обрезка доли семплинга.
func (o Options) normalize() Options {
	o.ServiceName = strings.TrimSpace(o.ServiceName)
	if o.ServiceName == "" {
		o.ServiceName = defaultServiceName
	}
	o.Endpoint = strings.TrimSpace(o.Endpoint)
	o.Endpoint = strings.TrimPrefix(strings.TrimPrefix(o.Endpoint, "http://"), "https://")
	if o.Endpoint == "" {
		o.Endpoint = defaultEndpoint
	}
	switch {
	case o.SampleRatio < 0:
		o.SampleRatio = 0
	case o.SampleRatio > 1:
		o.SampleRatio = 1
	}
	return o
}

// sampler — ParentBased: решение родителя (пришедшее в traceparent) сохраняется.
func (o Options) sampler() sdktrace.Sampler {
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(o.SampleRatio))
}

// SetupTracing настраивает глобальный провайдер и пропагаторы TraceContext + Baggage.
func SetupTracing(ctx context.Context, serviceName, endpoint string, sampleRatio float64) (Shutdown, error) {
	opts := Options{ServiceName: serviceName, Endpoint: endpoint, SampleRatio: sampleRatio}.normalize()

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(opts.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(opts.sampler()),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(opts.ServiceName),
			attribute.String("app.domain", "dance-studio"),
		)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{}, propagation.Baggage{},
		),
	)

	return provider.Shutdown, nil
}
