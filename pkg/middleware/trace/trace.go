package trace

import (
	// 外部依赖
	"context"
	"time"

	host "go.opentelemetry.io/contrib/instrumentation/host"
	runtimemetrics "go.opentelemetry.io/contrib/instrumentation/runtime"
	otel "go.opentelemetry.io/otel"
	otlpmetricgrpc "go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	otlptrace "go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	otlptracegrpc "go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	stdoutmetric "go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	stdouttrace "go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	propagation "go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	resource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	// 内部引用
	logger "github.com/openbench/labbook/pkg/middleware/logger"
)

type InitConfig struct {
	ServiceName     string
	Version         string
	TraceEndpoint   string
	MetricEndpoint  string
	TraceProject    string
	TraceInstanceID string
	TraceAK         string
	TraceSK         string
}

var (
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
)

func (c *InitConfig) headers() map[string]string {
	if c.TraceAK == "" {
		return nil
	}
	return map[string]string{
		"x-sls-otel-project":     c.TraceProject,
		"x-sls-otel-instance-id": c.TraceInstanceID,
		"x-sls-otel-ak-id":       c.TraceAK,
		"x-sls-otel-ak-secret":   c.TraceSK,
	}
}

// InitTrace 初始化 otel trace/metric，endpoint 缺省时落 stdout
func InitTrace(ctx context.Context, conf *InitConfig) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(conf.ServiceName),
			semconv.ServiceVersion(conf.Version),
		),
	)
	if err != nil {
		logger.Fatalf(ctx, "init otel resource err: %+v", err)
	}

	var traceExp sdktrace.SpanExporter
	if conf.TraceEndpoint != "" {
		traceExp, err = otlptrace.New(ctx, otlptracegrpc.NewClient(
			otlptracegrpc.WithEndpoint(conf.TraceEndpoint),
			otlptracegrpc.WithInsecure(),
			otlptracegrpc.WithHeaders(conf.headers()),
		))
	} else {
		traceExp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	if err != nil {
		logger.Fatalf(ctx, "init trace exporter err: %+v", err)
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	var metricExp sdkmetric.Exporter
	if conf.MetricEndpoint != "" {
		metricExp, err = otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(conf.MetricEndpoint),
			otlpmetricgrpc.WithInsecure(),
			otlpmetricgrpc.WithHeaders(conf.headers()),
		)
	} else {
		metricExp, err = stdoutmetric.New()
	}
	if err != nil {
		logger.Fatalf(ctx, "init metric exporter err: %+v", err)
	}

	meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp,
			sdkmetric.WithInterval(time.Minute))),
	)
	otel.SetMeterProvider(meterProvider)

	if err := host.Start(); err != nil {
		logger.Warnf(ctx, "start host metrics err: %+v", err)
	}
	if err := runtimemetrics.Start(); err != nil {
		logger.Warnf(ctx, "start runtime metrics err: %+v", err)
	}
}

func CloseTrace() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if tracerProvider != nil {
		_ = tracerProvider.Shutdown(ctx)
	}
	if meterProvider != nil {
		_ = meterProvider.Shutdown(ctx)
	}
}
