package tracing

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/MKhiriev/go-typed-routes/internal/pipeline"

// Attribute keys set on every pipeline span.
const (
	AttrController     = "controller"
	AttrMethod         = "method"
	AttrUserID         = "userId"
	AttrOrganizationID = "organizationId"
	AttrError          = "error"
	AttrEventPayload   = "payload"
)

type otelTracer struct {
	tracer trace.Tracer
}

// NewTracer returns a Tracer backed by the given OpenTelemetry provider.
func NewTracer(tp trace.TracerProvider) Tracer {
	return &otelTracer{tracer: tp.Tracer(instrumentationName)}
}

// Nop returns a Tracer whose spans record nothing.
func Nop() Tracer {
	return NewTracer(noop.NewTracerProvider())
}

// Start opens a span named "<controller>.<method>".
func (t *otelTracer) Start(ctx context.Context, controller, method string) (context.Context, Span) {
	ctx, span := t.tracer.Start(ctx, controller+"."+method,
		trace.WithAttributes(
			attribute.String(AttrController, controller),
			attribute.String(AttrMethod, method),
		),
	)
	return ctx, &otelSpan{span: span}
}

type otelSpan struct {
	span trace.Span
	once sync.Once
}

func (s *otelSpan) SetTags(tags map[string]any) {
	attrs := make([]attribute.KeyValue, 0, len(tags))
	for k, v := range tags {
		if v == nil {
			continue
		}
		attrs = append(attrs, toAttribute(k, v))
	}
	s.span.SetAttributes(attrs...)
}

func (s *otelSpan) LogEvent(event string, payload any) {
	if payload == nil {
		s.span.AddEvent(event)
		return
	}
	s.span.AddEvent(event, trace.WithAttributes(toAttribute(AttrEventPayload, payload)))
}

func (s *otelSpan) SetError(err error) {
	s.span.SetAttributes(attribute.Bool(AttrError, true))
	if err == nil {
		s.span.SetStatus(codes.Error, "")
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *otelSpan) Finish() {
	s.once.Do(func() { s.span.End() })
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case bool:
		return attribute.Bool(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case fmt.Stringer:
		return attribute.String(key, v.String())
	default:
		return attribute.String(key, fmt.Sprint(v))
	}
}
