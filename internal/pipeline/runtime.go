package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"runtime/debug"

	"github.com/MKhiriev/go-typed-routes/internal/app"
	"github.com/MKhiriev/go-typed-routes/internal/logger"
	"github.com/MKhiriev/go-typed-routes/internal/tracing"
	"github.com/MKhiriev/go-typed-routes/internal/utils"
	"github.com/MKhiriev/go-typed-routes/internal/validators"
	"github.com/MKhiriev/go-typed-routes/models"
)

// Span events emitted by the runtime, in lifecycle order.
const (
	EventRequestStarted   = "Request started"
	EventRunningInjector  = "Running injector"
	EventRunningResolver  = "Running resolver"
	EventRequestSucceeded = "Request succeeded"
	EventRequestFailed    = "Request failed"
)

// Middleware is the authorization collaborator. It either calls next or
// writes the response itself.
type Middleware = func(next http.Handler) http.Handler

// Endpoint configures a Runtime.
type Endpoint struct {
	// Controller and Method name the endpoint in spans and logs
	// (e.g. "members", "getMember").
	Controller string
	Method     string

	// Validators run in order; the first rejection ends the request.
	Validators []Validator
	Injector   Injector
	Authorize  Middleware

	Logger *logger.Logger
	Tracer tracing.Tracer

	// BodyLimit caps the request body size; zero means unlimited.
	BodyLimit int64
}

// Runtime runs one endpoint. It is an http.Handler and is safe for
// concurrent use.
type Runtime[P, B, Q any] struct {
	ep      Endpoint
	resolve Resolver[P, B, Q]
	log     *logger.Logger
}

// call is the per-request state of a Runtime.
type call struct {
	ctx  context.Context
	span tracing.Span
	log  *logger.Logger
	out  *statusWriter
}

var rawPartTypes = map[Part]reflect.Type{
	PartParams: reflect.TypeFor[PathParams](),
	PartBody:   reflect.TypeFor[json.RawMessage](),
	PartQuery:  reflect.TypeFor[url.Values](),
}

// New builds the runtime of ep resolving with resolve.
//
// P, B and Q must accept the type produced by the last validator declared
// for the part, or the raw part type (PathParams, json.RawMessage,
// url.Values) when no validator narrows it. Otherwise New returns
// ErrPartTypeMismatch.
func New[P, B, Q any](ep Endpoint, resolve Resolver[P, B, Q]) (*Runtime[P, B, Q], error) {
	if resolve == nil {
		return nil, ErrMissingResolver
	}
	for i, v := range ep.Validators {
		if v == nil {
			return nil, fmt.Errorf("%w: validator #%d is nil", ErrPartTypeMismatch, i)
		}
	}
	if err := errors.Join(
		checkPart[P](PartParams, ep.Validators),
		checkPart[B](PartBody, ep.Validators),
		checkPart[Q](PartQuery, ep.Validators),
	); err != nil {
		return nil, err
	}

	if ep.Logger == nil {
		ep.Logger = logger.Nop()
	}
	if ep.Tracer == nil {
		ep.Tracer = tracing.Nop()
	}
	if ep.Injector == nil {
		ep.Injector = Empty
	}
	if ep.Authorize == nil {
		ep.Authorize = func(next http.Handler) http.Handler { return next }
	}

	return &Runtime[P, B, Q]{
		ep:      ep,
		resolve: resolve,
		log:     ep.Logger.Endpoint(ep.Controller, ep.Method),
	}, nil
}

// Resolver returns the resolver the runtime was built with.
func (rt *Runtime[P, B, Q]) Resolver() Resolver[P, B, Q] {
	return rt.resolve
}

func (rt *Runtime[P, B, Q]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, span := rt.ep.Tracer.Start(r.Context(), rt.ep.Controller, rt.ep.Method)
	defer span.Finish()

	c := &call{
		ctx:  ctx,
		span: span,
		log:  rt.requestLogger(r),
		out:  &statusWriter{ResponseWriter: w},
	}

	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if rec == http.ErrAbortHandler {
			panic(rec)
		}
		c.log.Error().Bytes("stack", debug.Stack()).Msgf("recovered from panic: %v", rec)
		rt.fail(c.out, c, panicError(rec))
	}()

	span.LogEvent(EventRequestStarted, nil)
	c.log.Info().
		Str("http_method", r.Method).
		Str("path", r.URL.Path).
		Msg("Incoming request")

	r = r.WithContext(ctx)
	rt.ep.Authorize(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rt.serve(w, r, c)
	})).ServeHTTP(c.out, r)
}

func (rt *Runtime[P, B, Q]) serve(w http.ResponseWriter, r *http.Request, c *call) {
	ctx := r.Context()

	req, err := NewRequest(r, rt.ep.BodyLimit)
	if err != nil {
		if errors.Is(err, ErrBodyTooLarge) {
			caller, _ := utils.GetIdentityFromContext(ctx)
			env := models.BadRequest(validators.FieldErrors{PartBody.String(): {err.Error()}})
			rt.reject(w, c, caller, PartBody, env)
			return
		}
		rt.fail(w, c, err)
		return
	}

	if tags := identityTags(req.Caller); len(tags) > 0 {
		c.span.SetTags(tags)
	}

	shape := map[Part]any{
		PartParams: req.Params,
		PartBody:   json.RawMessage(req.Body),
		PartQuery:  req.Query,
	}
	for _, v := range rt.ep.Validators {
		res, err := v.Validate(ctx, req)
		if err != nil {
			rt.fail(w, c, err)
			return
		}
		if res.IsRejected() {
			rt.reject(w, c, req.Caller, v.Part(), res.Envelope())
			return
		}
		if v.Part() != PartNone {
			shape[v.Part()] = res.Value()
		}
	}

	c.log.Info().Msg("Running injector")
	c.span.LogEvent(EventRunningInjector, nil)
	fragment, err := run(rt.ep.Injector, req.Clone(), InjectorContext{
		Controller: rt.ep.Controller,
		Method:     rt.ep.Method,
		Span:       c.span,
	})
	if err != nil {
		rt.fail(w, c, err)
		return
	}

	c.log.Info().Msg("Running resolver")
	c.span.LogEvent(EventRunningResolver, nil)
	env, err := rt.resolve(ctx, Input[P, B, Q]{
		Fragment: fragment,
		Params:   as[P](shape[PartParams]),
		Body:     as[B](shape[PartBody]),
		Query:    as[Q](shape[PartQuery]),
		Caller:   req.Caller,
		Span:     c.span,
	})
	if err != nil {
		rt.fail(w, c, err)
		return
	}
	if env.IsZero() {
		rt.fail(w, c, ErrEmptyEnvelope)
		return
	}

	if err := writeEnvelope(w, env); err != nil {
		rt.fail(w, c, err)
		return
	}

	c.log.Info().Int("status", env.Code()).Msg("Request succeeded")
	c.span.LogEvent(EventRequestSucceeded, nil)
}

// reject writes a validation envelope. It is an expected outcome: the span
// gets a failure event but no error tag.
func (rt *Runtime[P, B, Q]) reject(w http.ResponseWriter, c *call, caller models.Identity, part Part, env models.Envelope) {
	msg := "validation errors"
	if part != PartNone {
		msg = part.String() + " " + msg
	}
	c.log.Info().
		Interface("validationErrors", env.Content()).
		Int64("userId", caller.UserID).
		Str("organizationId", caller.OrganizationID).
		Msg(msg)

	if err := writeEnvelope(w, env); err != nil {
		rt.fail(w, c, err)
		return
	}
	c.span.LogEvent(EventRequestFailed, nil)
}

// fail reports a resolution fault as a 500 carrying err's message. A stage
// giving up because the request deadline passed is answered with 504 and is
// not a fault.
func (rt *Runtime[P, B, Q]) fail(w http.ResponseWriter, c *call, err error) {
	if errors.Is(err, context.DeadlineExceeded) && c.ctx.Err() != nil {
		c.log.Warn().Err(err).Msg("Request timed out")
		c.span.LogEvent(EventRequestFailed, app.MsgRequestTimeout)
		if !c.out.wroteHeader {
			_, _ = utils.WriteText(w, app.MsgRequestTimeout, http.StatusGatewayTimeout)
		}
		return
	}

	c.log.Error().Err(err).Msg("Request failed")
	c.span.SetError(err)
	c.span.LogEvent(EventRequestFailed, err.Error())

	if c.out.wroteHeader {
		return
	}
	_ = writeEnvelope(w, models.InternalServerError(err.Error()))
}

func (rt *Runtime[P, B, Q]) requestLogger(r *http.Request) *logger.Logger {
	traceID, ok := utils.GetTraceIDFromContext(r.Context())
	if !ok {
		return rt.log
	}
	return &logger.Logger{Logger: rt.log.With().Str("trace_id", traceID).Logger()}
}

func identityTags(id models.Identity) map[string]any {
	tags := make(map[string]any, 2)
	if id.UserID != 0 {
		tags[tracing.AttrUserID] = id.UserID
	}
	if id.OrganizationID != "" {
		tags[tracing.AttrOrganizationID] = id.OrganizationID
	}
	return tags
}

func checkPart[T any](part Part, vs []Validator) error {
	want := reflect.TypeFor[T]()
	got := rawPartTypes[part]
	for _, v := range vs {
		if v.Part() == part {
			got = v.OutputType()
		}
	}
	if got == nil || !got.AssignableTo(want) {
		return fmt.Errorf("%w: %s produces %v, declared %v", ErrPartTypeMismatch, part, got, want)
	}
	return nil
}

// as converts a narrowed value to the declared part type. The types were
// checked for assignability by New.
func as[T any](v any) T {
	if t, ok := v.(T); ok {
		return t
	}
	var zero T
	if v == nil {
		return zero
	}
	rv := reflect.ValueOf(v)
	target := reflect.TypeFor[T]()
	if rv.Type().ConvertibleTo(target) {
		return rv.Convert(target).Interface().(T)
	}
	return zero
}

func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("%v", rec)
}
