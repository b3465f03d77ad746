package registry

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-typed-routes/internal/pipeline"
)

// Route declares one endpoint. P, B and Q are the params, body and query
// types the resolver receives; they must match the validators declared for
// each part.
type Route[P, B, Q any] struct {
	// Name identifies the endpoint in spans and logs, e.g. "getMember".
	Name string
	// Path is relative to the controller base path and may hold chi URL
	// parameters.
	Path       string
	Validators []pipeline.Validator
	// Authorize overrides the factory's default authorization.
	Authorize pipeline.Middleware
	Resolve   pipeline.Resolver[P, B, Q]
}

// Handle is returned by a registration.
type Handle[P, B, Q any] struct {
	// Test is the raw resolver, for invocation without HTTP.
	Test pipeline.Resolver[P, B, Q]
}

// Get registers route for GET requests.
func Get[P, B, Q any](c *Controller, route Route[P, B, Q]) Handle[P, B, Q] {
	return mustRegister(c, http.MethodGet, route)
}

// Post registers route for POST requests.
func Post[P, B, Q any](c *Controller, route Route[P, B, Q]) Handle[P, B, Q] {
	return mustRegister(c, http.MethodPost, route)
}

// Put registers route for PUT requests.
func Put[P, B, Q any](c *Controller, route Route[P, B, Q]) Handle[P, B, Q] {
	return mustRegister(c, http.MethodPut, route)
}

// Delete registers route for DELETE requests.
func Delete[P, B, Q any](c *Controller, route Route[P, B, Q]) Handle[P, B, Q] {
	return mustRegister(c, http.MethodDelete, route)
}

// Register is like Get/Post/Put/Delete but returns registration errors
// instead of panicking.
func Register[P, B, Q any](c *Controller, method string, route Route[P, B, Q]) (Handle[P, B, Q], error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return Handle[P, B, Q]{}, fmt.Errorf("%w: unsupported method %q", ErrInvalidRoute, method)
	}
	if route.Name == "" {
		return Handle[P, B, Q]{}, fmt.Errorf("%w: name is required", ErrInvalidRoute)
	}

	authorize := route.Authorize
	if authorize == nil {
		authorize = c.factory.Authorize
	}

	rt, err := pipeline.New(pipeline.Endpoint{
		Controller: c.name,
		Method:     route.Name,
		Validators: route.Validators,
		Injector:   c.factory.Injector,
		Authorize:  authorize,
		Logger:     c.factory.Logger,
		Tracer:     c.factory.Tracer,
		BodyLimit:  c.factory.BodyLimit,
	}, route.Resolve)
	if err != nil {
		return Handle[P, B, Q]{}, fmt.Errorf("%s.%s: %w", c.name, route.Name, err)
	}

	if err := c.handle(method, normalizePath(route.Path), rt); err != nil {
		return Handle[P, B, Q]{}, err
	}
	return Handle[P, B, Q]{Test: rt.Resolver()}, nil
}

func mustRegister[P, B, Q any](c *Controller, method string, route Route[P, B, Q]) Handle[P, B, Q] {
	h, err := Register(c, method, route)
	if err != nil {
		panic(err)
	}
	return h
}
