// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-typed-routes/internal/logger"
	"github.com/MKhiriev/go-typed-routes/internal/pipeline"
	"github.com/MKhiriev/go-typed-routes/internal/tracing"
)

// Factory holds the collaborators shared by all controllers of a service.
type Factory struct {
	// Injector runs for every endpoint of every controller built by the
	// factory. Nil means no injection.
	Injector pipeline.Injector

	// Authorize is the default authorization middleware, used by routes
	// that do not declare their own.
	Authorize pipeline.Middleware

	Logger *logger.Logger
	Tracer tracing.Tracer

	// BodyLimit caps request bodies; zero means unlimited.
	BodyLimit int64
}

// Controller groups the endpoints served under one base path.
type Controller struct {
	name     string
	basePath string
	factory  Factory

	mu      sync.Mutex
	router  chi.Router
	routes  map[string]struct{}
	applied bool
}

// Controller opens a controller named name (used in span names and log
// fields) serving under basePath. basePath may hold chi URL parameters;
// they are visible to the params validators of every route.
func (f Factory) Controller(name, basePath string) *Controller {
	if f.Logger == nil {
		f.Logger = logger.Nop()
	}
	if f.Tracer == nil {
		f.Tracer = tracing.Nop()
	}

	return &Controller{
		name:     name,
		basePath: normalizePath(basePath),
		factory:  f,
		router:   chi.NewRouter(),
		routes:   make(map[string]struct{}),
	}
}

// Name returns the controller name.
func (c *Controller) Name() string {
	return c.name
}

// BasePath returns the path the controller mounts under.
func (c *Controller) BasePath() string {
	return c.basePath
}

// Routes lists the registered routes as "METHOD /base/path", sorted.
func (c *Controller) Routes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, len(c.routes))
	for key := range c.routes {
		method, path, _ := strings.Cut(key, " ")
		out = append(out, method+" "+joinPath(c.basePath, path))
	}
	sort.Strings(out)
	return out
}

// Apply mounts every route of c on r under c's base path and freezes c.
// Applying the same controller on several routers is allowed.
func (c *Controller) Apply(r chi.Router) {
	c.mu.Lock()
	c.applied = true
	count := len(c.routes)
	c.mu.Unlock()

	r.Mount(c.basePath, c.router)
	c.factory.Logger.Debug().
		Str("controller", c.name).
		Str("path", c.basePath).
		Int("routes", count).
		Msg("controller mounted")
}

func (c *Controller) handle(method, path string, h http.Handler) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.applied {
		return fmt.Errorf("%w: %s", ErrControllerFrozen, c.name)
	}
	key := method + " " + path
	if _, ok := c.routes[key]; ok {
		return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, joinPath(c.basePath, path))
	}
	c.routes[key] = struct{}{}
	c.router.Method(method, path, h)
	return nil
}

func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	return p
}

func joinPath(base, p string) string {
	if base == "/" {
		return p
	}
	if p == "/" {
		return base
	}
	return base + p
}
