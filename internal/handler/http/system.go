package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-typed-routes/internal/pipeline"
	"github.com/MKhiriev/go-typed-routes/internal/registry"
	"github.com/MKhiriev/go-typed-routes/internal/service"
	"github.com/MKhiriev/go-typed-routes/models"
)

type rawInput = pipeline.Input[pipeline.PathParams, json.RawMessage, url.Values]

type rawHandle = registry.Handle[pipeline.PathParams, json.RawMessage, url.Values]

// SystemController serves unauthenticated service endpoints under /api.
type SystemController struct {
	*registry.Controller

	Version rawHandle
	Health  rawHandle

	appInfo service.AppInfoService
}

func NewSystemController(f registry.Factory, appInfo service.AppInfoService) *SystemController {
	sc := &SystemController{
		Controller: f.Controller("system", "/api"),
		appInfo:    appInfo,
	}

	sc.Version = registry.Get(sc.Controller, registry.Route[pipeline.PathParams, json.RawMessage, url.Values]{
		Name:       "getVersion",
		Path:       "/version",
		Validators: []pipeline.Validator{pipeline.Noop()},
		Authorize:  public,
		Resolve:    sc.getVersion,
	})
	sc.Health = registry.Get(sc.Controller, registry.Route[pipeline.PathParams, json.RawMessage, url.Values]{
		Name:      "getHealth",
		Path:      "/health",
		Authorize: public,
		Resolve: func(context.Context, rawInput) (models.Envelope, error) {
			return models.OK("ok"), nil
		},
	})

	return sc
}

func (sc *SystemController) getVersion(ctx context.Context, _ rawInput) (models.Envelope, error) {
	return models.OK(sc.appInfo.GetAppInfo(ctx)), nil
}

func public(next http.Handler) http.Handler {
	return next
}
