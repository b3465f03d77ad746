package http

import (
	"github.com/MKhiriev/go-typed-routes/internal/pipeline"
	"github.com/MKhiriev/go-typed-routes/internal/utils"
)

// Fragment fields produced by the injectors below.
const (
	FieldUserID         = "userId"
	FieldOrganizationID = "organizationId"
	FieldTraceID        = "traceId"
)

// callerInjector exposes the authenticated caller. Anonymous requests get
// zero values so the fragment shape stays the same.
func callerInjector(req *pipeline.Request, _ pipeline.InjectorContext) (pipeline.Fragment, error) {
	return pipeline.Fragment{
		FieldUserID:         req.Caller.UserID,
		FieldOrganizationID: req.Caller.OrganizationID,
	}, nil
}

// traceInjector exposes the X-Trace-ID of the request.
func traceInjector(req *pipeline.Request, _ pipeline.InjectorContext) (pipeline.Fragment, error) {
	var traceID string
	if req.HTTP != nil {
		traceID, _ = utils.GetTraceIDFromContext(req.HTTP.Context())
	}
	return pipeline.Fragment{FieldTraceID: traceID}, nil
}

// Injector is the injector shared by the bundled controllers.
func Injector() pipeline.Injector {
	return pipeline.CombineAll(callerInjector, traceInjector)
}
