package http

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/MKhiriev/go-typed-routes/internal/app"
	"github.com/MKhiriev/go-typed-routes/internal/pipeline"
	"github.com/MKhiriev/go-typed-routes/internal/registry"
	"github.com/MKhiriev/go-typed-routes/internal/service"
	"github.com/MKhiriev/go-typed-routes/internal/validators"
	"github.com/MKhiriev/go-typed-routes/models"
)

const maxPageSize = 100

type orgParams struct {
	OrgID string `json:"orgId"`
}

type memberParams struct {
	OrgID string `json:"orgId"`
	ID    int64  `json:"id"`
}

type listMembersQuery struct {
	Role           string `json:"role"`
	Offset         int    `json:"offset"`
	Limit          int    `json:"limit"`
	IncludeRemoved bool   `json:"includeRemoved"`
}

type createMemberBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// MembersController serves the member directory of an organization under
// /orgs/{orgId}/members. Callers may only address their own organization.
type MembersController struct {
	*registry.Controller

	Get    registry.Handle[memberParams, json.RawMessage, url.Values]
	List   registry.Handle[orgParams, json.RawMessage, listMembersQuery]
	Create registry.Handle[orgParams, createMemberBody, url.Values]
	Update registry.Handle[memberParams, models.MemberPatch, url.Values]
	Remove registry.Handle[memberParams, json.RawMessage, url.Values]

	members service.MemberService
}

func NewMembersController(f registry.Factory, members service.MemberService) *MembersController {
	mc := &MembersController{
		Controller: f.Controller("members", "/orgs/{orgId}/members"),
		members:    members,
	}

	mc.Get = registry.Get(mc.Controller, registry.Route[memberParams, json.RawMessage, url.Values]{
		Name:       "getMember",
		Path:       "/{id}",
		Validators: []pipeline.Validator{pipeline.TypedParams[memberParams]("orgId", "id")},
		Resolve:    mc.getMember,
	})
	mc.List = registry.Get(mc.Controller, registry.Route[orgParams, json.RawMessage, listMembersQuery]{
		Name: "listMembers",
		Path: "/",
		Validators: []pipeline.Validator{
			pipeline.TypedParams[orgParams]("orgId"),
			pipeline.Query[listMembersQuery](listMembersSchema()),
		},
		Resolve: mc.listMembers,
	})
	mc.Create = registry.Post(mc.Controller, registry.Route[orgParams, createMemberBody, url.Values]{
		Name: "createMember",
		Path: "/",
		Validators: []pipeline.Validator{
			pipeline.TypedParams[orgParams]("orgId"),
			pipeline.Body[createMemberBody](createMemberSchema()),
		},
		Resolve: mc.createMember,
	})
	mc.Update = registry.Put(mc.Controller, registry.Route[memberParams, models.MemberPatch, url.Values]{
		Name: "updateMember",
		Path: "/{id}",
		Validators: []pipeline.Validator{
			pipeline.TypedParams[memberParams]("orgId", "id"),
			pipeline.Body[models.MemberPatch](updateMemberSchema()),
		},
		Resolve: mc.updateMember,
	})
	mc.Remove = registry.Delete(mc.Controller, registry.Route[memberParams, json.RawMessage, url.Values]{
		Name:       "removeMember",
		Path:       "/{id}",
		Validators: []pipeline.Validator{pipeline.TypedParams[memberParams]("orgId", "id")},
		Resolve:    mc.removeMember,
	})

	return mc
}

func listMembersSchema() *validators.Schema {
	return validators.NewSchema().
		Field("role", validators.String(), validators.OneOf(models.Roles...)).
		Field("offset", validators.Numeric()).
		Field("limit", validators.Numeric()).
		Field("includeRemoved", validators.String(), validators.OneOf("true", "false"))
}

func createMemberSchema() *validators.Schema {
	return validators.NewSchema().
		Field("name", validators.Required(), validators.String(), validators.MinLength(1), validators.MaxLength(200)).
		Field("email", validators.Required(), validators.String(), validators.Pattern(`^[^@\s]+@[^@\s]+$`)).
		Field("role", validators.String(), validators.OneOf(models.Roles...))
}

func updateMemberSchema() *validators.Schema {
	return validators.NewSchema().
		Field("name", validators.String(), validators.MinLength(1), validators.MaxLength(200)).
		Field("email", validators.String(), validators.Pattern(`^[^@\s]+@[^@\s]+$`)).
		Field("role", validators.String(), validators.OneOf(models.Roles...))
}

func (mc *MembersController) getMember(ctx context.Context, in pipeline.Input[memberParams, json.RawMessage, url.Values]) (models.Envelope, error) {
	if env, ok := foreignOrganization(in.Fragment, in.Params.OrgID); ok {
		return env, nil
	}

	member, err := mc.members.GetMember(ctx, in.Params.OrgID, in.Params.ID)
	if err != nil {
		return envelopeFromError(err)
	}
	return models.OK(member), nil
}

func (mc *MembersController) listMembers(ctx context.Context, in pipeline.Input[orgParams, json.RawMessage, listMembersQuery]) (models.Envelope, error) {
	if env, ok := foreignOrganization(in.Fragment, in.Params.OrgID); ok {
		return env, nil
	}

	limit := in.Query.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	page, err := mc.members.ListMembers(ctx, models.MemberFilter{
		OrganizationID: in.Params.OrgID,
		Role:           in.Query.Role,
		IncludeRemoved: in.Query.IncludeRemoved,
		Offset:         max(in.Query.Offset, 0),
		Limit:          limit,
	})
	if err != nil {
		return envelopeFromError(err)
	}
	return models.OK(page), nil
}

func (mc *MembersController) createMember(ctx context.Context, in pipeline.Input[orgParams, createMemberBody, url.Values]) (models.Envelope, error) {
	if env, ok := foreignOrganization(in.Fragment, in.Params.OrgID); ok {
		return env, nil
	}
	userID, err := pipeline.MustField[int64](in.Fragment, FieldUserID)
	if err != nil {
		return models.Envelope{}, err
	}

	member, err := mc.members.CreateMember(ctx, models.Member{
		OrganizationID: in.Params.OrgID,
		Name:           in.Body.Name,
		Email:          in.Body.Email,
		Role:           in.Body.Role,
		CreatedBy:      userID,
	})
	if err != nil {
		return envelopeFromError(err)
	}
	return models.OK(member), nil
}

func (mc *MembersController) updateMember(ctx context.Context, in pipeline.Input[memberParams, models.MemberPatch, url.Values]) (models.Envelope, error) {
	if env, ok := foreignOrganization(in.Fragment, in.Params.OrgID); ok {
		return env, nil
	}

	member, err := mc.members.UpdateMember(ctx, in.Params.OrgID, in.Params.ID, in.Body, in.Caller)
	if err != nil {
		return envelopeFromError(err)
	}
	return models.OK(member), nil
}

func (mc *MembersController) removeMember(ctx context.Context, in pipeline.Input[memberParams, json.RawMessage, url.Values]) (models.Envelope, error) {
	if env, ok := foreignOrganization(in.Fragment, in.Params.OrgID); ok {
		return env, nil
	}

	member, err := mc.members.RemoveMember(ctx, in.Params.OrgID, in.Params.ID, in.Caller)
	if err != nil {
		return envelopeFromError(err)
	}
	return models.OK(member), nil
}

// foreignOrganization answers 404 when orgID is not the caller's
// organization, so other organizations cannot be probed.
func foreignOrganization(f pipeline.Fragment, orgID string) (models.Envelope, bool) {
	callerOrg, _ := pipeline.Field[string](f, FieldOrganizationID)
	if callerOrg != orgID {
		return models.NotFound(app.MsgOrganizationNotFound), true
	}
	return models.Envelope{}, false
}
