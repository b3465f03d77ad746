// Package registry binds typed pipeline endpoints to HTTP methods and paths.
//
// A Factory carries the collaborators shared by every endpoint of a service
// (injector, logger, tracer). Factory.Controller opens a controller under a
// base path; Get, Post, Put and Delete register endpoints on it, and
// Controller.Apply mounts the controller on a chi router. A controller is
// frozen once applied.
//
//	members := factory.Controller("members", "/orgs/{orgId}/members")
//	getMember := registry.Get(members, registry.Route[Params, json.RawMessage, url.Values]{
//		Name:       "getMember",
//		Path:       "/{id}",
//		Validators: []pipeline.Validator{pipeline.TypedParams[Params]("orgId", "id")},
//		Resolve:    resolveMember,
//	})
//	members.Apply(router)
//
//	// tests call the resolver directly
//	env, err := getMember.Test(ctx, pipeline.Input[Params, json.RawMessage, url.Values]{...})
package registry
