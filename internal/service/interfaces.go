package service

import (
	"context"

	"github.com/MKhiriev/go-typed-routes/models"
)

type MemberService interface {
	GetMember(ctx context.Context, organizationID string, id int64) (models.Member, error)
	ListMembers(ctx context.Context, filter models.MemberFilter) (models.MemberPage, error)
	CreateMember(ctx context.Context, member models.Member) (models.Member, error)
	UpdateMember(ctx context.Context, organizationID string, id int64, patch models.MemberPatch, by models.Identity) (models.Member, error)
	RemoveMember(ctx context.Context, organizationID string, id int64, by models.Identity) (models.Member, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
