// Package service implements the business logic behind the bundled example
// controllers.
package service

import (
	"github.com/MKhiriev/go-typed-routes/internal/logger"
	"github.com/MKhiriev/go-typed-routes/internal/store"
	"github.com/MKhiriev/go-typed-routes/models"
)

type Services struct {
	MemberService  MemberService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		MemberService:  NewMemberService(storages.MemberRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
