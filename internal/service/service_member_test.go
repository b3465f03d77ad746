package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-typed-routes/internal/logger"
	"github.com/MKhiriev/go-typed-routes/internal/mock"
	"github.com/MKhiriev/go-typed-routes/internal/store"
	"github.com/MKhiriev/go-typed-routes/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestMemberService(t *testing.T) (*memberService, *mock.MockMemberRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockMemberRepository(ctrl)
	svc := NewMemberService(repo, logger.Nop()).(*memberService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func ptr[T any](v T) *T { return &v }

// ───── GetMember ─────

func TestMemberService_GetMember(t *testing.T) {
	removedAt := fixedNow.Add(-time.Hour)

	tests := []struct {
		name    string
		found   models.Member
		findErr error
		wantErr error
	}{
		{name: "active", found: models.Member{ID: 1, OrganizationID: "acme"}},
		{name: "removed", found: models.Member{ID: 1, OrganizationID: "acme", RemovedAt: &removedAt}, wantErr: ErrMemberRemoved},
		{name: "not found", findErr: store.ErrMemberNotFound, wantErr: store.ErrMemberNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestMemberService(t)
			repo.EXPECT().FindMember(gomock.Any(), "acme", int64(1)).Return(tt.found, tt.findErr)

			member, err := svc.GetMember(context.Background(), "acme", 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.found, member)
		})
	}
}

// ───── ListMembers ─────

func TestMemberService_ListMembers(t *testing.T) {
	svc, repo := newTestMemberService(t)
	filter := models.MemberFilter{OrganizationID: "acme", Offset: 2, Limit: 2}
	repo.EXPECT().ListMembers(gomock.Any(), filter).Return([]models.Member{{ID: 3}, {ID: 4}}, 7, nil)

	page, err := svc.ListMembers(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, models.MemberPage{Members: []models.Member{{ID: 3}, {ID: 4}}, Total: 7, Offset: 2, Limit: 2}, page)
}

func TestMemberService_ListMembers_Error(t *testing.T) {
	svc, repo := newTestMemberService(t)
	repo.EXPECT().ListMembers(gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("boom"))

	_, err := svc.ListMembers(context.Background(), models.MemberFilter{})
	assert.ErrorContains(t, err, "boom")
}

// ───── CreateMember ─────

func TestMemberService_CreateMember(t *testing.T) {
	svc, repo := newTestMemberService(t)

	want := models.Member{
		OrganizationID: "acme",
		Name:           "Ann",
		Email:          "ann@acme.io",
		Role:           models.RoleMember,
		CreatedAt:      fixedNow,
		UpdatedAt:      fixedNow,
		CreatedBy:      9,
		UpdatedBy:      9,
	}
	repo.EXPECT().CreateMember(gomock.Any(), want).DoAndReturn(func(_ context.Context, m models.Member) (models.Member, error) {
		m.ID = 1
		return m, nil
	})

	created, err := svc.CreateMember(context.Background(), models.Member{
		OrganizationID: "acme",
		Name:           "  Ann ",
		Email:          "ann@acme.io",
		CreatedBy:      9,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, models.RoleMember, created.Role)
}

func TestMemberService_CreateMember_Invalid(t *testing.T) {
	svc, _ := newTestMemberService(t)

	_, err := svc.CreateMember(context.Background(), models.Member{OrganizationID: "acme", Name: " ", Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestMemberService_CreateMember_EmailTaken(t *testing.T) {
	svc, repo := newTestMemberService(t)
	repo.EXPECT().CreateMember(gomock.Any(), gomock.Any()).Return(models.Member{}, store.ErrEmailAlreadyExists)

	_, err := svc.CreateMember(context.Background(), models.Member{OrganizationID: "acme", Name: "Ann", Email: "a@b.c"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ───── UpdateMember ─────

func TestMemberService_UpdateMember(t *testing.T) {
	svc, repo := newTestMemberService(t)
	existing := models.Member{ID: 1, OrganizationID: "acme", Name: "Ann", Email: "ann@acme.io", Role: models.RoleMember}

	repo.EXPECT().FindMember(gomock.Any(), "acme", int64(1)).Return(existing, nil)
	repo.EXPECT().UpdateMember(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := svc.UpdateMember(context.Background(), "acme", 1,
		models.MemberPatch{Role: ptr(models.RoleAdmin)}, models.Identity{UserID: 5})

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.Equal(t, "Ann", updated.Name)
	assert.Equal(t, int64(5), updated.UpdatedBy)
	assert.Equal(t, fixedNow, updated.UpdatedAt)
}

func TestMemberService_UpdateMember_EmptyPatchIsNoop(t *testing.T) {
	svc, repo := newTestMemberService(t)
	existing := models.Member{ID: 1, OrganizationID: "acme", Name: "Ann", Email: "ann@acme.io"}
	repo.EXPECT().FindMember(gomock.Any(), "acme", int64(1)).Return(existing, nil)

	updated, err := svc.UpdateMember(context.Background(), "acme", 1, models.MemberPatch{}, models.Identity{})

	require.NoError(t, err)
	assert.Equal(t, existing, updated)
}

func TestMemberService_UpdateMember_BlankName(t *testing.T) {
	svc, repo := newTestMemberService(t)
	repo.EXPECT().FindMember(gomock.Any(), "acme", int64(1)).
		Return(models.Member{ID: 1, OrganizationID: "acme", Name: "Ann", Email: "ann@acme.io"}, nil)

	_, err := svc.UpdateMember(context.Background(), "acme", 1, models.MemberPatch{Name: ptr("  ")}, models.Identity{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ───── RemoveMember ─────

func TestMemberService_RemoveMember(t *testing.T) {
	svc, repo := newTestMemberService(t)
	removedAt := fixedNow
	repo.EXPECT().RemoveMember(gomock.Any(), "acme", int64(1), fixedNow, int64(2)).
		Return(models.Member{ID: 1, OrganizationID: "acme", RemovedAt: &removedAt, UpdatedBy: 2}, nil)

	removed, err := svc.RemoveMember(context.Background(), "acme", 1, models.Identity{UserID: 2})

	require.NoError(t, err)
	assert.True(t, removed.IsRemoved())
	assert.Equal(t, int64(2), removed.UpdatedBy)
}

func TestMemberService_RemoveMember_Twice(t *testing.T) {
	svc, repo := newTestMemberService(t)
	repo.EXPECT().RemoveMember(gomock.Any(), "acme", int64(1), fixedNow, int64(0)).
		Return(models.Member{}, store.ErrMemberAlreadyRemoved)

	_, err := svc.RemoveMember(context.Background(), "acme", 1, models.Identity{})
	assert.ErrorIs(t, err, ErrMemberRemoved)
}

func TestMemberService_RemoveMember_NotFound(t *testing.T) {
	svc, repo := newTestMemberService(t)
	repo.EXPECT().RemoveMember(gomock.Any(), "acme", int64(9), fixedNow, int64(0)).
		Return(models.Member{}, store.ErrMemberNotFound)

	_, err := svc.RemoveMember(context.Background(), "acme", 9, models.Identity{})
	assert.ErrorIs(t, err, store.ErrMemberNotFound)
	assert.NotErrorIs(t, err, ErrMemberRemoved)
}
