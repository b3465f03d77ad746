package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-typed-routes/internal/logger"
	"github.com/MKhiriev/go-typed-routes/internal/store"
	"github.com/MKhiriev/go-typed-routes/models"
)

type memberService struct {
	memberRepository store.MemberRepository

	now func() time.Time

	logger *logger.Logger
}

func NewMemberService(memberRepository store.MemberRepository, logger *logger.Logger) MemberService {
	return &memberService{
		memberRepository: memberRepository,
		now:              time.Now,
		logger:           logger,
	}
}

// GetMember returns an active member. Removed members yield ErrMemberRemoved,
// unknown ones store.ErrMemberNotFound.
func (m *memberService) GetMember(ctx context.Context, organizationID string, id int64) (models.Member, error) {
	member, err := m.memberRepository.FindMember(ctx, organizationID, id)
	if err != nil {
		return models.Member{}, fmt.Errorf("error finding member %d: %w", id, err)
	}
	if member.IsRemoved() {
		return member, ErrMemberRemoved
	}
	return member, nil
}

func (m *memberService) ListMembers(ctx context.Context, filter models.MemberFilter) (models.MemberPage, error) {
	members, total, err := m.memberRepository.ListMembers(ctx, filter)
	if err != nil {
		return models.MemberPage{}, fmt.Errorf("error listing members: %w", err)
	}

	return models.MemberPage{
		Members: members,
		Total:   total,
		Offset:  filter.Offset,
		Limit:   filter.Limit,
	}, nil
}

// CreateMember stores a new member. An empty role defaults to RoleMember.
func (m *memberService) CreateMember(ctx context.Context, member models.Member) (models.Member, error) {
	log := logger.FromContext(ctx)

	member.Name = strings.TrimSpace(member.Name)
	member.Email = strings.TrimSpace(member.Email)
	if member.OrganizationID == "" || member.Name == "" || member.Email == "" {
		log.Error().Any("member", member).Msg("invalid member data provided")
		return models.Member{}, ErrInvalidDataProvided
	}
	if member.Role == "" {
		member.Role = models.RoleMember
	}

	now := m.now().UTC()
	member.CreatedAt, member.UpdatedAt = now, now
	member.UpdatedBy = member.CreatedBy
	member.RemovedAt = nil

	created, err := m.memberRepository.CreateMember(ctx, member)
	if err != nil {
		log.Err(err).Str("organizationId", member.OrganizationID).Msg("member creation ended with error")
		return models.Member{}, fmt.Errorf("member creation ended with error: %w", err)
	}
	return created, nil
}

func (m *memberService) UpdateMember(ctx context.Context, organizationID string, id int64, patch models.MemberPatch, by models.Identity) (models.Member, error) {
	member, err := m.GetMember(ctx, organizationID, id)
	if err != nil {
		return models.Member{}, err
	}
	if patch.IsEmpty() {
		return member, nil
	}

	if patch.Name != nil {
		member.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		member.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Role != nil {
		member.Role = *patch.Role
	}
	if member.Name == "" || member.Email == "" {
		return models.Member{}, ErrInvalidDataProvided
	}
	member.UpdatedAt = m.now().UTC()
	member.UpdatedBy = by.UserID

	if err := m.memberRepository.UpdateMember(ctx, member); err != nil {
		return models.Member{}, fmt.Errorf("error updating member %d: %w", id, err)
	}
	return member, nil
}

// RemoveMember marks the member removed. Removing twice yields
// ErrMemberRemoved.
func (m *memberService) RemoveMember(ctx context.Context, organizationID string, id int64, by models.Identity) (models.Member, error) {
	member, err := m.memberRepository.RemoveMember(ctx, organizationID, id, m.now().UTC(), by.UserID)
	if errors.Is(err, store.ErrMemberAlreadyRemoved) {
		return models.Member{}, ErrMemberRemoved
	}
	if err != nil {
		return models.Member{}, fmt.Errorf("error removing member %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().
		Int64("memberId", id).
		Str("organizationId", organizationID).
		Int64("removedBy", by.UserID).
		Msg("member removed")
	return member, nil
}
