package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-typed-routes/models"
)

type memberKey struct {
	organizationID string
	id             int64
}

type memoryMemberRepository struct {
	mu      sync.RWMutex
	lastID  int64
	members map[memberKey]models.Member
}

// NewMemoryMemberRepository returns an empty in-memory MemberRepository.
// Ids are unique across organizations.
func NewMemoryMemberRepository() MemberRepository {
	return &memoryMemberRepository{
		members: make(map[memberKey]models.Member),
	}
}

func (r *memoryMemberRepository) CreateMember(_ context.Context, member models.Member) (models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(member) {
		return models.Member{}, fmt.Errorf("%w: %s", ErrEmailAlreadyExists, member.Email)
	}

	r.lastID++
	member.ID = r.lastID
	r.members[memberKey{member.OrganizationID, member.ID}] = member
	return member, nil
}

func (r *memoryMemberRepository) FindMember(_ context.Context, organizationID string, id int64) (models.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	member, ok := r.members[memberKey{organizationID, id}]
	if !ok {
		return models.Member{}, ErrMemberNotFound
	}
	return member, nil
}

func (r *memoryMemberRepository) ListMembers(_ context.Context, filter models.MemberFilter) ([]models.Member, int, error) {
	r.mu.RLock()
	matched := make([]models.Member, 0)
	for key, member := range r.members {
		if key.organizationID != filter.OrganizationID {
			continue
		}
		if filter.Role != "" && member.Role != filter.Role {
			continue
		}
		if member.IsRemoved() && !filter.IncludeRemoved {
			continue
		}
		matched = append(matched, member)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	start := min(max(filter.Offset, 0), total)
	end := total
	if filter.Limit > 0 {
		end = min(start+filter.Limit, total)
	}
	return matched[start:end], total, nil
}

func (r *memoryMemberRepository) UpdateMember(_ context.Context, member models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := memberKey{member.OrganizationID, member.ID}
	if _, ok := r.members[key]; !ok {
		return ErrMemberNotFound
	}
	if r.emailTaken(member) {
		return fmt.Errorf("%w: %s", ErrEmailAlreadyExists, member.Email)
	}
	r.members[key] = member
	return nil
}

func (r *memoryMemberRepository) RemoveMember(_ context.Context, organizationID string, id int64, at time.Time, by int64) (models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := memberKey{organizationID, id}
	member, ok := r.members[key]
	if !ok {
		return models.Member{}, ErrMemberNotFound
	}
	if member.IsRemoved() {
		return models.Member{}, ErrMemberAlreadyRemoved
	}

	member.RemovedAt = &at
	member.UpdatedAt = at
	member.UpdatedBy = by
	r.members[key] = member
	return member, nil
}

// emailTaken reports whether another active member of the organization uses
// member's email. Callers hold r.mu.
func (r *memoryMemberRepository) emailTaken(member models.Member) bool {
	for key, other := range r.members {
		if key.organizationID != member.OrganizationID || other.ID == member.ID || other.IsRemoved() {
			continue
		}
		if strings.EqualFold(other.Email, member.Email) {
			return true
		}
	}
	return false
}
