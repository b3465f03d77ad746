package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-typed-routes/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpMembersClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPMembersClient(cfg HTTPClientConfig) MembersClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpMembersClient{client: cli}
}

func (h *httpMembersClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpMembersClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpMembersClient) GetMember(ctx context.Context, organizationID string, id int64) (models.Member, error) {
	resp, err := h.authedRequest(ctx).Get(memberPath(organizationID, id))
	if err != nil {
		return models.Member{}, fmt.Errorf("get member request: %w", err)
	}
	return decode[models.Member](resp, "get member")
}

func (h *httpMembersClient) ListMembers(ctx context.Context, filter models.MemberFilter) (models.MemberPage, error) {
	query := url.Values{}
	if filter.Role != "" {
		query.Set("role", filter.Role)
	}
	if filter.Offset > 0 {
		query.Set("offset", strconv.Itoa(filter.Offset))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.IncludeRemoved {
		query.Set("includeRemoved", "true")
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(query).
		Get(membersPath(filter.OrganizationID))
	if err != nil {
		return models.MemberPage{}, fmt.Errorf("list members request: %w", err)
	}
	return decode[models.MemberPage](resp, "list members")
}

func (h *httpMembersClient) CreateMember(ctx context.Context, member models.Member) (models.Member, error) {
	body := map[string]string{"name": member.Name, "email": member.Email}
	if member.Role != "" {
		body["role"] = member.Role
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(membersPath(member.OrganizationID))
	if err != nil {
		return models.Member{}, fmt.Errorf("create member request: %w", err)
	}
	return decode[models.Member](resp, "create member")
}

func (h *httpMembersClient) UpdateMember(ctx context.Context, organizationID string, id int64, patch models.MemberPatch) (models.Member, error) {
	body := make(map[string]string, 3)
	if patch.Name != nil {
		body["name"] = *patch.Name
	}
	if patch.Email != nil {
		body["email"] = *patch.Email
	}
	if patch.Role != nil {
		body["role"] = *patch.Role
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(memberPath(organizationID, id))
	if err != nil {
		return models.Member{}, fmt.Errorf("update member request: %w", err)
	}
	return decode[models.Member](resp, "update member")
}

func (h *httpMembersClient) RemoveMember(ctx context.Context, organizationID string, id int64) (models.Member, error) {
	resp, err := h.authedRequest(ctx).Delete(memberPath(organizationID, id))
	if err != nil {
		return models.Member{}, fmt.Errorf("remove member request: %w", err)
	}
	return decode[models.Member](resp, "remove member")
}

func (h *httpMembersClient) Version(ctx context.Context) (map[string]string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return nil, fmt.Errorf("version request: %w", err)
	}
	return decode[map[string]string](resp, "version")
}

func (h *httpMembersClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func decode[T any](resp *resty.Response, op string) (T, error) {
	var out T
	if err := mapHTTPError(resp); err != nil {
		return out, err
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", op, err)
	}
	return out, nil
}

func membersPath(organizationID string) string {
	return "/orgs/" + url.PathEscape(organizationID) + "/members"
}

func memberPath(organizationID string, id int64) string {
	return membersPath(organizationID) + "/" + strconv.FormatInt(id, 10)
}
