package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/agendasync/internal/apperr"
	"github.com/iudanet/agendasync/pkg/api"
)

// DefaultTimeout дедлайн запроса, если в конфигурации не задан другой
const DefaultTimeout = 30 * time.Second

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент. timeout <= 0 означает DefaultTimeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SignInAnonymous создает анонимного principal и возвращает его токены
func (c *Client) SignInAnonymous(ctx context.Context, req api.AnonymousSignInRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/anonymous", "", req, &resp); err != nil {
		return nil, fmt.Errorf("sign in request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обменивает refresh token на новую пару токенов
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", refreshToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// CreateGroup создает группу (только platform admin)
func (c *Client) CreateGroup(ctx context.Context, token string, req api.CreateGroupRequest) (*api.CreateGroupResponse, error) {
	var resp api.CreateGroupResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/groups", token, req, &resp); err != nil {
		return nil, fmt.Errorf("create group request failed: %w", err)
	}
	return &resp, nil
}

// JoinGroup вступает в группу по коду и секрету
func (c *Client) JoinGroup(ctx context.Context, token string, req api.JoinGroupRequest) (*api.JoinGroupResponse, error) {
	var resp api.JoinGroupResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/groups/join", token, req, &resp); err != nil {
		return nil, fmt.Errorf("join group request failed: %w", err)
	}
	return &resp, nil
}

// SetMemberRole меняет роль участника группы
func (c *Client) SetMemberRole(ctx context.Context, token, groupID, principalID, role string) error {
	path := fmt.Sprintf("/api/v1/groups/%s/members/%s/role", url.PathEscape(groupID), url.PathEscape(principalID))
	if err := c.doRequest(ctx, http.MethodPut, path, token, api.SetRoleRequest{Role: role}, nil); err != nil {
		return fmt.Errorf("set role request failed: %w", err)
	}
	return nil
}

// GetMembership возвращает членство principal в группе
func (c *Client) GetMembership(ctx context.Context, token, groupID, principalID string) (*api.Membership, error) {
	var resp api.Membership
	path := fmt.Sprintf("/api/v1/groups/%s/members/%s", url.PathEscape(groupID), url.PathEscape(principalID))
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get membership request failed: %w", err)
	}
	return &resp, nil
}

// UpdateAgenda выполняет CAS запись документа и возвращает новую версию
func (c *Client) UpdateAgenda(ctx context.Context, token, groupID, agendaID string, req api.UpdateAgendaRequest) (int64, error) {
	var resp api.UpdateAgendaResponse
	if err := c.doRequest(ctx, http.MethodPut, agendaPath(groupID, agendaID), token, req, &resp); err != nil {
		return 0, fmt.Errorf("update agenda request failed: %w", err)
	}
	return resp.Version, nil
}

// UpdateAgendaForce записывает документ без проверки версии
func (c *Client) UpdateAgendaForce(ctx context.Context, token, groupID, agendaID string, payload api.AgendaPayload) (int64, error) {
	var resp api.UpdateAgendaResponse
	req := api.UpdateAgendaForceRequest{Payload: payload}
	if err := c.doRequest(ctx, http.MethodPut, agendaPath(groupID, agendaID)+"/force", token, req, &resp); err != nil {
		return 0, fmt.Errorf("force update request failed: %w", err)
	}
	return resp.Version, nil
}

// FetchAgenda возвращает авторитетную копию документа
func (c *Client) FetchAgenda(ctx context.Context, token, groupID, agendaID string) (*api.Agenda, error) {
	var resp api.Agenda
	if err := c.doRequest(ctx, http.MethodGet, agendaPath(groupID, agendaID), token, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch agenda request failed: %w", err)
	}
	return &resp, nil
}

// FetchAgendas возвращает документы группы, измененные после курсора since.
// since = 0 возвращает все документы
func (c *Client) FetchAgendas(ctx context.Context, token, groupID string, since int64) (*api.AgendaListResponse, error) {
	var resp api.AgendaListResponse
	path := fmt.Sprintf("/api/v1/groups/%s/agendas", url.PathEscape(groupID))
	if since > 0 {
		path += "?since=" + strconv.FormatInt(since, 10)
	}
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch agendas request failed: %w", err)
	}
	return &resp, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", "", nil, nil); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

func agendaPath(groupID, agendaID string) string {
	return fmt.Sprintf("/api/v1/groups/%s/agendas/%s", url.PathEscape(groupID), url.PathEscape(agendaID))
}

// doRequest выполняет HTTP запрос. Ответ сервера с ошибкой превращается в *apperr.Error,
// ошибки транспорта возвращаются как есть
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func decodeError(status int, body []byte) error {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && (errResp.Code != "" || errResp.Error != "") {
		msg := errResp.Message
		if msg == "" {
			msg = errResp.Error
		}
		return apperr.FromHTTP(status, errResp.Code, msg)
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return apperr.FromHTTP(status, "", msg)
}
