// Package ade implements a minimal client for the ADE timetable Web API, the
// XML interface exposed under jsp/webapi. The provider is treated as an
// opaque, read-only collaborator: one authenticated session per query, no
// retries, no caching.
package ade

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNoProject is returned when the provider lists no planning project.
var ErrNoProject = errors.New("ade: no project available")

// Credentials authenticate against the ADE instance.
type Credentials struct {
	Username string
	Password string
}

// Client opens authenticated sessions against one ADE instance.
type Client struct {
	baseURL     string
	credentials Credentials
	httpClient  *http.Client
}

// NewClient builds a client for the instance rooted at baseURL. When
// httpClient is nil a client with a 30 second timeout is used.
func NewClient(baseURL string, credentials Credentials, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, credentials: credentials, httpClient: httpClient}
}

// Session is an authenticated connection bound to a planning project. A
// session serves exactly one user query and must not be shared.
type Session struct {
	client    *Client
	sessionID string
}

type sessionEnvelope struct {
	ID string `xml:"id,attr"`
}

type projectsEnvelope struct {
	Projects []Project `xml:"project"`
}

type resourcesEnvelope struct {
	Resources []Resource `xml:"resource"`
}

type eventsEnvelope struct {
	Events []Event `xml:"event"`
}

// Open connects, lists the planning projects and selects the first one, the
// way the upstream expects each conversation to begin.
func (c *Client) Open(ctx context.Context) (*Session, error) {
	if c == nil {
		return nil, fmt.Errorf("ade: client is nil")
	}

	var connected sessionEnvelope
	err := c.call(ctx, "connect", url.Values{
		"login":    {c.credentials.Username},
		"password": {c.credentials.Password},
	}, &connected)
	if err != nil {
		return nil, fmt.Errorf("ade: connect: %w", err)
	}
	if connected.ID == "" {
		return nil, fmt.Errorf("ade: connect returned no session id")
	}

	session := &Session{client: c, sessionID: connected.ID}

	var projects projectsEnvelope
	if err := session.call(ctx, "getProjects", nil, &projects); err != nil {
		return nil, fmt.Errorf("ade: getProjects: %w", err)
	}
	if len(projects.Projects) == 0 {
		return nil, ErrNoProject
	}

	params := url.Values{"projectId": {strconv.Itoa(projects.Projects[0].ID)}}
	if err := session.call(ctx, "setProject", params, nil); err != nil {
		return nil, fmt.Errorf("ade: setProject: %w", err)
	}

	return session, nil
}

// Resources lists catalog resources at the requested detail level.
func (s *Session) Resources(ctx context.Context, opts ResourceOptions) ([]Resource, error) {
	params := url.Values{"detail": {strconv.Itoa(opts.Detail)}}
	if opts.ID != nil {
		params.Set("id", strconv.Itoa(*opts.ID))
	}
	if opts.Category != "" {
		params.Set("category", opts.Category)
	}

	var envelope resourcesEnvelope
	if err := s.call(ctx, "getResources", params, &envelope); err != nil {
		return nil, fmt.Errorf("ade: getResources: %w", err)
	}
	return envelope.Resources, nil
}

// Events lists the events of a day, optionally narrowed to one resource.
func (s *Session) Events(ctx context.Context, opts EventOptions) ([]Event, error) {
	params := url.Values{
		"date":   {opts.Date},
		"detail": {strconv.Itoa(opts.Detail)},
	}
	if opts.Resources != nil {
		params.Set("resources", strconv.Itoa(*opts.Resources))
	}

	var envelope eventsEnvelope
	if err := s.call(ctx, "getEvents", params, &envelope); err != nil {
		return nil, fmt.Errorf("ade: getEvents: %w", err)
	}
	return envelope.Events, nil
}

// Close tears the session down on the provider side.
func (s *Session) Close(ctx context.Context) error {
	if err := s.call(ctx, "disconnect", nil, nil); err != nil {
		return fmt.Errorf("ade: disconnect: %w", err)
	}
	return nil
}

func (s *Session) call(ctx context.Context, function string, params url.Values, out any) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("session not initialised")
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("sessionId", s.sessionID)
	return s.client.call(ctx, function, params, out)
}

func (c *Client) call(ctx context.Context, function string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("function", function)

	endpoint := fmt.Sprintf("%s/jsp/webapi?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		_, err := io.Copy(io.Discard, resp.Body)
		return err
	}

	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", function, err)
	}
	return nil
}
