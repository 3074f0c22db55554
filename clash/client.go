package clash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/battiatomatteo/ClanWarMaker-static/model"
)

const ClashURL = "https://api.clashofclans.com"

var (
	ErrMissingClanTag = errors.New("clan tag is required")
	ErrClanNotFound   = errors.New("clan tag not found")
	ErrInvalidAPIKey  = errors.New("clash api key is invalid or not authorized for this IP")
)

type Client interface {
	// ClanMembers looks up the member list of a clan by tag. A single
	// attempt with no caching; any failure is returned to the caller.
	ClanMembers(ctx context.Context, clanTag string) ([]model.ClashPlayer, error)
}

type client struct {
	url        string
	token      string
	httpClient *http.Client
}

func New(token string) (Client, error) {
	c := &client{
		url:   ClashURL,
		token: token,
		// Matches the web layer's request timeout.
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	return c, nil
}

// NewForTest returns a client pointed at url instead of the real API.
func NewForTest(url, token string) Client {
	c, _ := New(token)
	c.(*client).url = url
	return c
}

func (c *client) ClanMembers(ctx context.Context, clanTag string) ([]model.ClashPlayer, error) {
	tag := cleanTag(clanTag)
	if tag == "" {
		return nil, ErrMissingClanTag
	}

	// The tag is sent with its leading '#' percent-encoded.
	url := fmt.Sprintf("%s/v1/clans/%%23%s/members", c.url, tag)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusNotFound:
		return nil, ErrClanNotFound
	case http.StatusForbidden:
		return nil, ErrInvalidAPIKey
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d from clash api: %s", resp.StatusCode, body)
	}

	var parsed struct {
		Items []clashMember `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error parsing response from clash api: %w", err)
	}
	if parsed.Items == nil {
		return nil, errors.New("clash api response has no member list")
	}

	result := make([]model.ClashPlayer, 0, len(parsed.Items))
	for _, m := range parsed.Items {
		result = append(result, *m.toClashPlayer())
	}
	return result, nil
}

func cleanTag(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = strings.TrimPrefix(tag, "#")
	return strings.ToUpper(tag)
}
