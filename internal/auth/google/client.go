package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"tripplanner/pkg/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is the subset of the Google userinfo response the service needs.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Client drives the OAuth authorization-code flow against Google.
type Client struct {
	oauth *oauth2.Config
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  callbackURL(cfg.PublicBaseURL),
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
	}
}

func callbackURL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + config.GoogleCallbackPath
}

// AuthURL returns the consent-screen redirect target. The account chooser is
// always shown so a shared browser can switch accounts.
func (c *Client) AuthURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// FetchProfile exchanges the authorization code and reads the userinfo
// endpoint with the resulting token.
func (c *Client) FetchProfile(ctx context.Context, code string) (*Profile, error) {
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	resp, err := c.oauth.Client(ctx, token).Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("userinfo response missing subject id")
	}

	return &profile, nil
}
