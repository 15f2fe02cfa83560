package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is the identity assertion fetched from Google after a successful
// code exchange.
type Profile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// Exchanger runs the provider side of the OAuth dance. Handlers depend on
// this interface so tests can stub the provider out.
type Exchanger interface {
	AuthCodeURL(state string) string
	ExchangeUser(ctx context.Context, code string) (Profile, error)
}

// GoogleOAuth exchanges authorization codes for Google profiles.
type GoogleOAuth struct {
	config *oauth2.Config

	// userInfoURL is overridable in tests.
	userInfoURL string
}

func NewGoogleOAuth(clientID, clientSecret, callbackBaseURL string) *GoogleOAuth {
	return &GoogleOAuth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  callbackBaseURL + "/auth/google/callback",
			Scopes:       []string{"email", "profile"},
		},
		userInfoURL: googleUserInfoURL,
	}
}

func (g *GoogleOAuth) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state)
}

// ExchangeUser trades the authorization code for an access token and fetches
// the caller's Google profile with it.
func (g *GoogleOAuth) ExchangeUser(ctx context.Context, code string) (Profile, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return Profile{}, fmt.Errorf("token exchange failed: %w", err)
	}

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	resp, err := client.Get(g.userInfoURL)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to fetch Google user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("Google userinfo returned status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return Profile{}, fmt.Errorf("failed to decode Google user response: %w", err)
	}
	if profile.ID == "" {
		return Profile{}, fmt.Errorf("Google userinfo response missing id")
	}

	return profile, nil
}
