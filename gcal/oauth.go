// ABOUTME: OAuth session manager for the Google Calendar integration
// ABOUTME: Builds authorized clients from stored credentials with a one-shot refresh on expiry
package gcal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/google/uuid"
	"github.com/planforge/planforge/db"
	"github.com/planforge/planforge/models"
)

// ErrNotConnected signals that the user has no usable calendar credential
// and must go through the authorization flow (again).
var ErrNotConnected = errors.New("calendar not connected")

// expiryLeeway refreshes slightly before the stored expiry so a token
// doesn't die mid-sync.
const expiryLeeway = time.Minute

// NewOAuthConfig creates the OAuth2 config for the Google Calendar API.
// Client credentials come from GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET.
func NewOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  "http://localhost:8080/oauth/callback",
		Scopes: []string{
			"https://www.googleapis.com/auth/calendar",
		},
		Endpoint: google.Endpoint,
	}
}

// SessionManager mints per-call calendar clients from stored credentials.
type SessionManager struct {
	DB     *sql.DB
	Config *oauth2.Config

	// ClientOptions are appended when building the calendar service;
	// tests use option.WithEndpoint to point at a fake API.
	ClientOptions []option.ClientOption
}

func NewSessionManager(database *sql.DB, config *oauth2.Config) *SessionManager {
	return &SessionManager{DB: database, Config: config}
}

// AuthURL returns the URL the user must visit to authorize calendar access.
func (m *SessionManager) AuthURL(state string) string {
	return m.Config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// ExchangeCode trades an authorization code for tokens and persists the
// resulting credential for the user.
func (m *SessionManager) ExchangeCode(ctx context.Context, userID uuid.UUID, code string) error {
	token, err := m.Config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	cred := &models.OAuthCredential{
		UserID:       userID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}

	if err := db.SaveCredential(m.DB, cred); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}

	return nil
}

// Disconnect clears the stored credential.
func (m *SessionManager) Disconnect(userID uuid.UUID) error {
	return db.DeleteCredential(m.DB, userID)
}

// AcquireClient returns a calendar service authorized for the user. An
// expired access token gets exactly one refresh attempt; on success the new
// tokens are persisted, on failure the credential is cleared and the caller
// must re-authorize.
func (m *SessionManager) AcquireClient(ctx context.Context, userID uuid.UUID) (*calendar.Service, error) {
	cred, err := db.GetCredential(m.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("read credential: %w", err)
	}
	if cred == nil {
		return nil, ErrNotConnected
	}

	token := &oauth2.Token{
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
		Expiry:       cred.Expiry,
	}

	if time.Now().After(cred.Expiry.Add(-expiryLeeway)) {
		refreshed, err := m.Config.TokenSource(ctx, token).Token()
		if err != nil {
			log.Printf("token refresh failed for user %s: %v", userID, err)
			if delErr := db.DeleteCredential(m.DB, userID); delErr != nil {
				log.Printf("failed to clear stale credential for user %s: %v", userID, delErr)
			}
			return nil, ErrNotConnected
		}

		if err := db.UpdateCredentialTokens(m.DB, userID, refreshed.AccessToken, refreshed.RefreshToken, refreshed.Expiry); err != nil {
			return nil, fmt.Errorf("persist refreshed credential: %w", err)
		}
		token = refreshed
	}

	opts := append([]option.ClientOption{option.WithHTTPClient(m.Config.Client(ctx, token))}, m.ClientOptions...)

	service, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	return service, nil
}
