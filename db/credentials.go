// ABOUTME: OAuth credential store adapter
// ABOUTME: Reads and writes the one-per-user calendar credential with an optimistic expiry guard
package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/planforge/planforge/models"
)

// GetCredential returns the stored credential for a user, or nil when the
// user never authorized the external calendar.
func GetCredential(db *sql.DB, userID uuid.UUID) (*models.OAuthCredential, error) {
	cred := &models.OAuthCredential{}

	err := db.QueryRow(`
		SELECT user_id, access_token, refresh_token, expiry, created_at, updated_at
		FROM oauth_credentials WHERE user_id = ?
	`, userID.String()).Scan(
		&cred.UserID,
		&cred.AccessToken,
		&cred.RefreshToken,
		&cred.Expiry,
		&cred.CreatedAt,
		&cred.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return cred, nil
}

// SaveCredential upserts the credential after a fresh authorization.
func SaveCredential(db *sql.DB, cred *models.OAuthCredential) error {
	now := time.Now()
	cred.UpdatedAt = now
	if cred.CreatedAt.IsZero() {
		cred.CreatedAt = now
	}

	_, err := db.Exec(`
		INSERT INTO oauth_credentials (user_id, access_token, refresh_token, expiry, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			expiry = excluded.expiry,
			updated_at = excluded.updated_at
	`, cred.UserID.String(), cred.AccessToken, cred.RefreshToken, cred.Expiry, cred.CreatedAt, cred.UpdatedAt)

	return err
}

// UpdateCredentialTokens persists refreshed tokens. The expiry guard keeps a
// slow refresh from overwriting a fresher token written by a concurrent run.
func UpdateCredentialTokens(db *sql.DB, userID uuid.UUID, accessToken, refreshToken string, expiry time.Time) error {
	_, err := db.Exec(`
		UPDATE oauth_credentials
		SET access_token = ?, refresh_token = CASE WHEN ? != '' THEN ? ELSE refresh_token END,
			expiry = ?, updated_at = ?
		WHERE user_id = ? AND expiry < ?
	`, accessToken, refreshToken, refreshToken, expiry, time.Now(), userID.String(), expiry)

	return err
}

// DeleteCredential clears the stored credential on explicit disconnect.
func DeleteCredential(db *sql.DB, userID uuid.UUID) error {
	_, err := db.Exec(`DELETE FROM oauth_credentials WHERE user_id = ?`, userID.String())
	return err
}
