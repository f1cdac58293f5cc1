// ABOUTME: Calendar authorization CLI commands
// ABOUTME: Connects a user to Google Calendar and clears credentials on disconnect
package cli

import (
	"context"
	"database/sql"
	"flag"
	"fmt"

	"github.com/google/uuid"
	"github.com/planforge/planforge/gcal"
)

// ConnectCommand starts or completes the calendar authorization flow. With
// no code it prints the authorization URL; with --code it exchanges and
// persists the credential.
func ConnectCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("connect", flag.ExitOnError)
	user := fs.String("user", "", "User id (required)")
	code := fs.String("code", "", "Authorization code from the consent screen")
	fs.Parse(args)

	if *user == "" {
		return fmt.Errorf("--user is required")
	}
	userID, err := uuid.Parse(*user)
	if err != nil {
		return fmt.Errorf("invalid --user id: %w", err)
	}

	manager := gcal.NewSessionManager(database, gcal.NewOAuthConfig())

	if *code == "" {
		fmt.Println("Visit this URL to authorize calendar access:")
		fmt.Println()
		fmt.Println("  " + manager.AuthURL(userID.String()))
		fmt.Println()
		fmt.Println("Then run: planforge connect --user <id> --code <code>")
		return nil
	}

	if err := manager.ExchangeCode(context.Background(), userID, *code); err != nil {
		return fmt.Errorf("failed to connect calendar: %w", err)
	}

	fmt.Printf("✓ Calendar connected for user %s\n", userID)
	return nil
}

// DisconnectCommand clears the stored calendar credential.
func DisconnectCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("disconnect", flag.ExitOnError)
	user := fs.String("user", "", "User id (required)")
	fs.Parse(args)

	if *user == "" {
		return fmt.Errorf("--user is required")
	}
	userID, err := uuid.Parse(*user)
	if err != nil {
		return fmt.Errorf("invalid --user id: %w", err)
	}

	manager := gcal.NewSessionManager(database, gcal.NewOAuthConfig())
	if err := manager.Disconnect(userID); err != nil {
		return fmt.Errorf("failed to disconnect calendar: %w", err)
	}

	fmt.Printf("✓ Calendar disconnected for user %s\n", userID)
	return nil
}
