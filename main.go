// ABOUTME: Entry point for the planforge CLI
// ABOUTME: Routes plan, calendar and listing commands and opens the database
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/planforge/planforge/cli"
	"github.com/planforge/planforge/db"
)

const version = "0.1.0"

func main() {
	// Local .env is optional
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Show version and exit")
	dbPath := flag.String("db-path", "", "Database path (default: ~/.local/share/planforge/planforge.db)")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("planforge version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	database, err := db.OpenDatabase(getDatabasePath(*dbPath))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "generate":
		if err := cli.GeneratePlanCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "connect":
		if err := cli.ConnectCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "disconnect":
		if err := cli.DisconnectCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "list-projects":
		if err := cli.ListProjectsCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "list-tasks":
		if err := cli.ListTasksCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func getDatabasePath(dbPath string) string {
	if dbPath != "" {
		return dbPath
	}
	return filepath.Join(xdg.DataHome, "planforge", "planforge.db")
}

func printUsage() {
	fmt.Printf(`planforge v%s - AI-assisted project planning with calendar sync

USAGE:
  planforge [global flags] <command> [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --db-path <path>       Database path (default: ~/.local/share/planforge/planforge.db)

COMMANDS:
  planforge generate     Generate a plan, persist it and sync the calendar
    --user <id>             Owner user id (required)
    --title <title>         Project title (required)
    --start <date>          Start date YYYY-MM-DD (required)
    --tasks <a,b,c>         Tasks to resolve, comma-separated (required)
    --weeks <n>             Duration in weeks (default: 4)
    --description <text>    Project description
    --personnel <a,b>       Available personnel, comma-separated
    --domain <text>         Project domain/sector
    --priorities <text>     Priority notes
    --budget <text>         Budget
    --constraints <text>    Optional constraints
    --offline               Skip the inference endpoint
    --no-sync               Persist the plan without calendar sync
    --use-existing          Sync into an existing calendar
    --calendar-id <id>      Existing calendar id
    --calendar-name <name>  Name for the new calendar

  planforge connect      Authorize Google Calendar access
    --user <id>             User id (required)
    --code <code>           Authorization code (second step)

  planforge disconnect   Clear the stored calendar credential
    --user <id>             User id (required)

  planforge list-projects   List a user's projects
    --user <id>             Owner user id (required)
    --limit <n>             Max results (default: 50)

  planforge list-tasks      List a project's tasks
    --project <id>          Project id (required)

ENVIRONMENT:
  GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET   OAuth app credentials
  OPENAI_BASE_URL / OPENAI_API_KEY          Inference endpoint
  PLANNER_MODEL                             Model name

EXAMPLES:
  # Connect a user's calendar
  planforge connect --user 6f1c...

  # Generate and sync a plan
  planforge generate --user 6f1c... --title "Demo" --start 2025-01-01 --tasks "A,B,C" --weeks 2

`, version)
}
