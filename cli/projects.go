// ABOUTME: Project listing CLI commands
// ABOUTME: Human-friendly views over materialized projects and tasks
package cli

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/planforge/planforge/db"
)

// ListProjectsCommand lists a user's materialized projects.
func ListProjectsCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("list-projects", flag.ExitOnError)
	user := fs.String("user", "", "Owner user id (required)")
	limit := fs.Int("limit", 50, "Maximum results")
	fs.Parse(args)

	if *user == "" {
		return fmt.Errorf("--user is required")
	}
	ownerID, err := uuid.Parse(*user)
	if err != nil {
		return fmt.Errorf("invalid --user id: %w", err)
	}

	projects, err := db.ListProjects(database, ownerID, *limit)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tDOMAIN\tSTART\tEND\tID")
	fmt.Fprintln(w, "-----\t------\t-----\t---\t--")

	for _, project := range projects {
		domain := project.Domain
		if domain == "" {
			domain = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			project.Title, domain,
			project.StartDate.Format("2006-01-02"), project.EndDate.Format("2006-01-02"),
			project.ID.String()[:8])
	}
	w.Flush()

	fmt.Printf("\nTotal: %d project(s)\n", len(projects))
	return nil
}

// ListTasksCommand lists the tasks of one project.
func ListTasksCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("list-tasks", flag.ExitOnError)
	project := fs.String("project", "", "Project id (required)")
	fs.Parse(args)

	if *project == "" {
		return fmt.Errorf("--project is required")
	}
	projectID, err := uuid.Parse(*project)
	if err != nil {
		return fmt.Errorf("invalid --project id: %w", err)
	}

	tasks, err := db.ListTasksByProject(database, projectID)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPRIORITY\tOWNER\tSTART\tEND\tSTATUS")
	fmt.Fprintln(w, "----\t--------\t-----\t-----\t---\t------")

	for _, task := range tasks {
		owner := task.Owner
		if owner == "" {
			owner = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			task.Name, task.Priority, owner,
			task.StartDate.Format("2006-01-02"), task.EndDate.Format("2006-01-02"),
			task.Status)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d task(s)\n", len(tasks))
	return nil
}
