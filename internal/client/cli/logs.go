package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/iudanet/codehours/internal/models"
	"github.com/iudanet/codehours/internal/validation"
	pkgapi "github.com/iudanet/codehours/pkg/api"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fs := c.newFlagSet("add")
	date := fs.StringP("date", "d", "", "day in YYYY-MM-DD format (default today)")
	hours := fs.Float64P("hours", "H", 0, "hours spent (required)")
	project := fs.StringP("project", "p", "", "project name (default General)")
	notes := fs.StringP("notes", "n", "", "free-form notes")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if !fs.Changed("hours") {
		return fmt.Errorf("missing --hours. Usage: codehours add --hours 2.5 [--date YYYY-MM-DD] [--project NAME] [--notes TEXT]")
	}

	day := models.DateOf(c.now())
	if *date != "" {
		parsed, err := validation.ParseOptionalDate("date", *date)
		if err != nil {
			return err
		}
		day = *parsed
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	req := pkgapi.CreateLogRequest{
		Date:  day.String(),
		Hours: hours,
	}
	if fs.Changed("project") {
		req.Project = project
	}
	if fs.Changed("notes") {
		req.Notes = notes
	}

	entry, err := c.api.CreateLog(ctx, session.Token, req)
	if err != nil {
		return c.wrapAuthError(err)
	}

	c.io.Println("✓ Entry added")
	c.io.Println()
	return c.render(entryTemplate, entry)
}

func (c *Cli) runList(ctx context.Context, args []string) error {
	fs := c.newFlagSet("list")
	startFlag := fs.StringP("start", "s", "", "first day, inclusive (YYYY-MM-DD)")
	endFlag := fs.StringP("end", "e", "", "last day, inclusive (YYYY-MM-DD)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	start, err := validation.ParseOptionalDate("start", *startFlag)
	if err != nil {
		return err
	}
	end, err := validation.ParseOptionalDate("end", *endFlag)
	if err != nil {
		return err
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	entries, err := c.api.ListLogs(ctx, session.Token, start, end)
	if err != nil {
		return c.wrapAuthError(err)
	}

	c.io.Println("=== Logged Hours ===")
	c.io.Println()

	if len(entries) == 0 {
		c.io.Println("No entries found.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tHOURS\tPROJECT\tNOTES\tID")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\t%s\n", e.Date, e.Hours, e.Project, oneLine(e.Notes), e.ID)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	return c.render(summaryTemplate, summarize(entries))
}

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	fs := c.newFlagSet("update")
	date := fs.StringP("date", "d", "", "new day (YYYY-MM-DD)")
	hours := fs.Float64P("hours", "H", 0, "new hours")
	project := fs.StringP("project", "p", "", "new project")
	notes := fs.StringP("notes", "n", "", "new notes (empty string clears)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		return fmt.Errorf("missing entry ID. Usage: codehours update <id> [--date] [--hours] [--project] [--notes]")
	}
	id := fs.Arg(0)

	var req pkgapi.UpdateLogRequest
	if fs.Changed("date") {
		parsed, err := validation.ParseOptionalDate("date", *date)
		if err != nil {
			return err
		}
		if parsed != nil {
			req.Date = parsed.String()
		}
	}
	if fs.Changed("hours") {
		req.Hours = hours
	}
	if fs.Changed("project") {
		req.Project = *project
	}
	if fs.Changed("notes") {
		req.Notes = notes
	}

	if req.Date == "" && req.Hours == nil && req.Project == "" && req.Notes == nil {
		return fmt.Errorf("nothing to update. Pass at least one of --date, --hours, --project, --notes")
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	entry, err := c.api.UpdateLog(ctx, session.Token, id, req)
	if err != nil {
		return c.wrapAuthError(err)
	}

	c.io.Println("✓ Entry updated")
	c.io.Println()
	return c.render(entryTemplate, entry)
}

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing entry ID. Usage: codehours delete <id>")
	}
	id := args[0]

	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	if err := c.api.DeleteLog(ctx, session.Token, id); err != nil {
		return c.wrapAuthError(err)
	}

	c.io.Printf("✓ Entry %s deleted\n", id)
	return nil
}

// oneLine схлопывает переводы строк, чтобы не ломать таблицу
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
