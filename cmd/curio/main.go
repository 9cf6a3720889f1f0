// Command curio is a terminal front-end for a demo REST collection
// service: browse, create, edit, and delete records across the todos,
// posts, comments, recipes, and products collections.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/curio/internal/api"
	"github.com/smileynet/curio/internal/config"
	"github.com/smileynet/curio/internal/dashboard"
	"github.com/smileynet/curio/internal/resource"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for curio.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Browse  BrowseCmd        `cmd:"" default:"withargs" help:"Open the interactive dashboard TUI."`
	List    ListCmd          `cmd:"" help:"Fetch and print a collection."`
	Add     AddCmd           `cmd:"" help:"Create a record from field=value pairs."`
	Set     SetCmd           `cmd:"" help:"Update fields of one record."`
	Rm      RmCmd            `cmd:"" help:"Delete one record."`
}

// BrowseCmd opens the dashboard TUI.
type BrowseCmd struct {
	Resource string `help:"Resource page to open first." default:""`
}

// Run executes the browse command.
func (c *BrowseCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("browse: requires a terminal; use 'curio list' for plain output")
	}

	tag := cfg.UI.DefaultResource
	if c.Resource != "" {
		tag = c.Resource
	}

	set := newSet(cfg)
	if _, err := set.Page(tag); err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	model := dashboard.NewModel(set, tag)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}

// ListCmd fetches and prints a collection.
type ListCmd struct {
	Resource string `arg:"" help:"Resource to list (todos, posts, comments, recipes, products)."`
}

// Run executes the list command.
func (c *ListCmd) Run() error {
	page, ctx, stop, err := openPage(c.Resource)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	defer stop()

	rows, err := page.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	printRows(os.Stdout, page.Meta().Columns, rows)
	fmt.Printf("%d %s\n", len(rows), page.Meta().Tag)
	return nil
}

// AddCmd creates a record.
type AddCmd struct {
	Resource string   `arg:"" help:"Resource to add to."`
	Fields   []string `arg:"" help:"field=value pairs, e.g. todo='buy milk' userId=5."`
}

// Run executes the add command.
func (c *AddCmd) Run() error {
	page, ctx, stop, err := openPage(c.Resource)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	defer stop()

	fields, err := parsePairs(c.Fields)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}

	// Populate the cache first so the mutation demonstrably patches it
	// instead of triggering a refetch.
	before, err := page.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}

	row, err := page.Create(ctx, fields)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}

	fmt.Printf("created %s %d: %s\n", page.Meta().Singular, row.ID, strings.Join(row.Cells, "  "))
	fmt.Printf("cached %s: %d -> %d\n", page.Meta().Tag, len(before), page.Count())
	return nil
}

// SetCmd updates fields of one record.
type SetCmd struct {
	Resource string   `arg:"" help:"Resource to update."`
	ID       int      `arg:"" help:"Record id."`
	Fields   []string `arg:"" help:"field=value pairs to change."`
}

// Run executes the set command.
func (c *SetCmd) Run() error {
	page, ctx, stop, err := openPage(c.Resource)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}
	defer stop()

	fields, err := parsePairs(c.Fields)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}

	if _, err := page.Fetch(ctx); err != nil {
		return fmt.Errorf("set: %w", err)
	}

	row, err := page.Update(ctx, c.ID, fields)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}

	fmt.Printf("updated %s %d: %s\n", page.Meta().Singular, row.ID, strings.Join(row.Cells, "  "))
	return nil
}

// RmCmd deletes one record.
type RmCmd struct {
	Resource string `arg:"" help:"Resource to delete from."`
	ID       int    `arg:"" help:"Record id."`
}

// Run executes the rm command.
func (c *RmCmd) Run() error {
	page, ctx, stop, err := openPage(c.Resource)
	if err != nil {
		return fmt.Errorf("rm: %w", err)
	}
	defer stop()

	before, err := page.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("rm: %w", err)
	}

	if err := page.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("rm: %w", err)
	}

	fmt.Printf("deleted %s %d\n", page.Meta().Singular, c.ID)
	fmt.Printf("cached %s: %d -> %d\n", page.Meta().Tag, len(before), page.Count())
	return nil
}

// openPage loads config, builds the resource set, and resolves one page
// together with a signal-aware context.
func openPage(tag string) (resource.Pager, context.Context, context.CancelFunc, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	set := newSet(cfg)
	page, err := set.Page(tag)
	if err != nil {
		return nil, nil, nil, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	return page, ctx, stop, nil
}

// newSet builds the resource catalog from config.
func newSet(cfg *config.Config) *resource.Set {
	client := api.NewClient(
		api.WithBaseURL(cfg.API.BaseURL),
		api.WithTimeout(cfg.API.Timeout),
	)
	return resource.NewSet(client)
}

// loadConfig loads layered config from user and project paths with env
// overrides.
func loadConfig() (*config.Config, error) {
	var paths []string
	if userDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(userDir, "curio", "curio.yaml"))
	}
	paths = append(paths, "curio.yaml")

	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parsePairs converts field=value arguments into a field map.
func parsePairs(args []string) (map[string]string, error) {
	fields := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("argument %q is not field=value", arg)
		}
		if _, dup := fields[name]; dup {
			return nil, fmt.Errorf("field %q given twice", name)
		}
		fields[name] = value
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no field=value pairs given")
	}
	return fields, nil
}

// printRows writes an aligned table of rows to w.
func printRows(w *os.File, columns []string, rows []resource.Row) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row.Cells, "\t"))
	}
	tw.Flush()
}

func main() {
	cli := CLI{}
	kctx := kong.Parse(&cli,
		kong.Name("curio"),
		kong.Description("Browse and edit demo REST collections from the terminal."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("curio %s (%s) built %s", version, commit, date)},
	)
	kctx.FatalIfErrorf(kctx.Run())
}
