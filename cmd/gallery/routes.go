package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vango-dev/gallery/pkg/router"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func routesCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Long: `Discover pages and print the routes the server would mount,
in the order they are synthesized.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.dir)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			app, err := buildApp(cmd.Context(), cfg, newLogger(cfg), nil)
			if err != nil {
				return err
			}
			if asJSON {
				return writeRoutesJSON(os.Stdout, app.Routes())
			}
			fmt.Println(routesTable(app.Routes()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print routes as JSON")

	return cmd
}

type routeJSON struct {
	Path   string `json:"path"`
	Kind   string `json:"kind"`
	Title  string `json:"title"`
	Source string `json:"source,omitempty"`
}

func writeRoutesJSON(w io.Writer, routes []router.Route) error {
	out := make([]routeJSON, 0, len(routes))
	for _, r := range routes {
		out = append(out, routeJSON{
			Path:   r.Path,
			Kind:   r.Kind.String(),
			Title:  r.Title(),
			Source: r.Source,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func routesTable(routes []router.Route) *table.Table {
	rows := make([][]string, 0, len(routes))
	for _, r := range routes {
		rows = append(rows, []string{r.Path, r.Kind.String(), r.Title(), r.Source})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("PATH", "KIND", "TITLE", "SOURCE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
