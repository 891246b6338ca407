package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vango-dev/gallery/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// rootOptions holds flags shared by every command.
type rootOptions struct {
	dir string
}

func main() {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "gallery",
		Short: "Serve a directory of pages as a website",
		Long: `Gallery serves Markdown and HTML pages as a website.

Every file under the artifacts root becomes a page at a URL derived from
its path. Folders without a page of their own get a generated listing,
and "/" lists everything.

Configuration is read from gallery.json and .env in --dir, and from
GALLERY_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "d", ".", "Directory containing gallery.json")

	rootCmd.AddCommand(
		serveCmd(opts),
		routesCmd(opts),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.FormatAny(err))
		os.Exit(1)
	}
}

// printBanner prints the product name.
func printBanner() {
	fmt.Println()
	fmt.Println("  " + bannerStyle.Render("gallery") + " " + mutedStyle.Render(version))
	fmt.Println()
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("%s %s\n", successStyle.Render("✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("%s %s\n", warnStyle.Render("!"), fmt.Sprintf(format, args...))
}
