package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"emailfinder/internal/api/handler/v1handler"
	"emailfinder/internal/config"
	"emailfinder/pkg/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8f98"))
	emailStyle  = lipgloss.NewStyle().Bold(true)
	levelStyles = map[domain.Confidence]lipgloss.Style{
		domain.ConfidenceHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		domain.ConfidenceMedium: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFC107")),
		domain.ConfidenceLow:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935")),
	}
)

// renderResult writes a human readable report of res.
func renderResult(w io.Writer, res domain.FindResult) error {
	var b strings.Builder

	name := res.Profile.Name
	if res.Profile.Company != "" {
		name += " @ " + res.Profile.Company
	}
	b.WriteString(titleStyle.Render(name))
	b.WriteString("\n")

	for _, d := range res.Domains {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  domain %s (%s, %s)",
			d.Domain, strings.ToLower(string(d.Source)), strconv.FormatFloat(d.Confidence, 'f', -1, 64))))
		b.WriteString("\n")
	}

	if len(res.Emails) == 0 {
		b.WriteString(mutedStyle.Render("  no email address found"))
		b.WriteString("\n")
	}
	for _, e := range res.Emails {
		b.WriteString("  ")
		b.WriteString(levelStyles[e.Confidence].Width(7).Render(string(e.Confidence)))
		b.WriteString(" ")
		b.WriteString(emailStyle.Render(e.Email))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("          " + e.Source))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())

	return err //nolint: wrapcheck
}

// writeJSON writes res in the same shape the API returns.
func writeJSON(w io.Writer, res domain.FindResult) error {
	var e jx.Encoder
	e.SetIdent(2)
	v1handler.EncodeFindResult(&e, res)

	_, err := fmt.Fprintln(w, e.String())

	return err //nolint: wrapcheck
}

func findCommand(cfg *config.Config) *cobra.Command {
	var (
		query      domain.PersonQuery
		noHeadless bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Finds the email address of a person",
		Example: "  emailfinder find --first-name John --last-name Doe --company Acme\n" +
			"  emailfinder find --first-name Jane --last-name Roe --domains acme.io,acme.co --json",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			query.Headless = !noHeadless

			// the memo only lives for this process, nothing is persisted
			f, release, err := buildFinder(cfg, nil)
			if err != nil {
				return err
			}
			defer release()

			res, err := f.Find(ctx, query)
			if err != nil {
				return fmt.Errorf("could not find emails: %w", err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), *res)
			}

			return renderResult(cmd.OutOrStdout(), *res)
		},
	}

	cmd.Flags().StringVar(&query.FirstName, "first-name", "", "First name of the person")
	cmd.Flags().StringVar(&query.LastName, "last-name", "", "Last name of the person")
	cmd.Flags().StringVar(&query.Company, "company", "", "Company name")
	cmd.Flags().StringSliceVar(&query.ExtraDomains, "domains", nil, "Additional domains to search, comma separated")
	cmd.Flags().BoolVar(&noHeadless, "no-headless", false, "Show the browser window when the browser search engine is used")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	cmd.SilenceUsage = true

	return cmd
}
