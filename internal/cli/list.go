package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	veximoji "github.com/roz0n/Veximoji"
)

// row is one list entry, shared by the table and JSON renderers and by
// the browse TUI.
type row struct {
	Kind string `json:"kind"`
	Code string `json:"code"`
	Flag string `json:"flag"`
}

// collectRows gathers every identifier of the requested kinds, in kind
// priority order, each kind's identifiers sorted.
func collectRows(c *veximoji.Composer, kinds []veximoji.FlagKind) []row {
	var rows []row
	for _, kind := range kinds {
		switch kind {
		case veximoji.KindCountry:
			for _, code := range c.CountryCodes() {
				if flag, ok := c.Country(code); ok {
					rows = append(rows, row{kind.String(), code, flag})
				}
			}
		case veximoji.KindSubdivision:
			for _, code := range c.SubdivisionCodes() {
				if flag, ok := c.Subdivision(code); ok {
					rows = append(rows, row{kind.String(), code, flag})
				}
			}
		case veximoji.KindInternational:
			for _, code := range c.InternationalCodes() {
				if flag, ok := c.International(code); ok {
					rows = append(rows, row{kind.String(), code, flag})
				}
			}
		case veximoji.KindCultural:
			for _, term := range c.CulturalTerms() {
				if flag, ok := c.Cultural(term); ok {
					rows = append(rows, row{kind.String(), string(term), flag})
				}
			}
		}
	}
	return rows
}

// parseKind maps a CLI argument to a flag kind.
func parseKind(arg string) (veximoji.FlagKind, error) {
	switch strings.ToLower(arg) {
	case "country", "countries":
		return veximoji.KindCountry, nil
	case "subdivision", "subdivisions":
		return veximoji.KindSubdivision, nil
	case "international":
		return veximoji.KindInternational, nil
	case "cultural":
		return veximoji.KindCultural, nil
	default:
		return 0, fmt.Errorf("unknown kind %q (want country, subdivision, international, or cultural)", arg)
	}
}

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true)
	listKindStyle   = lipgloss.NewStyle().Faint(true)
)

// renderTable prints rows in aligned columns. Emoji flags are wider than
// one terminal cell, so padding uses the rendered cell width rather than
// the rune count.
func renderTable(w io.Writer, rows []row, color bool) {
	const flagCol = 4

	header := fmt.Sprintf("%-*s %-8s %s", flagCol, "FLAG", "CODE", "KIND")
	if color {
		header = listHeaderStyle.Render(header)
	}
	fmt.Fprintln(w, header)

	for _, r := range rows {
		pad := flagCol - veximoji.Width(r.Flag)
		if pad < 0 {
			pad = 0
		}
		kind := r.Kind
		if color {
			kind = listKindStyle.Render(kind)
		}
		fmt.Fprintf(w, "%s%s %-8s %s\n", r.Flag, strings.Repeat(" ", pad+1), r.Code, kind)
	}
}

var listCmd = &cobra.Command{
	Use:   "list [kind]",
	Short: "List all identifiers and their flags",
	Long: `List every identifier this build can compose, with its flag.

With no argument all kinds are listed in dispatch priority order. Pass a
kind (country, subdivision, international, cultural) to list just one.`,
	Example: `  veximoji list
  veximoji list cultural
  veximoji list countries --json | jq '.[].code'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds := veximoji.Kinds()
		if len(args) == 1 {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			kinds = []veximoji.FlagKind{kind}
		}

		rows := collectRows(newComposer(), kinds)
		if cfg.Output.JSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			return enc.Encode(rows)
		}
		renderTable(cmd.OutOrStdout(), rows, cfg.Output.Color)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
