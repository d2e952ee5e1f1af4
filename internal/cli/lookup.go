package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	veximoji "github.com/roz0n/Veximoji"
)

// runLookup adapts a composition function to a cobra handler. A miss
// prints nothing to stdout and exits nonzero, keeping the library's
// two-outcome contract visible in the exit status.
func runLookup(kind string, lookup func(*veximoji.Composer, string) (string, bool)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		flag, ok := lookup(newComposer(), args[0])
		if !ok {
			return fmt.Errorf("no %s flag for %q", kind, args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), flag)
		return nil
	}
}

var countryCmd = &cobra.Command{
	Use:   "country <code>",
	Short: "Compose a country flag from an ISO 3166-1 alpha-2 code",
	Example: `  veximoji country US
  veximoji country jp`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup("country", (*veximoji.Composer).Country),
}

var subdivisionCmd = &cobra.Command{
	Use:   "subdivision <code>",
	Short: "Compose a subdivision flag from an ISO 3166-2 code",
	Example: `  veximoji subdivision GB-SCT
  veximoji subdivision gb-wls`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup("subdivision", (*veximoji.Composer).Subdivision),
}

var internationalCmd = &cobra.Command{
	Use:     "international <code>",
	Short:   "Compose a flag for an exceptional reservation (EU, UN)",
	Example: `  veximoji international EU`,
	Args:    cobra.ExactArgs(1),
	RunE:    runLookup("international", (*veximoji.Composer).International),
}

var culturalCmd = &cobra.Command{
	Use:   "cultural <term>",
	Short: "Compose a cultural flag from a named term",
	Long: `Compose a cultural flag from a named term.

Terms are fixed lowercase tokens: pride, trans, pirate, white, black,
crossed, triangular, racing. Unlike codes, terms are matched exactly and
never case-folded.`,
	Example: `  veximoji cultural pride
  veximoji cultural pirate`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup("cultural", func(c *veximoji.Composer, term string) (string, bool) {
		return c.Cultural(veximoji.CulturalTerm(term))
	}),
}

var flagCmd = &cobra.Command{
	Use:   "flag <identifier>",
	Short: "Compose a flag from any identifier",
	Long: `Compose a flag from an unqualified identifier, trying each kind in
priority order: country, subdivision, international, cultural.`,
	Example: `  veximoji flag US
  veximoji flag GB-ENG
  veximoji flag pirate`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup("matching", (*veximoji.Composer).Flag),
}

func init() {
	rootCmd.AddCommand(countryCmd)
	rootCmd.AddCommand(subdivisionCmd)
	rootCmd.AddCommand(internationalCmd)
	rootCmd.AddCommand(culturalCmd)
	rootCmd.AddCommand(flagCmd)
}
