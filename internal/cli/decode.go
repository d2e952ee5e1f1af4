package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <emoji>",
	Short: "Identify the code that composes a flag emoji",
	Long: `Identify which kind and identifier compose a flag emoji. The input
must be exactly one flag; anything else exits nonzero.`,
	Example: `  veximoji decode 🇺🇸
  veximoji decode 🏴󠁧󠁢󠁳󠁣󠁴󠁿 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decoded, ok := newComposer().Decode(args[0])
		if !ok {
			return fmt.Errorf("%q is not a flag this build can compose", args[0])
		}
		if cfg.Output.JSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(row{
				Kind: decoded.Kind.String(),
				Code: decoded.Code,
				Flag: args[0],
			})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", decoded.Kind, decoded.Code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
