package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varkrai/bcsv/pkg/namehash"
)

// hashCmd represents the hash command
var hashCmd = &cobra.Command{
	Use:   "hash <name>...",
	Short: "Print the hash of one or more column names",
	Long: `Print the name hash used in BCSV field descriptors for each given
column name.

Example:
  bcsv hash pos_x pos_y
  bcsv hash --old ObjectName`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		old, _ := cmd.Flags().GetBool("old")
		fn := namehash.Calc
		if old {
			fn = namehash.CalcOld
		}
		for _, name := range args {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, namehash.Format(fn(name)))
		}
		return nil
	},
}

func init() {
	hashCmd.Flags().Bool("old", false, "Use the older-generation hash function")
	rootCmd.AddCommand(hashCmd)
}
