package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/varkrai/bcsv/pkg/integrity"
)

// sumCmd represents the sum command
var sumCmd = &cobra.Command{
	Use:   "sum <file>",
	Short: "Write an integrity checksum sidecar for a file",
	Long: `Compute the SHA-256 checksum of a file and write it to a sidecar,
suitable for later verification with the --sum flag.

Example:
  bcsv sum stage.bcsv
  bcsv tocsv stage.bcsv --sum stage.bcsv.sha256`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		outPath, _ := cmd.Flags().GetString("output")
		if outPath == "" {
			outPath = args[0] + ".sha256"
		}
		if err := integrity.WriteSum(data, outPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%x  %s\n", integrity.Sum(data), args[0])
		return nil
	},
}

func init() {
	sumCmd.Flags().StringP("output", "o", "", "Sidecar file (default <file>.sha256)")
	rootCmd.AddCommand(sumCmd)
}
