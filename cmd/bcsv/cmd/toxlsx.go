package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/varkrai/bcsv/pkg/convert"
)

// toxlsxCmd represents the toxlsx command
var toxlsxCmd = &cobra.Command{
	Use:   "toxlsx <input.bcsv>",
	Short: "Convert a BCSV file to an XLSX spreadsheet",
	Long: `Convert a BCSV file to a single-sheet XLSX spreadsheet. The output
path is overwritten if it exists.

Example:
  bcsv toxlsx stage.bcsv -o stage.xlsx --names fields.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := conversionOptions(cmd)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		outPath, _ := cmd.Flags().GetString("output")
		if outPath == "" {
			outPath = replaceExt(args[0], ".xlsx")
		}
		return convert.ToXLSX(data, outPath, opts)
	},
}

func init() {
	toxlsxCmd.Flags().StringP("output", "o", "", "Output file (default input with .xlsx extension)")
	rootCmd.AddCommand(toxlsxCmd)
}
