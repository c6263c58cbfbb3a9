package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/varkrai/bcsv/pkg/convert"
)

// tocsvCmd represents the tocsv command
var tocsvCmd = &cobra.Command{
	Use:   "tocsv <input.bcsv>",
	Short: "Convert a BCSV file to CSV",
	Long: `Convert a BCSV file to delimited text on stdout or into a file.

Example:
  bcsv tocsv stage.bcsv -o stage.csv --names fields.txt --signed`,
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
		out, err := convert.ToCSV(data, opts)
		if err != nil {
			return err
		}

		outPath, _ := cmd.Flags().GetString("output")
		if outPath == "" {
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		return nil
	},
}

func init() {
	tocsvCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(tocsvCmd)
}
