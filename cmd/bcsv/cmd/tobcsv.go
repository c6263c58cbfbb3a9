package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/varkrai/bcsv/pkg/codec"
	"github.com/varkrai/bcsv/pkg/convert"
)

// tobcsvCmd represents the tobcsv command
var tobcsvCmd = &cobra.Command{
	Use:   "tobcsv <input.csv>",
	Short: "Encode a CSV file as BCSV",
	Long: `Encode a CSV file as a BCSV payload. The first CSV record must be
the column schema, one "name:Type" label per column.

Example:
  bcsv tobcsv stage.csv -o stage.bcsv --endian little --include 0,1,3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := conversionOptions(cmd)
		if err != nil {
			return err
		}
		include, _ := cmd.Flags().GetIntSlice("include")
		if len(include) > 0 {
			opts.Mask = selectionFrom(include)
		}

		out, err := convert.FromCSVFile(args[0], opts)
		if err != nil {
			return err
		}

		outPath, _ := cmd.Flags().GetString("output")
		if outPath == "" {
			outPath = replaceExt(args[0], ".bcsv")
		}
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		return nil
	},
}

// selectionFrom builds a column selection including exactly the given
// zero-based column indexes.
func selectionFrom(include []int) codec.Selection {
	max := 0
	for _, i := range include {
		if i > max {
			max = i
		}
	}
	sel := make(codec.Selection, max/8+1)
	for _, i := range include {
		sel.Set(i)
	}
	return sel
}

func replaceExt(path, ext string) string {
	if e := filepath.Ext(path); e != "" && e != filepath.Base(path) {
		return strings.TrimSuffix(path, e) + ext
	}
	return path + ext
}

func init() {
	tobcsvCmd.Flags().StringP("output", "o", "", "Output file (default input with .bcsv extension)")
	tobcsvCmd.Flags().IntSlice("include", nil, "Column indexes to include in rendered output (default all)")
	rootCmd.AddCommand(tobcsvCmd)
}
