/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/varkrai/bcsv/pkg/codec"
	"github.com/varkrai/bcsv/pkg/config"
	"github.com/varkrai/bcsv/pkg/convert"
	"github.com/varkrai/bcsv/pkg/namehash"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bcsv",
	Short: "bcsv - BCSV table converter",
	Long: `bcsv converts between the BCSV binary table format and common
exchange formats: delimited CSV text and single-sheet XLSX spreadsheets.

Conversion defaults (endianness, signedness, delimiter, name table) can be
stored in a config file; flags override it.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/bcsv/config.yaml)")
	rootCmd.PersistentFlags().StringP("endian", "e", "", "Byte order: big or little")
	rootCmd.PersistentFlags().Bool("signed", false, "Render integer columns signed")
	rootCmd.PersistentFlags().StringP("delimiter", "d", "", "CSV delimiter (single character)")
	rootCmd.PersistentFlags().StringP("names", "n", "", "Column name table file")
	rootCmd.PersistentFlags().String("sum", "", "Integrity checksum sidecar to verify payloads against")
}

// conversionOptions merges the config file with any flags the user set.
func conversionOptions(cmd *cobra.Command) (convert.Options, error) {
	var opts convert.Options

	cfg := config.DefaultConfig()
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = config.GetDefaultConfigPath()
	}
	if config.ConfigExists(cfgPath) {
		loaded, err := config.LoadConfig(cfgPath)
		if err != nil {
			return opts, err
		}
		cfg = loaded
	}

	endian := cfg.Endian
	if cmd.Flags().Changed("endian") {
		endian, _ = cmd.Flags().GetString("endian")
	}
	if endian != "" {
		e, err := codec.ParseEndianness(endian)
		if err != nil {
			return opts, err
		}
		opts.Endian = e
	}

	opts.Signed = cfg.Signed
	if cmd.Flags().Changed("signed") {
		opts.Signed, _ = cmd.Flags().GetBool("signed")
	}

	delim := cfg.Delimiter
	if cmd.Flags().Changed("delimiter") {
		delim, _ = cmd.Flags().GetString("delimiter")
	}
	if delim != "" {
		if len(delim) != 1 {
			return opts, fmt.Errorf("delimiter must be a single character, got %q", delim)
		}
		opts.Delimiter = delim[0]
	}

	namesPath := cfg.Names
	if cmd.Flags().Changed("names") {
		namesPath, _ = cmd.Flags().GetString("names")
	}
	if namesPath != "" {
		names, err := namehash.Load(namesPath, nil)
		if err != nil {
			return opts, err
		}
		opts.Names = names
	}

	opts.SumPath, _ = cmd.Flags().GetString("sum")
	return opts, nil
}
