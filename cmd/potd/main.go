// Package main はCLIツールのエントリポイント。
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"potd-service/internal/domain"
	"potd-service/internal/potd"
)

const version = "1.0.0"

var (
	seed       string
	date       string
	rangeDates []string
	desFlag    bool
	format     string
	output     string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "potd",
		Short:        "ARRIS/Commscope password-of-the-day generator",
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&seed, "seed", "s", "",
		"String of 4-8 characters, used in password generation to mutate output")
	rootCmd.Flags().StringVarP(&date, "date", "d", "",
		"Generate a password for the given date (YYYY-MM-DD, defaults to today)")
	rootCmd.Flags().StringSliceVarP(&rangeDates, "range", "r", nil,
		"Generate a list of passwords given start and end dates (START,END)")
	rootCmd.Flags().BoolVarP(&desFlag, "des", "D", false,
		"Output DES representation of seed")
	rootCmd.Flags().StringVarP(&format, "format", "f", "text",
		"Password output format, either text or json")
	rootCmd.Flags().StringVarP(&output, "output", "o", "",
		"Password or list will be written to given filename")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Print output to console even when writing to file")
	rootCmd.MarkFlagsMutuallyExclusive("date", "range", "des")

	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// versionCmd はバージョン情報を表示する。
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("potd version %s\n", version)
		},
	}
}

func run(cmd *cobra.Command, args []string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("--format must be text or json, got %q", format)
	}
	if seed == "" {
		seed = potd.DefaultSeed
	}

	switch {
	case desFlag:
		rendering, err := potd.SeedToDES(seed)
		if err != nil {
			return err
		}
		if format == "json" {
			return emitJSON(map[string]string{"des": rendering})
		}
		return emit(rendering)

	case len(rangeDates) > 0:
		if len(rangeDates) != 2 {
			return fmt.Errorf("--range requires exactly 2 dates (START,END), got %d", len(rangeDates))
		}
		entries, err := potd.GenerateRange(rangeDates[0], rangeDates[1], seed)
		if err != nil {
			return err
		}
		if format == "json" {
			return emitJSON(entries)
		}
		lines := make([]string, len(entries))
		for i, e := range entries {
			lines[i] = e.Date + " " + e.Password
		}
		return emit(strings.Join(lines, "\n"))

	default:
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		password, err := potd.Generate(date, seed)
		if err != nil {
			return err
		}
		if format == "json" {
			return emitJSON(domain.PasswordEntry{Date: date, Password: password})
		}
		return emit(password)
	}
}

// emitJSON は結果をインデント付きJSONで出力する。
func emitJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return emit(string(data))
}

// emit は結果を標準出力またはファイルへ書き出す。
// 既存ファイルは上書きせずエラーにする。
// ファイル出力時は--verbose指定で標準出力にも併せて表示する。
func emit(text string) error {
	if output == "" {
		fmt.Println(text)
		return nil
	}
	f, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("writing %q: %w", output, err)
	}
	if _, err := f.WriteString(text + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("writing %q: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", output, err)
	}
	if verbose {
		fmt.Println(text)
	}
	return nil
}
