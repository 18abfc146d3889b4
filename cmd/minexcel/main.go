// Package main provides the CLI entry point for minexcel-go.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/minexcel/minexcel-go/pkg/minexcel"
)

var (
	outputPath    string
	pretty        bool
	sheet         string
	templatePath  string
	templateSheet string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "minexcel",
		Short: "Extract templated table blocks from Excel files",
		Long: `minexcel-go resolves an annotated template workbook into a block layout
and applies it to data workbooks sharing that layout, producing JSON.`,
	}
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "Sheet to read (default: first sheet)")

	templateCmd := &cobra.Command{
		Use:   "template [template.xlsx]",
		Short: "Resolve a template workbook and print its layout",
		Args:  cobra.ExactArgs(1),
		RunE:  runTemplate,
	}

	readCmd := &cobra.Command{
		Use:   "read [data.xlsx...]",
		Short: "Read blocks from data workbooks using a template",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRead,
	}
	readCmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template workbook path (required)")
	readCmd.Flags().StringVar(&templateSheet, "template-sheet", "", "Sheet of the template workbook (default: first sheet)")
	readCmd.MarkFlagRequired("template")

	rootCmd.AddCommand(templateCmd, readCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTemplate(cmd *cobra.Command, args []string) error {
	tmpl, err := minexcel.ParseTemplate(args[0], minexcel.Options{Sheet: sheet})
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	return writeJSON(tmpl)
}

func runRead(cmd *cobra.Command, args []string) error {
	tmpl, err := minexcel.ParseTemplate(templatePath, minexcel.Options{Sheet: templateSheet})
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}

	// One block per input file, keyed by file name. A failing file does not
	// stop the remaining files; the command still exits nonzero.
	blocks := make(map[string]any, len(args))
	failed := 0
	for _, path := range args {
		blk, err := minexcel.ReadBlock(path, tmpl, minexcel.Options{Sheet: sheet})
		if err != nil {
			fmt.Fprintf(os.Stderr, "minexcel: %s: %v\n", path, err)
			failed++
			continue
		}
		blocks[filepath.Base(path)] = blk
	}

	if err := writeJSON(blocks); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

func writeJSON(v any) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}
