package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-dws/ast"
	"github.com/cwbudde/go-dws/cmd/jsast/internal/batch"
	"github.com/cwbudde/go-dws/errors"
	"github.com/cwbudde/go-dws/printer"
)

var (
	printPretty         bool
	printMaintainLineno bool
	printWrite          bool
	printList           bool
	printDiff           bool
	printRecursive      bool
)

var printCmd = &cobra.Command{
	Use:   "print [files or directories...]",
	Short: "Render a serialized syntax tree back to source",
	Long: `print reads one or more JSON tree-interchange files (see
ast.Decode), renders each with the printer package, and by default
writes the rendered source to stdout.

Usage:
  jsast print tree.ast.json           # render to stdout
  jsast print -w tree.ast.json        # write rendered source alongside the tree
  jsast print -r trees/               # render every *.ast.json under trees/
  cat tree.ast.json | jsast print     # read the tree from stdin

Flags:
  --pretty           use multi-line, spaced-out rendering
  --maintain-lineno  pad output so line numbers track each node's source line
  -w                 write the rendered source to the sibling .js file (foo.ast.json -> foo.js) instead of stdout
  -l                 list files whose rendered source differs from what's on disk
  -d                 show the rendered source as a diff against the sibling source file
  -r                 process directories recursively`,
	RunE: runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)

	printCmd.Flags().BoolVar(&printPretty, "pretty", false, "use pretty (multi-line, spaced) rendering")
	printCmd.Flags().BoolVar(&printMaintainLineno, "maintain-lineno", false, "pad output to track source line numbers")
	printCmd.Flags().BoolVarP(&printWrite, "write", "w", false, "write rendered source to a sibling file")
	printCmd.Flags().BoolVarP(&printList, "list", "l", false, "list files whose rendered source would change")
	printCmd.Flags().BoolVarP(&printDiff, "diff", "d", false, "show a diff against the sibling source file")
	printCmd.Flags().BoolVarP(&printRecursive, "recursive", "r", false, "process directories recursively")
}

func runPrint(cmd *cobra.Command, args []string) error {
	if printWrite && printList {
		return fmt.Errorf("cannot use -w and -l together")
	}
	if printWrite && printDiff {
		return fmt.Errorf("cannot use -w and -d together")
	}

	opts := resolvePrintOptions()

	if len(args) == 0 {
		return printStdin(opts)
	}

	files, err := batch.Collect(args, printRecursive, cfg.Batch.IncludeGlobs, cfg.Batch.IgnoreFile)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if len(files) > 1 {
		bar = progressbar.Default(int64(len(files)), "printing")
	}

	hasErrors := false
	for _, path := range files {
		if err := printFile(path, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
			hasErrors = true
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if hasErrors {
		return fmt.Errorf("printing failed for one or more files")
	}
	return nil
}

func resolvePrintOptions() printer.Options {
	opts := printer.None
	if printPretty || cfg.Print.Pretty {
		opts |= printer.Pretty
	}
	if printMaintainLineno || cfg.Print.MaintainLineno {
		opts |= printer.MaintainLineno
	}
	return opts
}

func printStdin(opts printer.Options) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	rendered, err := renderTree(string(data), "<stdin>", opts)
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}

func printFile(path string, opts printer.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	rendered, err := renderTree(string(data), path, opts)
	if err != nil {
		return err
	}

	sibling := siblingSourcePath(path)
	var original string
	if existing, err := os.ReadFile(sibling); err == nil {
		original = string(existing)
	}
	changed := original != rendered

	switch {
	case printList:
		if changed {
			fmt.Println(path)
		}
	case printDiff:
		if changed {
			fmt.Printf("--- %s\n+++ %s (rendered)\n", sibling, sibling)
			showDiff(original, rendered)
		}
	case printWrite:
		if changed {
			if err := os.WriteFile(sibling, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("writing file: %w", err)
			}
			if verbose {
				fmt.Printf("Wrote %s\n", sibling)
			}
		}
	default:
		fmt.Print(rendered)
	}
	return nil
}

// siblingSourcePath derives the rendered-source path for a tree file,
// e.g. "foo.ast.json" -> "foo.js", falling back to appending ".js" for
// any other extension.
func siblingSourcePath(treePath string) string {
	if strings.HasSuffix(treePath, ".ast.json") {
		return strings.TrimSuffix(treePath, ".ast.json") + ".js"
	}
	return treePath + ".js"
}

func renderTree(data, label string, opts printer.Options) (string, error) {
	node, err := ast.Decode(data)
	if err != nil {
		return "", errors.FromNode(nil, err, data, label)
	}
	return printer.New(opts).Print(node), nil
}

// showDiff shows a simple line-by-line diff between two rendered texts.
func showDiff(original, rendered string) {
	origLines := strings.Split(original, "\n")
	newLines := strings.Split(rendered, "\n")

	max := len(origLines)
	if len(newLines) > max {
		max = len(newLines)
	}
	for i := 0; i < max; i++ {
		var o, n string
		if i < len(origLines) {
			o = origLines[i]
		}
		if i < len(newLines) {
			n = newLines[i]
		}
		if o != n {
			if o != "" {
				fmt.Printf("- %s\n", o)
			}
			if n != "" {
				fmt.Printf("+ %s\n", n)
			}
		}
	}
}
