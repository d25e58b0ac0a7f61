package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-dws/ast"
	"github.com/cwbudde/go-dws/cmd/jsast/internal/batch"
	"github.com/cwbudde/go-dws/errors"
	"github.com/cwbudde/go-dws/printer"
	"github.com/cwbudde/go-dws/reducer"
)

var (
	reduceFixpoint bool
	reduceExplain  bool
	reducePrint    bool
	reduceWrite    bool
	reduceRecursive bool
)

var reduceCmd = &cobra.Command{
	Use:   "reduce [files or directories...]",
	Short: "Constant-fold and dead-branch-eliminate a serialized syntax tree",
	Long: `reduce reads one or more JSON tree-interchange files, runs the
bottom-up folding rules over each tree, and by default writes the
reduced tree back out as JSON.

Usage:
  jsast reduce tree.ast.json             # reduce, print reduced JSON to stdout
  jsast reduce --fixpoint tree.ast.json  # iterate folding to a fixed point
  jsast reduce --print tree.ast.json     # render the reduced tree as source instead
  jsast reduce -w tree.ast.json          # write the reduced JSON back to the file
  jsast reduce --explain tree.ast.json   # report which rules fired, to stderr
  cat tree.ast.json | jsast reduce       # read the tree from stdin`,
	RunE: runReduce,
}

func init() {
	rootCmd.AddCommand(reduceCmd)

	reduceCmd.Flags().BoolVar(&reduceFixpoint, "fixpoint", false, "iterate reduction to a fixed point (bounded)")
	reduceCmd.Flags().BoolVar(&reduceExplain, "explain", false, "report fired-rule counts to stderr")
	reduceCmd.Flags().BoolVar(&reducePrint, "print", false, "render the reduced tree as source instead of JSON")
	reduceCmd.Flags().BoolVarP(&reduceWrite, "write", "w", false, "write the reduced tree back to the file")
	reduceCmd.Flags().BoolVarP(&reduceRecursive, "recursive", "r", false, "process directories recursively")
}

func runReduce(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return reduceStdin()
	}

	files, err := batch.Collect(args, reduceRecursive, cfg.Batch.IncludeGlobs, cfg.Batch.IgnoreFile)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if len(files) > 1 {
		bar = progressbar.Default(int64(len(files)), "reducing")
	}

	hasErrors := false
	for _, path := range files {
		if err := reduceFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
			hasErrors = true
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if hasErrors {
		return fmt.Errorf("reducing failed for one or more files")
	}
	return nil
}

func reduceStdin() error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	out, err := reduceTree(string(data), "<stdin>")
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func reduceFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	out, err := reduceTree(string(data), path)
	if err != nil {
		return err
	}

	if reduceWrite {
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing file: %w", err)
		}
		if verbose {
			fmt.Printf("Wrote %s\n", path)
		}
		return nil
	}

	fmt.Print(out)
	return nil
}

func reduceTree(data, label string) (string, error) {
	node, err := ast.Decode(data)
	if err != nil {
		return "", errors.FromNode(nil, err, data, label)
	}

	var reduced *ast.Node
	var stats reducer.Stats
	if reduceFixpoint {
		reduced, stats, err = reducer.ReduceToFixpoint(node)
	} else {
		reduced, stats, err = reducer.ReduceWithStats(node)
	}
	if err != nil {
		return "", errors.FromNode(node, err, data, label)
	}

	if reduceExplain {
		explainStats(label, stats)
	}

	if ast.IsAbsent(reduced) {
		if reducePrint {
			return "", nil
		}
		return "null", nil
	}

	if reducePrint {
		opts := resolvePrintOptions()
		return printer.New(opts).Print(reduced), nil
	}

	return ast.Encode(reduced)
}

func explainStats(label string, stats reducer.Stats) {
	fmt.Fprintf(os.Stderr, "%s:\n", label)
	fmt.Fprintf(os.Stderr, "  dead statements dropped:      %d\n", stats.DeadStatementsDropped)
	fmt.Fprintf(os.Stderr, "  logical short-circuits:       %d\n", stats.LogicalShortCircuits)
	fmt.Fprintf(os.Stderr, "  conditionals folded:          %d\n", stats.ConditionalsFolded)
	fmt.Fprintf(os.Stderr, "  unary-not folded:             %d\n", stats.UnaryNotFolded)
	fmt.Fprintf(os.Stderr, "  if branches eliminated:       %d\n", stats.IfBranchesEliminated)
	fmt.Fprintf(os.Stderr, "  bagofholding calls stubbed:   %d\n", stats.BagOfHoldingStubbed)
	fmt.Fprintf(os.Stderr, "  property keys canonicalized:  %d\n", stats.PropertyKeysCanonicalized)
	fmt.Fprintf(os.Stderr, "  member accesses canonicalized: %d\n", stats.MemberAccessCanonicalized)
}
