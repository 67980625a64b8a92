// SPDX-License-Identifier: MIT

// Command vecmat-check runs the vector and matrix conformance battery for
// every supported dimension and reports pass/fail per check.
//
// Usage:
//
//	vecmat-check [-min 1] [-max 9] [-eps 1e-6] [-fail-fast=true] [-q]
//
// Exit status is 0 when every check passes, 1 when a check fails and 2
// when the flags are invalid.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/vecmat/conformance"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the battery and writes the report to stdout.
// It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vecmat-check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		minDim   = fs.Int("min", conformance.MinDim, "Smallest dimension to check (1..9)")
		maxDim   = fs.Int("max", conformance.MaxDim, "Largest dimension to check (1..9)")
		eps      = fs.Float64("eps", conformance.DefaultEpsilon, "Absolute tolerance for length and normalization checks")
		failFast = fs.Bool("fail-fast", conformance.DefaultFailFast, "Stop at the first failing check")
		quiet    = fs.Bool("q", false, "Only print failures and the summary")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *minDim < conformance.MinDim || *maxDim > conformance.MaxDim || *minDim > *maxDim {
		fmt.Fprintf(stderr, "vecmat-check: need %d <= -min <= -max <= %d, got %d..%d\n",
			conformance.MinDim, conformance.MaxDim, *minDim, *maxDim)
		return 2
	}
	if math.IsNaN(*eps) || math.IsInf(*eps, 0) || *eps < 0 {
		fmt.Fprintf(stderr, "vecmat-check: -eps must be finite and non-negative, got %v\n", *eps)
		return 2
	}

	rep := conformance.Run(
		conformance.WithDims(*minDim, *maxDim),
		conformance.WithEpsilon(*eps),
		conformance.WithFailFast(*failFast),
	)
	printReport(stdout, rep, *quiet)

	if failures := rep.Failures(); len(failures) > 0 {
		if rep.Stopped || *failFast {
			fmt.Fprintf(stdout, "Failed %s test\n", failures[0].Group)
		} else {
			fmt.Fprintf(stdout, "%s\n", rep)
		}
		return 1
	}
	fmt.Fprintln(stdout, "All tests passed")

	return 0
}

// printReport writes group and per-type headers followed by one line per
// check. Quiet mode keeps only failing checks.
func printReport(w io.Writer, rep conformance.Report, quiet bool) {
	var group conformance.Group
	label := ""
	for _, r := range rep.Results {
		if r.Group != group {
			group = r.Group
			fmt.Fprintf(w, "Performing %s tests\n", group)
		}
		if quiet && r.Passed() {
			continue
		}
		if l := r.Group.Label(r.Dim); l != label {
			label = l
			fmt.Fprintf(w, "TESTING %s\n", label)
		}
		if r.Passed() {
			fmt.Fprintf(w, "    %s... SUCCESS\n", r.Name)
			continue
		}
		fmt.Fprintf(w, "    %s... FAILED\n", r.Name)
		fmt.Fprintf(w, "        %v\n", r.Err)
	}
}
