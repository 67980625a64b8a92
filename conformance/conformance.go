// SPDX-License-Identifier: MIT

package conformance

import (
	"fmt"
	"strings"
)

// Group names the component a check exercises.
type Group string

// Groups, in execution order.
const (
	GroupVector Group = "vector"
	GroupMatrix Group = "matrix"
)

// Label returns the per-dimension type name, e.g. "VEC3" or "MAT3".
func (g Group) Label(dim int) string {
	prefix := "VEC"
	if g == GroupMatrix {
		prefix = "MAT"
	}

	return fmt.Sprintf("%s%d", prefix, dim)
}

// Check is one named property for one dimension.
type Check struct {
	Group Group
	Dim   int
	Name  string
	Run   func() error
}

// Result is the outcome of a Check. Err is nil on success.
type Result struct {
	Group Group
	Dim   int
	Name  string
	Err   error
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool { return r.Err == nil }

// String renders "VEC3 addition: SUCCESS" or "... : FAILED (<err>)".
func (r Result) String() string {
	if r.Err == nil {
		return fmt.Sprintf("%s %s: SUCCESS", r.Group.Label(r.Dim), r.Name)
	}

	return fmt.Sprintf("%s %s: FAILED (%v)", r.Group.Label(r.Dim), r.Name, r.Err)
}

// Report collects results in execution order.
type Report struct {
	Results []Result
	// Stopped is true when fail-fast cut the run short.
	Stopped bool
}

// Passed reports whether every executed check succeeded.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}

	return true
}

// Failures returns the failed results, in order.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res)
		}
	}

	return out
}

// String summarizes the report on one line.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d checks, %d failed", len(r.Results), len(r.Failures()))
	if r.Stopped {
		b.WriteString(" (stopped at first failure)")
	}

	return b.String()
}

// Checks enumerates the battery for the configured dimensions: every
// vector check first, then every matrix check, ascending by dimension.
func Checks(opts ...Option) []Check {
	return checks(gatherOptions(opts...))
}

func checks(o Options) []Check {
	var out []Check
	for n := o.lo; n <= o.hi; n++ {
		out = append(out, vectorSuites[n-1](o)...)
	}
	for n := o.lo; n <= o.hi; n++ {
		out = append(out, matrixSuites[n-1](o)...)
	}

	return out
}

// Run executes the battery and returns the report. With fail-fast (the
// default) it stops after the first failure.
func Run(opts ...Option) Report {
	o := gatherOptions(opts...)

	return Execute(checks(o), o.failFast)
}

// Execute runs the given checks in order, recovering panics.
func Execute(cs []Check, failFast bool) Report {
	rep := Report{Results: make([]Result, 0, len(cs))}
	for _, c := range cs {
		res := Result{Group: c.Group, Dim: c.Dim, Name: c.Name, Err: runOne(c)}
		rep.Results = append(rep.Results, res)
		if failFast && !res.Passed() {
			rep.Stopped = len(rep.Results) < len(cs)
			break
		}
	}

	return rep
}

// runOne calls c.Run, turning a panic into an ErrCheckPanicked failure.
func runOne(c Check) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v: %w", r, ErrCheckPanicked)
		}
	}()

	return c.Run()
}
