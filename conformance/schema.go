// Package conformance runs YAML-described evaluation scenarios against
// the evaluator and checks their results, independent of the Go test
// cases in package eval — a conformance suite is meant to be editable
// without touching Go source.
package conformance

// TestSuite represents a single YAML fixture file: a named group of
// related scenarios.
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase is one Monkey program and the result it must produce.
type TestCase struct {
	Name   string      `yaml:"name"`
	Skip   interface{} `yaml:"skip,omitempty"` // bool or reason string
	Code   string      `yaml:"code"`
	Expect Expectation `yaml:"expect"`
}

// Expectation describes the expected evaluation outcome. Exactly one of
// Value or Error is meaningful for a given case.
type Expectation struct {
	Value interface{} `yaml:"value,omitempty"` // exact Inspect() match, coerced to string
	Error string      `yaml:"error,omitempty"` // substring expected in an Error value's message
}

// IsSkipped reports whether tc should be skipped, and why.
func (tc *TestCase) IsSkipped() (bool, string) {
	switch v := tc.Skip.(type) {
	case nil:
		return false, ""
	case bool:
		return v, "skipped"
	case string:
		return true, v
	default:
		return false, ""
	}
}
