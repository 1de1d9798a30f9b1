package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TestDir is the default location of conformance fixtures, relative to
// this package's directory.
const TestDir = "testdata/conformance"

// LoadedTest pairs a parsed TestCase with the suite and file it came
// from, for readable subtest names.
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests walks dir and parses every .yaml fixture it finds.
func LoadAllTests(dir string) ([]LoadedTest, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving conformance test dir: %w", err)
	}

	var loaded []LoadedTest

	walkErr := filepath.Walk(abs, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		tests, err := loadTestFile(path)
		if err != nil {
			relPath, _ := filepath.Rel(abs, path)
			return fmt.Errorf("loading %s: %w", relPath, err)
		}

		relPath, _ := filepath.Rel(abs, path)
		for _, t := range tests {
			t.File = relPath
			loaded = append(loaded, t)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return loaded, nil
}

func loadTestFile(path string) ([]LoadedTest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}

	tests := make([]LoadedTest, 0, len(suite.Tests))
	for _, tc := range suite.Tests {
		tests = append(tests, LoadedTest{Suite: suite, Test: tc})
	}
	return tests, nil
}
