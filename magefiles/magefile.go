//go:build mage

// Package main contains Mage build targets for mdslides developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/mdslides/internal/segment"
)

const (
	binDir  = "bin"
	binName = "mdslides"
	cmdPkg  = "./cmd/mdslides"

	// researchDir holds the markdown decks and the generated presentations.
	researchDir = "research"
)

var binPath = filepath.Join(binDir, binName)

// Init creates the research directory the default conversion reads from.
func Init() error {
	if err := os.MkdirAll(researchDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", researchDir, err)
	}
	fmt.Println("  ", researchDir)
	fmt.Println("Project directories initialized.")
	return nil
}

// Build compiles the CLI binary into bin/, stamping the version from git
// when available.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version := "dev"
	if out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil && out != "" {
		version = out
	}
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", binPath, version)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Convert builds the CLI and runs the default conversion.
func Convert() error {
	mg.Deps(Build)
	return sh.RunV(binPath)
}

// Handout builds the CLI and writes the speaker-notes handout for the
// default deck.
func Handout() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "handout")
}

// All runs the tests, then builds and converts.
func All() {
	mg.SerialDeps(Test, Build, Convert)
}

// Clean removes build output.
func Clean() error {
	fmt.Println("Removing", binDir)
	return sh.Rm(binDir)
}

// Stats prints project metrics: Go production/test LOC and the slide count
// of every markdown deck under research/.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)

	decks, err := filepath.Glob(filepath.Join(researchDir, "*.md"))
	if err != nil {
		return err
	}
	for _, deck := range decks {
		data, err := os.ReadFile(deck)
		if err != nil {
			return fmt.Errorf("reading %s: %w", deck, err)
		}
		fmt.Printf("Slides (%s): %d\n", deck, len(segment.Split(string(data)).Sections))
	}
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
// Directories starting with "_" or "." are skipped, as the go tool does.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		sc := bufio.NewScanner(bytes.NewReader(data))
		for sc.Scan() {
			if strings.TrimSpace(sc.Text()) != "" {
				total++
			}
		}
		return sc.Err()
	})
	return total, err
}
