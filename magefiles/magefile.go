// Package main provides build targets for the taskboard-api project using
// Mage.
//
// Usage:
//
//	mage build            Compile the server binary to bin/
//	mage test             Run all tests
//	mage testUnit         Run only unit tests (integration tests self-skip)
//	mage testIntegration  Run tests against a real database
//	mage lint             Run golangci-lint
//	mage clean            Remove build artifacts

//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "taskboard-api"
	binaryDir  = "bin"
	cmdDir     = "./cmd/server"
)

// Build compiles the server binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests. Store integration tests skip themselves unless
// TASKBOARD_TEST_DATABASE_URL is set.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestUnit runs the test suite without a database; integration tests
// self-skip when TASKBOARD_TEST_DATABASE_URL is unset.
func TestUnit() error {
	env := map[string]string{"TASKBOARD_TEST_DATABASE_URL": ""}
	return sh.RunWithV(env, "go", "test", "./...")
}

// TestIntegration runs the full suite against a real database. It fails
// fast when TASKBOARD_TEST_DATABASE_URL is not set rather than silently
// skipping everything that matters.
func TestIntegration() error {
	mg.Deps(Build)
	if os.Getenv("TASKBOARD_TEST_DATABASE_URL") == "" {
		return fmt.Errorf("TASKBOARD_TEST_DATABASE_URL must be set for integration tests")
	}
	return sh.RunV("go", "test", "-count=1", "./internal/platform/postgres/...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}
