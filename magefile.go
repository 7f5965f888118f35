//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"codeberg.org/snonux/readablepassword/internal"
)

const binary = "readable-password"

// Default target to run when none is specified
var Default = Build

// Build builds the readable-password binary
func Build() error {
	fmt.Println("Building", binary, internal.Version)
	return sh.RunV("go", "build", "-o", binary, "./cmd/readable-password")
}

// Install installs the binary into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/readable-password")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs all tests with the race detector
func Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs lint and tests
func Check() {
	mg.SerialDeps(Lint, Test)
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll(binary)
}
