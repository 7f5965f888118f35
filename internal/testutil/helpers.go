package testutil

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateInputFiles writes each name/content pair into a temporary
// directory and returns the paths in the order given.
func CreateInputFiles(t *testing.T, files ...string) []string {
	t.Helper()

	if len(files)%2 != 0 {
		t.Fatalf("CreateInputFiles needs name/content pairs, got %d arguments", len(files))
	}

	dir := t.TempDir()
	paths := make([]string, 0, len(files)/2)
	for i := 0; i < len(files); i += 2 {
		path := filepath.Join(dir, files[i])
		CreateTestFile(t, path, []byte(files[i+1]))
		paths = append(paths, path)
	}
	return paths
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContent checks if a file has expected content
func AssertFileContent(t *testing.T, path string, expected []byte) {
	t.Helper()

	actual, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if string(actual) != string(expected) {
		t.Errorf("File content mismatch in %s\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

var ansiSequence = regexp.MustCompile("\x1b\\[[0-9;]*m")

// StripANSI removes terminal color sequences from s
func StripANSI(s string) string {
	return ansiSequence.ReplaceAllString(s, "")
}
