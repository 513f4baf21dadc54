// Package testhelpers provides testing utilities for gitlingo,
// including a scene system, Git repository helpers, a recording git runner,
// and custom assertions.
package testhelpers

import (
	"os"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// LogSeparator is the line written after every activity log entry.
var LogSeparator = strings.Repeat("-", 40)

var logLinePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) - (.*)$`)

// ExpectBranches asserts that the repository has exactly the expected local branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	branches, err := repo.GetLocalBranches()
	require.NoError(t, err, "Failed to list branches")

	sort.Strings(branches)
	sorted := append([]string(nil), expected...)
	sort.Strings(sorted)

	require.Equal(t, sorted, branches, "Branches do not match")
}

// ReadLogMessages parses the activity log at path and returns the message of every entry.
// It fails the test when a line matches neither the entry format nor the separator.
func ReadLogMessages(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read activity log")

	var messages []string
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		if line == LogSeparator {
			continue
		}
		match := logLinePattern.FindStringSubmatch(line)
		if match == nil {
			// Multi-line messages (stderr) continue the previous entry
			require.NotEmpty(t, messages, "unexpected log line %q", line)
			messages[len(messages)-1] += "\n" + line
			continue
		}
		messages = append(messages, match[2])
	}
	return messages
}

// ExpectLogContains asserts that some activity log entry contains substr.
func ExpectLogContains(t *testing.T, path string, substr string) {
	t.Helper()

	for _, msg := range ReadLogMessages(t, path) {
		if strings.Contains(msg, substr) {
			return
		}
	}
	t.Fatalf("activity log %s has no entry containing %q", path, substr)
}
