package testhelpers_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlingo.dev/gitlingo/testhelpers"
)

// TestSceneLayout shows the directories a scene provides.
func TestSceneLayout(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	require.DirExists(t, scene.Workspace)
	require.DirExists(t, scene.RemoteDir())
	require.Equal(t, filepath.Join(scene.Workspace, "demo"), scene.ClonePath())
	require.NoDirExists(t, scene.ClonePath())

	clone := scene.CloneIntoWorkspace(t)
	branch, err := clone.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	msg, err := clone.LastCommitMessage()
	require.NoError(t, err)
	require.Equal(t, "1", msg)
}

func TestPublishBranch(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.PublishBranch("feature/demo")
	})

	clone := scene.CloneIntoWorkspace(t)
	require.NoError(t, clone.CheckoutBranch("feature/demo"))
	testhelpers.ExpectBranches(t, clone, []string{"main", "feature/demo"})
}

func TestReadLogMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	content := "2026-01-02 03:04:05 - Cloning repository...\n" + testhelpers.LogSeparator + "\n" +
		"2026-01-02 03:04:06 - Error cloning repository. - fatal: nope\nsecond line\n" + testhelpers.LogSeparator + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	messages := testhelpers.ReadLogMessages(t, path)
	require.Equal(t, []string{"Cloning repository...", "Error cloning repository. - fatal: nope\nsecond line"}, messages)
	testhelpers.ExpectLogContains(t, path, "fatal: nope")
}

func TestRecordingRunner(t *testing.T) {
	runner := testhelpers.NewRecordingRunner()
	dir := filepath.Join(t.TempDir(), "demo")

	require.NoError(t, runner.Clone(t.Context(), "base/demo.git", dir))
	require.DirExists(t, filepath.Join(dir, ".git"))
	require.Equal(t, []string{testhelpers.OpClone}, runner.Ops())
	require.Equal(t, 1, runner.Count(testhelpers.OpClone))
	require.Equal(t, -1, runner.Index(testhelpers.OpPull))
}
