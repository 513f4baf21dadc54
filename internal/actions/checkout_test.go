package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlingo.dev/gitlingo/internal/actions"
	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
	"gitlingo.dev/gitlingo/internal/git"
	"gitlingo.dev/gitlingo/testhelpers"
)

func TestCheckoutAction(t *testing.T) {
	t.Run("requires a git working copy", func(t *testing.T) {
		target := newTarget(t)
		runner := testhelpers.NewRecordingRunner()
		tc := testhelpers.NewTestContext(t, target.LocalPath, runner)

		outcome := actions.CheckoutAction(tc.Runtime, actions.CheckoutOptions{Target: target, Branch: "dev"})

		require.False(t, outcome.Success)
		require.Equal(t, "Error: "+target.ClonePath()+" is not a valid Git repository.", outcome.Message)
		require.ErrorIs(t, outcome.Err, gitlingoerrors.ErrNotGitRepository)
		require.Empty(t, runner.Calls)
		testhelpers.ExpectLogContains(t, tc.Runtime.Splog.LogFile(), "Checked if "+target.ClonePath()+" is a Git repository: false")
	})

	t.Run("checks out the requested branch", func(t *testing.T) {
		target := newTarget(t)
		makeGitDir(t, target)
		runner := testhelpers.NewRecordingRunner()
		tc := testhelpers.NewTestContext(t, target.LocalPath, runner)

		outcome := actions.CheckoutAction(tc.Runtime, actions.CheckoutOptions{Target: target, Branch: "dev"})

		require.True(t, outcome.Success)
		require.Equal(t, "Checked out branch 'dev'.", outcome.Message)
		require.Equal(t, []string{testhelpers.OpCheckout}, runner.Ops())
		require.Equal(t, "dev", runner.Branch)
	})

	t.Run("falls back to main", func(t *testing.T) {
		target := newTarget(t)
		makeGitDir(t, target)
		runner := testhelpers.NewRecordingRunner()
		runner.CheckoutErrors["feature"] = gitError("error: pathspec 'feature' did not match any file(s) known to git")
		tc := testhelpers.NewTestContext(t, target.LocalPath, runner)

		outcome := actions.CheckoutAction(tc.Runtime, actions.CheckoutOptions{Target: target, Branch: "feature"})

		require.True(t, outcome.Success)
		require.Equal(t, "Checked out fallback branch 'main' successfully.", outcome.Message)
		require.Equal(t, "feature", runner.Calls[0].Args[1])
		require.Equal(t, "main", runner.Calls[1].Args[1])
		testhelpers.ExpectLogContains(t, tc.Runtime.Splog.LogFile(), "Error checking out branch 'feature': error: pathspec 'feature'")
	})

	t.Run("names both branches in order when both fail", func(t *testing.T) {
		target := newTarget(t)
		makeGitDir(t, target)
		runner := testhelpers.NewRecordingRunner()
		runner.CheckoutErrors["feature"] = gitError("error: pathspec 'feature' did not match")
		runner.CheckoutErrors["main"] = gitError("error: pathspec 'main' did not match")
		tc := testhelpers.NewTestContext(t, target.LocalPath, runner)

		outcome := actions.CheckoutAction(tc.Runtime, actions.CheckoutOptions{Target: target, Branch: "feature"})

		require.False(t, outcome.Success)
		require.Equal(t, "Failed to checkout both 'feature' and fallback branch 'main'.", outcome.Message)
		require.ErrorIs(t, outcome.Err, gitlingoerrors.ErrCheckoutFailed)

		var checkoutErr *gitlingoerrors.CheckoutError
		require.ErrorAs(t, outcome.Err, &checkoutErr)
		require.Equal(t, "feature", checkoutErr.Branch)
		require.Equal(t, "main", checkoutErr.Fallback)

		require.Equal(t, 2, runner.Count(testhelpers.OpCheckout))
		require.Zero(t, runner.Count(testhelpers.OpCreateAndCheckoutBranch))
	})

	t.Run("uses the given fallback", func(t *testing.T) {
		target := newTarget(t)
		makeGitDir(t, target)
		runner := testhelpers.NewRecordingRunner()
		runner.CheckoutErrors["feature"] = gitError("error: pathspec 'feature' did not match")
		tc := testhelpers.NewTestContext(t, target.LocalPath, runner)

		outcome := actions.CheckoutAction(tc.Runtime, actions.CheckoutOptions{Target: target, Branch: "feature", Fallback: "develop"})

		require.True(t, outcome.Success)
		require.Equal(t, "develop", runner.Branch)
	})

	t.Run("messages follow the detected language", func(t *testing.T) {
		target := newTarget(t)
		makeGitDir(t, target)
		runner := testhelpers.NewRecordingRunner()
		runner.CheckoutErrors["x"] = gitError("nope")
		runner.CheckoutErrors["main"] = gitError("nope")
		tc := testhelpers.NewTestContext(t, target.LocalPath, runner, testhelpers.WithLanguage("es"))

		outcome := actions.CheckoutAction(tc.Runtime, actions.CheckoutOptions{Target: target, Branch: "x"})

		require.Equal(t, "No se pudo cambiar ni a 'x' ni a la rama de respaldo 'main'.", outcome.Message)
	})
}

func TestCheckoutActionWithGit(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.PublishBranch("feature/demo")
	})
	clone := scene.CloneIntoWorkspace(t)
	target, err := actions.NewRepoTarget(scene.RepoName, scene.BaseURL, scene.Workspace)
	require.NoError(t, err)
	tc := testhelpers.NewTestContext(t, scene.Workspace, git.NewCommandRunner(0))

	outcome := actions.CheckoutAction(tc.Runtime, actions.CheckoutOptions{Target: target, Branch: "feature/demo"})
	require.True(t, outcome.Success, outcome.Detail)
	branch, err := clone.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "feature/demo", branch)

	outcome = actions.CheckoutAction(tc.Runtime, actions.CheckoutOptions{Target: target, Branch: "missing"})
	require.True(t, outcome.Success)
	branch, err = clone.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	outcome = actions.CheckoutAction(tc.Runtime, actions.CheckoutOptions{Target: target, Branch: "missing", Fallback: "also-missing"})
	require.False(t, outcome.Success)
	require.Equal(t, "Failed to checkout both 'missing' and fallback branch 'also-missing'.", outcome.Message)
	testhelpers.ExpectBranches(t, clone, []string{"main", "feature/demo"})
}
