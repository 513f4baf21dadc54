package testhelpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// DefaultRepoName is the repository name every scene publishes under its remote base.
const DefaultRepoName = "demo"

// Scene is a test fixture with a bare remote, a seed working copy that publishes
// to it, and an empty workspace directory that plays the role of the active path.
//
//	<Dir>/remotes/<RepoName>.git   bare remote (BaseURL = <Dir>/remotes)
//	<Dir>/seed                     working copy pushing to the remote
//	<Dir>/work                     workspace (active path)
type Scene struct {
	Dir       string
	Workspace string
	BaseURL   string
	RepoName  string
	Seed      *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene. The remote starts with a single commit on main.
// Git environment variables are pinned for the duration of the test, so the test
// must not call t.Parallel.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	SetGitEnv(t)

	tmpDir := t.TempDir()
	scene := &Scene{
		Dir:       tmpDir,
		Workspace: filepath.Join(tmpDir, "work"),
		BaseURL:   filepath.Join(tmpDir, "remotes"),
		RepoName:  DefaultRepoName,
	}

	if err := os.MkdirAll(scene.Workspace, 0750); err != nil {
		t.Fatalf("Failed to create workspace: %v", err)
	}
	if err := os.MkdirAll(scene.BaseURL, 0750); err != nil {
		t.Fatalf("Failed to create remote base: %v", err)
	}
	if err := NewBareRepo(scene.RemoteDir()); err != nil {
		t.Fatalf("Failed to create remote: %v", err)
	}

	seed, err := NewGitRepo(filepath.Join(tmpDir, "seed"))
	if err != nil {
		t.Fatalf("Failed to create seed repo: %v", err)
	}
	scene.Seed = seed
	if err := seed.CreateChangeAndCommit("initial", "init"); err != nil {
		t.Fatalf("Failed to commit seed: %v", err)
	}
	if err := seed.AddRemote("origin", scene.RemoteDir()); err != nil {
		t.Fatalf("Failed to add remote: %v", err)
	}
	if err := seed.PushBranch("origin", "main"); err != nil {
		t.Fatalf("Failed to push seed: %v", err)
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// SetGitEnv pins GitEnv for the rest of the test so every git subprocess,
// including those started by the code under test, inherits it.
func SetGitEnv(t *testing.T) {
	t.Helper()
	for _, kv := range GitEnv {
		key, value, _ := strings.Cut(kv, "=")
		t.Setenv(key, value)
	}
}

// RemoteDir returns the path of the bare remote.
func (s *Scene) RemoteDir() string {
	return filepath.Join(s.BaseURL, s.RepoName+".git")
}

// ClonePath returns where the code under test clones the repository.
func (s *Scene) ClonePath() string {
	return filepath.Join(s.Workspace, s.RepoName)
}

// LogPath returns the activity log path inside the workspace.
func (s *Scene) LogPath() string {
	return filepath.Join(s.Workspace, "internet_connection_log.txt")
}

// CloneIntoWorkspace clones the remote into ClonePath and returns the working copy.
func (s *Scene) CloneIntoWorkspace(t *testing.T) *GitRepo {
	t.Helper()
	cmd := exec.Command("git", "clone", s.RemoteDir(), s.ClonePath())
	cmd.Env = append(os.Environ(), GitEnv...)
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to clone into workspace: %v, output: %s", err, string(output))
	}
	return OpenGitRepo(s.ClonePath())
}

// PublishBranch creates branch in the seed repo with one commit and pushes it.
func (s *Scene) PublishBranch(branch string) error {
	if err := s.Seed.CreateAndCheckoutBranch(branch); err != nil {
		return err
	}
	if err := s.Seed.CreateChangeAndCommit(branch, strings.ReplaceAll(branch, "/", "_")); err != nil {
		return err
	}
	if err := s.Seed.PushBranch("origin", branch); err != nil {
		return err
	}
	return s.Seed.CheckoutBranch("main")
}

// BasicSceneSetup is a setup function that publishes a second commit on main.
func BasicSceneSetup(scene *Scene) error {
	if err := scene.Seed.CreateChangeAndCommit("1", "1"); err != nil {
		return err
	}
	return scene.Seed.PushBranch("origin", "main")
}
