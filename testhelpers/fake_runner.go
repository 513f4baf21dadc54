package testhelpers

import (
	"context"
	"os"
	"path/filepath"

	gitlingoerrors "gitlingo.dev/gitlingo/internal/errors"
	"gitlingo.dev/gitlingo/internal/git"
)

// Git operation names recorded by RecordingRunner.
const (
	OpClone                   = "clone"
	OpFetchPrune              = "fetch-prune"
	OpPull                    = "pull"
	OpHardReset               = "reset-hard"
	OpPush                    = "push"
	OpCheckout                = "checkout"
	OpCreateAndCheckoutBranch = "checkout-b"
	OpCurrentBranch           = "symbolic-ref"
	OpListBranches            = "list-branches"
	OpStatus                  = "status"
	OpStageAll                = "add"
	OpCommit                  = "commit"
)

// Call is one recorded git invocation.
type Call struct {
	Op   string
	Args []string
}

// RecordingRunner implements git.Runner without running git. It records every call
// and fails the operations named in Errors. A successful Clone creates dir/.git so
// that later state checks see a valid working copy.
type RecordingRunner struct {
	Calls []Call

	// Errors maps an operation name to the error it returns.
	Errors map[string]error
	// CheckoutErrors maps a branch name to the error its checkout returns.
	CheckoutErrors map[string]error

	// Branch is the current branch. Empty means HEAD is detached.
	Branch       string
	StatusOutput string
	Branches     []git.Branch
}

var _ git.Runner = (*RecordingRunner)(nil)

// NewRecordingRunner creates a runner on branch main with a clean working copy.
func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{
		Errors:         map[string]error{},
		CheckoutErrors: map[string]error{},
		Branch:         "main",
	}
}

func (r *RecordingRunner) record(op string, args ...string) error {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
	return r.Errors[op]
}

// Ops returns the recorded operation names in order.
func (r *RecordingRunner) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many times op was invoked.
func (r *RecordingRunner) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Index returns the position of the first call to op, or -1.
func (r *RecordingRunner) Index(op string) int {
	for i, c := range r.Calls {
		if c.Op == op {
			return i
		}
	}
	return -1
}

func (r *RecordingRunner) Clone(_ context.Context, url, dir string) error {
	if err := r.record(OpClone, url, dir); err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(dir, ".git"), 0750)
}

func (r *RecordingRunner) FetchPrune(_ context.Context, repoPath string) error {
	return r.record(OpFetchPrune, repoPath)
}

func (r *RecordingRunner) Pull(_ context.Context, repoPath string) error {
	return r.record(OpPull, repoPath)
}

func (r *RecordingRunner) HardReset(_ context.Context, repoPath, revision string) error {
	return r.record(OpHardReset, repoPath, revision)
}

func (r *RecordingRunner) Push(_ context.Context, repoPath, remote, branchName string, setUpstream bool) error {
	upstream := "false"
	if setUpstream {
		upstream = "true"
	}
	return r.record(OpPush, repoPath, remote, branchName, upstream)
}

func (r *RecordingRunner) Checkout(_ context.Context, repoPath, branchName string) error {
	if err := r.record(OpCheckout, repoPath, branchName); err != nil {
		return err
	}
	if err := r.CheckoutErrors[branchName]; err != nil {
		return err
	}
	r.Branch = branchName
	return nil
}

func (r *RecordingRunner) CreateAndCheckoutBranch(_ context.Context, repoPath, branchName string) error {
	if err := r.record(OpCreateAndCheckoutBranch, repoPath, branchName); err != nil {
		return err
	}
	r.Branch = branchName
	return nil
}

func (r *RecordingRunner) CurrentBranch(_ context.Context, repoPath string) (string, error) {
	if err := r.record(OpCurrentBranch, repoPath); err != nil {
		return "", err
	}
	if r.Branch == "" {
		return "", gitlingoerrors.ErrDetachedHead
	}
	return r.Branch, nil
}

func (r *RecordingRunner) ListBranches(_ context.Context, repoPath string) ([]git.Branch, error) {
	if err := r.record(OpListBranches, repoPath); err != nil {
		return nil, err
	}
	return r.Branches, nil
}

func (r *RecordingRunner) Status(_ context.Context, repoPath string) (string, error) {
	if err := r.record(OpStatus, repoPath); err != nil {
		return "", err
	}
	return r.StatusOutput, nil
}

func (r *RecordingRunner) StageAll(_ context.Context, repoPath string) error {
	return r.record(OpStageAll, repoPath)
}

func (r *RecordingRunner) Commit(_ context.Context, repoPath, message string) error {
	return r.record(OpCommit, repoPath, message)
}
