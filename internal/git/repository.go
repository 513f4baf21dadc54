package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repository wraps a go-git repository
type Repository struct {
	*git.Repository
}

// OpenRepository opens the git repository rooted at path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := git.PlainOpen(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{Repository: repo}, nil
}

// AllBranches returns local and remote-tracking branches, locals first, each group sorted by name.
// Symbolic refs such as origin/HEAD are skipped.
func (r *Repository) AllBranches() ([]Branch, error) {
	current := ""
	head, err := r.Head()
	switch {
	case err == nil:
		if head.Name().IsBranch() {
			current = head.Name().Short()
		}
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// Unborn branch: nothing is checked out yet
	default:
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	refs, err := r.References()
	if err != nil {
		return nil, fmt.Errorf("failed to get references: %w", err)
	}

	var branches []Branch
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name()
		switch {
		case name.IsBranch():
			branches = append(branches, Branch{
				Name:    name.Short(),
				Hash:    ref.Hash().String(),
				Current: name.Short() == current,
			})
		case name.IsRemote():
			branches = append(branches, Branch{
				Name:   name.Short(),
				Hash:   ref.Hash().String(),
				Remote: true,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate references: %w", err)
	}

	sort.SliceStable(branches, func(i, j int) bool {
		if branches[i].Remote != branches[j].Remote {
			return !branches[i].Remote
		}
		return branches[i].Name < branches[j].Name
	})
	return branches, nil
}
