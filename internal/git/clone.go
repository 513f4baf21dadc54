package git

import (
	"context"
	"fmt"
)

// Clone clones url into dir. dir must not exist yet.
func (r *CommandRunner) Clone(ctx context.Context, url, dir string) error {
	_, err := r.Run(ctx, "clone", url, dir)
	if err != nil {
		return fmt.Errorf("failed to clone %s into %s: %w", url, dir, err)
	}
	return nil
}
