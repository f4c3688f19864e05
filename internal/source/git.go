package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/i18ndocs/internal/logfields"
)

// Fetch clones a git-backed docs source into dir and returns the checkout
// path. Any existing checkout at dir is replaced; incremental updates are
// deliberately out of scope, every fetch is fresh.
func Fetch(ctx context.Context, repoURL, branch, dir string) (string, error) {
	repoPath := filepath.Join(dir, "source")
	slog.Debug("Cloning docs source", logfields.URL(repoURL),
		slog.String("branch", branch), logfields.Path(repoPath))
	if err := os.RemoveAll(repoPath); err != nil {
		return "", fmt.Errorf("remove existing checkout: %w", err)
	}

	opts := &git.CloneOptions{URL: repoURL, Depth: 1}
	if branch != "" {
		opts.ReferenceName = plumbing.ReferenceName("refs/heads/" + branch)
		opts.SingleBranch = true
	}
	repo, err := git.PlainCloneContext(ctx, repoPath, false, opts)
	if err != nil {
		return "", fmt.Errorf("clone %s: %w", repoURL, err)
	}
	if ref, herr := repo.Head(); herr == nil {
		slog.Info("Docs source cloned", logfields.URL(repoURL),
			slog.String("commit", ref.Hash().String()[:8]))
	}
	return repoPath, nil
}
