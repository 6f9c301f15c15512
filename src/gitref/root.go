package gitref

import (
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/swat4julia/swatfreight/src/log"
)

// DetectRoot returns the root of the git worktree containing dir.
// Falls back to dir when it is not inside a repository.
func DetectRoot(dir string) string {
	logger := log.WithComponent("gitref")

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		logger.Debug().Str("dir", abs).Err(err).Msg("not a git repo, using directory as root")
		return abs
	}
	wt, err := repo.Worktree()
	if err != nil {
		// bare repository
		return abs
	}
	return wt.Filesystem.Root()
}
