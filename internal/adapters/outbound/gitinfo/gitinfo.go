package gitinfo

import (
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitInfoAdapter implements domain.ChangeDetector using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(projectPath string) bool {
	_, err := git.PlainOpen(projectPath)
	return err == nil
}

// ChangedFiles returns the paths changed relative to baseRef: committed
// changes between baseRef and HEAD plus uncommitted worktree changes.
// Deleted files are excluded since there is nothing left to validate.
// The result is sorted for deterministic reports.
func (g *GitInfoAdapter) ChangedFiles(projectPath, baseRef string) ([]string, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if path != "" && !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	if baseRef != "" {
		if err := addCommittedChanges(repo, baseRef, add); err != nil {
			return nil, err
		}
	}

	if err := addWorktreeChanges(repo, add); err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func addCommittedChanges(repo *git.Repository, baseRef string, add func(string)) error {
	baseTree, err := treeForRef(repo, baseRef)
	if err != nil {
		return err
	}
	headTree, err := treeForRef(repo, "HEAD")
	if err != nil {
		return err
	}

	changes, err := object.DiffTree(baseTree, headTree)
	if err != nil {
		return fmt.Errorf("diffing %s..HEAD: %w", baseRef, err)
	}

	for _, ch := range changes {
		// Deletions carry an empty To name and are dropped by add.
		add(ch.To.Name)
	}
	return nil
}

func addWorktreeChanges(repo *git.Repository, add func(string)) error {
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("reading worktree status: %w", err)
	}

	for path, st := range status {
		if st.Worktree == git.Unmodified && st.Staging == git.Unmodified {
			continue
		}
		if st.Worktree == git.Deleted || st.Staging == git.Deleted {
			continue
		}
		add(path)
	}
	return nil
}

func treeForRef(repo *git.Repository, ref string) (*object.Tree, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", ref, err)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", hash, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("reading tree for %s: %w", ref, err)
	}
	return tree, nil
}
