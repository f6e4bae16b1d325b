package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// FileMode is the default FileMode used when creating files.
const FileMode = 0664

// ProjectFileName is the name of the file describing the root project.
const ProjectFileName = "PROJECT"

// FileExists checks whether some file exists.
func FileExists(file string) bool {
	stat, err := os.Stat(file)
	return err == nil && !stat.IsDir()
}

// DirExists checks whether some directory exists.
func DirExists(dir string) bool {
	stat, err := os.Stat(dir)
	return err == nil && stat.IsDir()
}

func findProjectFile(p string) (string, bool) {
	for {
		if FileExists(filepath.Join(p, ProjectFileName)) {
			return p, true
		}
		parent := filepath.Dir(p)
		if parent == p {
			return "", false
		}
		p = parent
	}
}

func findGitWorktree(p string) (string, error) {
	repo, err := git.PlainOpenWithOptions(p, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return "", err
	}
	return worktree.Filesystem.Root(), nil
}

// FindProjectRoot returns the closest directory at or above `p` containing a
// PROJECT file. Without one, the root of the enclosing git worktree is used.
func FindProjectRoot(p string) (string, error) {
	p, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if root, ok := findProjectFile(p); ok {
		return root, nil
	}
	if root, err := findGitWorktree(p); err == nil {
		return root, nil
	}
	return "", fmt.Errorf("not inside a project: no %s file or git repository above '%s'", ProjectFileName, p)
}

// GetProjectRoot returns the root directory of the current project.
func GetProjectRoot() (string, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindProjectRoot(workingDir)
}
