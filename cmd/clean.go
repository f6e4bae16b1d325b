package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/daedaleanai/buildroot/layout"
	"github.com/daedaleanai/buildroot/log"
	"github.com/daedaleanai/buildroot/project"
)

const lockFileSuffix = ".lock"

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Args:  cobra.NoArgs,
	Short: "Removes the build root and all build results below it",
	Long:  `Removes the build root and all build results below it.`,
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	p, cfg, err := loadProject()
	if err != nil {
		return err
	}
	return cleanBuildRoot(p, cfg.Spinner && isTerminal(os.Stderr))
}

// checkCleanTarget refuses to remove a build root that contains the project itself.
func checkCleanTarget(p *project.Project) error {
	rel, err := filepath.Rel(p.Layout.Root, p.Root)
	if err != nil {
		return nil
	}
	if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		return fmt.Errorf("%w: build root '%s' contains the project root '%s'", layout.ErrInvalidArgument, p.Layout.Root, p.Root)
	}
	return nil
}

func cleanBuildRoot(p *project.Project, showSpinner bool) error {
	if err := checkCleanTarget(p); err != nil {
		return err
	}

	buildRoot := p.Layout.Root
	if _, err := os.Lstat(buildRoot); errors.Is(err, os.ErrNotExist) {
		log.Debug("Build root '%s' does not exist. Nothing to do.\n", buildRoot)
		return nil
	}

	// The lock file stays in place: removing it would let a waiting process hold
	// a lock on an unlinked file while a newcomer locks a fresh one.
	lock := flock.New(buildRoot + lockFileSuffix)
	locked, err := lock.TryLock()
	if err != nil {
		return &layout.IOError{Op: "lock", Path: lock.Path(), Err: err}
	}
	if !locked {
		log.Log("Waiting for another process to release '%s'.\n", lock.Path())
		if err := lock.Lock(); err != nil {
			return &layout.IOError{Op: "lock", Path: lock.Path(), Err: err}
		}
	}
	defer lock.Unlock()

	log.Debug("Removing build root '%s'.\n", buildRoot)
	if showSpinner {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Suffix = fmt.Sprintf(" Removing %s", buildRoot)
		s.Start()
		err = p.Layout.Clean()
		s.Stop()
	} else {
		err = p.Layout.Clean()
	}
	if err != nil {
		return err
	}

	log.Success("Removed '%s'.\n", buildRoot)
	return nil
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	return err == nil && stat.Mode()&os.ModeCharDevice != 0
}
