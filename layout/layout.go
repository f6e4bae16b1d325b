// Package layout places build outputs below a single build root.
//
// Every subproject of a workspace writes its artifacts to `<root>/<name>`.
// The root itself belongs to the root project and is what `clean` removes.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// DefaultBuildDir is the build root used when nothing else is configured.
// It is relative to the project root.
const DefaultBuildDir = "../build"

// ErrInvalidArgument is returned for malformed subproject names and root paths.
var ErrInvalidArgument = errors.New("invalid argument")

// IOError reports a failed filesystem operation on the build tree.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func invalidArgument(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, a...))
}

// Layout describes the output tree of one build invocation.
// It is constructed once and passed by value.
type Layout struct {
	Root string
}

// New returns a layout rooted at `root`, which is made absolute relative to `base`
// unless it already is. A leading `~` is expanded to the home directory.
func New(base, root string) (Layout, error) {
	expanded, err := ExpandRoot(base, root)
	if err != nil {
		return Layout{}, err
	}
	return Layout{Root: expanded}, nil
}

// ExpandRoot makes `root` an absolute, cleaned path.
func ExpandRoot(base, root string) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", invalidArgument("build root must not be empty")
	}
	if strings.ContainsRune(root, 0) {
		return "", invalidArgument("build root %q contains a NUL byte", root)
	}
	expanded, err := homedir.Expand(root)
	if err != nil {
		return "", invalidArgument("build root %q: %s", root, err)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(base, expanded)
	}
	return filepath.Clean(expanded), nil
}

// OutputDir returns the output directory of subproject `name`.
func (l Layout) OutputDir(name string) (string, error) {
	return Resolve(l.Root, name)
}

// Clean removes the whole build tree.
func (l Layout) Clean() error {
	return Clean(l.Root)
}

// Resolve returns the output directory of subproject `name` below `root`.
// The result is always a direct child of `root`. Names that could escape
// `root` are rejected rather than normalised.
func Resolve(root, name string) (string, error) {
	if root == "" {
		return "", invalidArgument("build root must not be empty")
	}
	if strings.ContainsRune(root, 0) {
		return "", invalidArgument("build root %q contains a NUL byte", root)
	}
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}

// ValidateName checks that `name` can be used as a single path element.
func ValidateName(name string) error {
	switch {
	case name == "":
		return invalidArgument("subproject name must not be empty")
	case name == "." || name == "..":
		return invalidArgument("subproject name %q is not allowed", name)
	case strings.ContainsRune(name, 0):
		return invalidArgument("subproject name %q contains a NUL byte", name)
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return invalidArgument("subproject name %q contains a path separator", name)
	case filepath.VolumeName(name) != "":
		return invalidArgument("subproject name %q contains a volume name", name)
	}
	return nil
}

// Clean recursively deletes `root`. A missing root is not an error.
func Clean(root string) error {
	if root == "" {
		return invalidArgument("build root must not be empty")
	}
	cleaned := filepath.Clean(root)
	if isFilesystemRoot(cleaned) {
		return invalidArgument("refusing to remove filesystem root %q", cleaned)
	}

	if _, err := os.Lstat(cleaned); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return &IOError{Op: "stat", Path: cleaned, Err: err}
	}
	if err := os.RemoveAll(cleaned); err != nil {
		return &IOError{Op: "remove", Path: cleaned, Err: err}
	}
	return nil
}

func isFilesystemRoot(p string) bool {
	vol := filepath.VolumeName(p)
	rest := p[len(vol):]
	return rest == "" || rest == string(filepath.Separator) || rest == "/"
}
