package project

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-version"
)

// Coordinate identifies a build-tool plugin as `group:artifact:version`.
type Coordinate struct {
	Group    string
	Artifact string
	Version  string
}

var propertyRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// Interpolate replaces `$name` and `${name}` references with values from `ext`.
func Interpolate(s string, ext map[string]string) (string, error) {
	var missing []string
	result := propertyRef.ReplaceAllStringFunc(s, func(ref string) string {
		match := propertyRef.FindStringSubmatch(ref)
		name := match[1]
		if name == "" {
			name = match[2]
		}
		value, ok := ext[name]
		if !ok {
			missing = append(missing, name)
			return ref
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("undefined property '%s' in '%s'", strings.Join(missing, "', '"), s)
	}
	return result, nil
}

// ParseCoordinate parses `s` after interpolating properties from `ext`.
func ParseCoordinate(s string, ext map[string]string) (Coordinate, error) {
	interpolated, err := Interpolate(s, ext)
	if err != nil {
		return Coordinate{}, err
	}
	parts := strings.Split(interpolated, ":")
	if len(parts) != 3 {
		return Coordinate{}, fmt.Errorf("coordinate '%s' is not of the form group:artifact:version", interpolated)
	}
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			return Coordinate{}, fmt.Errorf("coordinate '%s' has an empty component", interpolated)
		}
	}
	return Coordinate{Group: parts[0], Artifact: parts[1], Version: parts[2]}, nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%s:%s:%s", c.Group, c.Artifact, c.Version)
}

// Module returns the `group:artifact` part of the coordinate.
func (c Coordinate) Module() string {
	return c.Group + ":" + c.Artifact
}

// IsOlderThan reports whether the coordinate's version is below `minimum`.
func (c Coordinate) IsOlderThan(minimum string) (bool, error) {
	current, err := version.NewVersion(c.Version)
	if err != nil {
		return false, fmt.Errorf("coordinate '%s' has an invalid version: %w", c, err)
	}
	min, err := version.NewVersion(minimum)
	if err != nil {
		return false, fmt.Errorf("invalid minimum version '%s' for '%s': %w", minimum, c.Module(), err)
	}
	return current.LessThan(min), nil
}
