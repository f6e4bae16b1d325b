// Package project describes the root project, its subprojects and the
// pass-through buildscript values of a workspace.
package project

import (
	"fmt"
	"sort"

	"github.com/daedaleanai/buildroot/layout"
	"github.com/daedaleanai/buildroot/util"
)

// Subproject is a named unit whose build output lives below the build root.
type Subproject struct {
	Name string
	// EvaluatedFirst is set for subprojects other subprojects depend on for evaluation.
	EvaluatedFirst bool
}

// Project is a loaded project together with its resolved layout.
type Project struct {
	Root        string
	File        ProjectFile
	Layout      layout.Layout
	subprojects util.OrderedMap[string, Subproject]
}

// Open loads the project in `root`. A non-empty `buildDirOverride` takes
// precedence over the PROJECT file's build directory.
func Open(root string, buildDirOverride string) (*Project, error) {
	projectFile, err := ReadProjectFile(root)
	if err != nil {
		return nil, err
	}
	return New(root, projectFile, buildDirOverride)
}

// New validates `projectFile` and resolves its layout relative to `root`.
func New(root string, projectFile ProjectFile, buildDirOverride string) (*Project, error) {
	projectFile.applyDefaults()

	buildDir := projectFile.BuildDir
	if buildDirOverride != "" {
		buildDir = buildDirOverride
	}
	l, err := layout.New(root, buildDir)
	if err != nil {
		return nil, err
	}

	p := &Project{
		Root:        root,
		File:        projectFile,
		Layout:      l,
		subprojects: util.NewOrderedMap[string, Subproject](),
	}
	evaluatedFirst := map[string]bool{}
	for _, name := range projectFile.EvaluationDependsOn {
		if evaluatedFirst[name] {
			return nil, fmt.Errorf("evaluation dependency '%s' is listed more than once", name)
		}
		evaluatedFirst[name] = true
	}
	for _, name := range projectFile.Subprojects {
		if err := layout.ValidateName(name); err != nil {
			return nil, err
		}
		sub := Subproject{Name: name, EvaluatedFirst: evaluatedFirst[name]}
		if err := p.subprojects.Insert(name, sub); err != nil {
			return nil, fmt.Errorf("subproject '%s' is declared more than once", name)
		}
	}
	for _, name := range projectFile.EvaluationDependsOn {
		if _, ok := p.subprojects.Lookup(name); !ok {
			return nil, fmt.Errorf("evaluation depends on unknown subproject '%s'", name)
		}
	}
	return p, nil
}

// Subproject returns the subproject called `name`.
func (p *Project) Subproject(name string) (Subproject, bool) {
	return p.subprojects.Lookup(name)
}

// Subprojects returns all subprojects ordered by name.
func (p *Project) Subprojects() []Subproject {
	return p.subprojects.Values()
}

// EvaluationOrder returns the subprojects in the order the build tool evaluates
// them: evaluation dependencies first in declared order, the rest by name.
func (p *Project) EvaluationOrder() []Subproject {
	result := make([]Subproject, 0, p.subprojects.Len())
	for _, name := range p.File.EvaluationDependsOn {
		sub, _ := p.subprojects.Lookup(name)
		result = append(result, sub)
	}
	rest := util.FilteredSlice(p.subprojects.Values(), func(s Subproject) bool { return !s.EvaluatedFirst })
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].Name < rest[j].Name })
	return append(result, rest...)
}

// OutputDir returns the output directory of the subproject `name`.
// Unknown names are resolved too, since subprojects may be supplied by the build tool.
func (p *Project) OutputDir(name string) (string, error) {
	return p.Layout.OutputDir(name)
}

// Classpath returns the interpolated plugin classpath.
func (p *Project) Classpath() ([]Coordinate, error) {
	result := make([]Coordinate, 0, len(p.File.Classpath))
	for _, raw := range p.File.Classpath {
		c, err := ParseCoordinate(raw, p.File.Ext)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

// StalePin is a classpath entry whose version is below the configured minimum.
type StalePin struct {
	Coordinate Coordinate
	Minimum    string
}

// StalePins compares the classpath against `minimums`, keyed by artifact name.
func (p *Project) StalePins(minimums map[string]string) ([]StalePin, error) {
	classpath, err := p.Classpath()
	if err != nil {
		return nil, err
	}
	var stale []StalePin
	for _, c := range classpath {
		minimum, ok := minimums[c.Artifact]
		if !ok {
			continue
		}
		older, err := c.IsOlderThan(minimum)
		if err != nil {
			return nil, err
		}
		if older {
			stale = append(stale, StalePin{Coordinate: c, Minimum: minimum})
		}
	}
	return stale, nil
}
