package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/daedaleanai/buildroot/layout"
	"github.com/daedaleanai/buildroot/log"
	"github.com/daedaleanai/buildroot/util"
)

// ProjectFileVersion is the current version of the PROJECT file format.
const ProjectFileVersion = 1

// Properties referenced by the default classpath.
var defaultExt = map[string]string{
	"kotlin_version": "1.9.0",
}

var defaultClasspath = []string{
	"com.android.tools.build:gradle:8.1.0",
	"org.jetbrains.kotlin:kotlin-gradle-plugin:$kotlin_version",
}

// The subproject every other subproject is evaluated after by default.
const defaultEvaluationDependency = "app"

// ProjectFile is the content of a PROJECT file.
type ProjectFile struct {
	Version             uint              `yaml:"version"`
	BuildDir            string            `yaml:"build_dir,omitempty"`
	Subprojects         []string          `yaml:"subprojects,omitempty"`
	EvaluationDependsOn []string          `yaml:"evaluation_depends_on,omitempty"`
	Repositories        []Repository      `yaml:"repositories,omitempty"`
	Ext                 map[string]string `yaml:"ext,omitempty"`
	Classpath           []string          `yaml:"classpath,omitempty"`
}

// DefaultProjectFile returns the PROJECT file used for a project that has none.
func DefaultProjectFile() ProjectFile {
	ext := map[string]string{}
	for k, v := range defaultExt {
		ext[k] = v
	}
	return ProjectFile{
		Version:      ProjectFileVersion,
		BuildDir:     layout.DefaultBuildDir,
		Subprojects:  []string{},
		Repositories: DefaultRepositories(),
		Ext:          ext,
		Classpath:    append([]string{}, defaultClasspath...),
	}
}

// applyDefaults fills in everything the PROJECT file left out.
func (f *ProjectFile) applyDefaults() {
	if f.Version == 0 {
		f.Version = ProjectFileVersion
	}
	if f.BuildDir == "" {
		f.BuildDir = layout.DefaultBuildDir
	}
	if f.Subprojects == nil {
		f.Subprojects = []string{}
	}
	if len(f.Repositories) == 0 {
		f.Repositories = DefaultRepositories()
	}
	// YAML decoding can produce `nil` maps if the key is present but has no entries.
	if f.Ext == nil {
		f.Ext = map[string]string{}
	}
	if f.Classpath == nil {
		f.Classpath = append([]string{}, defaultClasspath...)
		for k, v := range defaultExt {
			if _, ok := f.Ext[k]; !ok {
				f.Ext[k] = v
			}
		}
	}
	if f.EvaluationDependsOn == nil {
		f.EvaluationDependsOn = []string{}
		for _, name := range f.Subprojects {
			if name == defaultEvaluationDependency {
				f.EvaluationDependsOn = []string{defaultEvaluationDependency}
			}
		}
	}
}

// ReadProjectFile reads and parses the PROJECT file in `projectRoot`.
// A missing file yields the default project description.
func ReadProjectFile(projectRoot string) (ProjectFile, error) {
	projectFilePath := filepath.Join(projectRoot, util.ProjectFileName)
	if !util.FileExists(projectFilePath) {
		log.Debug("Project has no %s file. Using defaults.\n", util.ProjectFileName)
		return DefaultProjectFile(), nil
	}

	data, err := os.ReadFile(projectFilePath)
	if err != nil {
		return ProjectFile{}, fmt.Errorf("failed to read %s: %w", projectFilePath, err)
	}

	var projectFile ProjectFile
	if err := yaml.UnmarshalStrict(data, &projectFile); err != nil {
		return ProjectFile{}, fmt.Errorf("failed to parse %s: %w", projectFilePath, err)
	}
	if projectFile.Version > ProjectFileVersion {
		return ProjectFile{}, fmt.Errorf("%s has version %d that requires a newer version of buildroot", projectFilePath, projectFile.Version)
	}
	projectFile.applyDefaults()
	log.Debug("Loaded %s.\n", projectFilePath)
	return projectFile, nil
}

// WriteProjectFile serializes `projectFile` to the PROJECT file in `projectRoot`.
func WriteProjectFile(projectRoot string, projectFile ProjectFile) error {
	projectFile.Version = ProjectFileVersion
	data, err := yaml.Marshal(projectFile)
	if err != nil {
		return err
	}
	projectFilePath := filepath.Join(projectRoot, util.ProjectFileName)
	if err := os.WriteFile(projectFilePath, data, util.FileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", projectFilePath, err)
	}
	return nil
}
