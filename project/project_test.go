package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daedaleanai/buildroot/layout"
	"github.com/daedaleanai/buildroot/util"
)

func writeProjectFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, util.ProjectFileName), []byte(content), util.FileMode))
}

func names(subprojects []Subproject) []string {
	return util.MappedSlice(subprojects, func(s Subproject) string { return s.Name })
}

func TestOpenWithoutProjectFile(t *testing.T) {
	root := t.TempDir()

	p, err := Open(root, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(root), "build"), p.Layout.Root)
	assert.Empty(t, p.Subprojects())
	assert.Equal(t, DefaultRepositories(), p.File.Repositories)

	classpath, err := p.Classpath()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"com.android.tools.build:gradle:8.1.0",
		"org.jetbrains.kotlin:kotlin-gradle-plugin:1.9.0",
	}, util.MappedSlice(classpath, Coordinate.String))
}

func TestOpenProjectFile(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, `
version: 1
build_dir: out
subprojects: [core, app, feature-login]
repositories:
  - google
  - mavenCentral
  - name: internal
    url: https://maven.example.com/releases/
ext:
  kotlin_version: 1.9.10
`)

	p, err := Open(root, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "out"), p.Layout.Root)
	assert.Equal(t, []string{"app", "core", "feature-login"}, names(p.Subprojects()))
	assert.Equal(t, []string{"app", "core", "feature-login"}, names(p.EvaluationOrder()))
	assert.Equal(t, []string{"app"}, p.File.EvaluationDependsOn)

	app, ok := p.Subproject("app")
	require.True(t, ok)
	assert.True(t, app.EvaluatedFirst)

	require.Len(t, p.File.Repositories, 3)
	assert.Equal(t, Repository{Name: "internal", URL: "https://maven.example.com/releases/"}, p.File.Repositories[2])

	out, err := p.OutputDir("core")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "out", "core"), out)

	classpath, err := p.Classpath()
	require.NoError(t, err)
	assert.Equal(t, "1.9.10", classpath[1].Version)
}

func TestBuildDirOverride(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "build_dir: out\n")
	override := filepath.Join(t.TempDir(), "elsewhere")

	p, err := Open(root, override)
	require.NoError(t, err)
	assert.Equal(t, override, p.Layout.Root)
}

func TestEvaluationOrder(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, `
subprojects: [zeta, app, base, alpha]
evaluation_depends_on: [base, app]
`)

	p, err := Open(root, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "app", "alpha", "zeta"}, names(p.EvaluationOrder()))
}

func TestOpenRejectsInvalidProjects(t *testing.T) {
	cases := map[string]string{
		"traversal":           "subprojects: [app, ../escape]\n",
		"duplicate":           "subprojects: [app, app]\n",
		"unknown dependency":  "subprojects: [app]\nevaluation_depends_on: [core]\n",
		"repeated dependency": "subprojects: [app]\nevaluation_depends_on: [app, app]\n",
		"unknown field":       "subproject: [app]\n",
		"unknown repository":  "repositories: [jcenter2]\n",
		"newer version":       "version: 99\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			writeProjectFile(t, root, content)
			_, err := Open(root, "")
			assert.Error(t, err)
		})
	}
}

func TestTraversalIsInvalidArgument(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "subprojects: [../escape]\n")
	_, err := Open(root, "")
	assert.ErrorIs(t, err, layout.ErrInvalidArgument)
}

func TestStalePins(t *testing.T) {
	root := t.TempDir()

	p, err := Open(root, "")
	require.NoError(t, err)

	stale, err := p.StalePins(map[string]string{"gradle": "8.2.0", "kotlin-gradle-plugin": "1.8.0"})
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, "gradle", stale[0].Coordinate.Artifact)
	assert.Equal(t, "8.2.0", stale[0].Minimum)

	stale, err = p.StalePins(nil)
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestWriteProjectFileRoundTrip(t *testing.T) {
	root := t.TempDir()
	f := DefaultProjectFile()
	f.Subprojects = []string{"app"}
	f.Repositories = append(f.Repositories, Repository{Name: "internal", URL: "https://maven.example.com/"})
	require.NoError(t, WriteProjectFile(root, f))

	data, err := os.ReadFile(filepath.Join(root, util.ProjectFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "- google\n")
	assert.Contains(t, string(data), "url: https://maven.example.com/")

	read, err := ReadProjectFile(root)
	require.NoError(t, err)
	assert.Equal(t, f.Repositories, read.Repositories)
	assert.Equal(t, []string{"app"}, read.EvaluationDependsOn)
}
