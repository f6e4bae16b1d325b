package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/daedaleanai/buildroot/layout"
	"github.com/daedaleanai/buildroot/log"
	"github.com/daedaleanai/buildroot/project"
	"github.com/daedaleanai/buildroot/util"
)

var initBuildDir string

var initCmd = &cobra.Command{
	Use:   "init [SUBPROJECT...]",
	Short: "Creates a PROJECT file in the current directory",
	Long: `Creates a PROJECT file in the current directory declaring the given subprojects.
The file uses the default repositories and plugin classpath.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initBuildDir, "build-root", layout.DefaultBuildDir, "Build root, relative to the project root")
}

func runInit(cmd *cobra.Command, args []string) error {
	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	return initProject(workingDir, initBuildDir, args)
}

func initProject(projectRoot, buildDir string, subprojects []string) error {
	if util.FileExists(filepath.Join(projectRoot, util.ProjectFileName)) {
		return fmt.Errorf("'%s' already contains a %s file", projectRoot, util.ProjectFileName)
	}

	projectFile := project.DefaultProjectFile()
	projectFile.BuildDir = buildDir
	projectFile.Subprojects = append(projectFile.Subprojects, subprojects...)

	// Validate before writing anything.
	if _, err := project.New(projectRoot, projectFile, ""); err != nil {
		return err
	}
	if err := project.WriteProjectFile(projectRoot, projectFile); err != nil {
		return err
	}
	log.Success("Created %s file in '%s'.\n", util.ProjectFileName, projectRoot)
	return nil
}
