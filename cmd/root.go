package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/daedaleanai/buildroot/config"
	"github.com/daedaleanai/buildroot/log"
	"github.com/daedaleanai/buildroot/project"
	"github.com/daedaleanai/buildroot/util"
)

var (
	buildDirFlag   string
	configFileFlag string
)

var rootCmd = &cobra.Command{
	Use:   "buildroot",
	Short: "Manages the build output tree of a multi-project workspace",
	Long: `buildroot places the build output of every subproject of a workspace
below a single build root, removes that tree on 'clean', and reports the
repositories and plugin classpath handed to the build tool.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("%s\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&log.Verbose, "verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().StringVar(&buildDirFlag, "build-dir", "", "Build root, overriding the configuration and the PROJECT file")
	rootCmd.PersistentFlags().StringVar(&configFileFlag, "config", "", "Configuration file (default is $XDG_CONFIG_HOME/buildroot/config.yaml)")
}

// loadProject opens the project containing the working directory.
// The build root is taken from, in order: --build-dir, the user configuration, the PROJECT file.
func loadProject() (*project.Project, config.Config, error) {
	cfg, err := config.Load(configFileFlag)
	if err != nil {
		return nil, cfg, err
	}

	projectRoot, err := util.GetProjectRoot()
	if err != nil {
		return nil, cfg, err
	}
	log.Debug("Project root: %s.\n", projectRoot)

	buildDir := cfg.BuildDir
	if buildDirFlag != "" {
		buildDir = buildDirFlag
	}

	p, err := project.Open(projectRoot, buildDir)
	if err != nil {
		return nil, cfg, err
	}
	log.Debug("Build root: %s.\n", p.Layout.Root)
	return p, cfg, nil
}
