package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daedaleanai/buildroot/log"
)

var checkClasspath bool

var classpathCmd = &cobra.Command{
	Use:   "classpath [--check]",
	Args:  cobra.NoArgs,
	Short: "Prints the buildscript plugin classpath",
	Long: `Prints the buildscript plugin classpath with all properties interpolated.
With --check, every plugin whose version is below the minimum configured in
'min_plugin_versions' is reported and the command fails.`,
	RunE: runClasspath,
}

func init() {
	rootCmd.AddCommand(classpathCmd)
	classpathCmd.Flags().BoolVar(&checkClasspath, "check", false, "Fail if a plugin version is below the configured minimum")
}

func runClasspath(cmd *cobra.Command, args []string) error {
	p, cfg, err := loadProject()
	if err != nil {
		return err
	}

	classpath, err := p.Classpath()
	if err != nil {
		return err
	}
	for _, c := range classpath {
		fmt.Fprintln(cmd.OutOrStdout(), c)
	}

	if !checkClasspath {
		return nil
	}
	stale, err := p.StalePins(cfg.MinPluginVersions)
	if err != nil {
		return err
	}
	for _, pin := range stale {
		log.Warning("'%s' is older than the required minimum %s.\n", pin.Coordinate, pin.Minimum)
	}
	if len(stale) > 0 {
		return fmt.Errorf("%d plugin version(s) need updating", len(stale))
	}
	return nil
}
