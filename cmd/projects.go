package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Args:  cobra.NoArgs,
	Short: "Lists subprojects in evaluation order",
	Long: `Lists all subprojects in the order the build tool evaluates them,
together with their output directories.`,
	RunE: runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(cmd *cobra.Command, args []string) error {
	p, _, err := loadProject()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, ":\t%s\n", p.Layout.Root)
	for _, sub := range p.EvaluationOrder() {
		dir, err := p.OutputDir(sub.Name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, ":%s\t%s\n", sub.Name, dir)
	}
	return w.Flush()
}
