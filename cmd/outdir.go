package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var outdirCmd = &cobra.Command{
	Use:   "outdir [SUBPROJECT...]",
	Short: "Prints the output directory of subprojects",
	Long: `Prints the output directory of each given subproject, one per line.
Without arguments the build root itself is printed.`,
	RunE:              runOutdir,
	ValidArgsFunction: completeSubprojects,
}

func init() {
	rootCmd.AddCommand(outdirCmd)
}

func runOutdir(cmd *cobra.Command, args []string) error {
	p, _, err := loadProject()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintln(out, p.Layout.Root)
		return nil
	}
	for _, name := range args {
		dir, err := p.OutputDir(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, dir)
	}
	return nil
}

func completeSubprojects(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	p, _, err := loadProject()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	suggestions := []string{}
	for _, sub := range p.Subprojects() {
		suggestions = append(suggestions, sub.Name)
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}
