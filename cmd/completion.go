package cmd

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generates a shell completion script",
	Long: `Generates a shell completion script for bash, zsh or fish.

  $ source <(buildroot completion bash)
  $ buildroot completion zsh > "${fpath[1]}/_buildroot"
  $ buildroot completion fish | source
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.ExactValidArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		}
		return nil
	},
	Hidden: true,
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
