package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/daedaleanai/buildroot/log"
	"github.com/daedaleanai/buildroot/netrc"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Args:  cobra.NoArgs,
	Short: "Lists the package repositories in lookup order",
	Long: `Lists the package repositories used by the buildscript and all projects, in lookup order.
For each repository the user found in the .netrc file for its host is shown.`,
	RunE: runRepos,
}

func init() {
	rootCmd.AddCommand(reposCmd)
}

func runRepos(cmd *cobra.Command, args []string) error {
	p, _, err := loadProject()
	if err != nil {
		return err
	}

	netrcPath, err := netrc.DefaultPath()
	if err != nil {
		return err
	}
	credentials, err := netrc.Load(netrcPath)
	if err != nil {
		return err
	}
	log.Debug("Looking up repository credentials in '%s'.\n", netrcPath)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, repo := range p.File.Repositories {
		auth, err := credentials.AuthForURL(repo.URL)
		if err != nil {
			return err
		}
		authStatus := "anonymous"
		if auth != nil && auth.User != "" {
			authStatus = "netrc:" + auth.User
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", repo.Name, repo.URL, authStatus)
	}
	return w.Flush()
}
