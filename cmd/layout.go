package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/daedaleanai/buildroot/project"
	"github.com/daedaleanai/buildroot/util"
)

type layoutOutput struct {
	Version      string               `yaml:"version"`
	ProjectRoot  string               `yaml:"project_root"`
	BuildRoot    string               `yaml:"build_root"`
	Subprojects  []subprojectOutput   `yaml:"subprojects"`
	Repositories []project.Repository `yaml:"repositories"`
	Classpath    []string             `yaml:"classpath"`
}

type subprojectOutput struct {
	Name      string `yaml:"name"`
	OutputDir string `yaml:"output_dir"`
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Args:  cobra.NoArgs,
	Short: "Prints the resolved build layout as YAML",
	Long: `Prints the resolved build layout as YAML: the build root, the output directory
of every subproject in evaluation order, the repositories and the plugin classpath.
The output is meant to be consumed by the build tool.`,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}

func describeLayout(p *project.Project) (layoutOutput, error) {
	classpath, err := p.Classpath()
	if err != nil {
		return layoutOutput{}, err
	}

	output := layoutOutput{
		Version:      util.BuildrootVersion.String(),
		ProjectRoot:  p.Root,
		BuildRoot:    p.Layout.Root,
		Subprojects:  []subprojectOutput{},
		Repositories: p.File.Repositories,
		Classpath:    util.MappedSlice(classpath, project.Coordinate.String),
	}
	for _, sub := range p.EvaluationOrder() {
		dir, err := p.OutputDir(sub.Name)
		if err != nil {
			return layoutOutput{}, err
		}
		output.Subprojects = append(output.Subprojects, subprojectOutput{Name: sub.Name, OutputDir: dir})
	}
	return output, nil
}

func runLayout(cmd *cobra.Command, args []string) error {
	p, _, err := loadProject()
	if err != nil {
		return err
	}

	output, err := describeLayout(p)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(output)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
