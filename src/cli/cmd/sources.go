package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swat4julia/swatfreight/src/gitref"
	"github.com/swat4julia/swatfreight/src/output"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List every git checkout the deployment performs",
	Long: `List the ucc tree, each UnrealScript package and the server tree:
where each comes from and where it is checked out.`,
	RunE: runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// source is one checkout: a named git reference and its local directory.
type source struct {
	name string
	git  string
	dir  string
}

func runSources(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	color := output.UseColor()

	sources := []source{{name: "ucc", git: cfg.Ucc.Git, dir: cfg.Ucc.Path}}
	for _, p := range cfg.Ucc.Packages {
		sources = append(sources, source{name: p.Name, git: p.Git, dir: cfg.Ucc.PackageDir(p.Name)})
	}
	sources = append(sources, source{name: "server", git: cfg.Server.Git, dir: cfg.Server.Path})

	for _, s := range sources {
		ref, err := gitref.Parse(s.git)
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}

		sec := output.NewSection(w, s.name, 0, color)
		sec.KV("remote", fmt.Sprintf("%s://%s", ref.Endpoint.Protocol, ref.Endpoint.Host))
		sec.KV("repo", ref.Endpoint.Path)
		if ref.Name != "" {
			sec.KV("ref", ref.Name.String())
		} else {
			sec.KV("ref", output.Dimmed("default branch", color))
		}
		sec.KV("dir", s.dir)
		sec.Close()
	}
	return nil
}
