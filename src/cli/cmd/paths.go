package cmd

import (
	"github.com/spf13/cobra"

	"github.com/swat4julia/swatfreight/src/output"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the path table and per-kit server paths",
	RunE:  runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	color := output.UseColor()

	sec := output.NewSection(w, "Paths", 0, color)
	for _, e := range cfg.Paths.Table() {
		sec.KV(e.Name, e.Path)
	}
	sec.KV("ucc", cfg.Ucc.Path)
	sec.KV("server", cfg.Server.Path)
	sec.Close()

	root := cfg.Server.KitRoot()
	for _, name := range cfg.KitNames() {
		k := cfg.Kits[name]
		sec := output.NewSection(w, "Kit "+name, 0, color)
		sec.KV("system", k.SystemDir(root))
		sec.KV("mod", k.ModSystemDir(root))
		sec.KV("server", k.ExecutablePath(root))
		sec.KV("ini", k.INIPath(root))
		sec.Close()
	}
	return nil
}
