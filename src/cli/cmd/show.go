package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swat4julia/swatfreight/src/config"
	"github.com/swat4julia/swatfreight/src/output"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the effective configuration: built-in defaults with the
config file applied and derived paths resolved.

--format yaml or toml prints a file that can be fed back with --config.`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "text", "output format: text, yaml or toml")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	if showFormat != "text" {
		data, err := config.Marshal(cfg, showFormat)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	color := output.UseColor()

	sec := output.NewSection(w, "Kits", 0, color)
	for _, name := range cfg.KitNames() {
		k := cfg.Kits[name]
		sec.KV(name, fmt.Sprintf("%s / %s / %s / %s", k.Mod, k.Content, k.Server, k.INI))
	}
	sec.Close()

	sec = output.NewSection(w, "Roles", 0, color)
	for _, role := range cfg.Roles.Names() {
		sec.KV(role, strings.Join(cfg.Roles[role], ", "))
	}
	sec.Close()

	sec = output.NewSection(w, "Paths", 0, color)
	for _, e := range cfg.Paths.Table() {
		sec.KV(e.Name, e.Path)
	}
	sec.Close()

	sec = output.NewSection(w, "Ucc", 0, color)
	sec.KV("path", cfg.Ucc.Path)
	sec.KV("git", cfg.Ucc.Git)
	for _, p := range cfg.Ucc.Packages {
		sec.KV(p.Name, p.Git)
	}
	sec.Close()

	sec = output.NewSection(w, "Server", 0, color)
	sec.KV("path", cfg.Server.Path)
	sec.KV("git", cfg.Server.Git)
	for _, s := range cfg.Server.Settings {
		sec.KV(s.Header, output.Dimmed(fmt.Sprintf("%d lines", len(s.Lines)), color))
	}
	sec.Close()

	sec = output.NewSection(w, "Dist", 0, color)
	sec.KV("version", cfg.Dist.Version)
	for _, extra := range cfg.Dist.Extra {
		sec.KV("extra", extra)
	}
	sec.Close()

	return nil
}
