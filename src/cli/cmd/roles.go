package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swat4julia/swatfreight/src/output"
)

var rolesCmd = &cobra.Command{
	Use:   "roles [role]",
	Short: "List deployment roles and their hosts",
	Long: `List every role with its hosts, or print the hosts of one role,
one per line, for use in scripts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoles,
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	if len(args) == 1 {
		hosts, ok := cfg.Roles.Hosts(args[0])
		if !ok {
			return fmt.Errorf("unknown role %q (defined: %s)", args[0], strings.Join(cfg.Roles.Names(), ", "))
		}
		for _, h := range hosts {
			fmt.Fprintln(w, h)
		}
		return nil
	}

	sec := output.NewSection(w, "Roles", 0, output.UseColor())
	for _, role := range cfg.Roles.Names() {
		sec.KV(role, strings.Join(cfg.Roles[role], ", "))
	}
	sec.Close()
	return nil
}
