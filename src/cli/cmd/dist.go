package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/swat4julia/swatfreight/src/dist"
	"github.com/swat4julia/swatfreight/src/output"
)

var distAllowMissing bool

var distCmd = &cobra.Command{
	Use:   "dist",
	Short: "Distribution archive commands",
}

var distPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "List the files the distribution archive will contain",
	Long: `List the files of the distribution archive: compiled packages under
System/ and the extra files at the top level, each with size and sha256.`,
	RunE: runDistPlan,
}

func init() {
	distPlanCmd.Flags().BoolVar(&distAllowMissing, "allow-missing", false, "report missing files instead of failing")

	distCmd.AddCommand(distPlanCmd)
	rootCmd.AddCommand(distCmd)
}

func runDistPlan(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	color := output.UseColor()
	start := time.Now()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	m, err := dist.Plan(ctx, cfg, dist.Options{AllowMissing: distAllowMissing})
	if err != nil {
		return err
	}

	sec := output.NewSection(w, "Dist "+m.Version.String(), time.Since(start), color)
	sec.KV("archive", m.Path)
	sec.Separator()
	for _, e := range m.Entries {
		if e.Missing {
			sec.Row("%s %-22s %s", output.StatusMissing.Icon(color), e.Target, output.Dimmed("missing: "+e.Source, color))
			continue
		}
		sec.Row("%s %-22s %8d  %s", output.StatusOK.Icon(color), e.Target, e.Size, output.Dimmed(e.SHA256[:12], color))
	}
	sec.Separator()
	status := output.StatusOK
	if len(m.Missing()) > 0 {
		status = output.StatusMissing
	}
	sec.Summary("total", status, fmt.Sprintf("%d files, %d bytes", len(m.Entries), m.TotalSize()))
	sec.Close()
	return nil
}
