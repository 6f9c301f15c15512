package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swat4julia/swatfreight/src/ini"
	"github.com/swat4julia/swatfreight/src/log"
)

var (
	renderKit  string
	renderBase string
	renderOut  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render server settings as ini text",
	Long: `Render server.settings as ini text.

Without a base file the settings are printed on their own. With --base (or
--kit, which uses that kit's server ini under server.path) the settings are
merged into the existing file: +[Section] lines are appended once, [Section]
keys are replaced. The base file is written back in its own encoding
(UTF-8 with or without BOM, UTF-16 or Windows-1252).

--out writes the result atomically instead of printing it.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderKit, "kit", "", "merge into this kit's server ini")
	renderCmd.Flags().StringVar(&renderBase, "base", "", "merge into this ini file")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "write to this file instead of stdout")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := log.WithComponent("render")

	sections, err := cfg.Server.Sections()
	if err != nil {
		return err
	}

	base := renderBase
	if base == "" && renderKit != "" {
		k, ok := cfg.Kits[renderKit]
		if !ok {
			return fmt.Errorf("unknown kit %q", renderKit)
		}
		base = k.INIPath(cfg.Server.KitRoot())
	}

	var data []byte
	if base == "" {
		data = ini.RenderBytes(sections)
	} else {
		raw, err := os.ReadFile(base)
		if err != nil {
			return fmt.Errorf("reading base ini: %w", err)
		}
		text, enc, err := ini.Decode(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", base, err)
		}
		logger.Debug().Str("base", base).Str("encoding", enc.String()).Msg("merging settings")

		data, err = ini.Encode(ini.Apply(text, sections), enc)
		if err != nil {
			return fmt.Errorf("%s: %w", base, err)
		}
	}

	if renderOut == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := ini.WriteFile(renderOut, data); err != nil {
		return err
	}
	logger.Info().Str("path", renderOut).Int("sections", len(sections)).Msg("settings written")
	return nil
}
