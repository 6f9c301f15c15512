package ini

import (
	"fmt"

	"github.com/google/renameio/v2"

	"github.com/swat4julia/swatfreight/src/log"
)

// WriteFile atomically replaces path with data: the content is written to a
// temporary file, synced, then renamed over the target.
func WriteFile(path string, data []byte) error {
	logger := log.WithComponent("ini")

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending ini file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("cleanup pending ini file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write ini data: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace ini file: %w", err)
	}

	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("ini written")
	return nil
}
