// Package dist plans the distribution archive: which files go in, where they
// land inside the archive and what they hash to. Building the archive itself
// is left to the deployment runner.
package dist

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"

	"github.com/swat4julia/swatfreight/src/config"
	"github.com/swat4julia/swatfreight/src/log"
)

// ErrMissing is returned when a planned file does not exist.
var ErrMissing = errors.New("dist file missing")

// compiledExt is the extension ucc gives compiled packages.
const compiledExt = ".u"

// Options tune Plan.
type Options struct {
	AllowMissing bool // record missing files instead of failing
	Workers      int  // hashing concurrency, default NumCPU
}

// Entry is one file of the archive.
type Entry struct {
	Source  string // absolute path on disk
	Target  string // slash-separated path inside the archive
	Size    int64
	SHA256  string
	Missing bool
}

// Manifest is the planned archive.
type Manifest struct {
	Name    string // archive file name
	Path    string // where the archive is written
	Version *semver.Version
	Entries []Entry
}

// Plan lists the archive contents for cfg: compiled packages under System/,
// then the extra files at the archive root.
func Plan(ctx context.Context, cfg *config.Config, opts Options) (*Manifest, error) {
	logger := log.WithComponent("dist")

	v, err := semver.StrictNewVersion(cfg.Dist.Version)
	if err != nil {
		return nil, fmt.Errorf("dist version %q: %w", cfg.Dist.Version, err)
	}

	name := ArchiveName(cfg.Paths.Here, v)
	m := &Manifest{
		Name:    name,
		Path:    filepath.Join(cfg.Paths.Dist, name),
		Version: v,
	}

	for _, name := range cfg.Ucc.PackageNames() {
		m.Entries = append(m.Entries, Entry{
			Source: filepath.Join(cfg.Paths.Compiled, name+compiledExt),
			Target: path.Join("System", name+compiledExt),
		})
	}
	for _, extra := range cfg.Dist.Extra {
		m.Entries = append(m.Entries, Entry{
			Source: extra,
			Target: filepath.Base(extra),
		})
	}

	seen := make(map[string]int, len(m.Entries))
	for i, e := range m.Entries {
		if j, ok := seen[e.Target]; ok {
			return nil, fmt.Errorf("dist: %s and %s both map to %s", m.Entries[j].Source, e.Source, e.Target)
		}
		seen[e.Target] = i
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range m.Entries {
		e := &m.Entries[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			size, sum, err := hashFile(e.Source)
			if errors.Is(err, fs.ErrNotExist) {
				if opts.AllowMissing {
					e.Missing = true
					logger.Warn().Str("file", e.Source).Msg("dist file missing")
					return nil
				}
				return fmt.Errorf("%w: %s", ErrMissing, e.Source)
			}
			if err != nil {
				return fmt.Errorf("hashing %s: %w", e.Source, err)
			}
			e.Size, e.SHA256 = size, sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug().Str("archive", m.Path).Int("entries", len(m.Entries)).Msg("dist planned")
	return m, nil
}

// ArchiveName is "<project>-<version>.zip", project being the base name of root.
func ArchiveName(root string, v *semver.Version) string {
	return fmt.Sprintf("%s-%s.zip", filepath.Base(filepath.Clean(root)), v.String())
}

// Missing returns the entries whose source file was not found.
func (m *Manifest) Missing() []Entry {
	var out []Entry
	for _, e := range m.Entries {
		if e.Missing {
			out = append(out, e)
		}
	}
	return out
}

// TotalSize sums the sizes of all present entries.
func (m *Manifest) TotalSize() int64 {
	var n int64
	for _, e := range m.Entries {
		n += e.Size
	}
	return n
}

func hashFile(p string) (int64, string, error) {
	f, err := os.Open(p)
	if err != nil {
		return 0, "", err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return 0, "", err
	}
	if fi.IsDir() {
		return 0, "", fmt.Errorf("%s is a directory", p)
	}

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return 0, "", err
	}
	return n, hex.EncodeToString(h.Sum(nil)), nil
}
