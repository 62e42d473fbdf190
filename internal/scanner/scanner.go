package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/puremeth/puremeth-go/internal/domain"
	"github.com/puremeth/puremeth-go/internal/utils"
)

// Options contains options for a directory scan
type Options struct {
	// Progress enables a spinner-style progress bar on stderr
	Progress bool
}

// Scan recursively enumerates regular files under dir whose name ends with
// ext and returns their absolute paths in sorted order.
//
// The extension is normalized to carry a leading dot and matched
// case-sensitively. Symlinked directories are not followed; symlinked files
// whose name matches are listed as-is. A missing dir fails with
// domain.ErrDirectoryNotFound and a non-directory path with
// domain.ErrNotADirectory.
func Scan(ctx context.Context, dir, ext string, opts Options) ([]string, error) {
	ext = utils.NormalizeExtension(ext)
	if ext == "" {
		return nil, domain.ErrEmptyExtension
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDirectoryNotFound, dir)
		}
		return nil, domain.NewScanError(dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotADirectory, dir)
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, domain.NewScanError(dir, err)
	}

	var bar interface{ Add(int) error }
	if opts.Progress {
		b := utils.NewProgressBar(-1, utils.DescScanning)
		defer b.Finish()
		bar = b
	}

	var matches []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		matches = append(matches, path)
		if bar != nil {
			_ = bar.Add(1)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewScanError(dir, err)
	}

	sort.Strings(matches)
	return matches, nil
}
