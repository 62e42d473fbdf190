package scanner

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/puremeth/puremeth-go/internal/domain"
	"github.com/puremeth/puremeth-go/internal/utils"
)

// Group builds a SampleSet from scanned paths using the given strategy.
// Paths are processed in sorted order so the result is deterministic.
func Group(paths []string, ext string, strategy domain.GroupStrategy) (domain.SampleSet, error) {
	ext = utils.NormalizeExtension(ext)

	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	set := make(domain.SampleSet, len(sorted))

	switch strategy {
	case domain.GroupByStem, "":
		for _, path := range sorted {
			set.Add(stem(path, ext), path)
		}
	case domain.GroupByParent:
		for _, path := range sorted {
			set.Add(filepath.Base(filepath.Dir(path)), path)
		}
	case domain.GroupByFile:
		for _, path := range sorted {
			name := stem(path, ext)
			if _, taken := set[name]; taken {
				for i := 2; ; i++ {
					candidate := fmt.Sprintf("%s_%d", name, i)
					if _, taken := set[candidate]; !taken {
						name = candidate
						break
					}
				}
			}
			set.Add(name, path)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, strategy)
	}

	set.Sort()
	return set, nil
}

// stem returns the base filename with the matched extension removed
func stem(path, ext string) string {
	return strings.TrimSuffix(filepath.Base(path), ext)
}
