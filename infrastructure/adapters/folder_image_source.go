package adapters

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".bmp":  true,
	".gif":  true,
}

// folderImageSource serves pre-rendered images from a directory instead of
// generating them. Scene N gets the Nth file, clamped to the last one, with
// files in natural order (scene_2 before scene_10).
type folderImageSource struct {
	files []string
}

func NewFolderImageSource(dir string) (outbound.ImageGeneratorPort, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no images found in %s", dir)
	}

	sort.Slice(files, func(i, j int) bool {
		return naturalLess(filepath.Base(files[i]), filepath.Base(files[j]))
	})

	return &folderImageSource{files: files}, nil
}

func (f *folderImageSource) Generate(_ context.Context, scene domain.Scene) (io.ReadCloser, error) {
	idx := scene.Number - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(f.files) {
		idx = len(f.files) - 1
	}
	return os.Open(f.files[idx])
}

// naturalLess compares strings so that embedded numbers sort numerically.
func naturalLess(a, b string) bool {
	aParts := splitDigitRuns(strings.ToLower(a))
	bParts := splitDigitRuns(strings.ToLower(b))

	for i := 0; i < len(aParts) && i < len(bParts); i++ {
		ap, bp := aParts[i], bParts[i]
		if ap == bp {
			continue
		}
		an, aErr := strconv.Atoi(ap)
		bn, bErr := strconv.Atoi(bp)
		if aErr == nil && bErr == nil {
			if an != bn {
				return an < bn
			}
			continue
		}
		return ap < bp
	}
	return len(aParts) < len(bParts)
}

func splitDigitRuns(s string) []string {
	var parts []string
	var run strings.Builder
	var runIsDigit bool

	for i, r := range s {
		isDigit := unicode.IsDigit(r)
		if i > 0 && isDigit != runIsDigit {
			parts = append(parts, run.String())
			run.Reset()
		}
		run.WriteRune(r)
		runIsDigit = isDigit
	}
	if run.Len() > 0 {
		parts = append(parts, run.String())
	}
	return parts
}
