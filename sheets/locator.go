package sheets

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"stpsched/schedule"
)

// Locator finds the newest uploaded spreadsheet for a division and
// roster type inside the uploads directory.
type Locator struct {
	root string
}

// NewLocator creates a locator over the given uploads directory.
func NewLocator(root string) *Locator {
	return &Locator{root: root}
}

// patterns returns the ordered filename globs tried for a roster type.
// Admins name the uploads by hand, so each set covers the spellings seen
// in practice, most specific first.
func patterns(division string, roster schedule.RosterType) []string {
	switch roster {
	case schedule.RosterDuties:
		return []string{
			"ДЕЖУРСТВА " + division + "*",
			"СТАРШИЕ " + division + "*",
			"*" + division + "*ДЕЖУРСТВ*",
			"*" + division + "*СТАРШИЕ*",
		}
	case schedule.RosterHeads:
		return []string{
			"РГ " + division + "*",
			"РУКОВОДИТЕЛИ " + division + "*",
			"*" + division + "*РГ*",
			"*" + division + "*РУКОВОДИТЕЛИ*",
		}
	default:
		return []string{
			"ГРАФИК " + division + " I*",
			"ГРАФИК " + division + " II*",
			"ГРАФИК_" + division + "_*",
			"*" + division + "*ГРАФИК*",
		}
	}
}

// Find returns the path of the most recently modified file matching the
// first pattern that matches anything. A missing file is an expected
// outcome (schedules are uploaded by hand), reported as
// schedule.ErrFileNotFound.
func (l *Locator) Find(division string, roster schedule.RosterType) (string, error) {
	for _, pattern := range patterns(division, roster) {
		matches, err := filepath.Glob(filepath.Join(l.root, pattern))
		if err != nil {
			return "", fmt.Errorf("glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			continue
		}
		return newestFile(matches), nil
	}

	return "", fmt.Errorf("%s schedule for %s in %s: %w", roster, division, l.root, schedule.ErrFileNotFound)
}

func newestFile(paths []string) string {
	newest := paths[0]
	var newestMod time.Time

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().After(newestMod) {
			newest = path
			newestMod = info.ModTime()
		}
	}

	return newest
}

// FileInfo describes a located schedule file for diagnostics.
type FileInfo struct {
	Path     string
	Name     string
	Size     int64
	Modified time.Time
}

// FileInfo locates the schedule file and returns its metadata.
func (l *Locator) FileInfo(division string, roster schedule.RosterType) (FileInfo, error) {
	path, err := l.Find(division, roster)
	if err != nil {
		return FileInfo{}, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}

	return FileInfo{
		Path:     path,
		Name:     filepath.Base(path),
		Size:     stat.Size(),
		Modified: stat.ModTime(),
	}, nil
}
