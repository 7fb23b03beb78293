package cssprune

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// SourcePattern names content to scan: either a glob over the filesystem,
// or an inline raw payload with a declared extension. Raw entries bypass
// filesystem resolution entirely.
type SourcePattern struct {
	Glob      string
	Raw       string
	Extension string // declared extension for raw entries, without dot
}

// IsRaw reports whether the entry supplies its content inline.
func (p SourcePattern) IsRaw() bool { return p.Raw != "" }

// FileHandle is a resolved source of scannable content. Handles are
// immutable and discarded after extraction.
type FileHandle struct {
	Path      string
	Extension string // without leading dot

	raw       string
	synthetic bool
}

// Content returns the file's content. Read failures propagate; they are
// never silently skipped.
func (h FileHandle) Content() (string, error) {
	if h.synthetic {
		return h.raw, nil
	}
	data, err := os.ReadFile(h.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", h.Path, err)
	}
	return string(data), nil
}

// ScanStats tracks file resolution statistics for one pass.
type ScanStats struct {
	FilesDiscovered int // files matched by glob patterns, plus raw entries
	FilesScanned    int // files kept after filtering
	FilesSkipped    int // files dropped by hidden/gitignore filtering
}

// loadGitIgnore reads .gitignore fresh for each pass, so watch-mode
// rescans observe edits made mid-session. Gracefully degrades when the
// file doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(".gitignore")
	if err != nil {
		return nil
	}
	return gi
}

// isHidden reports whether the path's base name has a leading dot.
// Glob wildcards never pull in hidden files.
func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}

// shouldSkipFile applies two-layer filtering: hidden files first (only
// for wildcard matches — a pattern naming a dotfile literally asked for
// it), then .gitignore for project-relative paths. Absolute paths are
// outside the project and not subject to its gitignore.
func shouldSkipFile(path string, wildcard bool, gi *ignore.GitIgnore) bool {
	if wildcard && isHidden(path) {
		return true
	}
	if !filepath.IsAbs(path) && gi != nil && gi.MatchesPath(path) {
		return true
	}
	return false
}

// ResolveFiles expands the ordered pattern list into a deduplicated,
// deterministically ordered set of FileHandles. A glob matching zero
// files is silently empty. A malformed glob is a fatal *PatternError,
// caught by validation before any filesystem work.
func ResolveFiles(patterns []SourcePattern) ([]FileHandle, ScanStats, error) {
	stats := ScanStats{}

	for _, p := range patterns {
		if p.IsRaw() {
			continue
		}
		if !doublestar.ValidatePattern(p.Glob) {
			return nil, stats, &PatternError{Pattern: p.Glob, Err: doublestar.ErrBadPattern}
		}
	}

	var handles []FileHandle
	seen := make(map[string]bool)
	rawIndex := 0
	gi := loadGitIgnore()

	for _, p := range patterns {
		if p.IsRaw() {
			// Raw entries inject content directly, one synthetic handle
			// each, regardless of filesystem state.
			handles = append(handles, FileHandle{
				Path:      fmt.Sprintf("raw:%d.%s", rawIndex, p.Extension),
				Extension: p.Extension,
				raw:       p.Raw,
				synthetic: true,
			})
			rawIndex++
			stats.FilesDiscovered++
			stats.FilesScanned++
			continue
		}

		wildcard := strings.ContainsAny(p.Glob, "*?[{")

		matches, err := doublestar.FilepathGlob(p.Glob)
		if err != nil {
			return nil, stats, &PatternError{Pattern: p.Glob, Err: err}
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			// Mark before filtering so a file matched by several
			// patterns is discovered and skipped at most once.
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match, wildcard, gi) {
				stats.FilesSkipped++
				continue
			}

			stats.FilesScanned++
			handles = append(handles, FileHandle{
				Path:      match,
				Extension: strings.TrimPrefix(filepath.Ext(match), "."),
			})
		}
	}

	// Sorted by path so repeated runs over the same tree resolve
	// identically. Raw handles keep their configured order via the
	// raw: prefix and index.
	sort.Slice(handles, func(i, j int) bool {
		return handles[i].Path < handles[j].Path
	})

	return handles, stats, nil
}
