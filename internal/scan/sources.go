package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SourceKind distinguishes archive sources from directory trees.
type SourceKind string

const (
	SourceJar SourceKind = "jar"
	SourceDir SourceKind = "dir"
)

// Source is one concrete scan target.
type Source struct {
	Kind SourceKind
	Path string
}

// ID is the provenance identifier attached to documents from this source:
// the jar file name, or the directory path.
func (s Source) ID() string {
	if s.Kind == SourceJar {
		return filepath.Base(s.Path)
	}
	return s.Path
}

func isArchiveName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jar", ".zip":
		return true
	default:
		return false
	}
}

// Discover expands user-provided input paths into concrete sources:
//
//   - a .jar/.zip file is an archive source
//   - a directory named "mods" expands to every *.jar/*.zip inside it, sorted
//   - any other directory is a datapack-style root scanned as-is
//
// A missing input path is an error (fatal precondition). Files of
// unsupported types are skipped.
func Discover(inputs []string) ([]Source, error) {
	var sources []Source

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("input path %q: %w", input, err)
		}

		if !info.IsDir() {
			if isArchiveName(input) {
				sources = append(sources, Source{Kind: SourceJar, Path: input})
			}
			continue
		}

		if strings.EqualFold(filepath.Base(input), "mods") {
			jars, err := archivesIn(input)
			if err != nil {
				return nil, err
			}
			sources = append(sources, jars...)
			continue
		}

		sources = append(sources, Source{Kind: SourceDir, Path: input})
	}

	return sources, nil
}

func archivesIn(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read mods directory %q: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isArchiveName(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	sources := make([]Source, 0, len(names))
	for _, name := range names {
		sources = append(sources, Source{Kind: SourceJar, Path: filepath.Join(dir, name)})
	}
	return sources, nil
}
