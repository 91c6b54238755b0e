package leveldata

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// levelPrefix is the file stem prefix of sequence levels: level_1.tmx, level_2.tmx...
const levelPrefix = "level_"

// Loader reads TMX levels from a file system. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
type Loader struct {
	FS  fs.FS
	Dir string

	// Endless holds the file stems allowed to omit the end zone.
	Endless map[string]bool
}

func NewLoader(fsys fs.FS, dir string, endless ...string) *Loader {
	l := &Loader{
		FS:      fsys,
		Dir:     dir,
		Endless: make(map[string]bool, len(endless)),
	}
	for _, name := range endless {
		l.Endless[name] = true
	}
	return l
}

// LoadLevel parses and interprets one TMX file.
func (l *Loader) LoadLevel(tmxPath string) (*LevelDescriptor, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(l.FS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	stem := strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))
	desc, err := Interpret(stem, levelMap, l.Endless[stem])
	if err != nil {
		return nil, err
	}
	desc.Number, _ = levelNumber(stem)
	return desc, nil
}

// LoadAll loads every level_N.tmx in Dir, ordered by N. Numbers must run
// from 1 without gaps so that level index i always loads level i+1. Files
// with other names are skipped.
func (l *Loader) LoadAll() ([]*LevelDescriptor, error) {
	pattern := path.Join(l.Dir, "*.tmx")
	matches, err := fs.Glob(l.FS, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	type numbered struct {
		n    int
		path string
	}
	var files []numbered
	for _, p := range matches {
		stem := strings.TrimSuffix(path.Base(p), ".tmx")
		n, ok := levelNumber(stem)
		if !ok {
			log.Printf("Warning: skipping %s: level files must be named %sN.tmx", p, levelPrefix)
			continue
		}
		files = append(files, numbered{n: n, path: p})
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", l.Dir, ErrNoLevels)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].n < files[j].n
	})

	levels := make([]*LevelDescriptor, 0, len(files))
	for i, f := range files {
		if f.n != i+1 {
			return nil, fmt.Errorf("%s: expected %s%d.tmx, found %s", l.Dir, levelPrefix, i+1, path.Base(f.path))
		}
		desc, err := l.LoadLevel(f.path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", f.path, err)
		}
		levels = append(levels, desc)
	}

	return levels, nil
}

func levelNumber(stem string) (int, bool) {
	if !strings.HasPrefix(stem, levelPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(stem, levelPrefix))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
