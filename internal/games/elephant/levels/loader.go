// Package levels loads elephant level packs: the embedded default pack plus
// any pack files found under a user directory.
// This package depends on puzzle but puzzle does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tusk/internal/games/elephant/levels/formats"
	"github.com/vovakirdan/tusk/internal/games/elephant/puzzle"
)

//go:embed packs/*.yaml
var builtinPacks embed.FS

// ErrNotFound is returned when no level has the requested id.
var ErrNotFound = errors.New("level not found")

// Level is one playable level with its pack context.
type Level struct {
	ID       string
	Name     string
	PackID   string
	PackName string
	Index    int // position inside the pack
	Par      int // 0 when unknown
	Layout   string
	Metadata map[string]string
	FilePath string // "builtin:<file>" for embedded packs
}

// World parses the layout into the level's initial world.
// A *puzzle.FormatError is wrapped and can be found with errors.As.
func (l Level) World() (*puzzle.World, error) {
	w, err := puzzle.ParseLevel(l.Layout)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return w, nil
}

// Title returns "Pack / Name".
func (l Level) Title() string {
	return l.PackName + " / " + l.Name
}

// Loader collects levels from the embedded packs and an optional directory.
type Loader struct {
	Root    string // extra pack directory, may be empty
	Builtin bool   // include the embedded packs

	logger *log.Logger
}

// NewLoader creates a loader over the embedded packs and root.
// A nil logger uses the charmbracelet/log default.
func NewLoader(root string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		Root:    root,
		Builtin: true,
		logger:  logger.WithPrefix("levels"),
	}
}

// LoadAll loads every pack and returns the levels ordered by pack id, then by
// position inside the pack. Unreadable or invalid pack files are skipped with
// a warning; so are levels whose id was already taken, with builtin levels
// loaded first.
// Layouts are not parsed here.
func (l *Loader) LoadAll() ([]Level, error) {
	var packs [][]Level

	if l.Builtin {
		found, err := l.walk(builtinPacks, "builtin:")
		if err != nil {
			return nil, err
		}
		packs = append(packs, found...)
	}

	if l.Root != "" {
		found, err := l.walk(os.DirFS(l.Root), "")
		if err != nil {
			return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
		}
		packs = append(packs, found...)
	}

	// Earlier packs keep their ids: builtin first, then files in walk order.
	seen := make(map[string]string)
	kept := packs[:0]
	for _, pack := range packs {
		var levels []Level
		for _, lvl := range pack {
			if prev, dup := seen[lvl.ID]; dup {
				l.logger.Warn("duplicate level id, skipping", "id", lvl.ID, "file", lvl.FilePath, "first", prev)
				continue
			}
			seen[lvl.ID] = lvl.FilePath
			levels = append(levels, lvl)
		}
		if len(levels) > 0 {
			kept = append(kept, levels)
		}
	}

	// Sort packs by ID for determinism
	slices.SortStableFunc(kept, func(a, b []Level) int {
		return strings.Compare(a[0].PackID, b[0].PackID)
	})

	var all []Level
	for _, pack := range kept {
		all = append(all, pack...)
	}
	return all, nil
}

// walk finds pack files in fsys. prefix is prepended to paths for display.
func (l *Loader) walk(fsys fs.FS, prefix string) ([][]Level, error) {
	var packs [][]Level

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		display := prefix + p
		if prefix == "" {
			display = filepath.Join(l.Root, filepath.FromSlash(p))
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			l.logger.Warn("cannot read pack, skipping", "file", display, "err", err)
			return nil
		}
		pack, err := parsePack(data, display)
		if err != nil {
			l.logger.Warn("invalid pack, skipping", "file", display, "err", err)
			return nil
		}
		packs = append(packs, pack)
		return nil
	})

	return packs, err
}

// LoadFile loads a single pack file from disk.
func (l *Loader) LoadFile(p string) ([]Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(filepath.Ext(p))
	if !isSupportedExtension(ext) {
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}

	pack, err := parsePack(data, p)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", p, err)
	}
	return pack, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// IndexOf returns the position of the level with id, or -1.
func IndexOf(levels []Level, id string) int {
	return slices.IndexFunc(levels, func(l Level) bool { return l.ID == id })
}

func parsePack(data []byte, file string) ([]Level, error) {
	pack, err := formats.ParseYAML(data)
	if err != nil {
		return nil, err
	}

	out := make([]Level, len(pack.Levels))
	for i, pl := range pack.Levels {
		out[i] = Level{
			ID:       pl.ID,
			Name:     pl.Name,
			PackID:   pack.ID,
			PackName: pack.Name,
			Index:    i,
			Par:      pl.Par,
			Layout:   pl.Layout,
			Metadata: pl.Metadata,
			FilePath: file,
		}
	}
	return out, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}
