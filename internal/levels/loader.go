package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed layouts/*.yaml
var builtinFS embed.FS

// DefaultLayout is the layout used when none is named.
const DefaultLayout = "meadow"

// Loader handles loading layouts from a directory on top of the built-in
// ones. A directory layout with a built-in ID replaces it.
type Loader struct {
	Root string
}

// NewLoader creates a new layout loader. An empty root means built-ins only.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Builtin returns the embedded layouts sorted by ID.
func Builtin() ([]Layout, error) {
	entries, err := fs.ReadDir(builtinFS, "layouts")
	if err != nil {
		return nil, fmt.Errorf("reading embedded layouts: %w", err)
	}
	var layouts []Layout
	for _, e := range entries {
		data, err := builtinFS.ReadFile("layouts/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading embedded layout %s: %w", e.Name(), err)
		}
		l, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing embedded layout %s: %w", e.Name(), err)
		}
		layouts = append(layouts, l)
	}
	sortByID(layouts)
	return layouts, nil
}

// LoadAll returns the built-in layouts merged with every layout file under
// Root, sorted by ID for deterministic ordering. Invalid files are skipped.
func (l *Loader) LoadAll() ([]Layout, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Layout, len(builtin))
	for _, b := range builtin {
		byID[b.ID] = b
	}

	if l.Root != "" {
		err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
				return nil
			}
			layout, err := l.LoadFile(path)
			if err != nil {
				// Skip invalid files
				return nil
			}
			byID[layout.ID] = layout
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
		}
	}

	layouts := make([]Layout, 0, len(byID))
	for _, layout := range byID {
		layouts = append(layouts, layout)
	}
	sortByID(layouts)
	return layouts, nil
}

// LoadFile loads a single layout file.
func (l *Loader) LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	layout, err := ParseYAML(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	layout.FilePath = path
	return layout, nil
}

// LoadByID loads a specific layout by ID. An empty ID means DefaultLayout.
func (l *Loader) LoadByID(id string) (Layout, error) {
	if id == "" {
		id = DefaultLayout
	}
	layouts, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}
	for _, layout := range layouts {
		if layout.ID == id {
			return layout, nil
		}
	}
	return Layout{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all layout IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(layouts))
	for i, layout := range layouts {
		ids[i] = layout.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func sortByID(layouts []Layout) {
	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})
}
