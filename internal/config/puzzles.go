package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/addisonking/zsweep/internal/board"
	"gopkg.in/yaml.v3"
)

// Puzzle is a board mask loaded from a YAML file.
type Puzzle struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Rows     []string `yaml:"rows"`
	FilePath string   `yaml:"-"`
}

// Board builds a fresh board from the puzzle mask.
func (p Puzzle) Board() (*board.Board, error) {
	b, err := board.Parse(p.Rows)
	if err != nil {
		return nil, fmt.Errorf("puzzle %s: %w", p.ID, err)
	}
	return b, nil
}

// Size returns the puzzle dimensions.
func (p Puzzle) Size() (rows, cols int) {
	if len(p.Rows) == 0 {
		return 0, 0
	}
	return len(p.Rows), len(p.Rows[0])
}

// ParsePuzzle parses and validates a puzzle file.
func ParsePuzzle(data []byte) (Puzzle, error) {
	var p Puzzle
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Puzzle{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if p.ID == "" {
		return Puzzle{}, fmt.Errorf("puzzle has no id")
	}
	for i, row := range p.Rows {
		p.Rows[i] = strings.TrimSpace(row)
	}
	if _, err := p.Board(); err != nil {
		return Puzzle{}, err
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	return p, nil
}

// Loader handles loading puzzles from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader rooted at dir on the local filesystem.
func NewLoader(dir string) *Loader {
	dir = ExpandHome(dir)
	return &Loader{Root: ".", fsys: os.DirFS(dir)}
}

// LoadAll recursively scans and loads all puzzle files.
// Invalid files are skipped. Puzzles are sorted by ID.
func (l *Loader) LoadAll() ([]Puzzle, error) {
	var puzzles []Puzzle

	err := fs.WalkDir(l.fsys, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isPuzzleFile(p) {
			return nil
		}

		puzzle, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		puzzles = append(puzzles, puzzle)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking puzzles: %w", err)
	}

	sort.Slice(puzzles, func(i, j int) bool {
		return puzzles[i].ID < puzzles[j].ID
	})
	return puzzles, nil
}

// LoadFile loads a single puzzle file relative to the loader root.
func (l *Loader) LoadFile(name string) (Puzzle, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return Puzzle{}, fmt.Errorf("reading file %s: %w", name, err)
	}
	p, err := ParsePuzzle(data)
	if err != nil {
		return Puzzle{}, fmt.Errorf("parsing file %s: %w", name, err)
	}
	p.FilePath = name
	return p, nil
}

// LoadByID loads a specific puzzle by ID.
func (l *Loader) LoadByID(id string) (Puzzle, error) {
	puzzles, err := l.LoadAll()
	if err != nil {
		return Puzzle{}, err
	}
	for _, p := range puzzles {
		if p.ID == id {
			return p, nil
		}
	}
	return Puzzle{}, fmt.Errorf("puzzle not found: %s", id)
}

// ReadPuzzleFile loads a puzzle from a path on disk.
func ReadPuzzleFile(p string) (Puzzle, error) {
	data, err := os.ReadFile(ExpandHome(p))
	if err != nil {
		return Puzzle{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	puzzle, err := ParsePuzzle(data)
	if err != nil {
		return Puzzle{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	puzzle.FilePath = p
	return puzzle, nil
}

// IsPuzzlePath reports whether arg names a puzzle file rather than a preset.
func IsPuzzlePath(arg string) bool {
	return isPuzzleFile(arg)
}

func isPuzzleFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
