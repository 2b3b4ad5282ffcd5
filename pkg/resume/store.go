package resume

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrTemplateNotFound indicates the named resume template does not exist.
var ErrTemplateNotFound = errors.New("template not found")

// Store loads named resume templates from a directory. Template "michael"
// resolves to <dir>/michael.json.
type Store struct {
	dir string
}

// NewStore creates a template store rooted at dir.
func NewStore(dir string) (store *Store) {
	store = &Store{dir: dir}
	return store
}

// Load reads and parses the named template.
func (s *Store) Load(name string) (record Resume, err error) {
	if name == "" {
		name = "default"
	}

	// Template names come from clients; never let them escape the store dir
	base := filepath.Base(strings.TrimSuffix(name, ".json"))
	path := filepath.Join(s.dir, base+".json")

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Wrapf(ErrTemplateNotFound, "%s", base)
			return record, err
		}
		err = errors.Wrapf(err, "failed to read template: %s", path)
		return record, err
	}

	err = json.Unmarshal(data, &record)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse template: %s", path)
		return record, err
	}

	return record, err
}

// List returns the available template names, sorted.
func (s *Store) List() (names []string, err error) {
	var entries []os.DirEntry
	entries, err = os.ReadDir(s.dir)
	if err != nil {
		err = errors.Wrapf(err, "failed to read template directory: %s", s.dir)
		return names, err
	}

	names = make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}

	sort.Strings(names)
	return names, err
}
