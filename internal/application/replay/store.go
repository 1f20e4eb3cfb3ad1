package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/quasilyte/gdata"
)

// ErrNotFound is returned when a store has no replay under the given name
var ErrNotFound = errors.New("replay not found")

// Store persists replays by name
type Store interface {
	Save(name string, data *ReplayData) error
	Load(name string) (*ReplayData, error)
}

// Encode serializes replay data as indented JSON
func Encode(data *ReplayData) ([]byte, error) {
	if len(data.Frames) == 0 {
		return nil, fmt.Errorf("no frames to save")
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode replay: %w", err)
	}
	return out, nil
}

// Decode parses replay JSON
func Decode(raw []byte) (*ReplayData, error) {
	var data ReplayData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return Decode(raw)
}

// FileStore keeps replays as JSON files in a directory
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Save writes the replay to dir/name
func (s *FileStore) Save(name string, data *ReplayData) error {
	raw, err := Encode(data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create replay dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	return nil
}

// Load reads dir/name
func (s *FileStore) Load(name string) (*ReplayData, error) {
	return LoadReplay(filepath.Join(s.dir, name))
}

// itemStore is the subset of *gdata.Manager used by GDataStore
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// GDataStore keeps replays in the per-user application data directory
type GDataStore struct {
	items itemStore
}

// OpenGDataStore opens the application data storage for appName
func OpenGDataStore(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open app data: %w", err)
	}
	return &GDataStore{items: m}, nil
}

// Save stores the replay under name
func (s *GDataStore) Save(name string, data *ReplayData) error {
	raw, err := Encode(data)
	if err != nil {
		return err
	}
	if err := s.items.SaveItem(name, raw); err != nil {
		return fmt.Errorf("failed to save replay %s: %w", name, err)
	}
	return nil
}

// Load returns the replay stored under name
func (s *GDataStore) Load(name string) (*ReplayData, error) {
	raw, err := s.items.LoadItem(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load replay %s: %w", name, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return Decode(raw)
}
