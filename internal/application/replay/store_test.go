package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memItems is an in-memory itemStore
type memItems map[string][]byte

func (m memItems) LoadItem(key string) ([]byte, error) {
	return m[key], nil
}

func (m memItems) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())
	data := CreateTestReplayData(10, 1.0/60)
	data.Frames[3].R = true

	require.NoError(t, store.Save("run.json", &data))

	loaded, err := store.Load("run.json")
	require.NoError(t, err)
	assert.Equal(t, data.Stage, loaded.Stage)
	assert.Equal(t, data.Frames, loaded.Frames)
}

func TestFileStore_Missing(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, err := store.Load("none.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_RejectsEmptyReplay(t *testing.T) {
	empty := ReplayData{Version: Version}

	assert.Error(t, NewFileStore(t.TempDir()).Save("empty.json", &empty))
	assert.Error(t, (&GDataStore{items: memItems{}}).Save("empty", &empty))
}

func TestGDataStore_RoundTrip(t *testing.T) {
	store := &GDataStore{items: memItems{}}
	data := CreateTestReplayData(5, 0.02)

	_, err := store.Load("last")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save("last", &data))

	loaded, err := store.Load("last")
	require.NoError(t, err)
	assert.Equal(t, data.Frames, loaded.Frames)
}

func TestOpenGDataStore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	store, err := OpenGDataStore("arena-test")
	if err != nil {
		t.Skipf("app data storage unavailable: %v", err)
	}

	data := CreateTestReplayData(2, 0.5)
	require.NoError(t, store.Save("last", &data))

	loaded, err := store.Load("last")
	require.NoError(t, err)
	assert.Len(t, loaded.Frames, 2)
}
