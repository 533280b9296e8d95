package favorites

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airwave/internal/domain"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	store := NewStore(path)

	saved := []domain.Station{
		{ID: "npr", Name: "NPR", StreamURL: "https://npr-ice.streamguys1.com/live.mp3", Votes: 700},
		{ID: "soma-groove", Name: "SomaFM Groove Salad", StreamURL: "https://ice2.somafm.com/groovesalad-128-mp3"},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestStoreLoadMissingFileIsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope", "favorites.json"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStoreLoadLegacyIDList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte(`["bbc-world-service","npr"]`), 0644))

	loaded, err := NewStore(path).Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, domain.Station{ID: "bbc-world-service", Name: "bbc-world-service"}, loaded[0])
	assert.Equal(t, domain.Station{ID: "npr", Name: "npr"}, loaded[1])
}

func TestStoreLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0644))

	_, err := NewStore(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse favorites file")
}

func TestStoreSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deeply", "nested", "favorites.json")
	store := NewStore(path)

	require.NoError(t, store.Save(nil))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body), "nil saves as an empty array, not null")
}
