package csvfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tokyo-toilet-data/internal/domain"
	apperrors "github.com/tokyo-toilet-data/internal/pkg/errors"
	"github.com/tokyo-toilet-data/internal/repository/csvfile"
)

func TestRepositoryRoundTrip(t *testing.T) {
	repo := csvfile.New(zap.NewNop())
	path := filepath.Join(t.TempDir(), "out", "nested", "facilities.csv")

	table := domain.NewTable([]string{"name", "address", "lat", "lng"})
	table.Append(domain.Record{"name": "施設A", "address": "千代田区1-1", "lat": "35.68", "lng": "139.76"})
	table.Append(domain.Record{"name": "施設, B", "address": "港区 \"南\" 2-2", "lat": "35.65", "lng": "139.74"})

	require.NoError(t, repo.Save(path, table))
	assert.True(t, repo.Exists(path))

	loaded, err := repo.Load(path)
	require.NoError(t, err)
	assert.Equal(t, table.Header, loaded.Header)
	require.Equal(t, table.Len(), loaded.Len())
	assert.Equal(t, table.Rows, loaded.Rows)
}

func TestRepositoryLoad(t *testing.T) {
	repo := csvfile.New(zap.NewNop())

	t.Run("missing file is a missing-input error", func(t *testing.T) {
		_, err := repo.Load(filepath.Join(t.TempDir(), "absent.csv"))
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeMissingInputFile, apperrors.CodeOf(err))
	})

	t.Run("empty file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		_, err := repo.Load(path)
		assert.Error(t, err)
	})

	t.Run("short rows are padded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ragged.csv")
		require.NoError(t, os.WriteFile(path, []byte("name,address,lat\nA,千代田区\n"), 0o644))
		table, err := repo.Load(path)
		require.NoError(t, err)
		require.Equal(t, 1, table.Len())
		assert.Equal(t, domain.Record{"name": "A", "address": "千代田区", "lat": ""}, table.Rows[0])
	})
}

func TestRepositoryList(t *testing.T) {
	repo := csvfile.New(zap.NewNop())
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte("h\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("h\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0o755))

	paths, err := repo.List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.csv"),
		filepath.Join(dir, "b.csv"),
	}, paths)

	t.Run("missing directory yields empty list", func(t *testing.T) {
		paths, err := repo.List(filepath.Join(dir, "absent"))
		require.NoError(t, err)
		assert.Empty(t, paths)
	})
}
