package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "bitrot.dev/pkg/bitrot/internal/model"
)

func TestReportStore_SaveLoad(t *testing.T) {
	store := NewReportStore(NewLocalFileAdapter())
	path := m.Path(filepath.Join(t.TempDir(), "report.yaml"))
	seed := uint64(42)

	reports := []m.FixtureReport{{
		Original:  "original.bin",
		Corrupted: "corrupted.bin",
		Size:      500,
		Seed:      &seed,
		Burst:     m.BurstSpec{Count: 2, MeanLength: 50, StdLength: 10},
		Random:    m.RandomSpec{Count: 0},
		Bursts:    []m.BurstEvent{{Position: 10, Length: 48}, {Position: 480, Length: 20}},
		Positions: []int{},
		Touched:   68,
		Changed:   66,
	}}

	require.NoError(t, store.SaveReports(path, reports))

	loaded, err := store.LoadReports(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, reports[0].Bursts, loaded[0].Bursts)
	assert.Equal(t, reports[0].Burst, loaded[0].Burst)
	require.NotNil(t, loaded[0].Seed)
	assert.Equal(t, seed, *loaded[0].Seed)
	assert.Equal(t, 66, loaded[0].Changed)
}

func TestReportStore_LoadMissing(t *testing.T) {
	store := NewReportStore(NewLocalFileAdapter())

	_, err := store.LoadReports(m.Path(filepath.Join(t.TempDir(), "none.yaml")))
	assert.Error(t, err)
}

func TestReportStore_LoadInvalid(t *testing.T) {
	files := NewLocalFileAdapter()
	store := NewReportStore(files)
	path := m.Path(filepath.Join(t.TempDir(), "bad.yaml"))
	require.NoError(t, files.WriteFile(path, []byte("::: not yaml [")))

	_, err := store.LoadReports(path)
	assert.Error(t, err)
}
