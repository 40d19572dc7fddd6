package dataset

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureHeader = "FID,SRC_AGENCY,LATITUDE,LONGITUDE,YEAR,MONTH,SIZE_HA,CAUSE\n"

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nfdb_points.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("reads required columns only", func(t *testing.T) {
		path := writeFixture(t, fixtureHeader+
			"1,BC,54.5,-122.3,2001,6,12.5,L\n"+
			"2,AB,51.1,-110.0,1999,7,0.3,H\n")

		res, err := Load(path)

		require.NoError(t, err)
		require.Len(t, res.Table, 2)
		assert.Equal(t, 0, res.RowsSkipped)

		first := res.Table[0]
		assert.Equal(t, 54.5, first.Latitude)
		assert.Equal(t, -122.3, first.Longitude)
		assert.Equal(t, 2001, first.Year)
		assert.Equal(t, 12.5, first.SizeHA)
		assert.Equal(t, "L", first.Cause)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing column", func(t *testing.T) {
		path := writeFixture(t, "LATITUDE,LONGITUDE,YEAR,SIZE_HA\n54.5,-122.3,2001,12.5\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), "CAUSE")
	})

	t.Run("misnamed column", func(t *testing.T) {
		path := writeFixture(t, "LAT,LONGITUDE,YEAR,SIZE_HA,CAUSE\n")

		_, err := Load(path)

		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("rows with bad coordinates or year are skipped", func(t *testing.T) {
		path := writeFixture(t, fixtureHeader+
			"1,BC,not-a-number,-122.3,2001,6,12.5,L\n"+
			"2,BC,54.5,-122.3,20xx,6,12.5,L\n"+
			"3,BC,54.5,-122.3,2001,6,12.5,L\n")

		res, err := Load(path)

		require.NoError(t, err)
		assert.Len(t, res.Table, 1)
		assert.Equal(t, 2, res.RowsSkipped)
	})

	t.Run("bad size degrades to NaN", func(t *testing.T) {
		path := writeFixture(t, fixtureHeader+
			"1,BC,54.5,-122.3,2001,6,,L\n"+
			"2,BC,54.5,-122.3,2001,6,UNK,H\n")

		res, err := Load(path)

		require.NoError(t, err)
		require.Len(t, res.Table, 2)
		assert.True(t, math.IsNaN(res.Table[0].SizeHA))
		assert.True(t, math.IsNaN(res.Table[1].SizeHA))
		assert.Equal(t, 0, res.RowsSkipped)
	})

	t.Run("empty cause becomes Unknown", func(t *testing.T) {
		path := writeFixture(t, fixtureHeader+"1,BC,54.5,-122.3,2001,6,1.0,\n")

		res, err := Load(path)

		require.NoError(t, err)
		require.Len(t, res.Table, 1)
		assert.Equal(t, "Unknown", res.Table[0].Cause)
	})

	t.Run("short rows are skipped", func(t *testing.T) {
		path := writeFixture(t, fixtureHeader+"1,BC,54.5\n1,BC,54.5,-122.3,2001,6,1.0,L\n")

		res, err := Load(path)

		require.NoError(t, err)
		assert.Len(t, res.Table, 1)
		assert.Equal(t, 1, res.RowsSkipped)
	})

	t.Run("header only yields empty table", func(t *testing.T) {
		path := writeFixture(t, fixtureHeader)

		res, err := Load(path)

		require.NoError(t, err)
		assert.Empty(t, res.Table)
	})

	t.Run("LoadedAt uses the package clock", func(t *testing.T) {
		frozen := time.Date(2024, time.June, 13, 12, 0, 0, 0, time.UTC)
		SetClock(clockwork.NewFakeClockAt(frozen))
		defer SetClock(nil)

		path := writeFixture(t, fixtureHeader+"1,BC,54.5,-122.3,2001,6,1.0,L\n")

		res, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, frozen, res.LoadedAt)
	})
}
