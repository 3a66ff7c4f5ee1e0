package pointset

import (
	"testing"

	"github.com/hupe1980/geo3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertKeepAll(t *testing.T) {
	s := New()
	err := s.Insert([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 0, 0})
	require.NoError(t, err)

	// The sequence keeps every insertion, duplicates included.
	assert.Equal(t, 3, s.Len())

	// Reverse lookup resolves to the last insertion of the coordinates.
	i, err := s.IndexOf([3]float64{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = s.IndexOf(geo3d.NewPoint(1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}

func TestInsertSkipDuplicates(t *testing.T) {
	s := New(WithDuplicatePolicy(SkipDuplicates))
	err := s.Insert([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 0, 0})
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())

	// The first insertion keeps its position.
	i, err := s.IndexOf([3]float64{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, i)
}

func TestFromValues(t *testing.T) {
	t.Run("MixedShapes", func(t *testing.T) {
		s, err := FromValues([]any{
			geo3d.NewPoint(1, 2, 3),
			geo3d.NewVec3(4, 5, 6),
			[3]float64{7, 8, 9},
			[]float64{10, 11, 12},
		})
		require.NoError(t, err)

		assert.Equal(t, 4, s.Len())
		assert.Equal(t, geo3d.NewPoint(4, 5, 6), s.At(1))
		assert.Equal(t, geo3d.NewPoint(10, 11, 12), s.At(3))
	})

	t.Run("BadValue", func(t *testing.T) {
		_, err := FromValues([]any{[3]float64{1, 2, 3}, "not a point"})
		var uo *geo3d.ErrUnsupportedOperand
		require.ErrorAs(t, err, &uo)
	})

	t.Run("BadValueAppliesNothing", func(t *testing.T) {
		s := New()
		err := s.Insert([3]float64{1, 2, 3}, "not a point")
		require.Error(t, err)
		assert.Equal(t, 0, s.Len())
	})
}

func TestAt(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert([3]float64{1, 0, 0}, [3]float64{0, 2, 0}, [3]float64{0, 0, 3}))

	assert.Equal(t, geo3d.NewPoint(1, 0, 0), s.At(0))
	assert.Equal(t, geo3d.NewPoint(0, 0, 3), s.At(-1))
	assert.Equal(t, geo3d.NewPoint(1, 0, 0), s.At(-3))
	assert.Panics(t, func() { s.At(3) })
}

func TestSlice(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert([3]float64{1, 0, 0}, [3]float64{0, 2, 0}, [3]float64{0, 0, 3}))

	got := s.Slice(0, 2)
	assert.Equal(t, []geo3d.Point{geo3d.NewPoint(1, 0, 0), geo3d.NewPoint(0, 2, 0)}, got)
	assert.Panics(t, func() { s.Slice(0, 4) })
}

func TestGet(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert([3]float64{1, 0, 0}, [3]float64{0, 2, 0}))

	t.Run("ByPosition", func(t *testing.T) {
		got, err := s.Get(0)
		require.NoError(t, err)
		assert.Equal(t, geo3d.NewPoint(1, 0, 0), got)

		got, err = s.Get(-1)
		require.NoError(t, err)
		assert.Equal(t, geo3d.NewPoint(0, 2, 0), got)
	})

	t.Run("ByCoordinates", func(t *testing.T) {
		got, err := s.Get([3]float64{0, 2, 0})
		require.NoError(t, err)
		assert.Equal(t, 1, got)

		got, err = s.Get(geo3d.NewPoint(1, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := s.Get(2)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = s.Get(-3)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := s.Get([3]float64{9, 9, 9})
		assert.ErrorIs(t, err, ErrPointNotFound)
	})

	t.Run("UnsupportedKey", func(t *testing.T) {
		_, err := s.Get("x")
		var uo *geo3d.ErrUnsupportedOperand
		require.ErrorAs(t, err, &uo)
	})
}

func TestIndexOfNotFound(t *testing.T) {
	s := New()
	_, err := s.IndexOf([3]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrPointNotFound)
}

func TestPointsIsFresh(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert([3]float64{1, 0, 0}, [3]float64{0, 2, 0}))

	pts := s.Points()
	require.Len(t, pts, 2)
	pts[0] = geo3d.NewPoint(9, 9, 9)

	// Mutating the returned slice must not leak into the set.
	assert.Equal(t, geo3d.NewPoint(1, 0, 0), s.At(0))
	assert.Equal(t, geo3d.NewPoint(1, 0, 0), s.Points()[0])
}

func TestExactIdentity(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert([3]float64{1, 0, 0}))

	// Identity is exact; nearby coordinates are distinct points.
	_, err := s.IndexOf([3]float64{1 + 1e-12, 0, 0})
	assert.ErrorIs(t, err, ErrPointNotFound)
}
