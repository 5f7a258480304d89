package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesavant42/peoplesome-ng/internal/query"
)

func loc(t *testing.T, raw string) query.Location {
	t.Helper()
	l, err := query.ParseLocation(raw)
	require.NoError(t, err)
	return l
}

func TestHistoryBackForwardRoundTrip(t *testing.T) {
	h := NewHistory(loc(t, "/people"))

	steps := []string{
		"/people?sex=f",
		"/people?centuries=16&centuries=19&sex=f",
		"/people/anna-1850?centuries=16&centuries=19&order=desc&query=an&sex=f&sort=born",
	}
	for _, s := range steps {
		assert.True(t, h.Push(loc(t, s)))
	}

	for i := len(steps) - 2; i >= 0; i-- {
		require.True(t, h.Back())
		assert.Equal(t, steps[i], h.Current().String())
	}
	require.True(t, h.Back())
	assert.Equal(t, "/people", h.Current().String())
	assert.False(t, h.Back())

	for _, s := range steps {
		require.True(t, h.Forward())
		assert.Equal(t, s, h.Current().String())
	}
	assert.False(t, h.Forward())
}

func TestHistoryPushTruncatesForward(t *testing.T) {
	h := NewHistory(loc(t, "/people"))
	h.Push(loc(t, "/people?sex=m"))
	h.Push(loc(t, "/people?sex=f"))

	require.True(t, h.Back())
	h.Push(loc(t, "/people?sort=name"))

	assert.False(t, h.CanForward())
	require.True(t, h.Back())
	assert.Equal(t, "/people?sex=m", h.Current().String())
	require.True(t, h.Back())
	assert.False(t, h.CanBack())
}

func TestHistoryPushSameIsNoop(t *testing.T) {
	h := NewHistory(loc(t, "/people?sex=m"))
	assert.False(t, h.Push(loc(t, "/people?sex=m")))
	assert.False(t, h.CanBack())
}

func TestHistoryReplace(t *testing.T) {
	h := NewHistory(loc(t, "/people"))
	h.Push(loc(t, "/people?query=a"))
	h.Replace(loc(t, "/people?query=an"))

	assert.Equal(t, "/people?query=an", h.Current().String())
	require.True(t, h.Back())
	assert.False(t, h.CanBack())
	require.True(t, h.Forward())
	assert.Equal(t, "/people?query=an", h.Current().String())
}
