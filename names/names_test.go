package names

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, s Sink) (*Cache, *mockLogger) {
	t.Helper()
	l := &mockLogger{}
	c, err := New(Options{Sink: s, Logger: l})
	require.NoError(t, err)
	return c, l
}

func stored(t *testing.T, s *mockSink) []string {
	t.Helper()
	var r record
	require.NoError(t, json.Unmarshal(s.data, &r))
	return r.Tags
}

func TestFirstRun(t *testing.T) {
	c, l := newTestCache(t, &mockSink{})

	assert.Empty(t, c.All())
	assert.NoError(t, c.Load())
	assert.Empty(t, l.errors)
}

func TestRoundTrip(t *testing.T) {
	s := &mockSink{}
	c, _ := newTestCache(t, s)

	require.NoError(t, c.Add("a", "b", "a"))
	assert.Equal(t, []string{"a", "b"}, c.All())
	assert.Equal(t, []string{"a", "b"}, stored(t, s))

	reloaded, _ := newTestCache(t, s)
	assert.Equal(t, []string{"a", "b"}, reloaded.All())

	require.NoError(t, c.Destroy("a"))
	require.NoError(t, reloaded.Load())
	assert.Equal(t, []string{"b"}, c.All())
	assert.Equal(t, []string{"b"}, reloaded.All())
}

func TestAddSortsAndSkipsEmpty(t *testing.T) {
	c, _ := newTestCache(t, &mockSink{})

	require.NoError(t, c.Add("enemy", "", "boss", "Boss"))
	assert.Equal(t, []string{"Boss", "boss", "enemy"}, c.All())
	assert.True(t, c.Contains("boss"))
	assert.False(t, c.Contains("rare"))
}

func TestAddMergesWithStored(t *testing.T) {
	s := &mockSink{}
	c, _ := newTestCache(t, s)
	require.NoError(t, c.Add("a"))

	other, _ := newTestCache(t, s)
	require.NoError(t, other.Add("z"))

	require.NoError(t, c.Add("m"))
	assert.Equal(t, []string{"a", "m", "z"}, c.All())
}

func TestDestroyAbsent(t *testing.T) {
	s := &mockSink{}
	c, _ := newTestCache(t, s)
	require.NoError(t, c.Add("a"))

	require.NoError(t, c.Destroy("b"))
	assert.Equal(t, []string{"a"}, c.All())
	assert.Equal(t, []string{"a"}, stored(t, s))
}

func TestAllReturnsCopy(t *testing.T) {
	c, _ := newTestCache(t, &mockSink{})
	require.NoError(t, c.Add("a", "b"))

	n := c.All()
	n[0] = "x"
	assert.Equal(t, []string{"a", "b"}, c.All())
}

func TestWriteFails(t *testing.T) {
	s := &mockSink{}
	c, l := newTestCache(t, s)
	require.NoError(t, c.Add("a"))

	s.failNextWrite = true
	err := c.Add("b")
	assert.ErrorIs(t, err, errForgedError)
	assert.Len(t, l.errors, 1)

	assert.Equal(t, []string{"a", "b"}, c.All(), "in-memory list stays usable")
	assert.Equal(t, []string{"a"}, stored(t, s), "stored record stays stale")

	require.NoError(t, c.Add("c"))
	assert.Equal(t, []string{"a", "c"}, c.All())
}

func TestReadFails(t *testing.T) {
	t.Run("on load", func(t *testing.T) {
		s := &mockSink{}
		c, l := newTestCache(t, s)
		require.NoError(t, c.Add("a"))

		s.failNextRead = true
		assert.ErrorIs(t, c.Load(), errForgedError)
		assert.Equal(t, []string{"a"}, c.All())
		assert.Len(t, l.errors, 1)
	})

	t.Run("on add, falls back to the cached list", func(t *testing.T) {
		s := &mockSink{}
		c, l := newTestCache(t, s)
		require.NoError(t, c.Add("a"))

		s.failNextRead = true
		require.NoError(t, c.Add("b"))
		assert.Equal(t, []string{"a", "b"}, c.All())
		assert.Equal(t, []string{"a", "b"}, stored(t, s))
		assert.Len(t, l.errors, 1)
	})
}

func TestReloadFailsAfterWrite(t *testing.T) {
	s := &mockSink{}
	c, l := newTestCache(t, s)
	require.NoError(t, c.Add("a"))

	s.failReadAfterWrite = true
	err := c.Add("b")
	assert.ErrorIs(t, err, errForgedError)
	assert.Len(t, l.errors, 1)

	assert.Equal(t, []string{"a", "b"}, stored(t, s))
	assert.Equal(t, []string{"a", "b"}, c.All(), "written list stays in memory")
}

func TestDamagedRecord(t *testing.T) {
	t.Run("on new", func(t *testing.T) {
		s := &mockSink{data: []byte{'['}, exists: true}
		c, l := newTestCache(t, s)

		assert.Empty(t, c.All())
		assert.Len(t, l.errors, 1)
		assert.ErrorIs(t, c.Load(), ErrDamagedRecord)
	})

	t.Run("add repairs", func(t *testing.T) {
		s := &mockSink{data: []byte(`{"tags": 42}`), exists: true}
		c, _ := newTestCache(t, s)

		require.NoError(t, c.Add("a"))
		assert.Equal(t, []string{"a"}, stored(t, s))
		assert.Equal(t, []string{"a"}, c.All())
	})

	t.Run("stored duplicates are cleaned", func(t *testing.T) {
		s := &mockSink{data: []byte(`{"tags": ["b", "a", "b"]}`), exists: true}
		c, _ := newTestCache(t, s)
		assert.Equal(t, []string{"a", "b"}, c.All())
	})
}

func TestUnknownDriver(t *testing.T) {
	_, err := New(Options{SinkOptions: SinkOptions{Driver: "foo"}})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestClose(t *testing.T) {
	s := &mockSink{}
	c, _ := newTestCache(t, s)
	c.Close()
	assert.True(t, s.closed)
}

func TestSuggest(t *testing.T) {
	c, _ := newTestCache(t, &mockSink{})
	require.NoError(t, c.Add("enemy", "boss", "bush", "ally", "enemies"))

	t.Run("prefix first", func(t *testing.T) {
		assert.Equal(t, []string{"enemy", "enemies"}, c.Suggest("ene", 2))
	})

	t.Run("typo", func(t *testing.T) {
		assert.Equal(t, []string{"boss"}, c.Suggest("bos", 1))
		assert.Equal(t, "enemy", c.Suggest("enmey", 1)[0])
	})

	t.Run("no limit", func(t *testing.T) {
		assert.Len(t, c.Suggest("x", 0), 5)
	})

	t.Run("empty cache", func(t *testing.T) {
		empty, _ := newTestCache(t, &mockSink{})
		assert.Empty(t, empty.Suggest("a", 3))
	})
}
