package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primkit/config"
)

func TestStore_Basics(t *testing.T) {
	s := config.NewStore()
	require.NoError(t, s.Set("server.port", "8080"))
	require.NoError(t, s.Add("server.hosts", "a"))
	require.NoError(t, s.Add("server.hosts", "b"))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"server.hosts", "server.port"}, s.Names())
	assert.Equal(t, []string{"a", "b"}, s.Values("server.hosts"))
	assert.Nil(t, s.Values("missing"))

	p, err := s.Get("server.port")
	require.NoError(t, err)
	assert.Equal(t, "8080", p.Value())

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, config.ErrNotFound)

	// Returned values are copies.
	p.Values[0] = "changed"
	assert.Equal(t, "8080", s.String("server.port", ""))

	require.NoError(t, s.Remove("server.hosts"))
	assert.ErrorIs(t, s.Remove("server.hosts"), config.ErrNotFound)
}

func TestStore_Final(t *testing.T) {
	s := config.NewStore()
	require.NoError(t, s.Set("mode", "prod"))
	s.MarkFinal("mode")

	assert.True(t, s.IsFinal("mode"))
	assert.ErrorIs(t, s.Set("mode", "dev"), config.ErrFinal)
	assert.ErrorIs(t, s.Add("mode", "dev"), config.ErrFinal)
	assert.ErrorIs(t, s.Remove("mode"), config.ErrFinal)
	assert.ErrorIs(t, s.Put(config.Property{Name: "mode"}), config.ErrFinal)
	assert.Equal(t, "prod", s.String("mode", ""))

	s.MarkFinal("locked")
	p, ok := s.Lookup("locked")
	require.True(t, ok)
	assert.True(t, p.Final)
	assert.Empty(t, p.Values)
}

func TestStore_TypedGetters(t *testing.T) {
	s := config.NewStore()
	require.NoError(t, s.Set("port", "8080"))
	require.NoError(t, s.Set("big", "9000000000"))
	require.NoError(t, s.Set("ratio", "0.75"))
	require.NoError(t, s.Set("debug", "true"))
	require.NoError(t, s.Set("timeout", "1m30s"))
	require.NoError(t, s.Set("tags", "x", "y"))
	require.NoError(t, s.Set("bad", "eleven"))

	assert.Equal(t, 8080, s.Int("port", 0))
	assert.Equal(t, int64(9000000000), s.Int64("big", 0))
	assert.InDelta(t, 0.75, s.Float("ratio", 0), 1e-9)
	assert.True(t, s.Bool("debug", false))
	assert.Equal(t, 90*time.Second, s.Duration("timeout", 0))
	assert.Equal(t, []string{"x", "y"}, s.Strings("tags", nil))
	assert.Equal(t, "x", s.String("tags", ""))

	assert.Equal(t, 7, s.Int("missing", 7))
	assert.Equal(t, []string{"d"}, s.Strings("missing", []string{"d"}))
	assert.Equal(t, 3, s.Int("bad", 3))
}

func TestStore_IntLeadingZeros(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"010", 10},
		{"08", 8},
		{"-007", -7},
		{"+0042", 42},
		{"0", 0},
		{"00", 0},
		{" 09 ", 9},
		{"0x1f", 31},
	}
	for _, tt := range tests {
		s := config.NewStore()
		require.NoError(t, s.Set("n", tt.in))
		v, err := config.IntProperty("n", -1).Get(s)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, v, tt.in)
		assert.Equal(t, int64(tt.want), s.Int64("n", -1), tt.in)
	}
}

func TestTypedProperty(t *testing.T) {
	s := config.NewStore()
	require.NoError(t, s.Set("workers", "4"))
	require.NoError(t, s.Set("bad", "four"))

	workers := config.IntProperty("workers", 1)
	v, err := workers.Get(s)
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	v, err = config.IntProperty("absent", 1).Get(s)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = config.IntProperty("bad", 2).Get(s)
	assert.ErrorIs(t, err, config.ErrType)
	assert.Equal(t, 2, v)

	upper := config.NewTypedProperty("workers", "", func(s string) (string, error) {
		return "n=" + s, nil
	})
	assert.Equal(t, "n=4", upper.Value(s))
}
