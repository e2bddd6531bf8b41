package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"primkit/config"
)

func stores(t *testing.T, opts ...config.Option) (*config.Store, *config.Store) {
	t.Helper()
	dst := config.NewStore(opts...)
	require.NoError(t, dst.Set("a", "1"))
	require.NoError(t, dst.Set("b", "x", "y"))
	require.NoError(t, dst.Set("locked", "keep"))
	dst.MarkFinal("locked")

	src := config.NewStore()
	require.NoError(t, src.Set("a", "2"))
	require.NoError(t, src.Set("b", "y", "z"))
	require.NoError(t, src.Set("locked", "new"))
	require.NoError(t, src.Set("c", "3"))
	return dst, src
}

func TestMerge_Policies(t *testing.T) {
	tests := []struct {
		policy config.MergePolicy
		values map[string][]string
		report config.MergeReport
	}{
		{
			policy: config.SkipIfPresent,
			values: map[string][]string{"a": {"1"}, "b": {"x", "y"}, "locked": {"keep"}, "c": {"3"}},
			report: config.MergeReport{Added: []string{"c"}, Skipped: []string{"a", "b", "locked"}},
		},
		{
			policy: config.UnionFinal,
			values: map[string][]string{"a": {"1", "2"}, "b": {"x", "y", "z"}, "locked": {"keep"}, "c": {"3"}},
			report: config.MergeReport{Added: []string{"c"}, Overwritten: []string{"a", "b"}, Blocked: []string{"locked"}},
		},
		{
			policy: config.OverwriteUnlessFinal,
			values: map[string][]string{"a": {"2"}, "b": {"y", "z"}, "locked": {"keep"}, "c": {"3"}},
			report: config.MergeReport{Added: []string{"c"}, Overwritten: []string{"a", "b"}, Blocked: []string{"locked"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			dst, src := stores(t)
			report := config.Merge(dst, src, tt.policy)
			assert.Equal(t, tt.report, report)
			for name, want := range tt.values {
				assert.Equal(t, want, dst.Values(name), name)
			}
			assert.True(t, dst.IsFinal("locked"))
		})
	}
}

func TestMerge_UnionPropagatesFinal(t *testing.T) {
	dst := config.NewStore()
	require.NoError(t, dst.Set("k", "v"))
	src := config.NewStore()
	require.NoError(t, src.Set("k", "v"))
	src.MarkFinal("k")

	report := config.Merge(dst, src, config.UnionFinal)
	assert.Equal(t, []string{"k"}, report.Overwritten)
	assert.True(t, dst.IsFinal("k"))

	report = config.Merge(dst, src, config.UnionFinal)
	assert.Equal(t, []string{"k"}, report.Blocked)
}

func TestMerge_SelfIsSafe(t *testing.T) {
	s := config.NewStore()
	require.NoError(t, s.Set("k", "v"))
	report := config.Merge(s, s, config.UnionFinal)
	assert.Equal(t, []string{"k"}, report.Skipped)
}

func TestMerge_LogsBlocked(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	dst, src := stores(t, config.WithLogger(zap.New(core)))

	config.Merge(dst, src, config.OverwriteUnlessFinal)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "overwrite of final property blocked", entries[0].Message)
	assert.Equal(t, "locked", entries[0].ContextMap()["name"])
}

func TestMerge_UnionLogsAddedValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	dst, src := stores(t, config.WithLogger(zap.New(core)))
	require.NoError(t, dst.Set("dup", "v", "v"))
	require.NoError(t, src.Set("dup", "v"))

	report := config.Merge(dst, src, config.UnionFinal)
	assert.Contains(t, report.Skipped, "dup")
	// nothing new arrives, so the entry is left untouched
	assert.Equal(t, []string{"v", "v"}, dst.Values("dup"))

	added := make(map[string]any)
	for _, e := range logs.FilterMessage("values unioned").All() {
		ctx := e.ContextMap()
		added[ctx["name"].(string)] = ctx["added"]
	}
	assert.Equal(t, map[string]any{
		"a": []any{"2"},
		"b": []any{"z"},
	}, added)
}

func TestParseMergePolicy(t *testing.T) {
	for _, name := range []string{"skip", "union", "overwrite"} {
		p, ok := config.ParseMergePolicy(name)
		require.True(t, ok)
		assert.Equal(t, name, p.String())
	}
	_, ok := config.ParseMergePolicy("replace")
	assert.False(t, ok)
}

func TestApplyEnv(t *testing.T) {
	s := config.NewStore()
	require.NoError(t, s.Set("server.port", "80"))
	require.NoError(t, s.Set("mode", "prod"))
	s.MarkFinal("mode")

	t.Setenv("PRIMKIT_SERVER_PORT", "9090")
	t.Setenv("PRIMKIT_MODE", "dev")
	t.Setenv("PRIMKIT_", "ignored")

	report := s.ApplyEnv("primkit")
	assert.Equal(t, []string{"server.port"}, report.Overwritten)
	assert.Equal(t, []string{"mode"}, report.Blocked)
	assert.Equal(t, 9090, s.Int("server.port", 0))
	assert.Equal(t, "prod", s.String("mode", ""))

	p, _ := s.Lookup("server.port")
	assert.Equal(t, "env:PRIMKIT_SERVER_PORT", p.Source)
}
