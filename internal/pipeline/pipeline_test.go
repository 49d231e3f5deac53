package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"lazyseq/internal/log"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []int
	}{
		{
			name: "odd values",
			cfg: Config{
				Source: []int{2, 3, 4, 5, 6, 7, 8, 9, 15, 20},
				Steps:  []Step{{Op: OpWhere, Fn: "odd"}},
			},
			want: []int{3, 5, 7, 9, 15},
		},
		{
			name: "squares prefix",
			cfg: Config{
				Range: RangeConfig{Start: 1, Stop: 10, Step: 1},
				Steps: []Step{{Op: OpSelect, Fn: "square"}, {Op: OpTake, N: 3}},
			},
			want: []int{1, 4, 9},
		},
		{
			name: "skip then take while",
			cfg: Config{
				Range: RangeConfig{Start: 1, Stop: 10, Step: 1},
				Steps: []Step{{Op: OpSkip, N: 4}, {Op: OpTakeWhile, Fn: "lt", Arg: 8}},
			},
			want: []int{5, 6, 7},
		},
		{
			name: "empty source",
			cfg:  Config{Steps: []Step{{Op: OpWhere, Fn: "even"}}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Run(&tt.cfg, log.NewNopLogger())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildIsLazy(t *testing.T) {
	cfg := &Config{
		Source: []int{1, 2, 3},
		Steps:  []Step{{Op: OpSelect, Fn: "double"}},
	}

	q, err := Build(cfg, log.NewNopLogger())
	require.NoError(t, err)

	cfg.Source[0] = 10
	assert.Equal(t, []int{20, 4, 6}, q.ToSlice())
}

func TestBuildUnknownFunction(t *testing.T) {
	cfg := &Config{Steps: []Step{{Op: OpTake, N: 1}, {Op: OpWhere, Fn: "prime"}}}

	_, err := Build(cfg, log.NewNopLogger())
	assert.ErrorIs(t, err, ErrUnknownFunction)
	assert.ErrorContains(t, err, "step 1")
}

func TestRunWarnsOnEmptyResult(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core).Sugar()

	cfg := &Config{
		Source: []int{2, 4},
		Steps:  []Step{{Op: OpWhere, Fn: "odd"}, {Op: OpTake, N: 1}},
	}
	got, err := Run(cfg, logger)
	require.NoError(t, err)
	assert.Empty(t, got)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Query yielded no elements", warnings[0].Message)
	assert.Equal(t, 2, logs.FilterMessage("Added step").Len())

	_, err = Run(&Config{Source: []int{1}}, logger)
	require.NoError(t, err)
	assert.Len(t, logs.FilterLevelExact(zapcore.WarnLevel).All(), 1)
}
