package pipelines

import (
	"math"
	"strings"
	"testing"

	"hn-stat/internal/models"
	"hn-stat/internal/sequences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioLog = "10 a\n20 b\n10 a\n30 c\n20 b\n20 b\n"

func collect(t *testing.T, p *Pipeline) []models.Request {
	t.Helper()
	var out []models.Request
	require.NoError(t, sequences.ForEach(p.Requests(), func(r models.Request) { out = append(out, r) }))
	return out
}

func compose(input string, from, to uint64, opts Options) *Pipeline {
	lines := sequences.NewLineSource(strings.NewReader(input))
	return Compose(lines, models.TimeRange{From: from, To: to}, opts)
}

func TestCompose_InclusiveRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from     uint64
		to       uint64
		expected []string
	}{
		{
			name:     "full range",
			from:     0,
			to:       math.MaxUint64,
			expected: []string{"a", "b", "a", "c", "b", "b"},
		},
		{
			name:     "bounds are inclusive",
			from:     10,
			to:       20,
			expected: []string{"a", "b", "a", "b", "b"},
		},
		{
			name:     "single timestamp",
			from:     20,
			to:       20,
			expected: []string{"b", "b", "b"},
		},
		{
			name:     "from after to",
			from:     30,
			to:       10,
			expected: nil,
		},
		{
			name:     "outside the log",
			from:     31,
			to:       math.MaxUint64,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pipeline := compose(scenarioLog, tt.from, tt.to, Options{SkipMalformed: true})
			var texts []string
			for _, request := range collect(t, pipeline) {
				texts = append(texts, request.Text)
			}
			assert.Equal(t, tt.expected, texts)
			assert.Equal(t, uint64(6), pipeline.Stats(0).LinesRead, "every line is parsed exactly once")
		})
	}
}

func TestCompose_SkipMalformed(t *testing.T) {
	t.Parallel()

	input := "10 a\ngarbage\n\n20\n20 b\n"

	skipped := compose(input, 0, math.MaxUint64, Options{SkipMalformed: true})
	assert.Equal(t, []models.Request{
		{Timestamp: 10, Text: "a"},
		{Timestamp: 20, Text: "b"},
	}, collect(t, skipped))
	assert.Equal(t, models.PipelineStats{LinesRead: 5, MalformedLines: 3, Matched: 2}, skipped.Stats(2))

	kept := compose(input, 0, math.MaxUint64, Options{SkipMalformed: false})
	requests := collect(t, kept)
	require.Len(t, requests, 5)
	assert.Equal(t, models.MalformedRequest(), requests[1])
	assert.Equal(t, models.MalformedRequest(), requests[2])
	assert.Equal(t, models.MalformedRequest(), requests[3])
	assert.Equal(t, uint64(3), kept.Stats(5).MalformedLines)

	// sentinels carry timestamp 0, so a range starting above 0 excludes them
	ranged := compose(input, 1, math.MaxUint64, Options{SkipMalformed: false})
	assert.Len(t, collect(t, ranged), 2)
}

func TestCompose_PullsOnlyWhatIsNeeded(t *testing.T) {
	t.Parallel()

	pipeline := compose(scenarioLog, 20, 20, Options{SkipMalformed: true})

	// construction positions the outer filter on the first match: line 1
	assert.Equal(t, int64(1), pipeline.Requests().Position())
	assert.Equal(t, uint64(2), pipeline.Stats(0).LinesRead)

	pipeline.Requests().Advance()
	assert.Equal(t, int64(4), pipeline.Requests().Position())
	assert.Equal(t, uint64(5), pipeline.Stats(0).LinesRead)
}
