package summarize

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type modelFunc func(ctx context.Context, text string, params Params) (string, error)

func (f modelFunc) Summarize(ctx context.Context, text string, params Params) (string, error) {
	return f(ctx, text, params)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeNormal, mode)

	mode, err = ParseMode("detailed")
	require.NoError(t, err)
	assert.Equal(t, ModeDetailed, mode)

	_, err = ParseMode("extreme")
	assert.Error(t, err)
}

func TestModeParams(t *testing.T) {
	assert.Equal(t, Params{MinTokens: 20, MaxTokens: 80}, ModeShort.Params())
	assert.Equal(t, Params{MinTokens: 40, MaxTokens: 150}, ModeNormal.Params())
	assert.Equal(t, Params{MinTokens: 70, MaxTokens: 220}, ModeDetailed.Params())
}

func TestSummarizeTooShort(t *testing.T) {
	svc := NewService(modelFunc(func(ctx context.Context, text string, params Params) (string, error) {
		t.Fatal("model must not be called for short input")
		return "", nil
	}), Config{})

	summary, err := svc.Summarize(context.Background(), "short text", ModeNormal, nil)
	require.NoError(t, err)
	assert.Equal(t, TooShortMessage, summary)
}

func TestSummarizeEveryChunkCovered(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 50)

	var calls []string
	svc := NewService(modelFunc(func(ctx context.Context, chunk string, params Params) (string, error) {
		calls = append(calls, chunk)
		return fmt.Sprintf("summary-%d", len(calls)), nil
	}), Config{ChunkSize: 500})

	var progressed []int
	progress := func(done, total int) { progressed = append(progressed, done) }

	summary, err := svc.Summarize(context.Background(), text, ModeShort, progress)
	require.NoError(t, err)

	wantChunks := svc.ChunkCount(text)
	assert.Equal(t, wantChunks, len(calls), "every chunk summarized, none skipped")

	// Chunk summaries concatenated in original order.
	want := make([]string, wantChunks)
	for i := range want {
		want[i] = fmt.Sprintf("summary-%d", i+1)
	}
	assert.Equal(t, strings.Join(want, " "), summary)

	// Progress reported once per chunk, in order.
	require.Len(t, progressed, wantChunks)
	for i, done := range progressed {
		assert.Equal(t, i+1, done)
	}
}

func TestSummarizeModelFailureAborts(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 50)

	calls := 0
	svc := NewService(modelFunc(func(ctx context.Context, chunk string, params Params) (string, error) {
		calls++
		if calls == 2 {
			return "", fmt.Errorf("model out of memory")
		}
		return "partial", nil
	}), Config{ChunkSize: 500})

	summary, err := svc.Summarize(context.Background(), text, ModeNormal, nil)
	require.Error(t, err)
	assert.Empty(t, summary, "no partial output on failure")
	assert.Equal(t, 2, calls, "run aborts at the failed chunk")
}

func TestSummarizePassesModeParams(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 10)

	svc := NewService(modelFunc(func(ctx context.Context, chunk string, params Params) (string, error) {
		assert.Equal(t, ModeDetailed.Params(), params)
		return "ok", nil
	}), Config{})

	_, err := svc.Summarize(context.Background(), text, ModeDetailed, nil)
	require.NoError(t, err)
}
