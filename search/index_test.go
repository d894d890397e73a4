package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushabh0311/LeadGenPro/ai/mock"
)

func TestBuildIndex(t *testing.T) {
	ctx := context.Background()

	t.Run("builds one vector per context", func(t *testing.T) {
		idx, err := BuildIndex(ctx, mock.NewEmbedder(), []string{"a", "b", "c"})
		require.NoError(t, err)
		assert.Equal(t, 3, idx.Len())
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := BuildIndex(ctx, nil, []string{"a"})
		assert.Equal(t, ErrEmbedderRequired, err)
	})

	t.Run("backend failure propagates", func(t *testing.T) {
		embedder := mock.NewEmbedder()
		boom := errors.New("connection refused")
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, boom
		}
		_, err := BuildIndex(ctx, embedder, []string{"a"})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("vector count mismatch", func(t *testing.T) {
		embedder := mock.NewEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{1, 0}}, nil
		}
		_, err := BuildIndex(ctx, embedder, []string{"a", "b"})
		assert.Equal(t, ErrCorpusMismatch, err)
	})
}

func TestTopK(t *testing.T) {
	ctx := context.Background()

	// Hand-built two-dimensional corpus so similarities are easy to reason
	// about: query [1,0] is closest to row 0, then row 2, then row 1.
	corpus := [][]float32{
		{1, 0},
		{0, 1},
		{0.8, 0.6},
	}
	embedder := mock.NewEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return corpus, nil
	}
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0}, nil
	}

	idx, err := BuildIndex(ctx, embedder, []string{"row0", "row1", "row2"})
	require.NoError(t, err)

	t.Run("ranked by descending similarity", func(t *testing.T) {
		hits, err := idx.TopK(ctx, "query", 3)
		require.NoError(t, err)
		require.Len(t, hits, 3)
		assert.Equal(t, []int{0, 2, 1}, []int{hits[0].Index, hits[1].Index, hits[2].Index})
		assert.InDelta(t, 1.0, hits[0].Score, 1e-6)
		assert.InDelta(t, 0.8, hits[1].Score, 1e-6)
		assert.InDelta(t, 0.0, hits[2].Score, 1e-6)
	})

	t.Run("k larger than corpus returns everything", func(t *testing.T) {
		hits, err := idx.TopK(ctx, "query", 50)
		require.NoError(t, err)
		assert.Len(t, hits, 3)
	})

	t.Run("ties keep row order", func(t *testing.T) {
		tied := mock.NewEmbedder()
		tied.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{1, 0}, {1, 0}, {1, 0}}, nil
		}
		tied.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return []float32{1, 0}, nil
		}
		tiedIdx, err := BuildIndex(ctx, tied, []string{"a", "b", "c"})
		require.NoError(t, err)

		hits, err := tiedIdx.TopK(ctx, "query", 3)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, []int{hits[0].Index, hits[1].Index, hits[2].Index})
	})

	t.Run("query embed failure is recoverable", func(t *testing.T) {
		boom := errors.New("backend down")
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return nil, boom
		}
		_, err := idx.TopK(ctx, "query", 3)
		assert.ErrorIs(t, err, boom)
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return []float32{1, 0}, nil
		}
	})
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 2, 3}, []float32{2, 4, 6}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1}, []float32{1, 2}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
}
