// Package search holds the semantic side of the chat view: the in-memory
// embedding index over lead context sentences, and the query router that
// decides between an exact funding filter and nearest-neighbour lookup.
package search

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/rushabh0311/LeadGenPro/ai"
)

// Hit is one nearest-neighbour result: the corpus row index and its
// cosine similarity to the query.
type Hit struct {
	Index int
	Score float64
}

// Index holds the corpus embeddings, row-aligned with the lead store.
// Built once at startup and read-only afterwards.
type Index struct {
	embedder ai.Embedder
	vectors  [][]float32
	logger   *slog.Logger
}

// BuildIndex embeds every context sentence in one batch. An unreachable
// embedding backend fails the build; the caller treats that as fatal.
func BuildIndex(ctx context.Context, embedder ai.Embedder, contexts []string) (*Index, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	logger := slog.Default().With("component", "search-index")

	vectors, err := embedder.EmbedTexts(ctx, contexts)
	if err != nil {
		logger.Error("corpus embedding failed", "count", len(contexts), "err", err)
		return nil, err
	}
	if len(vectors) != len(contexts) {
		logger.Error("embedder returned wrong vector count", "want", len(contexts), "got", len(vectors))
		return nil, ErrCorpusMismatch
	}

	logger.Info("embedding index built", "rows", len(vectors))
	return &Index{embedder: embedder, vectors: vectors, logger: logger}, nil
}

// Len returns the number of indexed rows.
func (idx *Index) Len() int {
	return len(idx.vectors)
}

// TopK embeds the query and returns up to k hits ranked by descending
// cosine similarity. Ties keep original row order (stable sort). There is
// no similarity floor: low-confidence neighbours are still returned.
func (idx *Index) TopK(ctx context.Context, query string, k int) ([]Hit, error) {
	if k <= 0 || len(idx.vectors) == 0 {
		return nil, nil
	}

	queryVec, err := idx.embedder.EmbedText(ctx, query)
	if err != nil {
		idx.logger.Error("query embedding failed", "err", err)
		return nil, err
	}

	hits := make([]Hit, len(idx.vectors))
	for i, vec := range idx.vectors {
		hits[i] = Hit{Index: i, Score: cosineSimilarity(queryVec, vec)}
	}
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Score > hits[b].Score
	})

	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k], nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched or zero-length vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
