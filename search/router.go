package search

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/rushabh0311/LeadGenPro/models"
	"github.com/rushabh0311/LeadGenPro/store"
)

// DefaultTopK is how many semantic matches a chat query returns when the
// caller doesn't ask for a specific limit.
const DefaultTopK = 10

// QueryKind tags the two routes a chat query can take.
type QueryKind int

const (
	// ExactFilterQuery means the query named a funding floor and gets a
	// literal FundingNum filter, never an approximate answer.
	ExactFilterQuery QueryKind = iota

	// SemanticQuery means no funding pattern matched and the query goes
	// to the embedding index.
	SemanticQuery
)

// ClassifiedQuery is the router's two-variant decision.
type ClassifiedQuery struct {
	Kind QueryKind

	// MinMillions is the funding floor, set only for ExactFilterQuery.
	MinMillions float64
}

// fundingPattern recognises "more than $5M" / "more than 750k" style
// questions. The unit group normalises to millions: K divides by 1000,
// M or no unit is taken as millions.
var fundingPattern = regexp.MustCompile(`(?i)more than \$?(\d+(?:\.\d+)?)\s*([km]?)`)

// Classify decides which branch a free-text query takes. The funding
// pattern wins whenever it appears; semantic search is strictly the
// fallback for queries with no recognisable pattern.
func Classify(query string) ClassifiedQuery {
	m := fundingPattern.FindStringSubmatch(query)
	if m == nil {
		return ClassifiedQuery{Kind: SemanticQuery}
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return ClassifiedQuery{Kind: SemanticQuery}
	}
	if strings.EqualFold(m[2], "k") {
		value /= 1000
	}
	return ClassifiedQuery{Kind: ExactFilterQuery, MinMillions: value}
}

// Result is a routed query's answer. Exactly one of Leads (exact branch)
// or Matches (semantic branch) is populated; an exact-branch query with
// no rows above the floor sets NoResults instead of falling through.
type Result struct {
	Kind        QueryKind
	MinMillions float64
	Leads       []models.Lead
	Matches     []models.RankedLead
	NoResults   bool
}

// Router dispatches classified queries against the lead store and the
// embedding index.
type Router struct {
	store  *store.Store
	index  *Index
	logger *slog.Logger
}

// NewRouter wires the two branches together.
func NewRouter(s *store.Store, idx *Index) (*Router, error) {
	if s == nil {
		return nil, ErrStoreRequired
	}
	if idx == nil {
		return nil, ErrIndexRequired
	}
	return &Router{
		store:  s,
		index:  idx,
		logger: slog.Default().With("component", "query-router"),
	}, nil
}

// Route answers a free-text query. topK caps semantic results; values
// <= 0 fall back to DefaultTopK.
func (r *Router) Route(ctx context.Context, query string, topK int) (Result, error) {
	classified := Classify(query)

	if classified.Kind == ExactFilterQuery {
		leads := r.store.FilterByFunding(classified.MinMillions)
		r.logger.Debug("funding filter", "min_millions", classified.MinMillions, "hits", len(leads))
		return Result{
			Kind:        ExactFilterQuery,
			MinMillions: classified.MinMillions,
			Leads:       leads,
			NoResults:   len(leads) == 0,
		}, nil
	}

	if topK <= 0 {
		topK = DefaultTopK
	}
	hits, err := r.index.TopK(ctx, query, topK)
	if err != nil {
		return Result{}, err
	}

	all := r.store.Leads()
	matches := make([]models.RankedLead, 0, len(hits))
	for _, hit := range hits {
		if hit.Index < 0 || hit.Index >= len(all) {
			continue
		}
		matches = append(matches, models.RankedLead{Lead: all[hit.Index], MatchScore: hit.Score})
	}
	r.logger.Debug("semantic search", "query_len", len(query), "hits", len(matches))
	return Result{Kind: SemanticQuery, Matches: matches}, nil
}
