package service

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/repository"
)

const (
	// searchHistoryWindow bounds how many recent logs feed autocomplete.
	searchHistoryWindow = 500
	defaultSearchLimit  = 10
	minFuzzyQueryLen    = 3
)

type matchRank int

const (
	rankPrefix matchRank = iota
	rankWordPrefix
	rankContains
	rankFuzzy
)

type foodSearch struct {
	logs        repository.CalorieLogRepo
	suggestions repository.FoodSuggestionRepo
}

func NewFoodSearch(logs repository.CalorieLogRepo, suggestions repository.FoodSuggestionRepo) FoodSearch {
	return &foodSearch{logs: logs, suggestions: suggestions}
}

type searchCandidate struct {
	match FoodMatch
	rank  matchRank
}

// Search ranks the food dictionary and previously logged foods against
// query. Prefix hits come first, then word prefixes, substrings and finally
// names within a small edit distance. Logged foods carry the macros of
// their most recent entry.
func (s *foodSearch) Search(ctx context.Context, query string, limit int) ([]FoodMatch, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	pool, err := s.pool(ctx)
	if err != nil {
		return nil, err
	}

	var cands []searchCandidate
	for _, m := range pool {
		rank, dist, ok := rankName(q, strings.ToLower(m.Name))
		if !ok {
			continue
		}
		m.Distance = dist
		cands = append(cands, searchCandidate{match: m, rank: rank})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		if a.match.Distance != b.match.Distance {
			return a.match.Distance < b.match.Distance
		}
		if a.match.FromHistory != b.match.FromHistory {
			return a.match.FromHistory
		}
		return strings.ToLower(a.match.Name) < strings.ToLower(b.match.Name)
	})

	if len(cands) > limit {
		cands = cands[:limit]
	}
	out := make([]FoodMatch, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.match)
	}
	return out, nil
}

// pool merges history and dictionary by case-insensitive name; history
// wins since it reflects what the user actually eats.
func (s *foodSearch) pool(ctx context.Context) ([]FoodMatch, error) {
	recent, err := s.logs.ListRecent(ctx, searchHistoryWindow)
	if err != nil {
		return nil, err
	}
	dict, err := s.suggestions.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int)
	var pool []FoodMatch
	// Newest first so the first hit per name is the latest entry.
	for i := len(recent) - 1; i >= 0; i-- {
		l := recent[i]
		key := strings.ToLower(strings.TrimSpace(l.Food))
		if key == "" {
			continue
		}
		if _, ok := byName[key]; ok {
			continue
		}
		byName[key] = len(pool)
		pool = append(pool, FoodMatch{
			Name:        l.Food,
			Quantity:    l.Quantity,
			Macros:      l.Macros(),
			FromHistory: true,
		})
	}
	for _, f := range dict {
		key := strings.ToLower(f.Name)
		if _, ok := byName[key]; ok {
			continue
		}
		byName[key] = len(pool)
		pool = append(pool, FoodMatch{
			Name:     f.Name,
			Quantity: f.Quantity,
			Macros:   domain.Macros{Calories: f.Calories, Protein: f.Protein, Carbs: f.Carbs, Fat: f.Fat},
		})
	}
	return pool, nil
}

func rankName(q, name string) (matchRank, int, bool) {
	if strings.HasPrefix(name, q) {
		return rankPrefix, 0, true
	}
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '-' || r == '(' || r == ')' || r == ','
	})
	for _, w := range words {
		if strings.HasPrefix(w, q) {
			return rankWordPrefix, 0, true
		}
	}
	if strings.Contains(name, q) {
		return rankContains, 0, true
	}
	if utf8.RuneCountInString(q) < minFuzzyQueryLen {
		return 0, 0, false
	}

	best := -1
	compare := func(candidate string) {
		d := levenshtein.ComputeDistance(q, candidate)
		if best < 0 || d < best {
			best = d
		}
	}
	for _, w := range words {
		compare(w)
		compare(runePrefix(w, utf8.RuneCountInString(q)))
	}
	if best < 0 || best > fuzzyLimit(utf8.RuneCountInString(q)) {
		return 0, 0, false
	}
	return rankFuzzy, best, true
}

func fuzzyLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}

func runePrefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
