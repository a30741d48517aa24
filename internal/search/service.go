package search

import (
	"context"
	"fmt"
	"strings"

	"gameshelf/backend/internal/models"
	"gameshelf/backend/internal/store"
)

// Query is the untrusted, user-facing form of a catalog search. Names are
// matched verbatim after trimming; blank entries are dropped.
type Query struct {
	Tags        []string
	Preferences []string
	Genres      []string
	Country     string
	Platform    string
	Sort        string
}

// Service answers catalog searches on top of the data layer. It owns the
// translation from query-string values to storage filters; everything else
// is delegated.
type Service struct {
	store *store.Store
}

func New(st *store.Store) *Service {
	return &Service{store: st}
}

// Search resolves the query to fully-loaded games in the requested order.
func (s *Service) Search(ctx context.Context, q Query) ([]models.Game, error) {
	sort, err := parseSort(q.Sort)
	if err != nil {
		return nil, err
	}

	filter := store.GameFilter{
		Tags:        cleanNames(q.Tags),
		Preferences: cleanNames(q.Preferences),
		Genres:      cleanNames(q.Genres),
		Country:     strings.TrimSpace(q.Country),
		Platform:    strings.TrimSpace(q.Platform),
		Sort:        sort,
	}
	return s.store.SearchGames(ctx, filter)
}

// Options returns the distinct values a client can filter on.
func (s *Service) Options(ctx context.Context) (*store.FilterOptions, error) {
	return s.store.FilterOptions(ctx)
}

func parseSort(token string) (store.SortOrder, error) {
	switch strings.TrimSpace(token) {
	case "", string(store.SortReleaseDateDesc):
		return store.SortReleaseDateDesc, nil
	case string(store.SortReleaseDateAsc):
		return store.SortReleaseDateAsc, nil
	default:
		return "", fmt.Errorf("%w: unknown sort order %q", store.ErrValidation, token)
	}
}

func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
