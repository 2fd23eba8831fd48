package players

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"nfl-stats-dashboard/internal/cache"
	"nfl-stats-dashboard/internal/compare"
	domainplayers "nfl-stats-dashboard/internal/domain/players"
	"nfl-stats-dashboard/internal/logging"
	"nfl-stats-dashboard/internal/metrics"
	"nfl-stats-dashboard/internal/providers"
)

// Store holds the player directory currently in memory.
type Store interface {
	ListPlayers() []domainplayers.Player
	SetPlayers([]domainplayers.Player)
}

// Service backs the player directory, profile, and comparison views.
type Service struct {
	provider providers.DataProvider
	store    Store
	cache    *cache.Cache
	cacheTTL time.Duration
	ranker   *compare.Ranker
	metrics  *metrics.Recorder
	logger   *slog.Logger

	mu            sync.Mutex
	similarTicket string
}

// NewService constructs a Service. The cache is optional.
func NewService(provider providers.DataProvider, store Store, responseCache *cache.Cache, cacheTTL time.Duration, ranker *compare.Ranker, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}
	return &Service{
		provider: provider,
		store:    store,
		cache:    responseCache,
		cacheTTL: cacheTTL,
		ranker:   ranker,
		metrics:  recorder,
		logger:   logger,
	}
}

// Directory returns the player directory, fetching it on first use.
func (s *Service) Directory(ctx context.Context) ([]domainplayers.Player, error) {
	if s.store != nil {
		if items := s.store.ListPlayers(); len(items) > 0 {
			return items, nil
		}
	}
	items, err := s.provider.FetchPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch players: %w", err)
	}
	if s.store != nil {
		s.store.SetPlayers(items)
	}
	return items, nil
}

// Search filters the directory by a case-insensitive substring of the
// display name. An empty query returns the whole directory.
func (s *Service) Search(ctx context.Context, query string) ([]domainplayers.Player, error) {
	items, err := s.Directory(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items, nil
	}
	matched := make([]domainplayers.Player, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.DisplayName), query) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Profile returns a player's bio and per-season stat lines.
func (s *Service) Profile(ctx context.Context, playerID string, seasons []int) (domainplayers.Profile, error) {
	key := "profile:" + playerID + ":" + seasonKey(seasons)
	if s.cache != nil {
		if value, _, ok := s.cache.Get(key); ok {
			if s.metrics != nil {
				s.metrics.RecordCacheLookup(true)
			}
			if profile, ok := value.(domainplayers.Profile); ok {
				return profile, nil
			}
		} else if s.metrics != nil {
			s.metrics.RecordCacheLookup(false)
		}
	}

	profile, err := s.provider.FetchProfile(ctx, playerID, seasons)
	if err != nil {
		return domainplayers.Profile{}, fmt.Errorf("fetch profile %s: %w", playerID, err)
	}
	if s.cache != nil {
		s.cache.Set(key, profile, s.cacheTTL)
	}
	return profile, nil
}

// Comparison is the state of a player comparison view.
type Comparison struct {
	Selection  compare.Selection
	Candidates []domainplayers.StatLine
}

// Candidates fetches players similar to the reference and orders them with
// the configured ranker. If another Candidates call starts before this one
// finishes, the earlier result is discarded.
func (s *Service) Candidates(ctx context.Context, q providers.SimilarQuery, mode compare.Mode) ([]domainplayers.StatLine, error) {
	ticket := s.claimSimilarTicket()
	start := time.Now()
	candidates, err := s.provider.FetchSimilar(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetch similar %s: %w", q.PlayerID, err)
	}
	if !s.similarTicketCurrent(ticket) {
		logging.Debug(s.logger, "similar result discarded",
			logging.FieldFetchID, ticket, logging.FieldPlayerID, q.PlayerID)
		return nil, ErrSupersededSimilar
	}
	ranked := candidates
	if s.ranker != nil {
		ranked = s.ranker.Rank(candidates, mode)
	}
	if s.metrics != nil {
		s.metrics.RecordViewBuild("comparison", time.Since(start))
	}
	return ranked, nil
}

// ErrSupersededSimilar reports that a newer similar-players request started
// while this one was in flight.
var ErrSupersededSimilar = fmt.Errorf("similar request superseded by a newer one")

// Compare toggles a candidate in and out of the selection and returns the
// resulting comparison state.
func (s *Service) Compare(sel compare.Selection, candidate domainplayers.StatLine, candidates []domainplayers.StatLine) Comparison {
	return Comparison{
		Selection:  sel.Toggle(candidate),
		Candidates: candidates,
	}
}

func (s *Service) claimSimilarTicket() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.similarTicket = uuid.NewString()
	return s.similarTicket
}

func (s *Service) similarTicketCurrent(ticket string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.similarTicket == ticket
}

func seasonKey(seasons []int) string {
	if len(seasons) == 0 {
		return "all"
	}
	sorted := append([]int(nil), seasons...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, season := range sorted {
		parts[i] = fmt.Sprintf("%d", season)
	}
	return strings.Join(parts, ",")
}
