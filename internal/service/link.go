package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"linkshortener/internal/domain"
)

var ErrLinkNotFound = errors.New("link not found")

// LinkService owns link lifecycle and click recording. Targets reaching it
// are already validated and normalized by the caller.
type LinkService struct {
	store     LinkStore
	generator IDGenerator
	cache     LinkCache
}

func NewLinkService(store LinkStore, generator IDGenerator, cache LinkCache) *LinkService {
	return &LinkService{
		store:     store,
		generator: generator,
		cache:     cache,
	}
}

func (s *LinkService) CreateLink(ctx context.Context, targetURL string) (domain.Link, error) {
	id := s.generator.Generate()

	link, err := s.store.InsertLink(ctx, id, targetURL)
	if err != nil {
		return domain.Link{}, fmt.Errorf("failed to insert link: %w", err)
	}

	s.cache.Set(link.ID, link.TargetURL)
	return link, nil
}

// UpdateLink mutates the target of an existing link. A missing id surfaces
// as a store error, not as ErrLinkNotFound: the update statement expects
// exactly one returned row.
func (s *LinkService) UpdateLink(ctx context.Context, id, targetURL string) (domain.Link, error) {
	link, err := s.store.UpdateLink(ctx, id, targetURL)
	if err != nil {
		return domain.Link{}, fmt.Errorf("failed to update link: %w", err)
	}

	s.cache.Set(link.ID, link.TargetURL)
	return link, nil
}

// ResolveLink returns the target URL for id, consulting the cache first.
// Cache entries expire on the same schedule as the Cache-Control policy
// served to intermediaries.
func (s *LinkService) ResolveLink(ctx context.Context, id string) (string, error) {
	if target, ok := s.cache.Get(id); ok {
		return target, nil
	}

	link, err := s.store.FindLink(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrLinkNotFound
		}
		return "", fmt.Errorf("failed to find link: %w", err)
	}

	s.cache.Set(link.ID, link.TargetURL)
	return link.TargetURL, nil
}

// RecordClick persists one click event. Callers on the redirect path treat
// a returned error as best-effort: logged, never propagated to the client.
func (s *LinkService) RecordClick(ctx context.Context, event domain.ClickEvent) error {
	if err := s.store.InsertClick(ctx, event); err != nil {
		return fmt.Errorf("failed to insert click: %w", err)
	}
	return nil
}

func (s *LinkService) LinkStatistics(ctx context.Context, id string) ([]domain.CountedLinkStatistic, error) {
	statistics, err := s.store.GroupedStatistics(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch link statistics: %w", err)
	}
	return statistics, nil
}
