package service

//go:generate mockery

import (
	"context"

	"linkshortener/internal/domain"
)

type LinkStore interface {
	InsertLink(ctx context.Context, id, targetURL string) (domain.Link, error)
	UpdateLink(ctx context.Context, id, targetURL string) (domain.Link, error)
	FindLink(ctx context.Context, id string) (domain.Link, error)
	InsertClick(ctx context.Context, event domain.ClickEvent) error
	GroupedStatistics(ctx context.Context, linkID string) ([]domain.CountedLinkStatistic, error)
}

type IDGenerator interface {
	Generate() string
}

type LinkCache interface {
	Get(id string) (string, bool)
	Set(id, targetURL string)
}
