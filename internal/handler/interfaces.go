package handler

//go:generate mockery

import (
	"context"

	"linkshortener/internal/domain"
)

type LinkService interface {
	CreateLink(ctx context.Context, targetURL string) (domain.Link, error)
	UpdateLink(ctx context.Context, id, targetURL string) (domain.Link, error)
	ResolveLink(ctx context.Context, id string) (string, error)
	RecordClick(ctx context.Context, event domain.ClickEvent) error
	LinkStatistics(ctx context.Context, id string) ([]domain.CountedLinkStatistic, error)
}

type TargetValidator interface {
	NormalizeTargetURL(rawURL string) (string, error)
}
