package service

import (
	"context"

	"github.com/Egor213/LogLens/internal/broker"
	"github.com/Egor213/LogLens/internal/metrics"
	"github.com/Egor213/LogLens/internal/repo"
)

// TxManager runs fn in one transaction carried by the ctx it receives.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Services struct {
	Ingest    *IngestService
	Query     *QueryService
	Bookmarks *BookmarkService
}

type ServicesDependencies struct {
	Repos         *repo.Repositories
	TxManager     TxManager
	Parser        EntryParser
	Counters      *metrics.Counters
	Events        broker.Producer
	Ingest        IngestOptions
	LevelPriority []string
}

// NewServices wires the services. deps.Events may be nil.
func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Ingest:    NewIngestService(deps.Repos, deps.TxManager, deps.Parser, deps.Counters, deps.Events, deps.Ingest),
		Query:     NewQueryService(deps.Repos, deps.LevelPriority),
		Bookmarks: NewBookmarkService(deps.Repos, deps.TxManager),
	}
}
