package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Egor213/LogLens/internal/domain"
	repomocks "github.com/Egor213/LogLens/internal/mocks/repository"
	"github.com/Egor213/LogLens/internal/repo"
	"github.com/Egor213/LogLens/internal/repo/repoerrs"
	"github.com/Egor213/LogLens/internal/repo/repotypes"
	"github.com/Egor213/LogLens/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type queryMocks struct {
	sessions  *repomocks.MockSession
	entries   *repomocks.MockLogEntry
	bookmarks *repomocks.MockBookmark
}

func newQueryService(ctrl *gomock.Controller, priority []string) (*service.QueryService, queryMocks) {
	m := queryMocks{
		sessions:  repomocks.NewMockSession(ctrl),
		entries:   repomocks.NewMockLogEntry(ctrl),
		bookmarks: repomocks.NewMockBookmark(ctrl),
	}
	repos := &repo.Repositories{Session: m.sessions, LogEntry: m.entries, Bookmark: m.bookmarks}
	return service.NewQueryService(repos, priority), m
}

func TestQueryService_GetSession(t *testing.T) {
	type mockBehavior func(m queryMocks)

	ctx := context.Background()
	testCases := []struct {
		name         string
		mockBehavior mockBehavior
		want         *domain.TestSession
		wantErr      error
	}{
		{
			name: "success",
			mockBehavior: func(m queryMocks) {
				m.sessions.EXPECT().GetSession(ctx, "s1").Return(&domain.TestSession{ID: "s1", Name: "TestA_ID_1"}, nil)
			},
			want: &domain.TestSession{ID: "s1", Name: "TestA_ID_1"},
		},
		{
			name: "not found",
			mockBehavior: func(m queryMocks) {
				m.sessions.EXPECT().GetSession(ctx, "s1").Return(nil, repoerrs.ErrNotFound)
			},
			wantErr: service.ErrSessionNotFound,
		},
		{
			name: "repository error",
			mockBehavior: func(m queryMocks) {
				m.sessions.EXPECT().GetSession(ctx, "s1").Return(nil, errors.New("db error"))
			},
			wantErr: service.ErrCannotLoadSession,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newQueryService(ctrl, nil)
			tc.mockBehavior(m)

			got, err := s.GetSession(ctx, "s1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestQueryService_GetEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s, m := newQueryService(ctrl, nil)

	filter := repotypes.EntryFilter{SessionID: "s1", Levels: []string{"ERROR"}, Limit: 1}
	entries := []domain.LogEntry{{ID: 4, SessionID: "s1", Level: "ERROR"}}

	m.sessions.EXPECT().GetSession(ctx, "s1").Return(&domain.TestSession{ID: "s1"}, nil)
	m.entries.EXPECT().GetEntries(ctx, filter).Return(entries, nil)
	m.entries.EXPECT().CountEntries(ctx, filter).Return(5, nil)

	page, err := s.GetEntries(ctx, filter)
	assert.NoError(t, err)
	assert.Equal(t, service.EntryPage{Entries: entries, Total: 5}, page)
}

func TestQueryService_GetLevels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s, m := newQueryService(ctrl, []string{"ERROR", "warning", "INFO", "DEBUG"})

	m.sessions.EXPECT().GetSession(ctx, "s1").Return(&domain.TestSession{ID: "s1"}, nil)
	m.entries.EXPECT().GetLevelStats(ctx, "s1").Return([]domain.LevelStats{
		{Level: "DEBUG", Count: 3},
		{Level: "CUSTOM", Count: 1},
		{Level: "INFO", Count: 10},
		{Level: "ALPHA", Count: 1},
		{Level: "WARNING", Count: 2},
		{Level: "ERROR", Count: 1},
	}, nil)

	got, err := s.GetLevels(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, []domain.LevelStats{
		{Level: "ERROR", Count: 1},
		{Level: "WARNING", Count: 2},
		{Level: "INFO", Count: 10},
		{Level: "DEBUG", Count: 3},
		{Level: "ALPHA", Count: 1},
		{Level: "CUSTOM", Count: 1},
	}, got)
}

func TestQueryService_DeleteSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	s, m := newQueryService(ctrl, nil)

	m.sessions.EXPECT().DeleteSession(ctx, "s1").Return(nil)
	m.sessions.EXPECT().DeleteSession(ctx, "s2").Return(repoerrs.ErrNotFound)

	assert.NoError(t, s.DeleteSession(ctx, "s1"))
	assert.ErrorIs(t, s.DeleteSession(ctx, "s2"), service.ErrSessionNotFound)
}
