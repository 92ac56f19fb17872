package service

import (
	"context"
	"errors"

	"github.com/Egor213/LogLens/internal/domain"
	"github.com/Egor213/LogLens/internal/repo"
	"github.com/Egor213/LogLens/internal/repo/repoerrs"
	log "github.com/sirupsen/logrus"
)

type BookmarkService struct {
	entries   repo.LogEntry
	bookmarks repo.Bookmark
	tx        TxManager
}

func NewBookmarkService(repos *repo.Repositories, tx TxManager) *BookmarkService {
	return &BookmarkService{
		entries:   repos.LogEntry,
		bookmarks: repos.Bookmark,
		tx:        tx,
	}
}

type BookmarkInput struct {
	LogEntryID int64
	Title      string
	Notes      string
	Color      string
}

// Add bookmarks an entry on behalf of the user. Color defaults to
// domain.DefaultColor.
func (s *BookmarkService) Add(ctx context.Context, in BookmarkInput) (domain.Bookmark, error) {
	if _, err := s.entries.GetEntry(ctx, in.LogEntryID); err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.Bookmark{}, ErrEntryNotFound
		}
		log.Error(err)
		return domain.Bookmark{}, ErrCannotSaveBookmark
	}

	b := domain.Bookmark{
		LogEntryID: in.LogEntryID,
		Title:      in.Title,
		Notes:      in.Notes,
		Color:      in.Color,
	}
	if b.Color == "" {
		b.Color = domain.DefaultColor
	}

	id, err := s.bookmarks.AddBookmark(ctx, &b)
	if err != nil {
		switch {
		case errors.Is(err, repoerrs.ErrAlreadyExists):
			return domain.Bookmark{}, ErrBookmarkExists
		case errors.Is(err, repoerrs.ErrNotFound):
			return domain.Bookmark{}, ErrEntryNotFound
		}
		log.Error(err)
		return domain.Bookmark{}, ErrCannotSaveBookmark
	}
	b.ID = id

	return b, nil
}

type BookmarkPatch struct {
	Title *string
	Color *string
	Notes *string
}

// Update applies the non-nil fields of patch in one transaction and returns
// the result.
func (s *BookmarkService) Update(ctx context.Context, id int64, patch BookmarkPatch) (domain.Bookmark, error) {
	b, err := s.get(ctx, id)
	if err != nil {
		return domain.Bookmark{}, err
	}

	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Color != nil {
		b.Color = *patch.Color
	}
	if patch.Notes != nil {
		b.Notes = *patch.Notes
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if patch.Title != nil || patch.Color != nil {
			if err := s.bookmarks.UpdateBookmark(ctx, id, b.Title, b.Color); err != nil {
				return err
			}
		}
		if patch.Notes != nil {
			return s.bookmarks.SetBookmarkNotes(ctx, id, b.Notes)
		}
		return nil
	})
	if err != nil {
		return domain.Bookmark{}, s.mapErr(err)
	}

	return b, nil
}

func (s *BookmarkService) Delete(ctx context.Context, id int64) error {
	if err := s.bookmarks.DeleteBookmark(ctx, id); err != nil {
		return s.mapErr(err)
	}
	return nil
}

func (s *BookmarkService) get(ctx context.Context, id int64) (domain.Bookmark, error) {
	b, err := s.bookmarks.GetBookmark(ctx, id)
	if err != nil {
		return domain.Bookmark{}, s.mapErr(err)
	}
	return b, nil
}

func (s *BookmarkService) mapErr(err error) error {
	if errors.Is(err, repoerrs.ErrNotFound) {
		return ErrBookmarkNotFound
	}
	log.Error(err)
	return ErrCannotSaveBookmark
}
