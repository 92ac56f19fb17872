package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/Egor213/LogLens/internal/domain"
	"github.com/Egor213/LogLens/internal/repo"
	"github.com/Egor213/LogLens/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogLens/pkg/errors"
)

var markerRe = regexp.MustCompile(`###(.+?)###`)

// MarkerTitle returns the text of the first non-blank ###text### marker in
// message.
func MarkerTitle(message string) (string, bool) {
	for _, m := range markerRe.FindAllStringSubmatch(message, -1) {
		if title := strings.TrimSpace(m[1]); title != "" {
			return title, true
		}
	}
	return "", false
}

// AutoBookmarks bookmarks the failure markers and ###text### markers among
// entries, which must already carry their ids. A failure marker wins over a
// text marker and upgrades any bookmark the entry already has. It returns
// the number of bookmarks created or upgraded.
func AutoBookmarks(ctx context.Context, bookmarks repo.Bookmark, entries []domain.LogEntry) (int, error) {
	n := 0
	for _, e := range entries {
		title, color := "", domain.AutoColor
		switch {
		case e.IsFailureMarker:
			title, color = domain.FailureBookmarkTitle, domain.FailureColor
		default:
			t, ok := MarkerTitle(e.Message)
			if !ok {
				continue
			}
			title = t
		}

		id, err := bookmarks.FindBookmarkByEntry(ctx, e.ID)
		switch {
		case err == nil:
			if !e.IsFailureMarker {
				continue
			}
			if err := bookmarks.UpdateBookmark(ctx, id, title, color); err != nil {
				return n, errorsUtils.WrapPathErr(err)
			}
		case errors.Is(err, repoerrs.ErrNotFound):
			_, err := bookmarks.AddBookmark(ctx, &domain.Bookmark{
				LogEntryID: e.ID,
				Title:      title,
				Color:      color,
				Auto:       true,
			})
			if err != nil {
				return n, errorsUtils.WrapPathErr(err)
			}
		default:
			return n, errorsUtils.WrapPathErr(err)
		}
		n++
	}
	return n, nil
}
