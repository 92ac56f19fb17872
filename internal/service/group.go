package service

import (
	"cmp"
	"slices"

	"github.com/Egor213/LogLens/internal/classifier"
	"github.com/Egor213/LogLens/internal/domain"
)

// GroupFiles classifies refs and groups the test-log files by session key.
// Files of a group are ordered by sequence index, then locator; groups are
// ordered by key. A non-empty keys restricts the result to those sessions.
func GroupFiles(refs []domain.FileRef, keys []string) []domain.SessionGroup {
	var wanted map[string]struct{}
	if len(keys) > 0 {
		wanted = make(map[string]struct{}, len(keys))
		for _, k := range keys {
			wanted[k] = struct{}{}
		}
	}

	byKey := make(map[string][]domain.ClassifiedFile)
	for _, ref := range refs {
		res, ok := classifier.Classify(ref.Filename)
		if !ok {
			continue
		}
		if wanted != nil {
			if _, ok := wanted[res.SessionKey]; !ok {
				continue
			}
		}
		byKey[res.SessionKey] = append(byKey[res.SessionKey], domain.ClassifiedFile{
			FileRef:       ref,
			SessionKey:    res.SessionKey,
			SequenceIndex: res.SequenceIndex,
		})
	}

	groups := make([]domain.SessionGroup, 0, len(byKey))
	for key, files := range byKey {
		slices.SortFunc(files, func(a, b domain.ClassifiedFile) int {
			return cmp.Or(
				cmp.Compare(a.SequenceIndex, b.SequenceIndex),
				cmp.Compare(a.Locator, b.Locator),
			)
		})
		groups = append(groups, domain.SessionGroup{Key: key, Files: files})
	}
	slices.SortFunc(groups, func(a, b domain.SessionGroup) int {
		return cmp.Compare(a.Key, b.Key)
	})

	return groups
}
