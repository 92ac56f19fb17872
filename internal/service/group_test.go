package service_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/Egor213/LogLens/internal/classifier"
	"github.com/Egor213/LogLens/internal/domain"
	"github.com/Egor213/LogLens/internal/service"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func ref(name string) domain.FileRef {
	return domain.FileRef{Locator: "/logs/" + name, Filename: name}
}

func TestGroupFiles(t *testing.T) {
	refs := []domain.FileRef{
		ref("TestB_ID_7---1.html"),
		ref("MainRollup.html"),
		ref("TestA_ID_1---1.html"),
		ref("TestB_ID_7---0.html"),
		ref("TestA_ID_1---0.html"),
		ref("notes.txt"),
		ref("TestA_ID_1---10.html"),
		ref("TestA_ID_1---2.html"),
	}

	testCases := []struct {
		name string
		keys []string
		want map[string][]int
	}{
		{
			name: "all sessions",
			want: map[string][]int{"TestA_ID_1": {0, 1, 2, 10}, "TestB_ID_7": {0, 1}},
		},
		{
			name: "selected session",
			keys: []string{"TestB_ID_7", "Missing_ID_1"},
			want: map[string][]int{"TestB_ID_7": {0, 1}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			groups := service.GroupFiles(refs, tc.keys)

			got := map[string][]int{}
			var keys []string
			for _, g := range groups {
				keys = append(keys, g.Key)
				for _, f := range g.Files {
					assert.Equal(t, g.Key, f.SessionKey)
					got[g.Key] = append(got[g.Key], f.SequenceIndex)
				}
			}
			assert.Equal(t, tc.want, got)
			assert.True(t, slices.IsSorted(keys))
		})
	}
}

func TestGroupFiles_DuplicateIndexTieBreak(t *testing.T) {
	refs := []domain.FileRef{
		{Locator: "/b/TestA_ID_1---01.html", Filename: "TestA_ID_1---01.html"},
		{Locator: "/a/TestA_ID_1---1.html", Filename: "TestA_ID_1---1.html"},
	}

	groups := service.GroupFiles(refs, nil)
	assert.Len(t, groups, 1)
	assert.Equal(t, "/a/TestA_ID_1---1.html", groups[0].Files[0].Locator)
	assert.Equal(t, "/b/TestA_ID_1---01.html", groups[0].Files[1].Locator)
}

func TestGroupFiles_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfNDistinct(
			rapid.Custom(func(t *rapid.T) string {
				test := rapid.SampledFrom([]string{"TestA", "TestB", "Suite-1"}).Draw(t, "test")
				run := rapid.IntRange(1, 3).Draw(t, "run")
				seq := rapid.IntRange(0, 20).Draw(t, "seq")
				if rapid.Bool().Draw(t, "noise") {
					return fmt.Sprintf("%s_%d.html", test, seq)
				}
				return fmt.Sprintf("%s_ID_%d---%d.html", test, run, seq)
			}),
			0, 40, rapid.ID[string],
		).Draw(t, "names")

		refs := make([]domain.FileRef, 0, len(names))
		for _, n := range names {
			refs = append(refs, ref(n))
		}
		perm := rapid.Permutation(refs).Draw(t, "perm")

		groups := service.GroupFiles(refs, nil)
		if !assert.ObjectsAreEqual(groups, service.GroupFiles(perm, nil)) {
			t.Fatalf("grouping depends on input order")
		}

		total := 0
		for _, g := range groups {
			if !slices.IsSortedFunc(g.Files, func(a, b domain.ClassifiedFile) int {
				return a.SequenceIndex - b.SequenceIndex
			}) {
				t.Fatalf("group %s not sorted", g.Key)
			}
			total += len(g.Files)
		}

		classified := 0
		for _, n := range names {
			if classifier.IsTestLog(n) {
				classified++
			}
		}
		if total != classified {
			t.Fatalf("got %d grouped files, want %d", total, classified)
		}
	})
}
