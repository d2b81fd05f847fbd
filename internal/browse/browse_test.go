package browse

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artaura/internal/catalog"
)

func ids[T any](items []T, id func(T) int) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func artworkIDs(items []catalog.Artwork) []int {
	return ids(items, func(a catalog.Artwork) int { return a.ID })
}

func TestGalleryCategoryRules(t *testing.T) {
	tests := []struct {
		category string
		want     []int
	}{
		{"Kids Friendly", []int{11}},
		{"LGBTQIA+", []int{9}},
		{"Local Artists", []int{9, 12}},
		{"Mural", []int{1, 5}},
		{"Installation", []int{4, 8}},
		{"Street Art", []int{10}},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := Gallery.Filter(catalog.Artworks(), tt.category)
			assert.Equal(t, tt.want, artworkIDs(got))
		})
	}
}

func TestFilterUnknownCategoryKeepsAll(t *testing.T) {
	all := catalog.Artworks()
	for _, c := range []string{"", All, "Watercolour", "mural"} {
		got := Gallery.Filter(all, c)
		assert.Equal(t, artworkIDs(all), artworkIDs(got), "category %q", c)
	}
}

func TestFilterMatchesRuleExactly(t *testing.T) {
	for _, c := range catalog.ArtworkCategories {
		rule := Gallery.Categories[string(c)]
		require.NotNil(t, rule, c)
		got := Gallery.Filter(catalog.Artworks(), string(c))
		for _, a := range catalog.Artworks() {
			assert.Equal(t, rule(a), slices.ContainsFunc(got, func(g catalog.Artwork) bool { return g.ID == a.ID }),
				"%s / %s", c, a.Title)
		}
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	got := Gallery.Search(catalog.Artworks(), "STATION")
	for _, a := range got {
		assert.Contains(t, strings.ToLower(a.Location), "station")
	}
	assert.Len(t, got, 7)

	assert.Equal(t, artworkIDs(catalog.Artworks()), artworkIDs(Gallery.Search(catalog.Artworks(), "")))
}

func TestNetworkSearch(t *testing.T) {
	got := Network.Search(catalog.Following(), "Sydney")
	names := ids(got, func(a catalog.Artist) int { return a.ID })
	assert.Equal(t, []int{1}, names)
	assert.Equal(t, "Sarah Chen", got[0].Name)

	got = Network.Search(catalog.Following(), "digital")
	assert.Len(t, got, 2)
}

func TestNetworkHasNoSort(t *testing.T) {
	got := Network.Apply(catalog.Followers(), Criteria{Sort: SortPopular})
	assert.Equal(t, ids(catalog.Followers(), func(a catalog.Artist) int { return a.ID }),
		ids(got, func(a catalog.Artist) int { return a.ID }))
}

func TestGallerySorts(t *testing.T) {
	popular := Gallery.Sort(catalog.Artworks(), SortPopular)
	require.Len(t, popular, 12)
	assert.Equal(t, 892, popular[0].Likes)
	assert.Equal(t, 134, popular[len(popular)-1].Likes)
	assert.True(t, slices.IsSortedFunc(popular, func(a, b catalog.Artwork) int { return b.Likes - a.Likes }))

	newest := Gallery.Sort(catalog.Artworks(), SortNewest)
	assert.Equal(t, "Kids Paint the Future", newest[0].Title)
	for i := 1; i < len(newest); i++ {
		assert.False(t, newest[i].CreatedAt.After(newest[i-1].CreatedAt.Time))
	}

	oldest := Gallery.Sort(catalog.Artworks(), SortOldest)
	assert.Equal(t, "Bridge of Nations", oldest[0].Title)

	title := Gallery.Sort(catalog.Artworks(), SortTitle)
	for i := 1; i < len(title); i++ {
		assert.LessOrEqual(t, CompareText(title[i-1].Title, title[i].Title), 0)
	}
}

func TestUnknownSortFallsBackToNewest(t *testing.T) {
	want := Gallery.Sort(catalog.Artworks(), SortNewest)
	got := Gallery.Sort(catalog.Artworks(), "trending")
	assert.Equal(t, artworkIDs(want), artworkIDs(got))
	assert.Equal(t, SortNewest, Gallery.SortKey("trending"))
	assert.Equal(t, SortNewest, Projects.SortKey("trending"))
	assert.Equal(t, "", Projects.SortKey(""))
}

func TestSortIsIdempotent(t *testing.T) {
	for _, key := range []string{SortNewest, SortOldest, SortPopular, SortTitle} {
		once := Gallery.Sort(catalog.Artworks(), key)
		twice := Gallery.Sort(once, key)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("sort %q not idempotent (-once +twice):\n%s", key, diff)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	input := slices.Clone(catalog.Artworks())
	before := slices.Clone(input)
	c := Criteria{Category: "Mural", Query: "station", Sort: SortTitle}

	first := Gallery.Apply(input, c)
	second := Gallery.Apply(input, c)

	if diff := cmp.Diff(before, input); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("apply not deterministic:\n%s", diff)
	}
	assert.Equal(t, []int{1, 5}, artworkIDs(first))
}

func TestProjectsView(t *testing.T) {
	active := Projects.Filter(catalog.Projects(), "Active")
	assert.Equal(t, []int{1, 3, 5}, ids(active, func(p catalog.Project) int { return p.ID }))

	completed := Projects.Apply(catalog.Projects(), Criteria{Category: "completed"})
	require.Len(t, completed, 1)
	assert.Equal(t, "Harbour Bridge Maintenance", completed[0].Title)

	inOrder := Projects.Apply(catalog.Projects(), Criteria{})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(inOrder, func(p catalog.Project) int { return p.ID }))

	projectIDs := func(ps []catalog.Project) []int { return ids(ps, func(p catalog.Project) int { return p.ID }) }
	newest := Projects.Apply(catalog.Projects(), Criteria{Sort: SortNewest})
	bogus := Projects.Apply(catalog.Projects(), Criteria{Sort: "bogus"})
	assert.Equal(t, projectIDs(newest), projectIDs(bogus))
	assert.NotEqual(t, projectIDs(inOrder), projectIDs(bogus))
}

func TestFavoritesView(t *testing.T) {
	assert.Equal(t, "traditional_art", FavoriteSlug("Traditional Art"))
	assert.Equal(t, "a_b c", FavoriteSlug("A B C"))

	got := Favorites.Filter(catalog.Favorites(), "digital_installation")
	require.Len(t, got, 1)
	assert.Equal(t, "Digital Harmony", got[0].Title)

	byArtist := Favorites.Sort(catalog.Favorites(), SortArtist)
	assert.Equal(t, "David Kim", byArtist[0].Artist)
	assert.Equal(t, "Sarah Chen", byArtist[len(byArtist)-1].Artist)

	byDefault := Favorites.Apply(catalog.Favorites(), Criteria{})
	assert.Equal(t, "Harbor Dreams", byDefault[0].Title)
}

func TestSubmissionsView(t *testing.T) {
	pending := Submissions.Filter(catalog.Submissions(), "pending")
	require.Len(t, pending, 1)
	assert.Equal(t, "Cultural Harmony", pending[0].Title)

	popular := Submissions.Sort(catalog.Submissions(), SortPopular)
	assert.Equal(t, []int{3, 1, 2, 4, 5}, ids(popular, func(s catalog.Submission) int { return s.ID }))

	newest := Submissions.Sort(catalog.Submissions(), "")
	assert.Equal(t, 5, newest[0].ID)
	assert.Equal(t, 3, newest[len(newest)-1].ID)
}

func TestSummaries(t *testing.T) {
	subs := SummarizeSubmissions(catalog.Submissions())
	assert.Equal(t, 5, subs.Total)
	assert.Equal(t, 1, subs.Approved)
	assert.Equal(t, 1, subs.Featured)
	assert.Equal(t, 1, subs.ByStatus[catalog.SubmissionInReview])

	favs := SummarizeFavorites(catalog.Favorites())
	assert.Equal(t, 6, favs.Artworks)
	assert.Equal(t, 6, favs.Categories)
	assert.Equal(t, 6, favs.Artists)
	want := []string{"mural", "traditional_art", "digital_installation", "textile_art", "sculpture", "mosaic"}
	got := make([]string, 0, len(favs.Options))
	for _, o := range favs.Options {
		got = append(got, o.Value)
		assert.True(t, Favorites.HasCategory(o.Value), o.Value)
	}
	assert.Equal(t, want, got)

	net := SummarizeNetwork(catalog.Following(), catalog.Followers(), catalog.Suggested())
	assert.Equal(t, NetworkSummary{Following: 3, Followers: 3, Suggested: 3, MutualConnections: 43}, net)

	assert.Equal(t, 2, UnreadCount(catalog.Notifications()))
}

func TestRunEchoesEffectiveCriteria(t *testing.T) {
	res := Run(Gallery, catalog.Artworks(), Criteria{Category: "Pottery", Sort: "bogus"})
	assert.Equal(t, Criteria{Category: All, Sort: SortNewest}, res.Criteria)
	assert.Equal(t, 12, res.Count)

	empty := Run(Gallery, catalog.Artworks(), Criteria{Query: "no such artwork"})
	assert.NotNil(t, empty.Items)
	assert.Zero(t, empty.Count)
}

func TestMatchArtists(t *testing.T) {
	all := MatchArtists(catalog.MatchCandidates(), nil)
	assert.Equal(t, []int{1, 2, 3, 5}, ids(all, func(c catalog.MatchCandidate) int { return c.ID }))

	youth := MatchArtists(catalog.MatchCandidates(), []string{"youth"})
	assert.Equal(t, []int{1, 5}, ids(youth, func(c catalog.MatchCandidate) int { return c.ID }))

	// The selection may also contain the candidate's interest.
	edu := MatchArtists(catalog.MatchCandidates(), []string{"Cultural Education and More"})
	assert.Equal(t, []int{4}, ids(edu, func(c catalog.MatchCandidate) int { return c.ID }))
	edu = MatchArtists(catalog.MatchCandidates(), []string{"education"})
	assert.Equal(t, []int{1, 4}, ids(edu, func(c catalog.MatchCandidate) int { return c.ID }))

	none := MatchArtists(catalog.MatchCandidates(), []string{"Underwater Basket Weaving"})
	assert.Empty(t, none)
}
