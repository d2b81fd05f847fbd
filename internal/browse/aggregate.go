package browse

import (
	"artaura/internal/catalog"
)

// SubmissionSummary is the header of the my-submissions view.
type SubmissionSummary struct {
	Total    int                              `json:"total"`
	Approved int                              `json:"approved"`
	Featured int                              `json:"featured"`
	ByStatus map[catalog.SubmissionStatus]int `json:"by_status"`
}

// SummarizeSubmissions counts submissions overall and per status.
func SummarizeSubmissions(subs []catalog.Submission) SubmissionSummary {
	s := SubmissionSummary{
		Total:    len(subs),
		ByStatus: make(map[catalog.SubmissionStatus]int, len(catalog.SubmissionStatuses)),
	}
	for _, st := range catalog.SubmissionStatuses {
		s.ByStatus[st] = 0
	}
	for _, sub := range subs {
		s.ByStatus[sub.Status]++
	}
	s.Approved = s.ByStatus[catalog.SubmissionApproved]
	s.Featured = s.ByStatus[catalog.SubmissionFeatured]
	return s
}

// FilterOption is one entry of a category drop-down.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FavoriteSummary is the header of the my-favorites view.
type FavoriteSummary struct {
	Artworks   int            `json:"artworks"`
	Categories int            `json:"categories"`
	Artists    int            `json:"artists"`
	Options    []FilterOption `json:"options"`
}

// SummarizeFavorites counts favorites, distinct categories and distinct
// artists. Options lists one filter entry per distinct category in first-seen
// order.
func SummarizeFavorites(favs []catalog.Favorite) FavoriteSummary {
	s := FavoriteSummary{Artworks: len(favs)}
	seenCategory := make(map[string]struct{})
	seenArtist := make(map[string]struct{})
	for _, f := range favs {
		if _, ok := seenCategory[f.Category]; !ok {
			seenCategory[f.Category] = struct{}{}
			s.Options = append(s.Options, FilterOption{Value: FavoriteSlug(f.Category), Label: f.Category})
		}
		seenArtist[f.Artist] = struct{}{}
	}
	s.Categories = len(seenCategory)
	s.Artists = len(seenArtist)
	return s
}

// NetworkSummary is the header of the artist-network view.
type NetworkSummary struct {
	Following         int `json:"following"`
	Followers         int `json:"followers"`
	Suggested         int `json:"suggested"`
	MutualConnections int `json:"mutual_connections"`
}

// SummarizeNetwork counts each tab. Mutual connections are summed over the
// artists being followed only.
func SummarizeNetwork(following, followers, suggested []catalog.Artist) NetworkSummary {
	s := NetworkSummary{
		Following: len(following),
		Followers: len(followers),
		Suggested: len(suggested),
	}
	for _, a := range following {
		s.MutualConnections += a.MutualConnections
	}
	return s
}

// UnreadCount is the notification badge value.
func UnreadCount(ns []catalog.Notification) int {
	n := 0
	for _, note := range ns {
		if note.Unread {
			n++
		}
	}
	return n
}

// Result pairs a view's items with the criteria that produced them.
type Result[T any] struct {
	Criteria Criteria `json:"criteria"`
	Count    int      `json:"count"`
	Items    []T      `json:"items"`
}

// Run applies c and wraps the outcome for display. The effective sort key is
// echoed back in the criteria.
func Run[T any](v *View[T], items []T, c Criteria) Result[T] {
	out := v.Apply(items, c)
	if out == nil {
		out = []T{}
	}
	if !v.HasCategory(c.Category) {
		c.Category = All
	}
	c.Sort = v.SortKey(c.Sort)
	return Result[T]{Criteria: c, Count: len(out), Items: out}
}
