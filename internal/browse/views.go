package browse

import (
	"cmp"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"artaura/internal/catalog"
)

// Sort keys shared by the views.
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortPopular = "popular"
	SortTitle   = "title"
	SortArtist  = "artist"
)

var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English)
)

// CompareText orders strings the way an English-locale user expects
// (case and accents are secondary to the base letters).
func CompareText(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

func exact[T any](get func(T) string, value string) Predicate[T] {
	return func(item T) bool { return get(item) == value }
}

// Gallery is the community gallery view.
var Gallery = &View[catalog.Artwork]{
	Name:       "gallery",
	Categories: galleryRules(),
	Fields: []func(catalog.Artwork) string{
		func(a catalog.Artwork) string { return a.Title },
		func(a catalog.Artwork) string { return a.Artist },
		func(a catalog.Artwork) string { return a.Location },
		func(a catalog.Artwork) string { return string(a.Category) },
	},
	Sorts: map[string]Comparator[catalog.Artwork]{
		SortNewest:  func(a, b catalog.Artwork) int { return b.CreatedAt.Compare(a.CreatedAt) },
		SortOldest:  func(a, b catalog.Artwork) int { return a.CreatedAt.Compare(b.CreatedAt) },
		SortPopular: func(a, b catalog.Artwork) int { return cmp.Compare(b.Likes, a.Likes) },
		SortTitle:   func(a, b catalog.Artwork) int { return CompareText(a.Title, b.Title) },
	},
	DefaultSort: SortNewest,
}

// galleryRules builds the category table. Three categories are broader
// than an exact match on the artwork's category.
func galleryRules() map[string]Predicate[catalog.Artwork] {
	category := func(a catalog.Artwork) string { return string(a.Category) }
	rules := make(map[string]Predicate[catalog.Artwork], len(catalog.ArtworkCategories))
	for _, c := range catalog.ArtworkCategories {
		rules[string(c)] = exact(category, string(c))
	}
	rules[string(catalog.CategoryKidsFriendly)] = func(a catalog.Artwork) bool {
		return a.HasTag("Kids", "School")
	}
	rules[string(catalog.CategoryLGBTQIA)] = func(a catalog.Artwork) bool {
		return a.HasTag("LGBTQIA+", "Pride")
	}
	rules[string(catalog.CategoryLocalArtists)] = func(a catalog.Artwork) bool {
		return a.HasTag("Community") || a.Category == catalog.CategoryLocalArtists
	}
	return rules
}

// Projects is the infrastructure projects view. Status filters are the
// lower-cased status names. Without a sort key projects stay in catalog order.
var Projects = &View[catalog.Project]{
	Name: "projects",
	Categories: map[string]Predicate[catalog.Project]{
		"active":    projectStatus(catalog.ProjectActive),
		"planning":  projectStatus(catalog.ProjectPlanning),
		"completed": projectStatus(catalog.ProjectCompleted),
	},
	FoldCategory: true,
	Fields: []func(catalog.Project) string{
		func(p catalog.Project) string { return p.Title },
		func(p catalog.Project) string { return p.Location },
		func(p catalog.Project) string { return p.Phase },
	},
	Sorts: map[string]Comparator[catalog.Project]{
		SortNewest:  func(a, b catalog.Project) int { return b.Deadline.Compare(a.Deadline) },
		SortOldest:  func(a, b catalog.Project) int { return a.Deadline.Compare(b.Deadline) },
		SortPopular: func(a, b catalog.Project) int { return cmp.Compare(b.Artworks, a.Artworks) },
		SortTitle:   func(a, b catalog.Project) int { return CompareText(a.Title, b.Title) },
	},
	UnknownSort: SortNewest,
}

func projectStatus(s catalog.ProjectStatus) Predicate[catalog.Project] {
	want := strings.ToLower(string(s))
	return func(p catalog.Project) bool { return strings.ToLower(string(p.Status)) == want }
}

// Network is the artist network view; it only searches.
var Network = &View[catalog.Artist]{
	Name: "artist-network",
	Fields: []func(catalog.Artist) string{
		func(a catalog.Artist) string { return a.Name },
		func(a catalog.Artist) string { return a.Specialty },
		func(a catalog.Artist) string { return a.Location },
	},
}

// FavoriteSlug turns a favorite's category into its filter value:
// lower case with the first space replaced by an underscore.
func FavoriteSlug(category string) string {
	return strings.Replace(strings.ToLower(category), " ", "_", 1)
}

// Favorites is the saved artworks view.
var Favorites = &View[catalog.Favorite]{
	Name:       "my-favorites",
	Categories: favoriteRules(catalog.Favorites()),
	Fields: []func(catalog.Favorite) string{
		func(f catalog.Favorite) string { return f.Title },
		func(f catalog.Favorite) string { return f.Artist },
		func(f catalog.Favorite) string { return f.Location },
		func(f catalog.Favorite) string { return f.Category },
	},
	Sorts: map[string]Comparator[catalog.Favorite]{
		SortNewest:  func(a, b catalog.Favorite) int { return b.DateAdded.Compare(a.DateAdded) },
		SortOldest:  func(a, b catalog.Favorite) int { return a.DateAdded.Compare(b.DateAdded) },
		SortPopular: func(a, b catalog.Favorite) int { return cmp.Compare(b.Likes, a.Likes) },
		SortArtist:  func(a, b catalog.Favorite) int { return CompareText(a.Artist, b.Artist) },
	},
	DefaultSort: SortNewest,
}

func favoriteRules(favs []catalog.Favorite) map[string]Predicate[catalog.Favorite] {
	rules := make(map[string]Predicate[catalog.Favorite])
	for _, f := range favs {
		slug := FavoriteSlug(f.Category)
		rules[slug] = func(f catalog.Favorite) bool { return FavoriteSlug(f.Category) == slug }
	}
	return rules
}

// Submissions is the my-submissions view.
var Submissions = &View[catalog.Submission]{
	Name:       "my-submissions",
	Categories: submissionRules(),
	Fields: []func(catalog.Submission) string{
		func(s catalog.Submission) string { return s.Title },
		func(s catalog.Submission) string { return s.Project },
		func(s catalog.Submission) string { return s.Location },
	},
	Sorts: map[string]Comparator[catalog.Submission]{
		SortNewest:  func(a, b catalog.Submission) int { return b.SubmissionDate.Compare(a.SubmissionDate) },
		SortOldest:  func(a, b catalog.Submission) int { return a.SubmissionDate.Compare(b.SubmissionDate) },
		SortPopular: func(a, b catalog.Submission) int { return cmp.Compare(b.Views, a.Views) },
	},
	DefaultSort: SortNewest,
}

func submissionRules() map[string]Predicate[catalog.Submission] {
	status := func(s catalog.Submission) string { return string(s.Status) }
	rules := make(map[string]Predicate[catalog.Submission], len(catalog.SubmissionStatuses))
	for _, s := range catalog.SubmissionStatuses {
		rules[string(s)] = exact(status, string(s))
	}
	return rules
}
