package catalog

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessorsReturnSameCollection(t *testing.T) {
	a1, a2 := Artworks(), Artworks()
	require.Len(t, a1, 12)
	assert.Same(t, &a1[0], &a2[0])

	p1, p2 := Projects(), Projects()
	require.Len(t, p1, 5)
	assert.Same(t, &p1[0], &p2[0])

	assert.Same(t, &Following()[0], &Network(TabFollowing)[0])
	assert.Same(t, &Followers()[0], &Network(TabFollowers)[0])
	assert.Same(t, &Suggested()[0], &Network(TabDiscover)[0])
	assert.Nil(t, Network("blocked"))
}

func TestArtworkInvariants(t *testing.T) {
	statuses := []ArtworkStatus{ArtworkFeatured, ArtworkApproved, ArtworkInProgress, ArtworkPending, ArtworkRejected, ArtworkUnderReview}
	for _, a := range Artworks() {
		assert.Contains(t, ArtworkCategories, a.Category, a.Title)
		assert.Contains(t, statuses, a.Status, a.Title)
		assert.GreaterOrEqual(t, a.Likes, 0)
		assert.GreaterOrEqual(t, a.Views, 0)
		assert.False(t, a.CreatedAt.IsZero(), a.Title)
	}
}

func TestProjectInvariants(t *testing.T) {
	for _, p := range Projects() {
		assert.Contains(t, []ProjectStatus{ProjectActive, ProjectPlanning, ProjectCompleted}, p.Status)
		assert.GreaterOrEqual(t, p.Progress, 0)
		assert.LessOrEqual(t, p.Progress, 100)
		assert.GreaterOrEqual(t, p.Artworks, 0)
	}
}

func TestSubmissionStatusesAreClosed(t *testing.T) {
	for _, s := range Submissions() {
		assert.True(t, slices.Contains(SubmissionStatuses, s.Status), s.Title)
	}
}

func TestLookups(t *testing.T) {
	a, ok := ArtworkByID(11)
	require.True(t, ok)
	assert.Equal(t, "Kids Paint the Future", a.Title)

	_, ok = ArtworkByID(99)
	assert.False(t, ok)

	artist, ok := ArtistByID(8)
	require.True(t, ok)
	assert.Equal(t, "Robert Johnson", artist.Name)

	f, ok := FavoriteByID(3)
	require.True(t, ok)
	assert.Equal(t, "Digital Harmony", f.Title)

	n, ok := NotificationByID(3)
	require.True(t, ok)
	assert.False(t, n.Unread)
}

func TestHasTag(t *testing.T) {
	a, _ := ArtworkByID(9)
	assert.True(t, a.HasTag("Pride"))
	assert.True(t, a.HasTag("Kids", "Community"))
	assert.False(t, a.HasTag("Kids", "School"))
}

func TestDateJSON(t *testing.T) {
	s, _ := SubmissionByID(2)
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2024-02-20", decoded["submission_date"])
	assert.Nil(t, decoded["approval_date"])

	var back Submission
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s.SubmissionDate.String(), back.SubmissionDate.String())
	assert.True(t, back.ApprovalDate.IsZero())
}
