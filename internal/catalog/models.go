// Package catalog holds the static, in-memory collections the views are built
// from. Every accessor returns the same slice on every call; callers treat the
// result as read-only.
package catalog

import (
	"encoding/json"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day. It marshals as YYYY-MM-DD.
type Date struct {
	time.Time
}

func mustDate(s string) Date {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic("catalog: bad date " + s)
	}
	return Date{t}
}

// IsZero reports whether the date was never set.
func (d Date) IsZero() bool { return d.Time.IsZero() }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	*d = Date{t}
	return nil
}

// Compare orders two dates chronologically.
func (d Date) Compare(o Date) int { return d.Time.Compare(o.Time) }

type ArtworkCategory string

const (
	CategoryMural        ArtworkCategory = "Mural"
	CategorySculpture    ArtworkCategory = "Sculpture"
	CategoryDigitalArt   ArtworkCategory = "Digital Art"
	CategoryInstallation ArtworkCategory = "Installation"
	CategoryStreetArt    ArtworkCategory = "Street Art"
	CategoryKidsFriendly ArtworkCategory = "Kids Friendly"
	CategoryLGBTQIA      ArtworkCategory = "LGBTQIA+"
	CategoryLocalArtists ArtworkCategory = "Local Artists"
)

// ArtworkCategories lists the gallery categories in menu order.
var ArtworkCategories = []ArtworkCategory{
	CategoryMural,
	CategorySculpture,
	CategoryDigitalArt,
	CategoryInstallation,
	CategoryStreetArt,
	CategoryKidsFriendly,
	CategoryLGBTQIA,
	CategoryLocalArtists,
}

type ArtworkStatus string

const (
	ArtworkFeatured    ArtworkStatus = "Featured"
	ArtworkApproved    ArtworkStatus = "Approved"
	ArtworkInProgress  ArtworkStatus = "In Progress"
	ArtworkPending     ArtworkStatus = "Pending"
	ArtworkRejected    ArtworkStatus = "Rejected"
	ArtworkUnderReview ArtworkStatus = "Under Review"
)

type Artwork struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Artist      string          `json:"artist"`
	Project     string          `json:"project"`
	Category    ArtworkCategory `json:"category"`
	Status      ArtworkStatus   `json:"status"`
	CreatedAt   Date            `json:"created_at"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Likes       int             `json:"likes"`
	Views       int             `json:"views"`
	Location    string          `json:"location"`
	Medium      string          `json:"medium"`
	Dimensions  string          `json:"dimensions"`
}

// HasTag reports whether the artwork carries any of the given tags.
func (a Artwork) HasTag(tags ...string) bool {
	return containsAny(a.Tags, tags)
}

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectPlanning  ProjectStatus = "Planning"
	ProjectCompleted ProjectStatus = "Completed"
)

type Project struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Location    string        `json:"location"`
	Status      ProjectStatus `json:"status"`
	Phase       string        `json:"phase"`
	Artworks    int           `json:"artworks"`
	Deadline    Date          `json:"deadline"`
	Description string        `json:"description"`
	Budget      string        `json:"budget"`
	Coordinator string        `json:"coordinator"`
	Image       string        `json:"image"`
	Tags        []string      `json:"tags"`
	Progress    int           `json:"progress"`
}

// HasTag reports whether the project carries any of the given tags.
func (p Project) HasTag(tags ...string) bool {
	return containsAny(p.Tags, tags)
}

type Artist struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Avatar            string `json:"avatar"`
	Location          string `json:"location"`
	Specialty         string `json:"specialty"`
	Followers         int    `json:"followers"`
	Artworks          int    `json:"artworks"`
	Featured          int    `json:"featured"`
	IsFollowing       bool   `json:"is_following"`
	MutualConnections int    `json:"mutual_connections"`
	RecentWork        string `json:"recent_work"`
	JoinDate          Date   `json:"join_date"`
	Reason            string `json:"reason,omitempty"`
}

type SubmissionStatus string

const (
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionFeatured SubmissionStatus = "featured"
	SubmissionRejected SubmissionStatus = "rejected"
	SubmissionInReview SubmissionStatus = "in_review"
)

// SubmissionStatuses lists the submission statuses in filter-menu order.
var SubmissionStatuses = []SubmissionStatus{
	SubmissionApproved,
	SubmissionPending,
	SubmissionFeatured,
	SubmissionInReview,
	SubmissionRejected,
}

type Submission struct {
	ID             int              `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Image          string           `json:"image"`
	Status         SubmissionStatus `json:"status"`
	Project        string           `json:"project"`
	SubmissionDate Date             `json:"submission_date"`
	ApprovalDate   Date             `json:"approval_date"`
	RejectionDate  Date             `json:"rejection_date"`
	FeaturedDate   Date             `json:"featured_date"`
	Category       string           `json:"category"`
	Location       string           `json:"location"`
	Feedback       string           `json:"feedback,omitempty"`
	Views          int              `json:"views"`
	Likes          int              `json:"likes"`
}

type Favorite struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Artist       string   `json:"artist"`
	ArtistAvatar string   `json:"artist_avatar"`
	Image        string   `json:"image"`
	Project      string   `json:"project"`
	Location     string   `json:"location"`
	Category     string   `json:"category"`
	DateAdded    Date     `json:"date_added"`
	Likes        int      `json:"likes"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
}

type Notification struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Icon    string `json:"icon"`
	Unread  bool   `json:"unread"`
}

// RecentSubmission is an entry in the dashboard activity feed.
type RecentSubmission struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Artist      string        `json:"artist"`
	Project     string        `json:"project"`
	Status      ArtworkStatus `json:"status"`
	SubmittedAt Date          `json:"submitted_at"`
	Image       string        `json:"image"`
}

// MatchCandidate is an artist in the community matcher pool.
type MatchCandidate struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	CulturalBackground string   `json:"cultural_background"`
	Location           string   `json:"location"`
	Skills             []string `json:"skills"`
	Experience         string   `json:"experience"`
	Projects           []string `json:"projects"`
	Interests          []string `json:"interests"`
	Availability       string   `json:"availability"`
	MatchScore         int      `json:"match_score"`
}

type SocialImpactScores struct {
	CommunityEngagement    int `json:"community_engagement"`
	CulturalBridgeBuilding int `json:"cultural_bridge_building"`
	EducationalValue       int `json:"educational_value"`
}

type CulturalSensitivity struct {
	Score int    `json:"score"`
	Notes string `json:"notes"`
}

// AnalysisResult is one canned art-analyzer response.
type AnalysisResult struct {
	ID                  int                 `json:"id"`
	Image               string              `json:"image"`
	PrimaryStyle        string              `json:"primary_style"`
	CulturalInfluences  []string            `json:"cultural_influences"`
	Techniques          []string            `json:"techniques"`
	Confidence          int                 `json:"confidence"`
	CulturalSensitivity CulturalSensitivity `json:"cultural_sensitivity"`
	SocialImpact        SocialImpactScores  `json:"social_impact"`
	Recommendations     []string            `json:"recommendations"`
	SimilarArtists      []string            `json:"similar_artists"`
	HistoricalContext   string              `json:"historical_context"`
}

func containsAny(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
