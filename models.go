package main

import (
	"time"

	"artaura/internal/browse"
	"artaura/internal/catalog"
	"artaura/internal/session"
	"artaura/internal/stats"
	"artaura/internal/store"
)

// Intent actions. None of them change the catalog.
const (
	ActionLike           = "like"
	ActionFollow         = "follow"
	ActionUnfollow       = "unfollow"
	ActionRemoveFavorite = "remove_favorite"
	ActionMarkRead       = "mark_read"
)

// Intent is a user reaction broadcast on the websocket hub.
type Intent struct {
	Action   string    `json:"action"`
	TargetID int       `json:"target_id"`
	Target   string    `json:"target"`
	Username string    `json:"username"`
	At       time.Time `json:"at"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	User    session.User `json:"user"`
	Token   string       `json:"token"`
}

type AuthStatus struct {
	Authenticated bool          `json:"authenticated"`
	State         string        `json:"state"`
	User          *session.User `json:"user,omitempty"`
}

type LoginPage struct {
	Providers []session.Provider `json:"providers"`
}

type DraftResponse struct {
	Saved bool          `json:"saved"`
	Draft session.Draft `json:"draft"`
}

type MatchRequest struct {
	Interests []string `json:"interests"`
}

type MatchResponse struct {
	Interests []string                 `json:"interests"`
	Matches   []catalog.MatchCandidate `json:"matches"`
}

type DashboardPage struct {
	User              session.User                 `json:"user"`
	Stats             stats.DashboardStats         `json:"stats"`
	SocialCohesion    stats.CohesionDashboardStats `json:"social_cohesion"`
	Learning          stats.LearningDashboardStats `json:"learning"`
	RecentSubmissions []catalog.RecentSubmission   `json:"recent_submissions"`
	Projects          []catalog.Project            `json:"projects"`
	Notifications     []catalog.Notification       `json:"notifications"`
	UnreadCount       int                          `json:"unread_count"`
}

type ProjectsPage struct {
	browse.Result[stats.EnhancedProject]
	Statuses []catalog.ProjectStatus `json:"statuses"`
}

type GalleryPage struct {
	browse.Result[catalog.Artwork]
	Stats        stats.GalleryStats             `json:"stats"`
	SocialImpact stats.GallerySocialImpactStats `json:"social_impact"`
	Employment   stats.EmploymentOpportunities  `json:"employment"`
	Categories   []catalog.ArtworkCategory      `json:"categories"`
}

type SubmitPage struct {
	User      session.User       `json:"user"`
	Projects  []catalog.Project  `json:"projects"`
	Draft     session.Draft      `json:"draft"`
	HasDraft  bool               `json:"has_draft"`
	Workforce []ProjectWorkforce `json:"workforce"`
}

type ProjectWorkforce struct {
	ProjectID int                       `json:"project_id"`
	Diversity stats.WorkforceDiversity  `json:"diversity"`
	Learning  stats.LearningOpportunity `json:"learning"`
}

type SocialImpactPage struct {
	User           session.User                `json:"user"`
	Profile        stats.UserProfile           `json:"profile"`
	Impact         stats.UserSocialImpactStats `json:"impact"`
	Challenges     stats.Challenges            `json:"challenges"`
	ProgramImpact  stats.ProgramImpact         `json:"program_impact"`
	Workforce      stats.WorkforceDevelopment  `json:"workforce"`
	LearningFocus  stats.LearningIntegration   `json:"learning_focus"`
	EngagementRate string                      `json:"engagement_rate"`
}

type ProfilePage struct {
	User           session.User             `json:"user"`
	Submissions    browse.SubmissionSummary `json:"submissions"`
	Level          stats.ImpactLevel        `json:"level"`
	RecentActivity []store.Activity         `json:"recent_activity"`
}

type SubmissionsPage struct {
	browse.Result[catalog.Submission]
	Summary  browse.SubmissionSummary   `json:"summary"`
	Statuses []catalog.SubmissionStatus `json:"statuses"`
}

type FavoritesPage struct {
	browse.Result[catalog.Favorite]
	Summary browse.FavoriteSummary `json:"summary"`
}

type NetworkPage struct {
	browse.Result[catalog.Artist]
	Tab     catalog.NetworkTab    `json:"tab"`
	Summary browse.NetworkSummary `json:"summary"`
}

type ImpactPage struct {
	Timeframe string                 `json:"timeframe"`
	Impact    *catalog.ImpactProfile `json:"impact"`
	Level     stats.ImpactLevel      `json:"level"`
	Reach     string                 `json:"reach"`
}

type AnalyzerPage struct {
	User    session.User `json:"user"`
	Samples int          `json:"samples"`
}

type MatcherPage struct {
	User      session.User `json:"user"`
	Interests []string     `json:"interests"`
}

// SettingsPage carries the settings form with its initial values.
type SettingsPage struct {
	Profile       ProfileSettings      `json:"profile"`
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
	Display       DisplaySettings      `json:"display"`
}

type ProfileSettings struct {
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Bio         string            `json:"bio"`
	Location    string            `json:"location"`
	Website     string            `json:"website"`
	SocialMedia map[string]string `json:"social_media"`
}

type NotificationSettings struct {
	EmailNotifications   bool `json:"email_notifications"`
	PushNotifications    bool `json:"push_notifications"`
	SubmissionUpdates    bool `json:"submission_updates"`
	CommunityActivity    bool `json:"community_activity"`
	NewProjectAlerts     bool `json:"new_project_alerts"`
	WeeklyDigest         bool `json:"weekly_digest"`
	FeaturedArtwork      bool `json:"featured_artwork"`
	CollaborationInvites bool `json:"collaboration_invites"`
}

type PrivacySettings struct {
	ProfileVisibility   string `json:"profile_visibility"`
	ShowEmail           bool   `json:"show_email"`
	ShowPhone           bool   `json:"show_phone"`
	AllowMessages       bool   `json:"allow_messages"`
	AllowCollaborations bool   `json:"allow_collaborations"`
	ShowInSearchResults bool   `json:"show_in_search_results"`
	DataCollection      bool   `json:"data_collection"`
	MarketingEmails     bool   `json:"marketing_emails"`
}

type DisplaySettings struct {
	Theme              string `json:"theme"`
	Language           string `json:"language"`
	DateFormat         string `json:"date_format"`
	Timezone           string `json:"timezone"`
	ArtworkDisplayMode string `json:"artwork_display_mode"`
	ShowTutorials      bool   `json:"show_tutorials"`
	CompactMode        bool   `json:"compact_mode"`
}

func defaultSettings(u session.User) SettingsPage {
	return SettingsPage{
		Profile: ProfileSettings{
			Name:  u.Name,
			Email: u.Email,
			SocialMedia: map[string]string{
				"instagram": "",
				"facebook":  "",
				"linkedin":  "",
			},
		},
		Notifications: NotificationSettings{
			EmailNotifications:   true,
			PushNotifications:    true,
			SubmissionUpdates:    true,
			CommunityActivity:    true,
			NewProjectAlerts:     true,
			FeaturedArtwork:      true,
			CollaborationInvites: true,
		},
		Privacy: PrivacySettings{
			ProfileVisibility:   "public",
			AllowMessages:       true,
			AllowCollaborations: true,
			ShowInSearchResults: true,
			DataCollection:      true,
		},
		Display: DisplaySettings{
			Theme:              "light",
			Language:           "en-AU",
			DateFormat:         "DD/MM/YYYY",
			Timezone:           "Australia/Sydney",
			ArtworkDisplayMode: "grid",
			ShowTutorials:      true,
		},
	}
}
