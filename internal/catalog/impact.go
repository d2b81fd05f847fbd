package catalog

type ImpactOverview struct {
	TotalArtworks        int `json:"total_artworks"`
	ApprovedArtworks     int `json:"approved_artworks"`
	FeaturedArtworks     int `json:"featured_artworks"`
	TotalViews           int `json:"total_views"`
	TotalLikes           int `json:"total_likes"`
	TotalComments        int `json:"total_comments"`
	ProjectsParticipated int `json:"projects_participated"`
	CommunitiesReached   int `json:"communities_reached"`
	SocialScore          int `json:"social_score"`
}

type ImpactEngagement struct {
	AverageViews     int     `json:"average_views"`
	AverageLikes     int     `json:"average_likes"`
	AverageComments  int     `json:"average_comments"`
	EngagementRate   float64 `json:"engagement_rate"`
	SharesTotalCount int     `json:"shares_total_count"`
	SavedByUsers     int     `json:"saved_by_users"`
	FollowersGained  int     `json:"followers_gained"`
}

type CommunityReach struct {
	Name       string `json:"name"`
	Artworks   int    `json:"artworks"`
	Engagement int    `json:"engagement"`
}

type ImpactCommunity struct {
	CommunitiesImpacted []CommunityReach `json:"communities_impacted"`
	Collaborations      int              `json:"collaborations"`
	MentorshipHours     int              `json:"mentorship_hours"`
	WorkshopsAttended   int              `json:"workshops_attended"`
	CommunityEvents     int              `json:"community_events"`
}

type ImpactRecognition struct {
	FeaturedTimes         int `json:"featured_times"`
	Awards                int `json:"awards"`
	MediaFeatures         int `json:"media_features"`
	Testimonials          int `json:"testimonials"`
	InfluencerShares      int `json:"influencer_shares"`
	GovernmentRecognition int `json:"government_recognition"`
}

type ImpactActivity struct {
	ID     int    `json:"id"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Date   Date   `json:"date"`
	Impact string `json:"impact"`
	Icon   string `json:"icon"`
}

type MonthlyStat struct {
	Month       string `json:"month"`
	Views       int    `json:"views"`
	Likes       int    `json:"likes"`
	Submissions int    `json:"submissions"`
}

// ImpactProfile backs the my-impact view.
type ImpactProfile struct {
	Overview       ImpactOverview    `json:"overview"`
	Engagement     ImpactEngagement  `json:"engagement"`
	Community      ImpactCommunity   `json:"community"`
	Recognition    ImpactRecognition `json:"recognition"`
	RecentActivity []ImpactActivity  `json:"recent_activity"`
	Monthly        []MonthlyStat     `json:"monthly"`
}

var impact = ImpactProfile{
	Overview: ImpactOverview{
		TotalArtworks:        12,
		ApprovedArtworks:     8,
		FeaturedArtworks:     3,
		TotalViews:           15847,
		TotalLikes:           1248,
		TotalComments:        324,
		ProjectsParticipated: 6,
		CommunitiesReached:   4,
		SocialScore:          87,
	},
	Engagement: ImpactEngagement{
		AverageViews:     1320,
		AverageLikes:     104,
		AverageComments:  27,
		EngagementRate:   8.3,
		SharesTotalCount: 156,
		SavedByUsers:     89,
		FollowersGained:  234,
	},
	Community: ImpactCommunity{
		CommunitiesImpacted: []CommunityReach{
			{Name: "Western Sydney", Artworks: 4, Engagement: 4200},
			{Name: "Northern Beaches", Artworks: 2, Engagement: 2800},
			{Name: "Blue Mountains", Artworks: 1, Engagement: 1900},
			{Name: "South Coast", Artworks: 1, Engagement: 1500},
		},
		Collaborations:    3,
		MentorshipHours:   24,
		WorkshopsAttended: 7,
		CommunityEvents:   5,
	},
	Recognition: ImpactRecognition{
		FeaturedTimes:         3,
		Awards:                1,
		MediaFeatures:         2,
		Testimonials:          5,
		InfluencerShares:      12,
		GovernmentRecognition: 1,
	},
	RecentActivity: []ImpactActivity{
		{ID: 1, Type: "featured", Title: `Your artwork "Unity Bridges" was featured in the community showcase`, Date: mustDate("2024-02-20"), Impact: "+500 views, +45 likes", Icon: "⭐"},
		{ID: 2, Type: "approval", Title: "Cultural Harmony artwork approved for Pacific Highway project", Date: mustDate("2024-02-18"), Impact: "Reaching 15,000+ daily commuters", Icon: "✅"},
		{ID: 3, Type: "engagement", Title: "Your Digital Dreams artwork received 100+ likes", Date: mustDate("2024-02-15"), Impact: "+12 new followers", Icon: "❤️"},
		{ID: 4, Type: "collaboration", Title: "Invited to collaborate on Metro West Line project", Date: mustDate("2024-02-12"), Impact: "Multi-artist community initiative", Icon: "🤝"},
		{ID: 5, Type: "recognition", Title: "Featured in Australia social media campaign", Date: mustDate("2024-02-10"), Impact: "50K+ social media reach", Icon: "📺"},
	},
	Monthly: []MonthlyStat{
		{Month: "Jan 2024", Views: 2400, Likes: 180, Submissions: 2},
		{Month: "Feb 2024", Views: 3200, Likes: 245, Submissions: 3},
		{Month: "Mar 2024", Views: 2800, Likes: 210, Submissions: 1},
		{Month: "Apr 2024", Views: 3600, Likes: 290, Submissions: 4},
		{Month: "May 2024", Views: 3100, Likes: 235, Submissions: 2},
	},
}

// Impact returns the signed-in artist's impact profile.
func Impact() *ImpactProfile { return &impact }
