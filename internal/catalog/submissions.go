package catalog

const placeholderImage = "/api/placeholder/400/300"

var submissions = []Submission{
	{
		ID:             1,
		Title:          "Unity Bridges",
		Description:    "A vibrant mural celebrating multicultural harmony in Western Sydney",
		Image:          placeholderImage,
		Status:         SubmissionApproved,
		Project:        "Western Sydney Metro",
		SubmissionDate: mustDate("2024-01-15"),
		ApprovalDate:   mustDate("2024-01-22"),
		Category:       "Mural",
		Location:       "Bankstown Station",
		Feedback:       "Excellent representation of community diversity. Perfect fit for the station's aesthetic.",
		Views:          1240,
		Likes:          89,
	},
	{
		ID:             2,
		Title:          "Cultural Harmony",
		Description:    "Abstract sculpture representing the connection between traditional and modern Australia",
		Image:          placeholderImage,
		Status:         SubmissionPending,
		Project:        "Pacific Highway Upgrade",
		SubmissionDate: mustDate("2024-02-20"),
		Category:       "Sculpture",
		Location:       "Coffs Harbour Junction",
		Views:          567,
		Likes:          23,
	},
	{
		ID:             3,
		Title:          "Community Voices",
		Description:    "Interactive digital installation showcasing local stories and memories",
		Image:          placeholderImage,
		Status:         SubmissionFeatured,
		Project:        "Northern Beaches Link",
		SubmissionDate: mustDate("2023-12-10"),
		ApprovalDate:   mustDate("2023-12-18"),
		FeaturedDate:   mustDate("2024-01-05"),
		Category:       "Digital Art",
		Location:       "Mona Vale Station",
		Feedback:       "Outstanding community engagement. This piece has become a local landmark!",
		Views:          2850,
		Likes:          156,
	},
	{
		ID:             4,
		Title:          "Indigenous Connections",
		Description:    "Traditional dot painting honoring the indigenous heritage of the land",
		Image:          placeholderImage,
		Status:         SubmissionRejected,
		Project:        "Great Western Highway",
		SubmissionDate: mustDate("2024-01-30"),
		RejectionDate:  mustDate("2024-02-05"),
		Category:       "Traditional Art",
		Location:       "Blue Mountains Crossing",
		Feedback:       "Beautiful artwork, but we need to ensure proper cultural consultation protocols are followed.",
		Views:          334,
		Likes:          12,
	},
	{
		ID:             5,
		Title:          "Ocean Dreams",
		Description:    "Flowing blue and teal patterns inspired by coastal waters",
		Image:          placeholderImage,
		Status:         SubmissionInReview,
		Project:        "South Coast Rail Extension",
		SubmissionDate: mustDate("2024-02-25"),
		Category:       "Abstract",
		Location:       "Wollongong Central",
		Views:          145,
		Likes:          8,
	},
}

var favorites = []Favorite{
	{
		ID:           1,
		Title:        "Harbor Dreams",
		Artist:       "Sarah Chen",
		ArtistAvatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		Image:        "https://images.unsplash.com/photo-1554188248-986adbb73be4?w=400&h=300&fit=crop&crop=center",
		Project:      "Sydney Harbor Bridge Renewal",
		Location:     "Circular Quay",
		Category:     "Mural",
		DateAdded:    mustDate("2024-02-15"),
		Likes:        245,
		Description:  "A stunning watercolor-style mural capturing the essence of Sydney's harbor at sunrise",
		Tags:         []string{"harbor", "sunrise", "watercolor", "sydney"},
	},
	{
		ID:           2,
		Title:        "Indigenous Connections",
		Artist:       "Michael Tjandrawati",
		ArtistAvatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=face",
		Image:        "https://images.unsplash.com/photo-1578321272176-b7bbc0679853?w=400&h=300&fit=crop&crop=center",
		Project:      "Great Western Highway",
		Location:     "Blue Mountains",
		Category:     "Traditional Art",
		DateAdded:    mustDate("2024-02-10"),
		Likes:        189,
		Description:  "Traditional dot painting celebrating the indigenous heritage of the Blue Mountains region",
		Tags:         []string{"indigenous", "traditional", "heritage", "mountains"},
	},
	{
		ID:           3,
		Title:        "Digital Harmony",
		Artist:       "Elena Rodriguez",
		ArtistAvatar: "https://images.unsplash.com/photo-1494790108755-2616b2e0a9a5?w=150&h=150&fit=crop&crop=face",
		Image:        "https://images.unsplash.com/photo-1741118235626-deca5a59ec2d?w=400&h=300&fit=crop&crop=center",
		Project:      "Metro West Line",
		Location:     "Parramatta Station",
		Category:     "Digital Installation",
		DateAdded:    mustDate("2024-02-05"),
		Likes:        312,
		Description:  "Interactive LED installation that responds to commuter movement and creates flowing light patterns",
		Tags:         []string{"digital", "interactive", "led", "technology"},
	},
	{
		ID:           4,
		Title:        "Community Tapestry",
		Artist:       "James Wong",
		ArtistAvatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		Image:        "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400&h=300&fit=crop&crop=center",
		Project:      "Northern Beaches Link",
		Location:     "Manly Junction",
		Category:     "Textile Art",
		DateAdded:    mustDate("2024-01-28"),
		Likes:        167,
		Description:  "Large-scale textile installation representing the diverse communities of the Northern Beaches",
		Tags:         []string{"textile", "community", "diverse", "beaches"},
	},
	{
		ID:           5,
		Title:        "Urban Forest",
		Artist:       "Priya Sharma",
		ArtistAvatar: "https://images.unsplash.com/photo-1509967419530-da38b4704bc6?w=150&h=150&fit=crop&crop=face",
		Image:        "https://images.unsplash.com/photo-1561214115-f2f134cc4912?w=300&h=200&fit=crop&crop=center",
		Project:      "Western Sydney Parkway",
		Location:     "Mount Druitt",
		Category:     "Sculpture",
		DateAdded:    mustDate("2024-01-20"),
		Likes:        203,
		Description:  "Metal and glass sculpture creating the illusion of trees growing through concrete infrastructure",
		Tags:         []string{"sculpture", "nature", "urban", "sustainability"},
	},
	{
		ID:           6,
		Title:        "Ocean Waves",
		Artist:       "David Kim",
		ArtistAvatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
		Image:        "https://images.unsplash.com/photo-1578836537282-3171d77f8632?w=400&h=300&fit=crop&crop=center",
		Project:      "South Coast Extension",
		Location:     "Wollongong",
		Category:     "Mosaic",
		DateAdded:    mustDate("2024-01-15"),
		Likes:        134,
		Description:  "Flowing mosaic artwork inspired by the patterns of ocean waves and coastal erosion",
		Tags:         []string{"mosaic", "ocean", "waves", "coastal"},
	},
}

var notifications = []Notification{
	{
		ID:      1,
		Type:    "submission",
		Title:   "New artwork approved!",
		Message: `Your "Unity Bridges" submission has been approved for the Western Sydney Metro project.`,
		Time:    "2 hours ago",
		Icon:    "🎨",
		Unread:  true,
	},
	{
		ID:      2,
		Type:    "project",
		Title:   "New project available",
		Message: "Pacific Highway Upgrade is now accepting community art submissions.",
		Time:    "5 hours ago",
		Icon:    "🚧",
		Unread:  true,
	},
	{
		ID:      3,
		Type:    "community",
		Title:   "Community showcase",
		Message: `Featured in this week's community spotlight: "Multicultural Harmony" series.`,
		Time:    "1 day ago",
		Icon:    "🌟",
		Unread:  false,
	},
}

var recentSubmissions = []RecentSubmission{
	{
		ID:          1,
		Title:       "Rainbow Connections",
		Artist:      "Alex Chen-Patel",
		Project:     "Western Sydney Metro",
		Status:      ArtworkUnderReview,
		SubmittedAt: mustDate("2024-01-15"),
		Image:       "https://images.unsplash.com/photo-1561214115-f2f134cc4912?w=80&h=80&fit=crop&crop=center",
	},
	{
		ID:          2,
		Title:       "Faith in Unity",
		Artist:      "Rabbi Sarah Al-Rashid",
		Project:     "Pacific Highway Upgrade",
		Status:      ArtworkApproved,
		SubmittedAt: mustDate("2024-01-12"),
		Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=80&h=80&fit=crop&crop=center",
	},
	{
		ID:          3,
		Title:       "Ancestral Wisdom",
		Artist:      "Uncle Billy Yamurru-Wilson",
		Project:     "Light Rail Extension",
		Status:      ArtworkApproved,
		SubmittedAt: mustDate("2024-01-10"),
		Image:       "https://images.unsplash.com/photo-1547036967-23d11aacaee0?w=80&h=80&fit=crop&crop=center",
	},
}

// Submissions returns the signed-in artist's submissions.
func Submissions() []Submission { return submissions }

// Favorites returns the saved artworks.
func Favorites() []Favorite { return favorites }

// Notifications returns the header notifications.
func Notifications() []Notification { return notifications }

// RecentSubmissions returns the dashboard feed.
func RecentSubmissions() []RecentSubmission { return recentSubmissions }

// FavoriteByID looks up a saved artwork.
func FavoriteByID(id int) (Favorite, bool) {
	for _, f := range favorites {
		if f.ID == id {
			return f, true
		}
	}
	return Favorite{}, false
}

// NotificationByID looks up a notification.
func NotificationByID(id int) (Notification, bool) {
	for _, n := range notifications {
		if n.ID == id {
			return n, true
		}
	}
	return Notification{}, false
}

// SubmissionByID looks up one of the user's submissions.
func SubmissionByID(id int) (Submission, bool) {
	for _, s := range submissions {
		if s.ID == id {
			return s, true
		}
	}
	return Submission{}, false
}
