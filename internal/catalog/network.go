package catalog

// NetworkTab selects one of the artist network lists.
type NetworkTab string

const (
	TabFollowing NetworkTab = "following"
	TabFollowers NetworkTab = "followers"
	TabDiscover  NetworkTab = "discover"
)

const placeholderAvatar = "/api/placeholder/80/80"

var following = []Artist{
	{
		ID:                1,
		Name:              "Sarah Chen",
		Avatar:            placeholderAvatar,
		Location:          "Sydney, NSW",
		Specialty:         "Watercolor & Digital Art",
		Followers:         1240,
		Artworks:          28,
		Featured:          5,
		IsFollowing:       true,
		MutualConnections: 12,
		RecentWork:        "Harbor Dreams - Sydney Harbor Bridge",
		JoinDate:          mustDate("2023-05-15"),
	},
	{
		ID:                2,
		Name:              "Michael Tjandrawati",
		Avatar:            placeholderAvatar,
		Location:          "Blue Mountains, NSW",
		Specialty:         "Indigenous Traditional Art",
		Followers:         890,
		Artworks:          15,
		Featured:          8,
		IsFollowing:       true,
		MutualConnections: 8,
		RecentWork:        "Cultural Connections - Great Western Highway",
		JoinDate:          mustDate("2023-03-10"),
	},
	{
		ID:                3,
		Name:              "Elena Rodriguez",
		Avatar:            placeholderAvatar,
		Location:          "Parramatta, NSW",
		Specialty:         "Interactive Digital Installations",
		Followers:         2150,
		Artworks:          42,
		Featured:          12,
		IsFollowing:       true,
		MutualConnections: 23,
		RecentWork:        "Digital Harmony - Metro West Line",
		JoinDate:          mustDate("2022-11-20"),
	},
}

var followers = []Artist{
	{
		ID:                4,
		Name:              "James Wong",
		Avatar:            placeholderAvatar,
		Location:          "Northern Beaches, NSW",
		Specialty:         "Textile & Fabric Art",
		Followers:         567,
		Artworks:          22,
		Featured:          3,
		MutualConnections: 5,
		RecentWork:        "Community Tapestry - Northern Beaches Link",
		JoinDate:          mustDate("2023-08-05"),
	},
	{
		ID:                5,
		Name:              "Priya Sharma",
		Avatar:            placeholderAvatar,
		Location:          "Mount Druitt, NSW",
		Specialty:         "Sculpture & Mixed Media",
		Followers:         733,
		Artworks:          19,
		Featured:          4,
		IsFollowing:       true,
		MutualConnections: 7,
		RecentWork:        "Urban Forest - Western Sydney Parkway",
		JoinDate:          mustDate("2023-06-12"),
	},
	{
		ID:                6,
		Name:              "David Kim",
		Avatar:            placeholderAvatar,
		Location:          "Wollongong, NSW",
		Specialty:         "Mosaic & Ceramic Art",
		Followers:         423,
		Artworks:          16,
		Featured:          2,
		MutualConnections: 3,
		RecentWork:        "Ocean Waves - South Coast Extension",
		JoinDate:          mustDate("2023-09-18"),
	},
}

var suggested = []Artist{
	{
		ID:                7,
		Name:              "Lisa Anderson",
		Avatar:            placeholderAvatar,
		Location:          "Cronulla, NSW",
		Specialty:         "Street Art & Murals",
		Followers:         1890,
		Artworks:          35,
		Featured:          9,
		MutualConnections: 15,
		RecentWork:        "Coastal Stories - Cronulla Line Extension",
		JoinDate:          mustDate("2022-12-03"),
		Reason:            "Similar artistic style",
	},
	{
		ID:                8,
		Name:              "Robert Johnson",
		Avatar:            placeholderAvatar,
		Location:          "Blacktown, NSW",
		Specialty:         "Photography & Light Art",
		Followers:         1156,
		Artworks:          41,
		Featured:          6,
		MutualConnections: 9,
		RecentWork:        "Light Patterns - Western Metro Upgrade",
		JoinDate:          mustDate("2023-01-15"),
		Reason:            "Works on similar projects",
	},
	{
		ID:                9,
		Name:              "Maria Gonzalez",
		Avatar:            placeholderAvatar,
		Location:          "Liverpool, NSW",
		Specialty:         "Community Collaborative Art",
		Followers:         2340,
		Artworks:          28,
		Featured:          11,
		MutualConnections: 18,
		RecentWork:        "Voices United - South West Rail Link",
		JoinDate:          mustDate("2022-08-22"),
		Reason:            "Popular in your network",
	},
}

// Following returns the artists the user follows.
func Following() []Artist { return following }

// Followers returns the artists following the user.
func Followers() []Artist { return followers }

// Suggested returns the discover tab.
func Suggested() []Artist { return suggested }

// Network returns the list behind a tab. Unknown tabs yield nil.
func Network(tab NetworkTab) []Artist {
	switch tab {
	case TabFollowing:
		return following
	case TabFollowers:
		return followers
	case TabDiscover:
		return suggested
	default:
		return nil
	}
}

// ArtistByID searches every network list.
func ArtistByID(id int) (Artist, bool) {
	for _, list := range [][]Artist{following, followers, suggested} {
		for _, a := range list {
			if a.ID == id {
				return a, true
			}
		}
	}
	return Artist{}, false
}
