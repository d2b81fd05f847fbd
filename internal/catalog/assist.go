package catalog

var matchCandidates = []MatchCandidate{
	{
		ID:                 1,
		Name:               "Uncle Billy Warrawong",
		CulturalBackground: "Aboriginal Australian",
		Location:           "Sydney, NSW",
		Skills:             []string{"Traditional Dot Painting", "Dreamtime Stories", "Cultural Education"},
		Experience:         "Senior",
		Projects:           []string{"Western Sydney Metro", "Harbour Bridge Installation"},
		Interests:          []string{"Mentorship", "Cultural Bridge-Building", "Youth Education"},
		Availability:       "Part-time",
		MatchScore:         96,
	},
	{
		ID:                 2,
		Name:               "Maria Santos-Rodriguez",
		CulturalBackground: "Latin American Australian",
		Location:           "Melbourne, VIC",
		Skills:             []string{"Community Murals", "Social Justice Art", "Workshop Leadership"},
		Experience:         "Mid-level",
		Projects:           []string{"Pacific Highway Upgrade", "Community Center Revitalization"},
		Interests:          []string{"Community Empowerment", "Multicultural Collaboration", "Public Art"},
		Availability:       "Full-time",
		MatchScore:         94,
	},
	{
		ID:                 3,
		Name:               "Anh Nguyen",
		CulturalBackground: "Vietnamese Australian",
		Location:           "Brisbane, QLD",
		Skills:             []string{"Digital Integration", "Interactive Art", "Technology Innovation"},
		Experience:         "Mid-level",
		Projects:           []string{"Light Rail Extension", "Smart City Integration"},
		Interests:          []string{"Tech-Art Fusion", "Cultural Preservation", "Innovation"},
		Availability:       "Full-time",
		MatchScore:         92,
	},
	{
		ID:                 4,
		Name:               "Fatima Al-Zahra",
		CulturalBackground: "Middle Eastern Australian",
		Location:           "Perth, WA",
		Skills:             []string{"Islamic Geometric Art", "Calligraphy", "Interfaith Projects"},
		Experience:         "Senior",
		Projects:           []string{"Airport Link Expansion", "Multicultural Festival Installations"},
		Interests:          []string{"Religious Harmony", "Cultural Education", "Interfaith Dialogue"},
		Availability:       "Part-time",
		MatchScore:         89,
	},
	{
		ID:                 5,
		Name:               "Jamie Thompson",
		CulturalBackground: "LGBTQIA+ Advocate",
		Location:           "Adelaide, SA",
		Skills:             []string{"Pride Art", "Community Organizing", "Inclusive Design"},
		Experience:         "Mid-level",
		Projects:           []string{"Rainbow Bridge Project", "Pride Month Installations"},
		Interests:          []string{"LGBTQIA+ Representation", "Inclusive Communities", "Youth Support"},
		Availability:       "Full-time",
		MatchScore:         91,
	},
	{
		ID:                 6,
		Name:               "Raj Patel",
		CulturalBackground: "Indian Australian",
		Location:           "Darwin, NT",
		Skills:             []string{"Traditional Indian Art", "Festival Organization", "Cultural Fusion"},
		Experience:         "Senior",
		Projects:           []string{"Northern Territory Cultural Trail", "Diwali Public Celebrations"},
		Interests:          []string{"Cultural Festivals", "Traditional Arts", "Community Celebration"},
		Availability:       "Part-time",
		MatchScore:         87,
	},
}

// MatchInterests is the fixed list of interests offered by the matcher.
var MatchInterests = []string{
	"Aboriginal Culture", "Multicultural Collaboration", "Youth Engagement",
	"LGBTQIA+ Inclusion", "Environmental Art", "Digital Innovation",
	"Community Healing", "Cultural Bridge-Building", "Traditional Arts",
	"Social Justice", "Interfaith Dialogue", "Mentorship",
}

var analysisResults = []AnalysisResult{
	{
		ID:                 1,
		Image:              "https://images.unsplash.com/photo-1554188248-986adbb73be4?w=400&h=300&fit=crop",
		PrimaryStyle:       "Contemporary Aboriginal Dot Painting",
		CulturalInfluences: []string{"Dreamtime Stories", "Western Desert Art", "Contemporary Urban Expression"},
		Techniques:         []string{"Traditional Ochre Pigments", "Dot Work", "Symbolic Storytelling"},
		Confidence:         94,
		CulturalSensitivity: CulturalSensitivity{
			Score: 98,
			Notes: "Respectful use of traditional techniques with contemporary expression",
		},
		SocialImpact: SocialImpactScores{CommunityEngagement: 87, CulturalBridgeBuilding: 92, EducationalValue: 89},
		Recommendations: []string{
			"Consider collaboration with local Aboriginal elders for cultural validation",
			"Excellent for community centers and educational spaces",
			"Would pair well with digital storytelling elements",
		},
		SimilarArtists:    []string{"Kathleen Petyarre", "Emily Kame Kngwarreye", "Clifford Possum"},
		HistoricalContext: "This style connects to 65,000+ years of Aboriginal artistic tradition while embracing contemporary urban narratives",
	},
	{
		ID:                 2,
		Image:              "https://images.unsplash.com/photo-1578321272176-b7bbc0679853?w=400&h=300&fit=crop",
		PrimaryStyle:       "Pacific Islander Contemporary Sculpture",
		CulturalInfluences: []string{"Polynesian Carving", "Ocean Spirituality", "Modern Environmental Art"},
		Techniques:         []string{"Traditional Wood Carving", "Natural Material Integration", "Totemic Symbolism"},
		Confidence:         91,
		CulturalSensitivity: CulturalSensitivity{
			Score: 96,
			Notes: "Authentic representation of Pacific Islander maritime connection",
		},
		SocialImpact: SocialImpactScores{CommunityEngagement: 83, CulturalBridgeBuilding: 94, EducationalValue: 88},
		Recommendations: []string{
			"Perfect for coastal infrastructure projects",
			"Consider weather-resistant materials for outdoor installation",
			"Include QR codes for cultural education stories",
		},
		SimilarArtists:    []string{"Michel Tuffery", "Fatu Feu'u", "John Pule"},
		HistoricalContext: "Reflects Pacific Islander navigation traditions and deep ocean spiritual connections",
	},
}

// MatchCandidates returns the community matcher pool.
func MatchCandidates() []MatchCandidate { return matchCandidates }

// AnalysisResults returns the canned analyzer responses.
func AnalysisResults() []AnalysisResult { return analysisResults }
