package catalog

var artworks = []Artwork{
	{
		ID:          1,
		Title:       "Dreamtime Pathways",
		Artist:      "Aunty Mary Nginda",
		Project:     "Western Sydney Metro",
		Category:    CategoryMural,
		Status:      ArtworkFeatured,
		CreatedAt:   mustDate("2024-01-15"),
		Image:       "https://images.unsplash.com/photo-1554188248-986adbb73be4?w=400&h=300&fit=crop&crop=center",
		Description: "A vibrant Aboriginal dot painting mural depicting the traditional songlines and ancestral paths across Country, connecting past and present through transport infrastructure.",
		Tags:        []string{"Aboriginal", "Dreamtime", "Connection"},
		Likes:       245,
		Views:       1420,
		Location:    "Parramatta Station",
		Medium:      "Traditional ochre and acrylic on concrete",
		Dimensions:  "15m x 4m",
	},
	{
		ID:          2,
		Title:       "Ocean Country",
		Artist:      "Tommy Seaforth",
		Project:     "Pacific Highway Upgrade",
		Category:    CategorySculpture,
		Status:      ArtworkApproved,
		CreatedAt:   mustDate("2024-01-12"),
		Image:       "https://images.unsplash.com/photo-1578321272176-b7bbc0679853?w=400&h=300&fit=crop&crop=center",
		Description: "A flowing sculpture inspired by Indigenous totems and ocean spirits, representing the sacred connection between Aboriginal peoples and sea Country.",
		Tags:        []string{"Indigenous", "Ocean", "Totems"},
		Likes:       189,
		Views:       967,
		Location:    "Mona Vale Road",
		Medium:      "Carved timber and natural stones",
		Dimensions:  "8m x 3m x 2m",
	},
	{
		ID:          3,
		Title:       "Stories in Light",
		Artist:      "Miriam Torres-Chen",
		Project:     "Light Rail Extension",
		Category:    CategoryDigitalArt,
		Status:      ArtworkApproved,
		CreatedAt:   mustDate("2024-01-10"),
		Image:       "https://images.unsplash.com/photo-1741118235626-deca5a59ec2d?w=400&h=300&fit=crop&crop=center",
		Description: "Interactive digital displays showcasing Aboriginal and multicultural stories through traditional patterns and contemporary technology, changing with community participation.",
		Tags:        []string{"Digital", "Stories", "Culture"},
		Likes:       156,
		Views:       834,
		Location:    "Dulwich Hill Station",
		Medium:      "LED panels with cultural pattern mapping",
		Dimensions:  "6m x 3m",
	},
	{
		ID:          4,
		Title:       "Bridge of Nations",
		Artist:      "Koori Artist Collective",
		Project:     "Harbour Bridge Maintenance",
		Category:    CategoryInstallation,
		Status:      ArtworkFeatured,
		CreatedAt:   mustDate("2023-12-15"),
		Image:       "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400&h=300&fit=crop&crop=center",
		Description: "A powerful installation weaving together Aboriginal ochre handprints with diverse cultural symbols, celebrating 65,000+ years of Indigenous heritage alongside modern multiculturalism.",
		Tags:        []string{"Aboriginal", "Multicultural", "Heritage"},
		Likes:       892,
		Views:       4567,
		Location:    "Sydney Harbour Bridge",
		Medium:      "Mixed media with traditional materials",
		Dimensions:  "20m x 8m x 3m",
	},
	{
		ID:          5,
		Title:       "Welcome to Country",
		Artist:      "Lisa Yamurru-Anderson",
		Project:     "Airport Link Expansion",
		Category:    CategoryMural,
		Status:      ArtworkInProgress,
		CreatedAt:   mustDate("2024-01-08"),
		Image:       "https://images.unsplash.com/photo-1561214115-f2f134cc4912?w=300&h=200&fit=crop&crop=center",
		Description: "A welcoming mural featuring traditional Aboriginal art alongside symbols from Pacific Islander, Asian, African and European cultures, greeting all visitors to Country.",
		Tags:        []string{"Welcome", "Traditional", "Inclusive"},
		Likes:       134,
		Views:       678,
		Location:    "Airport Link Station",
		Medium:      "Natural pigments and weather-resistant acrylics",
		Dimensions:  "12m x 5m",
	},
	{
		ID:          6,
		Title:       "Country Harvest",
		Artist:      "William Paterson",
		Project:     "Western Sydney Metro",
		Category:    CategorySculpture,
		Status:      ArtworkApproved,
		CreatedAt:   mustDate("2024-01-05"),
		Image:       "https://images.unsplash.com/photo-1554188248-986adbb73be4?w=400&h=300&fit=crop&crop=center",
		Description: "Sculptures representing the agricultural heritage through Aboriginal perspectives on sustainable land management, incorporating traditional hunting and gathering symbols.",
		Tags:        []string{"Aboriginal", "Agriculture", "Sustainability"},
		Likes:       203,
		Views:       1156,
		Location:    "Blacktown Station",
		Medium:      "Carved stone and native timber",
		Dimensions:  "5m x 5m x 4m",
	},
	{
		ID:          7,
		Title:       "Digital Ancestor Spirits",
		Artist:      "Priya Wajarri-Patel",
		Project:     "Light Rail Extension",
		Category:    CategoryDigitalArt,
		Status:      ArtworkFeatured,
		CreatedAt:   mustDate("2023-12-28"),
		Image:       "https://images.unsplash.com/photo-1578321272176-b7bbc0679853?w=400&h=300&fit=crop&crop=center",
		Description: "An immersive digital environment blending Aboriginal dot painting with Indian rangoli patterns, responding to passenger movement like ancestral spirits welcoming travelers.",
		Tags:        []string{"Aboriginal", "Indian", "Spirits"},
		Likes:       445,
		Views:       2341,
		Location:    "Ashfield Station",
		Medium:      "Projection mapping with cultural algorithms",
		Dimensions:  "10m x 15m ceiling",
	},
	{
		ID:          8,
		Title:       "Ancestral Tides",
		Artist:      "Maria Saltwater-Martinez",
		Project:     "Pacific Highway Upgrade",
		Category:    CategoryInstallation,
		Status:      ArtworkApproved,
		CreatedAt:   mustDate("2024-01-03"),
		Image:       "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400&h=300&fit=crop&crop=center",
		Description: "A kinetic installation inspired by Aboriginal water ceremonies and Pacific Islander navigation traditions, moving with natural rhythms like ancestral memory.",
		Tags:        []string{"Aboriginal", "Pacific", "Water"},
		Likes:       167,
		Views:       891,
		Location:    "Newport Beach",
		Medium:      "Natural materials and traditional weaving",
		Dimensions:  "6m x 4m x 8m",
	},
	{
		ID:          9,
		Title:       "Rainbow Bridges",
		Artist:      "Alex Rainbow-Chen",
		Project:     "Western Sydney Metro",
		Category:    CategoryLGBTQIA,
		Status:      ArtworkFeatured,
		CreatedAt:   mustDate("2024-01-20"),
		Image:       "https://images.unsplash.com/photo-1578301978018-3005759f48f7?w=400&h=300&fit=crop&crop=center",
		Description: "A vibrant rainbow mural celebrating LGBTQIA+ pride and community connection, featuring diverse families and love stories from Western Sydney.",
		Tags:        []string{"LGBTQIA+", "Pride", "Community"},
		Likes:       534,
		Views:       3200,
		Location:    "Blacktown Station",
		Medium:      "Pride flag pigments and UV-resistant paints",
		Dimensions:  "18m x 5m",
	},
	{
		ID:          10,
		Title:       "Street Wisdom",
		Artist:      "DJ Sprayz (Local Graffiti Artist)",
		Project:     "Light Rail Extension",
		Category:    CategoryStreetArt,
		Status:      ArtworkApproved,
		CreatedAt:   mustDate("2024-01-18"),
		Image:       "https://images.unsplash.com/photo-1578836537282-3171d77f8632?w=400&h=300&fit=crop&crop=center",
		Description: "Legal street art transformation by reformed graffiti artist, teaching youth positive expression through vibrant urban storytelling.",
		Tags:        []string{"Street Art", "Youth", "Reformed"},
		Likes:       423,
		Views:       2100,
		Location:    "Ashfield Station",
		Medium:      "Spray paint and stencils on approved walls",
		Dimensions:  "12m x 4m",
	},
	{
		ID:          11,
		Title:       "Kids Paint the Future",
		Artist:      "Little Hands Art Collective",
		Project:     "Pacific Highway Upgrade",
		Category:    CategoryKidsFriendly,
		Status:      ArtworkInProgress,
		CreatedAt:   mustDate("2024-01-22"),
		Image:       "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400&h=300&fit=crop&crop=center",
		Description: "Interactive children's mural painted by local school kids during field trips, featuring handprints and colorful messages of hope.",
		Tags:        []string{"Kids", "Interactive", "School"},
		Likes:       789,
		Views:       4500,
		Location:    "Mona Vale Primary School Wall",
		Medium:      "Kid-safe washable paints and handprints",
		Dimensions:  "10m x 3m",
	},
	{
		ID:          12,
		Title:       "Local Heroes Mosaic",
		Artist:      "Parramatta Community Artists",
		Project:     "Western Sydney Metro",
		Category:    CategoryLocalArtists,
		Status:      ArtworkFeatured,
		CreatedAt:   mustDate("2024-01-16"),
		Image:       "https://plus.unsplash.com/premium_photo-1668116307088-583ee0d4aaf7?w=400&h=300&fit=crop&crop=center",
		Description: "Community-created mosaic celebrating local heroes: teachers, nurses, shop owners, and everyday community champions.",
		Tags:        []string{"Community", "Heroes", "Mosaic"},
		Likes:       645,
		Views:       2890,
		Location:    "Parramatta Community Center",
		Medium:      "Recycled tiles and community contributions",
		Dimensions:  "8m x 6m",
	},
}

var projects = []Project{
	{
		ID:          1,
		Title:       "Western Sydney Metro",
		Location:    "Parramatta to Sydney CBD",
		Status:      ProjectActive,
		Phase:       "Art Collection",
		Artworks:    12,
		Deadline:    mustDate("2024-03-15"),
		Description: "A major infrastructure project connecting Western Sydney to the CBD, providing opportunities for large-scale community art installations that celebrate the diverse cultures of the region.",
		Budget:      "$2.5M",
		Coordinator: "Sarah Williams",
		Image:       "https://images.unsplash.com/photo-1561214115-f2f134cc4912?w=400&h=300&fit=crop&crop=center",
		Tags:        []string{"Transport", "Community", "Large Scale"},
		Progress:    75,
	},
	{
		ID:          2,
		Title:       "Pacific Highway Upgrade",
		Location:    "Northern Beaches",
		Status:      ProjectPlanning,
		Phase:       "Community Engagement",
		Artworks:    0,
		Deadline:    mustDate("2024-04-20"),
		Description: "Highway improvement project focusing on environmental sustainability and coastal heritage representation through artistic installations.",
		Budget:      "$1.8M",
		Coordinator: "Michael Chen",
		Image:       "https://images.unsplash.com/photo-1581850518616-bcb8077a2336?w=400&h=300&fit=crop&crop=center",
		Tags:        []string{"Environment", "Heritage", "Coastal"},
		Progress:    25,
	},
	{
		ID:          3,
		Title:       "Light Rail Extension",
		Location:    "Inner West",
		Status:      ProjectActive,
		Phase:       "Installation",
		Artworks:    8,
		Deadline:    mustDate("2024-02-28"),
		Description: "Extending light rail services with a focus on showcasing local artists and representing the rich cultural tapestry of the Inner West.",
		Budget:      "$3.2M",
		Coordinator: "Emma Torres",
		Image:       "https://images.unsplash.com/photo-1574117323765-150fe3d629ec?w=400&h=300&fit=crop&crop=center",
		Tags:        []string{"Transport", "Local Artists", "Cultural"},
		Progress:    60,
	},
	{
		ID:          4,
		Title:       "Harbour Bridge Maintenance",
		Location:    "Sydney Harbour",
		Status:      ProjectCompleted,
		Phase:       "Showcase",
		Artworks:    15,
		Deadline:    mustDate("2023-12-15"),
		Description: "A prestigious project featuring Indigenous art and maritime themes celebrating Sydney's iconic harbour and its cultural significance.",
		Budget:      "$4.1M",
		Coordinator: "David Kim",
		Image:       "https://images.unsplash.com/photo-1617374995350-c26b53c74903?w=400&h=300&fit=crop&crop=center",
		Tags:        []string{"Heritage", "Indigenous", "Iconic"},
		Progress:    100,
	},
	{
		ID:          5,
		Title:       "Airport Link Expansion",
		Location:    "Mascot to CBD",
		Status:      ProjectActive,
		Phase:       "Art Collection",
		Artworks:    6,
		Deadline:    mustDate("2024-05-10"),
		Description: "International gateway project showcasing multicultural themes and welcoming visitors with diverse artistic expressions.",
		Budget:      "$2.9M",
		Coordinator: "Lisa Anderson",
		Image:       "https://images.unsplash.com/photo-1561214115-f2f134cc4912?w=300&h=200&fit=crop&crop=center",
		Tags:        []string{"International", "Multicultural", "Gateway"},
		Progress:    45,
	},
}

// Artworks returns the community gallery.
func Artworks() []Artwork { return artworks }

// Projects returns the infrastructure projects.
func Projects() []Project { return projects }

// ArtworkByID looks up a gallery artwork.
func ArtworkByID(id int) (Artwork, bool) {
	for _, a := range artworks {
		if a.ID == id {
			return a, true
		}
	}
	return Artwork{}, false
}

// ProjectByID looks up a project.
func ProjectByID(id int) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
