package main

import (
	"net/http"

	"go.uber.org/zap"

	"artaura/internal/browse"
	"artaura/internal/catalog"
	"artaura/internal/session"
	"artaura/internal/stats"
)

// pages maps each navigation target to its handler.
func (s *Server) pages() map[string]sessionHandler {
	return map[string]sessionHandler{
		"dashboard":            s.handleDashboard,
		"projects":             s.handleProjects,
		"gallery":              s.handleGallery,
		"submit-artwork":       s.handleSubmitArtwork,
		"social-impact":        s.handleSocialImpact,
		"profile":              s.handleProfile,
		"my-submissions":       s.handleMySubmissions,
		"my-favorites":         s.handleMyFavorites,
		"artist-network":       s.handleArtistNetwork,
		"my-impact":            s.handleMyImpact,
		"settings":             s.handleSettings,
		"ai-art-analyzer":      s.handleArtAnalyzer,
		"ai-community-matcher": s.handleCommunityMatcher,
	}
}

func criteriaFrom(r *http.Request) browse.Criteria {
	q := r.URL.Query()
	return browse.Criteria{
		Category: q.Get("category"),
		Query:    q.Get("q"),
		Sort:     q.Get("sort"),
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	u, _ := sh.User()
	notes := catalog.Notifications()
	respondJSON(w, http.StatusOK, DashboardPage{
		User:              u,
		Stats:             stats.Dashboard(),
		SocialCohesion:    stats.CohesionDashboard(),
		Learning:          stats.LearningDashboard(),
		RecentSubmissions: catalog.RecentSubmissions(),
		Projects:          catalog.Projects(),
		Notifications:     notes,
		UnreadCount:       browse.UnreadCount(notes),
	})
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	res := browse.Run(browse.Projects, catalog.Projects(), criteriaFrom(r))

	enhanced := make([]stats.EnhancedProject, 0, len(res.Items))
	for _, p := range res.Items {
		enhanced = append(enhanced, stats.EnhanceProject(p))
	}
	respondJSON(w, http.StatusOK, ProjectsPage{
		Result: browse.Result[stats.EnhancedProject]{
			Criteria: res.Criteria,
			Count:    res.Count,
			Items:    enhanced,
		},
		Statuses: []catalog.ProjectStatus{catalog.ProjectActive, catalog.ProjectPlanning, catalog.ProjectCompleted},
	})
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	respondJSON(w, http.StatusOK, GalleryPage{
		Result:       browse.Run(browse.Gallery, catalog.Artworks(), criteriaFrom(r)),
		Stats:        stats.Gallery(),
		SocialImpact: stats.GallerySocialImpact(),
		Employment:   stats.Employment(),
		Categories:   catalog.ArtworkCategories,
	})
}

func (s *Server) handleSubmitArtwork(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	u, _ := sh.User()
	draft, saved, err := s.draftFor(r.Context(), sh)
	if err != nil {
		http.Error(w, "Failed to load draft", http.StatusInternalServerError)
		s.log.Error("failed to load draft", zap.Error(err))
		return
	}

	projects := catalog.Projects()
	workforce := make([]ProjectWorkforce, 0, len(projects))
	for _, p := range projects {
		workforce = append(workforce, ProjectWorkforce{
			ProjectID: p.ID,
			Diversity: stats.WorkforceDiversityFor(p),
			Learning:  stats.ArtLearningOpportunitiesFor(p),
		})
	}

	respondJSON(w, http.StatusOK, SubmitPage{
		User:      u,
		Projects:  projects,
		Draft:     draft,
		HasDraft:  saved,
		Workforce: workforce,
	})
}

// handleSocialImpact personalises the impact from the ABS answers of the
// saved draft, falling back to the default profile.
func (s *Server) handleSocialImpact(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	u, _ := sh.User()
	draft, _, err := sh.LoadDraft(r.Context())
	if err != nil {
		s.log.Warn("ignoring unreadable draft", zap.Error(err))
	}
	profile := stats.DefaultUserProfile(stats.UserProfile{
		AgeGroup:          draft.AgeGroup,
		EducationLevel:    draft.EducationLevel,
		EmploymentStatus:  draft.EmploymentStatus,
		CurrentlyStudying: draft.CurrentlyStudying,
	})

	respondJSON(w, http.StatusOK, SocialImpactPage{
		User:           u,
		Profile:        profile,
		Impact:         stats.UserSocialImpact(profile),
		Challenges:     stats.ChallengesAddressed(),
		ProgramImpact:  stats.ArtProgramImpact(),
		Workforce:      stats.WorkforceDevelopmentImpact(),
		LearningFocus:  stats.ArtLearningIntegration(),
		EngagementRate: stats.FormatStatistic(float64(stats.Dashboard().YouthEngagementRate), stats.Percentage),
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	u, _ := sh.User()
	respondJSON(w, http.StatusOK, ProfilePage{
		User:           u,
		Submissions:    browse.SummarizeSubmissions(catalog.Submissions()),
		Level:          stats.LevelFor(catalog.Impact().Overview.SocialScore),
		RecentActivity: s.recentActivity(r.Context(), clientID(r)),
	})
}

func (s *Server) handleMySubmissions(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	subs := catalog.Submissions()
	respondJSON(w, http.StatusOK, SubmissionsPage{
		Result:   browse.Run(browse.Submissions, subs, criteriaFrom(r)),
		Summary:  browse.SummarizeSubmissions(subs),
		Statuses: catalog.SubmissionStatuses,
	})
}

func (s *Server) handleMyFavorites(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	favs := catalog.Favorites()
	respondJSON(w, http.StatusOK, FavoritesPage{
		Result:  browse.Run(browse.Favorites, favs, criteriaFrom(r)),
		Summary: browse.SummarizeFavorites(favs),
	})
}

func (s *Server) handleArtistNetwork(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	tab := catalog.NetworkTab(r.URL.Query().Get("tab"))
	if tab == "" {
		tab = catalog.TabFollowing
	}
	artists := catalog.Network(tab)
	if artists == nil {
		http.Error(w, "Unknown tab", http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, NetworkPage{
		Result:  browse.Run(browse.Network, artists, criteriaFrom(r)),
		Tab:     tab,
		Summary: browse.SummarizeNetwork(catalog.Following(), catalog.Followers(), catalog.Suggested()),
	})
}

func (s *Server) handleMyImpact(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	timeframe := r.URL.Query().Get("timeframe")
	if timeframe == "" {
		timeframe = "all"
	}
	impact := catalog.Impact()
	respondJSON(w, http.StatusOK, ImpactPage{
		Timeframe: timeframe,
		Impact:    impact,
		Level:     stats.LevelFor(impact.Overview.SocialScore),
		Reach:     stats.CompactNumber(impact.Overview.TotalViews),
	})
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	u, _ := sh.User()
	respondJSON(w, http.StatusOK, defaultSettings(u))
}

func (s *Server) handleArtAnalyzer(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	u, _ := sh.User()
	respondJSON(w, http.StatusOK, AnalyzerPage{User: u, Samples: len(catalog.AnalysisResults())})
}

func (s *Server) handleCommunityMatcher(w http.ResponseWriter, r *http.Request, sh *session.Shell) {
	u, _ := sh.User()
	respondJSON(w, http.StatusOK, MatcherPage{User: u, Interests: catalog.MatchInterests})
}
