package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artaura/internal/catalog"
)

func project(t *testing.T, id int) catalog.Project {
	t.Helper()
	p, ok := catalog.ProjectByID(id)
	require.True(t, ok, "project %d", id)
	return p
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3, round(2.5))
	assert.Equal(t, 2, round(2.49))
	assert.Equal(t, -2, round(-2.5))
	assert.Equal(t, 0, round(0))
}

func TestYouthEngagementFor(t *testing.T) {
	tests := []struct {
		location string
		rate     int
		people   int
	}{
		{"Northern Territory Cultural Trail", 81, 162},
		{"Civic, ACT", 88, 176},
		{"Canberra Light Rail", 88, 176},
		{"Gold Coast, QLD", 76, 152},
		{"Queensland Rail Hub", 76, 152},
		{"Parramatta to Sydney CBD", 81, 162},
		// region names are case sensitive
		{"act of kindness", 81, 162},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			got := YouthEngagementFor(tt.location)
			assert.Equal(t, tt.rate, got.EngagementRate)
			assert.Equal(t, tt.people, got.PotentialParticipants)
			assert.Equal(t, 62, got.StudyingPercentage)
		})
	}
}

func TestSkilledArtistsFor(t *testing.T) {
	assert.Equal(t, 2.5, ParseBudget("$2.5M"))
	assert.Equal(t, 0.0, ParseBudget("TBC"))

	tests := map[string]int{
		"$2.5M": 11,
		"$1.8M": 8,
		"$3.2M": 14,
		"$4.1M": 18,
		"$2.9M": 13,
		"":      0,
	}
	for budget, want := range tests {
		got := SkilledArtistsFor(budget)
		assert.Equal(t, want, got.AvailableArtists, budget)
		assert.Equal(t, 79, got.EmploymentRate)
		assert.Equal(t, 63, got.QualifiedPercentage)
	}
}

func TestApprenticeOpportunitiesFor(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want int
	}{
		{"construction", []string{"Transport", "Community"}, 3},
		{"infrastructure", []string{"Infrastructure"}, 3},
		{"construction and digital", []string{"Transport", "Digital"}, 4},
		{"digital only", []string{"Technology"}, 1},
		{"no triggers", []string{"Heritage", "Coastal"}, 1},
		{"no tags", nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApprenticeOpportunitiesFor(tt.tags)
			assert.Equal(t, tt.want, got.EstimatedOpportunities)
			assert.Equal(t, 71, got.YouthApprenticePercentage)
			assert.Equal(t, 40, got.NewStarterRate)
			assert.Equal(t, 25, got.DiversityPotential)
		})
	}
}

func TestProjectInsights(t *testing.T) {
	in := ProjectInsightsFor(project(t, 1))
	assert.Equal(t, 81, in.YouthEngagement.EngagementRate)
	assert.Equal(t, 11, in.SkilledArtists.AvailableArtists)
	assert.Equal(t, 3, in.Apprentices.EstimatedOpportunities)
	assert.Equal(t, EducationPartnerships{
		TAFEPartnershipPotential:       16,
		UniversityPartnershipPotential: 42,
		CurrentStudentPool:             16,
		EstimatedPartnerships:          6,
	}, in.EducationPartnerships)
	assert.Equal(t, EmploymentOutcomes{
		ProjectedEmployment:    20,
		EmploymentRate:         79,
		SkillDevelopmentImpact: 84,
		CommunityBenefit:       18,
	}, in.EmploymentOutcomes)
}

func TestEnhanceProjectIsDeterministic(t *testing.T) {
	for _, p := range catalog.Projects() {
		first, second := EnhanceProject(p), EnhanceProject(p)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("project %d differs between runs:\n%s", p.ID, diff)
		}
		assert.Equal(t, p.Title, first.Title)
		assert.Equal(t, first.Insights.YouthEngagement, first.CommunityImpact.YouthEngagement)
	}
}

func TestGlobalABSStats(t *testing.T) {
	assert.Equal(t, DashboardStats{
		YouthEngagementRate:   81,
		EmploymentSuccessRate: 84,
		QualificationBenefit:  21,
		ApprenticeIntegration: 26,
		EducationPartnership:  58,
		SkillLevel1Artists:    45,
	}, Dashboard())

	assert.Equal(t, GalleryStats{
		CommunityReach:     16,
		DiversityIndex:     25,
		EducationImpact:    62,
		SkillDevelopment:   45,
		YouthParticipation: 81,
	}, Gallery())

	e := Employment()
	assert.Equal(t, 77.1, e.TotalEmploymentRate)
	assert.Equal(t, 11.4, e.FemaleEmploymentGrowth)
	assert.InDelta(t, 26.2, e.DisabilityEmploymentGap, 1e-9)
	assert.Equal(t, 77.3, e.DiversityTargets.FemaleParticipation)
}

func TestWorkforceDiversityFor(t *testing.T) {
	got := WorkforceDiversityFor(project(t, 1))
	assert.Equal(t, WorkforceDiversity{
		FemaleArtistTargets:              9,
		DisabilityInclusionOpportunities: 7,
		IndigenousArtistSlots:            7,
		PayEquityCommitment:              88.5,
		TotalDiversityScore:              63,
	}, got)
}

func TestArtProgramImpact(t *testing.T) {
	got := ArtProgramImpact()
	assert.Equal(t, 17, got.MulticulturalBridging.Potential)
	assert.Equal(t, 17, got.MulticulturalBridging.AddressesConcerns)
	assert.Equal(t, 19, got.CommunityStrengthening.BelongingBoost)
	assert.Equal(t, 48, got.InterfaithHarmony.AddressesNegativeAttitudes)
	assert.Equal(t, 31, got.CommunityWellbeing.AddressesSafetyConcerns)
	assert.Equal(t, 41, got.EconomicEmpowerment.SkillsDevelopmentImpact)

	dash := CohesionDashboard()
	assert.Equal(t, CohesionDashboardStats{
		MulticulturalEngagement:      85,
		CommunityConnection:          81,
		YouthActivismChanneling:      42,
		EconomicEmpowermentPotential: 41,
		CrossCulturalFriendships:     80,
		CommunityHelpingBehavior:     82,
		BelongingImprovement:         19,
		InterfaithHarmonyPotential:   48,
	}, dash)

	gal := GallerySocialImpact()
	assert.Equal(t, 90, gal.CulturalBridgeBuilding)
	assert.Equal(t, 48, gal.InterfaithUnderstanding)
}

func TestProjectSocialImpactMultiplier(t *testing.T) {
	plain := ProjectSocialImpactFor(project(t, 1))
	assert.Equal(t, 90, plain.MulticulturalReach)

	diverse := ProjectSocialImpactFor(catalog.Project{Location: "Western Sydney Interchange"})
	assert.Equal(t, 108, diverse.MulticulturalReach)
	assert.Equal(t, plain.SafetyAndWellbeing, diverse.SafetyAndWellbeing)

	multi := ProjectSocialImpactFor(catalog.Project{Location: "Multicultural Precinct"})
	assert.Equal(t, 108, multi.MulticulturalReach)
}

func TestUserSocialImpact(t *testing.T) {
	def := UserSocialImpact(DefaultUserProfile(UserProfile{}))
	assert.Equal(t, 62, def.PersonalImpactScore)
	assert.Equal(t, []string{"Youth Engagement", "Skills Development"}, def.ImpactAreas)
	assert.Equal(t, CommunityContribution{85, 81, 82}, def.CommunityContribution)

	capped := UserSocialImpact(UserProfile{
		AgeGroup:          "15-24",
		EducationLevel:    "masters",
		EmploymentStatus:  "unemployed",
		CurrentlyStudying: true,
	})
	assert.Equal(t, 100, capped.PersonalImpactScore)
	assert.Len(t, capped.ImpactAreas, 4)

	none := UserSocialImpact(UserProfile{AgeGroup: "55-64", EducationLevel: "year-12"})
	assert.Zero(t, none.PersonalImpactScore)
	assert.NotNil(t, none.ImpactAreas)
}

func TestChallengesAddressed(t *testing.T) {
	c := ChallengesAddressed()
	assert.Equal(t, 49, c.ImmigrationConcerns.Percentage)
	assert.Equal(t, 41, c.EconomicPressures.Percentage)
	assert.Equal(t, 34, c.InterfaithTensions.Percentage)
	assert.Equal(t, 40, c.CommunitySafety.Percentage)
	assert.Equal(t, 58, c.YouthDisengagement.Percentage)
}

func TestLearningTransforms(t *testing.T) {
	lo := ArtLearningOpportunitiesFor(project(t, 1))
	assert.Equal(t, 138, lo.WorkRelated.PotentialParticipants)
	assert.Equal(t, 22, lo.PersonalInterest.PotentialParticipants)
	assert.Equal(t, 240, lo.Combined.TotalPotentialLearners)
	assert.Equal(t, BarrierMitigation{TimeFlexibility: 66, FinancialSupport: 65, AccessibilityFocus: 5}, lo.Combined.BarrierMitigation)

	wd := WorkforceDevelopmentImpact()
	assert.Equal(t, 46, wd.TrainingDelivery.HybridCapability)
	assert.Equal(t, 5, wd.GenderEquity.FemaleAdvantage)
	assert.Equal(t, 8, wd.GenderEquity.LongCourseGap)
	assert.Equal(t, 86, wd.CostEffectiveness.EmployerFunding)
	assert.Equal(t, 33, wd.CostEffectiveness.SmallBizChallenge)

	li := ArtLearningIntegration()
	assert.Equal(t, "Address 5pp decline since 2013", li.InformalArtWorkshops.Note)
	assert.Equal(t, "34% women, 40% men cite time/work barriers", li.TimeConstraints.Issue)
	assert.Equal(t, "18% women cite personal barriers vs 6% men", li.PersonalBarriers.Issue)

	assert.Equal(t, LearningDashboardStats{
		TotalLearningParticipation: 42,
		WorkRelatedTraining:        23,
		PersonalInterestLearning:   6,
		OnlineLearningGrowth:       36,
		FemaleAdvantageInTraining:  5,
		SkillDevelopmentMotivation: 91,
	}, LearningDashboard())
}

func TestFormatStatistic(t *testing.T) {
	tests := []struct {
		v    float64
		kind Kind
		want string
	}{
		{81, Percentage, "81%"},
		{26.5, Percentage, "26.5%"},
		{1234567, Number, "1,234,567"},
		{2500000, Currency, "$2,500,000"},
		{87, Score, "87/100"},
		{7_800_000, Participants, "7.8M"},
		{924_000, Thousands, "924K"},
		{5, Difference, "+5pp"},
		{-5, Difference, "-5pp"},
		{0, Difference, "0pp"},
		{15847, "unknown", "15,847"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatStatistic(tt.v, tt.kind), "%v as %s", tt.v, tt.kind)
	}
}

func TestCompactNumber(t *testing.T) {
	assert.Equal(t, "999", CompactNumber(999))
	assert.Equal(t, "15.8K", CompactNumber(15847))
	assert.Equal(t, "2.5M", CompactNumber(2_500_000))
}

func TestLevelFor(t *testing.T) {
	tests := map[int]string{
		100: "Exceptional",
		90:  "Exceptional",
		87:  "High Impact",
		70:  "Growing Influence",
		60:  "Emerging Artist",
		59:  "Getting Started",
		0:   "Getting Started",
	}
	for score, want := range tests {
		assert.Equal(t, want, LevelFor(score).Level, "score %d", score)
	}
}
