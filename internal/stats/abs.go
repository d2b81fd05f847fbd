package stats

import (
	"regexp"
	"strconv"
	"strings"

	"artaura/internal/catalog"
)

type YouthEngagement struct {
	EngagementRate        int `json:"engagement_rate"`
	PotentialParticipants int `json:"potential_participants"`
	StudyingPercentage    int `json:"studying_percentage"`
}

// YouthEngagementFor picks the youth engagement rate for a project location.
// Region names are matched case-sensitively anywhere in the location; the
// national rate applies when none match.
func YouthEngagementFor(location string) YouthEngagement {
	rate := ABS.Youth.TotalEngagement
	switch {
	case strings.Contains(location, "ACT") || strings.Contains(location, "Canberra"):
		rate = ABS.Regions["act"].YouthEngagement
	case strings.Contains(location, "QLD") || strings.Contains(location, "Queensland"):
		rate = ABS.Regions["qld"].YouthEngagement
	}
	return YouthEngagement{
		EngagementRate:        rate,
		PotentialParticipants: round(float64(rate) / 100 * 200),
		StudyingPercentage:    ABS.Youth.CurrentlyStudying,
	}
}

type SkilledArtists struct {
	AvailableArtists    int `json:"available_artists"`
	EmploymentRate      int `json:"employment_rate"`
	QualifiedPercentage int `json:"qualified_percentage"`
}

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// ParseBudget keeps only digits and dots ("$2.5M" is 2.5). Unparseable
// budgets count as zero.
func ParseBudget(budget string) float64 {
	v, err := strconv.ParseFloat(nonNumeric.ReplaceAllString(budget, ""), 64)
	if err != nil {
		return 0
	}
	return v
}

// SkilledArtistsFor estimates the skilled artist pool a budget can engage.
func SkilledArtistsFor(budget string) SkilledArtists {
	b := ParseBudget(budget)
	return SkilledArtists{
		AvailableArtists:    round((b / 0.1) * (float64(ABS.Employment.SkillLevel1Occupation) / 100)),
		EmploymentRate:      ABS.Employment.WithQualificationEmployed,
		QualifiedPercentage: ABS.Qualifications.NonSchoolQualification,
	}
}

type ApprenticeOpportunities struct {
	EstimatedOpportunities    int `json:"estimated_opportunities"`
	YouthApprenticePercentage int `json:"youth_apprentice_percentage"`
	NewStarterRate            int `json:"new_starter_rate"`
	DiversityPotential        int `json:"diversity_potential"`
}

// ApprenticeOpportunitiesFor accumulates apprentice places from project tags.
// Construction-type tags and technology tags each contribute once; the
// estimate never drops below one.
func ApprenticeOpportunitiesFor(tags []string) ApprenticeOpportunities {
	a := ABS.Apprentices
	has := func(want ...string) bool {
		for _, w := range want {
			for _, t := range tags {
				if t == w {
					return true
				}
			}
		}
		return false
	}

	n := 0
	if has("Transport", "Infrastructure") {
		n = round(float64(a.ConstructionField) * 0.1)
	}
	if has("Technology", "Digital") {
		n += round(float64(a.ElectroTechField) * 0.05)
	}
	return ApprenticeOpportunities{
		EstimatedOpportunities:    max(n, 1),
		YouthApprenticePercentage: a.Aged15to19 + a.Aged20to24,
		NewStarterRate:            a.NewStarters,
		DiversityPotential:        100 - a.MalePercentage,
	}
}

type EducationPartnerships struct {
	TAFEPartnershipPotential       int `json:"tafe_partnership_potential"`
	UniversityPartnershipPotential int `json:"university_partnership_potential"`
	CurrentStudentPool             int `json:"current_student_pool"`
	EstimatedPartnerships          int `json:"estimated_partnerships"`
}

// EducationPartnershipsFor does not depend on the location yet; every region
// shares the national enrolment figures.
func EducationPartnershipsFor(string) EducationPartnerships {
	q := ABS.Qualifications
	return EducationPartnerships{
		TAFEPartnershipPotential:       q.TAFEEnrolment,
		UniversityPartnershipPotential: q.HigherEducation,
		CurrentStudentPool:             q.CurrentlyStudying,
		EstimatedPartnerships:          round(float64(q.TAFEEnrolment+q.HigherEducation) * 0.1),
	}
}

type EmploymentOutcomes struct {
	ProjectedEmployment    int `json:"projected_employment"`
	EmploymentRate         int `json:"employment_rate"`
	SkillDevelopmentImpact int `json:"skill_development_impact"`
	CommunityBenefit       int `json:"community_benefit"`
}

// EmploymentOutcomesFor assumes two artists and one and a half engaged
// community members per artwork.
func EmploymentOutcomesFor(artworks int) EmploymentOutcomes {
	e := ABS.Employment
	return EmploymentOutcomes{
		ProjectedEmployment:    round(float64(artworks) * (float64(e.RecentGraduateEmployment) / 100) * 2),
		EmploymentRate:         e.WithQualificationEmployed,
		SkillDevelopmentImpact: e.RecentGraduateEmployment,
		CommunityBenefit:       round(float64(artworks) * 1.5),
	}
}

type ProjectInsights struct {
	YouthEngagement       YouthEngagement         `json:"youth_engagement_potential"`
	SkilledArtists        SkilledArtists          `json:"skilled_artist_pool"`
	Apprentices           ApprenticeOpportunities `json:"apprentice_opportunities"`
	EducationPartnerships EducationPartnerships   `json:"education_partnership_potential"`
	EmploymentOutcomes    EmploymentOutcomes      `json:"employment_outcomes"`
}

// ProjectInsightsFor runs every ABS project transform.
func ProjectInsightsFor(p catalog.Project) ProjectInsights {
	return ProjectInsights{
		YouthEngagement:       YouthEngagementFor(p.Location),
		SkilledArtists:        SkilledArtistsFor(p.Budget),
		Apprentices:           ApprenticeOpportunitiesFor(p.Tags),
		EducationPartnerships: EducationPartnershipsFor(p.Location),
		EmploymentOutcomes:    EmploymentOutcomesFor(p.Artworks),
	}
}

type CommunityImpact struct {
	YouthEngagement      YouthEngagement       `json:"youth_engagement"`
	SkillDevelopment     EmploymentOutcomes    `json:"skill_development"`
	EducationIntegration EducationPartnerships `json:"education_integration"`
}

// EnhancedProject is a project as the projects view shows it.
type EnhancedProject struct {
	catalog.Project
	Insights        ProjectInsights     `json:"abs_insights"`
	CommunityImpact CommunityImpact     `json:"community_impact"`
	SocialCohesion  ProjectSocialImpact `json:"social_cohesion_impact"`
	Workforce       WorkforceDiversity  `json:"workforce_diversity"`
	Learning        LearningOpportunity `json:"learning_opportunities"`
}

// EnhanceProject attaches every project-level transform to p.
func EnhanceProject(p catalog.Project) EnhancedProject {
	in := ProjectInsightsFor(p)
	return EnhancedProject{
		Project:  p,
		Insights: in,
		CommunityImpact: CommunityImpact{
			YouthEngagement:      in.YouthEngagement,
			SkillDevelopment:     in.EmploymentOutcomes,
			EducationIntegration: in.EducationPartnerships,
		},
		SocialCohesion: ProjectSocialImpactFor(p),
		Workforce:      WorkforceDiversityFor(p),
		Learning:       ArtLearningOpportunitiesFor(p),
	}
}

type DashboardStats struct {
	YouthEngagementRate   int `json:"youth_engagement_rate"`
	EmploymentSuccessRate int `json:"employment_success_rate"`
	QualificationBenefit  int `json:"qualification_benefit"`
	ApprenticeIntegration int `json:"apprentice_integration"`
	EducationPartnership  int `json:"education_partnership"`
	SkillLevel1Artists    int `json:"skill_level1_artists"`
}

func Dashboard() DashboardStats {
	return DashboardStats{
		YouthEngagementRate:   ABS.Youth.TotalEngagement,
		EmploymentSuccessRate: ABS.Employment.RecentGraduateEmployment,
		QualificationBenefit:  ABS.Employment.WithQualificationEmployed - ABS.Employment.WithoutQualificationEmployed,
		ApprenticeIntegration: ABS.Apprentices.ConstructionField,
		EducationPartnership:  ABS.Qualifications.TAFEEnrolment + ABS.Qualifications.HigherEducation,
		SkillLevel1Artists:    ABS.Employment.SkillLevel1Occupation,
	}
}

type GalleryStats struct {
	CommunityReach     int `json:"community_reach"`
	DiversityIndex     int `json:"diversity_index"`
	EducationImpact    int `json:"education_impact"`
	SkillDevelopment   int `json:"skill_development"`
	YouthParticipation int `json:"youth_participation"`
}

func Gallery() GalleryStats {
	return GalleryStats{
		CommunityReach:     ABS.Qualifications.CurrentlyStudying,
		DiversityIndex:     100 - ABS.Apprentices.MalePercentage,
		EducationImpact:    ABS.Youth.CurrentlyStudying,
		SkillDevelopment:   ABS.Employment.SkillLevel1Occupation,
		YouthParticipation: ABS.Youth.TotalEngagement,
	}
}

type DiversityTargets struct {
	FemaleParticipation  float64 `json:"female_participation"`
	DisabilityInclusion  float64 `json:"disability_inclusion"`
	IndigenousEngagement float64 `json:"indigenous_engagement"`
}

type EmploymentOpportunities struct {
	TotalEmploymentRate      float64          `json:"total_employment_rate"`
	FemaleEmploymentGrowth   float64          `json:"female_employment_growth"`
	GenderPayGap             float64          `json:"gender_pay_gap"`
	DisabilityEmploymentGap  float64          `json:"disability_employment_gap"`
	IndigenousEmploymentRate float64          `json:"indigenous_employment_rate"`
	ParticipationRate        float64          `json:"participation_rate"`
	DiversityTargets         DiversityTargets `json:"diversity_targets"`
}

func Employment() EmploymentOpportunities {
	return EmploymentOpportunities{
		TotalEmploymentRate:      ABS.EmploymentRate.Current.Total,
		FemaleEmploymentGrowth:   ABS.EmploymentRate.TwentyYearChange.Female,
		GenderPayGap:             ABS.GenderPayGap.Current,
		DisabilityEmploymentGap:  ABS.WithoutDisability.EmploymentRate - ABS.WithDisability.EmploymentRate,
		IndigenousEmploymentRate: ABS.Indigenous.EmploymentRate,
		ParticipationRate:        ABS.ParticipationRate.Current.Total,
		DiversityTargets: DiversityTargets{
			FemaleParticipation:  ABS.ParticipationRate.Current.Female,
			DisabilityInclusion:  ABS.WithDisability.EmploymentRate,
			IndigenousEngagement: ABS.Indigenous.EmploymentRate,
		},
	}
}

type WorkforceDiversity struct {
	FemaleArtistTargets              int     `json:"female_artist_targets"`
	DisabilityInclusionOpportunities int     `json:"disability_inclusion_opportunities"`
	IndigenousArtistSlots            int     `json:"indigenous_artist_slots"`
	PayEquityCommitment              float64 `json:"pay_equity_commitment"`
	TotalDiversityScore              int     `json:"total_diversity_score"`
}

// WorkforceDiversityFor scales the diversity targets to a project's artworks.
func WorkforceDiversityFor(p catalog.Project) WorkforceDiversity {
	e := Employment()
	t := e.DiversityTargets
	n := float64(p.Artworks)
	return WorkforceDiversity{
		FemaleArtistTargets:              round(t.FemaleParticipation / 100 * n),
		DisabilityInclusionOpportunities: round(t.DisabilityInclusion / 100 * n),
		IndigenousArtistSlots:            round(t.IndigenousEngagement / 100 * n),
		PayEquityCommitment:              100 - e.GenderPayGap,
		TotalDiversityScore:              round((t.FemaleParticipation + t.DisabilityInclusion + t.IndigenousEngagement) / 3),
	}
}
