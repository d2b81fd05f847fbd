package stats

import (
	"strings"

	"artaura/internal/catalog"
)

type MulticulturalBridging struct {
	Potential         int `json:"potential"`
	TargetAudience    int `json:"target_audience"`
	AddressesConcerns int `json:"addresses_concerns"`
}

type CommunityStrengthening struct {
	CurrentEngagement          int `json:"current_engagement"`
	BelongingBoost             int `json:"belonging_boost"`
	LocalConnectionImprovement int `json:"local_connection_improvement"`
}

type EconomicEmpowerment struct {
	AddressesEconomicConcerns int  `json:"addresses_economic_concerns"`
	SkillsDevelopmentImpact   int  `json:"skills_development_impact"`
	EmploymentPathways        bool `json:"employment_pathways"`
}

type InterfaithHarmony struct {
	AddressesNegativeAttitudes int  `json:"addresses_negative_attitudes"`
	SharedCreativeSpace        bool `json:"shared_creative_space"`
	CulturalUnderstanding      int  `json:"cultural_understanding"`
}

type YouthActivism struct {
	ConstructiveActivism int  `json:"constructive_activism"`
	PositiveChanneling   bool `json:"positive_channeling"`
	SkillsDevelopment    bool `json:"skills_development"`
}

type CommunityWellbeing struct {
	AddressesSafetyConcerns int  `json:"addresses_safety_concerns"`
	CommunityConnection     int  `json:"community_connection"`
	CollectiveEmpowerment   bool `json:"collective_empowerment"`
}

// ProgramImpact is how the art program maps onto the cohesion survey.
type ProgramImpact struct {
	MulticulturalBridging  MulticulturalBridging  `json:"multicultural_bridging"`
	CommunityStrengthening CommunityStrengthening `json:"community_strengthening"`
	EconomicEmpowerment    EconomicEmpowerment    `json:"economic_empowerment"`
	InterfaithHarmony      InterfaithHarmony      `json:"interfaith_harmony"`
	YouthEngagement        YouthActivism          `json:"youth_engagement"`
	CommunityWellbeing     CommunityWellbeing     `json:"community_wellbeing"`
}

// multiculturalReach averages the shares that do not see multiculturalism,
// or migrants, as good for Australia.
func multiculturalReach() int {
	m := Scanlon.Multiculturalism
	return round(float64((100-m.GoodForAustralia)+(100-m.MigrantsGoodForEconomy)) / 2)
}

func belongingBoost() int {
	return 100 - Scanlon.Community.LocalBelonging
}

// interfaithTension averages the negative attitudes across faith groups,
// counting a lack of positive attitude as negative.
func interfaithTension() int {
	f := Scanlon.Interfaith
	sum := f.NegativeTowardsMuslims + f.NegativeTowardsJews +
		(100 - f.PositiveTowardsChristians) +
		(100 - f.PositiveTowardsBuddhists) +
		(100 - f.PositiveTowardsHindusSikhs)
	return round(float64(sum) / 5)
}

func safetyConcern() int {
	s := Scanlon.Safety
	return round(float64(s.WomenWorriedAboutCrime+s.MenWorriedAboutCrime) / 2)
}

func ArtProgramImpact() ProgramImpact {
	d := Scanlon
	return ProgramImpact{
		MulticulturalBridging: MulticulturalBridging{
			Potential:         multiculturalReach(),
			TargetAudience:    d.Multiculturalism.EnjoyMeetingDifferentCultures,
			AddressesConcerns: 100 - d.Multiculturalism.DisagreeEthnicRejection,
		},
		CommunityStrengthening: CommunityStrengthening{
			CurrentEngagement:          d.Community.InvolvedInGroups,
			BelongingBoost:             belongingBoost(),
			LocalConnectionImprovement: d.Community.LocalAreaHelp,
		},
		EconomicEmpowerment: EconomicEmpowerment{
			AddressesEconomicConcerns: d.Economic.PoorOrJustGettingBy,
			SkillsDevelopmentImpact:   d.Economic.PoorOrJustGettingBy,
			EmploymentPathways:        true,
		},
		InterfaithHarmony: InterfaithHarmony{
			AddressesNegativeAttitudes: interfaithTension(),
			SharedCreativeSpace:        true,
			CulturalUnderstanding:      d.Multiculturalism.EnjoyMeetingDifferentCultures,
		},
		YouthEngagement: YouthActivism{
			ConstructiveActivism: d.Political.Young18to34Activism,
			PositiveChanneling:   true,
			SkillsDevelopment:    true,
		},
		CommunityWellbeing: CommunityWellbeing{
			AddressesSafetyConcerns: safetyConcern(),
			CommunityConnection:     d.Community.LocalBelonging,
			CollectiveEmpowerment:   true,
		},
	}
}

type CohesionDashboardStats struct {
	MulticulturalEngagement      int `json:"multicultural_engagement"`
	CommunityConnection          int `json:"community_connection"`
	YouthActivismChanneling      int `json:"youth_activism_channeling"`
	EconomicEmpowermentPotential int `json:"economic_empowerment_potential"`
	CrossCulturalFriendships     int `json:"cross_cultural_friendships"`
	CommunityHelpingBehavior     int `json:"community_helping_behavior"`
	BelongingImprovement         int `json:"belonging_improvement"`
	InterfaithHarmonyPotential   int `json:"interfaith_harmony_potential"`
}

func CohesionDashboard() CohesionDashboardStats {
	impact := ArtProgramImpact()
	d := Scanlon
	return CohesionDashboardStats{
		MulticulturalEngagement:      d.Multiculturalism.GoodForAustralia,
		CommunityConnection:          d.Community.LocalBelonging,
		YouthActivismChanneling:      d.Political.Young18to34Activism,
		EconomicEmpowermentPotential: impact.EconomicEmpowerment.AddressesEconomicConcerns,
		CrossCulturalFriendships:     d.Multiculturalism.CloseFriendsFromDifferentBackground,
		CommunityHelpingBehavior:     d.Community.LocalAreaHelp,
		BelongingImprovement:         impact.CommunityStrengthening.BelongingBoost,
		InterfaithHarmonyPotential:   impact.InterfaithHarmony.AddressesNegativeAttitudes,
	}
}

// diverseAreaMultiplier boosts multicultural reach for projects in diverse areas.
const diverseAreaMultiplier = 1.2

type ProjectSocialImpact struct {
	MulticulturalReach            int `json:"multicultural_reach"`
	CommunityBelongingBoost       int `json:"community_belonging_boost"`
	YouthEngagementPotential      int `json:"youth_engagement_potential"`
	EconomicSkillsImpact          int `json:"economic_skills_impact"`
	InterfaithHarmonyContribution int `json:"interfaith_harmony_contribution"`
	SafetyAndWellbeing            int `json:"safety_and_wellbeing_improvement"`
	LocalConnectionStrengthening  int `json:"local_connection_strengthening"`
}

func ProjectSocialImpactFor(p catalog.Project) ProjectSocialImpact {
	impact := ArtProgramImpact()
	d := Scanlon
	mult := 1.0
	if strings.Contains(p.Location, "Western Sydney") || strings.Contains(p.Location, "Multicultural") {
		mult = diverseAreaMultiplier
	}
	return ProjectSocialImpact{
		MulticulturalReach:            round(float64(d.Multiculturalism.EnjoyMeetingDifferentCultures) * mult),
		CommunityBelongingBoost:       impact.CommunityStrengthening.BelongingBoost,
		YouthEngagementPotential:      d.Political.Young18to34Activism,
		EconomicSkillsImpact:          impact.EconomicEmpowerment.AddressesEconomicConcerns,
		InterfaithHarmonyContribution: impact.InterfaithHarmony.AddressesNegativeAttitudes,
		SafetyAndWellbeing:            impact.CommunityWellbeing.AddressesSafetyConcerns,
		LocalConnectionStrengthening:  d.Community.LocalAreaHelp,
	}
}

type GallerySocialImpactStats struct {
	CulturalBridgeBuilding      int `json:"cultural_bridge_building"`
	CommunityPrideBoost         int `json:"community_pride_boost"`
	DiversityAppreciation       int `json:"diversity_appreciation"`
	YouthPositiveEngagement     int `json:"youth_positive_engagement"`
	EconomicOpportunityCreation int `json:"economic_opportunity_creation"`
	SocialCohesionStrengthening int `json:"social_cohesion_strengthening"`
	BelongingEnhancement        int `json:"belonging_enhancement"`
	InterfaithUnderstanding     int `json:"interfaith_understanding"`
}

func GallerySocialImpact() GallerySocialImpactStats {
	impact := ArtProgramImpact()
	d := Scanlon
	return GallerySocialImpactStats{
		CulturalBridgeBuilding:      d.Multiculturalism.EnjoyMeetingDifferentCultures,
		CommunityPrideBoost:         d.Community.LocalBelonging,
		DiversityAppreciation:       d.Multiculturalism.GoodForAustralia,
		YouthPositiveEngagement:     d.Political.Young18to34Activism,
		EconomicOpportunityCreation: impact.EconomicEmpowerment.AddressesEconomicConcerns,
		SocialCohesionStrengthening: d.Community.LocalAreaHelp,
		BelongingEnhancement:        impact.CommunityStrengthening.BelongingBoost,
		InterfaithUnderstanding:     impact.InterfaithHarmony.AddressesNegativeAttitudes,
	}
}

// UserProfile is the demographic part of an artist profile.
type UserProfile struct {
	AgeGroup          string `json:"age_group" yaml:"age_group"`
	EducationLevel    string `json:"education_level" yaml:"education_level"`
	EmploymentStatus  string `json:"employment_status" yaml:"employment_status"`
	CurrentlyStudying bool   `json:"currently_studying" yaml:"currently_studying"`
}

// DefaultUserProfile fills the gaps of a profile that was never completed.
func DefaultUserProfile(p UserProfile) UserProfile {
	if p.AgeGroup == "" {
		p.AgeGroup = "25-34"
	}
	if p.EducationLevel == "" {
		p.EducationLevel = "bachelor"
	}
	if p.EmploymentStatus == "" {
		p.EmploymentStatus = "employed-ft"
	}
	return p
}

type CommunityContribution struct {
	MulticulturalBridging int `json:"multicultural_bridging"`
	LocalBelonging        int `json:"local_belonging"`
	EconomicContribution  int `json:"economic_contribution"`
}

type UserSocialImpactStats struct {
	PersonalImpactScore   int                   `json:"personal_impact_score"`
	ImpactAreas           []string              `json:"impact_areas"`
	CommunityContribution CommunityContribution `json:"community_contribution"`
}

// Score contributions for UserSocialImpact.
const (
	skillsDevelopmentBonus   = 20
	economicEmpowermentBonus = 25
	educationalPathwayBonus  = 15
	maxPersonalImpact        = 100
)

// UserSocialImpact scores an artist's personal contribution to cohesion.
// The score is capped at 100.
func UserSocialImpact(p UserProfile) UserSocialImpactStats {
	d := Scanlon
	score := 0
	areas := []string{}

	if p.AgeGroup == "15-24" || p.AgeGroup == "25-34" {
		score += d.Political.Young18to34Activism
		areas = append(areas, "Youth Engagement")
	}
	if p.EducationLevel != "" && p.EducationLevel != "year-12" {
		score += skillsDevelopmentBonus
		areas = append(areas, "Skills Development")
	}
	if p.EmploymentStatus == "unemployed" || p.EmploymentStatus == "student" {
		score += economicEmpowermentBonus
		areas = append(areas, "Economic Empowerment")
	}
	if p.CurrentlyStudying {
		score += educationalPathwayBonus
		areas = append(areas, "Educational Pathway")
	}

	return UserSocialImpactStats{
		PersonalImpactScore: min(score, maxPersonalImpact),
		ImpactAreas:         areas,
		CommunityContribution: CommunityContribution{
			MulticulturalBridging: d.Multiculturalism.GoodForAustralia,
			LocalBelonging:        d.Community.LocalBelonging,
			EconomicContribution:  d.Multiculturalism.MigrantsGoodForEconomy,
		},
	}
}

type Challenge struct {
	Percentage int    `json:"percentage"`
	Solution   string `json:"solution"`
}

type Challenges struct {
	ImmigrationConcerns Challenge `json:"immigration_concerns"`
	EconomicPressures   Challenge `json:"economic_pressures"`
	InterfaithTensions  Challenge `json:"interfaith_tensions"`
	CommunitySafety     Challenge `json:"community_safety"`
	YouthDisengagement  Challenge `json:"youth_disengagement"`
}

func ChallengesAddressed() Challenges {
	d := Scanlon
	return Challenges{
		ImmigrationConcerns: Challenge{
			Percentage: d.Multiculturalism.ImmigrationTooHigh,
			Solution:   "Showcase positive migrant contributions through collaborative art",
		},
		EconomicPressures: Challenge{
			Percentage: d.Economic.PoorOrJustGettingBy,
			Solution:   "Provide skills development and employment pathways",
		},
		InterfaithTensions: Challenge{
			Percentage: d.Interfaith.NegativeTowardsMuslims,
			Solution:   "Foster interfaith understanding through shared creative projects",
		},
		CommunitySafety: Challenge{
			Percentage: round(float64(d.Safety.WomenUnsafeAtNight+d.Safety.MenUnsafeAtNight) / 2),
			Solution:   "Build stronger community connections and collective empowerment",
		},
		YouthDisengagement: Challenge{
			Percentage: 100 - d.Political.Young18to34Activism,
			Solution:   "Channel youth energy into constructive creative activism",
		},
	}
}
