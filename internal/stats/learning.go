package stats

import (
	"fmt"

	"artaura/internal/catalog"
)

type WorkRelatedArtTraining struct {
	PotentialParticipants    int `json:"potential_participants"`
	OnlineDeliveryPreference int `json:"online_delivery_preference"`
	SkillDevelopmentFocus    int `json:"skill_development_focus"`
	FemaleEngagement         int `json:"female_engagement"`
}

type PersonalInterestArt struct {
	PotentialParticipants int `json:"potential_participants"`
	EnjoymentMotivation   int `json:"enjoyment_motivation"`
	SkillGainMotivation   int `json:"skill_gain_motivation"`
	FemaleParticipation   int `json:"female_participation"`
}

type BarrierMitigation struct {
	TimeFlexibility    int `json:"time_flexibility"`
	FinancialSupport   int `json:"financial_support"`
	AccessibilityFocus int `json:"accessibility_focus"`
}

type CombinedOpportunity struct {
	TotalPotentialLearners int               `json:"total_potential_learners"`
	OnlineLearningCapacity int               `json:"online_learning_capacity"`
	BarrierMitigation      BarrierMitigation `json:"barrier_mitigation"`
}

// LearningOpportunity is the learning reach of one project.
type LearningOpportunity struct {
	WorkRelated      WorkRelatedArtTraining `json:"work_related_art_training"`
	PersonalInterest PersonalInterestArt    `json:"personal_interest_art"`
	Combined         CombinedOpportunity    `json:"combined_opportunity"`
}

// People reached per artwork by each kind of learning.
const (
	workTraineesPerArtwork     = 50
	personalLearnersPerArtwork = 30
	learnersPerArtwork         = 20
)

// ArtLearningOpportunitiesFor projects learning participation from a project's
// artwork count.
func ArtLearningOpportunitiesFor(p catalog.Project) LearningOpportunity {
	w := Learning.WorkTraining
	pi := Learning.PersonalInterest
	n := float64(p.Artworks)
	return LearningOpportunity{
		WorkRelated: WorkRelatedArtTraining{
			PotentialParticipants:    round(n * (float64(w.ParticipationRate) / 100) * workTraineesPerArtwork),
			OnlineDeliveryPreference: w.Delivery.Online,
			SkillDevelopmentFocus:    w.Motivations.IncreaseJobSkills,
			FemaleEngagement:         w.Demographics.EmployedWomen,
		},
		PersonalInterest: PersonalInterestArt{
			PotentialParticipants: round(n * (float64(pi.ParticipationRate) / 100) * personalLearnersPerArtwork),
			EnjoymentMotivation:   pi.Motivations.EnjoymentInterest,
			SkillGainMotivation:   pi.Motivations.GainNewSkills,
			FemaleParticipation:   pi.Women,
		},
		Combined: CombinedOpportunity{
			TotalPotentialLearners: round(n * learnersPerArtwork),
			OnlineLearningCapacity: w.Delivery.Online,
			BarrierMitigation: BarrierMitigation{
				TimeFlexibility:    defaultTimeFlexibility,
				FinancialSupport:   defaultFinancialSupport,
				AccessibilityFocus: pi.DisadvantagedAreas,
			},
		},
	}
}

type SkillsUpgrade struct {
	HighSkillJobsTarget     int `json:"high_skill_jobs_target"`
	LowSkillJobsOpportunity int `json:"low_skill_jobs_opportunity"`
	EmployeeEngagement      int `json:"employee_engagement"`
	BusinessOwnerEngagement int `json:"business_owner_engagement"`
}

type TrainingDelivery struct {
	OnlineReadiness  int `json:"online_readiness"`
	HybridCapability int `json:"hybrid_capability"`
	FlexibleLearning int `json:"flexible_learning"`
}

type GenderEquity struct {
	FemaleAdvantage        int `json:"female_advantage"`
	LongCourseGap          int `json:"long_course_gap"`
	TargetFemaleEngagement int `json:"target_female_engagement"`
}

type CostEffectiveness struct {
	EmployerFunding   int `json:"employer_funding"`
	LargeBizSupport   int `json:"large_biz_support"`
	SmallBizChallenge int `json:"small_biz_challenge"`
}

type WorkforceDevelopment struct {
	SkillsUpgrade     SkillsUpgrade     `json:"skills_upgrade_potential"`
	TrainingDelivery  TrainingDelivery  `json:"training_delivery"`
	GenderEquity      GenderEquity      `json:"gender_equity"`
	CostEffectiveness CostEffectiveness `json:"cost_effectiveness"`
}

func WorkforceDevelopmentImpact() WorkforceDevelopment {
	w := Learning.WorkTraining
	return WorkforceDevelopment{
		SkillsUpgrade: SkillsUpgrade{
			HighSkillJobsTarget:     w.ByJobType.HighSkillJobs,
			LowSkillJobsOpportunity: w.ByJobType.LowSkillJobs,
			EmployeeEngagement:      w.ByJobType.Employees,
			BusinessOwnerEngagement: w.ByJobType.BusinessOwners,
		},
		TrainingDelivery: TrainingDelivery{
			OnlineReadiness:  w.Delivery.Online,
			HybridCapability: w.Delivery.Classroom + w.Delivery.FieldWork,
			FlexibleLearning: w.TimeCommitment.LessThan10Hours,
		},
		GenderEquity: GenderEquity{
			FemaleAdvantage:        w.Demographics.EmployedWomen - w.Demographics.EmployedMen,
			LongCourseGap:          w.TimeCommitment.MenLongCourses - w.TimeCommitment.WomenLongCourses,
			TargetFemaleEngagement: w.Demographics.EmployedWomen,
		},
		CostEffectiveness: CostEffectiveness{
			EmployerFunding:   100 - w.Costs.PaidForTraining,
			LargeBizSupport:   w.Costs.LargeBizNoCost,
			SmallBizChallenge: 100 - w.Costs.SmallBizNoCost,
		},
	}
}

type Recommendation struct {
	Potential int    `json:"potential"`
	Strategy  string `json:"strategy"`
	Note      string `json:"note"`
}

type Barrier struct {
	Issue    string `json:"issue"`
	Solution string `json:"solution"`
}

type FocusGroup struct {
	Rate     int    `json:"rate"`
	Approach string `json:"approach"`
}

type LearningIntegration struct {
	FormalArtEducation     Recommendation `json:"formal_art_education"`
	InformalArtWorkshops   Recommendation `json:"informal_art_workshops"`
	WorkIntegratedLearning Recommendation `json:"work_integrated_learning"`

	TimeConstraints   Barrier `json:"time_constraints"`
	FinancialBarriers Barrier `json:"financial_barriers"`
	PersonalBarriers  Barrier `json:"personal_barriers"`

	UnemployedEngagement     FocusGroup `json:"unemployed_engagement"`
	DisadvantagedCommunities FocusGroup `json:"disadvantaged_communities"`
	DisadvantagedLearning    int        `json:"disadvantaged_personal_learning"`
}

func ArtLearningIntegration() LearningIntegration {
	l := Learning
	b := l.Barriers
	decline := l.NonFormal.ParticipationRate - l.NonFormal.PreviousRate
	return LearningIntegration{
		FormalArtEducation: Recommendation{
			Potential: l.FormalStudy.ParticipationRate,
			Strategy:  "Partner with TAFE and universities for certified art programs",
			Note:      fmt.Sprintf("Maintain stable %d%% participation in formal art study", l.FormalStudy.ParticipationRate),
		},
		InformalArtWorkshops: Recommendation{
			Potential: l.NonFormal.ParticipationRate,
			Strategy:  "Reverse declining trend through engaging community art workshops",
			Note:      fmt.Sprintf("Address %dpp decline since 2013", -decline),
		},
		WorkIntegratedLearning: Recommendation{
			Potential: l.WorkTraining.ParticipationRate,
			Strategy:  "Integrate art skills with construction and infrastructure training",
			Note:      "Address skills gap while creating beautiful public spaces",
		},
		TimeConstraints: Barrier{
			Issue:    fmt.Sprintf("%d%% women, %d%% men cite time/work barriers", b.TimeWork.Women, b.TimeWork.Men),
			Solution: "Flexible, modular art learning programs that fit work schedules",
		},
		FinancialBarriers: Barrier{
			Issue:    fmt.Sprintf("%d%% women, %d%% men cite financial barriers", b.Financial.Women, b.Financial.Men),
			Solution: "Employer-sponsored art training and free community workshops",
		},
		PersonalBarriers: Barrier{
			Issue:    fmt.Sprintf("%d%% women cite personal barriers vs %d%% men", b.Personal.Women, b.Personal.Men),
			Solution: "Childcare support and family-friendly art learning environments",
		},
		UnemployedEngagement: FocusGroup{
			Rate:     b.Unemployed,
			Approach: fmt.Sprintf("Double the engagement compared to employed (%d%% vs %d%%)", b.Unemployed, b.Employed),
		},
		DisadvantagedCommunities: FocusGroup{
			Rate:     b.MostDisadvantaged,
			Approach: "Targeted outreach and support in most disadvantaged areas",
		},
		DisadvantagedLearning: l.PersonalInterest.DisadvantagedAreas,
	}
}

type LearningDashboardStats struct {
	TotalLearningParticipation int `json:"total_learning_participation"`
	WorkRelatedTraining        int `json:"work_related_training"`
	PersonalInterestLearning   int `json:"personal_interest_learning"`
	OnlineLearningGrowth       int `json:"online_learning_growth"`
	FemaleAdvantageInTraining  int `json:"female_advantage_in_training"`
	SkillDevelopmentMotivation int `json:"skill_development_motivation"`
}

func LearningDashboard() LearningDashboardStats {
	l := Learning
	w := l.WorkTraining
	return LearningDashboardStats{
		TotalLearningParticipation: l.Overall.ParticipationRate,
		WorkRelatedTraining:        w.ParticipationRate,
		PersonalInterestLearning:   l.PersonalInterest.ParticipationRate,
		OnlineLearningGrowth:       w.Delivery.Online - w.Delivery.OnlinePrevious,
		FemaleAdvantageInTraining:  w.Demographics.EmployedWomen - w.Demographics.EmployedMen,
		SkillDevelopmentMotivation: w.Motivations.IncreaseJobSkills,
	}
}
