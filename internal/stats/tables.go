// Package stats derives the dashboard statistics from fixed survey tables.
//
// Three reference tables are compiled in: ABS Education and Work (May 2024)
// with Broadening Access to Work (July 2024), the Scanlon Institute Mapping
// Social Cohesion 2024 report, and ABS Work-Related Training and Adult
// Learning 2020-21. Every transform reads from these tables only, so the
// same input always yields the same output.
package stats

import "math"

// round is half-up rounding on the float value, so round(-2.5) == -2.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

type youthTable struct {
	TotalEngagement      int
	FullTimeStudyPrimary int
	FullTimeWorkPrimary  int
	NotEngaged           int
	PartiallyEngaged     int
	CurrentlyStudying    int
}

type qualificationTable struct {
	NonSchoolQualification int
	BachelorOrAbove        int
	CurrentlyStudying      int
	TAFEEnrolment          int
	HigherEducation        int
}

type employmentTable struct {
	WithQualificationEmployed    int
	WithoutQualificationEmployed int
	RecentGraduateEmployment     int
	SkillLevel1Occupation        int
	SkillLevel4Occupation        int
}

type apprenticeTable struct {
	Aged15to19        int
	Aged20to24        int
	MalePercentage    int
	NewStarters       int
	OverseasBorn      int
	InCapitalCities   int
	ConstructionField int
	ElectroTechField  int
}

type regionTable struct {
	StudyEnrolment  int
	YouthEngagement int
}

type rateTable struct {
	Total, Male, Female float64
}

type labourTable struct {
	Current, PreviousYear, TwentyYearChange rateTable
}

type diversityRate struct {
	EmploymentRate            float64
	ParticipationRate         float64
	PreviousEmploymentRate    float64
	PreviousParticipationRate float64
}

type absTable struct {
	Youth          youthTable
	Qualifications qualificationTable
	Employment     employmentTable
	Apprentices    apprenticeTable
	Regions        map[string]regionTable

	EmploymentRate    labourTable
	ParticipationRate labourTable
	GenderPayGap      struct{ Current, PreviousYear, TwentyYearChange float64 }
	WithDisability    diversityRate
	WithoutDisability diversityRate
	Indigenous        diversityRate
}

// ABS is ABS Education and Work, Australia (May 2024) plus Broadening Access
// to Work (July 2024).
var ABS = absTable{
	Youth: youthTable{
		TotalEngagement:      81,
		FullTimeStudyPrimary: 51,
		FullTimeWorkPrimary:  25,
		NotEngaged:           9,
		PartiallyEngaged:     11,
		CurrentlyStudying:    62,
	},
	Qualifications: qualificationTable{
		NonSchoolQualification: 63,
		BachelorOrAbove:        33,
		CurrentlyStudying:      16,
		TAFEEnrolment:          16,
		HigherEducation:        42,
	},
	Employment: employmentTable{
		WithQualificationEmployed:    79,
		WithoutQualificationEmployed: 58,
		RecentGraduateEmployment:     84,
		SkillLevel1Occupation:        45,
		SkillLevel4Occupation:        22,
	},
	Apprentices: apprenticeTable{
		Aged15to19:        36,
		Aged20to24:        35,
		MalePercentage:    75,
		NewStarters:       40,
		OverseasBorn:      15,
		InCapitalCities:   59,
		ConstructionField: 26,
		ElectroTechField:  21,
	},
	Regions: map[string]regionTable{
		"act": {StudyEnrolment: 18, YouthEngagement: 88},
		"qld": {YouthEngagement: 76},
		"nsw": {StudyEnrolment: 16},
		"tas": {StudyEnrolment: 13},
	},
	EmploymentRate: labourTable{
		Current:          rateTable{Total: 77.1, Male: 80.0, Female: 74.2},
		PreviousYear:     rateTable{Total: 77.1, Male: 80.3, Female: 73.9},
		TwentyYearChange: rateTable{Total: 6.9, Male: 2.5, Female: 11.4},
	},
	ParticipationRate: labourTable{
		Current:          rateTable{Total: 80.6, Male: 83.9, Female: 77.3},
		PreviousYear:     rateTable{Total: 80.2, Male: 83.6, Female: 76.8},
		TwentyYearChange: rateTable{Total: 6.3, Male: 2.0, Female: 10.6},
	},
	GenderPayGap: struct{ Current, PreviousYear, TwentyYearChange float64 }{
		Current:          11.5,
		PreviousYear:     13.0,
		TwentyYearChange: -3.7,
	},
	WithDisability: diversityRate{
		EmploymentRate:            56.1,
		ParticipationRate:         60.5,
		PreviousEmploymentRate:    47.8,
		PreviousParticipationRate: 53.4,
	},
	WithoutDisability: diversityRate{
		EmploymentRate:            82.3,
		ParticipationRate:         84.9,
		PreviousEmploymentRate:    80.3,
		PreviousParticipationRate: 84.1,
	},
	Indigenous: diversityRate{
		EmploymentRate:         55.7,
		PreviousEmploymentRate: 51.0,
	},
}

type scanlonTable struct {
	Survey struct {
		Participants, Questions, Interviews, Year, IssuedSince, ReportNumber int
	}
	Multiculturalism struct {
		GoodForAustralia                    int
		MigrantsGoodForEconomy              int
		CloseFriendsFromDifferentBackground int
		EnjoyMeetingDifferentCultures       int
		ImmigrationTooHigh                  int
		DisagreeEthnicRejection             int
		DisagreeConflictZoneRejection       int
		EconomicHousingConcerns             int
		MigrantsImpactJobsHousing           int
	}
	Political struct {
		SharedPoliticalContent int
		JoinedBoycott          int
		AttendedProtest        int
		Young18to34Activism    int
		LeftLeaningActivism    int
	}
	Community struct {
		InvolvedInGroups int
		LocalAreaHelp    int
		LocalBelonging   int
	}
	Economic struct {
		EconomyTopIssue      int
		HousingAffordability int
		PoorOrJustGettingBy  int
		ImmigrationTopIssue  int
	}
	Interfaith struct {
		NegativeTowardsMuslims     int
		NegativeTowardsJews        int
		PositiveTowardsChristians  int
		PositiveTowardsBuddhists   int
		PositiveTowardsHindusSikhs int
	}
	Safety struct {
		MenWorriedAboutCrime   int
		WomenWorriedAboutCrime int
		WomenUnsafeAtNight     int
		MenUnsafeAtNight       int
	}
}

// Scanlon is the Scanlon Institute Mapping Social Cohesion 2024 report.
var Scanlon = func() scanlonTable {
	var t scanlonTable
	t.Survey.Participants = 8000
	t.Survey.Questions = 100
	t.Survey.Interviews = 40
	t.Survey.Year = 2024
	t.Survey.IssuedSince = 2007
	t.Survey.ReportNumber = 17

	m := &t.Multiculturalism
	m.GoodForAustralia = 85
	m.MigrantsGoodForEconomy = 82
	m.CloseFriendsFromDifferentBackground = 80
	m.EnjoyMeetingDifferentCultures = 90
	m.ImmigrationTooHigh = 49
	m.DisagreeEthnicRejection = 83
	m.DisagreeConflictZoneRejection = 73
	m.EconomicHousingConcerns = 64
	m.MigrantsImpactJobsHousing = 83

	t.Political.SharedPoliticalContent = 26
	t.Political.JoinedBoycott = 20
	t.Political.AttendedProtest = 11
	t.Political.Young18to34Activism = 42
	t.Political.LeftLeaningActivism = 59

	t.Community.InvolvedInGroups = 56
	t.Community.LocalAreaHelp = 82
	t.Community.LocalBelonging = 81

	t.Economic.EconomyTopIssue = 49
	t.Economic.HousingAffordability = 14
	t.Economic.PoorOrJustGettingBy = 41
	t.Economic.ImmigrationTopIssue = 7

	t.Interfaith.NegativeTowardsMuslims = 34
	t.Interfaith.NegativeTowardsJews = 13
	t.Interfaith.PositiveTowardsChristians = 37
	t.Interfaith.PositiveTowardsBuddhists = 44
	t.Interfaith.PositiveTowardsHindusSikhs = 26

	t.Safety.MenWorriedAboutCrime = 25
	t.Safety.WomenWorriedAboutCrime = 36
	t.Safety.WomenUnsafeAtNight = 54
	t.Safety.MenUnsafeAtNight = 25
	return t
}()

type genderSplit struct{ Women, Men int }

type learningTable struct {
	Population int

	Overall, FormalStudy, NonFormal, BothTypes struct {
		Participants      int
		ParticipationRate int
		PreviousRate      int
	}

	WorkTraining struct {
		Participants      int
		ParticipationRate int
		PreviousRate      int
		Motivations       struct{ IncreaseJobSkills, ImproveJobProspects, Other int }
		Demographics      struct{ Women, Men, EmployedWomen, EmployedMen, WorkingAge20to64, Young15to19, Older65to74 int }
		ByJobType         struct{ Employees, BusinessOwners, HighSkillJobs, LowSkillJobs int }
		TimeCommitment    struct{ LessThan10Hours, Between10and19Hours, TwentyPlusHours, MenLongCourses, WomenLongCourses int }
		Costs             struct{ PaidForTraining, BusinessOwnersPaid, EmployeesPaid, LargeBizNoCost, SmallBizNoCost int }
		Delivery          struct{ Online, OnlinePrevious, Classroom, FieldWork int }
	}

	PersonalInterest struct {
		Participants       int
		ParticipationRate  int
		Women, Men         int
		Motivations        struct{ GainNewSkills, EnjoymentInterest, PersonalDevelopment int }
		DisadvantagedAreas int
	}

	Barriers struct {
		WantedButCouldnt   int
		TimeWork           genderSplit
		Financial          genderSplit
		Personal           genderSplit
		CourseAvailability int
		Unemployed         int
		Employed           int
		MostDisadvantaged  int
		LeastDisadvantaged int
	}
}

// Learning is ABS Work-Related Training and Adult Learning, Australia 2020-21.
var Learning = func() learningTable {
	var t learningTable
	t.Population = 18_800_000

	t.Overall.Participants, t.Overall.ParticipationRate = 7_800_000, 42
	t.FormalStudy.Participants, t.FormalStudy.ParticipationRate = 3_800_000, 21
	t.NonFormal.Participants, t.NonFormal.ParticipationRate, t.NonFormal.PreviousRate = 5_100_000, 27, 32
	t.BothTypes.Participants, t.BothTypes.ParticipationRate = 1_100_000, 6

	w := &t.WorkTraining
	w.Participants, w.ParticipationRate, w.PreviousRate = 4_400_000, 23, 27
	w.Motivations.IncreaseJobSkills = 91
	w.Motivations.ImproveJobProspects = 5
	w.Motivations.Other = 4
	w.Demographics.Women = 24
	w.Demographics.Men = 23
	w.Demographics.EmployedWomen = 35
	w.Demographics.EmployedMen = 30
	w.Demographics.WorkingAge20to64 = 27
	w.Demographics.Young15to19 = 12
	w.Demographics.Older65to74 = 6
	w.ByJobType.Employees = 33
	w.ByJobType.BusinessOwners = 15
	w.ByJobType.HighSkillJobs = 40
	w.ByJobType.LowSkillJobs = 19
	w.TimeCommitment.LessThan10Hours = 42
	w.TimeCommitment.Between10and19Hours = 20
	w.TimeCommitment.TwentyPlusHours = 38
	w.TimeCommitment.MenLongCourses = 42
	w.TimeCommitment.WomenLongCourses = 34
	w.Costs.PaidForTraining = 14
	w.Costs.BusinessOwnersPaid = 50
	w.Costs.EmployeesPaid = 10
	w.Costs.LargeBizNoCost = 94
	w.Costs.SmallBizNoCost = 67
	w.Delivery.Online = 55
	w.Delivery.OnlinePrevious = 19
	w.Delivery.Classroom = 37
	w.Delivery.FieldWork = 9

	p := &t.PersonalInterest
	p.Participants, p.ParticipationRate = 1_200_000, 6
	p.Women, p.Men = 7, 5
	p.Motivations.GainNewSkills = 39
	p.Motivations.EnjoymentInterest = 33
	p.Motivations.PersonalDevelopment = 23
	p.DisadvantagedAreas = 5

	b := &t.Barriers
	b.WantedButCouldnt = 924_000
	b.TimeWork = genderSplit{Women: 34, Men: 40}
	b.Financial = genderSplit{Women: 35, Men: 31}
	b.Personal = genderSplit{Women: 18, Men: 6}
	b.CourseAvailability = 12
	b.Unemployed = 10
	b.Employed = 5
	b.MostDisadvantaged = 6
	b.LeastDisadvantaged = 4
	return t
}()

// Barrier mitigation targets used when the work-training table carries no
// barrier breakdown of its own.
const (
	defaultTimeFlexibility  = 66
	defaultFinancialSupport = 65
)
