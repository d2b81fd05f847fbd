package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"artaura/internal/store"
)

// Draft is an unsubmitted artwork form. Numeric inputs stay as typed.
type Draft struct {
	ProjectID           string `json:"projectId"`
	Title               string `json:"title"`
	Statement           string `json:"statement"`
	ArtistName          string `json:"artistName"`
	Email               string `json:"email"`
	CommunityConnection string `json:"communityConnection"`
	ArtistType          string `json:"artistType"`
	ArtStyle            string `json:"artStyle"`
	LGBTQIAInclusive    bool   `json:"lgbtqiaInclusive"`

	IsSchoolFieldTrip bool   `json:"isSchoolFieldTrip"`
	SchoolName        string `json:"schoolName"`
	TeacherName       string `json:"teacherName"`
	StudentCount      string `json:"studentCount"`
	AgeGroup          string `json:"ageGroup"`
	VisitDate         string `json:"visitDate"`
	PaintingActivity  bool   `json:"paintingActivity"`

	ProvidesEmployment  bool   `json:"providesEmployment"`
	EstimatedJobs       string `json:"estimatedJobs"`
	FemaleArtists       bool   `json:"femaleArtists"`
	DisabilityInclusive bool   `json:"disabilityInclusive"`
	IndigenousArtists   bool   `json:"indigenousArtists"`
	PayEquity           bool   `json:"payEquity"`

	EducationLevel           string `json:"educationLevel"`
	CurrentlyStudying        bool   `json:"currentlyStudying"`
	EmploymentStatus         string `json:"employmentStatus"`
	SkillLevel               string `json:"skillLevel"`
	ApprenticeshipExperience bool   `json:"apprenticeshipExperience"`

	Images  []string  `json:"images"`
	SavedAt time.Time `json:"savedAt"`
}

// NewDraft returns an empty form with the artist prefilled from u.
func NewDraft(u User) Draft {
	return Draft{
		ArtistName: u.DisplayName(),
		Email:      u.Email,
		Images:     []string{},
	}
}

// SaveDraft stamps d and replaces any stored draft.
func (s *Shell) SaveDraft(ctx context.Context, d Draft) (Draft, error) {
	d.SavedAt = s.opts.Now().UTC()
	if d.Images == nil {
		d.Images = []string{}
	}
	data, err := json.Marshal(d)
	if err != nil {
		return Draft{}, err
	}
	if err := s.kv.Set(ctx, DraftKey, string(data)); err != nil {
		return Draft{}, fmt.Errorf("failed to save draft: %w", err)
	}
	return d, nil
}

// LoadDraft returns the stored draft. ok is false when none was saved.
func (s *Shell) LoadDraft(ctx context.Context) (d Draft, ok bool, err error) {
	raw, err := s.kv.Get(ctx, DraftKey)
	if errors.Is(err, store.ErrNotFound) {
		return Draft{}, false, nil
	}
	if err != nil {
		return Draft{}, false, fmt.Errorf("failed to load draft: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return Draft{}, false, fmt.Errorf("failed to decode draft: %w", err)
	}
	return d, true, nil
}
