// Package types provides type definitions for structured data used throughout the relevance engine.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ResumeProfile is a candidate résumé after upstream extraction: the raw
// document text plus the skill names pulled out of it. Profiles are created
// once per uploaded document and consumed read-only by the engine.
type ResumeProfile struct {
	ID          string   `json:"id" validate:"required"`
	DisplayName string   `json:"display_name,omitempty"`
	RawText     string   `json:"raw_text"`
	Skills      []string `json:"skills"`
}

// JobProfile is a job description after upstream extraction. Must-have and
// good-to-have skills are kept as the extractor emits them; the engine merges
// them into one required set via RequiredSkills.
type JobProfile struct {
	ID               string   `json:"id" validate:"required"`
	Title            string   `json:"title,omitempty"`
	RawText          string   `json:"raw_text"`
	MustHaveSkills   []string `json:"must_have_skills"`
	GoodToHaveSkills []string `json:"good_to_have_skills"`
}

// RequiredSkills returns the union of must-have and good-to-have skills.
// The engine does not distinguish the two tiers once merged.
func (j *JobProfile) RequiredSkills() []string {
	merged := make([]string, 0, len(j.MustHaveSkills)+len(j.GoodToHaveSkills))
	merged = append(merged, j.MustHaveSkills...)
	merged = append(merged, j.GoodToHaveSkills...)
	return merged
}

// RankedEntry is one résumé's position in a ranking against a fixed job.
type RankedEntry struct {
	ResumeID    string `json:"resume_id"`
	DisplayName string `json:"display_name"`
	Score       int    `json:"score"`
}

// Validate validates the ResumeProfile using the validator.
func (r *ResumeProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the JobProfile using the validator.
func (j *JobProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
