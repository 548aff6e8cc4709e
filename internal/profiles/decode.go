// Package profiles decodes the loosely-typed JSON payloads produced by the
// upstream extraction step into strictly validated profile records. Untyped
// maps never reach the scoring pipeline; everything is coerced or rejected
// here at the boundary.
package profiles

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-relevance/internal/types"
	"github.com/jonathan/resume-relevance/schemas"
)

// DecodeReport surfaces lenient-degradation counts so callers can log them.
type DecodeReport struct {
	// DroppedSkills counts skill entries discarded because they were not
	// strings. Dropping is deliberate: one bad entry should not fail the
	// whole profile.
	DroppedSkills int
}

// rawResume mirrors the upstream resume payload shape before coercion.
type rawResume struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"display_name"`
	FileName    string            `json:"file_name"`
	RawText     string            `json:"raw_text"`
	Skills      []json.RawMessage `json:"skills"`
}

// rawJob mirrors the upstream job payload shape before coercion. The
// extraction step emits either the two-tier skill form or a pre-merged
// required_skills list.
type rawJob struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	JobTitle         string            `json:"job_title"`
	RawText          string            `json:"raw_text"`
	MustHaveSkills   []json.RawMessage `json:"must_have_skills"`
	GoodToHaveSkills []json.RawMessage `json:"good_to_have_skills"`
	RequiredSkills   []json.RawMessage `json:"required_skills"`
}

// DecodeResumeProfile validates and decodes a resume payload. A missing ID is
// filled with a fresh UUID; the display name falls back to the source file
// name. Non-string skill entries are dropped and counted in the report.
func DecodeResumeProfile(data []byte) (*types.ResumeProfile, *DecodeReport, error) {
	if err := validateAgainstSchema(data, schemas.ResumeProfileSchema, "resume"); err != nil {
		return nil, nil, err
	}

	var raw rawResume
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, &MalformedProfileError{Kind: "resume", Message: "failed to decode payload", Cause: err}
	}

	report := &DecodeReport{}
	profile := &types.ResumeProfile{
		ID:          raw.ID,
		DisplayName: raw.DisplayName,
		RawText:     raw.RawText,
		Skills:      coerceSkills(raw.Skills, report),
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.DisplayName == "" {
		profile.DisplayName = raw.FileName
	}

	if err := profile.Validate(); err != nil {
		return nil, nil, &MalformedProfileError{Kind: "resume", Message: "validation failed", Cause: err}
	}
	return profile, report, nil
}

// DecodeJobProfile validates and decodes a job payload. A pre-merged
// required_skills list is folded into the must-have tier; the engine merges
// the tiers anyway.
func DecodeJobProfile(data []byte) (*types.JobProfile, *DecodeReport, error) {
	if err := validateAgainstSchema(data, schemas.JobProfileSchema, "job"); err != nil {
		return nil, nil, err
	}

	var raw rawJob
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, &MalformedProfileError{Kind: "job", Message: "failed to decode payload", Cause: err}
	}

	report := &DecodeReport{}
	profile := &types.JobProfile{
		ID:               raw.ID,
		Title:            raw.Title,
		RawText:          raw.RawText,
		MustHaveSkills:   coerceSkills(raw.MustHaveSkills, report),
		GoodToHaveSkills: coerceSkills(raw.GoodToHaveSkills, report),
	}
	profile.MustHaveSkills = append(profile.MustHaveSkills, coerceSkills(raw.RequiredSkills, report)...)
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.Title == "" {
		profile.Title = raw.JobTitle
	}

	if err := profile.Validate(); err != nil {
		return nil, nil, &MalformedProfileError{Kind: "job", Message: "validation failed", Cause: err}
	}
	return profile, report, nil
}

// validateAgainstSchema checks the payload against the embedded JSON Schema
// and converts validation failures into MalformedProfileError values.
func validateAgainstSchema(data, schema []byte, kind string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return &MalformedProfileError{Kind: kind, Message: "payload is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		fields := make([]string, 0, len(result.Errors()))
		for _, resultErr := range result.Errors() {
			fields = append(fields, fmt.Sprintf("%s: %s", resultErr.Field(), resultErr.Description()))
		}
		return &MalformedProfileError{Kind: kind, Message: "schema validation failed", Fields: fields}
	}
	return nil
}

// coerceSkills keeps string entries and drops everything else, counting the
// drops in the report.
func coerceSkills(entries []json.RawMessage, report *DecodeReport) []string {
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		// Decoding through a pointer distinguishes JSON null from "".
		var s *string
		if err := json.Unmarshal(entry, &s); err != nil || s == nil {
			report.DroppedSkills++
			continue
		}
		out = append(out, *s)
	}
	return out
}
