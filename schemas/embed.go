// Package schemas embeds the JSON Schemas that boundary payloads are
// validated against before they become typed profiles.
package schemas

import _ "embed"

// ResumeProfileSchema is the JSON Schema for resume profile payloads.
//
//go:embed resume_profile.schema.json
var ResumeProfileSchema []byte

// JobProfileSchema is the JSON Schema for job profile payloads.
//
//go:embed job_profile.schema.json
var JobProfileSchema []byte
