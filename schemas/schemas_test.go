package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestEmbeddedSchemas_ValidJSON(t *testing.T) {
	schemaBytes := map[string][]byte{
		"resume_profile.schema.json": ResumeProfileSchema,
		"job_profile.schema.json":    JobProfileSchema,
	}

	for name, data := range schemaBytes {
		t.Run(name, func(t *testing.T) {
			require.NotEmpty(t, data, "embedded schema should not be empty")

			var v interface{}
			err := json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema should be valid JSON: %s", name)
		})
	}
}

func TestEmbeddedSchemas_Loadable(t *testing.T) {
	for name, data := range map[string][]byte{
		"resume_profile.schema.json": ResumeProfileSchema,
		"job_profile.schema.json":    JobProfileSchema,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
			assert.NoError(t, err, "schema should compile: %s", name)
		})
	}
}
