package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jonathan/cv-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument_MinimalDocument(t *testing.T) {
	assert.NoError(t, ValidateDocument([]byte(`{"basics":{"name":"Jane"}}`)))
	assert.NoError(t, ValidateDocument([]byte(`{"basics":{}}`)))
}

// Every document the typed model can produce must pass the schema.
func TestValidateDocument_TypedRoundTrip(t *testing.T) {
	doc := types.ResumeDocument{
		Basics: types.Basics{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Summary: "Engineer.",
			Location: types.Location{
				City: "Berlin",
			},
			Profiles: []types.Profile{{Network: "LinkedIn", URL: "https://linkedin.com/in/jane"}},
		},
		Work: []types.WorkEntry{
			{Name: "Acme", Position: "Engineer", StartDate: "2020-01", IsCurrentRole: true,
				Highlights: []string{"Shipped"}},
		},
		Education:    []types.EducationEntry{{Institution: "TU", StudyType: "BSc", Area: "CS"}},
		Skills:       []types.SkillGroup{{Name: "Languages", Keywords: []string{"Go"}}},
		Projects:     []types.ProjectEntry{{Name: "cv-studio"}},
		Certificates: []types.Certificate{{Name: "CKA", Issuer: "CNCF"}},
		Languages:    []types.Language{{Language: "German", Fluency: "Native"}},
		Volunteer:    []types.VolunteerEntry{{Organization: "Food Bank", Position: "Driver"}},
	}

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.NoError(t, ValidateDocument(raw))
}

func TestValidateDocument_RejectsWrongTypes(t *testing.T) {
	err := ValidateDocument([]byte(`{"basics":{"name":42}}`))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Errors[0].Field, "name")
}

func TestValidateDocument_RejectsUnknownTopLevelField(t *testing.T) {
	err := ValidateDocument([]byte(`{"references":[]}`))
	assert.Error(t, err)
}

func TestValidateDocument_MalformedJSON(t *testing.T) {
	err := ValidateDocument([]byte(`{"basics":`))
	require.Error(t, err)

	var le *SchemaLoadError
	assert.True(t, errors.As(err, &le))
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type":"object","properties":{"n":{"type":"integer"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"n":1}`))
	assert.Error(t, ValidateJSONString(schema, `{"n":"one"}`))
}
