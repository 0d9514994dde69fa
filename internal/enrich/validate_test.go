package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addis-insights/inclusion-cli/internal/model"
)

func validBatch() *Batch {
	return &Batch{
		Observations: []BatchObservation{{
			Pillar:          "access",
			Indicator:       "Account ownership",
			IndicatorCode:   "ACC_OWNERSHIP",
			ValueNumeric:    "49.2",
			ObservationDate: "2024-06-30",
			SourceName:      "Global Findex 2024",
			SourceURL:       "https://findex.example.org",
		}},
		Events: []BatchEvent{{
			RecordID:    "ev-telebirr",
			Name:        "Telebirr launch",
			Category:    "product",
			Date:        "2021-05-17",
			Description: "Mobile money service launched nationwide",
		}},
		ImpactLinks: []BatchImpactLink{{
			ParentID:         "ev-telebirr",
			Pillar:           "usage",
			RelatedIndicator: "USG_DIGITAL_PAYMENT",
			Direction:        "positive",
			Magnitude:        "4.5",
			LagMonths:        "6",
		}},
	}
}

func TestValidate_CleanBatch(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Validate(validBatch()))
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	t.Parallel()

	b := validBatch()
	b.Observations[0].SourceURL = ""
	b.Events[0].Description = ""
	b.ImpactLinks[0].ParentID = ""

	issues := Validate(b)
	require.Len(t, issues, 3)

	byField := make(map[string]Issue)
	for _, is := range issues {
		byField[is.Field] = is
	}
	assert.Equal(t, model.RecordTypeObservation, byField["source_url"].RecordType)
	assert.Equal(t, 0, byField["source_url"].Index)
	assert.Equal(t, model.RecordTypeEvent, byField["description"].RecordType)
	assert.Equal(t, model.RecordTypeImpactLink, byField["parent_id"].RecordType)
}

func TestValidate_TypedCells(t *testing.T) {
	t.Parallel()

	b := validBatch()
	b.Observations[0].ValueNumeric = "a lot"
	b.Observations[0].ObservationDate = "someday"
	b.ImpactLinks[0].Direction = "up"
	b.ImpactLinks[0].Magnitude = "big"
	b.ImpactLinks[0].LagMonths = "soon"

	issues := Validate(b)
	require.Len(t, issues, 5)

	fields := make([]string, 0, len(issues))
	for _, is := range issues {
		fields = append(fields, is.Field)
	}
	assert.Contains(t, fields, "value_numeric")
	assert.Contains(t, fields, "observation_date")
	assert.Contains(t, fields, "impact_direction")
	assert.Contains(t, fields, "impact_magnitude")
	assert.Contains(t, fields, "lag_months")
}

func TestValidate_IssueString(t *testing.T) {
	t.Parallel()

	b := &Batch{Events: []BatchEvent{{Name: "x"}}}
	issues := Validate(b)
	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0].String(), "event[0]")
	assert.Contains(t, issues[0].String(), "required field is empty")
}

func TestCheckReferenceCodes(t *testing.T) {
	t.Parallel()

	ref := model.ReferenceTable{"ACC_OWNERSHIP": "Account ownership"}
	b := validBatch()

	issues := CheckReferenceCodes(b, ref)
	// USG_DIGITAL_PAYMENT is referenced by the impact link but unknown.
	require.Len(t, issues, 1)
	assert.Equal(t, model.RecordTypeImpactLink, issues[0].RecordType)
	assert.Equal(t, "related_indicator", issues[0].Field)

	ref["USG_DIGITAL_PAYMENT"] = "Digital payments"
	assert.Empty(t, CheckReferenceCodes(b, ref))
}
