package enrich

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/addis-insights/inclusion-cli/internal/dataset"
	"github.com/addis-insights/inclusion-cli/internal/model"
)

// Batch is a declarative set of records to merge into the unified
// dataset. All values stay strings so numeric and date cells get the
// same lenient treatment as CSV cells. record_id is optional everywhere:
// unset IDs are minted at merge time, and an explicit event record_id
// lets impact links in the same batch reference their parent.
type Batch struct {
	Observations []BatchObservation `yaml:"observations"`
	Events       []BatchEvent       `yaml:"events"`
	ImpactLinks  []BatchImpactLink  `yaml:"impact_links"`
}

// BatchObservation is one new observation row.
type BatchObservation struct {
	RecordID        string `yaml:"record_id"`
	Pillar          string `yaml:"pillar"`
	Indicator       string `yaml:"indicator"`
	IndicatorCode   string `yaml:"indicator_code"`
	ValueNumeric    string `yaml:"value_numeric"`
	ObservationDate string `yaml:"observation_date"`
	SourceName      string `yaml:"source_name"`
	SourceURL       string `yaml:"source_url"`
	SourceType      string `yaml:"source_type"`
	Confidence      string `yaml:"confidence"`
	Notes           string `yaml:"notes"`
	CollectedBy     string `yaml:"collected_by"`
	CollectionDate  string `yaml:"collection_date"`
}

func (o BatchObservation) fields() map[string]string {
	return map[string]string{
		dataset.ColRecordID:        o.RecordID,
		dataset.ColPillar:          o.Pillar,
		dataset.ColIndicator:       o.Indicator,
		dataset.ColIndicatorCode:   o.IndicatorCode,
		dataset.ColValueNumeric:    o.ValueNumeric,
		dataset.ColObservationDate: o.ObservationDate,
		dataset.ColSourceName:      o.SourceName,
		dataset.ColSourceURL:       o.SourceURL,
		dataset.ColSourceType:      o.SourceType,
		dataset.ColConfidence:      o.Confidence,
		dataset.ColNotes:           o.Notes,
		dataset.ColCollectedBy:     o.CollectedBy,
		dataset.ColCollectionDate:  o.CollectionDate,
	}
}

// BatchEvent is one new event row.
type BatchEvent struct {
	RecordID    string `yaml:"record_id"`
	Name        string `yaml:"event_name"`
	Category    string `yaml:"event_category"`
	Date        string `yaml:"event_date"`
	Description string `yaml:"description"`
	SourceName  string `yaml:"source_name"`
	SourceURL   string `yaml:"source_url"`
	Confidence  string `yaml:"confidence"`
	Notes       string `yaml:"notes"`
}

func (e BatchEvent) fields() map[string]string {
	return map[string]string{
		dataset.ColRecordID:      e.RecordID,
		dataset.ColEventName:     e.Name,
		dataset.ColEventCategory: e.Category,
		dataset.ColEventDate:     e.Date,
		dataset.ColDescription:   e.Description,
		dataset.ColSourceName:    e.SourceName,
		dataset.ColSourceURL:     e.SourceURL,
		dataset.ColConfidence:    e.Confidence,
		dataset.ColNotes:         e.Notes,
	}
}

// BatchImpactLink is one new impact link row. ParentID may reference an
// existing record or an event minted in the same batch.
type BatchImpactLink struct {
	RecordID         string `yaml:"record_id"`
	ParentID         string `yaml:"parent_id"`
	Pillar           string `yaml:"pillar"`
	RelatedIndicator string `yaml:"related_indicator"`
	Direction        string `yaml:"impact_direction"`
	Magnitude        string `yaml:"impact_magnitude"`
	LagMonths        string `yaml:"lag_months"`
	EvidenceBasis    string `yaml:"evidence_basis"`
	Notes            string `yaml:"notes"`
}

func (l BatchImpactLink) fields() map[string]string {
	return map[string]string{
		dataset.ColRecordID:         l.RecordID,
		dataset.ColParentID:         l.ParentID,
		dataset.ColPillar:           l.Pillar,
		dataset.ColRelatedIndicator: l.RelatedIndicator,
		dataset.ColImpactDirection:  l.Direction,
		dataset.ColImpactMagnitude:  l.Magnitude,
		dataset.ColLagMonths:        l.LagMonths,
		dataset.ColEvidenceBasis:    l.EvidenceBasis,
		dataset.ColNotes:            l.Notes,
	}
}

// LoadBatch reads a YAML batch file.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "enrich: read batch %s", path)
	}
	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, eris.Wrapf(err, "enrich: parse batch %s", path)
	}
	return &b, nil
}

// Counts returns the per-category record counts of the batch.
func (b *Batch) Counts() model.NewRecordCounts {
	return model.NewRecordCounts{
		Observations: len(b.Observations),
		Events:       len(b.Events),
		ImpactLinks:  len(b.ImpactLinks),
	}
}

// Empty reports whether the batch holds no records at all.
func (b *Batch) Empty() bool {
	return len(b.Observations) == 0 && len(b.Events) == 0 && len(b.ImpactLinks) == 0
}
