package model

import "time"

// RecordType tags a row in the unified dataset.
type RecordType string

const (
	RecordTypeObservation RecordType = "observation"
	RecordTypeEvent       RecordType = "event"
	RecordTypeImpactLink  RecordType = "impact_link"
)

// ImpactDirection is the direction of an event's effect on an indicator.
type ImpactDirection string

const (
	ImpactPositive ImpactDirection = "positive"
	ImpactNegative ImpactDirection = "negative"
	ImpactNeutral  ImpactDirection = "neutral"
)

// ValidImpactDirection reports whether s is a recognized direction.
func ValidImpactDirection(s string) bool {
	switch ImpactDirection(s) {
	case ImpactPositive, ImpactNegative, ImpactNeutral:
		return true
	}
	return false
}

// Observation is a measured indicator value at a point in time. Nil
// pointer fields mean the cell was absent or unparseable.
type Observation struct {
	RecordID        string
	Pillar          string
	Indicator       string
	IndicatorCode   string
	ValueNumeric    *float64
	ObservationDate *time.Time
	SourceName      string
	SourceURL       string
	SourceType      string
	Confidence      string
	Notes           string
	CollectedBy     string
	CollectionDate  *time.Time
}

// Event is a dated occurrence that may affect indicators.
type Event struct {
	RecordID    string
	Name        string
	Category    string
	Date        *time.Time
	Description string
	SourceName  string
	SourceURL   string
	Confidence  string
	Notes       string
}

// ImpactLink ties an event to an indicator it affects. ParentID refers to
// the record_id of the event.
type ImpactLink struct {
	RecordID         string
	ParentID         string
	Pillar           string
	RelatedIndicator string
	Direction        ImpactDirection
	Magnitude        *float64
	LagMonths        *int
	EvidenceBasis    string
	Notes            string
}

// UnifiedRecord is one row of the unified dataset. At most one variant
// pointer is non-nil, matching Type; all three are nil for unknown types.
type UnifiedRecord struct {
	Type        RecordType
	Observation *Observation
	Event       *Event
	ImpactLink  *ImpactLink
}
