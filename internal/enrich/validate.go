package enrich

import (
	"fmt"

	"github.com/addis-insights/inclusion-cli/internal/dataset"
	"github.com/addis-insights/inclusion-cli/internal/model"
)

// Issue is one validation problem in a batch record.
type Issue struct {
	RecordType model.RecordType
	Index      int
	Field      string
	Problem    string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s[%d] %s: %s", i.RecordType, i.Index, i.Field, i.Problem)
}

// Validate checks every batch record against the field template plus the
// typed-cell rules. Any issue blocks the merge.
func Validate(b *Batch) []Issue {
	tmpl := Template()
	var issues []Issue

	required := func(rt model.RecordType, idx int, fields map[string]string) {
		for _, req := range tmpl[rt].Required {
			if fields[req] == "" {
				issues = append(issues, Issue{rt, idx, req, "required field is empty"})
			}
		}
	}

	for i, o := range b.Observations {
		f := o.fields()
		required(model.RecordTypeObservation, i, f)
		if v := f[dataset.ColValueNumeric]; v != "" && dataset.ParseFloat(v) == nil {
			issues = append(issues, Issue{model.RecordTypeObservation, i, dataset.ColValueNumeric,
				fmt.Sprintf("not numeric: %q", v)})
		}
		if v := f[dataset.ColObservationDate]; v != "" && dataset.ParseDate(v) == nil {
			issues = append(issues, Issue{model.RecordTypeObservation, i, dataset.ColObservationDate,
				fmt.Sprintf("unparseable date: %q", v)})
		}
		if v := f[dataset.ColCollectionDate]; v != "" && dataset.ParseDate(v) == nil {
			issues = append(issues, Issue{model.RecordTypeObservation, i, dataset.ColCollectionDate,
				fmt.Sprintf("unparseable date: %q", v)})
		}
	}

	for i, e := range b.Events {
		f := e.fields()
		required(model.RecordTypeEvent, i, f)
		if v := f[dataset.ColEventDate]; v != "" && dataset.ParseDate(v) == nil {
			issues = append(issues, Issue{model.RecordTypeEvent, i, dataset.ColEventDate,
				fmt.Sprintf("unparseable date: %q", v)})
		}
	}

	for i, l := range b.ImpactLinks {
		f := l.fields()
		required(model.RecordTypeImpactLink, i, f)
		if v := f[dataset.ColImpactDirection]; v != "" && !model.ValidImpactDirection(v) {
			issues = append(issues, Issue{model.RecordTypeImpactLink, i, dataset.ColImpactDirection,
				fmt.Sprintf("must be positive, negative or neutral, got %q", v)})
		}
		if v := f[dataset.ColImpactMagnitude]; v != "" && dataset.ParseFloat(v) == nil {
			issues = append(issues, Issue{model.RecordTypeImpactLink, i, dataset.ColImpactMagnitude,
				fmt.Sprintf("not numeric: %q", v)})
		}
		if v := f[dataset.ColLagMonths]; v != "" && dataset.ParseInt(v) == nil {
			issues = append(issues, Issue{model.RecordTypeImpactLink, i, dataset.ColLagMonths,
				fmt.Sprintf("not an integer: %q", v)})
		}
	}

	return issues
}

// CheckReferenceCodes reports batch indicator codes missing from the
// reference table. These are advisory: callers log them, they do not
// block the merge.
func CheckReferenceCodes(b *Batch, ref model.ReferenceTable) []Issue {
	var issues []Issue
	for i, o := range b.Observations {
		if o.IndicatorCode != "" && !ref.Has(o.IndicatorCode) {
			issues = append(issues, Issue{model.RecordTypeObservation, i, dataset.ColIndicatorCode,
				fmt.Sprintf("code %q not in reference table", o.IndicatorCode)})
		}
	}
	for i, l := range b.ImpactLinks {
		if l.RelatedIndicator != "" && !ref.Has(l.RelatedIndicator) {
			issues = append(issues, Issue{model.RecordTypeImpactLink, i, dataset.ColRelatedIndicator,
				fmt.Sprintf("code %q not in reference table", l.RelatedIndicator)})
		}
	}
	return issues
}
