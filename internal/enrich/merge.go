package enrich

import (
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/addis-insights/inclusion-cli/internal/dataset"
	"github.com/addis-insights/inclusion-cli/internal/model"
)

// Merge appends the batch records to tbl. Records without an explicit
// record_id get a freshly minted UUID. Every impact link's parent_id
// must resolve to a record already in tbl or added by this batch; the
// table is left untouched when any check fails. Returns the per-category
// counts appended.
func Merge(tbl *dataset.Table, b *Batch) (model.NewRecordCounts, error) {
	known := make(map[string]bool)
	if tbl.HasColumn(dataset.ColRecordID) {
		for i := 0; i < tbl.Len(); i++ {
			if id, ok := tbl.Value(i, dataset.ColRecordID); ok && id != "" {
				known[id] = true
			}
		}
	}

	type pending struct {
		rt     model.RecordType
		fields map[string]string
	}
	var rows []pending

	add := func(rt model.RecordType, fields map[string]string) error {
		id := fields[dataset.ColRecordID]
		if id == "" {
			id = uuid.New().String()
		} else if known[id] {
			return eris.Errorf("enrich: duplicate record_id %q", id)
		}
		fields[dataset.ColRecordID] = id
		fields[dataset.ColRecordType] = string(rt)
		known[id] = true
		rows = append(rows, pending{rt, fields})
		return nil
	}

	for _, o := range b.Observations {
		if err := add(model.RecordTypeObservation, o.fields()); err != nil {
			return model.NewRecordCounts{}, err
		}
	}
	for _, e := range b.Events {
		if err := add(model.RecordTypeEvent, e.fields()); err != nil {
			return model.NewRecordCounts{}, err
		}
	}
	for _, l := range b.ImpactLinks {
		if err := add(model.RecordTypeImpactLink, l.fields()); err != nil {
			return model.NewRecordCounts{}, err
		}
	}

	// Parent references must resolve before anything is appended.
	for _, p := range rows {
		if p.rt != model.RecordTypeImpactLink {
			continue
		}
		if pid := p.fields[dataset.ColParentID]; !known[pid] {
			return model.NewRecordCounts{}, eris.Errorf(
				"enrich: impact link parent_id %q not found in dataset or batch", pid)
		}
	}

	for _, col := range dataset.UnifiedColumns {
		tbl.EnsureColumn(col)
	}
	for _, p := range rows {
		tbl.AppendRow(p.fields)
	}

	counts := b.Counts()
	zap.L().Info("enrich: merged batch",
		zap.Int("observations", counts.Observations),
		zap.Int("events", counts.Events),
		zap.Int("impact_links", counts.ImpactLinks))
	return counts, nil
}
