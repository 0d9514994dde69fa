package report

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/addis-insights/inclusion-cli/internal/model"
)

// Persist writes the report to path as two-space-indented JSON, creating
// the parent directory. The write goes through a temp file and rename so
// a failure never leaves a truncated report behind. Returns the path
// written.
func Persist(rep model.EnrichmentReport, path string) (string, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "report: marshal")
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrapf(err, "report: create dir %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return "", eris.Wrapf(err, "report: temp file in %s", dir)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", eris.Wrapf(err, "report: write %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", eris.Wrapf(err, "report: close %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", eris.Wrapf(err, "report: rename to %s", path)
	}
	return path, nil
}
