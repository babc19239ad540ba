package stress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// WriteReport serializes a report to path: JSON for *.json, msgpack
// otherwise. The file is written to a temp sibling and renamed into
// place, so a crashed run never leaves a half-written report behind.
func WriteReport(path string, report Report) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "tmp-report-*")
	if err != nil {
		return fmt.Errorf("failed to create temp report: %w", err)
	}
	tmp := f.Name()
	defer func() {
		// Если rename прошёл, файла уже нет — ошибка тут не интересна.
		_ = os.Remove(tmp)
	}()

	if strings.HasSuffix(path, ".json") {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		err = enc.Encode(report)
	} else {
		err = msgpack.NewEncoder(f).Encode(report)
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, path)
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer func() {
		_ = f.Close()
	}()

	var report Report
	if strings.HasSuffix(path, ".json") {
		err = json.NewDecoder(f).Decode(&report)
	} else {
		err = msgpack.NewDecoder(f).Decode(&report)
	}
	if err != nil {
		return Report{}, fmt.Errorf("%s: failed to decode report: %w", path, err)
	}
	return report, nil
}
