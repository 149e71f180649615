package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Beliver-247/UniSchedule/pkg/timetable"
)

// defaultDatasetPath is where generate writes and the other commands
// read the canonical dataset unless told otherwise.
const defaultDatasetPath = "timetable.json"

// readDataset loads a previously generated timetable dataset.
func readDataset(path string) (*timetable.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	var ds timetable.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}

	return &ds, nil
}

// writeDataset saves a dataset as indented JSON.
func writeDataset(ds *timetable.Dataset, path string) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize dataset: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write dataset file: %w", err)
	}

	return nil
}
