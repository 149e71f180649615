package timetable

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// cacheDuration determines how long a parsed dataset is kept before
// the source document is fetched again.
const cacheDuration = 12 * time.Hour

// CacheEntry is the on-disk cache format.
type CacheEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Dataset   *Dataset  `json:"dataset"`
}

func getCachePath(sourceURL string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".unischedule_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	// Derive a safe filesystem name from the URL's last path element,
	// e.g. "https://host/rasp/cs2.html" -> "cs2.html.json".
	name := sourceURL
	if u, err := url.Parse(sourceURL); err == nil && u.Path != "" {
		name = filepath.Base(u.Path)
	}
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	return filepath.Join(cacheDir, name+".json"), nil
}

// readCache returns a valid, unexpired cached dataset for the URL.
func readCache(sourceURL string) (*Dataset, bool) {
	path, err := getCachePath(sourceURL)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if entry.Dataset == nil || time.Since(entry.Timestamp) > cacheDuration {
		return nil, false
	}

	return entry.Dataset, true
}

// writeCache saves a freshly parsed dataset to disk. Failures are
// ignored; the cache is an optimization only.
func writeCache(sourceURL string, ds *Dataset) {
	path, err := getCachePath(sourceURL)
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		Dataset:   ds,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
