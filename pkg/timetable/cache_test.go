package timetable

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestCacheReadWrite(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	sourceURL := "https://example.edu/rasp/cs2.html"

	// 1. Read non-existent cache
	ds, ok := readCache(sourceURL)
	if ok || ds != nil {
		t.Errorf("expected readCache to fail for non-existent cache, but got success")
	}

	// 2. Write cache
	testDataset := &Dataset{
		GeneratedAt: "2026-02-24T10:00:00Z",
		Groups: []Group{
			{
				ID:          "101a",
				Label:       "101a (CS-2)",
				ParentGroup: "CS-2",
				Events: []Session{
					{Day: "Monday", Start: "09:00", DurationMinutes: 60, Title: "Algebra"},
				},
			},
		},
	}
	writeCache(sourceURL, testDataset)

	// Verify file was created
	expectedPath := filepath.Join(tempDir, ".unischedule_cache", "cs2.html.json")
	if _, err := os.Stat(expectedPath); os.IsNotExist(err) {
		t.Errorf("expected cache file to be created at %s", expectedPath)
	}

	// 3. Read existing valid cache
	loaded, ok := readCache(sourceURL)
	if !ok {
		t.Fatalf("expected readCache to succeed for existing cache, but failed")
	}
	if !reflect.DeepEqual(testDataset, loaded) {
		t.Errorf("loaded dataset does not match written dataset.\nGot: %+v\nExpected: %+v", loaded, testDataset)
	}
}

func TestCacheExpiration(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	sourceURL := "https://example.edu/rasp/expired.html"

	// Write cache normally first (so we guarantee directory structure)
	writeCache(sourceURL, &Dataset{})

	// Now manually modify the timestamp in the file to simulate expiration
	cachePath, _ := getCachePath(sourceURL)

	entry := CacheEntry{
		Timestamp: time.Now().Add(-24 * time.Hour), // Expired (older than 12h)
		Dataset:   &Dataset{GeneratedAt: "old"},
	}

	data, _ := json.Marshal(entry)
	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		t.Fatalf("failed to overwrite cache file: %v", err)
	}

	if _, ok := readCache(sourceURL); ok {
		t.Errorf("expected readCache to reject expired cache (24h old, limit is 12h), but it incorrectly succeeded")
	}
}
