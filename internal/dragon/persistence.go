package dragon

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// TimeNow is a seam for deterministic tests.
var TimeNow = func() time.Time { return time.Now().UTC() }

// TestStatePath overrides the state file location in tests.
var TestStatePath string

// saveFile wraps the state with the timestamp needed to reconcile decay
// for the time the app was closed.
type saveFile struct {
	State   State     `json:"state"`
	SavedAt time.Time `json:"saved_at"`
}

// StatePath returns the default state file location, creating the parent
// directory if needed.
func StatePath() (string, error) {
	if TestStatePath != "" {
		return TestStatePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	path := filepath.Join(home, ".config", "dragonling", "state.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return path, nil
}

// Load reads the saved state, or returns a fresh egg when no usable save
// exists. Wall time missed while the app was closed is paid back as a
// single bounded tick.
func Load(path string, e *Engine, lang string) State {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("reading state file: %v; starting a new egg", err)
		}
		return NewState(lang)
	}

	var f saveFile
	if err := json.Unmarshal(data, &f); err != nil {
		log.Printf("corrupt state file: %v; starting a new egg", err)
		return NewState(lang)
	}

	s := finalize(f.State)
	if !KnownLang(s.Lang) {
		s.Lang = lang
	}
	if !f.SavedAt.IsZero() {
		// Elapsed zero would read as a timer tick; only reconcile real
		// absence. Negative elapsed (clock skew) is skipped too.
		if elapsed := TimeNow().Sub(f.SavedAt); elapsed > 0 {
			s, _ = e.Apply(s, TickEvent{Elapsed: elapsed})
		}
	}
	return s
}

// Save writes the state atomically. The persisted log keeps only the
// trailing window; the in-memory log stays unbounded.
func Save(path string, s State) error {
	if len(s.Log) > SavedLogWindow {
		s.Log = s.Log[len(s.Log)-SavedLogWindow:]
	}
	data, err := json.MarshalIndent(saveFile{State: s, SavedAt: TimeNow()}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write tmp state: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename state: %w", err)
	}
	return nil
}

// Export serializes the state to a transport-safe string.
func Export(s State) string {
	data, err := json.Marshal(s)
	if err != nil {
		// State is plain data; marshal cannot realistically fail.
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeExport turns an exported blob back into the JSON payload for an
// ImportEvent. Malformed blobs are rejected here, before any dispatch.
func DecodeExport(blob string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("invalid import: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("invalid import: not a JSON payload")
	}
	return data, nil
}
