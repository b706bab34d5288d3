package kvconf

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Azhovan/kvconf/sourcefile"
)

// MaxSnapshotSize is the maximum allowed snapshot size (100MB).
const MaxSnapshotSize = 100 * 1024 * 1024

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = "1.0"

// Snapshot errors.
var (
	// ErrSnapshotTooLarge is returned when a snapshot exceeds MaxSnapshotSize.
	ErrSnapshotTooLarge = errors.New("kvconf: snapshot exceeds 100MB size limit")

	// ErrNilConfig is returned when CreateSnapshot or WriteSnapshot receives nil.
	ErrNilConfig = errors.New("kvconf: config is nil")

	// ErrUnsupportedVersion is returned when reading a snapshot with unknown version.
	ErrUnsupportedVersion = errors.New("kvconf: unsupported snapshot version")
)

// supportedVersions lists snapshot format versions that can be read.
var supportedVersions = map[string]bool{
	"1.0": true,
}

// ConfigSnapshot is a point-in-time copy of a Config's entries.
type ConfigSnapshot struct {
	// Version is the snapshot format version (currently "1.0")
	Version string `json:"version"`

	// Timestamp is when the snapshot was created
	Timestamp time.Time `json:"timestamp"`

	// Entries holds the raw stored values by key.
	Entries map[string]string `json:"entries"`

	// Origins records where each entry came from.
	Origins map[string]Origin `json:"origins,omitempty"`

	// SourcePath is the Config's SourcePath at capture time.
	SourcePath string `json:"source_path,omitempty"`
}

// SnapshotOption configures snapshot creation behavior.
type SnapshotOption func(*snapshotConfig)

type snapshotConfig struct {
	excludeKeys []string
}

// WithExcludeKeys leaves the named keys out of the snapshot.
// Matching is exact: keys are case-sensitive.
func WithExcludeKeys(keys ...string) SnapshotOption {
	return func(cfg *snapshotConfig) {
		cfg.excludeKeys = append(cfg.excludeKeys, keys...)
	}
}

// CreateSnapshot captures the entries of cfg and where they came from.
// The snapshot's Timestamp is captured at creation time.
func CreateSnapshot(cfg *Config, opts ...SnapshotOption) (*ConfigSnapshot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	snapCfg := &snapshotConfig{}
	for _, opt := range opts {
		opt(snapCfg)
	}

	excluded := make(map[string]bool, len(snapCfg.excludeKeys))
	for _, key := range snapCfg.excludeKeys {
		excluded[key] = true
	}

	snap := &ConfigSnapshot{
		Version:    SnapshotVersion,
		Timestamp:  time.Now().UTC(),
		Entries:    make(map[string]string, len(cfg.values)),
		Origins:    make(map[string]Origin, len(cfg.values)),
		SourcePath: cfg.filePath,
	}
	for key, value := range cfg.values {
		if excluded[key] {
			continue
		}
		snap.Entries[key] = value
		snap.Origins[key] = cfg.origins[key]
	}
	return snap, nil
}

// Restore builds a new Config holding the snapshot's entries, as if they had
// been added with AddEntry. Origins and SourcePath are carried over.
func (s *ConfigSnapshot) Restore(opts ...Option) (*Config, error) {
	if s == nil {
		return nil, ErrNilConfig
	}

	cfg := New(opts...)
	for key, value := range s.Entries {
		if err := cfg.AddEntry(key, value); err != nil {
			return nil, err
		}
		if o, ok := s.Origins[key]; ok {
			cfg.origins[key] = o
		}
	}
	cfg.filePath = s.SourcePath
	cfg.fileName = sourcefile.FileName(s.SourcePath)
	return cfg, nil
}

// ExpandPath expands template variables using current time.
// For consistency with snapshot metadata, prefer WriteSnapshot which
// uses the snapshot's internal timestamp for expansion.
func ExpandPath(template string) string {
	return ExpandPathWithTime(template, time.Now())
}

// ExpandPathWithTime replaces all {{timestamp}} occurrences with t formatted
// as 20060102-150405 (UTC).
func ExpandPathWithTime(template string, t time.Time) string {
	timestamp := t.UTC().Format("20060102-150405")
	return strings.ReplaceAll(template, "{{timestamp}}", timestamp)
}

// WriteSnapshot persists a snapshot to disk with atomic write semantics.
// Supports {{timestamp}} template variable in path - uses snapshot.Timestamp
// (not current time) to ensure filename matches internal metadata.
// Returns ErrSnapshotTooLarge if serialized size exceeds 100MB.
func WriteSnapshot(snapshot *ConfigSnapshot, pathTemplate string) error {
	if snapshot == nil {
		return ErrNilConfig
	}

	targetPath := ExpandPathWithTime(pathTemplate, snapshot.Timestamp)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	if len(data) > MaxSnapshotSize {
		return ErrSnapshotTooLarge
	}

	dir := filepath.Dir(targetPath)
	if dir != "" && dir != "." {
		if mkdirErr := os.MkdirAll(dir, 0700); mkdirErr != nil {
			return mkdirErr
		}
	}

	// Temp file in the same directory so the rename stays on one filesystem.
	tempPath, err := generateTempFileName(targetPath)
	if err != nil {
		return err
	}

	var tempFileCreated bool
	defer func() {
		if tempFileCreated {
			_ = os.Remove(tempPath)
		}
	}()

	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return err
	}
	tempFileCreated = true

	if err := os.Rename(tempPath, targetPath); err != nil {
		return err
	}
	tempFileCreated = false

	return nil
}

// ReadSnapshot loads a snapshot written by WriteSnapshot.
// Returns ErrSnapshotTooLarge for files over MaxSnapshotSize and
// ErrUnsupportedVersion for unknown format versions.
func ReadSnapshot(path string) (*ConfigSnapshot, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > MaxSnapshotSize {
		return nil, ErrSnapshotTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var snap ConfigSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("kvconf: invalid snapshot %s: %w", path, err)
	}
	if !supportedVersions[snap.Version] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, snap.Version)
	}
	if snap.Entries == nil {
		snap.Entries = make(map[string]string)
	}
	return &snap, nil
}

// generateTempFileName returns targetPath + ".tmp." + 16 random hex chars.
func generateTempFileName(targetPath string) (string, error) {
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	return targetPath + ".tmp." + hex.EncodeToString(randomBytes), nil
}
