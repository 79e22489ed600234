// =============================================================================
// Thali Combo - File Manager Utility
// =============================================================================
//
// This module provides the file handling used when the CLI writes output:
//   - Output directory management
//   - Unique output file naming
//   - Atomic-ish writes (temp file + rename)
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for saved receipts and reports.
type FileManager struct {
	// OutputDir is the directory where output files are placed.
	OutputDir string

	// now is replaced in tests.
	now func() time.Time
}

// NewFileManager creates a new FileManager writing into outputDir.
func NewFileManager(outputDir string) *FileManager {
	return &FileManager{
		OutputDir: outputDir,
		now:       time.Now,
	}
}

// EnsureDirectories creates the output directory if it doesn't exist.
func (fm *FileManager) EnsureDirectories() error {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// WriteOutputFile writes data to name inside the output directory and returns
// the full path. The data is written to a temporary file first and renamed
// into place so readers never see a half-written file.
func (fm *FileManager) WriteOutputFile(name string, data []byte) (string, error) {
	if err := fm.EnsureDirectories(); err != nil {
		return "", err
	}

	path := filepath.Join(fm.OutputDir, name)

	tmp, err := os.CreateTemp(fm.OutputDir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to move %s into place: %w", name, err)
	}

	return path, nil
}

// =============================================================================
// FILE NAMING
// =============================================================================

// GenerateOutputFileName builds a file name from format.
//
// Placeholders:
//
//	{uuid}      - A random UUID
//	{timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//	{date}      - Current date (YYYYMMDD)
//	{time}      - Current time (HHMMSS)
//	{<key>}     - Any key of params, passed through SanitizeName
//
// ext (e.g. ".txt") is appended when the result does not already end in it.
//
// EXAMPLE:
//
//	format: "receipt_{customer}_{timestamp}_{uuid}.txt"
//	params: {"customer": "Ramesh Kumar"}
//	output: "receipt_ramesh_kumar_20240115_143022_a1b2c3d4-e5f6-7890-abcd-ef1234567890.txt"
func (fm *FileManager) GenerateOutputFileName(format string, params map[string]string, ext string) string {
	now := fm.now()

	replacements := map[string]string{
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}
	for key, value := range params {
		replacements["{"+key+"}"] = SanitizeName(value)
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	if ext != "" && !strings.HasSuffix(strings.ToLower(result), strings.ToLower(ext)) {
		result += ext
	}

	return result
}

// SanitizeName lowercases s and replaces every run of characters that are
// not letters or digits with a single underscore. An empty result becomes
// "unknown".
func SanitizeName(s string) string {
	var b strings.Builder
	underscore := false

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore && b.Len() > 0 {
			b.WriteByte('_')
			underscore = true
		}
	}

	name := strings.TrimSuffix(b.String(), "_")
	if name == "" {
		return "unknown"
	}
	return name
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
