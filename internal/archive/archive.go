package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveWords moves the words directory to an archive with timestamp
func ArchiveWords(wordsDir string) error {
	// Check if words directory exists
	if _, err := os.Stat(wordsDir); os.IsNotExist(err) {
		return fmt.Errorf("words directory does not exist: %s", wordsDir)
	}

	// Get parent directory and create archive path
	parentDir := filepath.Dir(wordsDir)
	archiveDir := filepath.Join(parentDir, "archive")

	// Create archive directory if it doesn't exist
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	archiveName := fmt.Sprintf("words-%s", timestamp)
	archivePath := filepath.Join(archiveDir, archiveName)

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archiveName = fmt.Sprintf("words-%s", timestamp)
		archivePath = filepath.Join(archiveDir, archiveName)
	}

	// Rename words directory to archive
	if err := os.Rename(wordsDir, archivePath); err != nil {
		return fmt.Errorf("failed to archive words directory: %w", err)
	}

	fmt.Printf("Words directory archived to: %s\n", archivePath)
	return nil
}
