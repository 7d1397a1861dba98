package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
	OSIOS     = "ios"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Export file naming
const (
	ExportFilePrefix    = "newscast"
	ExportFileExtension = ".mp3"
	ExportTimeLayout    = "20060102-150405"
)

// CreateDirectoryIfNotExists creates the directory if it does not exist
func CreateDirectoryIfNotExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, DefaultDirPermissions)
	}
	return nil
}

// GetHomeMusicDir returns the standard Music directory for the user
func GetHomeMusicDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, "Music"), nil
}

// SaveAudioFile writes episode audio into dir under a timestamped name and
// returns the full path of the written file.
func SaveAudioFile(dir string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("no audio data to save")
	}

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s%s", ExportFilePrefix, time.Now().Format(ExportTimeLayout), ExportFileExtension)
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}

	return path, nil
}

// RevealInFileManager opens the system file manager with the file selected.
// Only meaningful on desktop platforms; mobile platforms report an error the
// UI turns into a plain "saved to <path>" notice.
func RevealInFileManager(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command("open", "-R", absPath).Run()
	case OSWindows:
		return exec.Command("explorer", "/select,", absPath).Run()
	case OSLinux:
		return exec.Command("xdg-open", filepath.Dir(absPath)).Run()
	default:
		return fmt.Errorf("revealing files is not supported on %s", runtime.GOOS)
	}
}

// IsMobilePlatform returns true when running on a phone or tablet OS
func IsMobilePlatform() bool {
	return runtime.GOOS == OSAndroid || runtime.GOOS == OSIOS
}
