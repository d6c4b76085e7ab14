package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	// Get the directory containing the file
	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// LoadSource resolves relPath and reads the file it names. The lexer treats
// the end of the returned slice as the stream terminator, so nothing is appended.
func LoadSource(relPath string) (src []byte, fullPath string, err error) {
	fullPath, _, err = GetPathInfo(relPath)
	if err != nil {
		return nil, "", fmt.Errorf("resolve %q: %w", relPath, err)
	}
	src, err = os.ReadFile(fullPath)
	if err != nil {
		return nil, fullPath, err
	}
	return src, fullPath, nil
}
