package view

import (
	"fmt"
	"os"
	"path/filepath"
)

// saveFile 先写临时文件再重命名，避免留下半截文件
func saveFile(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return "", err
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return "", err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return "", err
	}
	return path, nil
}
