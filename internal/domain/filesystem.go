package domain

import "os"

// FileSystemAdapter abstracts file operations for the configuration file.
type FileSystemAdapter interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Stat(path string) (os.FileInfo, error)
	UserHomeDir() (string, error)
}
