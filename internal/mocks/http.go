package mocks

import (
	"context"
	"net/http"
	"os"

	"github.com/stretchr/testify/mock"

	"tamilwords/internal/domain"
)

// MockHTTPAdapter is a mock type for the HTTPAdapter type.
type MockHTTPAdapter struct {
	mock.Mock
}

// NewMockHTTPAdapter creates a new instance of MockHTTPAdapter and registers a
// cleanup that asserts its expectations.
func NewMockHTTPAdapter(t testingT) *MockHTTPAdapter {
	m := &MockHTTPAdapter{}
	register(&m.Mock, t)
	return m
}

// Do provides a mock function with given fields: ctx, req.
func (m *MockHTTPAdapter) Do(ctx context.Context, req domain.Request) (*http.Response, error) {
	ret := m.Called(ctx, req)
	return value[*http.Response](ret, 0), ret.Error(1)
}

// BaseURL provides a mock function with no fields.
func (m *MockHTTPAdapter) BaseURL() string {
	ret := m.Called()
	return ret.String(0)
}

// MockPasswordReader is a mock type for the PasswordReader type.
type MockPasswordReader struct {
	mock.Mock
}

// NewMockPasswordReader creates a new instance of MockPasswordReader.
func NewMockPasswordReader(t testingT) *MockPasswordReader {
	m := &MockPasswordReader{}
	register(&m.Mock, t)
	return m
}

// ReadPassword provides a mock function with given fields: ctx, prompt.
func (m *MockPasswordReader) ReadPassword(ctx context.Context, prompt string) (string, error) {
	ret := m.Called(ctx, prompt)
	return ret.String(0), ret.Error(1)
}

// IsInteractive provides a mock function with no fields.
func (m *MockPasswordReader) IsInteractive() bool {
	ret := m.Called()
	return ret.Bool(0)
}

// MockFileSystemAdapter is a mock type for the FileSystemAdapter type.
type MockFileSystemAdapter struct {
	mock.Mock
}

// NewMockFileSystemAdapter creates a new instance of MockFileSystemAdapter.
func NewMockFileSystemAdapter(t testingT) *MockFileSystemAdapter {
	m := &MockFileSystemAdapter{}
	register(&m.Mock, t)
	return m
}

// ReadFile provides a mock function with given fields: path.
func (m *MockFileSystemAdapter) ReadFile(path string) ([]byte, error) {
	ret := m.Called(path)
	return value[[]byte](ret, 0), ret.Error(1)
}

// WriteFile provides a mock function with given fields: path, data, perm.
func (m *MockFileSystemAdapter) WriteFile(path string, data []byte, perm os.FileMode) error {
	ret := m.Called(path, data, perm)
	return ret.Error(0)
}

// MkdirAll provides a mock function with given fields: path, perm.
func (m *MockFileSystemAdapter) MkdirAll(path string, perm os.FileMode) error {
	ret := m.Called(path, perm)
	return ret.Error(0)
}

// Stat provides a mock function with given fields: path.
func (m *MockFileSystemAdapter) Stat(path string) (os.FileInfo, error) {
	ret := m.Called(path)
	return value[os.FileInfo](ret, 0), ret.Error(1)
}

// UserHomeDir provides a mock function with no fields.
func (m *MockFileSystemAdapter) UserHomeDir() (string, error) {
	ret := m.Called()
	return ret.String(0), ret.Error(1)
}
