package configfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"tamilwords/internal/adapters/filesystem"
	twerrors "tamilwords/internal/errors"
	"tamilwords/internal/mocks"
	"tamilwords/internal/services/configfile"
	"tamilwords/internal/testutil"
)

// RepositoryTestSuite provides common setup for repository tests.
type RepositoryTestSuite struct {
	suite.Suite

	ctx        context.Context
	mockFS     *mocks.MockFileSystemAdapter
	configDir  string
	configPath string
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockFS = mocks.NewMockFileSystemAdapter(s.T())
	s.configDir = "/home/user/.config/tamilwords"
	s.configPath = s.configDir + "/config.yaml"
}

func (s *RepositoryTestSuite) newRepository(existing string) *configfile.Repository {
	if existing == "" {
		s.mockFS.On("ReadFile", s.configPath).Return(nil, os.ErrNotExist).Once()
	} else {
		s.mockFS.On("ReadFile", s.configPath).Return([]byte(existing), nil).Once()
	}

	repo, err := configfile.NewRepository(s.mockFS, s.configPath, testutil.Logger())
	s.Require().NoError(err)
	return repo
}

func (s *RepositoryTestSuite) expectSave() *[]byte {
	var written []byte
	s.mockFS.On("MkdirAll", s.configDir, os.FileMode(0o700)).Return(nil)
	s.mockFS.On("WriteFile", s.configPath, mock.AnythingOfType("[]uint8"), os.FileMode(0o600)).
		Run(func(args mock.Arguments) { written = args.Get(1).([]byte) }).
		Return(nil)
	return &written
}

func (s *RepositoryTestSuite) TestNewRepository_MissingFile() {
	repo := s.newRepository("")

	s.Equal(s.configPath, repo.Path())
	s.Empty(repo.Settings())
}

func (s *RepositoryTestSuite) TestNewRepository_ExistingFile() {
	repo := s.newRepository("api_url: https://api.example.org\nenv:\n  host: tamil.example.org\n")

	value, ok := repo.Get("api_url")
	s.True(ok)
	s.Equal("https://api.example.org", value)

	host, ok := repo.Get("env.host")
	s.True(ok)
	s.Equal("tamil.example.org", host)

	s.Equal([]configfile.Setting{
		{Key: "api_url", Value: "https://api.example.org"},
		{Key: "env.host", Value: "tamil.example.org"},
	}, repo.Settings())
}

func (s *RepositoryTestSuite) TestNewRepository_MalformedFileStartsEmpty() {
	repo := s.newRepository("api_url: [unterminated")

	s.Empty(repo.Settings())
}

func (s *RepositoryTestSuite) TestSet_TypedValue() {
	repo := s.newRepository("")
	written := s.expectSave()

	err := repo.Set(s.ctx, "api_port", "9000")

	s.Require().NoError(err)
	var doc map[string]any
	s.Require().NoError(yaml.Unmarshal(*written, &doc))
	s.Equal(9000, doc["api_port"])
}

func (s *RepositoryTestSuite) TestSet_NestedKey() {
	repo := s.newRepository("")
	written := s.expectSave()

	err := repo.Set(s.ctx, "env.scheme", "https")

	s.Require().NoError(err)
	s.Contains(string(*written), "scheme: https")
	value, ok := repo.Get("env.scheme")
	s.True(ok)
	s.Equal("https", value)
}

func (s *RepositoryTestSuite) TestSet_UnknownKey() {
	repo := s.newRepository("")

	err := repo.Set(s.ctx, "database.url", "postgres://")

	s.Require().Error(err)
	s.True(twerrors.IsValidation(err))
	s.mockFS.AssertNotCalled(s.T(), "WriteFile", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RepositoryTestSuite) TestSet_InvalidValueIsRolledBack() {
	repo := s.newRepository("api_port: 8000\n")

	err := repo.Set(s.ctx, "api_port", "70000")

	s.Require().Error(err)
	s.True(twerrors.IsConfiguration(err))
	value, _ := repo.Get("api_port")
	s.Equal("8000", value)
}

func (s *RepositoryTestSuite) TestSet_WriteFailureRollsBack() {
	repo := s.newRepository("")
	s.mockFS.On("MkdirAll", s.configDir, os.FileMode(0o700)).Return(nil)
	s.mockFS.On("WriteFile", s.configPath, mock.Anything, os.FileMode(0o600)).Return(errors.New("disk full"))

	err := repo.Set(s.ctx, "log.level", "debug")

	s.Require().Error(err)
	s.Contains(err.Error(), "disk full")
	_, ok := repo.Get("log.level")
	s.False(ok)
}

func (s *RepositoryTestSuite) TestUnset() {
	repo := s.newRepository("api_url: https://api.example.org\nlog:\n  level: debug\n")
	written := s.expectSave()

	s.Require().NoError(repo.Unset(s.ctx, "log.level"))

	_, ok := repo.Get("log.level")
	s.False(ok)
	s.NotContains(string(*written), "log:")
	s.Contains(string(*written), "api_url")
}

func (s *RepositoryTestSuite) TestUnset_MissingKey() {
	repo := s.newRepository("")

	err := repo.Unset(s.ctx, "api_url")

	s.Error(err)
}

func (s *RepositoryTestSuite) TestInit_RefusesExistingFile() {
	repo := s.newRepository("api_port: 8000\n")
	s.mockFS.On("Stat", s.configPath).Return(nil, nil)

	err := repo.Init(s.ctx, false)

	s.ErrorIs(err, configfile.ErrExists)
}

func (s *RepositoryTestSuite) TestInit_WritesDefaults() {
	repo := s.newRepository("")
	s.mockFS.On("Stat", s.configPath).Return(nil, os.ErrNotExist)
	written := s.expectSave()

	s.Require().NoError(repo.Init(s.ctx, false))

	var doc map[string]any
	s.Require().NoError(yaml.Unmarshal(*written, &doc))
	s.Equal(8000, doc["api_port"])
	s.Equal("10s", doc["timeout"])
	port, _ := repo.Get("api_port")
	s.Equal("8000", port)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func TestDefaultPath(t *testing.T) {
	fs := mocks.NewMockFileSystemAdapter(t)
	fs.On("UserHomeDir").Return("/home/user", nil)

	path, err := configfile.DefaultPath(fs)

	require.NoError(t, err)
	assert.Equal(t, "/home/user/.config/tamilwords/config.yaml", path)
}

func TestRepository_RealFilesystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tamilwords", "config.yaml")
	fs := filesystem.New()

	repo, err := configfile.NewRepository(fs, path, testutil.Logger())
	require.NoError(t, err)
	require.NoError(t, repo.Set(context.Background(), "api_url", "https://api.example.org"))

	reloaded, err := configfile.NewRepository(fs, path, testutil.Logger())
	require.NoError(t, err)
	value, ok := reloaded.Get("api_url")
	assert.True(t, ok)
	assert.Equal(t, "https://api.example.org", value)

	info, err := fs.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
