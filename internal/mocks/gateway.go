package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tamilwords/internal/domain"
)

// MockCatalog is a mock type for the Catalog type.
type MockCatalog struct {
	mock.Mock
}

// NewMockCatalog creates a new instance of MockCatalog.
func NewMockCatalog(t testingT) *MockCatalog {
	m := &MockCatalog{}
	register(&m.Mock, t)
	return m
}

func (m *MockCatalog) Search(ctx context.Context, params domain.SearchParams) (*domain.SearchResponse, error) {
	ret := m.Called(ctx, params)
	return value[*domain.SearchResponse](ret, 0), ret.Error(1)
}

func (m *MockCatalog) ListWorks(ctx context.Context, sortBy string) ([]domain.Work, error) {
	ret := m.Called(ctx, sortBy)
	return value[[]domain.Work](ret, 0), ret.Error(1)
}

func (m *MockCatalog) ListWordRoots(ctx context.Context, term string) ([]domain.WordRoot, error) {
	ret := m.Called(ctx, term)
	return value[[]domain.WordRoot](ret, 0), ret.Error(1)
}

func (m *MockCatalog) GetVerse(ctx context.Context, verseID int) (*domain.Verse, error) {
	ret := m.Called(ctx, verseID)
	return value[*domain.Verse](ret, 0), ret.Error(1)
}

func (m *MockCatalog) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	ret := m.Called(ctx)
	return value[*domain.Statistics](ret, 0), ret.Error(1)
}

func (m *MockCatalog) HealthCheck(ctx context.Context) (*domain.Health, error) {
	ret := m.Called(ctx)
	return value[*domain.Health](ret, 0), ret.Error(1)
}

func (m *MockCatalog) ListPublicCollections(ctx context.Context) ([]domain.Collection, error) {
	ret := m.Called(ctx)
	return value[[]domain.Collection](ret, 0), ret.Error(1)
}

func (m *MockCatalog) GetPublicCollectionTree(ctx context.Context, root *int) ([]domain.CollectionTreeNode, error) {
	ret := m.Called(ctx, root)
	return value[[]domain.CollectionTreeNode](ret, 0), ret.Error(1)
}

func (m *MockCatalog) ListCollectionWorks(ctx context.Context, collectionID int) ([]domain.Work, error) {
	ret := m.Called(ctx, collectionID)
	return value[[]domain.Work](ret, 0), ret.Error(1)
}

func (m *MockCatalog) GetDesignatedFilterCollection(ctx context.Context) (*domain.DesignatedCollection, error) {
	ret := m.Called(ctx)
	return value[*domain.DesignatedCollection](ret, 0), ret.Error(1)
}

// MockAdminAuthenticator is a mock type for the AdminAuthenticator type.
type MockAdminAuthenticator struct {
	mock.Mock
}

// NewMockAdminAuthenticator creates a new instance of MockAdminAuthenticator.
func NewMockAdminAuthenticator(t testingT) *MockAdminAuthenticator {
	m := &MockAdminAuthenticator{}
	register(&m.Mock, t)
	return m
}

func (m *MockAdminAuthenticator) AdminLogin(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	ret := m.Called(ctx, username, password)
	return value[*domain.LoginResponse](ret, 0), ret.Error(1)
}

// MockCollectionManager is a mock type for the CollectionManager type.
type MockCollectionManager struct {
	mock.Mock
}

// NewMockCollectionManager creates a new instance of MockCollectionManager.
func NewMockCollectionManager(t testingT) *MockCollectionManager {
	m := &MockCollectionManager{}
	register(&m.Mock, t)
	return m
}

func (m *MockCollectionManager) ListCollections(ctx context.Context, filter domain.CollectionFilter) ([]domain.Collection, error) {
	ret := m.Called(ctx, filter)
	return value[[]domain.Collection](ret, 0), ret.Error(1)
}

func (m *MockCollectionManager) GetCollectionTree(ctx context.Context) ([]domain.CollectionTreeNode, error) {
	ret := m.Called(ctx)
	return value[[]domain.CollectionTreeNode](ret, 0), ret.Error(1)
}

func (m *MockCollectionManager) GetCollection(ctx context.Context, collectionID int) (*domain.Collection, error) {
	ret := m.Called(ctx, collectionID)
	return value[*domain.Collection](ret, 0), ret.Error(1)
}

func (m *MockCollectionManager) CreateCollection(ctx context.Context, payload domain.CollectionCreate) (*domain.Collection, error) {
	ret := m.Called(ctx, payload)
	return value[*domain.Collection](ret, 0), ret.Error(1)
}

func (m *MockCollectionManager) UpdateCollection(
	ctx context.Context,
	collectionID int,
	payload domain.CollectionUpdate,
) (*domain.Collection, error) {
	ret := m.Called(ctx, collectionID, payload)
	return value[*domain.Collection](ret, 0), ret.Error(1)
}

func (m *MockCollectionManager) DeleteCollection(ctx context.Context, collectionID int) (*domain.Message, error) {
	ret := m.Called(ctx, collectionID)
	return value[*domain.Message](ret, 0), ret.Error(1)
}

func (m *MockCollectionManager) AddWorkToCollection(
	ctx context.Context,
	collectionID int,
	payload domain.WorkAssignment,
) (*domain.WorkLink, error) {
	ret := m.Called(ctx, collectionID, payload)
	return value[*domain.WorkLink](ret, 0), ret.Error(1)
}

func (m *MockCollectionManager) RemoveWorkFromCollection(ctx context.Context, collectionID, workID int) (*domain.Message, error) {
	ret := m.Called(ctx, collectionID, workID)
	return value[*domain.Message](ret, 0), ret.Error(1)
}

func (m *MockCollectionManager) UpdateWorkPosition(ctx context.Context, collectionID, workID, position int) (*domain.Message, error) {
	ret := m.Called(ctx, collectionID, workID, position)
	return value[*domain.Message](ret, 0), ret.Error(1)
}

var (
	_ domain.Catalog            = (*MockCatalog)(nil)
	_ domain.AdminAuthenticator = (*MockAdminAuthenticator)(nil)
	_ domain.CollectionManager  = (*MockCollectionManager)(nil)
	_ domain.HTTPAdapter        = (*MockHTTPAdapter)(nil)
	_ domain.PasswordReader     = (*MockPasswordReader)(nil)
	_ domain.FileSystemAdapter  = (*MockFileSystemAdapter)(nil)
)
