package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tamilwords/internal/domain"
	twerrors "tamilwords/internal/errors"
	"tamilwords/internal/mocks"
	"tamilwords/internal/testutil"
)

func sampleWorks() []domain.Work {
	return []domain.Work{
		{WorkID: 1, WorkName: "Thirukkural", WorkNameTamil: "திருக்குறள்"},
		{WorkID: 2, WorkName: "Purananuru", WorkNameTamil: "புறநானூறு"},
		{WorkID: 3, WorkName: "Kurunthogai", WorkNameTamil: "குறுந்தொகை"},
	}
}

func TestWorksCommand_Execute_AllWorks(t *testing.T) {
	// Arrange
	catalog := mocks.NewMockCatalog(t)
	catalog.On("ListWorks", mock.Anything, domain.SortCanonical).Return(sampleWorks(), nil)

	cmd := NewWorksCommand(catalog, testutil.Logger())

	// Act
	result, err := cmd.Execute(context.Background(), WorksRequest{SortBy: domain.SortCanonical})

	// Assert
	require.NoError(t, err)
	assert.Len(t, result.Works, 3)
	assert.Equal(t, 0, result.Excluded)
}

func TestWorksCommand_Execute_ExcludesByEitherName(t *testing.T) {
	// Arrange
	catalog := mocks.NewMockCatalog(t)
	catalog.On("ListWorks", mock.Anything, "").Return(sampleWorks(), nil)

	cmd := NewWorksCommand(catalog, testutil.Logger())

	// Act
	result, err := cmd.Execute(context.Background(), WorksRequest{
		ExcludePatterns: []string{"^Thiru", "நானூறு$"},
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Works, 1)
	assert.Equal(t, 3, result.Works[0].WorkID)
	assert.Equal(t, 2, result.Excluded)
}

func TestWorksCommand_Execute_CollectionWorks(t *testing.T) {
	// Arrange
	catalog := mocks.NewMockCatalog(t)
	catalog.On("ListCollectionWorks", mock.Anything, 7).Return(sampleWorks()[:1], nil)

	cmd := NewWorksCommand(catalog, testutil.Logger())

	// Act
	result, err := cmd.Execute(context.Background(), WorksRequest{CollectionID: intPtr(7)})

	// Assert
	require.NoError(t, err)
	assert.Len(t, result.Works, 1)
	catalog.AssertNotCalled(t, "ListWorks", mock.Anything, mock.Anything)
}

func TestWorksCommand_Execute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  WorksRequest
	}{
		{name: "unknown sort", req: WorksRequest{SortBy: "random"}},
		{name: "zero collection", req: WorksRequest{CollectionID: intPtr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			catalog := mocks.NewMockCatalog(t)
			cmd := NewWorksCommand(catalog, testutil.Logger())

			// Act
			result, err := cmd.Execute(context.Background(), tt.req)

			// Assert
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, twerrors.IsValidation(err))
		})
	}
}

func TestWorksCommand_Execute_InvalidPattern(t *testing.T) {
	// Arrange
	catalog := mocks.NewMockCatalog(t)
	cmd := NewWorksCommand(catalog, testutil.Logger())

	// Act
	result, err := cmd.Execute(context.Background(), WorksRequest{ExcludePatterns: []string{"["}})

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to create exclude filter")
}

func TestWorksCommand_Execute_GatewayError(t *testing.T) {
	// Arrange
	catalog := mocks.NewMockCatalog(t)
	catalog.On("ListWorks", mock.Anything, "").Return(nil, errors.New("connection refused"))

	cmd := NewWorksCommand(catalog, testutil.Logger())

	// Act
	result, err := cmd.Execute(context.Background(), WorksRequest{})

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "connection refused")
}
