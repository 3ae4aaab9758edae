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

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func TestSearchCommand_Execute_Success(t *testing.T) {
	// Arrange
	catalog := mocks.NewMockCatalog(t)
	params := domain.SearchParams{
		Query:     "அரசன்",
		MatchType: domain.MatchPartial,
		WorkIDs:   []int{1, 2},
		Limit:     intPtr(25),
	}
	expected := &domain.SearchResponse{TotalCount: 3, SearchTerm: "அரசன்"}
	catalog.On("Search", mock.Anything, params).Return(expected, nil)

	cmd := NewSearchCommand(catalog, testutil.Logger())

	// Act
	resp, err := cmd.Execute(context.Background(), SearchRequest{Params: params})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, resp)
}

func TestSearchCommand_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		params domain.SearchParams
		field  string
	}{
		{name: "missing query", params: domain.SearchParams{}, field: "Query"},
		{name: "unknown match type", params: domain.SearchParams{Query: "x", MatchType: "fuzzy"}, field: "MatchType"},
		{name: "unknown position", params: domain.SearchParams{Query: "x", WordPosition: "middle"}, field: "WordPosition"},
		{name: "unknown sort", params: domain.SearchParams{Query: "x", SortBy: "random"}, field: "SortBy"},
		{name: "zero limit", params: domain.SearchParams{Query: "x", Limit: intPtr(0)}, field: "Limit"},
		{name: "negative offset", params: domain.SearchParams{Query: "x", Offset: intPtr(-1)}, field: "Offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			catalog := mocks.NewMockCatalog(t)
			cmd := NewSearchCommand(catalog, testutil.Logger())

			// Act
			resp, err := cmd.Execute(context.Background(), SearchRequest{Params: tt.params})

			// Assert
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.True(t, twerrors.IsValidation(err))
			var validationErr *twerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
			catalog.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		})
	}
}

func TestSearchCommand_Execute_ZeroOffsetIsAllowed(t *testing.T) {
	// Arrange
	catalog := mocks.NewMockCatalog(t)
	params := domain.SearchParams{Query: "x", Offset: intPtr(0)}
	catalog.On("Search", mock.Anything, params).Return(&domain.SearchResponse{}, nil)

	// Act
	_, err := NewSearchCommand(catalog, testutil.Logger()).Execute(context.Background(), SearchRequest{Params: params})

	// Assert
	require.NoError(t, err)
}

func TestSearchCommand_Execute_GatewayError(t *testing.T) {
	// Arrange
	catalog := mocks.NewMockCatalog(t)
	apiErr := twerrors.NewHTTPError(500, "GET", "http://localhost:8000/search", "boom")
	catalog.On("Search", mock.Anything, mock.Anything).Return(nil, apiErr)

	cmd := NewSearchCommand(catalog, testutil.Logger())

	// Act
	resp, err := cmd.Execute(context.Background(), SearchRequest{Params: domain.SearchParams{Query: "x"}})

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, apiErr))
	assert.Contains(t, err.Error(), "search failed")
}
