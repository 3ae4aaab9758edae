package catalog

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	httpadapter "tamilwords/internal/adapters/http"
	"tamilwords/internal/domain"
	"tamilwords/internal/errors"
	"tamilwords/internal/testutil"
)

var _ domain.Catalog = (*Service)(nil)

type ServiceTestSuite struct {
	suite.Suite

	api     *testutil.StubAPI
	service *Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.api = testutil.NewStubAPI(s.T())

	adapter := httpadapter.NewAdapter(httpadapter.Options{
		BaseURL: s.api.URL(),
		Timeout: testutil.RequestTimeout,
	}, testutil.Logger())
	s.service = NewService(adapter, testutil.Logger())
}

func (s *ServiceTestSuite) TestSearch_SendsOnlySetParameters() {
	// Arrange
	limit := 50
	s.api.Reply(http.StatusOK, `{"results":[{"word_id":1,"word_text":"அரசன்","line_text":"x","work_name":"Purananuru","work_name_tamil":"புறநானூறு"}],
		"unique_words":[{"word_text":"அரசன்","count":1,"verse_count":1,"work_breakdown":[]}],
		"total_count":1,"limit":50,"offset":0,"search_term":"அரசன்","match_type":"partial"}`)

	// Act
	result, err := s.service.Search(context.Background(), domain.SearchParams{
		Query:        "அரசன்",
		MatchType:    domain.MatchPartial,
		WordPosition: domain.PositionBeginning,
		WorkIDs:      []int{1, 3},
		Limit:        &limit,
	})

	// Assert
	s.Require().NoError(err)
	s.Equal(1, result.TotalCount)
	s.Require().Len(result.Results, 1)
	s.Equal("புறநானூறு", result.Results[0].WorkNameTamil)
	s.Require().Len(result.UniqueWords, 1)

	s.Equal(http.MethodGet, s.api.Last().Method)
	s.Equal("/search", s.api.Last().Path)
	q := s.api.Last().Values()
	s.Equal("அரசன்", q.Get("q"))
	s.Equal("partial", q.Get("match_type"))
	s.Equal("beginning", q.Get("word_position"))
	s.Equal("1,3", q.Get("work_ids"))
	s.Equal("50", q.Get("limit"))
	s.False(q.Has("offset"))
	s.False(q.Has("word_root"))
}

func (s *ServiceTestSuite) TestListWorks() {
	s.api.Reply(http.StatusOK, `[{"work_id":1,"work_name":"Tolkappiyam","work_name_tamil":"தொல்காப்பியம்","canonical_position":1}]`)

	works, err := s.service.ListWorks(context.Background(), domain.SortCanonical)

	s.Require().NoError(err)
	s.Require().Len(works, 1)
	s.Equal("Tolkappiyam", works[0].WorkName)
	s.Require().NotNil(works[0].CanonicalPosition)
	s.Equal(1, *works[0].CanonicalPosition)
	s.Equal("/works", s.api.Last().Path)
	s.Equal("canonical", s.api.Last().Values().Get("sort_by"))
}

func (s *ServiceTestSuite) TestListWorks_NoSort() {
	s.api.Reply(http.StatusOK, `[]`)

	works, err := s.service.ListWorks(context.Background(), "")

	s.Require().NoError(err)
	s.Empty(works)
	s.Empty(s.api.Last().Query)
}

func (s *ServiceTestSuite) TestListWordRoots_EmptyTermSendsNoQuery() {
	s.api.Reply(http.StatusOK, `[{"word_root":"அரசு","usage_count":12}]`)

	roots, err := s.service.ListWordRoots(context.Background(), "")

	s.Require().NoError(err)
	s.Require().Len(roots, 1)
	s.Equal(12, roots[0].UsageCount)
	s.Equal("/roots", s.api.Last().Path)
	s.Empty(s.api.Last().Query)
}

func (s *ServiceTestSuite) TestListWordRoots_TermIsSentAsQ() {
	s.api.Reply(http.StatusOK, `[]`)

	_, err := s.service.ListWordRoots(context.Background(), "அரசன்")

	s.Require().NoError(err)
	s.Equal("அரசன்", s.api.Last().Values().Get("q"))
	s.Len(s.api.Last().Values(), 1)
}

func (s *ServiceTestSuite) TestGetVerse() {
	s.api.Reply(http.StatusOK, `{"verse_id":42,"verse_number":7,"work_name":"Kuruntokai","work_name_tamil":"குறுந்தொகை",
		"lines":[{"line_id":1,"line_number":1,"line_text":"யாயும் ஞாயும் யாரா கியரோ"}]}`)

	verse, err := s.service.GetVerse(context.Background(), 42)

	s.Require().NoError(err)
	s.Equal("/verse/42", s.api.Last().Path)
	s.Equal(7, verse.VerseNumber)
	s.Require().Len(verse.Lines, 1)
	s.Equal("யாயும் ஞாயும் யாரா கியரோ", verse.Lines[0].LineText)
}

func (s *ServiceTestSuite) TestGetVerse_NotFound() {
	s.api.Reply(http.StatusNotFound, `{"detail":"Verse not found"}`)

	verse, err := s.service.GetVerse(context.Background(), 999)

	s.Nil(verse)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "Verse not found")
}

func (s *ServiceTestSuite) TestGetStatistics() {
	s.api.Reply(http.StatusOK, `{"total_works":18,"total_verses":2381,"total_lines":26350,"total_words":150000,"distinct_words":50000,"unique_roots":9000}`)

	stats, err := s.service.GetStatistics(context.Background())

	s.Require().NoError(err)
	s.Equal("/stats", s.api.Last().Path)
	s.Equal(18, stats.TotalWorks)
	s.Equal(9000, stats.UniqueRoots)
}

func (s *ServiceTestSuite) TestHealthCheck_UnhealthyIsNotAnError() {
	s.api.Reply(http.StatusOK, `{"status":"unhealthy","database":"disconnected","error":"connection refused"}`)

	health, err := s.service.HealthCheck(context.Background())

	s.Require().NoError(err)
	s.False(health.Healthy())
	s.Equal("connection refused", health.Error)
}

func (s *ServiceTestSuite) TestHealthCheck_Healthy() {
	s.api.Reply(http.StatusOK, `{"status":"healthy","database":"connected","stats":{"total_works":18}}`)

	health, err := s.service.HealthCheck(context.Background())

	s.Require().NoError(err)
	s.True(health.Healthy())
	s.Require().NotNil(health.Stats)
	s.Equal(18, health.Stats.TotalWorks)
}

func (s *ServiceTestSuite) TestListPublicCollections() {
	s.api.Reply(http.StatusOK, `[{"collection_id":1,"collection_name":"Sangam Literature","collection_type":"period","work_count":18}]`)

	collections, err := s.service.ListPublicCollections(context.Background())

	s.Require().NoError(err)
	s.Equal("/collections", s.api.Last().Path)
	s.Require().Len(collections, 1)
	s.Equal(18, collections[0].WorkCount)
}

func (s *ServiceTestSuite) TestGetPublicCollectionTree() {
	s.api.Reply(http.StatusOK, `[{"collection_id":1,"collection_name":"Tamil","collection_type":"language","work_count":0,
		"children":[{"collection_id":2,"collection_name":"Sangam","collection_type":"period","work_count":18,"children":[]}]}]`)
	root := 1

	tree, err := s.service.GetPublicCollectionTree(context.Background(), &root)

	s.Require().NoError(err)
	s.Equal("/collections/tree", s.api.Last().Path)
	s.Equal("1", s.api.Last().Values().Get("root"))
	s.Require().Len(tree, 1)
	s.Require().Len(tree[0].Children, 1)
	s.Equal("Sangam", tree[0].Children[0].CollectionName)
}

func (s *ServiceTestSuite) TestGetPublicCollectionTree_WholeTree() {
	s.api.Reply(http.StatusOK, `[]`)

	_, err := s.service.GetPublicCollectionTree(context.Background(), nil)

	s.Require().NoError(err)
	s.Empty(s.api.Last().Query)
}

func (s *ServiceTestSuite) TestListCollectionWorks() {
	s.api.Reply(http.StatusOK, `[{"work_id":3,"work_name":"Natrinai","work_name_tamil":"நற்றிணை"}]`)

	works, err := s.service.ListCollectionWorks(context.Background(), 5)

	s.Require().NoError(err)
	s.Equal("/collections/5/works", s.api.Last().Path)
	s.Require().Len(works, 1)
	s.Equal(3, works[0].WorkID)
}

func (s *ServiceTestSuite) TestGetDesignatedFilterCollection() {
	s.api.Reply(http.StatusOK, `{"collection_id":1}`)

	designated, err := s.service.GetDesignatedFilterCollection(context.Background())

	s.Require().NoError(err)
	s.Equal("/settings/designated_filter_collection", s.api.Last().Path)
	s.Equal(1, designated.CollectionID)
}

func (s *ServiceTestSuite) TestMalformedPayload() {
	s.api.Reply(http.StatusOK, `{"total_works":`)

	stats, err := s.service.GetStatistics(context.Background())

	s.Nil(stats)
	s.True(errors.IsDecode(err))
}

func (s *ServiceTestSuite) TestServerError() {
	s.api.Reply(http.StatusInternalServerError, `{"detail":"Database error: relation \"words\" does not exist"}`)

	_, err := s.service.ListWorks(context.Background(), "")

	s.Require().Error(err)
	s.True(errors.IsHTTPStatus(err, http.StatusInternalServerError))
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
