package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// Search match types.
const (
	MatchExact   = "exact"
	MatchPartial = "partial"
)

// Word positions for partial matches.
const (
	PositionBeginning = "beginning"
	PositionEnd       = "end"
	PositionAnywhere  = "anywhere"
)

// Sort orders accepted by /search and /works.
const (
	SortAlphabetical  = "alphabetical"
	SortCanonical     = "canonical"
	SortChronological = "chronological"
	SortCollection    = "collection"
)

// SearchParams are the query parameters of a word search. Zero values are omitted
// from the request so the API applies its own defaults.
type SearchParams struct {
	Query        string
	MatchType    string
	WordPosition string
	WorkIDs      []int
	WordRoot     string
	Limit        *int
	Offset       *int
	SortBy       string
	CollectionID *int
}

// Values encodes the parameters as a query string.
func (p SearchParams) Values() url.Values {
	v := url.Values{}
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if p.MatchType != "" {
		v.Set("match_type", p.MatchType)
	}
	if p.WordPosition != "" {
		v.Set("word_position", p.WordPosition)
	}
	if len(p.WorkIDs) > 0 {
		ids := make([]string, 0, len(p.WorkIDs))
		for _, id := range p.WorkIDs {
			ids = append(ids, strconv.Itoa(id))
		}
		v.Set("work_ids", strings.Join(ids, ","))
	}
	if p.WordRoot != "" {
		v.Set("word_root", p.WordRoot)
	}
	if p.Limit != nil {
		v.Set("limit", strconv.Itoa(*p.Limit))
	}
	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}
	if p.SortBy != "" {
		v.Set("sort_by", p.SortBy)
	}
	if p.CollectionID != nil {
		v.Set("collection_id", strconv.Itoa(*p.CollectionID))
	}
	return v
}

// SearchResponse is the payload of GET /search.
type SearchResponse struct {
	Results     []SearchResult `json:"results"`
	UniqueWords []UniqueWord   `json:"unique_words"`
	TotalCount  int            `json:"total_count"`
	Limit       int            `json:"limit"`
	Offset      int            `json:"offset"`
	SearchTerm  string         `json:"search_term"`
	MatchType   string         `json:"match_type"`
}

// SearchResult is one word occurrence with its line, verse, and work context.
type SearchResult struct {
	WordID                  int     `json:"word_id"`
	WordText                string  `json:"word_text"`
	WordTextTransliteration *string `json:"word_text_transliteration"`
	WordRoot                *string `json:"word_root"`
	WordType                *string `json:"word_type"`
	WordPosition            int     `json:"word_position"`
	SandhiSplit             *string `json:"sandhi_split"`
	Meaning                 *string `json:"meaning"`
	LineID                  int     `json:"line_id"`
	LineNumber              int     `json:"line_number"`
	LineText                string  `json:"line_text"`
	VerseID                 int     `json:"verse_id"`
	VerseNumber             int     `json:"verse_number"`
	VerseType               *string `json:"verse_type"`
	VerseTypeTamil          *string `json:"verse_type_tamil"`
	WorkName                string  `json:"work_name"`
	WorkNameTamil           string  `json:"work_name_tamil"`
	HierarchyPath           *string `json:"hierarchy_path"`
	HierarchyPathTamil      *string `json:"hierarchy_path_tamil"`
}

// UniqueWord aggregates every occurrence of one distinct word.
type UniqueWord struct {
	WordText      string          `json:"word_text"`
	Count         int             `json:"count"`
	VerseCount    int             `json:"verse_count"`
	WorkBreakdown []WorkBreakdown `json:"work_breakdown"`
}

// WorkBreakdown counts a word's occurrences within one work.
type WorkBreakdown struct {
	WorkName      string `json:"work_name"`
	WorkNameTamil string `json:"work_name_tamil"`
	Count         int    `json:"count"`
}

// Work is a literary work.
type Work struct {
	WorkID               int     `json:"work_id"`
	WorkName             string  `json:"work_name"`
	WorkNameTamil        string  `json:"work_name_tamil"`
	Author               *string `json:"author"`
	AuthorTamil          *string `json:"author_tamil"`
	Period               *string `json:"period"`
	Description          *string `json:"description"`
	CanonicalPosition    *int    `json:"canonical_position"`
	ChronologyStartYear  *int    `json:"chronology_start_year"`
	ChronologyEndYear    *int    `json:"chronology_end_year"`
	ChronologyConfidence *string `json:"chronology_confidence"`
	ChronologyNotes      *string `json:"chronology_notes"`
	PrimaryCollectionID  *int    `json:"primary_collection_id,omitempty"`
}

// WordRoot is a distinct root with its usage count.
type WordRoot struct {
	WordRoot   string `json:"word_root"`
	UsageCount int    `json:"usage_count"`
}

// Verse is a complete verse with all of its lines.
type Verse struct {
	VerseID            int         `json:"verse_id"`
	VerseNumber        int         `json:"verse_number"`
	VerseType          *string     `json:"verse_type"`
	VerseTypeTamil     *string     `json:"verse_type_tamil"`
	WorkName           string      `json:"work_name"`
	WorkNameTamil      string      `json:"work_name_tamil"`
	HierarchyPath      *string     `json:"hierarchy_path"`
	HierarchyPathTamil *string     `json:"hierarchy_path_tamil"`
	Lines              []VerseLine `json:"lines"`
}

// VerseLine is one line of a verse.
type VerseLine struct {
	LineID                  int     `json:"line_id"`
	LineNumber              int     `json:"line_number"`
	LineText                string  `json:"line_text"`
	LineTextTransliteration *string `json:"line_text_transliteration"`
	LineTextTranslation     *string `json:"line_text_translation"`
}

// Statistics holds aggregate corpus counts.
type Statistics struct {
	TotalWorks    int `json:"total_works"`
	TotalVerses   int `json:"total_verses"`
	TotalLines    int `json:"total_lines"`
	TotalWords    int `json:"total_words"`
	DistinctWords int `json:"distinct_words"`
	UniqueRoots   int `json:"unique_roots"`
}

// Health is the liveness payload. The API answers 200 even when its database is
// down, so callers must inspect Status.
type Health struct {
	Status   string      `json:"status"`
	Database string      `json:"database"`
	Stats    *Statistics `json:"stats,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// Healthy reports whether the API and its database are up.
func (h Health) Healthy() bool {
	return h.Status == "healthy"
}

// Collection groups works, optionally under a parent collection.
type Collection struct {
	CollectionID        int               `json:"collection_id"`
	CollectionName      string            `json:"collection_name"`
	CollectionNameTamil *string           `json:"collection_name_tamil"`
	CollectionType      string            `json:"collection_type"`
	Description         *string           `json:"description"`
	ParentCollectionID  *int              `json:"parent_collection_id"`
	SortOrder           *int              `json:"sort_order"`
	ParentName          *string           `json:"parent_name,omitempty"`
	ParentNameTamil     *string           `json:"parent_name_tamil,omitempty"`
	WorkCount           int               `json:"work_count,omitempty"`
	Works               []CollectionWork  `json:"works,omitempty"`
	Children            []CollectionChild `json:"children,omitempty"`
}

// CollectionWork is a work as assigned to a collection.
type CollectionWork struct {
	WorkID               int     `json:"work_id"`
	WorkName             string  `json:"work_name"`
	WorkNameTamil        string  `json:"work_name_tamil"`
	PositionInCollection *int    `json:"position_in_collection"`
	IsPrimary            bool    `json:"is_primary"`
	Notes                *string `json:"notes"`
}

// CollectionChild is the summary of a direct sub-collection.
type CollectionChild struct {
	CollectionID        int     `json:"collection_id"`
	CollectionName      string  `json:"collection_name"`
	CollectionNameTamil *string `json:"collection_name_tamil"`
}

// CollectionTreeNode is a collection with its nested sub-collections.
type CollectionTreeNode struct {
	CollectionID        int                  `json:"collection_id"`
	CollectionName      string               `json:"collection_name"`
	CollectionNameTamil *string              `json:"collection_name_tamil"`
	CollectionType      string               `json:"collection_type"`
	Description         *string              `json:"description"`
	ParentCollectionID  *int                 `json:"parent_collection_id"`
	SortOrder           *int                 `json:"sort_order"`
	WorkCount           int                  `json:"work_count"`
	Children            []CollectionTreeNode `json:"children"`
}

// CollectionCreate is the body of POST /admin/collections.
type CollectionCreate struct {
	CollectionName      string  `json:"collection_name"`
	CollectionNameTamil *string `json:"collection_name_tamil,omitempty"`
	CollectionType      string  `json:"collection_type,omitempty"`
	Description         *string `json:"description,omitempty"`
	ParentCollectionID  *int    `json:"parent_collection_id,omitempty"`
	SortOrder           *int    `json:"sort_order,omitempty"`
}

// CollectionUpdate is the body of PUT /admin/collections/{id}. The backend
// keeps the stored name and type when they are null but overwrites every other
// column, so a nil field here clears it.
type CollectionUpdate struct {
	CollectionName      *string `json:"collection_name"`
	CollectionNameTamil *string `json:"collection_name_tamil"`
	CollectionType      *string `json:"collection_type"`
	Description         *string `json:"description"`
	ParentCollectionID  *int    `json:"parent_collection_id"`
	SortOrder           *int    `json:"sort_order"`
}

// UpdateOf returns the update that writes c back unchanged.
func UpdateOf(c Collection) CollectionUpdate {
	name, kind := c.CollectionName, c.CollectionType
	return CollectionUpdate{
		CollectionName:      &name,
		CollectionNameTamil: c.CollectionNameTamil,
		CollectionType:      &kind,
		Description:         c.Description,
		ParentCollectionID:  c.ParentCollectionID,
		SortOrder:           c.SortOrder,
	}
}

// CollectionChanges names the fields to alter on an existing collection. Nil
// fields keep their stored value. ClearParent moves the collection to the top
// level.
type CollectionChanges struct {
	CollectionName      *string
	CollectionNameTamil *string
	CollectionType      *string
	Description         *string
	ParentCollectionID  *int
	SortOrder           *int
	ClearParent         bool
}

// Apply overlays the changes onto u.
func (ch CollectionChanges) Apply(u CollectionUpdate) CollectionUpdate {
	if ch.CollectionName != nil {
		u.CollectionName = ch.CollectionName
	}
	if ch.CollectionNameTamil != nil {
		u.CollectionNameTamil = ch.CollectionNameTamil
	}
	if ch.CollectionType != nil {
		u.CollectionType = ch.CollectionType
	}
	if ch.Description != nil {
		u.Description = ch.Description
	}
	if ch.SortOrder != nil {
		u.SortOrder = ch.SortOrder
	}
	switch {
	case ch.ClearParent:
		u.ParentCollectionID = nil
	case ch.ParentCollectionID != nil:
		u.ParentCollectionID = ch.ParentCollectionID
	}
	return u
}

// CollectionFilter narrows GET /admin/collections. The tree shape has its own
// operation because it decodes to a different type.
type CollectionFilter struct {
	IncludeWorks bool
}

// Values encodes the filter; false flags are omitted.
func (f CollectionFilter) Values() url.Values {
	v := url.Values{}
	if f.IncludeWorks {
		v.Set("include_works", "true")
	}
	return v
}

// WorkAssignment is the body of POST /admin/collections/{id}/works.
type WorkAssignment struct {
	WorkID    int     `json:"work_id"`
	Position  *int    `json:"position,omitempty"`
	IsPrimary bool    `json:"is_primary"`
	Notes     *string `json:"notes,omitempty"`
}

// WorkLink is the stored association returned after assigning a work.
type WorkLink struct {
	WorkID               int     `json:"work_id"`
	CollectionID         int     `json:"collection_id"`
	PositionInCollection *int    `json:"position_in_collection"`
	IsPrimary            bool    `json:"is_primary"`
	Notes                *string `json:"notes"`
}

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the payload of a successful admin login.
type LoginResponse struct {
	Success bool      `json:"success"`
	User    AdminUser `json:"user"`
}

// AdminUser identifies the authenticated administrator.
type AdminUser struct {
	UserID   int    `json:"user_id,omitempty"`
	Username string `json:"username"`
}

// Message is the confirmation payload of mutating admin calls.
type Message struct {
	Message string `json:"message"`
}

// DesignatedCollection names the collection rooting the filter hierarchy.
type DesignatedCollection struct {
	CollectionID int `json:"collection_id"`
}
