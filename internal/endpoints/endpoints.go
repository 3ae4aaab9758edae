// Package endpoints is the fixed catalog of REST operations the gateway can issue.
// Each Operation maps a local name to an HTTP method and a path template whose
// {placeholders} are filled with path-escaped identifiers.
package endpoints

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Operation describes one REST call.
type Operation struct {
	Name   string
	Method string
	Path   string
}

// Public endpoints.
var (
	Search                        = Operation{"search", http.MethodGet, "/search"}
	ListWorks                     = Operation{"listWorks", http.MethodGet, "/works"}
	ListWordRoots                 = Operation{"listWordRoots", http.MethodGet, "/roots"}
	GetVerse                      = Operation{"getVerse", http.MethodGet, "/verse/{verseId}"}
	GetStatistics                 = Operation{"getStatistics", http.MethodGet, "/stats"}
	HealthCheck                   = Operation{"healthCheck", http.MethodGet, "/health"}
	ListPublicCollections         = Operation{"listPublicCollections", http.MethodGet, "/collections"}
	GetPublicCollectionTree       = Operation{"getPublicCollectionTree", http.MethodGet, "/collections/tree"}
	ListCollectionWorks           = Operation{"listCollectionWorks", http.MethodGet, "/collections/{collectionId}/works"}
	GetDesignatedFilterCollection = Operation{"getDesignatedFilterCollection", http.MethodGet, "/settings/designated_filter_collection"}
)

// Admin endpoints.
var (
	AdminLogin               = Operation{"adminLogin", http.MethodPost, "/admin/login"}
	ListCollections          = Operation{"listCollections", http.MethodGet, "/admin/collections"}
	GetCollectionTree        = Operation{"getCollectionTree", http.MethodGet, "/admin/collections"}
	GetCollection            = Operation{"getCollection", http.MethodGet, "/admin/collections/{collectionId}"}
	CreateCollection         = Operation{"createCollection", http.MethodPost, "/admin/collections"}
	UpdateCollection         = Operation{"updateCollection", http.MethodPut, "/admin/collections/{collectionId}"}
	DeleteCollection         = Operation{"deleteCollection", http.MethodDelete, "/admin/collections/{collectionId}"}
	AddWorkToCollection      = Operation{"addWorkToCollection", http.MethodPost, "/admin/collections/{collectionId}/works"}
	RemoveWorkFromCollection = Operation{"removeWorkFromCollection", http.MethodDelete, "/admin/collections/{collectionId}/works/{workId}"}
	UpdateWorkPosition       = Operation{"updateWorkPosition", http.MethodPatch, "/admin/collections/{collectionId}/works/{workId}/position"}
)

// All returns every operation in the catalog.
func All() []Operation {
	return []Operation{
		Search,
		ListWorks,
		ListWordRoots,
		GetVerse,
		GetStatistics,
		HealthCheck,
		ListPublicCollections,
		GetPublicCollectionTree,
		ListCollectionWorks,
		GetDesignatedFilterCollection,
		AdminLogin,
		ListCollections,
		GetCollectionTree,
		GetCollection,
		CreateCollection,
		UpdateCollection,
		DeleteCollection,
		AddWorkToCollection,
		RemoveWorkFromCollection,
		UpdateWorkPosition,
	}
}

// Params returns the placeholder names in template order.
func (o Operation) Params() []string {
	var names []string
	rest := o.Path
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			return names
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return names
		}
		names = append(names, rest[start+1:start+end])
		rest = rest[start+end+1:]
	}
}

// Expand substitutes ids into the path template in order. It fails when the number
// of ids does not match the template or an id is empty.
func (o Operation) Expand(ids ...string) (string, error) {
	params := o.Params()
	if len(ids) != len(params) {
		return "", fmt.Errorf("%s: expected %d path identifiers, got %d", o.Name, len(params), len(ids))
	}

	path := o.Path
	for i, name := range params {
		if ids[i] == "" {
			return "", fmt.Errorf("%s: empty value for {%s}", o.Name, name)
		}
		path = strings.Replace(path, "{"+name+"}", url.PathEscape(ids[i]), 1)
	}
	return path, nil
}

func (o Operation) String() string {
	return o.Method + " " + o.Path
}
