package domain

import "context"

// Catalog covers the public read-only endpoints of the search API.
type Catalog interface {
	Search(ctx context.Context, params SearchParams) (*SearchResponse, error)
	ListWorks(ctx context.Context, sortBy string) ([]Work, error)
	// ListWordRoots sends q only when term is non-empty.
	ListWordRoots(ctx context.Context, term string) ([]WordRoot, error)
	GetVerse(ctx context.Context, verseID int) (*Verse, error)
	GetStatistics(ctx context.Context) (*Statistics, error)
	HealthCheck(ctx context.Context) (*Health, error)
	ListPublicCollections(ctx context.Context) ([]Collection, error)
	// GetPublicCollectionTree returns the whole tree when root is nil.
	GetPublicCollectionTree(ctx context.Context, root *int) ([]CollectionTreeNode, error)
	ListCollectionWorks(ctx context.Context, collectionID int) ([]Work, error)
	GetDesignatedFilterCollection(ctx context.Context) (*DesignatedCollection, error)
}

// AdminAuthenticator forwards admin credentials to the API.
type AdminAuthenticator interface {
	AdminLogin(ctx context.Context, username, password string) (*LoginResponse, error)
}

// CollectionManager covers the admin collection endpoints.
type CollectionManager interface {
	ListCollections(ctx context.Context, filter CollectionFilter) ([]Collection, error)
	GetCollectionTree(ctx context.Context) ([]CollectionTreeNode, error)
	GetCollection(ctx context.Context, collectionID int) (*Collection, error)
	CreateCollection(ctx context.Context, payload CollectionCreate) (*Collection, error)
	UpdateCollection(ctx context.Context, collectionID int, payload CollectionUpdate) (*Collection, error)
	DeleteCollection(ctx context.Context, collectionID int) (*Message, error)
	AddWorkToCollection(ctx context.Context, collectionID int, payload WorkAssignment) (*WorkLink, error)
	RemoveWorkFromCollection(ctx context.Context, collectionID, workID int) (*Message, error)
	UpdateWorkPosition(ctx context.Context, collectionID, workID, position int) (*Message, error)
}
