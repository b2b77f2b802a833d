package search

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	bsearch "github.com/blevesearch/bleve/v2/search"

	"github.com/docstack/docsearch/internal/indexing"
)

// Index abstracts the bleve index operations the engine needs, so tests can
// substitute a mock.
type Index interface {
	// Search executes a search request.
	Search(req *bleve.SearchRequest) (*bleve.SearchResult, error)

	// DocCount returns the number of documents in the index.
	DocCount() (uint64, error)

	// Close closes the index.
	Close() error
}

// bleveIndex wraps a bleve.Index to implement Index.
type bleveIndex struct {
	index bleve.Index
}

// NewBleveIndex wraps a bleve.Index.
func NewBleveIndex(index bleve.Index) Index {
	return &bleveIndex{index: index}
}

func (w *bleveIndex) Search(req *bleve.SearchRequest) (*bleve.SearchResult, error) {
	return w.index.Search(req)
}

func (w *bleveIndex) DocCount() (uint64, error) {
	return w.index.DocCount()
}

func (w *bleveIndex) Close() error {
	return w.index.Close()
}

// indexMapping indexes title, pageTitle and content as analyzed text, and
// everything else verbatim so locale supports exact filtering.
func indexMapping() mapping.IndexMapping {
	text := bleve.NewTextFieldMapping()

	exact := bleve.NewTextFieldMapping()
	exact.Analyzer = keyword.Name

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("title", text)
	doc.AddFieldMappingsAt("pageTitle", text)
	doc.AddFieldMappingsAt("content", text)
	doc.AddFieldMappingsAt("id", exact)
	doc.AddFieldMappingsAt("groupTitle", exact)
	doc.AddFieldMappingsAt("path", exact)
	doc.AddFieldMappingsAt("locale", exact)

	im := bleve.NewIndexMapping()
	im.DefaultMapping = doc
	return im
}

// BuildIndex loads the serialized documents into an in-memory bleve index.
func BuildIndex(docs []indexing.SearchDocument) (Index, error) {
	index, err := bleve.NewMemOnly(indexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory index: %w", err)
	}

	batch := index.NewBatch()
	for i, doc := range docs {
		if err := batch.Index(doc.ID, doc); err != nil {
			index.Close()
			return nil, fmt.Errorf("failed to add document %s to batch: %w", doc.ID, err)
		}

		// Submit batch every 100 documents
		if (i+1)%100 == 0 {
			if err := index.Batch(batch); err != nil {
				index.Close()
				return nil, fmt.Errorf("failed to index batch: %w", err)
			}
			batch = index.NewBatch()
		}
	}
	if batch.Size() > 0 {
		if err := index.Batch(batch); err != nil {
			index.Close()
			return nil, fmt.Errorf("failed to index final batch: %w", err)
		}
	}

	return NewBleveIndex(index), nil
}

// docFromHit rebuilds a SearchDocument from a search hit's stored fields.
func docFromHit(hit *bsearch.DocumentMatch) indexing.SearchDocument {
	doc := indexing.SearchDocument{
		ID: hit.ID,
	}

	if title, ok := hit.Fields["title"].(string); ok {
		doc.Title = title
	}
	if pageTitle, ok := hit.Fields["pageTitle"].(string); ok {
		doc.PageTitle = pageTitle
	}
	if groupTitle, ok := hit.Fields["groupTitle"].(string); ok {
		doc.GroupTitle = groupTitle
	}
	if content, ok := hit.Fields["content"].(string); ok {
		doc.Content = content
	}
	if path, ok := hit.Fields["path"].(string); ok {
		doc.Path = path
	}
	if locale, ok := hit.Fields["locale"].(string); ok {
		doc.Locale = locale
	}

	return doc
}
