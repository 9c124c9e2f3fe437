// Package tablo hosts the paginated grid widget over a searchable store.
package tablo

import (
	nt "tablo/entity"
)

// Store specifies a backing datastore.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// Fields returns the fields available for columns and search
	Fields() (fields []nt.Field, err error)
	// SetView sets the filter applied by Source
	SetView(filter nt.Filter) (err error)
	// Source returns filtered rows projected onto columns, all when empty
	Source(columns []string) (src nt.TableSource, err error)
}

// Indexer is a Store that can show a field as the index.
type Indexer interface {
	SetIndex(field string) (err error)
}

// Host receives the widget's rendered height.
type Host interface {
	SetFrameHeight(height int)
}

// Config holds settings that override the layout file.
type Config struct {
	Layout   string
	PageSize int
	RTL      bool
}
