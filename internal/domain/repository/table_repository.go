package repository

import (
	"github.com/tokyo-toilet-data/internal/domain"
)

// TableRepository abstracts CSV dataset storage
type TableRepository interface {
	// Load reads a whole dataset into memory
	Load(path string) (*domain.Table, error)

	// Save writes a dataset, creating parent directories on demand
	Save(path string, table *domain.Table) error

	// Exists reports whether a dataset is present
	Exists(path string) bool

	// List returns the dataset paths directly under a directory
	List(dir string) ([]string, error)
}
