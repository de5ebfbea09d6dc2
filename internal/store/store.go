package store

import (
	"context"
	"errors"

	"github.com/joescharf/gedref/internal/models"
)

// ErrNotFound is returned when a tree does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for imported trees.
type Store interface {
	// Trees
	CreateTree(ctx context.Context, t *models.Tree) error
	GetTree(ctx context.Context, id string) (*models.Tree, error)
	GetTreeByName(ctx context.Context, name string) (*models.Tree, error)
	ListTrees(ctx context.Context) ([]*models.Tree, error)
	UpdateTree(ctx context.Context, t *models.Tree) error
	DeleteTree(ctx context.Context, id string) error

	// Records
	ReplaceRecords(ctx context.Context, treeID string, records []models.TreeRecord) error
	SaveImport(ctx context.Context, t *models.Tree, records []models.TreeRecord) error
	Stats(ctx context.Context, treeID string) (*models.TreeStats, error)
	MediaTypeCounts(ctx context.Context, treeID string, limit int) ([]models.MediaTypeCount, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
