package wallpapers

import (
	"context"

	"github.com/google/uuid"

	"github.com/lumenlab/vista/pkg/pagination"
)

// System defines the interface for wallpaper generation and retrieval.
type System interface {
	// Generate produces a wallpaper for the command, persists it, and
	// returns the stored record.
	Generate(ctx context.Context, cmd GenerateCommand) (*Wallpaper, error)

	// List returns stored wallpapers, newest first.
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Wallpaper], error)

	// Find returns a single wallpaper by id.
	Find(ctx context.Context, id uuid.UUID) (*Wallpaper, error)
}
