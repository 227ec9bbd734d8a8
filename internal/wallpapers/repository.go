package wallpapers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lumenlab/vista/internal/config"
	"github.com/lumenlab/vista/internal/generation"
	"github.com/lumenlab/vista/pkg/pagination"
	"github.com/lumenlab/vista/pkg/query"
	"github.com/lumenlab/vista/pkg/repository"
)

const insertWallpaperSQL = `
INSERT INTO wallpapers (id, prompt, aspect_ratio, image_url, image_data, preview_data, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type repo struct {
	db         *sql.DB
	generator  generation.Generator
	logger     *slog.Logger
	pagination pagination.Config
	generation config.GenerationConfig
}

// New creates the wallpaper system backed by Postgres and the provided
// image generator.
func New(db *sql.DB, generator generation.Generator, logger *slog.Logger, pageCfg pagination.Config, genCfg config.GenerationConfig) System {
	return &repo{
		db:         db,
		generator:  generator,
		logger:     logger.With("system", "wallpapers"),
		pagination: pageCfg,
		generation: genCfg,
	}
}

// Generate runs the full pipeline: enhance the prompt, call the generator,
// derive a preview, and persist the result. Persistence runs on a context
// detached from the request so a completed generation is never lost to a
// client disconnect.
func (r *repo) Generate(ctx context.Context, cmd GenerateCommand) (*Wallpaper, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	image, err := r.generator.Generate(ctx, generation.Request{
		Prompt:      cmd.EnhancedPrompt(),
		AspectRatio: cmd.AspectRatio,
		Megapixels:  cmd.Megapixels,
	})
	if err != nil {
		return nil, err
	}

	if max := r.generation.MaxImageSizeBytes(); max > 0 && decodedSize(image.Data) > max {
		return nil, ErrImageTooLarge
	}

	preview := ""
	if image.Data != "" {
		preview, err = generation.Preview(image.Data, r.generation.PreviewMaxSide)
		if err != nil {
			r.logger.Warn("preview derivation failed", "error", err)
			preview = ""
		}
	}

	wallpaper := Wallpaper{
		ID:          uuid.New(),
		Prompt:      cmd.Prompt,
		AspectRatio: cmd.AspectRatio,
		ImageURL:    image.URL,
		ImageData:   image.Data,
		PreviewData: preview,
		CreatedAt:   time.Now().UTC(),
	}

	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	stored, err := repository.WithTx(storeCtx, r.db, func(tx *sql.Tx) (Wallpaper, error) {
		_, err := tx.ExecContext(storeCtx, insertWallpaperSQL,
			wallpaper.ID, wallpaper.Prompt, wallpaper.AspectRatio,
			wallpaper.ImageURL, wallpaper.ImageData, wallpaper.PreviewData,
			wallpaper.CreatedAt,
		)
		if err != nil {
			return Wallpaper{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}
		return wallpaper, nil
	})
	if err != nil {
		return nil, fmt.Errorf("store wallpaper: %w", err)
	}

	r.logger.Info("wallpaper generated", "id", stored.ID, "aspect_ratio", stored.AspectRatio)
	return &stored, nil
}

// List returns stored wallpapers in reverse-chronological order.
func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Wallpaper], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(wallpaperProjection, defaultSort).
		WhereContains("Prompt", page.Search)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count wallpapers: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanWallpaper)
	if err != nil {
		return nil, fmt.Errorf("query wallpapers: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

// Find returns a single wallpaper by id.
func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Wallpaper, error) {
	findSQL, args := query.
		NewBuilder(wallpaperProjection, defaultSort).
		BuildSingle("ID", id)

	wallpaper, err := repository.QueryOne(ctx, r.db, findSQL, args, scanWallpaper)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &wallpaper, nil
}

// decodedSize estimates the byte size of base64 content.
func decodedSize(encoded string) int64 {
	return int64(len(encoded)) * 3 / 4
}
