package wallpapers_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"image/color"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/lumenlab/vista/internal/config"
	"github.com/lumenlab/vista/internal/generation"
	"github.com/lumenlab/vista/internal/wallpapers"
	"github.com/lumenlab/vista/pkg/logging"
	"github.com/lumenlab/vista/pkg/pagination"
)

var wallpaperColumns = []string{
	"id", "prompt", "aspect_ratio",
	"image_url", "image_data", "preview_data",
	"created_at",
}

type fakeGenerator struct {
	image *generation.Image
	err   error

	gotPrompt string
}

func (g *fakeGenerator) Generate(ctx context.Context, req generation.Request) (*generation.Image, error) {
	g.gotPrompt = req.Prompt
	if g.err != nil {
		return nil, g.err
	}
	return g.image, nil
}

func testGenerationConfig(t *testing.T) config.GenerationConfig {
	t.Helper()
	cfg := config.GenerationConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("generation config finalize: %v", err)
	}
	return cfg
}

func newTestSystem(t *testing.T, generator generation.Generator) (wallpapers.System, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := logging.New(&logging.Config{Level: logging.LevelError, Format: logging.FormatText})
	pageCfg := pagination.Config{DefaultPageSize: 100, MaxPageSize: 100}

	return wallpapers.New(db, generator, logger, pageCfg, testGenerationConfig(t)), mock, db
}

// encodedTestImage returns a small PNG as base64, suitable for preview
// derivation.
func encodedTestImage(t *testing.T) string {
	t.Helper()

	img := imaging.New(64, 128, color.NRGBA{R: 30, G: 60, B: 120, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestGeneratePersistsWallpaper(t *testing.T) {
	generator := &fakeGenerator{image: &generation.Image{Data: encodedTestImage(t)}}
	sys, mock, _ := newTestSystem(t, generator)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wallpapers")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := sys.Generate(context.Background(), wallpapers.GenerateCommand{Prompt: "desert dunes"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if result.ID == uuid.Nil {
		t.Error("ID = uuid.Nil, want minted id")
	}
	if result.Prompt != "desert dunes" {
		t.Errorf("Prompt = %q, want original prompt", result.Prompt)
	}
	if result.AspectRatio != "9:16" {
		t.Errorf("AspectRatio = %q, want default 9:16", result.AspectRatio)
	}
	if result.PreviewData == "" {
		t.Error("PreviewData is empty, want derived preview")
	}
	if generator.gotPrompt == "desert dunes" {
		t.Error("generator received the raw prompt, want enhanced prompt")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGenerateInvalidPromptSkipsGenerator(t *testing.T) {
	generator := &fakeGenerator{image: &generation.Image{Data: "irrelevant"}}
	sys, _, _ := newTestSystem(t, generator)

	_, err := sys.Generate(context.Background(), wallpapers.GenerateCommand{Prompt: ""})
	if !errors.Is(err, wallpapers.ErrInvalidPrompt) {
		t.Fatalf("Generate() error = %v, want ErrInvalidPrompt", err)
	}
	if generator.gotPrompt != "" {
		t.Error("generator was called for an invalid command")
	}
}

func TestGenerateUnavailable(t *testing.T) {
	generator := &fakeGenerator{err: fmt.Errorf("%w: missing API key", generation.ErrUnavailable)}
	sys, _, _ := newTestSystem(t, generator)

	_, err := sys.Generate(context.Background(), wallpapers.GenerateCommand{Prompt: "dunes"})
	if !errors.Is(err, generation.ErrUnavailable) {
		t.Fatalf("Generate() error = %v, want ErrUnavailable", err)
	}
}

func TestGeneratePersistsAfterRequestCancellation(t *testing.T) {
	generator := &fakeGenerator{image: &generation.Image{Data: encodedTestImage(t)}}
	sys, mock, _ := newTestSystem(t, generator)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wallpapers")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Cancel the request context before the pipeline stores the result;
	// persistence runs on a detached context and must still succeed.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := sys.Generate(ctx, wallpapers.GenerateCommand{Prompt: "dunes"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result == nil || result.ID == uuid.Nil {
		t.Error("expected stored wallpaper despite cancelled request context")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListReverseChronological(t *testing.T) {
	sys, mock, _ := newTestSystem(t, &fakeGenerator{})

	now := time.Now().UTC()
	newer := uuid.New()
	older := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM public.wallpapers w")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY w.created_at DESC LIMIT 100 OFFSET 0")).
		WillReturnRows(sqlmock.NewRows(wallpaperColumns).
			AddRow(newer.String(), "second", "9:16", "", "data2", "", now).
			AddRow(older.String(), "first", "9:16", "", "data1", "", now.Add(-time.Hour)))

	result, err := sys.List(context.Background(), pagination.PageRequest{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if result.Total != 2 || len(result.Data) != 2 {
		t.Fatalf("result = %+v, want 2 wallpapers", result)
	}
	if result.Data[0].ID != newer {
		t.Error("List() order is not newest-first")
	}
	if result.PageSize != 100 {
		t.Errorf("PageSize = %d, want capped at 100", result.PageSize)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFind(t *testing.T) {
	sys, mock, _ := newTestSystem(t, &fakeGenerator{})
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE w.id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(wallpaperColumns).
			AddRow(id.String(), "dunes", "9:16", "", "data", "preview", time.Now().UTC()))

	result, err := sys.Find(context.Background(), id)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if result.ID != id || result.Prompt != "dunes" {
		t.Errorf("Find() = %+v", result)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFindNotFound(t *testing.T) {
	sys, mock, _ := newTestSystem(t, &fakeGenerator{})
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE w.id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(wallpaperColumns))

	_, err := sys.Find(context.Background(), id)
	if !errors.Is(err, wallpapers.ErrNotFound) {
		t.Fatalf("Find() error = %v, want ErrNotFound", err)
	}
}
