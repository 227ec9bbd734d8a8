package wallpapers

import (
	"github.com/lumenlab/vista/pkg/query"
	"github.com/lumenlab/vista/pkg/repository"
)

var wallpaperProjection = query.
	NewProjectionMap("public", "wallpapers", "w").
	Project("id", "ID").
	Project("prompt", "Prompt").
	Project("aspect_ratio", "AspectRatio").
	Project("image_url", "ImageURL").
	Project("image_data", "ImageData").
	Project("preview_data", "PreviewData").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

func scanWallpaper(s repository.Scanner) (Wallpaper, error) {
	var w Wallpaper
	err := s.Scan(
		&w.ID, &w.Prompt, &w.AspectRatio,
		&w.ImageURL, &w.ImageData, &w.PreviewData,
		&w.CreatedAt,
	)
	return w, err
}
