package assets

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"log/slog"

	// register decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/rocketscienceinc/ecopuzzle-backend/internal/apperror"
)

// Loader decodes puzzle images from a file system.
type Loader struct {
	logger *slog.Logger
	fsys   fs.FS
}

func NewLoader(logger *slog.Logger, fsys fs.FS) *Loader {
	return &Loader{
		logger: logger.With("component", "assets"),
		fsys:   fsys,
	}
}

// Load returns the decoded image for asset. Every failure wraps apperror.ErrAssetLoad.
func (that *Loader) Load(ctx context.Context, asset string) (image.Image, error) {
	log := that.logger.With("method", "Load", "asset", asset)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrAssetLoad, err)
	}

	file, err := that.fsys.Open(asset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrAssetLoad, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", apperror.ErrAssetLoad, asset, err)
	}

	// the player may have left while the image was decoding
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrAssetLoad, err)
	}

	log.Debug("asset decoded", "format", format, "bounds", img.Bounds().String())

	return img, nil
}
