package bucket

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"

	"github.com/bbrks/go-blurhash"
	"github.com/google/uuid"
	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
	"github.com/minio/minio-go/v7"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	cacheControl = "max-age=31536000"

	blurHashX     = 4
	blurHashY     = 3
	blurHashWidth = 32
)

// UploadImage stores an image under <base_folder>/<accountId>/<uuid>.<ext>
// and returns its public URL. Raster images also get a BlurHash placeholder.
func (b *Bucket) UploadImage(ctx context.Context, accountId string, r io.Reader, size int64, contentType string) (*entity.UploadedImage, error) {
	if b.Client == nil {
		return nil, ErrNotConfigured
	}
	data, err := io.ReadAll(io.LimitReader(r, size))
	if err != nil {
		return nil, fmt.Errorf("can't read image: %w", err)
	}

	ct, ok := detectContentType(data, contentType)
	if !ok {
		return nil, gerr.Validation(fmt.Sprintf("Unsupported file type %q. Allowed: jpeg, png, gif, webp, svg.", ct))
	}

	img := &entity.UploadedImage{
		Key: b.constructFullPath(accountId, uuid.NewString(), fileExtensionFromContentType(ct)),
	}
	if ct != contentTypeSVG {
		img.BlurHash, err = blurHashOf(data)
		if err != nil {
			// the image is still usable without a placeholder
			slog.Default().WarnContext(ctx, "can't compute blurhash",
				slog.String("key", img.Key),
				slog.String("err", err.Error()),
			)
		}
	}

	if err := b.put(ctx, img.Key, data, ct); err != nil {
		return nil, err
	}
	img.URL = b.getCDNURL(img.Key)
	return img, nil
}

func (b *Bucket) put(ctx context.Context, key string, data []byte, contentType string) error {
	r := bytes.NewReader(data)
	userMetaData := map[string]string{"x-amz-acl": "public-read"}

	_, err := b.Client.PutObject(ctx, b.Config.S3BucketName, key, r,
		int64(r.Len()), minio.PutObjectOptions{
			ContentType:  contentType,
			CacheControl: cacheControl,
			UserMetadata: userMetaData,
		},
	)
	if err != nil {
		return fmt.Errorf("error putting object: %w", err)
	}
	return nil
}

// blurHashOf decodes the image and hashes a small thumbnail of it.
func blurHashOf(data []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return blurhash.Encode(blurHashX, blurHashY, thumbnail(src, blurHashWidth))
}

func thumbnail(src image.Image, width int) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= width {
		return src
	}
	height := max(1, bounds.Dy()*width/bounds.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}
