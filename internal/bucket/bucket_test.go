package bucket

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	gerr "github.com/jekabolt/waitlister/internal/errors"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type putCall struct {
	bucket, key string
	body        []byte
	opts        minio.PutObjectOptions
}

type fakePutter struct {
	calls []putCall
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, bucketName, objectName string, reader io.Reader, _ int64,
	opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	body, _ := io.ReadAll(reader)
	f.calls = append(f.calls, putCall{bucket: bucketName, key: objectName, body: body, opts: opts})
	return minio.UploadInfo{Key: objectName}, f.err
}

func testBucket(p objectPutter) *Bucket {
	return &Bucket{
		Client: p,
		Config: &Config{
			S3BucketName:  "waitlists",
			S3Endpoint:    "fra1.digitaloceanspaces.com",
			BaseFolder:    "uploads",
			PublicBaseURL: "https://cdn.example.com/",
		},
	}
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadImagePNG(t *testing.T) {
	p := &fakePutter{}
	b := testBucket(p)
	data := testPNG(t, 120, 80)

	img, err := b.UploadImage(context.Background(), "acc-1", bytes.NewReader(data), int64(len(data)), "image/png")
	require.NoError(t, err)

	require.Len(t, p.calls, 1)
	call := p.calls[0]
	assert.Equal(t, "waitlists", call.bucket)
	assert.True(t, strings.HasPrefix(call.key, "uploads/acc-1/"))
	assert.True(t, strings.HasSuffix(call.key, ".png"))
	assert.Equal(t, data, call.body)
	assert.Equal(t, "image/png", call.opts.ContentType)
	assert.Equal(t, cacheControl, call.opts.CacheControl)
	assert.Equal(t, "public-read", call.opts.UserMetadata["x-amz-acl"])

	assert.Equal(t, call.key, img.Key)
	assert.Equal(t, "https://cdn.example.com/"+call.key, img.URL)
	assert.NotEmpty(t, img.BlurHash)
}

func TestUploadImageSVG(t *testing.T) {
	p := &fakePutter{}
	b := testBucket(p)
	data := []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"></svg>`)

	img, err := b.UploadImage(context.Background(), "acc-1", bytes.NewReader(data), int64(len(data)), "image/svg+xml")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(img.Key, ".svg"))
	assert.Empty(t, img.BlurHash)
	assert.Equal(t, contentTypeSVG, p.calls[0].opts.ContentType)
}

func TestUploadImageRejectsUnsupported(t *testing.T) {
	p := &fakePutter{}
	b := testBucket(p)
	data := []byte("just some text")

	_, err := b.UploadImage(context.Background(), "acc-1", bytes.NewReader(data), int64(len(data)), "image/png")
	assert.ErrorIs(t, err, gerr.ErrValidation)
	assert.Empty(t, p.calls)
}

func TestUploadImagePutError(t *testing.T) {
	p := &fakePutter{err: errors.New("boom")}
	b := testBucket(p)
	data := testPNG(t, 8, 8)

	_, err := b.UploadImage(context.Background(), "acc-1", bytes.NewReader(data), int64(len(data)), "image/png")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, gerr.ErrValidation)
}

func TestDetectContentType(t *testing.T) {
	ct, ok := detectContentType([]byte("<svg></svg>"), "text/plain")
	assert.False(t, ok, "svg needs a declared svg type")
	assert.Equal(t, "text/plain", ct)

	ct, ok = detectContentType([]byte("GIF89a\x01\x00\x01\x00"), "")
	assert.True(t, ok)
	assert.Equal(t, contentTypeGIF, ct)
}

func TestFileExtensionFromContentType(t *testing.T) {
	assert.Equal(t, "jpg", fileExtensionFromContentType("image/jpeg"))
	assert.Equal(t, "webp", fileExtensionFromContentType("image/webp"))
	assert.Equal(t, "svg", fileExtensionFromContentType("image/svg+xml"))
	assert.Equal(t, "bmp", fileExtensionFromContentType("image/bmp"))
}

func TestGetCDNURL(t *testing.T) {
	b := testBucket(nil)
	assert.Equal(t, "https://cdn.example.com/a/b.png", b.getCDNURL("a/b.png"))

	b.PublicBaseURL = ""
	assert.Equal(t, "https://waitlists.fra1.digitaloceanspaces.com/a/b.png", b.getCDNURL("a/b.png"))
}

func TestThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 300, 150))
	th := thumbnail(src, blurHashWidth)
	assert.Equal(t, blurHashWidth, th.Bounds().Dx())
	assert.Equal(t, 16, th.Bounds().Dy())

	small := image.NewRGBA(image.Rect(0, 0, 10, 10))
	assert.Same(t, small, thumbnail(small, blurHashWidth))
}

func TestUploadImageNotConfigured(t *testing.T) {
	b := &Bucket{Config: &Config{}}
	_, err := b.UploadImage(context.Background(), "acc-1", bytes.NewReader([]byte("x")), 1, "image/png")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
