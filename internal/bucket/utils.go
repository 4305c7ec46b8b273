package bucket

import (
	"bytes"
	"fmt"
	"net/http"
	"path"
	"strings"
)

const (
	contentTypeJPEG = "image/jpeg"
	contentTypePNG  = "image/png"
	contentTypeGIF  = "image/gif"
	contentTypeWEBP = "image/webp"
	contentTypeSVG  = "image/svg+xml"
)

var extensions = map[string]string{
	contentTypeJPEG: "jpg",
	contentTypePNG:  "png",
	contentTypeGIF:  "gif",
	contentTypeWEBP: "webp",
	contentTypeSVG:  "svg",
}

// detectContentType sniffs data. SVG sniffs as text, so the declared type is
// trusted for it only when the body actually holds an svg element.
func detectContentType(data []byte, declared string) (string, bool) {
	ct := http.DetectContentType(data)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	if _, ok := extensions[ct]; ok && ct != contentTypeSVG {
		return ct, true
	}
	if strings.HasPrefix(ct, "text/") &&
		strings.EqualFold(strings.TrimSpace(declared), contentTypeSVG) &&
		bytes.Contains(bytes.ToLower(data), []byte("<svg")) {
		return contentTypeSVG, true
	}
	return ct, false
}

func fileExtensionFromContentType(contentType string) string {
	if ext, ok := extensions[contentType]; ok {
		return ext
	}
	parts := strings.Split(contentType, "/")
	if len(parts) > 1 {
		return parts[1]
	}
	return contentType
}

func (b *Bucket) constructFullPath(folder, fileName, ext string) string {
	return path.Clean(path.Join(b.BaseFolder, folder, fileName) + "." + ext)
}

func (b *Bucket) getCDNURL(filePath string) string {
	if b.PublicBaseURL != "" {
		return strings.TrimRight(b.PublicBaseURL, "/") + "/" + filePath
	}
	return fmt.Sprintf("https://%s.%s/%s", b.S3BucketName, b.S3Endpoint, filePath)
}
