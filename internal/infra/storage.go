package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// ImageBucket is the storage namespace for product images; it appears in
// every public URL and is how RemoveByURL recognizes its own objects.
const ImageBucket = "product-images"

var objectPathRe = regexp.MustCompile(`products/[^?]+`)

// ImageStore is a disk-backed object store for product images. Objects live
// under root/products/ and are served publicly under
// {baseURL}/static/product-images/.
type ImageStore struct {
	root    string
	baseURL string
}

func NewImageStore(root, baseURL string) *ImageStore {
	return &ImageStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// Root is the directory the router serves as the public bucket.
func (s *ImageStore) Root() string { return s.root }

// Save writes an object and returns its public URL.
func (s *ImageStore) Save(objectPath string, data []byte) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(objectPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write object: %w", err)
	}
	return s.PublicURL(objectPath), nil
}

// PublicURL resolves an object path to its public URL.
func (s *ImageStore) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/static/%s/%s", s.baseURL, ImageBucket, objectPath)
}

// RemoveByURL deletes the object a public URL points at. URLs that don't
// reference this bucket are ignored; removal failures are logged, never
// propagated — a stale image is not worth failing a product update over.
func (s *ImageStore) RemoveByURL(url string) {
	if url == "" || !strings.Contains(url, ImageBucket) {
		return
	}
	match := objectPathRe.FindString(url)
	if match == "" {
		return
	}
	full := filepath.Join(s.root, filepath.FromSlash(match))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		log.Error().Err(err).Str("object", match).Msg("storage: failed to remove image")
	}
}
