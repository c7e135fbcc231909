package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"sync"

	"github.com/die-net/lrucache"
)

// ImageCache provides thread-safe caching of image files to avoid redundant
// disk reads.
//
// The cache keeps the raw file bytes keyed by path in a size-bounded LRU, so
// memory stays under maxBytes no matter how many files pass through. Each
// Load decodes from the cached bytes, which means callers always receive an
// image they may modify freely.
//
// # Example Usage
//
//	cache := imaging.NewImageCache(64 << 20)
//	img, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cache.Evict("/path/to/image.png") // Optional: free memory
type ImageCache struct {
	mu       sync.RWMutex
	maxBytes int64
	files    *lrucache.LruCache
}

// NewImageCache creates an empty cache holding at most maxBytes of file
// data. Files larger than maxBytes are read but not cached.
func NewImageCache(maxBytes int64) *ImageCache {
	return &ImageCache{
		maxBytes: maxBytes,
		files:    lrucache.New(maxBytes, 0),
	}
}

// Load decodes the image at path, reading the file only when it is not
// already cached.
//
// Supported formats are PNG, JPEG and GIF. The image is cached using the
// exact path string provided; different spellings of the same file get
// separate entries.
func (c *ImageCache) Load(path string) (image.Image, error) {
	data, err := c.read(path)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func (c *ImageCache) read(path string) ([]byte, error) {
	c.mu.RLock()
	files := c.files
	c.mu.RUnlock()

	if data, ok := files.Get(path); ok {
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	if int64(len(data)) <= c.maxBytes {
		files.Set(path, data)
	}
	return data, nil
}

// Clear removes all files from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.files = lrucache.New(c.maxBytes, 0)
	c.mu.Unlock()
}

// Evict removes a specific file from the cache by its path.
func (c *ImageCache) Evict(path string) {
	c.mu.RLock()
	c.files.Delete(path)
	c.mu.RUnlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format: "png", "jpeg", "gif", or "unknown".
	// Detection is based on file extension, not file contents.
	Format string `json:"format"`

	// HasAlpha indicates whether the image has an alpha (transparency) channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and returns its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
	}

	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image file.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
