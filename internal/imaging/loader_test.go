package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/bmp"
)

// createTestPNG writes a small PNG to a temp file and returns its path.
func createTestPNG(t *testing.T, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 25), uint8(y * 25), 128, 255})
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestImageCache_LoadAndCache(t *testing.T) {
	cache := NewImageCache(nil)
	path := createTestPNG(t, 8, 6)

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if first.Bounds().Dx() != 8 || first.Bounds().Dy() != 6 {
		t.Errorf("dimensions: got %dx%d, want 8x6", first.Bounds().Dx(), first.Bounds().Dy())
	}

	// Second load must come from the cache: delete the file first.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}
	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("cached Load failed: %v", err)
	}
	if first != second {
		t.Error("second Load did not return the cached image")
	}
}

func TestImageCache_Evict(t *testing.T) {
	cache := NewImageCache(nil)
	path := createTestPNG(t, 4, 4)

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}

	if _, err := cache.Load(path); err == nil {
		t.Error("Load after Evict should hit the filesystem and fail")
	}

	// Evicting an unknown path is a no-op.
	cache.Evict("/no/such/entry.png")
}

func TestImageCache_Clear(t *testing.T) {
	cache := NewImageCache(nil)
	path := createTestPNG(t, 4, 4)

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Clear()
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}

	if _, err := cache.Load(path); err == nil {
		t.Error("Load after Clear should hit the filesystem and fail")
	}
}

func TestImageCache_ConcurrentLoad(t *testing.T) {
	cache := NewImageCache(nil)
	path := createTestPNG(t, 16, 16)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				t.Errorf("concurrent Load failed: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestImageCache_MissingFile(t *testing.T) {
	cache := NewImageCache(nil)

	_, err := cache.Load("/nonexistent/image.png")
	if err == nil {
		t.Fatal("Load should fail for a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should match fs.ErrNotExist, got: %v", err)
	}
}

func TestImageCache_UndecodableFile(t *testing.T) {
	cache := NewImageCache(nil)

	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not image data"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := cache.Load(path)
	if err == nil {
		t.Fatal("Load should fail for undecodable data")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Error("decode failures must not look like missing files")
	}
}

func TestImageCache_LoadBMP(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			img.Set(x, y, color.RGBA{200, 100, 50, 255})
		}
	}

	path := filepath.Join(t.TempDir(), "test.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("failed to encode BMP: %v", err)
	}
	f.Close()

	cache := NewImageCache(nil)
	loaded, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Bounds().Dx() != 6 || loaded.Bounds().Dy() != 4 {
		t.Errorf("dimensions: got %dx%d, want 6x4", loaded.Bounds().Dx(), loaded.Bounds().Dy())
	}
}

func TestLoadImageInfo(t *testing.T) {
	cache := NewImageCache(nil)
	path := createTestPNG(t, 12, 7)

	info, err := LoadImageInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 12 || info.Height != 7 {
		t.Errorf("dimensions: got %dx%d, want 12x7", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %q, want %q", info.Format, "png")
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("color depth: got %q, want %q", info.ColorDepth, "8-bit")
	}
}

func TestGetDimensions(t *testing.T) {
	cache := NewImageCache(nil)
	path := createTestPNG(t, 20, 30)

	dims, err := GetDimensions(cache, path)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 20 || dims.Height != 30 {
		t.Errorf("dimensions: got %dx%d, want 20x30", dims.Width, dims.Height)
	}
}
