package main

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/bodgit/sevenzip"
	"github.com/hajimehoshi/ebiten/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nwaples/rardecode"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

type ImagePath struct {
	Path        string // Local file path or archive:entry format
	ArchivePath string // Empty for regular files, path to archive for entries
	EntryPath   string // Empty for regular files, path within archive for entries
}

func isArchiveExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".rar", ".7z":
		return true
	default:
		return false
	}
}

func isSupportedExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".webp", ".bmp", ".gif":
		return true
	default:
		return false
	}
}

// NavigationDirection tells the preloader which neighbours matter most
type NavigationDirection int

const (
	NavigationForward NavigationDirection = iota
	NavigationBackward
	NavigationJump
)

// navigationDirection classifies a move from one index to another
func navigationDirection(from, to int) NavigationDirection {
	switch to - from {
	case 1:
		return NavigationForward
	case -1:
		return NavigationBackward
	default:
		return NavigationJump
	}
}

// PreloadRequest represents a request to preload images around an index
type PreloadRequest struct {
	Index     int
	Direction NavigationDirection
}

// PreloadStats provides statistics about preloading
type PreloadStats struct {
	LoadedCount   int
	FailedCount   int
	LastDirection NavigationDirection
}

// PreloadManager decodes images around the active one in the background so
// swipe neighbours are ready when they slide in
type PreloadManager struct {
	requestChan  chan PreloadRequest
	ctx          context.Context
	cancel       context.CancelFunc
	imageManager *ImageManager
	mu           sync.RWMutex
	stats        PreloadStats
	maxPreload   int
	enabled      bool
}

// NewPreloadManager creates a PreloadManager and starts its worker
func NewPreloadManager(imageManager *ImageManager, maxPreload int) *PreloadManager {
	ctx, cancel := context.WithCancel(context.Background())
	pm := &PreloadManager{
		requestChan:  make(chan PreloadRequest, 16),
		ctx:          ctx,
		cancel:       cancel,
		imageManager: imageManager,
		maxPreload:   maxPreload,
		enabled:      true,
	}

	go pm.worker()

	return pm
}

func (pm *PreloadManager) SetEnabled(enabled bool) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.enabled = enabled
}

func (pm *PreloadManager) IsEnabled() bool {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return pm.enabled
}

func (pm *PreloadManager) GetStats() PreloadStats {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return pm.stats
}

func (pm *PreloadManager) Stop() {
	pm.cancel()
}

// StartPreload replaces any queued request with one around currentIdx
func (pm *PreloadManager) StartPreload(currentIdx int, direction NavigationDirection) {
	if !pm.IsEnabled() {
		return
	}

drain:
	for {
		select {
		case <-pm.requestChan:
		default:
			break drain
		}
	}

	select {
	case pm.requestChan <- PreloadRequest{Index: currentIdx, Direction: direction}:
	default:
		debugLog("Preload request channel full, skipping preload request")
	}
}

func (pm *PreloadManager) worker() {
	for {
		select {
		case <-pm.ctx.Done():
			return
		case req := <-pm.requestChan:
			if pm.IsEnabled() {
				pm.processPreloadRequest(req)
			}
		}
	}
}

func (pm *PreloadManager) processPreloadRequest(req PreloadRequest) {
	pm.mu.Lock()
	pm.stats.LastDirection = req.Direction
	pm.mu.Unlock()

	count := pm.imageManager.Len()
	if count == 0 {
		return
	}

	for _, idx := range preloadIndices(req.Index, req.Direction, count, pm.maxPreload) {
		select {
		case <-pm.ctx.Done():
			return
		default:
			pm.preloadImage(idx)
		}
	}
}

// preloadIndices lists the indices to decode after landing on currentIdx.
// Both direct neighbours always come first since a swipe can go either way;
// the remaining budget follows the direction of travel.
func preloadIndices(currentIdx int, direction NavigationDirection, count, maxPreload int) []int {
	var indices []int
	add := func(idx int) {
		if idx < 0 || idx >= count || idx == currentIdx || len(indices) >= maxPreload {
			return
		}
		for _, seen := range indices {
			if seen == idx {
				return
			}
		}
		indices = append(indices, idx)
	}

	switch direction {
	case NavigationBackward:
		add(currentIdx - 1)
		add(currentIdx + 1)
		for i := 2; i <= maxPreload; i++ {
			add(currentIdx - i)
		}
	case NavigationForward:
		add(currentIdx + 1)
		add(currentIdx - 1)
		for i := 2; i <= maxPreload; i++ {
			add(currentIdx + i)
		}
	default:
		for i := 1; i <= maxPreload; i++ {
			add(currentIdx + i)
			add(currentIdx - i)
		}
	}

	return indices
}

func (pm *PreloadManager) preloadImage(idx int) {
	imagePath, ok := pm.imageManager.getPath(idx)
	if !ok {
		return
	}
	if pm.imageManager.cache.Contains(imagePath.Path) {
		return
	}

	img, err := loadImage(imagePath)
	if err != nil {
		pm.mu.Lock()
		pm.stats.FailedCount++
		pm.mu.Unlock()
		debugLog("Preload failed for [%d] %s: %v", idx+1, imagePath.Path, err)
		return
	}

	pm.imageManager.cache.Add(imagePath.Path, img)

	pm.mu.Lock()
	pm.stats.LoadedCount++
	pm.mu.Unlock()

	debugLog("Preloaded [%d] %s (cache: %d items)", idx+1, imagePath.Path, pm.imageManager.cache.Len())
}

// ImageManager is the viewer's image sequence. It resolves dimensions from
// image headers and keeps decoded textures in an LRU cache.
type ImageManager struct {
	paths          []ImagePath
	cache          *lru.Cache[string, *ebiten.Image]
	mu             sync.RWMutex
	preloadManager *PreloadManager

	// failed remembers images that could not be decoded
	failed sync.Map
}

// NewImageManager creates an ImageManager over paths
func NewImageManager(paths []ImagePath, cacheSize int, preloadCount int, preloadEnabled bool) *ImageManager {
	onEvict := func(_ string, img *ebiten.Image) {
		if img != nil {
			img.Deallocate()
		}
	}
	cache, err := lru.NewWithEvict[string, *ebiten.Image](cacheSize, onEvict)
	if err != nil {
		log.Printf("Error: Failed to create LRU cache: %v", err)
		cache, _ = lru.NewWithEvict[string, *ebiten.Image](16, onEvict)
	}

	m := &ImageManager{
		paths: paths,
		cache: cache,
	}
	m.preloadManager = NewPreloadManager(m, preloadCount)
	m.preloadManager.SetEnabled(preloadEnabled)
	return m
}

func (m *ImageManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.paths)
}

// ResolveDimensions reads the image header at idx and reports its upright size
func (m *ImageManager) ResolveDimensions(ctx context.Context, idx int) (Dimensions, error) {
	imagePath, ok := m.getPath(idx)
	if !ok {
		return Dimensions{}, fmt.Errorf("index %d out of range", idx)
	}
	if err := ctx.Err(); err != nil {
		return Dimensions{}, err
	}
	return readDimensions(imagePath)
}

func (m *ImageManager) StartPreload(currentIdx int, direction NavigationDirection) {
	if m.preloadManager != nil {
		m.preloadManager.StartPreload(currentIdx, direction)
	}
}

func (m *ImageManager) Stop() {
	if m.preloadManager != nil {
		m.preloadManager.Stop()
	}
}

func (m *ImageManager) GetPreloadStats() PreloadStats {
	if m.preloadManager != nil {
		return m.preloadManager.GetStats()
	}
	return PreloadStats{}
}

// GetImage returns the decoded image at idx, or nil when it cannot be decoded
func (m *ImageManager) GetImage(idx int) *ebiten.Image {
	imagePath, ok := m.getPath(idx)
	if !ok {
		return nil
	}
	cacheKey := imagePath.Path

	if img, ok := m.cache.Get(cacheKey); ok {
		return img
	}
	if _, failed := m.failed.Load(cacheKey); failed {
		return nil
	}

	img, err := loadImage(imagePath)
	if err != nil {
		log.Printf("Error: Failed to load image [%d/%d] %s: %v", idx+1, m.Len(), imagePath.Path, err)
		m.failed.Store(cacheKey, struct{}{})
		return nil
	}
	m.cache.Add(cacheKey, img)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	debugLog("Cache MISS: %s, loaded and cached (cache: %d items, memory: %dMB)",
		cacheKey, m.cache.Len(), mem.Alloc/1024/1024)

	return img
}

// ImageName returns the base name shown for idx, including the archive
// entry name for images inside archives
func (m *ImageManager) ImageName(idx int) string {
	imagePath, ok := m.getPath(idx)
	if !ok {
		return ""
	}
	if imagePath.ArchivePath != "" {
		return filepath.Base(imagePath.ArchivePath) + ":" + filepath.Base(imagePath.EntryPath)
	}
	return filepath.Base(imagePath.Path)
}

func (m *ImageManager) getPath(idx int) (ImagePath, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if idx < 0 || idx >= len(m.paths) {
		return ImagePath{}, false
	}
	return m.paths[idx], true
}

// Image reading

// imageReader is an image held open for decoding. Archive entries are
// buffered in memory so both kinds can be rewound between passes.
type imageReader interface {
	io.ReadSeeker
	io.Closer
}

type memoryImage struct {
	*bytes.Reader
}

func (memoryImage) Close() error { return nil }

func openImage(imagePath ImagePath) (imageReader, error) {
	if imagePath.ArchivePath == "" {
		return os.Open(imagePath.Path)
	}

	data, err := readArchiveEntry(imagePath.ArchivePath, imagePath.EntryPath)
	if err != nil {
		return nil, err
	}
	return memoryImage{bytes.NewReader(data)}, nil
}

// readDimensions decodes only the header and EXIF block of an image
func readDimensions(imagePath ImagePath) (Dimensions, error) {
	r, err := openImage(imagePath)
	if err != nil {
		return Dimensions{}, err
	}
	defer r.Close()

	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return Dimensions{}, fmt.Errorf("decoding config of %s: %w", imagePath.Path, err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Dimensions{}, fmt.Errorf("seeking %s for exif: %w", imagePath.Path, err)
	}

	dims := Dimensions{Width: cfg.Width, Height: cfg.Height, Orientation: readOrientation(r)}
	if dims.Orientation.SwapsAxes() {
		dims.Width, dims.Height = dims.Height, dims.Width
	}
	return dims, nil
}

// loadImage decodes an image and turns it upright
func loadImage(imagePath ImagePath) (*ebiten.Image, error) {
	r, err := openImage(imagePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", imagePath.Path, err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking %s for exif: %w", imagePath.Path, err)
	}
	orientation := readOrientation(r)

	return applyOrientation(ebiten.NewImageFromImage(img), orientation), nil
}

func readArchiveEntry(archivePath, entryPath string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(archivePath)) {
	case ".zip":
		return readZipEntry(archivePath, entryPath)
	case ".rar":
		return readRarEntry(archivePath, entryPath)
	case ".7z":
		return read7zEntry(archivePath, entryPath)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", filepath.Ext(archivePath))
	}
}

func readZipEntry(archivePath, entryPath string) ([]byte, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != entryPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

func readRarEntry(archivePath, entryPath string) ([]byte, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header.Name == entryPath {
			return io.ReadAll(r)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

func read7zEntry(archivePath, entryPath string) ([]byte, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != entryPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

// File collection

func archiveEntry(archivePath, name string) ImagePath {
	return ImagePath{
		Path:        archivePath + ":" + name,
		ArchivePath: archivePath,
		EntryPath:   name,
	}
}

func listZip(archivePath string) ([]ImagePath, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var images []ImagePath
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && isSupportedExt(f.Name) {
			images = append(images, archiveEntry(archivePath, f.Name))
		}
	}
	return images, nil
}

func listRar(archivePath string) ([]ImagePath, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	var images []ImagePath
	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !header.IsDir && isSupportedExt(header.Name) {
			images = append(images, archiveEntry(archivePath, header.Name))
		}
	}
	return images, nil
}

func list7z(archivePath string) ([]ImagePath, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var images []ImagePath
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && isSupportedExt(f.Name) {
			images = append(images, archiveEntry(archivePath, f.Name))
		}
	}
	return images, nil
}

func listArchive(archivePath string, sortMethod int) ([]ImagePath, error) {
	var images []ImagePath
	var err error

	switch strings.ToLower(filepath.Ext(archivePath)) {
	case ".zip":
		images, err = listZip(archivePath)
	case ".rar":
		images, err = listRar(archivePath)
	case ".7z":
		images, err = list7z(archivePath)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", filepath.Ext(archivePath))
	}
	if err != nil {
		return nil, fmt.Errorf("reading archive %s: %w", archivePath, err)
	}

	return sortImagePaths(images, sortMethod), nil
}

// collectImages expands the command line into an ordered image sequence.
// Directories are walked recursively; archives contribute their image entries.
// Unreadable archives are skipped with a warning.
func collectImages(args []string, sortMethod int) ([]ImagePath, error) {
	var list []ImagePath

	addFile := func(path string, into *[]ImagePath) {
		switch {
		case isSupportedExt(path):
			*into = append(*into, ImagePath{Path: path})
		case isArchiveExt(path):
			images, err := listArchive(path, sortMethod)
			if err != nil {
				log.Printf("Warning: Skipping problematic archive %s: %v", path, err)
				return
			}
			*into = append(*into, images...)
		}
	}

	for _, p := range args {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p, &list)
			continue
		}

		var dirImages []ImagePath
		err = filepath.Walk(p, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() {
				addFile(path, &dirImages)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		list = append(list, sortImagePaths(dirImages, sortMethod)...)
	}

	return list, nil
}
