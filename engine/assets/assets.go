// Package assets indexes the asset directory, loads assets on demand and
// hot-reloads them when the files change on disk.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/nova/engine/assets/loaders"
	"github.com/spaghettifunk/nova/engine/core"
)

type AssetInfo struct {
	Path       string
	Type       loaders.AssetType
	LastLoaded time.Time
}

type AssetManager struct {
	assets  map[string]AssetInfo
	loaded  map[string]*loaders.Asset
	loaders map[loaders.AssetType]loaders.Loader

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaded:   make(map[string]*loaders.Asset),
		loaders:  make(map[loaders.AssetType]loaders.Loader),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

// Initialize indexes the asset directory, registers the loaders and starts
// the background watcher that tracks file changes.
func (am *AssetManager) Initialize(assetsDir string) error {
	go am.start()

	if err := am.addRecursive(assetsDir); err != nil {
		return err
	}

	am.registerLoader(loaders.AssetTypeImage, &loaders.ImageLoader{})
	am.registerLoader(loaders.AssetTypeBitmapFont, &loaders.BitmapFontLoader{})
	am.registerLoader(loaders.AssetTypeSystemFont, &loaders.SystemFontLoader{})
	am.registerLoader(loaders.AssetTypeSound, &loaders.SoundLoader{})

	return nil
}

// addRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	am.mutex.RLock()
	closed := am.isClosed
	am.mutex.RUnlock()
	if closed {
		return errors.New("asset watcher already closed")
	}
	return am.watchRecursive(name, false)
}

func (am *AssetManager) registerLoader(assetType loaders.AssetType, loader loaders.Loader) {
	am.mutex.Lock()
	am.loaders[assetType] = loader
	am.mutex.Unlock()
}

// LoadAsset returns the named asset of the given type, loading it from
// disk on first use. A file change observed by the watcher invalidates the
// cached copy, so a later call re-reads the file.
func (am *AssetManager) LoadAsset(name string, assetType loaders.AssetType) (*loaders.Asset, error) {
	am.mutex.RLock()
	path := ""
	for p, info := range am.assets {
		if info.Type == assetType && assetBaseName(p) == name {
			path = p
			break
		}
	}
	if path == "" {
		am.mutex.RUnlock()
		return nil, fmt.Errorf("asset not found: %s (%s)", name, assetType)
	}
	if asset, ok := am.loaded[path]; ok {
		am.mutex.RUnlock()
		return asset, nil
	}
	loader, ok := am.loaders[assetType]
	am.mutex.RUnlock()

	if !ok {
		return nil, fmt.Errorf("no loader registered for asset type: %s", assetType)
	}

	asset, err := loader.Load(path)
	if err != nil {
		core.LogError("failed to load asset %s: %v", path, err)
		return nil, err
	}

	am.mutex.Lock()
	am.loaded[path] = asset
	if info, ok := am.assets[path]; ok {
		info.LastLoaded = time.Now()
		am.assets[path] = info
	}
	am.mutex.Unlock()

	return asset, nil
}

// UnloadAsset drops the asset from the cache and releases its payload.
func (am *AssetManager) UnloadAsset(asset *loaders.Asset) error {
	if asset == nil {
		return nil
	}

	am.mutex.Lock()
	delete(am.loaded, asset.Path)
	loader, ok := am.loaders[asset.Type]
	am.mutex.Unlock()

	if !ok {
		return fmt.Errorf("no loader registered for asset type: %s", asset.Type)
	}
	return loader.Unload(asset)
}

// Shutdown stops the watcher goroutine and unloads everything.
func (am *AssetManager) Shutdown() {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return
	}
	am.isClosed = true
	loaded := make([]*loaders.Asset, 0, len(am.loaded))
	for _, asset := range am.loaded {
		loaded = append(loaded, asset)
	}
	am.loaded = make(map[string]*loaders.Asset)
	am.mutex.Unlock()

	am.mutex.RLock()
	registered := make(map[loaders.AssetType]loaders.Loader, len(am.loaders))
	for t, l := range am.loaders {
		registered[t] = l
	}
	am.mutex.RUnlock()

	for _, asset := range loaded {
		if loader, ok := registered[asset.Type]; ok {
			if err := loader.Unload(asset); err != nil {
				core.LogWarn("failed to unload asset %s: %v", asset.Path, err)
			}
		}
	}

	close(am.done)
}

func (am *AssetManager) start() {
	for {
		select {
		case e := <-am.fsnotify.Events:
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					am.watchRecursive(e.Name, false)
				}
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name)
			}
			// A deleted directory cannot be stat'ed, so removal is
			// attempted for every remove event.
			if e.Op&fsnotify.Remove != 0 {
				am.removeAsset(e.Name)
				am.fsnotify.Remove(e.Name)
			}

		case err := <-am.fsnotify.Errors:
			if err != nil {
				core.LogError(err.Error())
			}

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

// watchRecursive adds all directories under the given one to the watch
// list and indexes the files it finds along the way.
func (am *AssetManager) watchRecursive(path string, unWatch bool) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if unWatch {
				return am.fsnotify.Remove(walkPath)
			}
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath)
		return nil
	})
}

// handleFileEvent indexes a created or modified file and invalidates any
// cached copy so the next load picks up the new contents.
func (am *AssetManager) handleFileEvent(path string) {
	assetType := determineAssetType(path)
	if assetType == loaders.AssetTypeNone {
		return
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()

	am.assets[path] = AssetInfo{
		Path:       path,
		Type:       assetType,
		LastLoaded: time.Time{},
	}
	delete(am.loaded, path)
}

func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, path)
	delete(am.loaded, path)
}

func determineAssetType(path string) loaders.AssetType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".webp":
		return loaders.AssetTypeImage
	case ".fnt":
		return loaders.AssetTypeBitmapFont
	case ".ttf", ".otf":
		return loaders.AssetTypeSystemFont
	case ".wav":
		return loaders.AssetTypeSound
	default:
		return loaders.AssetTypeNone
	}
}

func assetBaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
