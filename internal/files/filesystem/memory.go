package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing
type MemoryFileSystem struct {
	files map[string]*memoryFile // map of absolute path -> file
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.addDir(root)
	return mfs
}

// AddFile adds a file to the in-memory filesystem.
// Relative paths are resolved against the filesystem root.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.resolve(filePath)
	data := []byte(content)

	mfs.files[absPath] = &memoryFile{
		content: data,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(data)),
			mode:    0644,
			modTime: time.Now(),
		},
	}

	for dir := path.Dir(absPath); dir != "/" && dir != "."; dir = path.Dir(dir) {
		if _, exists := mfs.files[dir]; exists {
			break
		}
		mfs.addDir(dir)
	}
}

func (mfs *MemoryFileSystem) addDir(dir string) {
	mfs.files[dir] = &memoryFile{
		info: &memoryFileInfo{
			name:    path.Base(dir),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// resolve maps a caller path to its absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !strings.HasPrefix(p, "/") {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	file, exists := mfs.files[mfs.resolve(filePath)]
	if !exists {
		return nil, fmt.Errorf("open %s: %w", filePath, fs.ErrNotExist)
	}
	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return file.content, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	file, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, fmt.Errorf("stat %s: %w", statPath, fs.ErrNotExist)
	}
	return file.info, nil
}
