package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/utkarsh5026/grit/pkg/common/err"
	"github.com/utkarsh5026/grit/pkg/common/fileops"
	"github.com/utkarsh5026/grit/pkg/common/logger"
	"github.com/utkarsh5026/grit/pkg/compression"
	"github.com/utkarsh5026/grit/pkg/objects"
	"github.com/utkarsh5026/grit/pkg/repository/scpath"
)

// objectFileMode matches git: loose objects are never modified in place.
const objectFileMode os.FileMode = 0o444

// FileObjectStore keeps one zlib-compressed file per object, laid out like
// git's loose objects:
//
//	.git/objects/
//	├─ ee/                                         first 2 hex chars
//	│  └─ df7e9cbf58c283913a70a5462988a0b5ee0052   remaining 38
//	└─ ...
//
// Writes go through a temporary file and a rename, so a reader never sees a
// partial object.
type FileObjectStore struct {
	objectsPath scpath.SourcePath
	codec       compression.Codec
	log         *slog.Logger
}

// Option configures a FileObjectStore.
type Option func(*FileObjectStore)

// WithCodec replaces the zlib codec. Only useful in tests: git cannot read
// objects written with anything else.
func WithCodec(c compression.Codec) Option {
	return func(s *FileObjectStore) { s.codec = c }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *FileObjectStore) { s.log = l }
}

// NewFileObjectStore creates an uninitialized store.
func NewFileObjectStore(opts ...Option) *FileObjectStore {
	s := &FileObjectStore{codec: compression.Default}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Component("store")
	}
	return s
}

// Initialize binds the store to repoPath and creates .git/objects.
func (s *FileObjectStore) Initialize(repoPath scpath.RepositoryPath) error {
	s.objectsPath = repoPath.SourcePath().ObjectsPath()
	if e := fileops.EnsureDir(s.objectsPath.ToAbsolutePath()); e != nil {
		return NewIOError("initialize", "", s.objectsPath.String(), e)
	}
	return nil
}

// IsInitialized reports whether Initialize has been called.
func (s *FileObjectStore) IsInitialized() bool {
	return s.objectsPath != ""
}

// ObjectsPath returns the .git/objects directory.
func (s *FileObjectStore) ObjectsPath() scpath.SourcePath {
	return s.objectsPath
}

// Write compresses serialized and stores it under hash. The write always
// happens, replacing any existing file by rename; since the id is derived
// from the content an existing file already holds the same bytes.
func (s *FileObjectStore) Write(hash objects.ObjectHash, serialized objects.SerializedObject) error {
	path, e := s.resolve("write", hash)
	if e != nil {
		return e
	}

	compressed, cerr := s.codec.Compress(serialized.Bytes())
	if cerr != nil {
		return NewIOError("compress", hash.String(), path.String(), cerr)
	}
	if ferr := fileops.EnsureParentDir(path.ToAbsolutePath()); ferr != nil {
		return NewIOError("write", hash.String(), path.String(), ferr)
	}
	if ferr := fileops.AtomicWrite(path.ToAbsolutePath(), compressed, objectFileMode); ferr != nil {
		return NewIOError("write", hash.String(), path.String(), ferr)
	}

	s.log.Debug("stored object", "hash", hash.String(), "size", len(serialized), "compressed", len(compressed))
	return nil
}

// WriteObject encodes obj and stores it, returning its id.
func (s *FileObjectStore) WriteObject(obj objects.Object) (objects.ObjectHash, error) {
	hash, serialized, e := objects.Hash(obj)
	if e != nil {
		return "", e
	}
	if e := s.Write(hash, serialized); e != nil {
		return "", e
	}
	return hash, nil
}

// ReadRaw loads the decompressed bytes of an object and checks that they hash
// to the requested id.
func (s *FileObjectStore) ReadRaw(hash objects.ObjectHash) (objects.SerializedObject, error) {
	path, e := s.resolve("read", hash)
	if e != nil {
		return nil, e
	}

	compressed, rerr := os.ReadFile(path.String())
	if rerr != nil {
		if errors.Is(rerr, fs.ErrNotExist) {
			return nil, newStoreError(err.CodeNotFound, "read", hash.String(), path.String(), "object not found", rerr)
		}
		return nil, NewIOError("read", hash.String(), path.String(), rerr)
	}

	data, derr := s.codec.Decompress(compressed)
	if derr != nil {
		return nil, newStoreError(err.CodeCorrupt, "decompress", hash.String(), path.String(), "", derr)
	}

	serialized := objects.SerializedObject(data)
	if got := objects.Identify(serialized); !got.Equal(hash) {
		return nil, newStoreError(err.CodeCorrupt, "verify", hash.String(), path.String(),
			fmt.Sprintf("content hashes to %s", got), nil)
	}
	return serialized, nil
}

// ReadObject loads and decodes an object.
func (s *FileObjectStore) ReadObject(hash objects.ObjectHash) (objects.Object, error) {
	serialized, e := s.ReadRaw(hash)
	if e != nil {
		return nil, e
	}
	obj, derr := objects.Decode(serialized)
	if derr != nil {
		return nil, newStoreError(err.CodeCorrupt, "decode", hash.String(), "", "", derr)
	}
	return obj, nil
}

// ReadCommit loads an object and checks that it is a commit.
func (s *FileObjectStore) ReadCommit(hash objects.ObjectHash) (*objects.Commit, error) {
	obj, e := s.ReadObject(hash)
	if e != nil {
		return nil, e
	}
	c, ok := obj.(*objects.Commit)
	if !ok {
		return nil, newStoreError(err.CodeInvalidInput, "read_commit", hash.String(), "",
			fmt.Sprintf("object is a %s, not a commit", obj.Type()), nil)
	}
	return c, nil
}

// HasObject reports whether an object file exists for hash.
func (s *FileObjectStore) HasObject(hash objects.ObjectHash) (bool, error) {
	path, e := s.resolve("has", hash)
	if e != nil {
		return false, e
	}
	ok, ferr := fileops.Exists(path.ToAbsolutePath())
	if ferr != nil {
		return false, NewIOError("has", hash.String(), path.String(), ferr)
	}
	return ok, nil
}

// ObjectCount walks the objects directory and counts object files.
func (s *FileObjectStore) ObjectCount() (int, error) {
	if !s.IsInitialized() {
		return 0, newStoreError(err.CodeInvalidInput, "count", "", "", "object store not initialized", nil)
	}
	fanout, rerr := os.ReadDir(s.objectsPath.String())
	if rerr != nil {
		return 0, NewIOError("count", "", s.objectsPath.String(), rerr)
	}

	count := 0
	for _, dir := range fanout {
		if !dir.IsDir() || len(dir.Name()) != 2 {
			continue
		}
		files, rerr := os.ReadDir(s.objectsPath.Join(dir.Name()).String())
		if rerr != nil {
			return 0, NewIOError("count", "", dir.Name(), rerr)
		}
		for _, f := range files {
			if f.Type().IsRegular() && len(f.Name()) == objects.HashLength-2 {
				count++
			}
		}
	}
	return count, nil
}

// ObjectPath returns the file that holds hash.
func (s *FileObjectStore) ObjectPath(hash objects.ObjectHash) (scpath.SourcePath, error) {
	return s.resolve("path", hash)
}

func (s *FileObjectStore) resolve(op string, hash objects.ObjectHash) (scpath.SourcePath, error) {
	if !s.IsInitialized() {
		return "", newStoreError(err.CodeInvalidInput, op, hash.String(), "", "object store not initialized", nil)
	}
	if verr := hash.Validate(); verr != nil {
		return "", newStoreError(err.CodeInvalidInput, op, hash.String(), "", "invalid object id", verr)
	}
	dir, file := objects.ObjectHash(strings.ToLower(hash.String())).StoragePath()
	return s.objectsPath.Join(dir, file), nil
}
