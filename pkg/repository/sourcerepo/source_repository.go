package sourcerepo

import (
	"log/slog"

	"github.com/utkarsh5026/grit/pkg/common/err"
	"github.com/utkarsh5026/grit/pkg/common/fileops"
	"github.com/utkarsh5026/grit/pkg/common/logger"
	"github.com/utkarsh5026/grit/pkg/compression"
	"github.com/utkarsh5026/grit/pkg/objects"
	"github.com/utkarsh5026/grit/pkg/repository/refs"
	"github.com/utkarsh5026/grit/pkg/repository/scpath"
	"github.com/utkarsh5026/grit/pkg/store"
)

// SourceRepository is a repository on disk:
//
//	<working-directory>/
//	├─ .git/
//	│  ├─ objects/     loose objects, fanned out by the first two hex chars
//	│  ├─ refs/
//	│  ├─ HEAD         hex id of the latest commit
//	│  └─ grit.json    repository configuration (optional)
//	├─ file1.txt
//	└─ ...
type SourceRepository struct {
	workingDir  scpath.RepositoryPath
	sourceDir   scpath.SourcePath
	objectStore *store.FileObjectStore
	head        *refs.HeadRef
	log         *slog.Logger
}

// Option configures a SourceRepository.
type Option func(*options)

type options struct {
	codec compression.Codec
	log   *slog.Logger
}

// WithCompressionLevel sets the zlib level for new objects, with git's
// meaning: -1 is the default and 0 disables compression. Levels outside
// -1..9 keep the default codec.
func WithCompressionLevel(level int) Option {
	return func(o *options) {
		if codec, e := compression.NewZlib(level); e == nil {
			o.codec = codec
		}
	}
}

// WithLogger sets the logger handed to the repository and its store.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

func newSourceRepository(path scpath.RepositoryPath, opts []Option) (*SourceRepository, error) {
	o := options{codec: compression.Default}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Component("repository")
	}

	objectStore := store.NewFileObjectStore(store.WithCodec(o.codec), store.WithLogger(o.log))
	if e := objectStore.Initialize(path); e != nil {
		return nil, e
	}

	return &SourceRepository{
		workingDir:  path,
		sourceDir:   path.SourcePath(),
		objectStore: objectStore,
		head:        refs.NewHeadRef(path.SourcePath()),
		log:         o.log,
	}, nil
}

// Initialize creates .git, .git/objects and .git/refs under path and returns
// the repository. Running it on an existing repository leaves its contents
// alone.
func Initialize(path scpath.RepositoryPath, opts ...Option) (*SourceRepository, error) {
	if !path.IsValid() {
		return nil, newRepoError(err.CodeInvalidInput, "initialize", path.String(), "repository path must be absolute", nil)
	}

	source := path.SourcePath()
	for _, dir := range []scpath.SourcePath{source, source.ObjectsPath(), source.RefsPath()} {
		if e := fileops.EnsureDir(dir.ToAbsolutePath()); e != nil {
			return nil, newRepoError(err.CodeIO, "initialize", dir.String(), "", e)
		}
	}

	repo, e := newSourceRepository(path, opts)
	if e != nil {
		return nil, e
	}
	repo.log.Debug("initialized repository", "path", source.String())
	return repo, nil
}

// WorkingDirectory returns the workspace root.
func (sr *SourceRepository) WorkingDirectory() scpath.RepositoryPath {
	return sr.workingDir
}

// SourceDirectory returns the .git directory.
func (sr *SourceRepository) SourceDirectory() scpath.SourcePath {
	return sr.sourceDir
}

// ObjectStore returns the object store for this repository
func (sr *SourceRepository) ObjectStore() store.ObjectStore {
	return sr.objectStore
}

// FileStore returns the concrete store, for callers needing ReadCommit or
// ObjectCount.
func (sr *SourceRepository) FileStore() *store.FileObjectStore {
	return sr.objectStore
}

// HeadRef returns the .git/HEAD pointer.
func (sr *SourceRepository) HeadRef() *refs.HeadRef {
	return sr.head
}

// ReadObject reads an object by id.
func (sr *SourceRepository) ReadObject(hash objects.ObjectHash) (objects.Object, error) {
	return sr.objectStore.ReadObject(hash)
}

// WriteObject writes an object and returns its id.
func (sr *SourceRepository) WriteObject(obj objects.Object) (objects.ObjectHash, error) {
	return sr.objectStore.WriteObject(obj)
}

// Logger returns the repository's logger.
func (sr *SourceRepository) Logger() *slog.Logger {
	return sr.log
}
