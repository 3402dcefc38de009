package commitmanager

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/utkarsh5026/grit/pkg/common/logger"
	"github.com/utkarsh5026/grit/pkg/config"
	"github.com/utkarsh5026/grit/pkg/objects"
	"github.com/utkarsh5026/grit/pkg/repository/ignore"
	"github.com/utkarsh5026/grit/pkg/repository/refs"
	"github.com/utkarsh5026/grit/pkg/repository/scpath"
	"github.com/utkarsh5026/grit/pkg/repository/sourcerepo"
	"github.com/utkarsh5026/grit/pkg/store"
	"github.com/utkarsh5026/grit/pkg/workdir"
)

// Manager records the workspace as commits.
//
// A commit is created in this order:
//  1. List the top-level workspace files
//  2. Write one blob per file
//  3. Build and write the tree
//  4. Read HEAD for the parent
//  5. Build and write the commit
//  6. Point HEAD at the commit
//
// A failure at any step returns before HEAD is touched, so HEAD only ever
// names a commit whose objects are all on disk.
//
// Thread Safety:
// Manager is not thread-safe. Two processes committing at once race on HEAD;
// the last update wins.
type Manager struct {
	root        scpath.RepositoryPath
	objects     store.ObjectStore
	head        *refs.HeadRef
	treeBuilder *TreeBuilder
	filter      *ignore.Filter
	now         func() time.Time
	logger      *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithIgnore replaces the default ignore filter.
func WithIgnore(f *ignore.Filter) Option {
	return func(m *Manager) { m.filter = f }
}

// WithClock sets the time source for signatures without a date.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// NewManager creates a commit manager for repo.
//
// Example:
//
//	repo, _ := sourcerepo.Open(scpath.RepositoryPath("/path/to/repo"))
//	mgr := commitmanager.NewManager(repo)
//	res, err := mgr.Commit(ctx, commitmanager.CommitOptions{Message: "msg", Identity: typed})
func NewManager(repo sourcerepo.Repository, opts ...Option) *Manager {
	m := &Manager{
		root:        repo.WorkingDirectory(),
		objects:     repo.ObjectStore(),
		head:        repo.HeadRef(),
		treeBuilder: NewTreeBuilder(repo.WorkingDirectory()),
		filter:      ignore.Default(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logger.Component("commitmanager")
	}
	return m
}

// WriteBlob stores the contents of the workspace file at path and returns
// the blob id. A symlink is stored as its target.
func (m *Manager) WriteBlob(ctx context.Context, path string) (objects.ObjectHash, error) {
	if cerr := ctx.Err(); cerr != nil {
		return "", cerr
	}

	abs := path
	if rel, cerr := m.root.Canonicalize(path); cerr == nil {
		abs = m.root.Join(rel.String()).String()
	}
	info, serr := os.Lstat(abs)
	if serr != nil {
		return "", workdir.NewWorkdirError("stat", abs, serr)
	}
	if info.IsDir() {
		return "", objects.NewEncodingError("write_blob", abs, "path is a directory")
	}

	return m.writeFileBlob(workdir.File{
		Path: scpath.AbsolutePath(abs),
		Name: info.Name(),
		Mode: objects.FromOSFileMode(info.Mode()),
		Size: info.Size(),
	})
}

func (m *Manager) writeFileBlob(f workdir.File) (objects.ObjectHash, error) {
	data, rerr := workdir.ReadContent(f)
	if rerr != nil {
		return "", rerr
	}
	hash, werr := m.objects.WriteObject(objects.NewBlob(data))
	if werr != nil {
		return "", werr
	}
	m.logger.Debug("wrote blob", "name", f.Name, "hash", hash.Short().String(), "size", len(data))
	return hash, nil
}

// Commit snapshots the workspace, writes a commit on top of HEAD and moves
// HEAD to it.
func (m *Manager) Commit(ctx context.Context, options CommitOptions) (*CommitResult, error) {
	if cerr := ctx.Err(); cerr != nil {
		return nil, cerr
	}
	if verr := options.Validate(); verr != nil {
		m.logger.Error("invalid commit options", "error", verr)
		return nil, verr
	}

	author, committer, ierr := m.resolveIdentities(options)
	if ierr != nil {
		return nil, NewCommitError("resolve identity", ierr, "")
	}

	files, eerr := workdir.Enumerate(m.root, m.filter)
	if eerr != nil {
		return nil, NewCommitError("enumerate", eerr, "")
	}

	inputs, berr := m.writeBlobs(ctx, files)
	if berr != nil {
		return nil, NewCommitError("write blobs", berr, "")
	}

	tree, terr := m.treeBuilder.Build(inputs)
	if terr != nil {
		return nil, NewCommitError("build tree", terr, "")
	}
	treeHash, werr := m.objects.WriteObject(tree)
	if werr != nil {
		return nil, NewCommitError("write tree", werr, "")
	}

	parent, _, herr := m.head.Read()
	if herr != nil {
		return nil, NewCommitError("read head", herr, "")
	}

	commitObj, cerr := objects.NewCommitBuilder().
		Clock(m.now).
		Tree(treeHash).
		Parent(parent).
		Author(author).
		Committer(committer).
		Message(options.Message).
		Build()
	if cerr != nil {
		return nil, NewCommitError("build commit", cerr, "")
	}

	commitHash, werr := m.objects.WriteObject(commitObj)
	if werr != nil {
		return nil, NewCommitError("write commit", werr, "")
	}

	if uerr := m.head.Update(commitHash); uerr != nil {
		return nil, NewCommitError("update head", uerr, commitHash.Short().String())
	}

	m.logger.Info("created commit",
		"hash", commitHash.String(),
		"tree", treeHash.String(),
		"parent", parent.String(),
		"files", tree.Len())

	return &CommitResult{Hash: commitHash, Commit: commitObj, Tree: tree, Files: tree.Len()}, nil
}

func (m *Manager) resolveIdentities(options CommitOptions) (objects.Signature, objects.Signature, error) {
	author, aerr := options.Identity.Author()
	if aerr != nil {
		return objects.Signature{}, objects.Signature{}, aerr
	}
	committer, cerr := options.Identity.Committer()
	if cerr != nil {
		return objects.Signature{}, objects.Signature{}, cerr
	}
	return m.signature(author, options.When), m.signature(committer, options.When), nil
}

func (m *Manager) signature(id config.Identity, when *time.Time) objects.Signature {
	sig := objects.Signature{Name: id.Name, Email: id.Email, When: id.When}
	if sig.When.IsZero() && when != nil {
		sig.When = *when
	}
	return sig
}

// writeBlobs writes one blob per file, in the order of files. The first
// failure stops the loop; blobs already written stay on disk.
func (m *Manager) writeBlobs(ctx context.Context, files []workdir.File) ([]TreeInput, error) {
	inputs := make([]TreeInput, 0, len(files))
	for _, f := range files {
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}
		hash, werr := m.writeFileBlob(f)
		if werr != nil {
			return nil, werr
		}
		inputs = append(inputs, TreeInput{Path: f.Path.String(), Hash: hash, Mode: f.Mode})
	}
	return inputs, nil
}

// CurrentHead returns the commit HEAD points at. ok is false before the
// first commit.
func (m *Manager) CurrentHead() (hash objects.ObjectHash, ok bool, e error) {
	return m.head.Read()
}

// GetCommit reads the commit with the given id.
func (m *Manager) GetCommit(ctx context.Context, sha objects.ObjectHash) (*objects.Commit, error) {
	if cerr := ctx.Err(); cerr != nil {
		return nil, cerr
	}

	obj, rerr := m.objects.ReadObject(sha)
	if rerr != nil {
		return nil, NewCommitError("read commit", rerr, sha.Short().String())
	}
	c, ok := obj.(*objects.Commit)
	if !ok {
		return nil, NewCommitError("read commit",
			objects.NewFormatError("read_commit", fmt.Sprintf("object is a %s", obj.Type()), nil),
			sha.Short().String())
	}
	return c, nil
}

// History walks parent links from HEAD, newest first. A limit of zero or
// less returns the whole chain. An empty repository has no history.
func (m *Manager) History(ctx context.Context, limit int) ([]*HistoryEntry, error) {
	current, ok, herr := m.head.Read()
	if herr != nil {
		return nil, herr
	}
	if !ok {
		return []*HistoryEntry{}, nil
	}

	history := make([]*HistoryEntry, 0)
	visited := make(map[objects.ObjectHash]bool)
	for !current.IsZero() && (limit <= 0 || len(history) < limit) {
		if visited[current] {
			return history, NewCommitError("history", objects.NewFormatError("history", "parent chain loops", nil), current.Short().String())
		}
		visited[current] = true

		c, gerr := m.GetCommit(ctx, current)
		if gerr != nil {
			return history, gerr
		}
		history = append(history, &HistoryEntry{Hash: current, Commit: c})
		current = c.Parent
	}
	return history, nil
}
