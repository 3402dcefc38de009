package scpath

const (
	// SourceDir is the repository metadata directory.
	SourceDir = ".git"

	// ObjectsDir holds the content-addressed object files.
	ObjectsDir = "objects"

	// RefsDir is reserved for named refs. grit only creates it.
	RefsDir = "refs"

	// HeadFile holds the id of the latest commit.
	HeadFile = "HEAD"

	// ConfigFile is the repository-level grit configuration.
	ConfigFile = "grit.json"
)
