package config

// ConfigLevel is a configuration source, ordered by precedence from highest
// to lowest.
type ConfigLevel int

const (
	// CommandLineLevel holds --config key=value overrides.
	CommandLineLevel ConfigLevel = iota

	// EnvironmentLevel holds GIT_* variables, e.g. GIT_AUTHOR_NAME as
	// author.name.
	EnvironmentLevel

	// RepositoryLevel is .git/grit.json.
	RepositoryLevel

	// UserLevel is ~/.config/grit/config.json.
	UserLevel

	// SystemLevel is /etc/grit/config.json.
	SystemLevel

	// BuiltinLevel holds hardcoded defaults.
	BuiltinLevel
)

func (l ConfigLevel) String() string {
	switch l {
	case CommandLineLevel:
		return "command-line"
	case EnvironmentLevel:
		return "environment"
	case RepositoryLevel:
		return "repository"
	case UserLevel:
		return "user"
	case SystemLevel:
		return "system"
	case BuiltinLevel:
		return "builtin"
	default:
		return "unknown"
	}
}

// IsFile reports whether the level is backed by a config file.
func (l ConfigLevel) IsFile() bool {
	return l == RepositoryLevel || l == UserLevel || l == SystemLevel
}

// ParseLevel converts a level name to a ConfigLevel.
func ParseLevel(s string) (ConfigLevel, error) {
	for l := CommandLineLevel; l <= BuiltinLevel; l++ {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, NewConfigError("parse_level", CodeInvalidLevelErr, "", "", s, ErrInvalidLevel)
}
