package config

import "strings"

// EnvPrefix starts the environment variables read as configuration.
const EnvPrefix = "GIT_"

// ParseEnviron maps GIT_<SECTION>_<NAME> variables from environ ("KEY=value"
// pairs as returned by os.Environ) to "section.name" entries. Variables
// without both parts, such as GIT_DIR, are ignored.
//
//	GIT_AUTHOR_NAME=Jane     -> author.name
//	GIT_COMMITTER_DATE=...   -> committer.date
func ParseEnviron(environ []string) map[string]string {
	out := make(map[string]string)
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		rest, ok := strings.CutPrefix(name, EnvPrefix)
		if !ok {
			continue
		}
		section, key, ok := strings.Cut(rest, "_")
		if !ok || section == "" || key == "" {
			continue
		}
		out[NormalizeKey(section+"."+key)] = value
	}
	return out
}
