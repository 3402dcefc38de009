package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
)

// Parser reads and writes grit's JSON config files. Input may carry comments
// and trailing commas; nested objects become dotted keys:
//
//	{
//	  // who am I
//	  "user": {"name": "Jane Doe", "email": "jane@example.com"},
//	  "core": {"ignore": ["target", "node_modules"]},
//	}
//
// yields user.name, user.email and two core.ignore entries.
type Parser struct{}

// Parse flattens content into entries keyed by dotted name.
func (p *Parser) Parse(content []byte, source ConfigSource, level ConfigLevel) (map[string][]*ConfigEntry, error) {
	result := make(map[string][]*ConfigEntry)
	if len(bytes.TrimSpace(content)) == 0 {
		return result, nil
	}

	var root map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(content), &root); err != nil {
		return nil, NewInvalidFormatError("parse", source.String(), fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	if err := p.flatten("", root, result, source, level); err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Parser) flatten(prefix string, node map[string]any, out map[string][]*ConfigEntry, source ConfigSource, level ConfigLevel) error {
	for name, value := range node {
		key := strings.ToLower(name)
		if prefix != "" {
			key = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			if err := p.flatten(key, v, out, source, level); err != nil {
				return err
			}
		case []any:
			for _, item := range v {
				s, err := scalarString(key, item, source)
				if err != nil {
					return err
				}
				out[key] = append(out[key], NewEntry(key, s, level, source))
			}
		default:
			s, err := scalarString(key, v, source)
			if err != nil {
				return err
			}
			out[key] = append(out[key], NewEntry(key, s, level, source))
		}
	}
	return nil
}

func scalarString(key string, v any, source ConfigSource) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case nil:
		return "", nil
	default:
		return "", NewConfigError("parse", CodeInvalidFormatErr, key, source.String(), "",
			fmt.Errorf("%w: unsupported value %T", ErrInvalidFormat, v))
	}
}

// Serialize writes entries back as nested JSON. Multi-valued keys become arrays.
func (p *Parser) Serialize(entries map[string][]*ConfigEntry) ([]byte, error) {
	root := make(map[string]any)

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		list := entries[key]
		if len(list) == 0 {
			continue
		}
		parts, err := SplitKey(key)
		if err != nil {
			return nil, err
		}

		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				if _, taken := node[part]; taken {
					return nil, NewConfigError("serialize", CodeInvalidKeyErr, key, "", "",
						fmt.Errorf("%q is both a value and a section", part))
				}
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}

		leaf := parts[len(parts)-1]
		if len(list) == 1 {
			node[leaf] = list[0].Value
			continue
		}
		values := make([]string, len(list))
		for i, e := range list {
			values[i] = e.Value
		}
		node[leaf] = values
	}

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, NewInvalidFormatError("serialize", "", err)
	}
	return append(data, '\n'), nil
}

// SplitKey validates a dotted key and returns its parts. Keys need at least a
// section and a name.
func SplitKey(key string) ([]string, error) {
	parts := strings.Split(key, ".")
	if len(parts) < 2 {
		return nil, NewConfigError("validate_key", CodeInvalidKeyErr, key, "", "", ErrInvalidKey)
	}
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			return nil, NewConfigError("validate_key", CodeInvalidKeyErr, key, "", "", ErrInvalidKey)
		}
	}
	return parts, nil
}

// NormalizeKey lowercases the section and name of a key, as git treats them
// case-insensitively.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
