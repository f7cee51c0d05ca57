package table

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/errmodel/chain"
)

// Load reads an id table from path, picking the format from the extension:
// .yaml and .yml for YAML, .toml for TOML.
//
// YAML files hold a mapping under "entries":
//
//	entries:
//	  41: 76
//	  42: 77
//
// TOML files hold an [entries] table:
//
//	[entries]
//	41 = 76
//	42 = 77
func Load(fs billy.Filesystem, path string) (*IDs, error) {
	var parse func([]byte) (*IDs, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".toml":
		parse = ParseTOML
	default:
		return nil, chain.Errorf("unsupported table format %q", ext)
	}

	data, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, chain.WithContext(err, func() string {
			return fmt.Sprintf("failed to read %q", path)
		})
	}

	ids, err := parse(data)
	if err != nil {
		return nil, chain.WithContext(err, func() string {
			return fmt.Sprintf("failed to parse %q", path)
		})
	}
	return ids, nil
}

type yamlDocument struct {
	Entries map[uint32]uint32 `yaml:"entries"`
}

// ParseYAML decodes a YAML id table. An empty document is an empty table.
func ParseYAML(data []byte) (*IDs, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, chain.From(err)
	}
	return New(doc.Entries), nil
}

type tomlDocument struct {
	Entries map[string]uint32 `toml:"entries"`
}

// ParseTOML decodes a TOML id table. Keys must be unsigned 32-bit integers,
// and two keys naming the same id, such as "41" and "041", are rejected.
func ParseTOML(data []byte) (*IDs, error) {
	var doc tomlDocument
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, chain.From(err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, chain.Errorf("unknown key %q", undecoded[0].String())
	}

	entries := make(map[uint32]uint32, len(doc.Entries))
	for k, v := range doc.Entries {
		id, err := strconv.ParseUint(k, 10, 32)
		if err != nil {
			return nil, chain.Contextf(err, "invalid id %q", k)
		}
		if _, dup := entries[uint32(id)]; dup {
			return nil, chain.Errorf("duplicate id %d", id)
		}
		entries[uint32(id)] = v
	}
	return New(entries), nil
}
