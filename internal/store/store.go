// Package store reads and writes the catalog database directory.
//
// The database is one JSON file per catalog group, each a single
// object keyed by body id.  Keys are written in numeric-aware id
// order so successive builds produce stable diffs.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/soniakeys/sscat/internal/catalog"
)

// Load reads whichever group files exist under dir.  A missing file
// is an empty group, not an error; a directory holding no files at
// all loads as an empty catalog.
func Load(dir string) (*catalog.Catalog, error) {
	c := catalog.New()
	for _, group := range catalog.Groups {
		path := filepath.Join(dir, group+".json")
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var bodies map[string]*catalog.Body
		if err := json.Unmarshal(data, &bodies); err != nil {
			return nil, fmt.Errorf("store: %s: %w", path, err)
		}
		for id, b := range bodies {
			b.ID = id
			c.Put(group, b)
		}
	}
	return c, nil
}

// Save writes every group of c to its file under dir, creating the
// directory as needed.  Groups the catalog holds no bodies for are
// still written, as empty objects, so a load sees the same set of
// files a save produced.
func Save(dir string, c *catalog.Catalog) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, group := range catalog.Groups {
		data, err := marshalGroup(c.Group(group))
		if err != nil {
			return fmt.Errorf("store: group %s: %w", group, err)
		}
		path := filepath.Join(dir, group+".json")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
	}
	return nil
}

// marshalGroup assembles the group object by hand.  encoding/json
// writes map keys in lexical order, which puts "10" before "2"; the
// database wants numeric id order.
func marshalGroup(g map[string]*catalog.Body) ([]byte, error) {
	ids := make([]string, 0, len(g))
	for id := range g {
		ids = append(ids, id)
	}
	catalog.SortIDs(ids)
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(g[id])
		if err != nil {
			return nil, fmt.Errorf("body %s: %w", id, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
