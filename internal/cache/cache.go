package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
)

// DB maps marker-file paths to "contenthash:version" entries so repeat
// scans of an unchanged host skip re-parsing marker files.
type DB struct {
	Entries map[string]string `json:"entries"`
}

func defaultPath(root string) string {
	return filepath.Join(root, ".wpscoutcache.json")
}

// Load reads the cache for root, returning an empty usable DB on any error.
func Load(root string) (DB, error) {
	var db DB
	b, err := os.ReadFile(defaultPath(root))
	if err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if err := json.Unmarshal(b, &db); err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]string{}
	}
	return db, nil
}

// Save persists the cache under root.
func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(defaultPath(root), b, 0644)
}

// Key builds the entry value for marker content and its extracted version.
func Key(content []byte, version string) string {
	return fmt.Sprintf("%016x:%s", xxhash.Sum64(content), version)
}

// Lookup returns the cached version for path when the stored content hash
// still matches. key is "" on a miss or stale entry.
func (db DB) Lookup(path string, content []byte) (version, key string) {
	v, ok := db.Entries[path]
	if !ok {
		return "", ""
	}
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return "", ""
	}
	if parts[0] != fmt.Sprintf("%016x", xxhash.Sum64(content)) {
		return "", ""
	}
	return parts[1], v
}
