// Package cache is a SQLite-backed, content-addressed compile cache:
// the SHA-256 of a source string keys its compiled artifact so
// identical sources across a batch never recompile. Grounded on the
// teacher's lib/runtime/persistence.go (database/sql + a blank-imported
// driver, CREATE TABLE IF NOT EXISTS) and vm/content_store.go (hashing
// a piece of the compiler's own output for content addressing), wired
// to modernc.org/sqlite instead of go-sqlite3 per DESIGN.md.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/sonicyouth98/poczfx/artifact"
	"github.com/sonicyouth98/poczfx/compiler"
	"github.com/sonicyouth98/poczfx/internal/logging"
)

// Cache is a content-addressed store of compiled artifacts, keyed by
// the SHA-256 hex digest of the source text that produced them.
type Cache struct {
	db  *sql.DB
	log logging.Logger
	mu  sync.Mutex
}

// Open opens (creating if necessary) a SQLite database at path and
// ensures its schema exists.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS instructions (
		digest TEXT PRIMARY KEY,
		encoded BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}

	return &Cache{db: db, log: logging.Named("cache")}, nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Digest returns the content-address key for a source string.
func Digest(src string) string {
	sum := sha256.Sum256([]byte(src))
	return hex.EncodeToString(sum[:])
}

// CompileCached returns the compiled Result for src, consulting the
// cache first. On a miss it compiles src, stores the artifact, and
// returns the fresh Result; a failed compile is never stored.
func (c *Cache) CompileCached(src string) (*compiler.Result, error) {
	key := Digest(src)

	if a, ok := c.lookup(key); ok {
		c.log.Infof("hit %s", key)
		return &compiler.Result{Codes: a.Codes, Syms: a.Syms, NRegs: a.NRegs}, nil
	}
	c.log.Infof("miss %s", key)

	res, err := compiler.Compile(src)
	if err != nil {
		return nil, err
	}

	if err := c.store(key, artifact.FromResult(res)); err != nil {
		return nil, fmt.Errorf("storing artifact for %s: %w", key, err)
	}
	return res, nil
}

func (c *Cache) lookup(key string) (*artifact.Artifact, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var encoded []byte
	err := c.db.QueryRow(`SELECT encoded FROM instructions WHERE digest = ?`, key).Scan(&encoded)
	if err != nil {
		return nil, false
	}
	a, err := artifact.Decode(encoded)
	if err != nil {
		return nil, false
	}
	return a, true
}

func (c *Cache) store(key string, a *artifact.Artifact) error {
	encoded, err := artifact.Encode(a)
	if err != nil {
		return fmt.Errorf("encoding artifact: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err = c.db.Exec(`INSERT OR REPLACE INTO instructions (digest, encoded) VALUES (?, ?)`, key, encoded)
	return err
}
