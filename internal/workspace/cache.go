package workspace

import (
	"bytes"
	"database/sql"
	"encoding/gob"

	_ "modernc.org/sqlite"

	"github.com/minio/highwayhash"

	"github.com/orcinuscc/orcinus/internal/ast"
)

// cacheKey is the fixed 32-byte key highwayhash requires, matching the
// pattern used for content hashing elsewhere in the pack (a fixed,
// well-known key — this cache never needs to be collision-resistant
// against an adversary, only stable across runs).
var cacheKey = []byte("ORCINUSCC0123456789ABCDEF0123456")

func init() {
	for _, n := range []interface{}{
		&ast.ImportAST{}, &ast.ImportFromAST{},
		&ast.IntegerExpression{}, &ast.StringExpression{}, &ast.NamedExpression{}, &ast.CallExpression{},
		&ast.SubscribeExpression{}, &ast.AttributeExpression{}, &ast.ParenthesizedExpression{},
		&ast.UnaryExpression{}, &ast.BinaryExpression{},
		&ast.FunctionAST{}, &ast.ClassAST{}, &ast.StructAST{}, &ast.FieldAST{}, &ast.PassMemberAST{},
		&ast.BlockStatement{}, &ast.EllipsisStatement{}, &ast.PassStatement{}, &ast.ReturnStatement{},
		&ast.ConditionStatement{}, &ast.WhileStatement{}, &ast.ExpressionStatement{}, &ast.AssignStatement{},
		&ast.NamedType{}, &ast.ParameterizedType{}, &ast.AutoType{},
	} {
		gob.Register(n)
	}
}

// treeCache persists parsed syntax trees keyed by a content hash of their
// source (§5, §B of SPEC_FULL.md), so re-running the CLI on an unchanged
// file skips the lex+parse stages. It never caches the analyzed *symbols.
// Module: that graph is rebuilt fresh every run against whichever Importer
// and builtins module this process loaded, matching the teacher's own
// preference for caching the cheaper, purely-syntactic artifact rather than
// a graph entangled with run-specific identity (§4.5's referential-identity
// guarantees only hold within one Analyze call).
type treeCache struct {
	db *sql.DB
}

// openCache opens (creating if needed) a sqlite-backed tree cache at path.
// An empty path disables the disk tier; hash returns are still looked up in
// the workspace's in-process memoization, which is what actually matters
// for breaking import cycles within one run (§5).
func openCache(path string) (*treeCache, error) {
	if path == "" {
		return &treeCache{}, nil
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS trees (hash BLOB PRIMARY KEY, tree BLOB NOT NULL)`); err != nil {
		db.Close()
		return nil, err
	}
	return &treeCache{db: db}, nil
}

func (c *treeCache) close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

func contentHash(source string) ([]byte, error) {
	h, err := highwayhash.New64(cacheKey)
	if err != nil {
		return nil, err
	}
	if _, err := h.Write([]byte(source)); err != nil {
		return nil, err
	}
	sum := h.Sum64()
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(sum >> (8 * i))
	}
	return b, nil
}

// lookup returns the cached tree for source's content hash, if present.
func (c *treeCache) lookup(source string) (*ast.Tree, bool) {
	if c.db == nil {
		return nil, false
	}
	hash, err := contentHash(source)
	if err != nil {
		return nil, false
	}
	var blob []byte
	err = c.db.QueryRow(`SELECT tree FROM trees WHERE hash = ?`, hash).Scan(&blob)
	if err != nil {
		return nil, false
	}
	var tree ast.Tree
	if err := gob.NewDecoder(bytes.NewReader(blob)).Decode(&tree); err != nil {
		return nil, false
	}
	return &tree, true
}

// store saves tree under source's content hash for a future run.
func (c *treeCache) store(source string, tree *ast.Tree) {
	if c.db == nil {
		return
	}
	hash, err := contentHash(source)
	if err != nil {
		return
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(tree); err != nil {
		return
	}
	_, _ = c.db.Exec(`INSERT OR REPLACE INTO trees (hash, tree) VALUES (?, ?)`, hash, buf.Bytes())
}
