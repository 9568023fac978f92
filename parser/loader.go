// Loading and file inclusion. Grounded on sqlparser/parser.go's
// ParseFilesystems (vippsas/sqlcode) for the "try each candidate,
// track what's already been visited" shape, adapted to spec.md §4.6's
// inode-based cycle detection (not content hashing) using the
// syscall.Stat_t idiom seen in
// other_examples/90175998_worldiety-vfs__spec.go.go and
// other_examples/4c1deab1_DataDog-dd-trace-go__internal-container_linux_test.go.go.
package parser

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/kettlebell/cfgscript/internal/lang/lexer"
	"github.com/kettlebell/cfgscript/internal/lang/token"
)

func inodeOf(info os.FileInfo) uint64 {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return st.Ino
	}
	return 0
}

// ProbeSources reports whether any of the given paths, tried in
// order, can be opened, and at which index, without loading or
// parsing it. Grounded on ccfg_can_open_sources.
func ProbeSources(sources []string) (ok bool, index int) {
	for i, s := range sources {
		f, err := os.Open(s)
		if err != nil {
			continue
		}
		f.Close()
		return true, i
	}
	return false, -1
}

// Load tries each source in order and parses the first one that opens
// successfully. It reports which index was used, or ok=false if none
// of them could be opened. Failing to open any source is not itself
// an error (spec.md §7: "callers detect this via can_open_sources");
// the sticky error flag is untouched.
func (c *Context) Load(sources []string) (index int, ok bool) {
	if c.Blocked() {
		return -1, false
	}
	c.visited = make(map[uint64]bool)
	for i, s := range sources {
		data, inode, err := readFile(s)
		if err != nil {
			continue
		}
		c.visited[inode] = true
		c.lex = lexer.New(string(data))
		c.fileDir = filepath.Dir(s)
		c.fileInode = inode
		c.depth = 0
		c.runParseLoop()
		return i, true
	}
	return -1, false
}

// LoadInternal parses buffer as if it were a loaded source, but with
// no backing file: its inode is 0, which disables INCLUDE for the
// whole load (a buffer has no directory to resolve relative includes
// against). Grounded on ccfg_load_internal.
func (c *Context) LoadInternal(buffer string) {
	if c.Blocked() {
		return
	}
	c.visited = make(map[uint64]bool)
	c.lex = lexer.New(buffer)
	c.fileDir = ""
	c.fileInode = 0
	c.depth = 0
	c.runParseLoop()
}

// runParseLoop drives ParseSequence to the end of the current lexer's
// input, stopping early if a handler latches the sticky error flag
// mid-parse: once failed, every further sequence would be a no-op
// anyway (invariant 5), so there is no reason to keep scanning.
func (c *Context) runParseLoop() {
	for !c.lex.AtEOF() && !c.failed {
		c.ParseSequence()
	}
}

func readFile(path string) (data []byte, inode uint64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, 0, err
	}
	data, err = io.ReadAll(f)
	if err != nil {
		return nil, 0, err
	}
	return data, inodeOf(info), nil
}

// include implements INCLUDE. Disabled while restricted or while
// running against an in-memory buffer (fileInode == 0). Grounded on
// original_source/src/sequence.c:include.
func (c *Context) include() {
	if c.restricted || c.fileInode == 0 {
		return
	}
	for {
		t := c.getToken()
		if t.Kind == token.Invalid {
			break
		}
		path := t.Text
		if !strings.HasPrefix(path, "/") && c.fileDir != "" {
			path = filepath.Join(c.fileDir, path)
		}
		c.includeFile(path)
	}
}

// includeFile parses path as a child of the current source. A missing
// file or a cycle are both silent, no-op failures (spec.md §7 lists
// "cycle in include" among the parser-level failures that never latch
// the sticky error flag): the INCLUDE sequence simply contributes
// nothing. The child's inode is pushed into the ancestor set only for
// the duration of its own parse (spec.md §4.6), so the same file can
// still be included again from a sibling branch once this child
// returns — it is a cycle-detection stack, not a permanent dedup set.
func (c *Context) includeFile(path string) {
	data, inode, err := readFile(path)
	if err != nil {
		return
	}
	if c.visited[inode] {
		return
	}
	c.visited[inode] = true

	savedLex, savedDir, savedInode := c.lex, c.fileDir, c.fileInode
	c.lex = lexer.New(string(data))
	c.fileDir = filepath.Dir(path)
	c.fileInode = inode

	c.runParseLoop()

	c.lex, c.fileDir, c.fileInode = savedLex, savedDir, savedInode
	delete(c.visited, inode)
}
