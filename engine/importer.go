package engine

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/endive-xyz/go-endive/object"
)

// handleUsing imports a proof script. Dots in the module name become
// path separators: "Using arith.peano" reads "arith/peano.end" relative
// to the importing file (or the engine's base path at top level).
// Completed imports are skipped; import cycles are rejected.
func (e *Engine) handleUsing(args []object.Object) Outcome {
	if len(args) != 1 {
		return Outcome{OK: false, Message: "Using needs a module name"}
	}
	name, ok := args[0].(*object.Term)
	if !ok || len(name.Children) != 0 {
		return Outcome{OK: false, Message: "module name must be a simple term"}
	}

	baseDir := e.basePath
	if len(e.importing) > 0 {
		baseDir = filepath.Dir(e.importing[len(e.importing)-1])
	}
	relative := strings.ReplaceAll(name.Name, ".", string(filepath.Separator)) + ".end"
	path, err := filepath.Abs(filepath.Join(baseDir, relative))
	if err != nil {
		return Outcome{OK: false, Message: "cannot resolve import: " + err.Error()}
	}

	if e.imported[path] {
		return Outcome{OK: true, Message: "Already imported: " + name.Name}
	}
	for _, active := range e.importing {
		if active == path {
			return Outcome{OK: false, Message: "Circular import: " + name.Name}
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return Outcome{OK: false, Message: "File not found: " + path}
	}
	defer f.Close()

	e.importing = append(e.importing, path)
	e.logger.Debug().Str("path", path).Msg("importing")

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if outcome := e.Process(line); !outcome.OK {
			e.importing = e.importing[:len(e.importing)-1]
			return outcome
		}
	}
	e.importing = e.importing[:len(e.importing)-1]
	if err := scanner.Err(); err != nil {
		return Outcome{OK: false, Message: "Import error: " + err.Error()}
	}

	e.imported[path] = true
	return Outcome{OK: true, Message: "Imported: " + name.Name}
}
