package ui

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// EditorEnv names the environment variable holding the editor command
const EditorEnv = "EDITOR"

// ErrEditorNotConfigured is returned when no editor command is available
var ErrEditorNotConfigured = errors.New("the $EDITOR environment variable is not set")

// EditorError reports an editor that failed to start or exited abnormally
type EditorError struct {
	Editor string
	Path   string
	Line   int
	Err    error
}

func (e *EditorError) Error() string {
	return fmt.Sprintf("editor %q failed on %s:%d: %v", e.Editor, e.Path, e.Line, e.Err)
}

func (e *EditorError) Unwrap() error {
	return e.Err
}

// ResolveEditor returns the editor from the environment, falling back to the
// configured command
func ResolveEditor(getenv func(string) string, configured string) string {
	if editor := getenv(EditorEnv); editor != "" {
		return editor
	}
	return configured
}

// EditorCommand builds `<editor> +<line> <path>` run through the shell. The
// editor string may carry its own arguments; line and path are passed as
// positional parameters so the path is never re-parsed by the shell.
func EditorCommand(editor string, line int, path string) *exec.Cmd {
	script := editor + ` "$@"`
	return exec.Command("sh", "-c", script, "sh", "+"+strconv.Itoa(line), path)
}
