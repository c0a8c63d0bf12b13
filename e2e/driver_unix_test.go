//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

const ringSize = 1 << 20 // 1 MiB of scrollback

var binPath = "linescope_e2e"

const (
	KeyEnter     = "\r"
	KeyCtrlC     = "\x03"
	KeyBackspace = "\x7f"
	KeyQuit      = "q"
)

// ansiRe strips CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// ring keeps the last ringSize bytes written by the application
type ring struct {
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

func (r *ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range p {
		r.buf[r.head] = b
		r.head = (r.head + 1) % len(r.buf)
		if r.head == 0 {
			r.full = true
		}
	}
	return len(p), nil
}

func (r *ring) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full {
		return string(r.buf[:r.head])
	}
	return string(r.buf[r.head:]) + string(r.buf[:r.head])
}

// TUITestFramework runs linescope in a PTY and records what it draws
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	cmd       *exec.Cmd
	workspace string
	env       []string
	out       *ring
}

// NewTUITest creates a new TUI test framework instance
func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{
		t:   t,
		out: &ring{buf: make([]byte, ringSize)},
	}
}

// SetEnv adds variables to the environment of the next StartApp call
func (tf *TUITestFramework) SetEnv(kv ...string) {
	tf.env = append(tf.env, kv...)
}

// StartApp launches linescope with args on a 120x40 PTY
func (tf *TUITestFramework) StartApp(args ...string) error {
	tf.cmd = exec.Command(binPath, args...)
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+tf.workspace,
		"XDG_CONFIG_HOME="+filepath.Join(tf.workspace, ".config"),
		"EDITOR=",
		"NO_COLOR=1",
	)
	tf.cmd.Env = append(tf.cmd.Env, tf.env...)

	f, err := pty.StartWithSize(tf.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("failed to start in pty: %w", err)
	}
	tf.pty = f

	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := f.Read(buf)
			if n > 0 {
				_, _ = tf.out.Write(buf[:n])
			}
			if err != nil {
				return
			}
		}
	}()
	return nil
}

// SendKeys writes raw keystrokes to the application
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// SendEnter sends an Enter key
func (tf *TUITestFramework) SendEnter() error {
	tf.t.Helper()
	return tf.SendKeys(KeyEnter)
}

// SendCtrlC sends Ctrl+C
func (tf *TUITestFramework) SendCtrlC() error {
	tf.t.Helper()
	return tf.SendKeys(KeyCtrlC)
}

// Quit sends 'q'
func (tf *TUITestFramework) Quit() error {
	tf.t.Helper()
	return tf.SendKeys(KeyQuit)
}

// Digits types a number
func (tf *TUITestFramework) Digits(n string) error {
	tf.t.Helper()
	return tf.SendKeys(n)
}

// Erase sends backspace
func (tf *TUITestFramework) Erase() error {
	tf.t.Helper()
	return tf.SendKeys(KeyBackspace)
}

// Choose types a number and confirms it
func (tf *TUITestFramework) Choose(n string) error {
	tf.t.Helper()
	if err := tf.Digits(n); err != nil {
		return err
	}
	return tf.SendEnter()
}

// Ready waits for the navigator to draw its first frame
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.seePlainWithin("was found", 5*time.Second)
}

// SeePlain waits for text to appear in the output with escapes removed
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.seePlainWithin(text, 3*time.Second)
}

func (tf *TUITestFramework) seePlainWithin(text string, timeout time.Duration) bool {
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

// WaitFor polls the output until pred holds or timeout elapses
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.out.String()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// SnapshotPlain returns everything drawn so far with escapes removed
func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.out.String(), "")
}

// DumpTailOnFail saves the last n bytes of plain output for debugging
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, name string, n int) {
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(s), 0o644)
	t.Logf("Saved tail to %s:\n%s", p, s)
}

// Cleanup closes the PTY and kills the application. The output tail is
// logged when the test failed.
func (tf *TUITestFramework) Cleanup() {
	if tf.t.Failed() {
		tf.DumpTailOnFail(tf.t, strings.ReplaceAll(tf.t.Name(), "/", "_"), 4096)
	}
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
	tf.workspace = ""
}
