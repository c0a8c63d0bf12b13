//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CreateTestWorkspace creates a temporary directory for source files
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteFiles writes files relative to the workspace
func (tf *TUITestFramework) WriteFiles(files map[string]string) error {
	if tf.workspace == "" {
		return fmt.Errorf("workspace not created")
	}
	for rel, content := range files {
		path := filepath.Join(tf.workspace, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// FakeEditor installs a script that records its arguments, one per line,
// and points $EDITOR at it. It returns the file the arguments go to.
func (tf *TUITestFramework) FakeEditor() (string, error) {
	dir := tf.t.TempDir()
	out := filepath.Join(dir, "editor-args")
	script := filepath.Join(dir, "editor.sh")
	body := fmt.Sprintf("#!/bin/sh\nprintf '%%s\\n' \"$@\" > %q\n", out)
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		return "", err
	}
	tf.SetEnv("EDITOR=" + script)
	return out, nil
}

// FailingEditor points $EDITOR at a script that exits non-zero
func (tf *TUITestFramework) FailingEditor() error {
	script := filepath.Join(tf.t.TempDir(), "broken.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0o755); err != nil {
		return err
	}
	tf.SetEnv("EDITOR=" + script)
	return nil
}

// WaitExit waits for the process to end and returns its error
func (tf *TUITestFramework) WaitExit(timeout time.Duration) (bool, error) {
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()
	select {
	case err := <-done:
		return true, err
	case <-time.After(timeout):
		return false, nil
	}
}

// readArgs returns the lines written by the fake editor
func readArgs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n"), nil
}

var sources = map[string]string{
	"a/first.go":  "package a\n\n// TODO tidy imports\nfunc First() {}\n",
	"b/second.py": "# TODO drop python2\nimport os\n\nprint(os.name)  # name\n",
	"c/third.go":  "package c\n\nfunc Third() int {\n\treturn 3\n}\n",
}
