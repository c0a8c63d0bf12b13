package pager

import (
	"fmt"
	"strings"

	"github.com/noborus/ov/oviewer"
)

// Config returns the ov configuration used for report paging. The pager
// leaves nothing behind on the terminal once it exits.
func Config() oviewer.Config {
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	return config
}

// Show displays content in the ov pager and blocks until the user quits it
func Show(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	root.SetConfig(Config())

	if err := root.Run(); err != nil {
		return fmt.Errorf("pager: %w", err)
	}
	return nil
}
