// Package genesis renders a snapshot into the genesis TOML document.
package genesis

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/jsdanielh/pos-state-dump/internal/model"
)

// Write renders the provenance header followed by the TOML document body.
// Key order follows the snapshot's field order; empty collections are
// omitted entirely.
func Write(w io.Writer, snapshot *model.Snapshot) error {
	_, err := fmt.Fprintf(w,
		"\n# File generated at %s from Nimiq PoS chain\n# - Block height: %d\n# - Block hash: %s\n\n",
		snapshot.Provenance.GeneratedAt,
		snapshot.Provenance.BlockHeight,
		snapshot.Provenance.BlockHash,
	)
	if err != nil {
		return fmt.Errorf("write provenance header: %w", err)
	}
	if err := toml.NewEncoder(w).Encode(snapshot); err != nil {
		return fmt.Errorf("encode genesis document: %w", err)
	}
	return nil
}

// WriteFile writes the rendered document to path. The file is created only
// here, after the snapshot has been fully assembled, so a failed fetch never
// leaves a file behind.
func WriteFile(path string, snapshot *model.Snapshot) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(file, snapshot); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
