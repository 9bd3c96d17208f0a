package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutExtraWideWidth is the threshold for extra-wide layouts.
	LayoutExtraWideWidth = 160
)

// Residue display.
const (
	// ResidueBlock is the number of residues between spaces in the detail pane.
	ResidueBlock = 10

	// ResidueBlocksMax caps the number of blocks on one line.
	ResidueBlocksMax = 8
)

// Timing constants.
const (
	// DefaultUIInterval is how often the UI checks the store while loading.
	DefaultUIInterval = 250 * time.Millisecond
)
