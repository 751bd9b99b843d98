// Package backup implements the opaque resume-checkpoint format: a
// JSON document capturing enough state (formula, x, tuning factors,
// next unprocessed low bound, and the running accumulator) to resume
// a long-running segment-engine computation after an interruption.
// No ecosystem JSON library appears anywhere in the corpus, so this
// uses stdlib encoding/json directly -- a deliberate stdlib choice,
// not a fallback (see DESIGN.md).
package backup

import (
	"encoding/json"
	"os"

	"github.com/kimwalisch/primecount-go/internal/i128"
	"github.com/kimwalisch/primecount-go/internal/perr"
)

// Checkpoint is the full serializable state of an in-progress
// special-leaf computation.
type Checkpoint struct {
	Formula    string `json:"formula"`
	X          string `json:"x"` // decimal i128.Int.String()
	Alpha      float64 `json:"alpha"`
	AlphaY     float64 `json:"alpha_y"`
	AlphaZ     float64 `json:"alpha_z"`
	Threads    int     `json:"threads"`
	Low        int64   `json:"low"`
	SegmentLen int64   `json:"segment_len"`
	Segments   int64   `json:"segments"`
	Sum        string  `json:"sum"` // decimal i128.Int.String()
	Percent    int     `json:"percent"`
}

// XValue decodes the stored x back into an i128.Int.
func (c Checkpoint) XValue() (i128.Int, error) {
	v, ok := i128.FromString(c.X)
	if !ok {
		return i128.Zero, perr.CorruptBackup("backup field x=%q is not a valid integer", c.X)
	}
	return v, nil
}

// SumValue decodes the stored running sum back into an i128.Int.
func (c Checkpoint) SumValue() (i128.Int, error) {
	v, ok := i128.FromString(c.Sum)
	if !ok {
		return i128.Zero, perr.CorruptBackup("backup field sum=%q is not a valid integer", c.Sum)
	}
	return v, nil
}

// Save writes cp to path as indented JSON.
func Save(path string, cp Checkpoint) error {
	data, err := json.MarshalIndent(cp, "", "  ")
	if err != nil {
		return perr.InternalInvariant("marshaling backup: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return perr.ResourceExhaustion("writing backup file %s: %v", path, err)
	}
	return nil
}

// Load reads and parses a checkpoint from path, validating that the
// embedded x and sum fields are well-formed integers.
func Load(path string) (Checkpoint, error) {
	var cp Checkpoint
	data, err := os.ReadFile(path)
	if err != nil {
		return cp, perr.CorruptBackup("reading backup file %s: %v", path, err)
	}
	if err := json.Unmarshal(data, &cp); err != nil {
		return cp, perr.CorruptBackup("parsing backup file %s: %v", path, err)
	}
	if _, err := cp.XValue(); err != nil {
		return cp, err
	}
	if _, err := cp.SumValue(); err != nil {
		return cp, err
	}
	if cp.Low < 0 || cp.SegmentLen < 0 || cp.Segments < 0 {
		return cp, perr.CorruptBackup("backup file %s has negative segment bounds", path)
	}
	return cp, nil
}
