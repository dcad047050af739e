package descriptor

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Encode re-serializes the descriptor as TOML. Loading the output yields an
// equal descriptor (round-trip identity).
func (d *Descriptor) Encode() ([]byte, error) {
	var buf bytes.Buffer

	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encoding descriptor: %w", err)
	}

	return buf.Bytes(), nil
}
