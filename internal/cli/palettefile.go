package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmylchreest/mixtint/internal/colour"
)

// paletteEntry is the on-disk shape of one sampled colour. Hex and RGB
// are both written for readability; on load they must agree.
type paletteEntry struct {
	Hex   string      `json:"hex"`
	RGB   *colour.RGB `json:"rgb,omitempty"`
	Role  colour.Role `json:"role"`
	Label string      `json:"label,omitempty"`
}

// loadPalette reads a palette file into a session. The file is a JSON
// array of entries; order is preserved because indices address colours.
func loadPalette(path string) (*colour.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}

	var entries []paletteEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse palette file %s: %w", path, err)
	}

	session := colour.NewSession()
	for i, entry := range entries {
		c, err := decodeEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		session.Add(c)
	}
	return session, nil
}

// loadPaletteOrEmpty loads a palette file, treating a missing file as
// an empty session so that sampling can create it.
func loadPaletteOrEmpty(path string) (*colour.Session, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return colour.NewSession(), nil
	}
	return loadPalette(path)
}

// savePalette writes the session back to the palette file.
func savePalette(path string, session *colour.Session) error {
	colours := session.All()
	entries := make([]paletteEntry, len(colours))
	for i, c := range colours {
		rgb := c.RGB
		entries[i] = paletteEntry{
			Hex:   c.Hex(),
			RGB:   &rgb,
			Role:  c.Role,
			Label: c.Label,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode palette: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write palette file: %w", err)
	}
	return nil
}

// decodeEntry converts a file entry into a colour, rejecting malformed
// hex codes, unknown roles, and hex/RGB disagreement.
func decodeEntry(entry paletteEntry) (colour.Colour, error) {
	if !colour.IsValidRole(entry.Role) {
		return colour.Colour{}, fmt.Errorf("invalid role %q (valid: %s, %s)",
			entry.Role, colour.RoleBase, colour.RoleTarget)
	}

	var rgb colour.RGB
	switch {
	case entry.Hex != "":
		parsed, err := colour.ParseHex(entry.Hex)
		if err != nil {
			return colour.Colour{}, err
		}
		if entry.RGB != nil && *entry.RGB != parsed {
			return colour.Colour{}, fmt.Errorf("hex %s disagrees with rgb %s", entry.Hex, entry.RGB)
		}
		rgb = parsed
	case entry.RGB != nil:
		rgb = *entry.RGB
	default:
		return colour.Colour{}, fmt.Errorf("entry has neither hex nor rgb")
	}

	return colour.Colour{RGB: rgb, Role: entry.Role, Label: entry.Label}, nil
}
