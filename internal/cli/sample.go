package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mixtint/internal/colour"
	"github.com/jmylchreest/mixtint/internal/image"
)

var (
	// Sample command flags
	sampleAt     []string
	sampleRole   string
	sampleLabels []string
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample <image> <palette-file>",
	Short: "Sample pixel colours from an image into a palette",
	Long: `Sample reads pixel colours from an image at the given coordinates and
appends them to the palette file, creating the file if needed.

Coordinates outside the image are clamped to the nearest edge pixel.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Sample two base colours
  mixtint sample wall.png palette.json --role base --at 10,20 --at 300,42

  # Sample a labelled target colour
  mixtint sample wall.png palette.json --role target --at 55,90 --label sky`,
	Args: cobra.ExactArgs(2),
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().StringArrayVar(&sampleAt, "at", nil, "pixel coordinate to sample, as x,y (repeatable)")
	sampleCmd.Flags().StringVar(&sampleRole, "role", string(colour.RoleBase), "role for sampled colours (base, target)")
	sampleCmd.Flags().StringSliceVar(&sampleLabels, "label", nil, "labels for the sampled colours, in --at order")
}

// runSample executes the sample command.
func runSample(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	imagePath, palettePath := args[0], args[1]

	role := colour.Role(sampleRole)
	if !colour.IsValidRole(role) {
		return fmt.Errorf("invalid role: %s (valid: %s, %s)", sampleRole, colour.RoleBase, colour.RoleTarget)
	}
	if len(sampleAt) == 0 {
		return fmt.Errorf("no coordinates given: pass at least one --at x,y")
	}
	if len(sampleLabels) > len(sampleAt) {
		return fmt.Errorf("%d labels for %d coordinates", len(sampleLabels), len(sampleAt))
	}

	if err := image.ValidatePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	loader := image.NewFileLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("image loaded", "path", imagePath, "width", bounds.Dx(), "height", bounds.Dy())

	session, err := loadPaletteOrEmpty(palettePath)
	if err != nil {
		return err
	}

	for i, coord := range sampleAt {
		x, y, err := parseCoordinate(coord)
		if err != nil {
			return err
		}

		rgb := image.SampleAt(img, x, y)
		c := colour.Colour{RGB: rgb, Role: role}
		if i < len(sampleLabels) {
			c.Label = sampleLabels[i]
		}
		idx := session.Add(c)
		logger.Info("colour sampled", "index", idx, "hex", c.Hex(), "role", role, "x", x, "y", y)
	}

	if err := savePalette(palettePath, session); err != nil {
		return err
	}
	logger.Debug("palette saved", "path", palettePath, "colours", session.Len())
	return nil
}

// parseCoordinate parses an "x,y" pair of non-negative integers.
func parseCoordinate(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid coordinate %q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x in coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y in coordinate %q: %w", s, err)
	}
	return x, y, nil
}
