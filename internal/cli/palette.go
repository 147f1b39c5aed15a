package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mixtint/internal/colour"
)

var (
	// palette add/list flags
	paletteAddRole   string
	paletteAddLabel  string
	paletteListPlain bool
)

// paletteCmd groups the palette management subcommands.
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Manage the colours in a palette file",
	Long: `Palette manages the ordered colour list used by analyze: list the
colours with their indices, add colours by hex code, edit labels,
remove colours, or clear the file.

Colours are addressed by index. Removing a colour shifts every later
index down by one.`,
}

var paletteListCmd = &cobra.Command{
	Use:   "list <palette-file>",
	Short: "List palette colours with their indices",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaletteList,
}

var paletteAddCmd = &cobra.Command{
	Use:   "add <palette-file> <hex>",
	Short: "Add a colour by hex code",
	Args:  cobra.ExactArgs(2),
	RunE:  runPaletteAdd,
}

var paletteRelabelCmd = &cobra.Command{
	Use:   "relabel <palette-file> <index> <label>",
	Short: "Set the custom label of the colour at an index",
	Args:  cobra.ExactArgs(3),
	RunE:  runPaletteRelabel,
}

var paletteRemoveCmd = &cobra.Command{
	Use:   "remove <palette-file> <index>",
	Short: "Remove the colour at an index",
	Args:  cobra.ExactArgs(2),
	RunE:  runPaletteRemove,
}

var paletteClearCmd = &cobra.Command{
	Use:   "clear <palette-file>",
	Short: "Remove every colour from the palette",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaletteClear,
}

var paletteImportLabelsCmd = &cobra.Command{
	Use:   "import-labels <palette-file> <labels>",
	Short: "Assign comma-separated labels to colours by position",
	Long: `Import-labels assigns labels positionally: the first label goes to the
colour at index 0, the second to index 1, and so on. Extra labels are
ignored.

Example:
  mixtint palette import-labels palette.json "ochre,umber,sky"`,
	Args: cobra.ExactArgs(2),
	RunE: runPaletteImportLabels,
}

func init() {
	paletteAddCmd.Flags().StringVar(&paletteAddRole, "role", string(colour.RoleBase), "role for the colour (base, target)")
	paletteAddCmd.Flags().StringVar(&paletteAddLabel, "label", "", "custom label for the colour")
	paletteListCmd.Flags().BoolVar(&paletteListPlain, "plain", false, "list without colour previews")

	paletteCmd.AddCommand(paletteListCmd)
	paletteCmd.AddCommand(paletteAddCmd)
	paletteCmd.AddCommand(paletteRelabelCmd)
	paletteCmd.AddCommand(paletteRemoveCmd)
	paletteCmd.AddCommand(paletteClearCmd)
	paletteCmd.AddCommand(paletteImportLabelsCmd)
}

func runPaletteList(cmd *cobra.Command, args []string) error {
	session, err := loadPalette(args[0])
	if err != nil {
		return err
	}

	preview := !paletteListPlain && colour.SupportsANSIColours()
	for i, c := range session.All() {
		if preview {
			fmt.Printf("%3d  %s  %-6s  %-20s %s\n",
				i, colour.ColourPreview(c.RGB, 4), c.Role, c.DisplayLabel(), c.Hex())
		} else {
			fmt.Printf("%3d  %-6s  %-20s %s\n", i, c.Role, c.DisplayLabel(), c.Hex())
		}
	}
	return nil
}

func runPaletteAdd(cmd *cobra.Command, args []string) error {
	palettePath, hex := args[0], args[1]

	role := colour.Role(paletteAddRole)
	if !colour.IsValidRole(role) {
		return fmt.Errorf("invalid role: %s (valid: %s, %s)", paletteAddRole, colour.RoleBase, colour.RoleTarget)
	}
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return err
	}

	session, err := loadPaletteOrEmpty(palettePath)
	if err != nil {
		return err
	}
	idx := session.Add(colour.Colour{RGB: rgb, Role: role, Label: paletteAddLabel})
	if err := savePalette(palettePath, session); err != nil {
		return err
	}

	newLogger(cmd).Info("colour added", "index", idx, "hex", rgb.Hex(), "role", role)
	return nil
}

func runPaletteRelabel(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	session, err := loadPalette(args[0])
	if err != nil {
		return err
	}
	if err := session.RelabelAt(index, args[2]); err != nil {
		return err
	}
	return savePalette(args[0], session)
}

func runPaletteRemove(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	session, err := loadPalette(args[0])
	if err != nil {
		return err
	}
	if err := session.RemoveAt(index); err != nil {
		return err
	}
	return savePalette(args[0], session)
}

func runPaletteClear(cmd *cobra.Command, args []string) error {
	session, err := loadPalette(args[0])
	if err != nil {
		return err
	}
	session.Clear()
	return savePalette(args[0], session)
}

func runPaletteImportLabels(cmd *cobra.Command, args []string) error {
	var labels []string
	for _, label := range strings.Split(args[1], ",") {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	if len(labels) == 0 {
		return fmt.Errorf("no labels given")
	}

	session, err := loadPalette(args[0])
	if err != nil {
		return err
	}
	applied := session.ImportLabels(labels)
	if err := savePalette(args[0], session); err != nil {
		return err
	}

	newLogger(cmd).Info("labels imported", "applied", applied, "given", len(labels))
	return nil
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}
	return index, nil
}
