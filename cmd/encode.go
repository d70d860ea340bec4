package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"versync/core/version"

	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [version]",
	Short: "Pack a version string into the legacy 32-bit form",
	Long: `Packs a dotted version string the way the reconciler would and prints
every derived form: the raw 32-bit value, its hex rendering, the decoded
display string and the individual byte lanes.

Pass a hex or decimal number instead to go the other way and decode it.

Examples:
  versync encode 2.528.3
  versync encode 0x02FF14A3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEncode(args[0])
	},
}

func init() {
	RootCmd.AddCommand(encodeCmd)
}

func runEncode(input string) error {
	// A bare number is a decode request.
	if encoded, err := parsePacked(input); err == nil {
		printEncoded(encoded)
		return nil
	}

	ver, err := version.Parse(input)
	if err != nil {
		return err
	}
	encoded, err := ver.Encode()
	if err != nil {
		return err
	}

	fmt.Printf("Input:          %s\n", ver.String())
	printEncoded(encoded)
	return nil
}

// parsePacked reads a packed version given as hex (0x...) or plain decimal.
// Dotted strings fail here and fall through to version parsing.
func parsePacked(s string) (uint32, error) {
	if strings.Contains(s, ".") {
		return 0, fmt.Errorf("not a packed value")
	}
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		n, err := strconv.ParseUint(rest, 16, 32)
		return uint32(n), err
	}
	n, err := strconv.ParseUint(s, 10, 32)
	return uint32(n), err
}

func printEncoded(encoded uint32) {
	major, minor, patch := version.Lanes(encoded)

	fmt.Printf("Encoded:        %d\n", encoded)
	fmt.Printf("Hex:            0x%08X\n", encoded)
	fmt.Printf("Display Form:   %s\n", version.Decode(encoded))
	fmt.Printf("Lanes:          major=%d minor=%d patch=%d\n", major, minor, patch)
}
