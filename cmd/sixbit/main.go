// Command sixbit encodes and decodes packed small strings for inspection and
// debugging of stored values.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graydon/sixbit"
	"github.com/graydon/sixbit/codepage"
)

var width int

var root = &cobra.Command{
	Use:   "sixbit",
	Short: "Pack short single-script strings into fixed-width integers and back.",
	Example: `sixbit encode -w 32 "HELLO"
sixbit decode -w 32 0x299adb70
sixbit pages`,
	SilenceUsage: true,
}

var encodeCmd = &cobra.Command{
	Use:   "encode TEXT",
	Short: "Encode TEXT at the chosen width and print the packed value as hex.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := sixbit.Encode(args[0], width)
		if err != nil {
			return err
		}
		fmt.Println(hexAtWidth(v, width))
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode HEX",
	Short: "Decode a hex packed value at the chosen width and print the text.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := sixbit.ParseUint128(args[0])
		if err != nil {
			return err
		}
		s, err := sixbit.DecodeString(v, width)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	},
}

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Print the tag assignment table.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tag   page            chars  bits/char  availability")
		for _, p := range codepage.All() {
			avail := "16/64-bit only"
			if p.Primary() {
				avail = "all widths"
			}
			fmt.Printf("%04b  %-14s  %5d  %9d  %s\n",
				p.Tag, p.Name, p.Size()-1, p.CodeBits(), avail)
		}
	},
}

// hexAtWidth trims the 128-bit hex form to the container's nibble count.
func hexAtWidth(v sixbit.Uint128, width int) string {
	h := v.Hex()
	return "0x" + strings.ToLower(h[len(h)-width/4:])
}

func main() {
	root.PersistentFlags().IntVarP(&width, "width", "w", 64, "container width in bits (8, 16, 32, 64 or 128)")
	root.AddCommand(encodeCmd, decodeCmd, pagesCmd)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
