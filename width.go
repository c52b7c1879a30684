package sixbit

import "fmt"

// Profile describes the bit budget of one supported container width.
//
// TagBits is 4 exactly for the 16- and 64-bit widths and 2 otherwise: those
// are the spare bits left after filling the container with 6-bit slots.
// MaxWideChars is the capacity under the wide (15-bit) Han encoding; it is
// zero for the 8- and 16-bit widths, where the Han tag exists but no
// positive-length payload fits.
type Profile struct {
	Width        int
	TagBits      int
	CodingBits   int
	MaxChars     int
	MaxWideChars int
}

var profiles = [...]Profile{
	{Width: 8, TagBits: 2, CodingBits: 6, MaxChars: 1, MaxWideChars: 0},
	{Width: 16, TagBits: 4, CodingBits: 12, MaxChars: 2, MaxWideChars: 0},
	{Width: 32, TagBits: 2, CodingBits: 30, MaxChars: 5, MaxWideChars: 2},
	{Width: 64, TagBits: 4, CodingBits: 60, MaxChars: 10, MaxWideChars: 4},
	{Width: 128, TagBits: 2, CodingBits: 126, MaxChars: 21, MaxWideChars: 8},
}

// ProfileFor returns the bit-budget profile for a container width.
func ProfileFor(width int) (Profile, error) {
	for _, p := range profiles {
		if p.Width == width {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %d bits", ErrUnsupportedWidth, width)
}

// Widths lists the supported container widths in ascending order.
func Widths() []int {
	out := make([]int, len(profiles))
	for i, p := range profiles {
		out[i] = p.Width
	}
	return out
}

// MaxLength returns the character capacity at this width: MaxWideChars for
// the wide page, MaxChars for 6-bit pages.
func (p Profile) MaxLength(wide bool) int {
	if wide {
		return p.MaxWideChars
	}
	return p.MaxChars
}
