package sixbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkOrder(t *testing.T, a, b string, width int) {
	t.Helper()
	require.Less(t, a, b, "test vectors must already be in code-point order")
	va, err := Encode(a, width)
	require.NoError(t, err)
	vb, err := Encode(b, width)
	require.NoError(t, err)
	assert.Equal(t, -1, va.Cmp(vb), "%q should pack below %q at %d bits", a, b, width)
}

func TestOrderWithinPage(t *testing.T) {
	checkOrder(t, "", "AB", 32)
	checkOrder(t, "ABC", "ABD", 32)
	checkOrder(t, "abcd", "abcde", 64)
	checkOrder(t, "abcde", "abcdf", 64)
	checkOrder(t, "α", "αβγ", 64)
	checkOrder(t, "αβ", "αβγ", 64)
	checkOrder(t, "αβγ", "αβδ", 64)
	checkOrder(t, "а", "я", 8)
	checkOrder(t, "一", "一丁", 64)
	checkOrder(t, "一丁", "一丂", 64)
	checkOrder(t, "中", "中文", 128)
}

func TestOrderPrefixBeforeExtension(t *testing.T) {
	// A strict prefix always packs strictly below any extension.
	words := []string{"", "N", "NO", "NO_", "NO_C", "NO_CARRIER"}
	for i := 1; i < len(words); i++ {
		checkOrder(t, words[i-1], words[i], 64)
	}
}

func TestOrderAcrossPages(t *testing.T) {
	// Cross-page comparisons follow tag order, which follows the pages'
	// initial Unicode blocks.
	chain := []string{"ABC", "abc", "αβγ", "абв", "אבג", "ابة", "कखग", "ㄱㄲㄳ", "中文字", "ｦｧｨ"}
	for i := 1; i < len(chain); i++ {
		checkOrder(t, chain[i-1], chain[i], 64)
	}
}

func TestOrderMatchesStringSort(t *testing.T) {
	words := []string{"", "ANT", "BAT", "BATCH", "CAT", "CATTLE", "DOG"}
	for i := 1; i < len(words); i++ {
		checkOrder(t, words[i-1], words[i], 64)
		checkOrder(t, words[i-1], words[i], 128)
	}
}
