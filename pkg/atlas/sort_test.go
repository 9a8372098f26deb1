package atlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortKeysEntityKeysFirst(t *testing.T) {
	keys := []string{
		"f47ac10b-58cc-4372-a567-0e02b2c3d479",
		"USA",
		"00000000-0000-0000-0000-000000000000",
		"ABW",
		"zzz-not-a-code",
		"ZWE",
	}
	SortKeys(keys)

	assert.Equal(t, []string{
		"ABW",
		"USA",
		"ZWE",
		"00000000-0000-0000-0000-000000000000",
		"f47ac10b-58cc-4372-a567-0e02b2c3d479",
		"zzz-not-a-code",
	}, keys)
}

func TestSortKeysLengthBeatsLexical(t *testing.T) {
	// A 3-char key sorts before any other key even when it is lexically
	// greater than the longer key.
	keys := []string{"aaaa", "ZZZ"}
	SortKeys(keys)
	assert.Equal(t, []string{"ZZZ", "aaaa"}, keys)

	keys = []string{"ZZ", "aaa"}
	SortKeys(keys)
	assert.Equal(t, []string{"aaa", "ZZ"}, keys)
}

func TestCompareKeys(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal entity keys", "USA", "USA", 0},
		{"entity keys lexical", "ABW", "USA", -1},
		{"entity key before uuid", "ZZZ", "aaaa-uuid", -1},
		{"uuid after entity key", "aaaa-uuid", "ZZZ", 1},
		{"uuids lexical", "aaaa", "bbbb", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareKeys(tt.a, tt.b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestSortKeysStable(t *testing.T) {
	// Order must be a pure function of the keys, not of input order.
	a := []string{"USA", "CAN", "deadbeef", "ABW"}
	b := []string{"deadbeef", "ABW", "USA", "CAN"}
	SortKeys(a)
	SortKeys(b)
	assert.Equal(t, a, b)
}
