// Package typearg renders potential stacks in the simulator's --type-arg
// text form and writes its type-arg configure files.
//
// The encoding is colon/pipe/comma delimited:
//
//	type1:arg1-1,arg1-2|type2:arg2-1,arg2-2
//
// where '|' separates stacked components, ':' separates type codes from
// arguments and ',' separates list items. A component whose instance
// splits into several codes shares one argument block:
// "5,5,5:arg1,arg2,...".
package typearg

import (
	"strconv"
	"strings"

	"github.com/san-kum/galpot/internal/potential"
)

// LongArgThreshold is the argument count above which listings defer to a
// configure file instead of printing the encoding inline.
const LongArgThreshold = 12

// EncodeOne renders a single instance through the library's canonical
// splitting.
func EncodeOne(p potential.Potential) (string, error) {
	types, args, err := potential.Parse(p)
	if err != nil {
		return "", err
	}
	return Join(types, args), nil
}

// Encode renders a stack of instances as per-component blocks joined
// with '|', in original order.
func Encode(comps []potential.Potential) (string, error) {
	parts := make([]string, 0, len(comps))
	for _, p := range comps {
		s, err := EncodeOne(p)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "|"), nil
}

// Join formats one type/argument block.
func Join(types []int, args []float64) string {
	var b strings.Builder
	for i, t := range types {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(t))
	}
	b.WriteByte(':')
	for i, a := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(FormatArg(a))
	}
	return b.String()
}

// FormatArg renders one argument with the shortest round-trip form.
func FormatArg(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
