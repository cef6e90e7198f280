package typearg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WriteConf writes the three-line type-arg configure file read by the
// simulator: a "0 <n_pot>" header, the space-joined type codes and the
// space-joined arguments at 14 significant digits.
func WriteConf(path string, types []int, args []float64) error {
	var b strings.Builder
	fmt.Fprintf(&b, "0 %d\n", len(types))
	for i, t := range types {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(t))
	}
	b.WriteByte('\n')
	for i, a := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(a, 'g', 14, 64))
	}
	b.WriteByte('\n')
	return os.WriteFile(path, []byte(b.String()), 0644)
}
