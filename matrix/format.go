// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"golang.org/x/text/message"
)

// Format renders m as R lines, one per row, in row-major order.
// Within a line the C elements are joined by the delimiter; there is no
// trailing delimiter after the last element and no line break after the last
// row. With defaults, [[1,2],[3,4]] renders as "1,2\n3,4".
//
// Complexity: O(R*C).
func (m *Fixed[T, R, C]) Format(opts ...FormatOption) string {
	r, c := shapeOf[R, C]()

	return renderRows(m.elems(), r, c, gatherFormatOptions(opts...))
}

// String implements fmt.Stringer with the default Format options.
func (m *Fixed[T, R, C]) String() string { return m.Format() }

// renderRows is shared by Fixed and Dense so both obey one layout contract.
func renderRows[T Number](data []T, rows, cols int, o formatOptions) string {
	sprintf := fmt.Sprintf
	if o.localized {
		p := message.NewPrinter(o.locale)
		sprintf = func(format string, a ...any) string { return p.Sprintf(format, a...) }
	}

	var b strings.Builder
	var i, j, base int
	for i = 0; i < rows; i++ {
		if i > 0 {
			b.WriteString(lineBreak)
		}
		base = i * cols
		for j = 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(o.delimiter)
			}
			b.WriteString(sprintf(o.verb, data[base+j]))
		}
	}

	return b.String()
}
