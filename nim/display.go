package nim

import (
	"strconv"
	"strings"

	"github.com/lruais/nimtools/alphaidx"
)

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// ToDisplayText draws the position as a column chart, one X per token and
// one column per pile, with the pile labels along the bottom:
//
//	4   X
//	3   X
//	2 X X
//	1 X X X
//	  A B C
//
// Spent piles keep their column, so labels stay stable for the whole game.
func (p *Position) ToDisplayText() string {
	if len(p.piles) == 0 {
		return ""
	}
	highest := 0
	for _, v := range p.piles {
		if v > highest {
			highest = v
		}
	}
	numWidth := len(strconv.Itoa(highest))
	labels := make([]string, len(p.piles))
	for i := range p.piles {
		labels[i] = alphaidx.Encode(i)
	}
	// The last label is the widest one; labels only grow with the index.
	cellWidth := len(labels[len(labels)-1])

	var sb strings.Builder
	cells := make([]string, len(p.piles))
	for level := highest; level > 0; level-- {
		for i, v := range p.piles {
			if v >= level {
				cells[i] = pad("X", cellWidth)
			} else {
				cells[i] = pad("", cellWidth)
			}
		}
		sb.WriteString(pad(strconv.Itoa(level), numWidth))
		sb.WriteString(" ")
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteString("\n")
	}
	for i, label := range labels {
		cells[i] = pad(label, cellWidth)
	}
	sb.WriteString(pad("", numWidth))
	sb.WriteString(" ")
	sb.WriteString(strings.Join(cells, " "))
	return sb.String()
}
