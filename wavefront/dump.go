// SPDX-License-Identifier: MIT

package wavefront

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Dump writes the levels of scores from..to held by s as a table:
//
//	SCORE  COMP  LO  HI  OFFSETS
//	0      M     0   0   3
//
// Unreached cells print as "·". Scores that are absent or evicted are skipped.
func Dump(w io.Writer, s Store, from, to int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "SCORE\tCOMP\tLO\tHI\tOFFSETS"); err != nil {
		return err
	}
	var (
		score int
		lvl   Level
		ok    bool
	)
	for score = from; score <= to; score++ {
		if lvl, ok = s.Get(score); !ok || lvl.Empty() {
			continue
		}
		for _, c := range [...]Component{M, I, D} {
			wf := lvl.Get(c)
			if wf == nil {
				continue
			}
			if _, err := fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n", score, c, wf.lo, wf.hi, formatOffsets(wf)); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}

func formatOffsets(wf *Wavefront) string {
	parts := make([]string, len(wf.offsets))
	for i, o := range wf.offsets {
		if o == OffsetNull {
			parts[i] = "·"
			continue
		}
		parts[i] = strconv.Itoa(o)
	}

	return strings.Join(parts, " ")
}
