package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"

	"github.com/udisondev/ttkbench/internal/sim"
)

var plural = pluralize.NewClient()

// Summary describes a batch in one or two lines, e.g.
// "3 weapons ranked, 20,000 trials each (60,000 total)".
func Summary(ranked, trials int, excluded []sim.Exclusion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s ranked, %s each (%s total)",
		plural.Pluralize("weapon", ranked, true),
		countOf("trial", trials),
		humanize.Comma(int64(ranked)*int64(trials)))
	if len(excluded) > 0 {
		names := make([]string, len(excluded))
		for i, e := range excluded {
			names[i] = fmt.Sprintf("%s (%s: %s)", e.WeaponName, e.Reason, e.Ammo)
		}
		fmt.Fprintf(&b, "\n%s excluded: %s", plural.Pluralize("weapon", len(excluded), true), strings.Join(names, ", "))
	}
	return b.String()
}

// WriteSummary prints Summary for r followed by a newline.
func WriteSummary(w io.Writer, r sim.Ranking, trials int) {
	fmt.Fprintln(w, Summary(len(r.Stats), trials, r.Excluded))
}

// countOf renders "20,000 trials", "1 trial".
func countOf(word string, n int) string {
	return humanize.Comma(int64(n)) + " " + plural.Pluralize(word, n, false)
}
