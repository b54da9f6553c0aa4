package automatic

import (
	"bytes"
	"fmt"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
)

// SummarizeText formats a batch of finished games as win tallies and a
// histogram of game lengths.
func SummarizeText(records []GameRecord) string {
	if len(records) == 0 {
		return "no games played"
	}
	lengths := make([]float64, len(records))
	firstWins := 0
	for i, rec := range records {
		lengths[i] = float64(rec.Moves)
		if rec.FirstPlayerWon {
			firstWins++
		}
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "games: %d, first player won %d (%.1f%%)\n",
		len(records), firstWins, 100*float64(firstWins)/float64(len(records)))
	fmt.Fprintf(&buf, "moves per game:\n")
	hist := histogram.Hist(10, lengths)
	if err := histogram.Fprint(&buf, hist, histogram.Linear(40)); err != nil {
		log.Err(err).Msg("unable to print histogram")
	}
	return buf.String()
}
