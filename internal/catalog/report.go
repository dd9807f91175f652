// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/pdiddy/spectext/pkg/types"
)

// Summary aggregates the catalogued conversion outcomes.
type Summary struct {
	Converted int
	Skipped   int
	Failed    int
	Bytes     int64
}

// Total returns the number of catalogued conversions.
func (s Summary) Total() int {
	return s.Converted + s.Skipped + s.Failed
}

// Report writes the catalogued conversions as a table followed by a
// summary line. Failed rows show the captured error in place of the
// output path.
func (s *Store) Report(ctx context.Context, w io.Writer) error {
	recs, err := s.All(ctx)
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(w, "No conversions recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-8s  %-10s  %5s  %9s  %s\n", "ID", "Status", "Pages", "Size", "Output")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	var sum Summary
	for _, rec := range recs {
		detail := rec.OutputPath
		size := humanize.Bytes(uint64(rec.Bytes))
		switch rec.Status {
		case types.ConversionDone:
			sum.Converted++
			sum.Bytes += rec.Bytes
		case types.ConversionSkipped:
			sum.Skipped++
		case types.ConversionFailed:
			sum.Failed++
			detail = rec.Error
			size = "-"
		}
		fmt.Fprintf(w, "%-8s  %-10s  %5d  %9s  %s\n",
			rec.ID, rec.Status, rec.Pages, size, detail)
	}

	fmt.Fprintf(w, "\n%d conversions: %d converted (%s), %d skipped, %d failed\n",
		sum.Total(), sum.Converted, humanize.Bytes(uint64(sum.Bytes)), sum.Skipped, sum.Failed)
	return nil
}
