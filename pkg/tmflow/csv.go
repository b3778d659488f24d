package tmflow

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes result in the row format of spec §6's worked example
// output: a header row, then for each flowpipe one "box/enclosure" row
// followed by one "polynomial/remainder" row per component. Columns not
// meaningful for a given row are left empty, matching the original
// tool's csv.writer(None, None) rows.
func WriteCSV(w io.Writer, result Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"flowpipe idx", "box/enclosure", "polynomial pl", "remainder Il"}); err != nil {
		return fmt.Errorf("tmflow: writing csv header: %w", err)
	}

	for i, fp := range result.Flowpipes {
		box := IntervalVector(result.Boxes[i])
		if err := cw.Write([]string{fmt.Sprintf("%d", i), box.String(), "", ""}); err != nil {
			return fmt.Errorf("tmflow: writing csv box row: %w", err)
		}

		for j, poly := range fp.Poly {
			row := []string{fmt.Sprintf("%d", i), "", poly.String(), fp.Remainder[j].String()}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("tmflow: writing csv component row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
