package render

import "time"

// zeroTime pins the PDF creation date so identical input yields identical
// visible content across runs.
var zeroTime = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

func dateRange(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	return start + " - " + end
}
