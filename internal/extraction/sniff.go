package extraction

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// pdfPageCount probes uploaded bytes for a parseable PDF and returns its
// page count. Telemetry only: a zero count never blocks extraction since
// the upstream model accepts more formats than this parser does.
func pdfPageCount(content []byte) (n int) {
	defer func() {
		// The parser panics on some malformed files.
		if recover() != nil {
			n = 0
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0
	}
	return reader.NumPage()
}
