package report2docx

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"

	"github.com/alnah/go-report2docx/internal/dateutil"
	"github.com/alnah/go-report2docx/internal/docx"
)

// FileName builds "<prefix>_<date>.docx". The prefix is slugified and the
// date is formatted with a dateutil pattern such as "MMDD".
func FileName(prefix, dateFormat string, t time.Time) (string, error) {
	base := fileNameSlug(prefix)
	if base == "" {
		return "", fmt.Errorf("%w: prefix %q has no usable characters", ErrInvalidFileName, prefix)
	}
	stamp, err := dateutil.Format(t, dateFormat)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFileName, err)
	}
	return base + "_" + fileNameSlug(stamp) + docx.Extension, nil
}

// fileNameSlug reduces s to characters safe in a file name.
func fileNameSlug(s string) string {
	return slug.Make(s)
}
