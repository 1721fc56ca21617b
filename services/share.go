package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Share and download failures.
var (
	ErrNoReport         = errors.New("no report has been submitted")
	ErrAuthorRequired   = errors.New("author name is required")
	ErrShareUnavailable = errors.New("share is not available on this host")
	ErrShareFailed      = errors.New("share failed")
)

// UserMessage returns the notice shown to the user for an export or share error.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoReport):
		return "Please submit the report before downloading or sharing it."
	case errors.Is(err, ErrAuthorRequired):
		return "Please provide your name before sharing the report."
	case errors.Is(err, ErrShareUnavailable):
		return "Sharing is not supported on this device. Use Download instead."
	case errors.Is(err, ErrShareFailed):
		return "Sharing the report failed. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}

// PDFMimeType is the media type of rendered reports.
const PDFMimeType = "application/pdf"

// ShareRequest is what gets handed to the host share mechanism.
type ShareRequest struct {
	File     []byte
	Filename string
	MimeType string
	Title    string
	Message  string
}

// ShareTarget is the host's native share capability. CanShare must be checked
// before Share is attempted.
type ShareTarget interface {
	CanShare() bool
	Share(ctx context.Context, req ShareRequest) error
}

// ShareReport checks the share preconditions, builds the request and hands it
// to the target. No host call is made when a precondition fails.
func ShareReport(ctx context.Context, target ShareTarget, blob []byte, author string, now time.Time) (ShareRequest, error) {
	if len(blob) == 0 {
		return ShareRequest{}, ErrNoReport
	}
	author = strings.TrimSpace(author)
	// The author also names the file, so it must survive sanitising.
	if strings.Trim(sanitizeFilename(author), "-") == "" {
		return ShareRequest{}, ErrAuthorRequired
	}
	if target == nil || !target.CanShare() {
		return ShareRequest{}, ErrShareUnavailable
	}

	req := ShareRequest{
		File:     blob,
		Filename: ShareFilename(author, now),
		MimeType: PDFMimeType,
		Title:    "Daily Sales Report",
		Message:  fmt.Sprintf("Daily sales report by %s for %s", author, now.Format(displayDateLayout)),
	}

	if err := target.Share(ctx, req); err != nil {
		return ShareRequest{}, fmt.Errorf("%w: %w", ErrShareFailed, err)
	}
	return req, nil
}

// ShareFilename names a shared report after its author and the current date,
// e.g. "Wanjiru-Kamau_SalesReport_19-10-2026.pdf".
func ShareFilename(author string, now time.Time) string {
	return fmt.Sprintf("%s_SalesReport_%s.pdf", sanitizeFilename(strings.TrimSpace(author)), now.Format(displayDateLayout))
}

// DownloadFilename names a downloaded report after its report date, e.g.
// "DailyReport_19-10-2026.pdf". ext includes the leading dot.
func DownloadFilename(s *ReportSnapshot, ext string) string {
	if t, ok := s.ReportDate(); ok {
		return "DailyReport_" + t.Format(displayDateLayout) + ext
	}
	return "DailyReport" + ext
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, "\"", "")
	return s
}
