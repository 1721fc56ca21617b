package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeShareTarget struct {
	capable bool
	err     error
	calls   []ShareRequest
}

func (f *fakeShareTarget) CanShare() bool { return f.capable }

func (f *fakeShareTarget) Share(_ context.Context, req ShareRequest) error {
	f.calls = append(f.calls, req)
	return f.err
}

var shareNow = time.Date(2026, 10, 19, 18, 45, 0, 0, time.UTC)

func TestShareReport(t *testing.T) {
	target := &fakeShareTarget{capable: true}
	blob := []byte("%PDF-1.4 report")

	req, err := ShareReport(context.Background(), target, blob, "  Wanjiru Kamau ", shareNow)
	if err != nil {
		t.Fatalf("ShareReport() error = %v", err)
	}
	if len(target.calls) != 1 {
		t.Fatalf("expected 1 share call, got %d", len(target.calls))
	}

	want := ShareRequest{
		File:     blob,
		Filename: "Wanjiru-Kamau_SalesReport_19-10-2026.pdf",
		MimeType: "application/pdf",
		Title:    "Daily Sales Report",
		Message:  "Daily sales report by Wanjiru Kamau for 19-10-2026",
	}
	got := target.calls[0]
	if got.Filename != want.Filename || got.MimeType != want.MimeType || got.Title != want.Title || got.Message != want.Message {
		t.Errorf("share request = %+v, want %+v", got, want)
	}
	if string(got.File) != string(blob) || req.Filename != want.Filename {
		t.Errorf("returned request does not match the shared one")
	}
}

func TestShareReport_Preconditions(t *testing.T) {
	blob := []byte("%PDF-")

	tests := []struct {
		name    string
		target  *fakeShareTarget
		blob    []byte
		author  string
		wantErr error
		calls   int
	}{
		{"no report", &fakeShareTarget{capable: true}, nil, "Wanjiru", ErrNoReport, 0},
		{"empty author", &fakeShareTarget{capable: true}, blob, "", ErrAuthorRequired, 0},
		{"blank author", &fakeShareTarget{capable: true}, blob, "   ", ErrAuthorRequired, 0},
		{"author only quotes", &fakeShareTarget{capable: true}, blob, `"""`, ErrAuthorRequired, 0},
		{"author only separators", &fakeShareTarget{capable: true}, blob, ` / : \ `, ErrAuthorRequired, 0},
		{"cannot share", &fakeShareTarget{capable: false}, blob, "Wanjiru", ErrShareUnavailable, 0},
		{"host failure", &fakeShareTarget{capable: true, err: errors.New("user agent refused")}, blob, "Wanjiru", ErrShareFailed, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ShareReport(context.Background(), tt.target, tt.blob, tt.author, shareNow)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if len(tt.target.calls) != tt.calls {
				t.Errorf("share calls = %d, want %d", len(tt.target.calls), tt.calls)
			}
		})
	}
}

func TestShareReport_KeepsHostError(t *testing.T) {
	hostErr := errors.New("user agent refused")
	target := &fakeShareTarget{capable: true, err: hostErr}

	_, err := ShareReport(context.Background(), target, []byte("%PDF-"), "Wanjiru", shareNow)
	if !errors.Is(err, ErrShareFailed) {
		t.Errorf("error = %v, want ErrShareFailed", err)
	}
	if !errors.Is(err, hostErr) {
		t.Errorf("error = %v, want it to wrap the host error", err)
	}
}

func TestShareReport_NilTarget(t *testing.T) {
	if _, err := ShareReport(context.Background(), nil, []byte("%PDF-"), "Wanjiru", shareNow); !errors.Is(err, ErrShareUnavailable) {
		t.Errorf("error = %v, want ErrShareUnavailable", err)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrAuthorRequired, "Please provide your name before sharing the report."},
		{ErrNoReport, "Please submit the report before downloading or sharing it."},
		{errors.New("boom"), "Something went wrong. Please try again."},
	}
	for _, tt := range tests {
		if got := UserMessage(tt.err); got != tt.want {
			t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestDownloadFilename(t *testing.T) {
	snap := sampleForm(t).Freeze()
	if got := DownloadFilename(snap, ".pdf"); got != "DailyReport_19-10-2026.pdf" {
		t.Errorf("DownloadFilename = %q", got)
	}

	f := sampleForm(t)
	if err := f.Set(FieldDate, ""); err != nil {
		t.Fatal(err)
	}
	if got := DownloadFilename(f.Freeze(), ".xlsx"); got != "DailyReport.xlsx" {
		t.Errorf("DownloadFilename without date = %q", got)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to hyphens", "Wanjiru Kamau", "Wanjiru-Kamau"},
		{"slashes to hyphens", "A/B", "A-B"},
		{"backslashes", "A\\B", "A-B"},
		{"colons", "A:B", "A-B"},
		{"quotes removed", `Wanjiru "WK" Kamau`, "Wanjiru-WK-Kamau"},
		{"no special chars", "simple", "simple"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeFilename(tt.input); got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
