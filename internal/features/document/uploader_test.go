package document

import (
	"context"
	"testing"

	"hrms-console/internal/upstream"
)

type fakeSink struct {
	calls  []string
	failOn map[string]error
}

func (f *fakeSink) UploadDocument(ctx context.Context, upload upstream.DocumentUpload) error {
	f.calls = append(f.calls, upload.File.Filename)
	return f.failOn[upload.File.Filename]
}

func queue(u *BulkUploader, names ...string) {
	for _, name := range names {
		u.Add(upstream.DocumentUpload{
			EmployeeID:     "e1",
			DocumentTypeID: "dt1",
			File:           upstream.FilePart{Filename: name, ContentType: "application/pdf", Data: []byte("x")},
		})
	}
}

func TestBulkUploadFailuresAreIndependent(t *testing.T) {
	sink := &fakeSink{failOn: map[string]error{
		"offer.pdf": &upstream.APIError{Status: 413, Message: "file too large"},
	}}
	uploader := NewBulkUploader(sink)
	queue(uploader, "id.pdf", "offer.pdf", "visa.pdf")

	items := uploader.Run(context.Background())

	// Every file is attempted, in order, even after a failure.
	if len(sink.calls) != 3 {
		t.Fatalf("upstream calls = %v", sink.calls)
	}
	wantStates := []UploadState{UploadSuccess, UploadError, UploadSuccess}
	for i, item := range items {
		if item.State != wantStates[i] {
			t.Errorf("%s state = %s, want %s", item.Filename, item.State, wantStates[i])
		}
	}
	if items[1].Error != "upstream 413: file too large" {
		t.Errorf("failed file error = %q", items[1].Error)
	}
	if uploader.Succeeded() != 2 || uploader.Failed() != 1 {
		t.Errorf("succeeded=%d failed=%d", uploader.Succeeded(), uploader.Failed())
	}
}

func TestBulkUploadQueueStartsPending(t *testing.T) {
	uploader := NewBulkUploader(&fakeSink{})
	queue(uploader, "a.pdf", "b.pdf")

	for _, item := range uploader.Items() {
		if item.State != UploadPending {
			t.Errorf("%s state before Run = %s", item.Filename, item.State)
		}
	}
	if uploader.BatchID() == "" {
		t.Error("batch ID is empty")
	}
}

func TestBulkUploadSequential(t *testing.T) {
	sink := &fakeSink{}
	uploader := NewBulkUploader(sink)
	queue(uploader, "1.pdf", "2.pdf", "3.pdf", "4.pdf")

	uploader.Run(context.Background())

	for i, name := range []string{"1.pdf", "2.pdf", "3.pdf", "4.pdf"} {
		if sink.calls[i] != name {
			t.Fatalf("call order = %v", sink.calls)
		}
	}
}
