package document

import (
	"context"

	"hrms-console/internal/upstream"

	"github.com/google/uuid"
)

type UploadState string

const (
	UploadPending   UploadState = "pending"
	UploadUploading UploadState = "uploading"
	UploadSuccess   UploadState = "success"
	UploadError     UploadState = "error"
)

// UploadItem tracks one file through the batch.
type UploadItem struct {
	Filename string      `json:"filename"`
	State    UploadState `json:"state"`
	Error    string      `json:"error,omitempty"`

	upload upstream.DocumentUpload
}

// DocumentSink is the single upstream call the uploader depends on.
type DocumentSink interface {
	UploadDocument(ctx context.Context, upload upstream.DocumentUpload) error
}

// BulkUploader pushes a batch of employee documents upstream one file at a
// time. Files are independent: a failure marks that file and moves on, it
// never aborts the rest of the batch.
type BulkUploader struct {
	api   DocumentSink
	batch string
	items []*UploadItem
}

func NewBulkUploader(api DocumentSink) *BulkUploader {
	return &BulkUploader{
		api:   api,
		batch: uuid.NewString(),
	}
}

// BatchID identifies this upload session in audit entries.
func (u *BulkUploader) BatchID() string { return u.batch }

// Add queues one file. All files start out pending.
func (u *BulkUploader) Add(upload upstream.DocumentUpload) {
	u.items = append(u.items, &UploadItem{
		Filename: upload.File.Filename,
		State:    UploadPending,
		upload:   upload,
	})
}

// Run uploads every queued file sequentially and reports the final state of
// each. Run returns only when the whole batch has been attempted.
func (u *BulkUploader) Run(ctx context.Context) []*UploadItem {
	for _, item := range u.items {
		item.State = UploadUploading
		if err := u.api.UploadDocument(ctx, item.upload); err != nil {
			item.State = UploadError
			item.Error = err.Error()
			continue
		}
		item.State = UploadSuccess
	}
	return u.items
}

// Items exposes the current batch state.
func (u *BulkUploader) Items() []*UploadItem { return u.items }

// Succeeded counts files that made it upstream.
func (u *BulkUploader) Succeeded() int {
	n := 0
	for _, item := range u.items {
		if item.State == UploadSuccess {
			n++
		}
	}
	return n
}

// Failed counts files that did not.
func (u *BulkUploader) Failed() int {
	n := 0
	for _, item := range u.items {
		if item.State == UploadError {
			n++
		}
	}
	return n
}
