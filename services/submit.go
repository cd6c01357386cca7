package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"fieldreport/model"
)

// Submitter turns a submittable draft into a saved report. All pending
// images are uploaded concurrently and the document is only written once
// every upload has succeeded, so storage never holds a half-written report.
type Submitter struct {
	store    ReportStore
	uploader ImageUploader
}

func NewSubmitter(store ReportStore, uploader ImageUploader) *Submitter {
	return &Submitter{store: store, uploader: uploader}
}

// Submit resolves every entry and creates or updates the report document.
// On any failure the draft is left untouched so the caller can retry without
// re-attaching images. On the update path the returned report keeps the
// original ID and creation time.
func (s *Submitter) Submit(ctx context.Context, draft *model.DraftReport) (*model.Report, error) {
	if !draft.IsSubmittable() {
		return nil, &ValidationError{Reason: "title, reporter name, and at least one photo entry are required"}
	}
	for _, entry := range draft.Entries {
		if entry.Image.IsZero() {
			return nil, &ValidationError{Reason: "an entry is missing its photo"}
		}
	}

	// Fan out uploads, join on all of them. Each goroutine writes its own
	// index so entry order survives any upload completion order.
	resolved := make([]model.ReportEntry, len(draft.Entries))
	g, gctx := errgroup.WithContext(ctx)
	for i, entry := range draft.Entries {
		if !entry.Image.IsPending() {
			resolved[i] = model.ReportEntry{
				ImageURL:    entry.Image.URL(),
				Description: entry.Description,
				Geolocation: entry.Geolocation,
			}
			continue
		}
		g.Go(func() error {
			data, contentType := entry.Image.Pending()
			url, err := s.uploader.Upload(gctx, objectName(contentType), data, contentType)
			if err != nil {
				return err
			}
			resolved[i] = model.ReportEntry{
				ImageURL:    url,
				Description: entry.Description,
				Geolocation: entry.Geolocation,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &UploadError{Err: err}
	}

	fields := ReportFields{
		Title:        draft.Title,
		ReporterName: draft.ReporterName,
		Entries:      resolved,
	}

	if draft.EditingTargetID != "" {
		if err := s.store.Update(ctx, draft.EditingTargetID, fields); err != nil {
			return nil, &PersistenceError{Op: "update", Err: err}
		}
		return &model.Report{
			ID:           draft.EditingTargetID,
			Title:        fields.Title,
			ReporterName: fields.ReporterName,
			Entries:      resolved,
			CreatedAt:    draft.SourceCreatedAt,
		}, nil
	}

	report, err := s.store.Create(ctx, fields)
	if err != nil {
		return nil, &PersistenceError{Op: "create", Err: err}
	}
	return report, nil
}

// objectName picks a fresh storage key. Entry local IDs are never sent to
// storage, so the key is independent of them.
func objectName(contentType string) string {
	return fmt.Sprintf("reports/%s%s", uuid.New().String(), extensionFor(contentType))
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".img"
	}
}
