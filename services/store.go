package services

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fieldreport/model"
)

const reportsCollection = "reports"

var ErrReportNotFound = errors.New("report not found")

// ReportFields is what a submit writes: everything of a report except the
// store-assigned ID and creation timestamp.
type ReportFields struct {
	Title        string
	ReporterName string
	Entries      []model.ReportEntry
}

// ReportStore is the remote document store boundary. Injected into the
// workflow and controllers so tests can substitute fakes.
type ReportStore interface {
	Create(ctx context.Context, fields ReportFields) (*model.Report, error)
	Update(ctx context.Context, id string, fields ReportFields) error
	List(ctx context.Context) ([]model.Report, error)
	Get(ctx context.Context, id string) (*model.Report, error)
	Delete(ctx context.Context, id string) error
}

type FirestoreReportStore struct {
	client *firestore.Client
}

func NewFirestoreReportStore(client *firestore.Client) *FirestoreReportStore {
	return &FirestoreReportStore{client: client}
}

// Create writes a new document with a server-assigned creation timestamp and
// reads it back so the caller gets the resolved time, not a local clock.
func (s *FirestoreReportStore) Create(ctx context.Context, fields ReportFields) (*model.Report, error) {
	doc := map[string]interface{}{
		"title":        fields.Title,
		"reporterName": fields.ReporterName,
		"entries":      fields.Entries,
		"createdAt":    firestore.ServerTimestamp,
	}
	ref, _, err := s.client.Collection(reportsCollection).Add(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	snap, err := ref.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read back created report: %w", err)
	}
	return reportFromSnapshot(snap)
}

// Update replaces title, reporter, and entries only. createdAt is not in the
// field list, so an edit can never move the creation time.
func (s *FirestoreReportStore) Update(ctx context.Context, id string, fields ReportFields) error {
	_, err := s.client.Collection(reportsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "title", Value: fields.Title},
		{Path: "reporterName", Value: fields.ReporterName},
		{Path: "entries", Value: fields.Entries},
	})
	if status.Code(err) == codes.NotFound {
		return ErrReportNotFound
	}
	if err != nil {
		return fmt.Errorf("update report %s: %w", id, err)
	}
	return nil
}

// List returns all reports ordered by creation time, newest first.
func (s *FirestoreReportStore) List(ctx context.Context) ([]model.Report, error) {
	iter := s.client.Collection(reportsCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var reports []model.Report
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list reports: %w", err)
		}
		report, err := reportFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

func (s *FirestoreReportStore) Get(ctx context.Context, id string) (*model.Report, error) {
	snap, err := s.client.Collection(reportsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get report %s: %w", id, err)
	}
	return reportFromSnapshot(snap)
}

// Delete checks existence first so a missing document surfaces as
// ErrReportNotFound instead of a silent success.
func (s *FirestoreReportStore) Delete(ctx context.Context, id string) error {
	ref := s.client.Collection(reportsCollection).Doc(id)
	_, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return ErrReportNotFound
	}
	if err != nil {
		return fmt.Errorf("get report %s: %w", id, err)
	}
	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("delete report %s: %w", id, err)
	}
	return nil
}

func reportFromSnapshot(snap *firestore.DocumentSnapshot) (*model.Report, error) {
	var report model.Report
	if err := snap.DataTo(&report); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", snap.Ref.ID, err)
	}
	report.ID = snap.Ref.ID
	return &report, nil
}
