// Package firestore provides persistent storage implementations using Google Cloud Firestore.
package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/illmade-knight/action-dispatch/pkg/auditing"
	"google.golang.org/api/iterator"
)

// auditDocument is the private struct that is actually stored in Firestore.
type auditDocument struct {
	ActionType   string    `firestore:"actionType"`
	Outcome      string    `firestore:"outcome"`
	Detail       string    `firestore:"detail,omitempty"`
	DispatchedAt time.Time `firestore:"dispatchedAt"`
}

// AuditStore is a concrete implementation of the auditing.Store interface using Firestore.
type AuditStore struct {
	client     *firestore.Client
	collection *firestore.CollectionRef
}

// NewAuditStore creates a new Firestore-backed store for dispatch records.
func NewAuditStore(client *firestore.Client) *AuditStore {
	return &AuditStore{
		client:     client,
		collection: client.Collection("dispatch-audit"),
	}
}

// Add saves a new record to the store.
func (s *AuditStore) Add(ctx context.Context, record auditing.Record) error {
	doc := auditDocument{
		ActionType:   record.ActionType,
		Outcome:      record.Outcome,
		Detail:       record.Detail,
		DispatchedAt: record.DispatchedAt,
	}

	_, err := s.collection.Doc(record.ID.String()).Set(ctx, doc)
	return err
}

// Query retrieves records based on the provided specification.
func (s *AuditStore) Query(ctx context.Context, spec auditing.QuerySpec) ([]auditing.Record, error) {
	q := s.collection.Query
	if spec.ActionType != nil {
		q = q.Where("actionType", "==", *spec.ActionType)
	}
	if spec.Outcome != nil {
		q = q.Where("outcome", "==", *spec.Outcome)
	}
	if spec.Since != nil {
		q = q.Where("dispatchedAt", ">=", *spec.Since)
	}

	iter := q.Documents(ctx)
	var results []auditing.Record
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var adoc auditDocument
		if err := doc.DataTo(&adoc); err != nil {
			return nil, err
		}

		docID, err := uuid.Parse(doc.Ref.ID)
		if err != nil {
			return nil, err
		}

		results = append(results, auditing.Record{
			ID:           docID,
			ActionType:   adoc.ActionType,
			Outcome:      adoc.Outcome,
			Detail:       adoc.Detail,
			DispatchedAt: adoc.DispatchedAt,
		})
	}
	return results, nil
}
