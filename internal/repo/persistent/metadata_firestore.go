package persistent

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/andreyxaxa/Background-Remover/internal/entity"
	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	fsOriginalName = "originalName"
	fsStatus       = "processingStatus"
	fsStoragePath  = "storagePath"
	fsProcessedAt  = "processedAt"
	fsTags         = "tags"
)

type metadataDoc struct {
	ImageID      string    `firestore:"imageId"`
	OriginalName string    `firestore:"originalName"`
	Status       string    `firestore:"processingStatus"`
	StoragePath  string    `firestore:"storagePath"`
	ProcessedAt  time.Time `firestore:"processedAt"`
	Tags         []string  `firestore:"tags"`
}

// MetadataFirestoreRepo stores one document per image, named by the image id.
type MetadataFirestoreRepo struct {
	client     *firestore.Client
	collection string
}

func NewMetadataFirestoreRepo(client *firestore.Client, collection string) *MetadataFirestoreRepo {
	return &MetadataFirestoreRepo{client: client, collection: collection}
}

func (r *MetadataFirestoreRepo) Upsert(ctx context.Context, record *entity.MetadataRecord) error {
	ref := r.client.Collection(r.collection).Doc(record.ImageID.String())

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		if snap != nil && snap.Exists() {
			// redelivery: same values, commit time untouched
			return tx.Update(ref, []firestore.Update{
				{Path: fsOriginalName, Value: record.OriginalName},
				{Path: fsStatus, Value: string(record.Status)},
				{Path: fsStoragePath, Value: record.StoragePath},
				{Path: fsTags, Value: record.Tags},
			})
		}

		return tx.Create(ref, map[string]interface{}{
			"imageId":      record.ImageID.String(),
			fsOriginalName: record.OriginalName,
			fsStatus:       string(record.Status),
			fsStoragePath:  record.StoragePath,
			fsProcessedAt:  firestore.ServerTimestamp,
			fsTags:         record.Tags,
		})
	})
	if err != nil {
		return fmt.Errorf("MetadataFirestoreRepo - Upsert - r.client.RunTransaction: %w", classifyGRPCError(err))
	}

	return nil
}

func (r *MetadataFirestoreRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MetadataRecord, error) {
	snap, err := r.client.Collection(r.collection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("MetadataFirestoreRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("MetadataFirestoreRepo - GetByID - Doc.Get: %w", err)
	}

	var doc metadataDoc
	if err = snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("MetadataFirestoreRepo - GetByID - snap.DataTo: %w", err)
	}

	record := &entity.MetadataRecord{
		ImageID:      id,
		OriginalName: doc.OriginalName,
		Status:       entity.ProcessingStatus(doc.Status),
		StoragePath:  doc.StoragePath,
		Tags:         doc.Tags,
	}
	if !doc.ProcessedAt.IsZero() {
		t := doc.ProcessedAt
		record.ProcessedAt = &t
	}
	if record.Tags == nil {
		record.Tags = []string{}
	}

	return record, nil
}
