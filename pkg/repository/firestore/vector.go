package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
)

// vectorDoc is the Firestore document representation of an embedding
// vector as written by the external indexer. Values is firestore.Vector32
// so the collection also supports FindNearest search. Timestamp material
// lives in Metadata; its shape varies per data type, so it is carried raw
// and resolved downstream.
type vectorDoc struct {
	ID            string             `firestore:"ID"`
	UserID        string             `firestore:"UserID"`
	Values        firestore.Vector32 `firestore:"Values,omitempty"`
	DataType      string             `firestore:"DataType"`
	ActivityLabel string             `firestore:"ActivityLabel,omitempty"`
	Metadata      map[string]any     `firestore:"Metadata,omitempty"`
}

func fromVectorDoc(d *vectorDoc) *model.EmbeddingVector {
	v := &model.EmbeddingVector{
		ID:            d.ID,
		DataType:      types.DataType(d.DataType),
		ActivityLabel: d.ActivityLabel,
		Metadata:      d.Metadata,
	}
	if len(d.Values) > 0 {
		v.Values = []float32(d.Values)
	}
	return v
}

type vectorRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newVectorRepository(client *firestore.Client) *vectorRepository {
	return &vectorRepository{client: client}
}

func (r *vectorRepository) vectorsCollection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "embedding_vectors")
}

// QueryByUser fetches up to topK vectors for the user. Filtering is by
// user only: the collection's documents come from heterogeneous sources
// with no shared date field to range over.
func (r *vectorRepository) QueryByUser(ctx context.Context, userID string, topK int) ([]*model.EmbeddingVector, error) {
	q := r.vectorsCollection().Where("UserID", "==", userID)
	if topK > 0 {
		q = q.Limit(topK)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	vectors := make([]*model.EmbeddingVector, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate vectors", goerr.V("userID", userID))
		}

		var d vectorDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal vector", goerr.V("doc", doc.Ref.ID))
		}

		vectors = append(vectors, fromVectorDoc(&d))
	}

	return vectors, nil
}
