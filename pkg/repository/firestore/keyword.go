package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
)

// keywordDoc is the Firestore document representation of model.LifeKeyword.
type keywordDoc struct {
	ID               model.LifeKeywordID `firestore:"ID"`
	UserID           string              `firestore:"UserID"`
	Keyword          string              `firestore:"Keyword"`
	Description      string              `firestore:"Description"`
	Emoji            string              `firestore:"Emoji"`
	Category         string              `firestore:"Category"`
	PeriodType       string              `firestore:"PeriodType"`
	PeriodLabel      string              `firestore:"PeriodLabel"`
	PeriodStart      time.Time           `firestore:"PeriodStart"`
	PeriodEnd        time.Time           `firestore:"PeriodEnd"`
	Confidence       float64             `firestore:"Confidence"`
	DominanceScore   float64             `firestore:"DominanceScore"`
	DataPointCount   int                 `firestore:"DataPointCount"`
	SampleDataPoints []string            `firestore:"SampleDataPoints,omitempty"`
	RelatedDataTypes []string            `firestore:"RelatedDataTypes,omitempty"`
	LabelModel       string              `firestore:"LabelModel,omitempty"`
	CreatedAt        time.Time           `firestore:"CreatedAt"`
}

func toKeywordDoc(k *model.LifeKeyword) *keywordDoc {
	related := make([]string, 0, len(k.RelatedDataTypes))
	for _, dt := range k.RelatedDataTypes {
		related = append(related, dt.String())
	}

	return &keywordDoc{
		ID:               k.ID,
		UserID:           k.UserID,
		Keyword:          k.Keyword,
		Description:      k.Description,
		Emoji:            k.Emoji,
		Category:         k.Category.String(),
		PeriodType:       k.PeriodType.String(),
		PeriodLabel:      k.PeriodLabel,
		PeriodStart:      k.PeriodStart,
		PeriodEnd:        k.PeriodEnd,
		Confidence:       k.Confidence,
		DominanceScore:   k.DominanceScore,
		DataPointCount:   k.DataPointCount,
		SampleDataPoints: k.SampleDataPoints,
		RelatedDataTypes: related,
		LabelModel:       k.LabelModel,
		CreatedAt:        k.CreatedAt,
	}
}

func fromKeywordDoc(d *keywordDoc) *model.LifeKeyword {
	related := make([]types.DataType, 0, len(d.RelatedDataTypes))
	for _, dt := range d.RelatedDataTypes {
		related = append(related, types.DataType(dt))
	}

	return &model.LifeKeyword{
		ID:               d.ID,
		UserID:           d.UserID,
		Keyword:          d.Keyword,
		Description:      d.Description,
		Emoji:            d.Emoji,
		Category:         types.Category(d.Category),
		PeriodType:       types.PeriodType(d.PeriodType),
		PeriodLabel:      d.PeriodLabel,
		PeriodStart:      d.PeriodStart,
		PeriodEnd:        d.PeriodEnd,
		Confidence:       d.Confidence,
		DominanceScore:   d.DominanceScore,
		DataPointCount:   d.DataPointCount,
		SampleDataPoints: d.SampleDataPoints,
		RelatedDataTypes: related,
		LabelModel:       d.LabelModel,
		CreatedAt:        d.CreatedAt,
	}
}

type keywordRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newKeywordRepository(client *firestore.Client) *keywordRepository {
	return &keywordRepository{client: client}
}

// keywordsCollection returns the subcollection path:
// users/{userID}/life_keywords
func (r *keywordRepository) keywordsCollection(userID string) *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "users").Doc(userID).
		Collection("life_keywords")
}

// AppendAll writes the batch through a BulkWriter. Create (not Set) keeps
// the collection append-only: colliding IDs fail instead of overwriting.
func (r *keywordRepository) AppendAll(ctx context.Context, keywords []*model.LifeKeyword) ([]model.LifeKeywordID, error) {
	if len(keywords) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	bw := r.client.BulkWriter(ctx)

	jobs := make([]*firestore.BulkWriterJob, 0, len(keywords))
	ids := make([]model.LifeKeywordID, 0, len(keywords))
	for _, kw := range keywords {
		if kw.ID == "" {
			kw.ID = model.NewLifeKeywordID()
		}
		kw.CreatedAt = now

		docRef := r.keywordsCollection(kw.UserID).Doc(string(kw.ID))
		job, err := bw.Create(docRef, toKeywordDoc(kw))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to enqueue keyword write", goerr.V("id", kw.ID))
		}
		jobs = append(jobs, job)
		ids = append(ids, kw.ID)
	}

	bw.End()

	for i, job := range jobs {
		if _, err := job.Results(); err != nil {
			return nil, goerr.Wrap(err, "failed to persist keyword", goerr.V("id", ids[i]))
		}
	}

	return ids, nil
}

func (r *keywordRepository) Get(ctx context.Context, userID string, id model.LifeKeywordID) (*model.LifeKeyword, error) {
	doc, err := r.keywordsCollection(userID).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "keyword not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get keyword", goerr.V("id", id))
	}

	var d keywordDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal keyword", goerr.V("id", id))
	}

	return fromKeywordDoc(&d), nil
}

func (r *keywordRepository) ListByPeriod(ctx context.Context, userID string, periodType types.PeriodType) ([]*model.LifeKeyword, error) {
	iter := r.keywordsCollection(userID).
		Where("PeriodType", "==", periodType.String()).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	keywords := make([]*model.LifeKeyword, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate keywords", goerr.V("userID", userID))
		}

		var d keywordDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal keyword")
		}

		keywords = append(keywords, fromKeywordDoc(&d))
	}

	return keywords, nil
}
