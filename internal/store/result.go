package store

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/acampos/giftwise/ent"
	"github.com/acampos/giftwise/ent/giftresult"
	entschema "github.com/acampos/giftwise/ent/schema"
	"github.com/acampos/giftwise/internal/catalog"
	"github.com/acampos/giftwise/internal/quiz"
)

// resultRepo implements ResultRepo using the ent client.
type resultRepo struct {
	client *ent.Client
	log    *zap.Logger
}

func (r *resultRepo) Append(ctx context.Context, result *quiz.UserResult) (int, error) {
	row, err := r.client.GiftResult.Create().
		SetSubmissionID(result.SubmissionID).
		SetName(result.Name).
		SetUserEmail(result.Email).
		SetTopGifts(scoresToDocs(result.TopGifts)).
		SetAllScores(scoresToDocs(result.AllScores)).
		Save(ctx)
	if err != nil {
		r.log.Warn("append result failed",
			zap.String("email", result.Email), zap.Error(err))
		return 0, fmt.Errorf("append result: %w", err)
	}
	return row.ID, nil
}

func (r *resultRepo) MostRecentByEmail(ctx context.Context, email string) (*quiz.UserResult, error) {
	row, err := r.client.GiftResult.Query().
		Where(giftresult.UserEmail(email)).
		Order(ent.Desc(giftresult.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.log.Warn("query result failed",
			zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("query result by email: %w", err)
	}

	createdAt := row.CreatedAt
	if createdAt.IsZero() {
		// Creation time is informational only; a missing timestamp must
		// not crash the load.
		createdAt = time.Now()
	}

	return &quiz.UserResult{
		ID:           row.ID,
		SubmissionID: row.SubmissionID,
		Name:         row.Name,
		Email:        row.UserEmail,
		TopGifts:     docsToScores(row.TopGifts),
		AllScores:    docsToScores(row.AllScores),
		CreatedAt:    createdAt,
	}, nil
}

// scoresToDocs converts in-memory scores to their stored shape.
func scoresToDocs(scores []quiz.GiftScore) []entschema.GiftScoreDoc {
	docs := make([]entschema.GiftScoreDoc, 0, len(scores))
	for _, s := range scores {
		docs = append(docs, entschema.GiftScoreDoc{GiftID: s.Gift.ID, Score: s.Score})
	}
	return docs
}

// docsToScores rehydrates stored scores against the live catalog. A gift
// id missing from the catalog (older stored document) keeps a bare
// definition carrying only the id.
func docsToScores(docs []entschema.GiftScoreDoc) []quiz.GiftScore {
	scores := make([]quiz.GiftScore, 0, len(docs))
	for _, d := range docs {
		gift, ok := catalog.GiftByID(d.GiftID)
		if !ok {
			gift = catalog.GiftDefinition{ID: d.GiftID}
		}
		scores = append(scores, quiz.GiftScore{Gift: gift, Score: d.Score})
	}
	return scores
}
