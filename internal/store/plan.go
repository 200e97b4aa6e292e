package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/acampos/giftwise/ent"
	"github.com/acampos/giftwise/ent/developmentplan"
	"github.com/acampos/giftwise/internal/plan"
)

// planRepo implements PlanRepo using the ent client.
type planRepo struct {
	client *ent.Client
	log    *zap.Logger
}

func (r *planRepo) LoadOrDefault(ctx context.Context, key, fallbackPrimary string) (plan.Data, error) {
	row, err := r.client.DevelopmentPlan.Query().
		Where(developmentplan.DocKey(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return plan.Default(fallbackPrimary), nil
		}
		r.log.Warn("query plan failed", zap.String("key", key), zap.Error(err))
		return plan.Data{}, fmt.Errorf("query plan: %w", err)
	}

	if err := validatePlanDoc(row.Data); err != nil {
		r.log.Warn("stored plan rejected", zap.String("key", key), zap.Error(err))
		return plan.Data{}, fmt.Errorf("stored plan for %q: %w", key, err)
	}

	loaded, err := docToPlan(row.Data)
	if err != nil {
		return plan.Data{}, fmt.Errorf("decode plan for %q: %w", key, err)
	}
	if loaded.LastUpdated.IsZero() {
		loaded.LastUpdated = row.LastUpdated
	}
	return plan.FromStored(loaded, fallbackPrimary), nil
}

// Upsert writes the plan document under key, merging over any existing
// document: keys absent from data keep their stored values. This keeps
// fields written by newer versions intact when an older build saves.
func (r *planRepo) Upsert(ctx context.Context, key string, data plan.Data, ownerName, ownerEmail string) error {
	data.LastUpdated = time.Now()

	payload, err := planToDoc(data)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}

	existing, err := r.client.DevelopmentPlan.Query().
		Where(developmentplan.DocKey(key)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.log.Warn("query plan for upsert failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("query plan: %w", err)
	}

	if existing == nil {
		_, err = r.client.DevelopmentPlan.Create().
			SetDocKey(key).
			SetOwnerName(ownerName).
			SetOwnerEmail(ownerEmail).
			SetData(payload).
			Save(ctx)
		if err != nil {
			r.log.Warn("create plan failed", zap.String("key", key), zap.Error(err))
			return fmt.Errorf("create plan: %w", err)
		}
		return nil
	}

	merged := make(map[string]any, len(existing.Data)+len(payload))
	for k, v := range existing.Data {
		merged[k] = v
	}
	for k, v := range payload {
		merged[k] = v
	}

	upd := existing.Update().SetData(merged)
	if ownerName != "" {
		upd.SetOwnerName(ownerName)
	}
	if ownerEmail != "" {
		upd.SetOwnerEmail(ownerEmail)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Warn("update plan failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("update plan: %w", err)
	}
	return nil
}

// planToDoc converts a plan value to its stored map form.
func planToDoc(data plan.Data) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// docToPlan converts a stored map back into the typed plan value.
func docToPlan(doc map[string]any) (plan.Data, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return plan.Data{}, err
	}
	var data plan.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return plan.Data{}, err
	}
	return data, nil
}
