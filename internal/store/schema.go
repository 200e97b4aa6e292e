package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// planSchemaJSON is the shape contract for stored plan documents. Every
// field is optional so documents written by older versions still load,
// but a present field must carry the right type and unknown keys are
// rejected rather than silently dropped on the next save.
const planSchemaJSON = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"step1_primaryGifts":            {"type": "string"},
		"step1_secondaryGifts":          {"type": "string"},
		"step2_categories": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"numericos": {"type": "boolean"},
				"madurez":   {"type": "boolean"},
				"organicos": {"type": "boolean"}
			}
		},
		"step3_functionsInChurch":       {"type": "string"},
		"step3_newMinistriesToStart":    {"type": "string"},
		"step4_chosenMinistries":        {"type": "string"},
		"step5_potentialBarriers":       {"type": "string"},
		"step5_ministryImpactOnChurch":  {"type": "string"},
		"step6_studyAndLearningPlan":    {"type": "string"},
		"step7_currentResources":        {"type": "string"},
		"step7_neededResources":         {"type": "string"},
		"step8_helperSkillsNeeded":      {"type": "string"},
		"step8_helperTrainingPlan":      {"type": "string"},
		"step9_supportGroupTemperament": {"type": "string"},
		"step9_supportGroupResources":   {"type": "string"},
		"step10_baseOfOperations":       {"type": "string"},
		"step11_actionPlanDetails":      {"type": "string"},
		"step12_timeline_3months":       {"type": "string"},
		"step12_timeline_1year":         {"type": "string"},
		"step12_timeline_longTerm":      {"type": "string"},
		"lastUpdated":                   {"type": "string"}
	}
}`

var (
	planSchemaOnce sync.Once
	planSchema     *jsonschema.Schema
	planSchemaErr  error
)

// compiledPlanSchema compiles the plan document schema once per process.
func compiledPlanSchema() (*jsonschema.Schema, error) {
	planSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any),
		// not raw bytes.
		var parsed any
		if err := json.Unmarshal([]byte(planSchemaJSON), &parsed); err != nil {
			planSchemaErr = fmt.Errorf("parse plan schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://development_plan.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			planSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		planSchema, planSchemaErr = c.Compile(schemaURL)
	})
	return planSchema, planSchemaErr
}

// validatePlanDoc rejects stored documents that do not match the plan
// shape contract.
func validatePlanDoc(doc map[string]any) error {
	compiled, err := compiledPlanSchema()
	if err != nil {
		return err
	}
	// Round-trip through JSON so nested values are plain any maps.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal plan document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse plan document: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("plan document validation: %w", err)
	}
	return nil
}
