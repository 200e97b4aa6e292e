// Package plan models the per-user ministry development plan document: a
// fixed set of free-text steps plus one nested group of category flags,
// keyed in the store by sanitized email.
package plan

import (
	"strings"
	"time"
)

// Categories is the nested boolean-flag group of step 2. It is the one
// place in the document updated piecemeal: setting one flag must leave
// the other two untouched.
type Categories struct {
	Numericos bool `json:"numericos"`
	Madurez   bool `json:"madurez"`
	Organicos bool `json:"organicos"`
}

// Data is the full development plan document. Field names and JSON keys
// follow the stored document format.
type Data struct {
	PrimaryGifts            string     `json:"step1_primaryGifts"`
	SecondaryGifts          string     `json:"step1_secondaryGifts"`
	Categories              Categories `json:"step2_categories"`
	FunctionsInChurch       string     `json:"step3_functionsInChurch"`
	NewMinistriesToStart    string     `json:"step3_newMinistriesToStart"`
	ChosenMinistries        string     `json:"step4_chosenMinistries"`
	PotentialBarriers       string     `json:"step5_potentialBarriers"`
	MinistryImpactOnChurch  string     `json:"step5_ministryImpactOnChurch"`
	StudyAndLearningPlan    string     `json:"step6_studyAndLearningPlan"`
	CurrentResources        string     `json:"step7_currentResources"`
	NeededResources         string     `json:"step7_neededResources"`
	HelperSkillsNeeded      string     `json:"step8_helperSkillsNeeded"`
	HelperTrainingPlan      string     `json:"step8_helperTrainingPlan"`
	SupportGroupTemperament string     `json:"step9_supportGroupTemperament"`
	SupportGroupResources   string     `json:"step9_supportGroupResources"`
	BaseOfOperations        string     `json:"step10_baseOfOperations"`
	ActionPlanDetails       string     `json:"step11_actionPlanDetails"`
	Timeline3Months         string     `json:"step12_timeline_3months"`
	Timeline1Year           string     `json:"step12_timeline_1year"`
	TimelineLongTerm        string     `json:"step12_timeline_longTerm"`
	LastUpdated             time.Time  `json:"lastUpdated,omitempty"`
}

// Default returns the empty plan shape with the primary-gifts field
// pre-populated from the computed top-gifts text.
func Default(primaryGifts string) Data {
	return Data{PrimaryGifts: primaryGifts}
}

// FromStored merges a loaded document over the default shape, field by
// field. Older stored documents may predate newer fields; merging over
// Default keeps those at their defaults. The primary-gifts field only
// falls back to the computed text when the stored value is empty — a
// previously stored value is never overwritten by a fresh auto-fill.
func FromStored(loaded Data, fallbackPrimary string) Data {
	d := Default(fallbackPrimary)

	if strings.TrimSpace(loaded.PrimaryGifts) != "" {
		d.PrimaryGifts = loaded.PrimaryGifts
	}
	d.SecondaryGifts = loaded.SecondaryGifts
	d.Categories = loaded.Categories
	d.FunctionsInChurch = loaded.FunctionsInChurch
	d.NewMinistriesToStart = loaded.NewMinistriesToStart
	d.ChosenMinistries = loaded.ChosenMinistries
	d.PotentialBarriers = loaded.PotentialBarriers
	d.MinistryImpactOnChurch = loaded.MinistryImpactOnChurch
	d.StudyAndLearningPlan = loaded.StudyAndLearningPlan
	d.CurrentResources = loaded.CurrentResources
	d.NeededResources = loaded.NeededResources
	d.HelperSkillsNeeded = loaded.HelperSkillsNeeded
	d.HelperTrainingPlan = loaded.HelperTrainingPlan
	d.SupportGroupTemperament = loaded.SupportGroupTemperament
	d.SupportGroupResources = loaded.SupportGroupResources
	d.BaseOfOperations = loaded.BaseOfOperations
	d.ActionPlanDetails = loaded.ActionPlanDetails
	d.Timeline3Months = loaded.Timeline3Months
	d.Timeline1Year = loaded.Timeline1Year
	d.TimelineLongTerm = loaded.TimelineLongTerm
	d.LastUpdated = loaded.LastUpdated

	return d
}
