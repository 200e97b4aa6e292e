package plan

// Field identifies one editable free-text field of the plan. The primary
// gifts field is auto-filled and read-only in the guide, so it has no
// Field constant.
type Field int

const (
	FieldSecondaryGifts Field = iota
	FieldFunctionsInChurch
	FieldNewMinistriesToStart
	FieldChosenMinistries
	FieldPotentialBarriers
	FieldMinistryImpactOnChurch
	FieldStudyAndLearningPlan
	FieldCurrentResources
	FieldNeededResources
	FieldHelperSkillsNeeded
	FieldHelperTrainingPlan
	FieldSupportGroupTemperament
	FieldSupportGroupResources
	FieldBaseOfOperations
	FieldActionPlanDetails
	FieldTimeline3Months
	FieldTimeline1Year
	FieldTimelineLongTerm
)

// TextFields lists every editable field in guide display order.
var TextFields = []Field{
	FieldSecondaryGifts,
	FieldFunctionsInChurch,
	FieldNewMinistriesToStart,
	FieldChosenMinistries,
	FieldPotentialBarriers,
	FieldMinistryImpactOnChurch,
	FieldStudyAndLearningPlan,
	FieldCurrentResources,
	FieldNeededResources,
	FieldHelperSkillsNeeded,
	FieldHelperTrainingPlan,
	FieldSupportGroupTemperament,
	FieldSupportGroupResources,
	FieldBaseOfOperations,
	FieldActionPlanDetails,
	FieldTimeline3Months,
	FieldTimeline1Year,
	FieldTimelineLongTerm,
}

// Category identifies one flag of the step-2 category group.
type Category int

const (
	CategoryNumericos Category = iota
	CategoryMadurez
	CategoryOrganicos
)

// Get returns the current value of a text field.
func (d Data) Get(f Field) string {
	switch f {
	case FieldSecondaryGifts:
		return d.SecondaryGifts
	case FieldFunctionsInChurch:
		return d.FunctionsInChurch
	case FieldNewMinistriesToStart:
		return d.NewMinistriesToStart
	case FieldChosenMinistries:
		return d.ChosenMinistries
	case FieldPotentialBarriers:
		return d.PotentialBarriers
	case FieldMinistryImpactOnChurch:
		return d.MinistryImpactOnChurch
	case FieldStudyAndLearningPlan:
		return d.StudyAndLearningPlan
	case FieldCurrentResources:
		return d.CurrentResources
	case FieldNeededResources:
		return d.NeededResources
	case FieldHelperSkillsNeeded:
		return d.HelperSkillsNeeded
	case FieldHelperTrainingPlan:
		return d.HelperTrainingPlan
	case FieldSupportGroupTemperament:
		return d.SupportGroupTemperament
	case FieldSupportGroupResources:
		return d.SupportGroupResources
	case FieldBaseOfOperations:
		return d.BaseOfOperations
	case FieldActionPlanDetails:
		return d.ActionPlanDetails
	case FieldTimeline3Months:
		return d.Timeline3Months
	case FieldTimeline1Year:
		return d.Timeline1Year
	case FieldTimelineLongTerm:
		return d.TimelineLongTerm
	default:
		return ""
	}
}

// WithField returns a copy of the plan with one text field replaced.
func (d Data) WithField(f Field, value string) Data {
	switch f {
	case FieldSecondaryGifts:
		d.SecondaryGifts = value
	case FieldFunctionsInChurch:
		d.FunctionsInChurch = value
	case FieldNewMinistriesToStart:
		d.NewMinistriesToStart = value
	case FieldChosenMinistries:
		d.ChosenMinistries = value
	case FieldPotentialBarriers:
		d.PotentialBarriers = value
	case FieldMinistryImpactOnChurch:
		d.MinistryImpactOnChurch = value
	case FieldStudyAndLearningPlan:
		d.StudyAndLearningPlan = value
	case FieldCurrentResources:
		d.CurrentResources = value
	case FieldNeededResources:
		d.NeededResources = value
	case FieldHelperSkillsNeeded:
		d.HelperSkillsNeeded = value
	case FieldHelperTrainingPlan:
		d.HelperTrainingPlan = value
	case FieldSupportGroupTemperament:
		d.SupportGroupTemperament = value
	case FieldSupportGroupResources:
		d.SupportGroupResources = value
	case FieldBaseOfOperations:
		d.BaseOfOperations = value
	case FieldActionPlanDetails:
		d.ActionPlanDetails = value
	case FieldTimeline3Months:
		d.Timeline3Months = value
	case FieldTimeline1Year:
		d.Timeline1Year = value
	case FieldTimelineLongTerm:
		d.TimelineLongTerm = value
	}
	return d
}

// Category returns the current value of one category flag.
func (d Data) Category(c Category) bool {
	switch c {
	case CategoryNumericos:
		return d.Categories.Numericos
	case CategoryMadurez:
		return d.Categories.Madurez
	case CategoryOrganicos:
		return d.Categories.Organicos
	default:
		return false
	}
}

// WithCategory returns a copy of the plan with a single category flag
// set. This is a partial update of the nested group: the other flags
// keep their values.
func (d Data) WithCategory(c Category, set bool) Data {
	switch c {
	case CategoryNumericos:
		d.Categories.Numericos = set
	case CategoryMadurez:
		d.Categories.Madurez = set
	case CategoryOrganicos:
		d.Categories.Organicos = set
	}
	return d
}
