package guide

import (
	"github.com/acampos/giftwise/internal/i18n"
	"github.com/acampos/giftwise/internal/plan"
)

// entryKind distinguishes the three row types of the guide.
type entryKind int

const (
	entryPrimary entryKind = iota
	entryField
	entryCategory
)

// entry is one navigable row of the guide form.
type entry struct {
	kind  entryKind
	field plan.Field
	cat   plan.Category
	label i18n.Text
}

var primaryLabel = i18n.Text{
	EN: "Step 1: Your primary spiritual gifts",
	ES: "Paso 1: Sus dones espirituales principales",
}

var fieldLabels = map[plan.Field]i18n.Text{
	plan.FieldSecondaryGifts: {
		EN: "Step 1: Secondary gifts you sense",
		ES: "Paso 1: Dones secundarios que percibe",
	},
	plan.FieldFunctionsInChurch: {
		EN: "Step 3: Functions you could fill in the church",
		ES: "Paso 3: Funciones que podría desempeñar en la iglesia",
	},
	plan.FieldNewMinistriesToStart: {
		EN: "Step 3: New ministries that could be started",
		ES: "Paso 3: Nuevos ministerios que podrían iniciarse",
	},
	plan.FieldChosenMinistries: {
		EN: "Step 4: Ministries you choose to pursue",
		ES: "Paso 4: Ministerios que elige seguir",
	},
	plan.FieldPotentialBarriers: {
		EN: "Step 5: Potential barriers",
		ES: "Paso 5: Barreras potenciales",
	},
	plan.FieldMinistryImpactOnChurch: {
		EN: "Step 5: Expected impact on the church",
		ES: "Paso 5: Impacto esperado en la iglesia",
	},
	plan.FieldStudyAndLearningPlan: {
		EN: "Step 6: Study and learning plan",
		ES: "Paso 6: Plan de estudio y aprendizaje",
	},
	plan.FieldCurrentResources: {
		EN: "Step 7: Resources you already have",
		ES: "Paso 7: Recursos con los que ya cuenta",
	},
	plan.FieldNeededResources: {
		EN: "Step 7: Resources you still need",
		ES: "Paso 7: Recursos que aún necesita",
	},
	plan.FieldHelperSkillsNeeded: {
		EN: "Step 8: Skills your helpers need",
		ES: "Paso 8: Habilidades que necesitan sus ayudantes",
	},
	plan.FieldHelperTrainingPlan: {
		EN: "Step 8: Training plan for helpers",
		ES: "Paso 8: Plan de capacitación para ayudantes",
	},
	plan.FieldSupportGroupTemperament: {
		EN: "Step 9: Support group temperament",
		ES: "Paso 9: Temperamento del grupo de apoyo",
	},
	plan.FieldSupportGroupResources: {
		EN: "Step 9: Support group resources",
		ES: "Paso 9: Recursos del grupo de apoyo",
	},
	plan.FieldBaseOfOperations: {
		EN: "Step 10: Base of operations",
		ES: "Paso 10: Base de operaciones",
	},
	plan.FieldActionPlanDetails: {
		EN: "Step 11: Action plan details",
		ES: "Paso 11: Detalles del plan de acción",
	},
	plan.FieldTimeline3Months: {
		EN: "Step 12: Timeline, first 3 months",
		ES: "Paso 12: Cronograma, primeros 3 meses",
	},
	plan.FieldTimeline1Year: {
		EN: "Step 12: Timeline, first year",
		ES: "Paso 12: Cronograma, primer año",
	},
	plan.FieldTimelineLongTerm: {
		EN: "Step 12: Timeline, long term",
		ES: "Paso 12: Cronograma, largo plazo",
	},
}

var categoryLabels = map[plan.Category]i18n.Text{
	plan.CategoryNumericos: {
		EN: "Step 2: Numerical growth",
		ES: "Paso 2: Crecimiento numérico",
	},
	plan.CategoryMadurez: {
		EN: "Step 2: Growth in maturity",
		ES: "Paso 2: Crecimiento en madurez",
	},
	plan.CategoryOrganicos: {
		EN: "Step 2: Organic growth",
		ES: "Paso 2: Crecimiento orgánico",
	},
}

// buildEntries lays out the guide rows: the read-only primary gifts,
// the secondary gifts, the step-2 category flags, then the remaining
// text fields in display order.
func buildEntries() []entry {
	entries := []entry{
		{kind: entryPrimary, label: primaryLabel},
		{kind: entryField, field: plan.FieldSecondaryGifts, label: fieldLabels[plan.FieldSecondaryGifts]},
	}
	for _, c := range []plan.Category{plan.CategoryNumericos, plan.CategoryMadurez, plan.CategoryOrganicos} {
		entries = append(entries, entry{kind: entryCategory, cat: c, label: categoryLabels[c]})
	}
	for _, f := range plan.TextFields {
		if f == plan.FieldSecondaryGifts {
			continue
		}
		entries = append(entries, entry{kind: entryField, field: f, label: fieldLabels[f]})
	}
	return entries
}
