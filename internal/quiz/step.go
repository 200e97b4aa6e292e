package quiz

// Step identifies the current application step. The state machine moves
// Welcome → IdentifyForQuiz | IdentifyForDevelopment → Form → Calculating
// → Saving → Results ⇄ DevelopmentGuide, with reset back to Welcome from
// anywhere. There is no terminal step.
type Step int

const (
	StepWelcome Step = iota
	StepIdentifyForQuiz
	StepIdentifyForDevelopment
	StepForm
	StepCalculating
	StepSaving
	StepResults
	StepDevelopmentGuide
)

func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepIdentifyForQuiz:
		return "identify_for_quiz"
	case StepIdentifyForDevelopment:
		return "identify_for_development"
	case StepForm:
		return "form"
	case StepCalculating:
		return "calculating"
	case StepSaving:
		return "saving"
	case StepResults:
		return "results"
	case StepDevelopmentGuide:
		return "development_guide"
	default:
		return "unknown"
	}
}
