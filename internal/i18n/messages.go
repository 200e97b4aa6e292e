package i18n

// Shared user-facing messages. Screen-specific labels live with their
// screens; these are the ones raised by the state machine and the store
// adapters, where no single screen owns them.
var (
	MsgAnswerAllOnPage = Text{
		EN: "Please answer all questions on this page to continue.",
		ES: "Por favor, responda todas las preguntas de esta página para continuar.",
	}
	MsgAnswerAllToView = Text{
		EN: "Please answer all questions on this page to view your gifts.",
		ES: "Por favor, responda todas las preguntas de esta página para ver sus dones.",
	}
	MsgSomeAnswersMissing = Text{
		EN: "It seems some answers are missing on previous pages. Please review.",
		ES: "Parece que faltan algunas respuestas en páginas anteriores. Por favor, revise.",
	}
	MsgSavingErrorDB = Text{
		EN: "There was a problem saving your questionnaire results to the database. You can still view them locally.",
		ES: "Hubo un problema al guardar los resultados de su cuestionario en la base de datos. Todavía puede verlos localmente.",
	}
	MsgNoResultsForEmail = Text{
		EN: "No questionnaire results found for this email. Please complete the questionnaire first.",
		ES: "No se encontraron resultados del cuestionario para este correo electrónico. Por favor, complete el cuestionario primero.",
	}
	MsgErrorLoadingData = Text{
		EN: "Error loading data. Please try again.",
		ES: "Error al cargar datos. Por favor, inténtelo de nuevo.",
	}
	MsgErrorSavingPlan = Text{
		EN: "Error saving development plan. Please try again.",
		ES: "Error al guardar el plan de desarrollo. Por favor, inténtelo de nuevo.",
	}
	MsgEnterEmailToLoadPlan = Text{
		EN: "Please enter your email to load your plan.",
		ES: "Por favor, ingrese su correo electrónico para cargar su plan.",
	}
	MsgNoPlanOrEmailMissing = Text{
		EN: "No plan data to save or user email is missing.",
		ES: "No hay datos del plan para guardar o falta el correo electrónico del usuario.",
	}
	MsgNoResultsToDisplay = Text{
		EN: "No results to display. Please complete the questionnaire.",
		ES: "No hay resultados para mostrar. Por favor, complete el cuestionario.",
	}
	MsgPrimaryGiftsUnavailable = Text{
		EN: "Primary gifts not available",
		ES: "Dones principales no disponibles",
	}
	MsgNameRequired = Text{
		EN: "Please enter your name.",
		ES: "Por favor, ingrese su nombre.",
	}
	MsgInvalidEmail = Text{
		EN: "Please enter a valid email address.",
		ES: "Por favor, ingrese un correo electrónico válido.",
	}
)
