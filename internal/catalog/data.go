package catalog

import "github.com/acampos/giftwise/internal/i18n"

// Questions is the full ordered questionnaire. Question ids cycle through
// the gifts, so each page mixes items from several gifts; gift g owns
// questions {g, g+10, g+20}.
var Questions = []Question{
	{1, i18n.Text{EN: "I enjoy organizing people and tasks so that a shared goal is reached.", ES: "Disfruto organizar personas y tareas para alcanzar una meta común."}},
	{2, i18n.Text{EN: "I can explain ideas in a way that helps others truly understand them.", ES: "Puedo explicar ideas de manera que otros realmente las entiendan."}},
	{3, i18n.Text{EN: "I look for natural opportunities to share my faith with people outside the church.", ES: "Busco oportunidades naturales para compartir mi fe con personas fuera de la iglesia."}},
	{4, i18n.Text{EN: "I notice practical needs around me and quietly take care of them.", ES: "Noto necesidades prácticas a mi alrededor y las atiendo sin llamar la atención."}},
	{5, i18n.Text{EN: "I feel drawn to people who are suffering and want to be present with them.", ES: "Me siento atraído hacia las personas que sufren y quiero acompañarlas."}},
	{6, i18n.Text{EN: "I give resources generously and joyfully, even when it costs me.", ES: "Doy recursos con generosidad y alegría, aun cuando me cuesta."}},
	{7, i18n.Text{EN: "I remain confident of God's provision in situations others find hopeless.", ES: "Mantengo confianza en la provisión de Dios en situaciones que otros ven sin esperanza."}},
	{8, i18n.Text{EN: "I enjoy welcoming newcomers and making them feel at home.", ES: "Disfruto recibir a los recién llegados y hacerlos sentir en casa."}},
	{9, i18n.Text{EN: "People seek me out when they need encouragement to keep going.", ES: "Las personas me buscan cuando necesitan ánimo para seguir adelante."}},
	{10, i18n.Text{EN: "I can usually tell when a teaching or proposal is off track.", ES: "Normalmente percibo cuando una enseñanza o propuesta está desviada."}},
	{11, i18n.Text{EN: "Others naturally follow my direction when a group needs guidance.", ES: "Otros siguen mi dirección con naturalidad cuando un grupo necesita guía."}},
	{12, i18n.Text{EN: "I spend time studying so I can present truth accurately.", ES: "Dedico tiempo a estudiar para presentar la verdad con precisión."}},
	{13, i18n.Text{EN: "I feel compelled to tell others what my faith means to me.", ES: "Siento el impulso de contar a otros lo que mi fe significa para mí."}},
	{14, i18n.Text{EN: "Helping behind the scenes satisfies me more than being up front.", ES: "Ayudar tras bambalinas me satisface más que estar al frente."}},
	{15, i18n.Text{EN: "I can sit with people in pain without needing to fix them.", ES: "Puedo acompañar a personas en dolor sin necesidad de arreglarlas."}},
	{16, i18n.Text{EN: "I manage my finances so that I am able to give beyond what is expected.", ES: "Administro mis finanzas para poder dar más allá de lo esperado."}},
	{17, i18n.Text{EN: "I act on God's promises even when the outcome is uncertain.", ES: "Actúo según las promesas de Dios aun cuando el resultado es incierto."}},
	{18, i18n.Text{EN: "I like opening my home to guests, including people I barely know.", ES: "Me gusta abrir mi hogar a invitados, incluso a personas que apenas conozco."}},
	{19, i18n.Text{EN: "I find the right words to comfort and challenge people at the same time.", ES: "Encuentro las palabras justas para consolar y retar a la vez."}},
	{20, i18n.Text{EN: "I weigh what I hear carefully before accepting it as true.", ES: "Evalúo con cuidado lo que escucho antes de aceptarlo como verdadero."}},
	{21, i18n.Text{EN: "I can cast a vision and motivate others to work toward it.", ES: "Puedo proyectar una visión y motivar a otros a trabajar por ella."}},
	{22, i18n.Text{EN: "I enjoy preparing material that makes difficult subjects clear.", ES: "Disfruto preparar material que aclara temas difíciles."}},
	{23, i18n.Text{EN: "I am comfortable starting spiritual conversations with strangers.", ES: "Me siento cómodo iniciando conversaciones espirituales con desconocidos."}},
	{24, i18n.Text{EN: "I volunteer for jobs nobody else wants to do.", ES: "Me ofrezco para las tareas que nadie más quiere hacer."}},
	{25, i18n.Text{EN: "I am patient with people whose struggles repeat over and over.", ES: "Tengo paciencia con personas cuyas luchas se repiten una y otra vez."}},
	{26, i18n.Text{EN: "I see my possessions as tools to meet the needs of others.", ES: "Veo mis posesiones como herramientas para suplir necesidades ajenas."}},
	{27, i18n.Text{EN: "My confidence strengthens others when circumstances look bad.", ES: "Mi confianza fortalece a otros cuando las circunstancias se ven mal."}},
	{28, i18n.Text{EN: "I pay attention so no one is left out of a gathering.", ES: "Estoy atento para que nadie quede excluido en una reunión."}},
	{29, i18n.Text{EN: "I follow up with people to help them take their next step.", ES: "Doy seguimiento a las personas para ayudarlas a dar su siguiente paso."}},
	{30, i18n.Text{EN: "I sense motives and undercurrents that others miss.", ES: "Percibo motivaciones y corrientes ocultas que otros pasan por alto."}},
}

// Gifts is the fixed gift catalog. Order here is the tie-break order.
var Gifts = []GiftDefinition{
	{
		ID:          "leadership",
		Name:        i18n.Text{EN: "Leadership", ES: "Liderazgo"},
		Description: i18n.Text{EN: "Setting direction and mobilizing people toward shared goals.", ES: "Marcar el rumbo y movilizar a las personas hacia metas comunes."},
		Questions:   []int{1, 11, 21},
	},
	{
		ID:          "teaching",
		Name:        i18n.Text{EN: "Teaching", ES: "Enseñanza"},
		Description: i18n.Text{EN: "Explaining truth clearly so others can understand and apply it.", ES: "Explicar la verdad con claridad para que otros la entiendan y apliquen."},
		Questions:   []int{2, 12, 22},
	},
	{
		ID:          "evangelism",
		Name:        i18n.Text{EN: "Evangelism", ES: "Evangelismo"},
		Description: i18n.Text{EN: "Sharing the message of faith naturally with those outside the church.", ES: "Compartir el mensaje de fe con naturalidad con quienes están fuera de la iglesia."},
		Questions:   []int{3, 13, 23},
	},
	{
		ID:          "service",
		Name:        i18n.Text{EN: "Service", ES: "Servicio"},
		Description: i18n.Text{EN: "Meeting practical needs, often unseen, so the work moves forward.", ES: "Suplir necesidades prácticas, muchas veces sin ser visto, para que la obra avance."},
		Questions:   []int{4, 14, 24},
	},
	{
		ID:          "mercy",
		Name:        i18n.Text{EN: "Mercy", ES: "Misericordia"},
		Description: i18n.Text{EN: "Compassionate presence with those who suffer.", ES: "Presencia compasiva junto a los que sufren."},
		Questions:   []int{5, 15, 25},
	},
	{
		ID:          "giving",
		Name:        i18n.Text{EN: "Giving", ES: "Generosidad"},
		Description: i18n.Text{EN: "Contributing resources cheerfully and sacrificially.", ES: "Aportar recursos con alegría y sacrificio."},
		Questions:   []int{6, 16, 26},
	},
	{
		ID:          "faith",
		Name:        i18n.Text{EN: "Faith", ES: "Fe"},
		Description: i18n.Text{EN: "Unusual confidence in God's provision and promises.", ES: "Confianza fuera de lo común en la provisión y las promesas de Dios."},
		Questions:   []int{7, 17, 27},
	},
	{
		ID:          "hospitality",
		Name:        i18n.Text{EN: "Hospitality", ES: "Hospitalidad"},
		Description: i18n.Text{EN: "Making strangers and newcomers feel genuinely welcome.", ES: "Hacer que extraños y recién llegados se sientan verdaderamente bienvenidos."},
		Questions:   []int{8, 18, 28},
	},
	{
		ID:          "exhortation",
		Name:        i18n.Text{EN: "Exhortation", ES: "Exhortación"},
		Description: i18n.Text{EN: "Encouraging and challenging people toward growth.", ES: "Animar y retar a las personas hacia el crecimiento."},
		Questions:   []int{9, 19, 29},
	},
	{
		ID:          "discernment",
		Name:        i18n.Text{EN: "Discernment", ES: "Discernimiento"},
		Description: i18n.Text{EN: "Distinguishing truth from error and sensing hidden motives.", ES: "Distinguir la verdad del error y percibir motivaciones ocultas."},
		Questions:   []int{10, 20, 30},
	},
}

// RatingScale is the 1–5 answer scale with per-value descriptions.
var RatingScale = []RatingLabel{
	{1, i18n.Text{EN: "Never", ES: "Nunca"}},
	{2, i18n.Text{EN: "Rarely", ES: "Rara vez"}},
	{3, i18n.Text{EN: "Sometimes", ES: "A veces"}},
	{4, i18n.Text{EN: "Often", ES: "Frecuentemente"}},
	{5, i18n.Text{EN: "Always", ES: "Siempre"}},
}
