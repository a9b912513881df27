package rules

// Intent labels, in priority order.
const (
	IntentCrisis       = "CRISIS"
	IntentEmotional    = "AYUDA_EMOCIONAL"
	IntentConsultation = "CONSULTA_IMPORTANTE"
	IntentGeneral      = "CONVERSACION_GENERAL"
)

// Topic labels.
const (
	TopicEmotional = "EMOCIONAL"
	TopicRelations = "RELACIONES"
	TopicWorkStudy = "TRABAJO_ESTUDIO"
	TopicHealth    = "SALUD"
	TopicGeneral   = "GENERAL"
)

// intentSet resolves the coarse purpose of a message.  Crisis phrasing is
// declared first: a greeting inside a crisis message must never win.
var intentSet = Set{
	Name: "intent",
	Categories: []Category{
		cat(IntentCrisis,
			`no quiero (seguir|vivir|existir)`,
			`(ya )?no vale la pena`,
			`quitarme la vida`,
			`hacerme da(ño|no)`,
			`suicid`,
			`acabar con todo`,
			`quiero desaparecer`,
			`ser(í|i)a mejor no estar`,
			`no aguanto m(á|a)s`,
		),
		cat(IntentEmotional,
			`me siento`,
			`estoy (mal|triste|fatal|destrozad[oa]|hundid[oa])`,
			`\btriste\b`,
			`deprimid[oa]`,
			`ansios[oa]`,
			`angusti`,
			`no puedo m(á|a)s`,
			`(tengo|siento) ganas de llorar`,
			`nadie me entiende`,
			`necesito desahogarme`,
		),
		cat(IntentConsultation,
			`necesito (un )?consejo`,
			`necesito ayuda con`,
			`qu(é|e) (hago|debo hacer|me recomiendas)`,
			`c(ó|o)mo puedo`,
			`tengo que (decidir|resolver)`,
			`es (muy )?importante`,
			`tengo una duda`,
		),
		cat(IntentGeneral,
			`^hola`,
			`buen(os d(í|i)as|as tardes|as noches)`,
			`qu(é|e) tal`,
			`c(ó|o)mo est(á|a)s`,
			`\bgracias\b`,
			`(adi(ó|o)s|hasta luego|nos vemos)`,
		),
	},
}

// topicSet resolves the subject-matter category.
var topicSet = Set{
	Name: "topic",
	Categories: []Category{
		cat(TopicEmotional,
			`\btriste`,
			`tristeza`,
			`ansie(dad|oso|osa)`,
			`deprimid|depresi(ó|o)n`,
			`\bmiedo\b`,
			`soledad`,
			`\bsol[oa]\b`,
			`angusti`,
			`llorar`,
			`estr(é|e)s|estresad`,
			`emoci(ó|o)n`,
			`enojad[oa]|\bira\b|rabia`,
		),
		cat(TopicRelations,
			`\bpareja\b`,
			`\bfamilia\b`,
			`amig[oa]s?\b`,
			`novi[oa]`,
			`matrimonio|espos[oa]`,
			`relaci(ó|o)n`,
			`discusi(ó|o)n|discutimos`,
			`\bruptura\b|terminamos`,
			`mi (madre|padre|mam(á|a)|pap(á|a)|herman[oa])`,
		),
		cat(TopicWorkStudy,
			`\btrabajo\b|\btrabajar\b`,
			`\bjefe\b|\bjefa\b`,
			`oficina`,
			`estudi(o|os|ar|ando)`,
			`\bexamen\b|ex(á|a)menes`,
			`universidad|escuela|colegio`,
			`\btareas?\b`,
			`carrera|profesi(ó|o)n`,
			`desped(ido|ida)|desempleo`,
		),
		cat(TopicHealth,
			`\bsalud\b`,
			`enferm(o|a|edad)`,
			`\bdolor(es)?\b`,
			`m(é|e)dic[oa]|doctor`,
			`hospital|cl(í|i)nica`,
			`s(í|i)ntomas?`,
			`(no puedo )?dormir|insomnio`,
			`medicamento|pastillas`,
			`cansancio|fatiga`,
		),
		cat(TopicGeneral,
			`clima|tiempo libre`,
			`pel(í|i)cula|serie|m(ú|u)sica`,
			`fin de semana`,
			`hobby|pasatiempo`,
		),
	},
}

// urgencyMarkers escalate a message to ALTA regardless of intent.
// Deliberately small and explicit.
var urgencyMarkers = compile(
	`urgente`,
	`emergencia`,
	`\bcrisis\b`,
	`ayuda ahora`,
	`\bgrave\b`,
)
