package detection

import "github.com/sendasalud/senda/internal/detection/rules"

// Intervention templates keyed by detection label.  These are surfaced
// verbatim to the response generator, which may rephrase them; missing keys
// fall back to a generic prompt rather than an empty string.

var resistanceInterventions = map[string]string{
	rules.ResistanceDenial:       "Validar su perspectiva sin confrontar; explorar con curiosidad qué le trajo a la conversación.",
	rules.ResistanceMinimization: "Reflejar la experiencia con sus propias palabras y preguntar cómo le afecta en el día a día.",
	rules.ResistanceAvoidance:    "Respetar el ritmo; ofrecer volver al tema más adelante y mantener la puerta abierta.",
	rules.ResistanceAmbivalence:  "Explorar ambos lados de la ambivalencia; preguntar qué ganaría y qué perdería con el cambio.",
	rules.ResistanceHopelessness: "Validar el cansancio; rescatar intentos pasados como evidencia de esfuerzo, no de fracaso.",
}

var needInterventions = map[string]string{
	rules.NeedValidation: "Reflejar la emoción explícitamente y confirmar que tiene sentido sentirse así.",
	rules.NeedControl:    "Identificar un aspecto pequeño y concreto de la situación que sí esté bajo su control.",
	rules.NeedConnection: "Explorar vínculos disponibles y dar espacio a la experiencia de soledad sin minimizarla.",
	rules.NeedPurpose:    "Explorar valores y actividades que antes daban sentido, sin exigir respuestas inmediatas.",
	rules.NeedSafety:     "Evaluar la seguridad actual y concretar qué haría sentir un poco más de seguridad hoy.",
	rules.NeedAcceptance: "Señalar el dolor del rechazo y separar el juicio ajeno del valor propio.",
	rules.NeedCompetence: "Recordar logros previos específicos y descomponer el reto actual en pasos alcanzables.",
}

var distortionInterventions = map[string]string{
	rules.DistortionAllOrNothing:          "Buscar juntos los grises: ¿qué habría entre el éxito total y el fracaso total?",
	rules.DistortionOvergeneralization:    "Pedir un contraejemplo: ¿hubo alguna vez en que no ocurrió así?",
	rules.DistortionMentalFilter:          "Ampliar el foco: ¿qué más pasó ese día, aunque parezca menor?",
	rules.DistortionDisqualifyingPositive: "Examinar la evidencia del logro como si fuera de otra persona.",
	rules.DistortionJumpingToConclusions:  "Separar hecho de interpretación: ¿qué se sabe con certeza?",
	rules.DistortionMindReading:           "Contrastar la suposición: ¿qué evidencia directa hay de lo que piensan?",
	rules.DistortionFortuneTelling:        "Revisar predicciones pasadas: ¿cuántas se cumplieron tal como se temía?",
	rules.DistortionMagnification:         "Dimensionar: en una escala de 0 a 100, ¿dónde queda esto realmente?",
	rules.DistortionMinimization:          "Dar al logro el mismo peso que se daría al de un amigo.",
	rules.DistortionCatastrophizing:       "Recorrer el peor escenario, el mejor y el más probable.",
	rules.DistortionEmotionalReasoning:    "Distinguir sentir de ser: una emoción intensa no es una prueba.",
	rules.DistortionShouldStatements:      "Reformular el 'debería' como preferencia: ¿qué cambia al decir 'me gustaría'?",
	rules.DistortionLabeling:              "Separar conducta de identidad: describir lo que pasó sin etiquetar a la persona.",
	rules.DistortionPersonalization:       "Repartir responsabilidad de forma realista entre todos los factores involucrados.",
	rules.DistortionBlame:                 "Explorar la parte propia modificable sin negar la responsabilidad ajena.",
	rules.DistortionUnfairComparison:      "Comparar con el propio punto de partida, no con el punto de llegada de otros.",
	rules.DistortionRegretOrientation:     "Traer el foco al presente: ¿qué opción existe hoy, con lo que hoy se sabe?",
	rules.DistortionWhatIf:                "Anclar en el presente: ¿qué está pasando ahora mismo, no en la hipótesis?",
}

// genericIntervention is the fallback when no template exists for a label.
const genericIntervention = "Explorar la experiencia con preguntas abiertas y validar la emoción antes de intervenir."

var relapseSuggestions = map[string]string{
	RelapseUrgencyMedium: "Señalar con cuidado las señales detectadas y repasar las estrategias que funcionaron antes.",
	RelapseUrgencyHigh:   "Priorizar la contención: nombrar la recaída sin juicio, activar la red de apoyo y plan de seguridad.",
}

func interventionFor(table map[string]string, label string) string {
	if s, ok := table[label]; ok {
		return s
	}
	return genericIntervention
}
