package quiz

// Kind tells how a question expects its answer.
type Kind string

const (
	KindFreeText     Kind = "text"
	KindSingleChoice Kind = "radio"
)

// Question is a static quiz entry; never mutated after startup.
type Question struct {
	Prompt  string   `json:"prompt"`
	Kind    Kind     `json:"kind"`
	Options []string `json:"options,omitempty"` // ordered, single-choice only
	Answer  string   `json:"-"`                 // never sent to the client
}

type Topic string

const (
	TopicMath    Topic = "math"
	TopicDesign  Topic = "design"
	TopicProject Topic = "proyecto-personal"
)

// TopicInfo is what the quiz selection screen shows per topic.
type TopicInfo struct {
	Topic       Topic  `json:"topic"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type topicData struct {
	info      TopicInfo
	questions []Question
}

var topics = map[Topic]topicData{
	TopicMath: {
		info: TopicInfo{
			Topic:       TopicMath,
			Title:       "Matemáticas",
			Description: "Ponte a prueba con el Teorema de Pitágoras y Binomios al Cuadrado.",
		},
		questions: []Question{
			{
				Prompt: "¿Cuál es la fórmula del Teorema de Pitágoras?",
				Kind:   KindFreeText,
				Answer: "a^2 + b^2 = c^2",
			},
			{
				Prompt: "¿Cuál es el resultado de (a + b)²?",
				Kind:   KindFreeText,
				Answer: "a^2 + 2ab + b^2",
			},
			{
				Prompt:  "¿Si un triángulo tiene lados de 3 y 4, cuál es la hipotenusa?",
				Kind:    KindSingleChoice,
				Options: []string{"5", "6", "7", "8"},
				Answer:  "5",
			},
		},
	},
	TopicDesign: {
		info: TopicInfo{
			Topic:       TopicDesign,
			Title:       "Diseño",
			Description: "Repasa los criterios de diseño y fundamentos visuales.",
		},
		questions: []Question{
			{
				Prompt:  "¿Qué criterio del Diseño corresponde a la Investigación?",
				Kind:    KindSingleChoice,
				Options: []string{"Criterio A", "Criterio B", "Criterio C", "Criterio D"},
				Answer:  "Criterio A",
			},
			{
				Prompt:  "¿Qué criterio corresponde a la Creación de la Solución?",
				Kind:    KindSingleChoice,
				Options: []string{"Criterio A", "Criterio B", "Criterio C", "Criterio D"},
				Answer:  "Criterio C",
			},
			{
				Prompt: "¿Qué etapa del proyecto sigue al Prototipado y Pruebas?",
				Kind:   KindFreeText,
				Answer: "Implementación",
			},
		},
	},
	TopicProject: {
		info: TopicInfo{
			Topic:       TopicProject,
			Title:       "Proyecto Personal",
			Description: "Evalúa tu conocimiento sobre las etapas y el informe del proyecto.",
		},
		questions: []Question{
			{
				Prompt:  "¿Cuál es la primera etapa clave del Proyecto Personal?",
				Kind:    KindSingleChoice,
				Options: []string{"Identificación de un enfoque", "Planificación", "Ejecución", "Reflexión"},
				Answer:  "Identificación de un enfoque",
			},
			{
				Prompt:  "¿Cuántas etapas clave tiene el Proyecto Personal?",
				Kind:    KindSingleChoice,
				Options: []string{"3", "4", "5", "6"},
				Answer:  "5",
			},
			{
				Prompt: "¿Qué documento presentas al cierre del Proyecto Personal?",
				Kind:   KindFreeText,
				Answer: "Informe",
			},
		},
	},
}

// Topics lists the selectable quiz topics in presentation order.
func Topics() []TopicInfo {
	return []TopicInfo{
		topics[TopicMath].info,
		topics[TopicDesign].info,
		topics[TopicProject].info,
	}
}
