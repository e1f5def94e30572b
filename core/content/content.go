// Package content holds the app's static presentation data: nav items,
// dashboard cards, subject pages and the teacher announcement. Pure display
// data, no behavior.
package content

import "github.com/yumoapp/aula/core/view"

type (
	// Image is an external URL with the placeholder shown on load failure.
	Image struct {
		URL      string `json:"url"`
		Fallback string `json:"fallback"`
		Alt      string `json:"alt"`
	}

	NavItem struct {
		Name string    `json:"name"`
		View view.View `json:"view"`
		Icon string    `json:"icon"`
	}

	VideoCard struct {
		Title       string    `json:"title"`
		EmbedURL    string    `json:"embedUrl"`
		Description string    `json:"description"`
		LinkView    view.View `json:"linkView"`
		LinkLabel   string    `json:"linkLabel"`
	}

	Announcement struct {
		Title   string `json:"title"`
		Teacher string `json:"teacher"`
		Body    string `json:"body"`
	}

	Card struct {
		Title string   `json:"title"`
		Items []string `json:"items"`
	}

	Page struct {
		Slug     string `json:"slug"`
		Title    string `json:"title"`
		Intro    string `json:"intro"`
		Image    Image  `json:"image"`
		Cards    []Card `json:"cards"`
		// Prompts are the personal project's reflection questions; empty
		// elsewhere.
		Prompts []string `json:"prompts,omitempty"`
	}

	Dashboard struct {
		Title        string       `json:"title"`
		Videos       []VideoCard  `json:"videos"`
		Announcement Announcement `json:"announcement"`
		StreakCard   StreakCard   `json:"streakCard"`
		QuizInvite   QuizInvite   `json:"quizInvite"`
	}

	StreakCard struct {
		Title     string `json:"title"`
		Character Image  `json:"character"`
		Caption   string `json:"caption"`
		ClaimHint string `json:"claimHint"`
	}

	QuizInvite struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
)

// NavItems is the bottom navigation bar, shown once logged in.
var NavItems = []NavItem{
	{Name: "Inicio", View: view.Dashboard, Icon: "🏠"},
	{Name: "Diseño", View: view.Design, Icon: "🎨"},
	{Name: "Matemáticas", View: view.Math, Icon: "➗"},
	{Name: "Proyecto", View: view.PersonalProject, Icon: "💡"},
	{Name: "Chat", View: view.Chat, Icon: "💬"},
	{Name: "Agenda", View: view.Agenda, Icon: "🗓️"},
}

var TeacherAnnouncement = Announcement{
	Title:   "Comunicado Importante",
	Teacher: "Jose Gutierrez",
	Body: `Estimados estudiantes,

Para informar que el día jueves 12 se realizará la segunda evaluación de matemática del bimestre.

Criterio B: Investigación de patrones
Temas: Ecuaciones cuadráticas.
Resolución de ecuaciones cuadráticas incompletas:  ax² +c= 0  /  ax² +bx = 0
Resolución de ecuaciones cuadráticas completas:
  ax² + bx +c = 0 (Fórmula general y metodo de aspa)

Paginas a repasar: 194 (ejercicios del 13 al 22), 195 (ejercicios del 1 al 7)

* Nota: La fórmula general estara colocada en la evaluación.`,
}

var DashboardContent = Dashboard{
	Title: "Tu Espacio de Aprendizaje",
	Videos: []VideoCard{
		{
			Title:       "Videos del tema de la semana 3",
			EmbedURL:    "https://www.youtube.com/embed/BxrJmKdPHRs",
			Description: "Aprende sobre la Sección Áurea y su aplicación en el diseño.",
			LinkView:    view.Math,
			LinkLabel:   "Ver Lección de Matemáticas",
		},
		{
			Title:       "TEMA DE LA SEMANA 5",
			EmbedURL:    "https://www.youtube.com/embed/rHVYZAE0RKQ",
			Description: "El tema de esta semana es Teorema de Pitágoras y Binomios al Cuadrado.",
			LinkView:    view.Math,
			LinkLabel:   "Aprender Más",
		},
	},
	Announcement: TeacherAnnouncement,
	StreakCard: StreakCard{
		Title: "¡Tu Racha Académica! 🔥",
		Character: Image{
			URL:      "https://i.imgur.com/KYvdRoV.png",
			Fallback: "https://placehold.co/112x112/a7f3d0/065f46?text=Error",
			Alt:      "Personaje de la racha académica",
		},
		Caption:   "Días de racha consecutiva",
		ClaimHint: "Completa tus tareas para un punto extra en tu racha.",
	},
	QuizInvite: QuizInvite{
		Title:       "Realiza un Quiz o Test Interactivo",
		Description: "Pon a prueba tus conocimientos en Matemáticas y Proyecto Personal con divertidos quizzes.",
	},
}

var pages = map[string]Page{
	"design": {
		Slug:  "design",
		Title: "Diseño: Fundamentos Visuales y Estéticos",
		Intro: "En Diseño, exploramos los Criterios A, B, C y D para la creación de soluciones innovadoras. " +
			"Actualmente, estamos trabajando en el desarrollo de un sistema educativo que aborde la problemática de la " +
			"Desigualdad educativa por la falta de recursos tecnológicos en zonas rurales o colegios estatales.",
		Image: Image{
			URL:      "https://i.imgur.com/jKqIGCm.png",
			Fallback: "https://placehold.co/400x200/cbe8ff/3b82f6?text=Error+Loading+Image",
			Alt:      "Diagrama de Criterios de Diseño",
		},
		Cards: []Card{
			{
				Title: "Criterios del Diseño",
				Items: []string{"Criterio A: Investigación", "Criterio B: Desarrollo de Ideas", "Criterio C: Creación de la Solución", "Criterio D: Evaluación"},
			},
			{
				Title: "Elementos Clave del Proyecto",
				Items: []string{"Definición del Problema", "Análisis de Usuarios", "Diseño de la Interfaz", "Prototipado y Pruebas", "Implementación"},
			},
		},
	},
	"math": {
		Slug:  "math",
		Title: "Matemáticas: Herramientas para la Creación",
		Intro: "En Matemáticas, profundizamos en conceptos fundamentales que son esenciales para el diseño y la " +
			"resolución de problemas. Abordamos la proporcionalidad, ecuaciones cuadráticas, geometría y álgebra.",
		Image: Image{
			URL:      "https://i.imgur.com/DojPf53.png",
			Fallback: "https://placehold.co/400x200/d0f0c0/22c55e?text=Error+Loading+Image",
			Alt:      "Matemáticas Aplicadas Ilustración",
		},
		Cards: []Card{
			{
				Title: "Proporcionalidad y Ecuaciones",
				Items: []string{
					"Magnitudes Directamente Proporcionales",
					"Magnitudes Inversamente Proporcionales",
					"Ecuaciones Cuadráticas: ax² + bx + c = 0",
					"Método de la Fórmula General",
					"Método de Factorización y Aspa",
				},
			},
			{
				Title: "Geometría y Álgebra Fundamentales",
				Items: []string{
					"Teorema de Pitágoras: a² + b² = c²",
					"Binomio al Cuadrado: (a + b)² = a² + 2ab + b²",
					"Binomio al Cuadrado: (a - b)² = a² - 2ab + b²",
				},
			},
		},
	},
	"proyecto-personal": {
		Slug:  "proyecto-personal",
		Title: "Proyecto Personal: Tu Visión, Tu Creación",
		Intro: "El Proyecto Personal es una oportunidad única para investigar un tema de interés, desarrollar " +
			"habilidades de investigación y presentar un producto o resultado significativo.",
		Image: Image{
			URL:      "https://i.imgur.com/tk1J6YE.png",
			Fallback: "https://placehold.co/400x200/ffe4e6/ef4444?text=Error+Loading+Image",
			Alt:      "Ilustración de Proyecto Personal",
		},
		Cards: []Card{
			{
				Title: "Etapas Clave del Proyecto Personal",
				Items: []string{"Identificación de un enfoque", "Planificación", "Ejecución", "Reflexión", "Informe"},
			},
		},
		Prompts: []string{
			"¿Cuál es el tema que aborda tu Proyecto Personal?",
			"¿Por qué elegiste este tema?",
			"¿Qué problema o necesidad quieres resolver o visibilizar con este proyecto?",
			"¿Cuál es el objetivo principal de tu proyecto?",
			"¿Qué producto final vas a crear y por qué?",
		},
	},
}

// PageBySlug returns the static subject page, if it exists.
func PageBySlug(slug string) (Page, bool) {
	p, ok := pages[slug]
	return p, ok
}
