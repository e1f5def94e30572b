package chat

// Speaker identifies who produced a transcript entry.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Message is one transcript entry.
type Message struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Canned assistant texts. The greeting opens every conversation; the other two
// stand in for a reply whenever the external API misbehaves, so the student
// never sees a raw error.
const (
	GreetingText   = "¡Hola! Soy Yumo, tu asistente educativo. ¿En qué te puedo ayudar hoy con Diseño, Matemáticas o tu Proyecto Personal?"
	NoAnswerText   = "Lo siento, no pude generar una respuesta. Por favor, intenta de nuevo."
	ConnErrorText  = "Hubo un error al conectar con el asistente. Intenta más tarde."
	AssistantName  = "Yumo"
	AvatarURL      = "https://i.imgur.com/KYvdRoV.png"
	AvatarFallback = "https://placehold.co/40x40/b7e4c7/0d753b?text=Yumo"
)
