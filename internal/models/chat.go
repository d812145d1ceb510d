package models

// ChatMessage представляет сообщение общего чата.
// Чат опрашивается клиентом, сервер ничего не пушит.
type ChatMessage struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"` // Метка времени в том виде, в каком прислал клиент
}

// DummyChatMessage используется для приёма сообщения чата из JSON-запроса.
type DummyChatMessage struct {
	Content   string `json:"content" validate:"required,max=2000"`
	Timestamp string `json:"timestamp" validate:"required"`
}
