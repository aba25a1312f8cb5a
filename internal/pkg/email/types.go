package email

// Email представляет структуру email сообщения
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
}

// TemplateData базовая структура для данных шаблонов
type TemplateData struct {
	UserName     string
	Subject      string
	Message      string
	ActionURL    string
	ActionText   string
	TempPassword string
	SupportEmail string
	CompanyName  string
}

// Sender интерфейс для отправки email
type Sender interface {
	Send(email *Email) error
	SendVerification(to, name, token string) error
	SendTempPassword(to, name, tempPassword string) error
}
