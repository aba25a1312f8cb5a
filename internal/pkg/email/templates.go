package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateManager управляет шаблонами email
type TemplateManager struct {
	templates map[string]*template.Template
}

// NewTemplateManager создает менеджер со встроенными шаблонами
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	builtins := map[string]string{
		"verification":  verificationTemplate,
		"temp_password": tempPasswordTemplate,
	}

	for name, text := range builtins {
		tpl, err := template.New(name).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		tm.templates[name] = tpl
	}

	return tm, nil
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data interface{}) (string, error) {
	tpl, exists := tm.templates[templateName]
	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}

// Встроенные шаблоны
const (
	verificationTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Подтверждение Email</title>
</head>
<body>
    <h1>Здравствуйте{{if .UserName}}, {{.UserName}}{{end}}!</h1>
    <p>Спасибо за регистрацию в FitTrack. Для завершения регистрации подтвердите ваш email:</p>
    <a href="{{.ActionURL}}" style="background-color: #007bff; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">{{.ActionText}}</a>
    <p>Ссылка действительна 24 часа.</p>
    <p>Если вы не регистрировались, просто проигнорируйте это письмо.</p>
</body>
</html>`

	tempPasswordTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Временный пароль</title>
</head>
<body>
    <h1>Здравствуйте{{if .UserName}}, {{.UserName}}{{end}}!</h1>
    <p>Вы запросили сброс пароля. Ваш временный пароль:</p>
    <p style="font-size: 20px; font-weight: bold;">{{.TempPassword}}</p>
    <p>Войдите с ним в течение 24 часов. После входа приложение попросит установить новый пароль.</p>
    <p>Если вы не запрашивали сброс, обратитесь в поддержку: {{.SupportEmail}}</p>
</body>
</html>`
)
