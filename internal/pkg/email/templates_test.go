package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_RenderVerification(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	body, err := tm.Render("verification", TemplateData{
		UserName:   "Aidana",
		ActionURL:  "http://localhost:8080/api/auth/verify-email?token=abc",
		ActionText: "Подтвердить Email",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Aidana")
	assert.Contains(t, body, "verify-email?token=abc")
	assert.Contains(t, body, "Подтвердить Email")
}

func TestTemplateManager_RenderTempPassword(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	body, err := tm.Render("temp_password", TemplateData{
		UserName:     "Aidana",
		TempPassword: "Ab12Cd34",
		SupportEmail: "support@fittrack.app",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Ab12Cd34")
	assert.Contains(t, body, "support@fittrack.app")
}

func TestTemplateManager_UnknownTemplate(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	_, err = tm.Render("missing", TemplateData{})
	assert.Error(t, err)
}
