package templates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-shop-cart/pkg/mailer/templates"
)

func TestRender_Welcome(t *testing.T) {
	data := templates.ToMap(templates.EmailData{
		Name:    "Jane <Doe>",
		Email:   "jane@example.com",
		AppName: "Shop",
		Type:    templates.Welcome,
		TimeAt:  time.Now(),
	})

	subject, text, html, err := templates.Render(templates.Welcome, data)
	require.NoError(t, err)

	assert.Equal(t, "Welcome to Shop, Jane <Doe>", subject)
	assert.Contains(t, text, "jane@example.com")
	assert.Contains(t, html, "Jane &lt;Doe&gt;")
}

func TestRender_Defaults(t *testing.T) {
	subject, _, _, err := templates.Render(templates.Welcome, map[string]any{"Email": "x@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to our shop, there", subject)
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := templates.Render("nope", nil)
	assert.Error(t, err)
}
