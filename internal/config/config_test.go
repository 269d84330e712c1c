package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"gemflush/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: development\n"))
	require.NoError(t, err)

	// the LLM client appends /chat/completions to this
	require.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.BaseURL)
	require.Equal(t, 1024, cfg.LLM.MaxTokens)
	require.Equal(t, "https://www.wikidata.org/w/api.php", cfg.Wikidata.APIURL)
	require.NotZero(t, cfg.Wikidata.Timeout)
	require.False(t, cfg.Wikidata.Enabled)
	require.Equal(t, 3, cfg.Pipeline.MaxAttempts)
}

func TestLoad_StripeSection(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
stripe:
  secretKey: sk_test
  webhookSecret: whsec_test
  proPriceID: price_pro
  agencyPriceID: price_agency
`))
	require.NoError(t, err)

	// the section is a named type so it can be passed around on its own
	var section config.Stripe = cfg.Stripe
	require.Equal(t, "sk_test", section.SecretKey)
	require.Equal(t, "whsec_test", section.WebhookSecret)
	require.Equal(t, "price_pro", section.ProPriceID)
	require.Equal(t, "price_agency", section.AgencyPriceID)
}

func TestModels(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "llm:\n  models: \" openai/gpt-4o , ,anthropic/claude-3.5-sonnet\"\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"openai/gpt-4o", "anthropic/claude-3.5-sonnet"}, cfg.Models())
}
