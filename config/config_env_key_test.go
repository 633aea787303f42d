package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"history": map[string]any{
			"maxEntries": 20,
		},
		"export": map[string]any{
			"appName": "OrderPad",
		},
		"seed": map[string]any{
			"url": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "HISTORY_MAXENTRIES", want: "history.maxEntries"},
		{envKey: "EXPORT_APPNAME", want: "export.appName"},
		{envKey: "SEED_URL", want: "seed.url"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
