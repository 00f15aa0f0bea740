package tokenizer

import (
	"os"
	"testing"

	"github.com/goccy/go-yaml"
)

// goldenCase is one named input/expected-tokens fixture loaded from
// testdata/cases.yml.
type goldenCase struct {
	Algorithm string   `yaml:"algorithm"`
	Input     string   `yaml:"input"`
	Tokens    []string `yaml:"tokens"`
}

func readGoldenCases(t *testing.T) map[string]goldenCase {
	t.Helper()

	buf, err := os.ReadFile("testdata/cases.yml")
	if err != nil {
		t.Fatal(err)
	}

	var cases map[string]goldenCase
	if err := yaml.Unmarshal(buf, &cases); err != nil {
		t.Fatal(err)
	}
	return cases
}

func TestGoldenCases(t *testing.T) {
	for name, tc := range readGoldenCases(t) {
		tc := tc
		t.Run(name, func(t *testing.T) {
			pairs := []string{"algorithm", tc.Algorithm}
			tok, err := New(pairs...)
			if err != nil {
				t.Fatal(err)
			}
			assertTokens(t, drain(t, tok, tc.Input), tc.Tokens)
		})
	}
}
