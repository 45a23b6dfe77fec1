package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims and deduplicates list fields, then checks the
// result. The normalized copy is only meaningful when the validation has
// no errors.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(strings.ToLower(x))
			if x == "" || seen[x] {
				continue
			}
			seen[x] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Sources.Adzuna.Countries = trimList(out.Sources.Adzuna.Countries)
	out.Matching.StopWords = trimList(out.Matching.StopWords)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Refresh.IntervalSeconds <= 0 {
		res.addErr("refresh.interval_seconds must be > 0")
	} else if out.Refresh.IntervalSeconds < 60 {
		res.addWarn("refresh.interval_seconds is very low (%d) and may hit source rate limits.", out.Refresh.IntervalSeconds)
	}
	if out.Refresh.SourceTimeoutSeconds <= 0 {
		res.addErr("refresh.source_timeout_seconds must be > 0")
	}
	if out.Refresh.PerSourceLimit <= 0 {
		res.addErr("refresh.per_source_limit must be > 0")
	}

	if !out.Sources.RemoteOK.Enabled && !out.Sources.Adzuna.Enabled {
		res.addWarn("no sources enabled; refreshes will serve the built-in sample jobs only.")
	}
	if out.Sources.Adzuna.Enabled {
		if len(out.Sources.Adzuna.Countries) == 0 {
			res.addErr("sources.adzuna.countries must have at least 1 entry when adzuna is enabled")
		}
		for _, c := range out.Sources.Adzuna.Countries {
			if len(c) != 2 {
				res.addErr("sources.adzuna.countries entry %q is not a 2-letter country code", c)
			}
		}
	}

	if out.Matching.SemanticWeight < 0 {
		res.addErr("matching.semantic_weight must be >= 0")
	}
	if out.Matching.KeywordWeight < 0 {
		res.addErr("matching.keyword_weight must be >= 0")
	}
	if sum := out.Matching.SemanticWeight + out.Matching.KeywordWeight; sum > 0 && (sum < 0.99 || sum > 1.01) {
		res.addWarn("matching weights sum to %.2f, not 1.0; scores will be skewed.", sum)
	}
	if out.Matching.RelevanceFloor < 0 || out.Matching.RelevanceFloor >= 1 {
		res.addErr("matching.relevance_floor must be in [0, 1)")
	}
	if out.Matching.MaxResults <= 0 {
		res.addErr("matching.max_results must be > 0")
	}

	switch out.Embeddings.Provider {
	case "", "openai":
	default:
		res.addErr("embeddings.provider %q is not supported (use \"openai\" or leave empty)", out.Embeddings.Provider)
	}
	if out.Embeddings.Provider != "" && strings.TrimSpace(out.Embeddings.Model) == "" {
		res.addErr("embeddings.model is required when embeddings.provider is set")
	}

	return out, res
}

// SaveAtomic writes the config via a temp file, keeping the previous
// version as a .bak alongside it.
func SaveAtomic(path string, cfg Config) error {
	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
