// Package normalize maps heterogeneous provider payloads into the canonical
// job schema. Normalization never fails and never returns a partial record:
// every field has a fallback default, and empty-id records are left for the
// batch dedup pass to drop.
package normalize

import (
	"fmt"
	"strings"

	"careermatch-engine/internal/domain"
	"careermatch-engine/internal/textutil"
)

const (
	defaultTitle    = "Unknown Position"
	defaultCompany  = "Unknown Company"
	defaultLocation = "Remote"
	defaultSalary   = "Not specified"
)

// Normalize dispatches on the record's source tag prefix to select a
// field-mapping profile and returns a fully populated canonical job.
func Normalize(raw domain.RawJobRecord) domain.NormalizedJob {
	if strings.HasPrefix(raw.Source, "adzuna") && raw.Adzuna != nil {
		return fromAdzuna(raw.Source, raw.Adzuna)
	}
	if raw.Flat != nil {
		return fromFlat(raw.Source, raw.Flat)
	}
	// unknown variant: canonical defaults with no id, dropped downstream
	return domain.NormalizedJob{
		Title:    defaultTitle,
		Company:  defaultCompany,
		Location: defaultLocation,
		Salary:   defaultSalary,
		Source:   raw.Source,
		Tags:     []string{},
	}
}

func fromAdzuna(source string, p *domain.AdzunaPosting) domain.NormalizedJob {
	var tags []string
	if label := strings.TrimSpace(p.Category.Label); label != "" {
		for _, t := range strings.Split(label, ", ") {
			if t = clean(t); t != "" {
				tags = append(tags, t)
			}
		}
	}
	if tags == nil {
		tags = []string{}
	}

	salary := defaultSalary
	if p.SalaryMin > 0 || p.SalaryMax > 0 {
		salary = fmt.Sprintf("%.0f - %.0f", p.SalaryMin, p.SalaryMax)
	}

	return domain.NormalizedJob{
		JobID:       strings.TrimSpace(p.ID),
		Title:       fallback(clean(p.Title), defaultTitle),
		Company:     fallback(clean(p.Company.DisplayName), defaultCompany),
		Location:    fallback(clean(p.Location.DisplayName), defaultLocation),
		Description: cleanDescription(p.Description),
		Tags:        tags,
		Salary:      salary,
		URL:         strings.TrimSpace(p.RedirectURL),
		PostedDate:  strings.TrimSpace(p.Created),
		Source:      source,
	}
}

func fromFlat(source string, p *domain.FlatPosting) domain.NormalizedJob {
	title := clean(p.Position)
	if title == "" {
		title = clean(p.Title)
	}

	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		if t = clean(t); t != "" {
			tags = append(tags, t)
		}
	}

	return domain.NormalizedJob{
		JobID:       strings.TrimSpace(p.ID),
		Title:       fallback(title, defaultTitle),
		Company:     fallback(clean(p.Company), defaultCompany),
		Location:    fallback(clean(p.Location), defaultLocation),
		Description: cleanDescription(p.Description),
		Tags:        tags,
		Salary:      fallback(clean(p.Salary), defaultSalary),
		URL:         strings.TrimSpace(p.URL),
		PostedDate:  strings.TrimSpace(p.Date),
		Source:      source,
	}
}

func clean(s string) string {
	return textutil.CleanText(textutil.Sanitize(s))
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
