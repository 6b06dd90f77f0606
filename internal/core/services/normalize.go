package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nameVariant maps spellings of one organisation to a canonical display form.
type nameVariant struct {
	canonical string
	variants  []string
}

// knownVariants are spellings seen across filings for the same organisation.
// Matching is case-insensitive and ignores punctuation.
var knownVariants = []nameVariant{
	{
		canonical: "The Lincoln Club of San Diego County",
		variants: []string{
			"Lincoln Club of San Diego County",
			"Lincoln Club of San Diego County, The",
			"Lincoln Club of SD County",
			"The Lincoln Club of San Diego",
		},
	},
	{
		canonical: "San Diego & Imperial Counties Labor Council",
		variants: []string{
			"San Diego and Imperial Counties Labor Council, AFL-CIO",
			"San Diego & Imperial Counties Labor Council AFL-CIO",
			"SD & Imperial Counties Labor Council",
		},
	},
	{
		canonical: "Republican Party of San Diego County",
		variants: []string{
			"San Diego County Republican Party",
			"Republican Party of San Diego",
		},
	},
	{
		canonical: "San Diego County Democratic Party",
		variants: []string{
			"Democratic Party of San Diego County",
			"San Diego County Democratic Central Committee",
		},
	},
}

// variantIndex maps the loose key of every variant to its canonical form.
var variantIndex = buildVariantIndex(knownVariants)

func buildVariantIndex(list []nameVariant) map[string]string {
	idx := make(map[string]string)
	for _, v := range list {
		idx[looseKey(v.canonical)] = v.canonical
		for _, alt := range v.variants {
			idx[looseKey(alt)] = v.canonical
		}
	}
	return idx
}

// NormalizeName returns the grouping key for a name.
// Case, punctuation and whitespace variants of one entity share a key, as
// do a trailing article ("X, The") and its leading form ("The X").
// The key is for equality only; use DisplayName for presentation.
func NormalizeName(raw string) string {
	key := looseKey(raw)
	if key == "" {
		return ""
	}
	if canonical, ok := variantIndex[key]; ok {
		return looseKey(canonical)
	}
	return key
}

// CanonicalName returns the canonical display form when raw is a known
// variant.
func CanonicalName(raw string) (string, bool) {
	canonical, ok := variantIndex[looseKey(raw)]
	return canonical, ok
}

// DisplayName returns a human-readable form of a name.
// Known variants map to their canonical spelling, a trailing article moves
// to the front, and single-case input (ALL CAPS or all lower) is title-cased.
// Mixed-case input keeps its casing so acronyms survive.
func DisplayName(raw string) string {
	name := CollapseSpace(raw)
	if name == "" {
		return ""
	}
	if canonical, ok := CanonicalName(name); ok {
		return canonical
	}
	name = moveTrailingArticle(name)
	if isSingleCase(name) {
		return cases.Title(language.English).String(name)
	}
	return name
}

// CollapseSpace trims and collapses internal whitespace runs to one space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// looseKey upper-cases, spells out "&", strips punctuation, collapses
// whitespace and moves a trailing "THE" to the front.
func looseKey(raw string) string {
	s := strings.ReplaceAll(raw, "&", " and ")
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToUpper(r)
		case unicode.IsSpace(r):
			return ' '
		default:
			// "AFL-CIO" → "AFLCIO", "O'Brien" → "OBRIEN".
			return -1
		}
	}, s)
	fields := strings.Fields(s)
	if n := len(fields); n > 1 && fields[n-1] == "THE" && fields[0] != "THE" {
		fields = append([]string{"THE"}, fields[:n-1]...)
	}
	return strings.Join(fields, " ")
}

// moveTrailingArticle rewrites "X, The" as "The X".
func moveTrailingArticle(name string) string {
	idx := strings.LastIndex(name, ",")
	if idx < 0 {
		return name
	}
	tail := strings.TrimSpace(name[idx+1:])
	if !strings.EqualFold(tail, "the") {
		return name
	}
	head := strings.TrimSpace(name[:idx])
	if head == "" {
		return name
	}
	return tail + " " + head
}

// isSingleCase reports whether every letter in s has the same case.
func isSingleCase(s string) bool {
	var upper, lower bool
	for _, r := range s {
		if unicode.IsUpper(r) {
			upper = true
		} else if unicode.IsLower(r) {
			lower = true
		}
		if upper && lower {
			return false
		}
	}
	return true
}
