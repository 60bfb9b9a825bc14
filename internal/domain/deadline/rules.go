package deadline

import (
	"strings"

	"github.com/juristech/prazo/pkg/errors"
)

// Rule binds a movement-text pattern to a statutory deadline.  Matching is a
// substring test against the normalized movement text.
type Rule struct {
	// Pattern is matched against lower-cased, whitespace-collapsed text.
	Pattern string `json:"pattern"`

	// LengthInDays is the statutory length in business days.
	LengthInDays int `json:"length_in_days"`

	// LegalCategory names the procedural act; it becomes the calculation's
	// LegalContext.ActionType.
	LegalCategory string `json:"legal_category"`
}

// Rule tables are priority-ordered: the first matching entry wins, so
// specific patterns must be declared before the generic ones they contain
// (e.g. "impugnação à contestação" before "contestação", "recurso ordinário"
// before "recurso").

// civilRules covers the CPC/2015 deadlines, counted in business days.
var civilRules = []Rule{
	{Pattern: "embargos de declaração", LengthInDays: 5, LegalCategory: "embargos"},
	{Pattern: "agravo de instrumento", LengthInDays: 15, LegalCategory: "recursal"},
	{Pattern: "agravo interno", LengthInDays: 15, LegalCategory: "recursal"},
	{Pattern: "impugnação à contestação", LengthInDays: 15, LegalCategory: "réplica"},
	{Pattern: "impugnação ao cumprimento de sentença", LengthInDays: 15, LegalCategory: "execução"},
	{Pattern: "cumprimento de sentença", LengthInDays: 15, LegalCategory: "execução"},
	{Pattern: "contestação", LengthInDays: 15, LegalCategory: "defesa"},
	{Pattern: "contrarrazões", LengthInDays: 15, LegalCategory: "recursal"},
	{Pattern: "recurso especial", LengthInDays: 15, LegalCategory: "recursal"},
	{Pattern: "recurso extraordinário", LengthInDays: 15, LegalCategory: "recursal"},
	{Pattern: "apelação", LengthInDays: 15, LegalCategory: "recursal"},
	{Pattern: "recurso", LengthInDays: 15, LegalCategory: "recursal"},
	{Pattern: "ação rescisória", LengthInDays: 15, LegalCategory: "rescission"},
	{Pattern: "embargos à execução", LengthInDays: 15, LegalCategory: "execução"},
	{Pattern: "réplica", LengthInDays: 15, LegalCategory: "réplica"},
}

// laborRules covers the CLT deadlines.
var laborRules = []Rule{
	{Pattern: "embargos de declaração", LengthInDays: 5, LegalCategory: "embargos"},
	{Pattern: "recurso ordinário", LengthInDays: 8, LegalCategory: "recursal"},
	{Pattern: "recurso de revista", LengthInDays: 8, LegalCategory: "recursal"},
	{Pattern: "agravo de petição", LengthInDays: 8, LegalCategory: "execução"},
	{Pattern: "agravo de instrumento", LengthInDays: 8, LegalCategory: "recursal"},
	{Pattern: "contrarrazões", LengthInDays: 8, LegalCategory: "recursal"},
	{Pattern: "recurso", LengthInDays: 8, LegalCategory: "recursal"},
	{Pattern: "embargos à execução", LengthInDays: 5, LegalCategory: "execução"},
	{Pattern: "contestação", LengthInDays: 15, LegalCategory: "defesa"},
	{Pattern: "defesa", LengthInDays: 15, LegalCategory: "defesa"},
}

var ruleTables = map[string][]Rule{
	"civil":       civilRules,
	"labor":       laborRules,
	"trabalhista": laborRules,
}

// RulesForArea returns the priority-ordered rule table for a procedural area.
func RulesForArea(area string) ([]Rule, error) {
	rules, ok := ruleTables[strings.ToLower(strings.TrimSpace(area))]
	if !ok {
		return nil, errors.New(errors.ErrCodeRuleAreaUnknown, "unknown procedural area").WithDetail(area)
	}
	if len(rules) == 0 {
		return nil, errors.New(errors.ErrCodeRuleTableEmpty, "rule table has no entries").WithDetail(area)
	}
	return rules, nil
}

// NormalizeText lower-cases the text and collapses all whitespace runs to
// single spaces, the canonical form rule patterns are written against.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// MatchRule scans the table in declaration order and returns the first rule
// whose pattern occurs in the normalized text.  No match is not an error;
// the movement simply produces no deadline.
func MatchRule(rules []Rule, normalizedText string) (Rule, bool) {
	for _, r := range rules {
		if strings.Contains(normalizedText, r.Pattern) {
			return r, true
		}
	}
	return Rule{}, false
}

//Personal.AI order the ending
