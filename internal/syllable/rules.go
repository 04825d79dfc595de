package syllable

import "github.com/dlclark/regexp2"

// rule is one compiled entry of a syllable rule table. The tables use a
// backtracking engine because the doubled-consonant rule needs a
// backreference.
type rule struct {
	pattern string
	re      *regexp2.Regexp
}

func newRule(pattern string) rule {
	return rule{pattern: pattern, re: regexp2.MustCompile(pattern, regexp2.None)}
}

func newRules(patterns ...string) []rule {
	rules := make([]rule, len(patterns))
	for i, p := range patterns {
		rules[i] = newRule(p)
	}
	return rules
}

// matches reports whether the rule matches anywhere in word.
func (r rule) matches(word string) bool {
	ok, err := r.re.MatchString(word)
	return err == nil && ok
}

// strip removes every non-overlapping match from word and returns what is
// left together with the number of matches removed.
func (r rule) strip(word string) (string, int) {
	n := 0
	m, err := r.re.FindStringMatch(word)
	for err == nil && m != nil {
		n++
		m, err = r.re.FindNextMatch(m)
	}
	if n == 0 {
		return word, 0
	}

	stripped, err := r.re.Replace(word, "", -1, -1)
	if err != nil {
		return word, 0
	}
	return stripped, n
}

// Words the rules get wrong, with their real syllable counts.
var exceptions = map[string]int{
	"simile":    3,
	"forever":   3,
	"shoreline": 2,
}

// Single syllable prefixes and suffixes. Applied in order, each one to the
// word left over by the previous ones.
var affixes = newRules(
	`^un`,
	`^fore`,
	`ly$`,
	`less$`,
	`ful$`,
	`ers?$`,
	`ings?$`,
)

// Vowel groups counted as two syllables that are pronounced as one.
var subtractive = newRules(
	`cial`,
	`tia`,
	`cius`,
	`cious`,
	`giu`,
	`ion`,
	`iou`,
	`sia$`,
	`[^aeiuoyt]{2,}ed$`,
	`.ely$`,
	`[cg]h?e[rsd]?$`,
	`rved?$`,
	`[aeiouy][dt]es?$`,
	`[aeiouy][^aeiouydt]e[rsd]?$`,
	`[aeiouy]rse$`, // purse, hearse
)

// Vowel groups counted as one syllable that are pronounced as two.
var additive = newRules(
	`ia`,
	`riet`,
	`dien`,
	`iu`,
	`io`,
	`ii`,
	`[aeiouym]bl$`,
	`[aeiou]{3}`,
	`^mc`,
	`ism$`,
	`([^aeiouy])\1l$`,
	`[^l]lien`,
	`^coa[dglx].`,
	`[^gq]ua[^auieo]`,
	`dnt$`,
	`uity$`,
	`ie(r|st)$`,
)
