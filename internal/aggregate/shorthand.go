package aggregate

import "sort"

// shorthandClasses maps questionnaire context refs to their shorthand class.
// Refs absent from the map are outside the study and never aggregated.
// Refs suffixed -tel and -tur are single-language questionnaire items.
var shorthandClasses = map[string]string{
	"conj-nocontrast-sta":     "conj-nocontrast-sta",
	"conj-nocontrast-sta-2":   "conj-nocontrast-sta",
	"conj-nocontrast-sta-3":   "conj-nocontrast-sta",
	"conj-nocontrast-sta-mod": "conj-nocontrast-sta",
	"conj-nocontrast-epi":     "conj-nocontrast-epi",
	"conj-contrast-sta":       "conj-contrast-sta",
	"conj-contrast-sta-mod":   "conj-contrast-sta",
	"conj-contrast-sta-2":     "conj-contrast-sta",
	"conj-contrast-sta-3":     "conj-contrast-sta",
	"conj-contrast-sta-4":     "conj-contrast-sta",
	"conj-contrast-epi":       "conj-contrast-epi",
	"conj-contrast-epi-2":     "conj-contrast-epi",
	"conj-contrast-negp-sta":  "conj-contrast-negp-sta",
	"conj-contrast-negp-epi":  "conj-contrast-negp-epi",
	"disj-spk-1":              "disj-spk",
	"disj-spk-2":              "disj-spk",
	"disj-spk-3":              "disj-spk",
	"disj-spk-4":              "disj-spk",
	"disj-spk-4-prime":        "disj-spk",
	"disj-spk-5":              "disj-spk",
	"disj-nspk-epi":           "disj-nspk-epi",
	"disj-nspk-epi-exc-2":     "disj-nspk-epi",
	"disj-nspk-sta-exc":       "disj-nspk-sta-exc",
	"disj-nspk-sta-exc-mod":   "disj-nspk-sta-exc",
	"disj-nspk-sta-exc-2":     "disj-nspk-sta-exc",
	"disj-nspk-sta-exc-3":     "disj-nspk-sta-exc",
	"disj-nspk-sta-exc-4":     "disj-nspk-sta-exc",
	"disj-nspk-sta-exc-5":     "disj-nspk-sta-exc",
	"disj-nspk-sta-inc":       "disj-nspk-sta-inc",
	"disj-nspk-sta-inc-mod":   "disj-nspk-sta-inc",
	"disj-nspk-sta-inc-2":     "disj-nspk-sta-inc",
	"disj-nspk-sta-inc-3":     "disj-nspk-sta-inc",
	"disj-nspk-sta-inc-4":     "disj-nspk-sta-inc",
	"disj-nspk-sta-inc-5":     "disj-nspk-sta-inc",
	"disj-nspk-epi-q":         "disj-nspk-q-exc",
	"disj-nspk-epi-q-mod":     "disj-nspk-q-exc",
	"disj-nspk-sta-inc-q":     "disj-nspk-q-inc",
	"neither-sta":             "neither-sta",
	"neither-sta-2":           "neither-sta",
	"neither-sta-3":           "neither-sta",
	"neither-sta-4":           "neither-sta",
	"neither-epi":             "neither-epi",
	"neither-epi-2":           "neither-epi",
	"fc":                      "fc",
	"negative":                "negative",
	// Class name kept as in the published summaries
	"disj-nspk-epi-tel":       "disj-nspi-epi",
	"conj-nocontrast-epi-tel": "conj-nocontrast-epi",
	"conj-contrast-epi-tel":   "conj-contrast-epi",
	"disj-spk-tel":            "disj-spk",
	"disj-nspk-epi-exc-tel":   "disj-nspk-epi-exc",
	"disj-nspk-epi-inc-tel":   "disj-nspk-epi-inc",
	"neither-epi-tel":         "neither-epi",
	"conj-nocontrast-epi-tur": "conj-nocontrast-epi",
	"conj-contrast-epi-tur":   "conj-contrast-epi",
	"disj-nspk-epi-tur":       "disj-nspk-epi",
	"disj-nspk-epi-inc-tur":   "disj-nspk-epi-inc",
	"disj-nspk-epi-exc-tur":   "disj-nspk-epi-exc",
	"neither-epi-tur":         "neither-epi",
}

// Shorthand maps a context ref to its shorthand class.
// ok is false for refs outside the study.
func Shorthand(contextRef string) (class string, ok bool) {
	class, ok = shorthandClasses[contextRef]
	return class, ok
}

// ShorthandClasses returns the distinct shorthand classes, sorted
func ShorthandClasses() []string {
	seen := make(map[string]struct{})
	for _, class := range shorthandClasses {
		seen[class] = struct{}{}
	}
	classes := make([]string, 0, len(seen))
	for class := range seen {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}
