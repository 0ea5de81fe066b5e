// Package locale resolves the display language and provides translated
// UI strings through golang.org/x/text/message.
//
// English strings are the message keys; Norwegian Bokmål translations are
// registered at init.
package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/atom"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/element"
)

// Bokmal is the Norwegian Bokmål tag.
var Bokmal = language.MustParse("nb")

var supportedTags = []language.Tag{
	language.English,
	Bokmal,
}

var tagMatcher = language.NewMatcher(supportedTags)

func init() {
	for key, value := range bokmalMessages {
		message.SetString(Bokmal, key, value)
	}
}

// Supported returns the supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Resolve maps a user-supplied language name ("nb", "no", "en-GB", ...)
// to a supported tag, falling back to English.
func Resolve(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default()
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default()
	}
	_, idx, conf := tagMatcher.Match(tag)
	if conf == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// IsBokmal reports whether tag resolves to Norwegian Bokmål.
func IsBokmal(tag language.Tag) bool {
	return Resolve(tag.String()) == Bokmal
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ElementName returns the name to display for el, preferring the
// localized name under Bokmål.
func ElementName(el element.Element, tag language.Tag) string {
	if IsBokmal(tag) && el.NameNB != "" {
		return el.NameNB
	}
	return el.Name
}

var categoryLabels = map[element.Category]string{
	element.CategoryAlkaliMetal:     "Alkali metals",
	element.CategoryAlkalineEarth:   "Alkaline earth metals",
	element.CategoryTransitionMetal: "Transition metals",
	element.CategoryPostTransition:  "Post-transition metals",
	element.CategoryMetalloid:       "Metalloids",
	element.CategoryNonmetal:        "Nonmetals",
	element.CategoryHalogen:         "Halogens",
	element.CategoryNobleGas:        "Noble gases",
	element.CategoryLanthanide:      "Lanthanides",
	element.CategoryActinide:        "Actinides",
	element.CategoryUnknown:         "Unknown",
}

// CategoryLabel returns the legend label for c.
func CategoryLabel(c element.Category, tag language.Tag) string {
	label, ok := categoryLabels[c]
	if !ok {
		label = string(c)
	}
	return Printer(tag).Sprintf(label)
}

// KindLabel returns the badge text for a classification kind.
func KindLabel(k atom.Kind, tag language.Tag) string {
	return Printer(tag).Sprintf(string(k))
}

// Describe renders the classification description in tag's language.
func Describe(c atom.Classification, tag language.Tag) string {
	p := Printer(tag)
	switch v := c.(type) {
	case atom.KnownElement:
		return p.Sprintf("This is %s (%s) in its neutral state.", ElementName(v.Element, tag), v.Element.Symbol)
	case atom.Ion:
		return p.Sprintf("This is a %s ion with a %s charge.", ElementName(v.Element, tag), atom.FormatCharge(v.Charge))
	case atom.Isotope:
		return p.Sprintf("This is an isotope of %s with %d neutrons.", ElementName(v.Element, tag), v.Neutrons)
	case atom.Variant:
		return p.Sprintf("This is a variant of %s with different electron/neutron configuration.", ElementName(v.Element, tag))
	case atom.Hypothetical:
		return p.Sprintf("This element does not exist in nature or has not been discovered yet.")
	default:
		return c.Description()
	}
}
