package markup

// HorizontalRule is the block emitted in place of an HR element.
const HorizontalRule = "\n---------------------\n\n"

// RuleTable maps tag identities to the text spliced before and after a
// node's body. A missing entry is the empty string.
type RuleTable struct {
	prefixes map[string]string
	suffixes map[string]string
}

func NewRuleTable(prefixes, suffixes map[string]string) RuleTable {
	t := RuleTable{
		prefixes: make(map[string]string, len(prefixes)),
		suffixes: make(map[string]string, len(suffixes)),
	}
	for tag, v := range prefixes {
		t.prefixes[tag] = v
	}
	for tag, v := range suffixes {
		t.suffixes[tag] = v
	}
	return t
}

func (t RuleTable) Prefix(tag string) string {
	return t.prefixes[tag]
}

func (t RuleTable) Suffix(tag string) string {
	return t.suffixes[tag]
}

var defaultRules = NewRuleTable(
	map[string]string{
		"H1":         "# ",
		"H2":         "## ",
		"H3":         "### ",
		"H4":         "#### ",
		"H5":         "##### ",
		"H6":         "###### ",
		"LI":         " - ",
		"BLOCKQUOTE": "> ",
		"PRE":        "    ",
		"CODE":       "    ",
		"A":          "[",
		"HR":         HorizontalRule,
	},
	map[string]string{
		"H1":         "\n\n",
		"H2":         "\n\n",
		"H3":         "\n\n",
		"H4":         "\n\n",
		"H5":         "\n\n",
		"H6":         "\n\n",
		"LI":         "\n",
		"BLOCKQUOTE": "\n\n",
		"PRE":        "\n\n",
		"CODE":       "\n\n",
		"A":          "]",
		"P":          "\n\n",
		"DIV":        "\n\n",
	},
)

func DefaultRules() RuleTable {
	return defaultRules
}
