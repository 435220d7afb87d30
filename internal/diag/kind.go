package diag

// Kind is the closed set of detector tags.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindCpptextBrace
	KindBraceBalance
	KindDefaultpropsBrace
	KindSemicolonMissing
	KindParenBalance
	KindParenControlClose
	KindStructEnumClose
	KindParenExtraClose
	KindParenExtraOpen
)

var kindNames = map[Kind]string{
	KindCpptextBrace:      "cpptext-brace",
	KindBraceBalance:      "brace-balance",
	KindDefaultpropsBrace: "defaultprops-brace",
	KindSemicolonMissing:  "semicolon-missing",
	KindParenBalance:      "paren-balance",
	KindParenControlClose: "paren-control-close",
	KindStructEnumClose:   "struct-enum-close",
	KindParenExtraClose:   "paren-extra-close",
	KindParenExtraOpen:    "paren-extra-open",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind resolves the stable string form back into a Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return KindUnknown, false
}
