package telex

import "unicode"

// markTable maps a base letter to its marked forms.
var markTable = map[rune]map[Mark]rune{
	'a': {MarkCircumflex: 'â', MarkBreve: 'ă'},
	'e': {MarkCircumflex: 'ê'},
	'o': {MarkCircumflex: 'ô', MarkHorn: 'ơ'},
	'u': {MarkHorn: 'ư'},
	'd': {MarkBar: 'đ'},
}

// toneTable maps a (possibly marked) vowel to its six tone forms, indexed by
// Tone. Index 0 is the vowel itself.
var toneTable = map[rune][6]rune{
	'a': {'a', 'á', 'à', 'ả', 'ã', 'ạ'},
	'ă': {'ă', 'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'},
	'â': {'â', 'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'},
	'e': {'e', 'é', 'è', 'ẻ', 'ẽ', 'ẹ'},
	'ê': {'ê', 'ế', 'ề', 'ể', 'ễ', 'ệ'},
	'i': {'i', 'í', 'ì', 'ỉ', 'ĩ', 'ị'},
	'o': {'o', 'ó', 'ò', 'ỏ', 'õ', 'ọ'},
	'ô': {'ô', 'ố', 'ồ', 'ổ', 'ỗ', 'ộ'},
	'ơ': {'ơ', 'ớ', 'ờ', 'ở', 'ỡ', 'ợ'},
	'u': {'u', 'ú', 'ù', 'ủ', 'ũ', 'ụ'},
	'ư': {'ư', 'ứ', 'ừ', 'ử', 'ữ', 'ự'},
	'y': {'y', 'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'},
}

// ApplyMark returns the marked form of base, or false when the combination
// does not exist (e.g. breve on e).
func ApplyMark(base rune, m Mark) (rune, bool) {
	if m == MarkNone {
		return base, true
	}
	forms, ok := markTable[base]
	if !ok {
		return base, false
	}
	r, ok := forms[m]
	return r, ok
}

// ApplyTone returns v carrying tone t. Non-vowel runes are returned unchanged.
func ApplyTone(v rune, t Tone) rune {
	forms, ok := toneTable[v]
	if !ok {
		return v
	}
	return forms[t]
}

// Compose builds the final rune for a letter: mark first, then tone, then
// case. Letters whose mark combination is invalid fall back to the bare base.
func Compose(base rune, m Mark, t Tone, upper bool) rune {
	r, ok := ApplyMark(base, m)
	if !ok {
		r = base
	}
	r = ApplyTone(r, t)
	if upper {
		r = unicode.ToUpper(r)
	}
	return r
}
