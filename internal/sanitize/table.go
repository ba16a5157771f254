package sanitize

// action classifies what the fold table says to do with one decoded scalar.
type action int

const (
	// actionFold emits the mapped ASCII replacement and clears the collapse flag.
	actionFold action = iota
	// actionDrop emits nothing and leaves the collapse flag untouched.
	// Used for combining diacritical marks, which visually attach to a base
	// letter that has already been folded.
	actionDrop
	// actionHyphen emits a literal "-" and clears the collapse flag. Only the
	// en dash maps here; the substitution resembles a collapse placeholder
	// but is deliberately never merged with one.
	actionHyphen
	// actionCollapse emits a de-duplicated "_" and sets the collapse flag.
	actionCollapse
)

// foldGroups pairs each ASCII replacement with every scalar that folds to
// it. The mapping is a fixed, hand-curated compatibility table covering the
// Latin extended blocks, fullwidth and circled letters, and historic
// ligatures and digraphs; it is authoritative data and must not be edited
// casually. ASCII letters are listed for completeness even though the
// cleaner never routes them through the table.
var foldGroups = []struct {
	to   string
	from string
}{
	{"A", "AⒶＡÀÁÂẦẤẪẨÃĀĂẰẮẴẲȦǠÄǞẢÅǺǍȀȂẠẬẶḀĄȺⱯÆǼǢ"},
	{"AA", "Ꜳ"},
	{"AO", "Ꜵ"},
	{"AU", "Ꜷ"},
	{"AV", "ꜸꜺ"},
	{"AY", "Ꜽ"},
	{"B", "BⒷＢḂḄḆɃƂƁ"},
	{"C", "CⒸＣĆĈĊČÇḈƇȻꜾ"},
	{"D", "DⒹＤḊĎḌḐḒḎĐƋƊƉꝹ"},
	{"DZ", "ǱǄ"},
	{"Dz", "ǲǅ"},
	{"E", "EⒺＥÈÉÊỀẾỄỂẼĒḔḖĔĖËẺĚȄȆẸỆȨḜĘḘḚƐƎ"},
	{"F", "FⒻＦḞƑꝻ"},
	{"G", "GⒼＧǴĜḠĞĠǦĢǤƓꞠꝽꝾ"},
	{"H", "HⒽＨĤḢḦȞḤḨḪĦⱧⱵꞍ"},
	{"I", "IⒾＩÌÍÎĨĪĬİÏḮỈǏȈȊỊĮḬƗ"},
	{"J", "JⒿＪĴɈ"},
	{"K", "KⓀＫḰǨḲĶḴƘⱩꝀꝂꝄꞢ"},
	{"L", "LⓁＬĿĹĽḶḸĻḼḺŁȽⱢⱠꝈꝆꞀ"},
	{"LJ", "Ǉ"},
	{"Lj", "ǈ"},
	{"M", "MⓂＭḾṀṂⱮƜ"},
	{"N", "NⓃＮǸŃÑṄŇṆŅṊṈȠƝꞐꞤ"},
	{"NJ", "Ǌ"},
	{"Nj", "ǋ"},
	{"O", "OⓄＯÒÓÔỒỐỖỔÕṌȬṎŌṐṒŎȮȰÖȪỎŐǑȌȎƠỜỚỠỞỢỌỘǪǬØǾƆƟꝊꝌ"},
	{"OI", "Ƣ"},
	{"OO", "Ꝏ"},
	{"OU", "Ȣ"},
	{"OE", "\u008CŒ"},
	{"oe", "\u009Cœ"},
	{"P", "PⓅＰṔṖƤⱣꝐꝒꝔ"},
	{"Q", "QⓆＱꝖꝘɊ"},
	{"R", "RⓇＲŔṘŘȐȒṚṜŖṞɌⱤꝚꞦꞂ"},
	{"S", "SⓈＳẞŚṤŜṠŠṦṢṨȘŞⱾꞨꞄ"},
	{"T", "TⓉＴṪŤṬȚŢṰṮŦƬƮȾꞆ"},
	{"TZ", "Ꜩ"},
	{"U", "UⓊＵÙÚÛŨṸŪṺŬÜǛǗǕǙỦŮŰǓȔȖƯỪỨỮỬỰỤṲŲṶṴɄ"},
	{"V", "VⓋＶṼṾƲꝞɅ"},
	{"VY", "Ꝡ"},
	{"W", "WⓌＷẀẂŴẆẄẈⱲ"},
	{"X", "XⓍＸẊẌ"},
	{"Y", "YⓎＹỲÝŶỸȲẎŸỶỴƳɎỾ"},
	{"Z", "ZⓏＺŹẐŻŽẒẔƵȤⱿⱫꝢ"},
	{"a", "aⓐａẚàáâầấẫẩãāăằắẵẳȧǡäǟảåǻǎȁȃạậặḁąⱥɐæǽǣ"},
	{"aa", "ꜳ"},
	{"ao", "ꜵ"},
	{"au", "ꜷ"},
	{"av", "ꜹꜻ"},
	{"ay", "ꜽ"},
	{"b", "bⓑｂḃḅḇƀƃɓþ"},
	{"c", "cⓒｃćĉċčçḉƈȼꜿↄ"},
	{"d", "dⓓｄḋďḍḑḓḏđƌɖɗꝺ"},
	{"dz", "ǳǆ"},
	{"e", "eⓔｅèéêềếễểẽēḕḗĕėëẻěȅȇẹệȩḝęḙḛɇɛǝ"},
	{"f", "fⓕｆḟƒꝼ"},
	{"g", "gⓖｇǵĝḡğġǧģǥɠꞡᵹꝿ"},
	{"h", "hⓗｈĥḣḧȟḥḩḫẖħⱨⱶɥ"},
	{"hv", "ƕ"},
	{"i", "iⓘｉìíîĩīĭïḯỉǐȉȋịįḭɨı"},
	{"j", "jⓙｊĵǰɉ"},
	{"k", "kⓚｋḱǩḳķḵƙⱪꝁꝃꝅꞣ"},
	{"l", "lⓛｌŀĺľḷḹļḽḻſłƚɫⱡꝉꞁꝇ"},
	{"lj", "ǉ"},
	{"m", "mⓜｍḿṁṃɱɯ"},
	{"n", "nⓝｎǹńñṅňṇņṋṉƞɲŉꞑꞥ"},
	{"nj", "ǌ"},
	{"o", "oⓞｏòóôồốỗổõṍȭṏōṑṓŏȯȱöȫỏőǒȍȏơờớỡởợọộǫǭøǿɔꝋꝍɵ"},
	{"oi", "ƣ"},
	{"ou", "ȣ"},
	{"oo", "ꝏ"},
	{"p", "pⓟｐṕṗƥᵽꝑꝓꝕ"},
	{"q", "qⓠｑɋꝗꝙ"},
	{"r", "rⓡｒŕṙřȑȓṛṝŗṟɍɽꝛꞧꞃ"},
	{"s", "sⓢｓßśṥŝṡšṧṣṩșşȿꞩꞅẛ"},
	{"t", "tⓣｔṫẗťṭțţṱṯŧƭʈⱦꞇ"},
	{"tz", "ꜩ"},
	{"u", "uⓤｕùúûũṹūṻŭüǜǘǖǚủůűǔȕȗưừứữửựụṳųṷṵʉ"},
	{"v", "vⓥｖṽṿʋꝟʌ"},
	{"vy", "ꝡ"},
	{"w", "wⓦｗẁẃŵẇẅẘẉⱳ"},
	{"x", "xⓧｘẋẍ"},
	{"y", "yⓨｙỳýŷỹȳẏÿỷẙỵƴɏỿ"},
	{"z", "zⓩｚźẑżžẓẕƶȥɀⱬꝣ"},
}

// foldTable is the scalar-to-replacement lookup, built once at init from
// foldGroups.
var foldTable map[rune]string

func init() {
	foldTable = make(map[rune]string, 1024)
	for _, g := range foldGroups {
		for _, r := range g.from {
			foldTable[r] = g.to
		}
	}
}

// enDash is the one scalar substituted by a hyphen rather than folded or
// collapsed.
const enDash = '–'

// isCombiningMark reports whether r falls in one of the combining
// diacritical mark blocks the table drops outright.
func isCombiningMark(r rune) bool {
	switch {
	case r >= 0x0300 && r <= 0x036F:
		return true
	case r >= 0x1AB0 && r <= 0x1AFF:
		return true
	case r >= 0x1DC0 && r <= 0x1DFF:
		return true
	}
	return false
}

// classify resolves one decoded scalar against the transliteration table.
// The returned string is only meaningful for actionFold.
func classify(r rune) (string, action) {
	if s, ok := foldTable[r]; ok {
		return s, actionFold
	}
	if r == enDash {
		return "-", actionHyphen
	}
	if isCombiningMark(r) {
		return "", actionDrop
	}
	return "", actionCollapse
}
