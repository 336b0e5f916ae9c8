package translit

// seedCharacterTable returns the default Hebrew-script to Latin mapping.
// Keys are single code points: base letters, final forms, vowel points and a
// small punctuation set. Vowel points that carry no independent sound map to
// the empty string. The final khof maps to "kh" by default; pass
// WithCharMapping('ך', "k") for the older table.
func seedCharacterTable() map[rune]string {
	return map[rune]string{
		// Basic letters
		'א': "a", 'ב': "b", 'ג': "g", 'ד': "d", 'ה': "h",
		'ו': "u", 'ז': "z", 'ח': "kh", 'ט': "t", 'י': "i",
		'כ': "k", 'ל': "l", 'מ': "m", 'נ': "n", 'ס': "s",
		'ע': "e", 'פ': "p", 'צ': "ts", 'ק': "k", 'ר': "r",
		'ש': "sh", 'ת': "t",

		// Final forms
		'ך': "kh", 'ם': "m", 'ן': "n", 'ף': "f", 'ץ': "ts",

		// Vowel points
		'ַ': "a", 'ָ': "o", 'ֶ': "e", 'ֵ': "e", 'ִ': "i",
		'ֹ': "o", 'ֻ': "u", 'ְ': "", 'ּ': "",

		// Hebrew punctuation: geresh and gershayim are dropped, the maqaf
		// becomes a plain hyphen
		'׳': "", '״': "", '־': "-",

		// Digits and common punctuation survive as themselves
		'0': "0", '1': "1", '2': "2", '3': "3", '4': "4",
		'5': "5", '6': "6", '7': "7", '8': "8", '9': "9",
		'.': ".", ',': ",", '!': "!", '?': "?",

		// Whitespace folds to a single space
		' ': " ", '\n': " ", '\t': " ",
	}
}

// seedWordTable returns the curated whole-word pronunciations. These are
// high-frequency words whose character-by-character rendering is wrong or
// unintelligible; the values follow authentic pronunciation research
// (Forvo recordings) rather than letter-level rules.
func seedWordTable() map[string]string {
	return map[string]string{
		// Greetings and common expressions
		"שלום":  "sholem",
		"עליכם": "aleykhem",
		"גוטן":  "gutn",
		"מארגן": "morgn",
		"טאג":   "tog",
		"אווענט": "ovnt",
		"נאכט":  "nakht",
		"דאנק":  "dank",

		// Past participles
		"געווען":   "geven",
		"געהאט":    "gehat",
		"געמאכט":   "gemakht",
		"געזאגט":   "gezogt",
		"געגאנגען": "gegangen",
		"געקומען":  "gekumen",
		"געגעבן":   "gegeben",
		"גענומען":  "genumen",
		"געזען":    "gezen",
		"געהערט":   "gehert",

		// Prepositions and particles
		"און":  "un",
		"אין":  "in",
		"איז":  "iz",
		"דאס":  "das",
		"דער":  "der",
		"די":   "di",
		"פון":  "fun",
		"מיט":  "mit",
		"אויף": "oyf",
		"צו":   "tsu",
		"פאר":  "far",
		"נאך":  "nokh",
		"אבער": "ober",
		"נאר":  "nor",
		"שוין": "shoyn",
		"דאך":  "dokh",
		"וועל": "vel",

		// Pronouns
		"איך":  "ikh",
		"דו":   "du",
		"ער":   "er",
		"זי":   "zi",
		"מיר":  "mir",
		"איר":  "ir",
		"זיין": "zayn",

		// Family and people
		"מאמע":     "mame",
		"טאטע":     "tate",
		"קינד":     "kind",
		"מענטש":    "mentsh",
		"פריינד":   "freynd",
		"חבר":      "khaver",
		"ברודער":   "bruder",
		"שוועסטער": "shvester",
		"זיידע":    "zeyde",
		"באבע":     "bobe",

		// Numbers
		"איינס": "eyns",
		"צוויי": "tsvey",
		"דריי":  "dray",
		"פיר":   "fir",
		"פינף":  "finf",
		"זעקס":  "zeks",
		"זיבן":  "zibn",
		"אכט":   "akht",
		"נייַן":  "nayn",
		"צען":   "tsen",

		// Common adjectives
		"גוט":   "gut",
		"שלעכט": "shlekht",
		"גרויס": "groys",
		"קליין": "kleyn",
		"נייַ":   "nay",
		"אלט":   "alt",
		"יונג":  "yung",
		"שיין":  "sheyn",
		"הייס":  "heys",
		"קאלט":  "kalt",

		// Common nouns
		"הויז":    "hoyz",
		"שטוב":    "shtub",
		"טיש":     "tish",
		"שטול":    "shtul",
		"בעט":     "bet",
		"פענצטער": "fentster",
		"טיר":     "tir",
		"וואסער":  "vaser",
		"ברויט":   "broyt",
		"מילך":    "milkh",

		// Infinitives
		"האבן":  "hobn",
		"גיין":  "geyn",
		"קומען": "kumen",
		"זאגן":  "zogn",
		"טון":   "tun",
		"געבן":  "gebn",
		"נעמען": "nemen",
		"זען":   "zen",
		"הערן":  "hern",

		// Question words
		"וואס":    "vas",
		"ווער":    "ver",
		"ווו":     "vu",
		"ווען":    "ven",
		"ווי":     "vi",
		"פארוואס": "farvos",

		// Kept from the first table revision
		"אלע":     "ale",
		"וועט":    "vet",
		"האט":     "hot",
		"באטראפן": "betrofn",
		"געווארן": "gevorn",
		"וועלן":   "veln",
		"קענען":   "kenen",
	}
}
