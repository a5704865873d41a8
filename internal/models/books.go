package models

// Testament identifies the Old or New Testament partition of the canon
type Testament string

const (
	TestamentOld  Testament = "OT"
	TestamentNew  Testament = "NT"
	TestamentBoth Testament = "both"
)

// canonOrder lists the 66 book codes in canonical order. Matthew marks the
// start of the New Testament; everything before it is Old Testament.
var canonOrder = []string{
	"GEN", "EXO", "LEV", "NUM", "DEU", "JOS", "JDG", "RUT", "1SA", "2SA",
	"1KI", "2KI", "1CH", "2CH", "EZR", "NEH", "EST", "JOB", "PSA", "PRO",
	"ECC", "SNG", "ISA", "JER", "LAM", "EZK", "DAN", "HOS", "JOL", "AMO",
	"OBA", "JON", "MIC", "NAM", "HAB", "ZEP", "HAG", "ZEC", "MAL",
	"MAT", "MRK", "LUK", "JHN", "ACT", "ROM", "1CO", "2CO", "GAL", "EPH",
	"PHP", "COL", "1TH", "2TH", "1TI", "2TI", "TIT", "PHM", "HEB", "JAS",
	"1PE", "2PE", "1JN", "2JN", "3JN", "JUD", "REV",
}

// bookNames maps book codes to display names
var bookNames = map[string]string{
	"GEN": "Genesis", "EXO": "Exodus", "LEV": "Leviticus", "NUM": "Numbers", "DEU": "Deuteronomy",
	"JOS": "Joshua", "JDG": "Judges", "RUT": "Ruth", "1SA": "1 Samuel", "2SA": "2 Samuel",
	"1KI": "1 Kings", "2KI": "2 Kings", "1CH": "1 Chronicles", "2CH": "2 Chronicles", "EZR": "Ezra",
	"NEH": "Nehemiah", "EST": "Esther", "JOB": "Job", "PSA": "Psalms", "PRO": "Proverbs",
	"ECC": "Ecclesiastes", "SNG": "Song of Solomon", "ISA": "Isaiah", "JER": "Jeremiah", "LAM": "Lamentations",
	"EZK": "Ezekiel", "DAN": "Daniel", "HOS": "Hosea", "JOL": "Joel", "AMO": "Amos",
	"OBA": "Obadiah", "JON": "Jonah", "MIC": "Micah", "NAM": "Nahum", "HAB": "Habakkuk",
	"ZEP": "Zephaniah", "HAG": "Haggai", "ZEC": "Zechariah", "MAL": "Malachi",
	"MAT": "Matthew", "MRK": "Mark", "LUK": "Luke", "JHN": "John", "ACT": "Acts",
	"ROM": "Romans", "1CO": "1 Corinthians", "2CO": "2 Corinthians", "GAL": "Galatians", "EPH": "Ephesians",
	"PHP": "Philippians", "COL": "Colossians", "1TH": "1 Thessalonians", "2TH": "2 Thessalonians", "1TI": "1 Timothy",
	"2TI": "2 Timothy", "TIT": "Titus", "PHM": "Philemon", "HEB": "Hebrews", "JAS": "James",
	"1PE": "1 Peter", "2PE": "2 Peter", "1JN": "1 John", "2JN": "2 John", "3JN": "3 John",
	"JUD": "Jude", "REV": "Revelation",
}

// greekBookCodes maps book codes to SBL Greek New Testament file codes.
// Only New Testament books have an entry.
var greekBookCodes = map[string]string{
	"MAT": "Matt", "MRK": "Mark", "LUK": "Luke", "JHN": "John", "ACT": "Acts",
	"ROM": "Rom", "1CO": "1Cor", "2CO": "2Cor", "GAL": "Gal", "EPH": "Eph",
	"PHP": "Phil", "COL": "Col", "1TH": "1Thess", "2TH": "2Thess", "1TI": "1Tim",
	"2TI": "2Tim", "TIT": "Titus", "PHM": "Phlm", "HEB": "Heb", "JAS": "Jas",
	"1PE": "1Pet", "2PE": "2Pet", "1JN": "1John", "2JN": "2John", "3JN": "3John",
	"JUD": "Jude", "REV": "Rev",
}

// ChurchFathers is the fixed set of commentary authors indexed in the corpus
var ChurchFathers = []string{
	"Augustine of Hippo",
	"Athanasius of Alexandria",
	"Basil of Caesarea",
	"Gregory of Nazianzus",
	"Gregory of Nyssa",
	"Cyril of Alexandria",
	"Irenaeus",
	"Cyprian",
	"Origen of Alexandria",
}

var canonIndex = buildCanonIndex()

func buildCanonIndex() map[string]int {
	idx := make(map[string]int, len(canonOrder))
	for i, code := range canonOrder {
		idx[code] = i
	}
	return idx
}

// KnownBook reports whether code is a canonical book code
func KnownBook(code string) bool {
	_, ok := canonIndex[code]
	return ok
}

// BookName returns the display name for a book code, falling back to the
// code itself for anything outside the canon table
func BookName(code string) string {
	if name, ok := bookNames[code]; ok {
		return name
	}
	return code
}

// BookTestament classifies a book code by canonical position
func BookTestament(code string) (Testament, bool) {
	i, ok := canonIndex[code]
	if !ok {
		return "", false
	}
	if i >= canonIndex["MAT"] {
		return TestamentNew, true
	}
	return TestamentOld, true
}

// BooksOfTestament returns the book codes belonging to a testament, in
// canonical order. TestamentBoth returns nil, meaning no filter.
func BooksOfTestament(t Testament) []string {
	if t == TestamentBoth {
		return nil
	}
	var books []string
	for _, code := range canonOrder {
		bt, _ := BookTestament(code)
		if bt == t {
			books = append(books, code)
		}
	}
	return books
}

// AllBooks returns all book codes in canonical order
func AllBooks() []string {
	books := make([]string, len(canonOrder))
	copy(books, canonOrder)
	return books
}

// GreekBookCode returns the SBLGNT file code for a book, or "" for books
// outside the Greek New Testament
func GreekBookCode(code string) string {
	return greekBookCodes[code]
}
