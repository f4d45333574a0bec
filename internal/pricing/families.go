package pricing

import "strings"

// Family is a coarse language grouping used to estimate how hard a
// translation pair is. The table is intentionally small; anything we
// don't know falls into FamilyOther.
type Family string

const (
	FamilyGermanic Family = "Germanic"
	FamilyRomance  Family = "Romance"
	FamilySlavic   Family = "Slavic"
	FamilySinitic  Family = "Sinitic"
	FamilyJaponic  Family = "Japonic"
	FamilyKoreanic Family = "Koreanic"
	FamilySemitic  Family = "Semitic"
	FamilyOther    Family = "Other"
)

var languageFamilies = map[string]Family{
	"english":   FamilyGermanic,
	"german":    FamilyGermanic,
	"dutch":     FamilyGermanic,
	"swedish":   FamilyGermanic,
	"norwegian": FamilyGermanic,
	"danish":    FamilyGermanic,
	"afrikaans": FamilyGermanic,

	"spanish":    FamilyRomance,
	"french":     FamilyRomance,
	"italian":    FamilyRomance,
	"portuguese": FamilyRomance,
	"romanian":   FamilyRomance,
	"catalan":    FamilyRomance,

	"russian":   FamilySlavic,
	"polish":    FamilySlavic,
	"ukrainian": FamilySlavic,
	"czech":     FamilySlavic,
	"slovak":    FamilySlavic,
	"bulgarian": FamilySlavic,
	"serbian":   FamilySlavic,
	"croatian":  FamilySlavic,

	"chinese":   FamilySinitic,
	"mandarin":  FamilySinitic,
	"cantonese": FamilySinitic,

	"japanese": FamilyJaponic,

	"korean": FamilyKoreanic,

	"arabic":  FamilySemitic,
	"hebrew":  FamilySemitic,
	"amharic": FamilySemitic,
}

// distantPairs lists family pairs priced as long-distance translation.
// Checked in both directions.
var distantPairs = map[[2]Family]bool{
	{FamilySinitic, FamilyGermanic}: true,
	{FamilySemitic, FamilyGermanic}: true,
}

// FamilyOf maps a free-form language name to its family.
func FamilyOf(language string) Family {
	if f, ok := languageFamilies[strings.ToLower(strings.TrimSpace(language))]; ok {
		return f
	}
	return FamilyOther
}

// PairMultiplier returns the difficulty multiplier for a language pair:
// 1.0 within a family, 2.0 for distant pairs, 1.5 otherwise.
func PairMultiplier(sourceLang, targetLang string) float64 {
	src := FamilyOf(sourceLang)
	dst := FamilyOf(targetLang)

	if src == dst {
		return 1.0
	}
	if distantPairs[[2]Family{src, dst}] || distantPairs[[2]Family{dst, src}] {
		return 2.0
	}
	return 1.5
}
