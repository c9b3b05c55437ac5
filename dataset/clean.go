package dataset

import "strings"

// The source CSVs carry scraping artifacts and double-encoded UTF-8 in
// some name columns. Cleaning happens cell by cell at load time so the
// in-memory records are already consistent.

// umlautReplacements transliterates the garbled two-byte sequences left
// by the upstream encoding error (e.g. Müller arrives as "MÃ¼ller").
var umlautReplacements = [][2]string{
	{"Ã¼", "ue"},
	{"Ã¶", "oe"},
	{"Ã¤", "ae"},
	{"Ã©", "e"},
}

// cellCorrections replaces whole cells whose original bytes were lost to
// a lossy re-encode and now contain the '�' replacement rune.
var cellCorrections = map[string]string{
	"C�te d'Ivoire":                             "Côte d'Ivoire",
	"Maracan� - Est�dio Jornalista M�rio Filho": "Maracanã - Estádio Jornalista Mário Filho",
	"Est�dio Jornalista M�rio Filho":            "Estádio Jornalista Mário Filho",
	"Maracan�":                                  "Maracanã",
	"Stade V�lodrome":                           "Stade Vélodrome",
	"Nou Camp - Estadio Le�n":                   "Nou Camp - Estadio León",
	"Estadio Jos� Mar�a Minella":                "Estadio José María Minella",
	"Estadio Ol�mpico Chateau Carreras":         "Estadio Olímpico Chateau Carreras",
	"Estadio Municipal de Bala�dos":             "Estadio Municipal de Balaídos",
	"Estadio Ol�mpico Universitario":            "Estadio Olímpico Universitario",
	"Malm�":                                     "Malmö",
	"Malmo":                                     "Malmö",
	"Norrk�Ping":                                "Norrköping",
	"D�Sseldorf":                                "Düsseldorf",
	"La Coru�A":                                 "A Coruña",
}

// CleanCell normalizes one CSV cell: strips the stray `rn">` scraping
// artifact, trims whitespace, transliterates garbled umlauts and applies
// the known full-cell corrections.
func CleanCell(s string) string {
	s = strings.ReplaceAll(s, `rn">`, "")
	s = strings.TrimSpace(s)
	for _, r := range umlautReplacements {
		s = strings.ReplaceAll(s, r[0], r[1])
	}
	if fixed, ok := cellCorrections[s]; ok {
		return fixed
	}
	return s
}
