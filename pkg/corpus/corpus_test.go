package corpus

import (
	"strings"
	"testing"
)

func TestCRSMap(t *testing.T) {
	body := `{
		"TIPLOCDATA": [
			{"TIPLOC": "PADTON", "3ALPHA": "PAD", "STANOX": "72410", "NLCDESC": "LONDON PADDINGTON"},
			{"TIPLOC": " RDNGSTN ", "3ALPHA": " RDG ", "STANOX": "81000"},
			{"TIPLOC": "WESTBSJ", "3ALPHA": "", "STANOX": "85040"},
			{"TIPLOC": "", "3ALPHA": "XXX", "STANOX": "00000"}
		]
	}`

	var c Corpus
	if err := c.ParseFile(strings.NewReader(body)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	crsMap := c.CRSMap()

	if len(crsMap) != 2 {
		t.Fatalf("expected 2 mappings, got %d", len(crsMap))
	}
	if crsMap["PADTON"] != "PAD" {
		t.Errorf("expected PADTON to map to PAD, got %q", crsMap["PADTON"])
	}
	if crsMap["RDNGSTN"] != "RDG" {
		t.Errorf("expected whitespace-trimmed RDNGSTN to map to RDG, got %q", crsMap["RDNGSTN"])
	}
	if _, exists := crsMap["WESTBSJ"]; exists {
		t.Error("locations without a CRS should be skipped")
	}
}

func TestParseFileInvalidJSON(t *testing.T) {
	var c Corpus
	if err := c.ParseFile(strings.NewReader("{broken")); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}
