package corpus

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

// Corpus is the Network Rail location reference dataset. The only fields we
// care about here are the TIPLOC and its public three-letter CRS code.
type Corpus struct {
	TiplocData []TiplocData `json:"TIPLOCDATA"`
}

type TiplocData struct {
	NLC        int
	STANOX     string
	TIPLOC     string
	ThreeAlpha string `json:"3ALPHA"`
	UIC        string
	NLCDESC    string
	NLCDESC16  string
}

func (c *Corpus) ParseFile(reader io.Reader) error {
	byteValue, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(byteValue, c); err != nil {
		return err
	}

	return nil
}

// CRSMap builds the TIPLOC to CRS lookup table, skipping entries without
// both codes. Locations without a CRS are non-passenger infrastructure.
func (c *Corpus) CRSMap() map[string]string {
	tiplocToCRS := map[string]string{}

	for _, tiplocData := range c.TiplocData {
		tiploc := strings.TrimSpace(tiplocData.TIPLOC)
		threeAlpha := strings.TrimSpace(tiplocData.ThreeAlpha)

		if tiploc == "" || threeAlpha == "" {
			continue
		}

		tiplocToCRS[tiploc] = threeAlpha
	}

	log.Info().Int("mappings", len(tiplocToCRS)).Msg("Loaded TIPLOC to CRS mappings from CORPUS")

	return tiplocToCRS
}
