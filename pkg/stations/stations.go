package stations

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// Station is a geocoded passenger station keyed by its CRS code.
type Station struct {
	CRS  string
	Name string
	Lat  float64
	Lng  float64
}

// stationRow is the raw CSV shape. Coordinates stay as strings so a single
// malformed row can be skipped instead of failing the whole file.
type stationRow struct {
	CRS       string `csv:"CRS"`
	Name      string `csv:"StationName"`
	Latitude  string `csv:"Latitude"`
	Longitude string `csv:"Longitude"`
}

// headerAliases maps the column spellings seen across published station
// location datasets onto the canonical ones.
var headerAliases = map[string]string{
	"crs":          "CRS",
	"stationcode":  "CRS",
	"3alpha":       "CRS",
	"stationname":  "StationName",
	"name":         "StationName",
	"station_name": "StationName",
	"latitude":     "Latitude",
	"lat":          "Latitude",
	"longitude":    "Longitude",
	"lng":          "Longitude",
}

// ParseFile loads station coordinates from CSV into a CRS keyed map.
func ParseFile(reader io.Reader) (map[string]Station, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	body, err = canonicaliseHeader(body)
	if err != nil {
		return nil, err
	}

	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})

	var rows []stationRow
	if err := gocsv.UnmarshalBytes(body, &rows); err != nil {
		return nil, err
	}

	stationMap := map[string]Station{}
	for _, row := range rows {
		crs := strings.TrimSpace(row.CRS)
		if crs == "" {
			continue
		}

		lat, latErr := strconv.ParseFloat(strings.TrimSpace(row.Latitude), 64)
		lng, lngErr := strconv.ParseFloat(strings.TrimSpace(row.Longitude), 64)
		if latErr != nil || lngErr != nil {
			continue
		}

		name := strings.TrimSpace(row.Name)
		if name == "" {
			name = crs
		}

		stationMap[crs] = Station{
			CRS:  crs,
			Name: name,
			Lat:  lat,
			Lng:  lng,
		}
	}

	log.Info().Int("stations", len(stationMap)).Msg("Loaded station coordinates")

	return stationMap, nil
}

// canonicaliseHeader rewrites the CSV header row so gocsv can match columns
// regardless of which published dataset variant is in use.
func canonicaliseHeader(body []byte) ([]byte, error) {
	headerEnd := bytes.IndexByte(body, '\n')
	if headerEnd == -1 {
		headerEnd = len(body)
	}

	headerReader := csv.NewReader(bytes.NewReader(body[:headerEnd]))
	fields, err := headerReader.Read()
	if err != nil {
		return nil, err
	}

	for i, field := range fields {
		key := strings.ToLower(strings.TrimSpace(field))
		if canonical, exists := headerAliases[key]; exists {
			fields[i] = canonical
		}
	}

	var rewritten bytes.Buffer
	writer := csv.NewWriter(&rewritten)
	writer.Write(fields)
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	rewritten.Write(body[min(headerEnd+1, len(body)):])

	return rewritten.Bytes(), nil
}
