package stations

// Resolver composes the TIPLOC to CRS indirection with the CRS keyed
// station gazetteer, exposing a single lookup to path building. If direct
// TIPLOC to coordinates feeds ever appear only this type changes.
type Resolver struct {
	tiplocToCRS map[string]string
	stations    map[string]Station
}

func NewResolver(tiplocToCRS map[string]string, stationMap map[string]Station) *Resolver {
	return &Resolver{
		tiplocToCRS: tiplocToCRS,
		stations:    stationMap,
	}
}

// Lookup resolves an internal TIPLOC to a geocoded station. A miss at
// either table is a soft failure: the caller drops the stop, not the journey.
func (r *Resolver) Lookup(tiploc string) (Station, bool) {
	crs, exists := r.tiplocToCRS[tiploc]
	if !exists {
		return Station{}, false
	}

	station, exists := r.stations[crs]
	return station, exists
}
