package parser

import (
	"sync/atomic"
	"time"
)

var locationAtomic atomic.Value

func init() {
	// A cache for zones tied to offsets to save quite a bit of time and 3
	// allocations needed to get a fixed zone.
	locationAtomic.Store(make(map[int]*time.Location))
}

// LocationFromOffset get a location based on the offset seconds from UTC.
// Uses a cache of locations based on offset.
func LocationFromOffset(offsetSec int) *time.Location {
	cachedZones := locationAtomic.Load().(map[int]*time.Location)
	var location *time.Location
	if l, ok := cachedZones[offsetSec]; ok {
		location = l
		// Given that zones are in at most 15 minute increments and can be
		// positive or negative there should only be so many.
		// https://time.is/time_zones
		// There are currently 37 observed UTC offsets in the world
		// (38 when Iran is on standard time).
		// Allow up to 50.
		if len(cachedZones) > 50 {
			locationAtomic.Store(make(map[int]*time.Location))
		}
	} else {
		location = time.FixedZone("FixedZone", offsetSec)
		copied := make(map[int]*time.Location, len(cachedZones)+1)
		for k, v := range cachedZones {
			copied[k] = v
		}
		copied[offsetSec] = location
		locationAtomic.Store(copied)
	}

	return location
}
