package utils

import (
	"fmt"
	"strings"
	"time"
)

var locations map[string]*time.Location = map[string]*time.Location{}

func init() {
	for i := time.Duration(-12); i < 15; i++ {
		name := fmt.Sprintf("GMT%+d", i)
		locations[name] = time.FixedZone(name, int((i * time.Hour).Seconds()))

		// offsets like GMT+5:30 and GMT+12:45 exist as well
		for _, minutes := range []time.Duration{30, 45} {
			fraction := minutes * time.Minute
			if i < 0 {
				fraction = -fraction
			}
			name := fmt.Sprintf("GMT%+d:%02d", i, minutes)
			locations[name] = time.FixedZone(name, int((i*time.Hour + fraction).Seconds()))
		}
	}
}

// GetLocation returns a location of a GMT-X format timezone from a pre-defined
// locations map. Clients send their timezone so that time-of-day histograms
// line up with the user's wall clock.
func GetLocation(timezone string) *time.Location {
	if tz, ok := locations[strings.ToUpper(timezone)]; ok {
		return tz
	}
	return nil
}
