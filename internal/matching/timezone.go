package matching

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// utcOffsets maps common abbreviations to hours east of UTC
var utcOffsets = map[string]float64{
	"HST":  -10,
	"AKST": -9,
	"AKDT": -8,
	"PST":  -8,
	"PDT":  -7,
	"MST":  -7,
	"MDT":  -6,
	"CST":  -6,
	"CDT":  -5,
	"EST":  -5,
	"EDT":  -4,
	"BRT":  -3,
	"ART":  -3,
	"GMT":  0,
	"UTC":  0,
	"WET":  0,
	"BST":  1,
	"CET":  1,
	"WAT":  1,
	"CEST": 2,
	"EET":  2,
	"SAST": 2,
	"EEST": 3,
	"MSK":  3,
	"EAT":  3,
	"GST":  4,
	"PKT":  5,
	"IST":  5.5,
	"ICT":  7,
	"WIB":  7,
	"SGT":  8,
	"HKT":  8,
	"AWST": 8,
	"JST":  9,
	"KST":  9,
	"AEST": 10,
	"AEDT": 11,
	"NZST": 12,
	"NZDT": 13,
}

var offsetPattern = regexp.MustCompile(`^(?:UTC|GMT)([+-])(\d{1,2})(?::?(\d{2}))?$`)

// UTCOffset resolves a zone abbreviation or a "UTC+5:30" style offset.
// Unknown zones resolve to 0.
func UTCOffset(zone string) float64 {
	zone = strings.ToUpper(strings.TrimSpace(zone))
	if offset, ok := utcOffsets[zone]; ok {
		return offset
	}

	m := offsetPattern.FindStringSubmatch(zone)
	if m == nil {
		return 0
	}

	hours, _ := strconv.Atoi(m[2])
	minutes := 0
	if m[3] != "" {
		minutes, _ = strconv.Atoi(m[3])
	}

	offset := float64(hours) + float64(minutes)/60
	if m[1] == "-" {
		offset = -offset
	}
	return offset
}

// TimezoneCompatibility loses 8 points per hour of difference
func TimezoneCompatibility(a, b string) int {
	diff := math.Abs(UTCOffset(a) - UTCOffset(b))
	return clamp(int(math.Round(100 - diff*8)))
}
