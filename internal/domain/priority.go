package domain

import "strings"

// Additive priority weights for the lightweight extraction
const (
	StationScore        = 100
	InnerWardScore      = 50
	PublicFacilityScore = 30
	LandmarkScore       = 20
)

// stationKeywords marks railway stations in facility names
var stationKeywords = []string{"駅", "Station"}

// publicFacilityKeywords marks civic facilities
var publicFacilityKeywords = []string{"庁舎", "図書館", "病院", "公園", "文化"}

// landmarkKeywords marks high-traffic city hubs
var landmarkKeywords = []string{"東京", "新宿", "渋谷", "池袋", "上野", "品川"}

// PriorityScore computes the access-priority score of a facility.
// Each rule contributes at most once; a score of zero means the
// facility does not qualify for the priority subset.
func PriorityScore(name, address string) int {
	score := 0

	if containsAny(name, stationKeywords) {
		score += StationScore
	}
	if containsAny(address, InnerWards) {
		score += InnerWardScore
	}
	if containsAny(name, publicFacilityKeywords) {
		score += PublicFacilityScore
	}
	if containsAny(name, landmarkKeywords) {
		score += LandmarkScore
	}

	return score
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
