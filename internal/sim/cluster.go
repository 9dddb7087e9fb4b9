// Package sim runs duels between two units through a phase context: weapon
// fire, missile clusters, ammunition use and heat, with every point of damage
// resolved by the combat engine.
package sim

import (
	"strconv"
	"strings"
	"unicode"
)

// ─── Cluster hits table ─────────────────────────────────────────────────────

var clusterRackSizes = []int{2, 3, 4, 5, 6, 8, 9, 10, 12, 15, 20, 30, 40}
var clusterTable = [11][13]int{
	{1, 1, 1, 1, 2, 3, 3, 3, 4, 5, 6, 10, 12},     // roll 2
	{1, 1, 2, 2, 2, 3, 3, 3, 4, 5, 6, 10, 12},     // roll 3
	{1, 1, 2, 2, 3, 4, 4, 4, 5, 6, 9, 12, 18},     // roll 4
	{1, 2, 2, 3, 3, 4, 5, 6, 8, 9, 12, 18, 24},    // roll 5
	{1, 2, 2, 3, 4, 5, 5, 6, 8, 9, 12, 18, 24},    // roll 6
	{1, 2, 3, 3, 4, 5, 5, 6, 8, 9, 12, 18, 24},    // roll 7
	{2, 2, 3, 3, 4, 5, 5, 6, 8, 9, 12, 18, 24},    // roll 8
	{2, 2, 3, 4, 5, 6, 7, 8, 10, 12, 16, 24, 32},  // roll 9
	{2, 3, 3, 4, 5, 6, 7, 8, 10, 12, 16, 24, 32},  // roll 10
	{2, 3, 4, 5, 6, 8, 9, 10, 12, 15, 20, 30, 40}, // roll 11
	{2, 3, 4, 5, 6, 8, 9, 10, 12, 15, 20, 30, 40}, // roll 12
}

// ClusterHits returns how many missiles of a rack hit on a 2d6 roll.
func ClusterHits(rack, roll int) int {
	if rack <= 1 {
		return rack
	}
	roll = min(max(roll, 2), 12)
	col := 0
	for i, rs := range clusterRackSizes {
		if rs <= rack {
			col = i
		}
	}
	return clusterTable[roll-2][col]
}

// rackSize reads the launcher size off a weapon name ("LRM 20", "SRM-6"),
// 0 when the name carries none.
func rackSize(name string) int {
	end := len(name)
	for end > 0 && !unicode.IsDigit(rune(name[end-1])) {
		end--
	}
	start := end
	for start > 0 && unicode.IsDigit(rune(name[start-1])) {
		start--
	}
	n, err := strconv.Atoi(name[start:end])
	if err != nil {
		return 0
	}
	return n
}

// missileGroup is how many missiles land as one damage packet.
func missileGroup(name string) int {
	upper := strings.ToUpper(name)
	if strings.Contains(upper, "LRM") || strings.Contains(upper, "MRM") || strings.Contains(upper, "ATM") {
		return 5
	}
	return 1
}

// allHit reports whether a launcher skips the cluster roll.
func allHit(name string) bool {
	return strings.Contains(strings.ToUpper(name), "STREAK")
}
