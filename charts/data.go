/*
data.go - Compiled-in resort chart data

PURPOSE:
  Static reference data only, no logic. Chart updates edit this file (or a
  future loader for the same structures) without touching lookup code.

STRUCTURE:
  Every chart year shares the same five travel periods (Adventure, Choice,
  Dream, Magic, Premier), each a set of month/day windows. A resort-year is
  a table of rate rows keyed by room/view, one SunThu/FriSat pair per
  period. The five windows together cover the whole calendar.

ROOM CODES:
  DS  deluxe studio     DUO duo studio       RS  resort studio
  1B  one-bedroom       2B  two-bedroom      BG  bungalow
  TH  treehouse         GV  grand villa

VIEW CODES:
  S   standard    LV  lake     TP  theme park
  SV  savanna     PV  preferred

SEE ALSO:
  - registry.go: Lookup over these structures
*/
package charts

import (
	"time"

	"github.com/castaway/points-engine/calendar"
)

// =============================================================================
// TRAVEL PERIOD WINDOWS (shared across resorts and years)
// =============================================================================

const numPeriods = 5

var periodNames = [numPeriods]string{"adventure", "choice", "dream", "magic", "premier"}

var periodWindows = [numPeriods][]calendar.Window{
	{ // adventure
		win(time.January, 1, time.January, 31),
		win(time.September, 1, time.September, 30),
	},
	{ // choice
		win(time.October, 1, time.November, 24),
		win(time.December, 1, time.December, 14),
	},
	{ // dream
		win(time.February, 1, time.February, 15),
		win(time.May, 1, time.June, 10),
		win(time.August, 16, time.August, 31),
	},
	{ // magic
		win(time.February, 16, time.April, 30),
		win(time.June, 11, time.August, 15),
		win(time.November, 25, time.November, 30),
	},
	{ // premier
		win(time.December, 15, time.December, 31),
	},
}

func win(m1 time.Month, d1 int, m2 time.Month, d2 int) calendar.Window {
	return calendar.Window{
		Start: calendar.NewMonthDay(m1, d1),
		End:   calendar.NewMonthDay(m2, d2),
	}
}

func r(sunThu, friSat int) Rate { return Rate{SunThu: sunThu, FriSat: friSat} }

func rv(room, view string) RoomView { return RoomView{Room: room, View: view} }

// buildChartYear assembles period structs from the shared windows and a
// per-room/view row of five rates.
func buildChartYear(year int, rows map[RoomView][numPeriods]Rate) *ChartYear {
	cy := &ChartYear{Year: year}
	for i := 0; i < numPeriods; i++ {
		tp := TravelPeriod{
			Name:    periodNames[i],
			Windows: periodWindows[i],
			Rates:   make(map[RoomView]Rate, len(rows)),
		}
		for key, row := range rows {
			tp.Rates[key] = row[i]
		}
		cy.Periods = append(cy.Periods, tp)
	}
	return cy
}

// =============================================================================
// RESORT METADATA
// =============================================================================
// Room and view order is authoritative: the first view is the default.

var defaultResorts = []*Resort{
	{
		Code: "BLT", Name: "Bay Lake Tower",
		Rooms: []RoomConfig{
			{Code: "DS", Views: []string{"S", "LV", "TP"}},
			{Code: "1B", Views: []string{"S", "LV", "TP"}},
			{Code: "2B", Views: []string{"S", "LV", "TP"}},
			{Code: "GV", Views: []string{"LV", "TP"}},
		},
	},
	{
		Code: "VGF", Name: "Villas at Grand Floridian",
		Rooms: []RoomConfig{
			{Code: "RS", Views: []string{"S", "LV"}},
			{Code: "DS", Views: []string{"S", "LV"}},
			{Code: "1B", Views: []string{"S", "LV"}},
			{Code: "2B", Views: []string{"S", "LV"}},
			{Code: "GV", Views: []string{"LV"}},
		},
	},
	{
		Code: "PVB", Name: "Polynesian Villas & Bungalows",
		Rooms: []RoomConfig{
			{Code: "DUO", Views: []string{"S", "LV"}},
			{Code: "DS", Views: []string{"S", "LV"}},
			{Code: "1B", Views: []string{"S", "LV"}},
			{Code: "2B", Views: []string{"S", "LV"}},
			{Code: "BG", Views: []string{"LV"}},
		},
	},
	{
		Code: "AKV", Name: "Animal Kingdom Villas",
		Rooms: []RoomConfig{
			{Code: "DS", Views: []string{"S", "SV"}},
			{Code: "1B", Views: []string{"S", "SV"}},
			{Code: "2B", Views: []string{"S", "SV"}},
			{Code: "GV", Views: []string{"SV"}},
		},
	},
	{
		Code: "SSR", Name: "Saratoga Springs",
		Rooms: []RoomConfig{
			{Code: "DS", Views: []string{"S", "PV"}},
			{Code: "1B", Views: []string{"S", "PV"}},
			{Code: "2B", Views: []string{"S", "PV"}},
			{Code: "TH", Views: []string{"S"}},
			{Code: "GV", Views: []string{"S"}},
		},
	},
}

// =============================================================================
// CHART YEARS
// =============================================================================
// Rows: [adventure, choice, dream, magic, premier], each SunThu/FriSat.

var blt2026 = map[RoomView][numPeriods]Rate{
	rv("DS", "S"):   {r(9, 11), r(10, 13), r(12, 14), r(13, 16), r(17, 20)},
	rv("DS", "LV"):  {r(11, 13), r(12, 15), r(14, 17), r(16, 19), r(20, 24)},
	rv("DS", "TP"):  {r(13, 16), r(15, 18), r(17, 20), r(19, 23), r(24, 28)},
	rv("1B", "S"):   {r(18, 22), r(20, 25), r(24, 28), r(26, 31), r(33, 39)},
	rv("1B", "LV"):  {r(22, 26), r(24, 30), r(28, 33), r(31, 37), r(39, 46)},
	rv("1B", "TP"):  {r(26, 31), r(29, 35), r(33, 39), r(37, 44), r(46, 54)},
	rv("2B", "S"):   {r(25, 30), r(28, 34), r(33, 39), r(36, 43), r(46, 54)},
	rv("2B", "LV"):  {r(30, 36), r(34, 41), r(39, 46), r(44, 52), r(55, 65)},
	rv("2B", "TP"):  {r(36, 43), r(40, 48), r(46, 54), r(52, 61), r(65, 76)},
	rv("GV", "LV"):  {r(54, 65), r(60, 72), r(69, 81), r(77, 91), r(96, 113)},
	rv("GV", "TP"):  {r(65, 78), r(72, 86), r(82, 97), r(92, 109), r(115, 135)},
}

var blt2025 = map[RoomView][numPeriods]Rate{
	rv("DS", "S"):   {r(9, 11), r(10, 12), r(11, 14), r(13, 15), r(16, 19)},
	rv("DS", "LV"):  {r(10, 12), r(12, 14), r(13, 16), r(15, 18), r(19, 23)},
	rv("DS", "TP"):  {r(12, 15), r(14, 17), r(16, 19), r(18, 22), r(23, 27)},
	rv("1B", "S"):   {r(17, 21), r(19, 24), r(23, 27), r(25, 30), r(32, 38)},
	rv("1B", "LV"):  {r(21, 25), r(23, 28), r(27, 32), r(30, 36), r(38, 45)},
	rv("1B", "TP"):  {r(25, 30), r(28, 33), r(32, 38), r(36, 42), r(44, 52)},
	rv("2B", "S"):   {r(24, 29), r(27, 32), r(32, 38), r(35, 41), r(44, 52)},
	rv("2B", "LV"):  {r(29, 35), r(33, 39), r(38, 45), r(42, 50), r(53, 63)},
	rv("2B", "TP"):  {r(35, 42), r(39, 46), r(44, 52), r(50, 59), r(63, 74)},
	rv("GV", "LV"):  {r(52, 62), r(58, 69), r(66, 78), r(74, 87), r(92, 108)},
	rv("GV", "TP"):  {r(62, 74), r(69, 82), r(79, 93), r(88, 104), r(110, 129)},
}

var vgf2026 = map[RoomView][numPeriods]Rate{
	rv("RS", "S"):  {r(12, 14), r(13, 16), r(15, 18), r(17, 20), r(22, 26)},
	rv("RS", "LV"): {r(14, 17), r(16, 19), r(18, 21), r(20, 24), r(25, 30)},
	rv("DS", "S"):  {r(15, 18), r(17, 20), r(19, 23), r(22, 26), r(27, 32)},
	rv("DS", "LV"): {r(17, 20), r(19, 23), r(22, 26), r(25, 30), r(31, 37)},
	rv("1B", "S"):  {r(29, 35), r(32, 38), r(37, 44), r(41, 49), r(52, 61)},
	rv("1B", "LV"): {r(33, 39), r(37, 44), r(42, 50), r(47, 56), r(59, 70)},
	rv("2B", "S"):  {r(40, 48), r(45, 53), r(51, 60), r(57, 68), r(72, 85)},
	rv("2B", "LV"): {r(46, 55), r(51, 61), r(59, 70), r(66, 78), r(83, 98)},
	rv("GV", "LV"): {r(80, 96), r(89, 106), r(102, 120), r(114, 135), r(143, 168)},
}

var vgf2025 = map[RoomView][numPeriods]Rate{
	rv("RS", "S"):  {r(11, 13), r(13, 15), r(14, 17), r(16, 19), r(21, 25)},
	rv("RS", "LV"): {r(13, 16), r(15, 18), r(17, 20), r(19, 23), r(24, 29)},
	rv("DS", "S"):  {r(14, 17), r(16, 19), r(18, 22), r(21, 25), r(26, 31)},
	rv("DS", "LV"): {r(16, 19), r(18, 22), r(21, 25), r(24, 29), r(30, 36)},
	rv("1B", "S"):  {r(28, 33), r(31, 37), r(35, 42), r(40, 47), r(50, 59)},
	rv("1B", "LV"): {r(32, 38), r(35, 42), r(40, 48), r(45, 54), r(57, 67)},
	rv("2B", "S"):  {r(38, 46), r(43, 51), r(49, 58), r(55, 65), r(69, 82)},
	rv("2B", "LV"): {r(44, 52), r(49, 58), r(56, 67), r(63, 75), r(80, 94)},
	rv("GV", "LV"): {r(77, 92), r(86, 102), r(98, 116), r(110, 130), r(138, 162)},
}

var pvb2026 = map[RoomView][numPeriods]Rate{
	rv("DUO", "S"):  {r(10, 12), r(11, 14), r(13, 15), r(14, 17), r(18, 21)},
	rv("DUO", "LV"): {r(12, 14), r(13, 16), r(15, 18), r(17, 20), r(22, 26)},
	rv("DS", "S"):   {r(13, 16), r(15, 18), r(17, 20), r(19, 23), r(24, 28)},
	rv("DS", "LV"):  {r(15, 18), r(17, 20), r(20, 24), r(22, 26), r(28, 33)},
	rv("1B", "S"):   {r(27, 32), r(30, 36), r(34, 40), r(38, 45), r(48, 57)},
	rv("1B", "LV"):  {r(31, 37), r(34, 41), r(39, 46), r(44, 52), r(55, 65)},
	rv("2B", "S"):   {r(37, 44), r(41, 49), r(47, 56), r(53, 63), r(66, 78)},
	rv("2B", "LV"):  {r(42, 50), r(47, 56), r(54, 64), r(60, 71), r(76, 90)},
	rv("BG", "LV"):  {r(118, 140), r(131, 156), r(150, 177), r(168, 198), r(210, 247)},
}

var akv2026 = map[RoomView][numPeriods]Rate{
	rv("DS", "S"):  {r(8, 10), r(9, 11), r(10, 12), r(11, 14), r(14, 17)},
	rv("DS", "SV"): {r(10, 12), r(11, 14), r(13, 15), r(14, 17), r(18, 21)},
	rv("1B", "S"):  {r(15, 18), r(17, 20), r(19, 23), r(22, 26), r(27, 32)},
	rv("1B", "SV"): {r(19, 23), r(21, 25), r(24, 29), r(27, 32), r(34, 40)},
	rv("2B", "S"):  {r(21, 25), r(23, 28), r(27, 32), r(30, 36), r(38, 45)},
	rv("2B", "SV"): {r(26, 31), r(29, 35), r(33, 39), r(37, 44), r(47, 55)},
	rv("GV", "SV"): {r(47, 56), r(52, 62), r(60, 71), r(67, 79), r(84, 99)},
}

var ssr2026 = map[RoomView][numPeriods]Rate{
	rv("DS", "S"):  {r(8, 10), r(9, 11), r(10, 12), r(11, 14), r(14, 17)},
	rv("DS", "PV"): {r(9, 11), r(10, 13), r(12, 14), r(13, 16), r(17, 20)},
	rv("1B", "S"):  {r(15, 18), r(17, 20), r(19, 23), r(21, 25), r(27, 32)},
	rv("1B", "PV"): {r(17, 20), r(19, 23), r(22, 26), r(24, 29), r(30, 36)},
	rv("2B", "S"):  {r(20, 24), r(22, 27), r(26, 31), r(29, 34), r(36, 43)},
	rv("2B", "PV"): {r(23, 27), r(25, 30), r(29, 35), r(33, 39), r(41, 49)},
	rv("TH", "S"):  {r(26, 31), r(29, 35), r(33, 39), r(37, 44), r(47, 55)},
	rv("GV", "S"):  {r(43, 52), r(48, 57), r(55, 65), r(62, 73), r(78, 92)},
}

var defaultCharts = map[string][]*ChartYear{
	"BLT": {buildChartYear(2025, blt2025), buildChartYear(2026, blt2026)},
	"VGF": {buildChartYear(2025, vgf2025), buildChartYear(2026, vgf2026)},
	"PVB": {buildChartYear(2026, pvb2026)},
	"AKV": {buildChartYear(2026, akv2026)},
	"SSR": {buildChartYear(2026, ssr2026)},
}

// Default returns a registry over the compiled-in chart data.
func Default() *Registry {
	return NewRegistry(defaultResorts, defaultCharts)
}
