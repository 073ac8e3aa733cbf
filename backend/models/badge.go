package models

// Badge is a static achievement definition. Earned status is never stored;
// it is Condition evaluated against the current stats, so badges follow the
// data even when history changes.
type Badge struct {
	Id        string                 `json:"id"`
	Icon      string                 `json:"icon"`
	Label     string                 `json:"label"`
	Desc      string                 `json:"desc"`
	Color     string                 `json:"color"`
	Condition func(StatsBundle) bool `json:"-"`
}

// Badges is the full achievement table.
var Badges = []Badge{
	{Id: "first_step", Icon: "footprint", Label: "First Step", Desc: "Complete a perfect day", Color: "#B8860B",
		Condition: func(s StatsBundle) bool { return s.PerfectDays >= 1 }},
	{Id: "blessed_3", Icon: "flame", Label: "Blessed Three", Desc: "3-day perfect streak", Color: "#C04A20",
		Condition: func(s StatsBundle) bool { return s.MaxStreak >= 3 }},
	{Id: "week_noor", Icon: "sun_b", Label: "Week of Noor", Desc: "7-day perfect streak", Color: "#B89020",
		Condition: func(s StatsBundle) bool { return s.MaxStreak >= 7 }},
	{Id: "first_ashra", Icon: "crescent", Label: "First Ashra", Desc: "10 perfect days", Color: "#2A6FAB",
		Condition: func(s StatsBundle) bool { return s.PerfectDays >= 10 }},
	{Id: "night_war", Icon: "star_b", Label: "Night Warrior", Desc: "Tahajjud 7 days straight", Color: "#6B44A8",
		Condition: func(s StatsBundle) bool { return s.TahajjudStreak >= 7 }},
	{Id: "quran_hero", Icon: "book_b", Label: "Quran Hero", Desc: "Para recitation 10 days straight", Color: "#2D7A52",
		Condition: func(s StatsBundle) bool { return s.QuranStreak >= 10 }},
	{Id: "halfway", Icon: "mosque_b", Label: "Halfway There", Desc: "15 days tracked", Color: "#2A8080",
		Condition: func(s StatsBundle) bool { return s.DaysTracked >= 15 }},
	{Id: "champion", Icon: "trophy", Label: "Ramadan Champion", Desc: "30 perfect days", Color: "#B8860B",
		Condition: func(s StatsBundle) bool { return s.PerfectDays >= 30 }},
	{Id: "pts_500", Icon: "gem", Label: "500 Blessings", Desc: "Earn 500 total points", Color: "#2A6FAB",
		Condition: func(s StatsBundle) bool { return s.TotalPoints >= 500 }},
	{Id: "pts_1000", Icon: "diamond", Label: "1000 Blessings", Desc: "Earn 1000 total points", Color: "#8B4DAB",
		Condition: func(s StatsBundle) bool { return s.TotalPoints >= 1000 }},
	{Id: "five_pillars", Icon: "pillar", Label: "Five Pillars", Desc: "All 5 prayers for 7 days", Color: "#2D7A52",
		Condition: func(s StatsBundle) bool { return s.AllPrayersStreak >= 7 }},
	{Id: "taraweeh_champ", Icon: "lamp", Label: "Taraweeh Champion", Desc: "Taraweeh 7 consecutive nights", Color: "#C07020",
		Condition: func(s StatsBundle) bool { return s.TaraweehStreak >= 7 }},
}

// Certificate is the tier awarded for average completion over tracked days.
type Certificate struct {
	Tier      string  `json:"tier"`
	Label     string  `json:"label"`
	Color     string  `json:"color"`
	MinAvgPct float64 `json:"min_avg_pct"`
}

var certificates = []Certificate{
	{Tier: "gold", Label: "Gold Badge Certificate", Color: "#FFD700", MinAvgPct: 85},
	{Tier: "silver", Label: "Silver Badge Certificate", Color: "#C0C0C0", MinAvgPct: 75},
	{Tier: "bronze", Label: "Bronze Badge Certificate", Color: "#CD7F32", MinAvgPct: 60},
}

// CertificateFor returns the highest tier whose threshold avgPct meets,
// or nil when none applies. Thresholds are inclusive.
func CertificateFor(avgPct float64) *Certificate {
	for i := range certificates {
		if avgPct >= certificates[i].MinAvgPct {
			c := certificates[i]
			return &c
		}
	}
	return nil
}
