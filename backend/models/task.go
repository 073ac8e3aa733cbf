package models

// Task categories
const (
	CategoryNamaaz    = "namaaz"
	CategoryQuran     = "quran"
	CategorySunnah    = "sunnah"
	CategoryKnowledge = "knowledge"
	CategoryDua       = "dua"
	CategoryRole      = "role"
)

// Roles
const (
	RoleStudent      = "student"
	RoleProfessional = "professional"
	RoleGeneral      = "general"
)

// Roles lists the three supported roles.
var Roles = []string{RoleStudent, RoleProfessional, RoleGeneral}

// ValidRole reports whether r is one of the supported roles.
func ValidRole(r string) bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Task is a point-valued unit of devotional or personal practice.
// Fixed and role-default tasks are catalog constants; custom tasks are
// user-created and scoped to one role.
type Task struct {
	Id       string `json:"id"`
	Label    string `json:"label"`
	Rakah    string `json:"rakah,omitempty"`
	Points   int    `json:"points"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

// IbadahTasks is the fixed devotional task catalog, shared by every role.
var IbadahTasks = []Task{
	{Id: "fajr", Label: "Fajr Namaaz", Rakah: "2 Sunnah · 2 Fardh", Points: 15, Category: CategoryNamaaz, Icon: "dawn"},
	{Id: "zuhr", Label: "Zuhr Namaaz", Rakah: "4 Sunnah · 4 Fardh · 2 Sunnah", Points: 15, Category: CategoryNamaaz, Icon: "sun"},
	{Id: "asr", Label: "Asr Namaaz", Rakah: "4 Sunnah · 4 Fardh", Points: 15, Category: CategoryNamaaz, Icon: "cloud"},
	{Id: "maghrib", Label: "Maghrib Namaaz", Rakah: "3 Fardh · 2 Sunnah", Points: 15, Category: CategoryNamaaz, Icon: "sunset"},
	{Id: "isha", Label: "Isha Namaaz", Rakah: "4 Sunnah · 4 Fardh · 2 Sunnah · Witr", Points: 15, Category: CategoryNamaaz, Icon: "moon"},
	{Id: "tahajjud", Label: "Tahajjud", Rakah: "min 2 · max 8 Rakah", Points: 25, Category: CategoryNamaaz, Icon: "star"},
	{Id: "taraweeh", Label: "Taraweeh", Rakah: "min 8 · max 20 Rakah after Isha", Points: 20, Category: CategoryNamaaz, Icon: "mosque"},
	{Id: "sehri", Label: "Sehri", Points: 10, Category: CategorySunnah, Icon: "bowl"},
	{Id: "quran_para", Label: "One Para Quran", Points: 30, Category: CategoryQuran, Icon: "book"},
	{Id: "quran_verse", Label: "Learn One Verse", Points: 20, Category: CategoryQuran, Icon: "quill"},
	{Id: "hadith", Label: "Read a Hadith", Points: 15, Category: CategoryKnowledge, Icon: "scroll"},
	{Id: "dua", Label: "Morning & Evening Dua", Points: 10, Category: CategoryDua, Icon: "hands"},
}

// RoleTasks holds the default task list per role. General has none.
var RoleTasks = map[string][]Task{
	RoleStudent: {
		{Id: "study_2h", Label: "Study 2 Hours", Points: 20, Category: CategoryRole, Icon: "study"},
		{Id: "revision", Label: "Revise Yesterday's Notes", Points: 15, Category: CategoryRole, Icon: "refresh"},
		{Id: "no_social", Label: "Screen-free Study Block", Points: 10, Category: CategoryRole, Icon: "phone"},
		{Id: "notes", Label: "Organized Notes", Points: 10, Category: CategoryRole, Icon: "notes"},
	},
	RoleProfessional: {
		{Id: "deep_work", Label: "3h Deep Work Session", Points: 20, Category: CategoryRole, Icon: "target"},
		{Id: "inbox", Label: "Clear Priority Emails", Points: 10, Category: CategoryRole, Icon: "mail"},
		{Id: "no_overtime", Label: "Leave on Time", Points: 15, Category: CategoryRole, Icon: "clock"},
		{Id: "gratitude", Label: "Write 3 Gratitudes", Points: 10, Category: CategoryRole, Icon: "heart"},
	},
	RoleGeneral: {},
}

// FiveDailyPrayers are the prayer task ids used for the all-prayers streak.
var FiveDailyPrayers = []string{"fajr", "zuhr", "asr", "maghrib", "isha"}

// Verse is a Quran verse shown by clients between interactions.
type Verse struct {
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
	Ref         string `json:"ref"`
}

var Verses = []Verse{
	{Arabic: "شَهْرُ رَمَضَانَ الَّذِي أُنزِلَ فِيهِ الْقُرْآنُ", Translation: "The month of Ramadan in which was revealed the Quran", Ref: "Al-Baqarah 2:185"},
	{Arabic: "وَإِذَا سَأَلَكَ عِبَادِي عَنِّي فَإِنِّي قَرِيبٌ", Translation: "When My servants ask about Me, I am near", Ref: "Al-Baqarah 2:186"},
	{Arabic: "إِنَّ مَعَ الْعُسْرِ يُسْرًا", Translation: "Indeed, with hardship comes ease", Ref: "Ash-Sharh 94:6"},
	{Arabic: "وَمَن يَتَّقِ اللَّهَ يَجْعَل لَّهُ مَخْرَجًا", Translation: "Whoever fears Allah, He will make a way out for them", Ref: "At-Talaq 65:2"},
	{Arabic: "فَاذْكُرُونِي أَذْكُرْكُمْ", Translation: "Remember Me, and I will remember you", Ref: "Al-Baqarah 2:152"},
	{Arabic: "رَبِّ زِدْنِي عِلْمًا", Translation: "My Lord, increase me in knowledge", Ref: "Ta-Ha 20:114"},
	{Arabic: "إِنَّ اللَّهَ مَعَ الصَّابِرِينَ", Translation: "Indeed, Allah is with the patient", Ref: "Al-Baqarah 2:153"},
}
