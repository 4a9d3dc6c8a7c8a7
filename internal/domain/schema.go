package domain

// Source column names of the government barrier-free toilet dataset
const (
	ColFacilityName = "施設名"
	ColPrefecture   = "都道府県"
	ColMunicipality = "市区町村・番地"
	ColToiletName   = "トイレ名"
	ColFloor        = "設置フロア"
	ColLongitude    = "経度"
	ColLatitude     = "緯度"
	ColDoorType     = "戸の形式"
	ColRemarks      = "備考"
)

// Pin-format column names
const (
	PinColName       = "name"
	PinColAddress    = "address"
	PinColFloor      = "floor"
	PinColToiletName = "toilet_name"
	PinColNote       = "note"
	PinColColor      = "color"
	PinColLng        = "lng"
	PinColLat        = "lat"
)

// PinColumns is the fixed pin-format header
var PinColumns = []string{
	PinColName, PinColAddress, PinColFloor, PinColToiletName,
	PinColNote, PinColColor, PinColLng, PinColLat,
}

// ColumnMap maps one source column to its normalized English name
type ColumnMap struct {
	Source string
	Target string
}

// ColumnMapping is the fixed, ordered source schema of the transformer.
// Target names are used when English headers are requested.
var ColumnMapping = []ColumnMap{
	{ColFacilityName, "facility_name"},
	{ColPrefecture, "prefecture"},
	{ColMunicipality, "address"},
	{ColToiletName, "toilet_name"},
	{ColFloor, "floor"},
	{ColLongitude, "longitude"},
	{ColLatitude, "latitude"},
	{"性別の分け", "gender"},
	{ColDoorType, "door_type"},
	{"車椅子が出入りできる（出入口の有効幅員80cm以上）", "wheelchair_accessible"},
	{"車椅子が転回できる（直径150cm以上の円が内接できる）", "wheelchair_turnaround"},
	{"便座に背もたれがある", "seat_backrest"},
	{"便座に手すりがある", "seat_handrail"},
	{"オストメイト用設備がある", "ostomy_equipment"},
	{"オストメイト用設備が温水対応している", "ostomy_hot_water"},
	{"大型ベッドを備えている", "large_bed"},
	{"乳幼児用おむつ交換台等を備えている", "baby_changing"},
	{"乳幼児用椅子を備えている", "baby_chair"},
	{"月曜日", "monday"},
	{"火曜日", "tuesday"},
	{"水曜日", "wednesday"},
	{"木曜日", "thursday"},
	{"金曜日", "friday"},
	{"土曜日", "saturday"},
	{"日曜日", "sunday"},
	{"祝日", "holiday"},
	{"その他", "other"},
	{"写真データ（トイレの入り口）", "photo_entrance"},
	{"写真データ（トイレ内）", "photo_interior"},
	{"写真データ（トイレ内（別角度））", "photo_interior2"},
	{ColRemarks, "remarks"},
}

// booleanColumns holds the source columns carrying ○/× markers
var booleanColumns = map[string]struct{}{
	"車椅子が出入りできる（出入口の有効幅員80cm以上）":     {},
	"車椅子が転回できる（直径150cm以上の円が内接できる）": {},
	"便座に背もたれがある":                 {},
	"便座に手すりがある":                  {},
	"オストメイト用設備がある":               {},
	"オストメイト用設備が温水対応している":         {},
	"大型ベッドを備えている":                {},
	"乳幼児用おむつ交換台等を備えている":          {},
	"乳幼児用椅子を備えている":               {},
}

// BoolString converts a ○/× marker to a boolean string.
// ○ maps to TRUE; everything else, including × and empty, maps to FALSE.
func BoolString(v string) string {
	if v == "○" {
		return "TRUE"
	}
	return "FALSE"
}

// IsBooleanColumn reports whether a source column carries ○/× markers
func IsBooleanColumn(source string) bool {
	_, ok := booleanColumns[source]
	return ok
}

// PinFeature pairs a boolean source column with its human-readable label
type PinFeature struct {
	Column string
	Label  string
}

// PinFeatures lists the accessibility features surfaced in the pin note
var PinFeatures = []PinFeature{
	{"車椅子が出入りできる（出入口の有効幅員80cm以上）", "車椅子対応"},
	{"オストメイト用設備がある", "オストメイト対応"},
	{"大型ベッドを備えている", "大型ベッド"},
	{"乳幼児用おむつ交換台等を備えている", "おむつ交換台"},
	{"乳幼児用椅子を備えている", "乳幼児用椅子"},
}

// DayColumns lists the operating-hour columns in week order
var DayColumns = []string{
	"月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日", "日曜日", "祝日",
}
