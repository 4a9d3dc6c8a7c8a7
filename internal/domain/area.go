package domain

import "strings"

// AreaType represents a geographic category of Tokyo municipalities
type AreaType string

const (
	AreaWard      AreaType = "23ku"
	AreaTamaCity  AreaType = "tama_city"
	AreaNishitama AreaType = "nishi_tama"
	AreaIsland    AreaType = "island"
	AreaOther     AreaType = "other"
)

// OtherAreaName is the sentinel name for addresses outside every catalog
const OtherAreaName = "その他"

// Tokyo23Wards lists the special wards; list order defines match priority
var Tokyo23Wards = []string{
	"千代田区", "中央区", "港区", "新宿区", "文京区", "台東区", "墨田区", "江東区",
	"品川区", "目黒区", "大田区", "世田谷区", "渋谷区", "中野区", "杉並区", "豊島区",
	"北区", "荒川区", "板橋区", "練馬区", "足立区", "葛飾区", "江戸川区",
}

// TamaCities lists the Tama-area cities west of the 23 wards
var TamaCities = []string{
	"八王子市", "立川市", "武蔵野市", "三鷹市", "青梅市", "府中市", "昭島市", "調布市",
	"町田市", "小金井市", "小平市", "日野市", "東村山市", "国分寺市", "国立市",
	"福生市", "狛江市", "東大和市", "清瀬市", "東久留米市", "武蔵村山市", "多摩市",
	"稲城市", "羽村市", "あきる野市", "西東京市",
}

// NishitamaTowns lists the towns and villages of Nishitama district
var NishitamaTowns = []string{
	"瑞穂町", "日の出町", "檜原村", "奥多摩町",
}

// IslandAreas lists the island municipalities under Tokyo administration
var IslandAreas = []string{
	"大島町", "利島村", "新島村", "神津島村", "三宅村", "御蔵島村",
	"八丈町", "青ヶ島村", "小笠原村",
}

// InnerWards lists the high-traffic wards inside the Yamanote loop
var InnerWards = []string{
	"千代田区", "中央区", "港区", "新宿区", "文京区", "台東区", "墨田区", "江東区",
	"品川区", "目黒区", "渋谷区", "豊島区",
}

// MajorTamaCities lists the Tama cities aggregated into the integrated file
var MajorTamaCities = []string{
	"八王子市", "立川市", "武蔵野市", "三鷹市", "府中市", "調布市", "町田市", "小金井市",
}

// AreaGroup is one ordered catalog of area names under a shared type
type AreaGroup struct {
	Type  AreaType
	Names []string
}

// Classifier resolves an address to an area by substring containment.
// Groups are scanned in registration order, names in list order; the
// first match wins. Unmatched addresses resolve to (AreaOther, その他).
type Classifier struct {
	groups []AreaGroup
}

// NewClassifier creates a classifier over the given ordered area groups
func NewClassifier(groups ...AreaGroup) *Classifier {
	return &Classifier{groups: groups}
}

// Classify returns the area type and name for an address
func (c *Classifier) Classify(address string) (AreaType, string) {
	for _, g := range c.groups {
		for _, name := range g.Names {
			if strings.Contains(address, name) {
				return g.Type, name
			}
		}
	}
	return AreaOther, OtherAreaName
}

// WardClassifier classifies against the 23 special wards only
func WardClassifier() *Classifier {
	return NewClassifier(AreaGroup{Type: AreaWard, Names: Tokyo23Wards})
}

// RegionClassifier classifies against every municipality catalog:
// wards first, then Tama cities, Nishitama towns and islands
func RegionClassifier() *Classifier {
	return NewClassifier(
		AreaGroup{Type: AreaWard, Names: Tokyo23Wards},
		AreaGroup{Type: AreaTamaCity, Names: TamaCities},
		AreaGroup{Type: AreaNishitama, Names: NishitamaTowns},
		AreaGroup{Type: AreaIsland, Names: IslandAreas},
	)
}
