// Package tasting clasifica items de bebida en una taxonomía de perfiles de
// sabor y deriva sugerencias de maridaje. Todas las funciones son puras y
// totales: cualquier Item bien formado produce exactamente una categoría.
package tasting

import "github.com/tu-usuario/cellar-pro/internal/domain/entity"

// Category identifica un perfil de sabor de la taxonomía.
type Category string

const (
	// Los cuatro tipos clásicos de sake (clasificación SSI).
	CategorySoshu   Category = "SOSHU"   // 爽酒: ligero y seco
	CategoryJunshu  Category = "JUNSHU"  // 醇酒: umami del arroz (default)
	CategoryKunshu  Category = "KUNSHU"  // 薫酒: aromático y frutal
	CategoryJukushu Category = "JUKUSHU" // 熟酒: madurado

	// Shochu por materia prima, en orden de prioridad de detección.
	CategoryShochuImo    Category = "SHOCHU_IMO"    // 芋
	CategoryShochuMugi   Category = "SHOCHU_MUGI"   // 麦
	CategoryShochuKome   Category = "SHOCHU_KOME"   // 米
	CategoryShochuKokuto Category = "SHOCHU_KOKUTO" // 黒糖
	CategoryShochuSoba   Category = "SHOCHU_SOBA"   // そば
	CategoryShochuCorn   Category = "SHOCHU_CORN"   // とうもろこし
	CategoryAwamori      Category = "AWAMORI"       // 泡盛
	CategoryShochu       Category = "SHOCHU"        // sin materia prima identificada

	CategoryLiqueur Category = "LIQUEUR"

	CategoryWineRed       Category = "WINE_RED"
	CategoryWineWhite     Category = "WINE_WHITE"
	CategoryWineSparkling Category = "WINE_SPARKLING"
	CategoryWineRose      Category = "WINE_ROSE"
	CategoryWineOrange    Category = "WINE_ORANGE"
)

// Info describe una categoría para mostrar en el front.
type Info struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
	Desc  string   `json:"desc"`
}

var infoByCategory = map[Category]Info{
	CategorySoshu: {
		ID:    CategorySoshu,
		Label: "爽酒 (Soshu)",
		Desc:  "軽快でなめらか。脂っこい料理を洗い流す「ウォッシュ」効果が高い。",
	},
	CategoryJunshu: {
		ID:    CategoryJunshu,
		Label: "醇酒 (Jun-shu)",
		Desc:  "お米の旨味が豊か。濃い味付けや肉料理に「同調」する力強いタイプ。",
	},
	CategoryKunshu: {
		ID:    CategoryKunshu,
		Label: "薫酒 (Kun-shu)",
		Desc:  "果実のような香り。素材の味を活かした料理や前菜に向く。",
	},
	CategoryJukushu: {
		ID:    CategoryJukushu,
		Label: "熟酒 (Juku-shu)",
		Desc:  "スパイスやドライフルーツの香り。中華やジビエ、ハードチーズに合う。",
	},
	CategoryShochuImo: {
		ID:    CategoryShochuImo,
		Label: "芋焼酎",
		Desc:  "さつま芋由来の甘く香ばしい風味。お湯割りで香りが開きます。",
	},
	CategoryShochuMugi: {
		ID:    CategoryShochuMugi,
		Label: "麦焼酎",
		Desc:  "香ばしくスッキリ。クセが少なく食中酒として万能です。",
	},
	CategoryShochuKome: {
		ID:    CategoryShochuKome,
		Label: "米焼酎",
		Desc:  "吟醸香にも通じる上品な香り。和食全般に寄り添います。",
	},
	CategoryShochuKokuto: {
		ID:    CategoryShochuKokuto,
		Label: "黒糖焼酎",
		Desc:  "奄美群島だけに許された焼酎。スッキリした甘い香りが特徴。",
	},
	CategoryShochuSoba: {
		ID:    CategoryShochuSoba,
		Label: "そば焼酎",
		Desc:  "そばの繊細で香ばしい風味。そば湯割りは定番の楽しみ方。",
	},
	CategoryShochuCorn: {
		ID:    CategoryShochuCorn,
		Label: "とうもろこし焼酎",
		Desc:  "ほのかな甘みとマイルドな口当たり。洋風のつまみとも好相性。",
	},
	CategoryAwamori: {
		ID:    CategoryAwamori,
		Label: "泡盛",
		Desc:  "タイ米と黒麹が生むどっしりとしたコク。熟成古酒（クース）は格別。",
	},
	CategoryShochu: {
		ID:    CategoryShochu,
		Label: "本格焼酎 (Shochu)",
		Desc:  "原材料の風味が活きた蒸留酒。飲み方で表情が劇的に変わります。",
	},
	CategoryLiqueur: {
		ID:    CategoryLiqueur,
		Label: "果実酒 (Liqueur)",
		Desc:  "果実の甘みと酸味。デザート感覚や食前酒、ソーダ割りに最適。",
	},
	CategoryWineRed:       {ID: CategoryWineRed, Label: "赤ワイン", Desc: "タンニンと果実味。肉料理や濃いソースと。"},
	CategoryWineWhite:     {ID: CategoryWineWhite, Label: "白ワイン", Desc: "酸とミネラル。魚介や前菜と。"},
	CategoryWineSparkling: {ID: CategoryWineSparkling, Label: "スパークリング", Desc: "泡の爽快感。乾杯から揚げ物まで。"},
	CategoryWineRose:      {ID: CategoryWineRose, Label: "ロゼ", Desc: "赤と白の中間。幅広い料理に対応。"},
	CategoryWineOrange:    {ID: CategoryWineOrange, Label: "オレンジ", Desc: "白ブドウの醸し。発酵食品や香辛料と。"},
}

// Lookup devuelve la información de la categoría. La segunda salida es false
// para categorías desconocidas.
func Lookup(c Category) (Info, bool) {
	info, ok := infoByCategory[c]
	return info, ok
}

// IsShochu indica si la categoría pertenece a la familia shochu/awamori.
func (c Category) IsShochu() bool {
	switch c {
	case CategoryShochuImo, CategoryShochuMugi, CategoryShochuKome, CategoryShochuKokuto,
		CategoryShochuSoba, CategoryShochuCorn, CategoryAwamori, CategoryShochu:
		return true
	}
	return false
}

var wineCategoryByKind = map[entity.Kind]Category{
	entity.KindWineRed:       CategoryWineRed,
	entity.KindWineWhite:     CategoryWineWhite,
	entity.KindWineSparkling: CategoryWineSparkling,
	entity.KindWineRose:      CategoryWineRose,
	entity.KindWineOrange:    CategoryWineOrange,
}
