package tasting

import "github.com/tu-usuario/cellar-pro/internal/domain/entity"

// Pairing es una sugerencia de servicio/maridaje para una categoría.
type Pairing struct {
	Approach string `json:"approach"` // enfoque de servicio, ej. "🌊 ウォッシュ"
	Target   string `json:"target"`   // platos objetivo
	Reason   string `json:"reason"`
}

// Tabla fija de maridajes por categoría (1-2 registros, redactados a mano).
// Las categorías de vino no tienen tabla: el maridaje de vinos se captura como
// texto libre en el item (PairingHint) y aquí se devuelve lista vacía.
var pairingsByCategory = map[Category][]Pairing{
	CategorySoshu: {
		{
			Approach: "🌊 ウォッシュ",
			Target:   "天ぷら、脂の乗った魚、焼肉",
			Reason:   "軽快なキレが脂を洗い流し、口内をリセットします。",
		},
		{
			Approach: "⚖️ バランス",
			Target:   "刺身、冷奴、蕎麦",
			Reason:   "料理の繊細な風味を邪魔せず、静かに寄り添います。",
		},
	},
	CategoryJunshu: {
		{
			Approach: "🔄 ハーモニー",
			Target:   "すき焼き、煮魚、味噌料理",
			Reason:   "お米のふくよかな旨味が、濃い味付けと同調します。",
		},
		{
			Approach: "🔥 お燗の妙",
			Target:   "鍋料理、おでん",
			Reason:   "温めることで酸がまろやかになり、出汁の旨味と溶け合います。",
		},
	},
	CategoryKunshu: {
		{
			Approach: "💐 アロマ",
			Target:   "カルパッチョ、生春巻き",
			Reason:   "華やかな香りが、ハーブや柑橘を使った前菜を引き立てます。",
		},
		{
			Approach: "🥂 アペリティフ",
			Target:   "乾杯酒として",
			Reason:   "フルーティーな香味が食欲を刺激。最初の1杯に最適です。",
		},
	},
	CategoryJukushu: {
		{
			Approach: "🍷 ディープ",
			Target:   "麻婆豆腐、羊肉、ブルーチーズ",
			Reason:   "熟成香と複雑味が、スパイスやクセのある食材を受け止めます。",
		},
	},
	CategoryShochuImo: {
		{
			Approach: "🍠 芋の甘み",
			Target:   "豚の角煮、さつま揚げ",
			Reason:   "脂の甘みと芋の香ばしさがマッチ。お湯割りがおすすめ。",
		},
		{
			Approach: "🧊 ロックでキレ",
			Target:   "地鶏の炭火焼き",
			Reason:   "冷やすと香りが締まり、香ばしい料理の脂を切ります。",
		},
	},
	CategoryShochuMugi: {
		{
			Approach: "🌾 香ばしさ",
			Target:   "白身魚のフライ、燻製",
			Reason:   "麦の香ばしさが、揚げ物やスモーキーな香りと同調します。",
		},
		{
			Approach: "💧 ソーダ割り",
			Target:   "唐揚げ、ポテトサラダ",
			Reason:   "ハイボール感覚で、油料理を爽快にウォッシュします。",
		},
	},
	CategoryShochuKome: {
		{
			Approach: "🍶 米の丸み",
			Target:   "刺身、寿司、出汁巻き卵",
			Reason:   "吟醸香に通じる上品な香りが、繊細な和食に寄り添います。",
		},
	},
	CategoryShochuKokuto: {
		{
			Approach: "🍬 黒糖の甘香",
			Target:   "豚料理、鶏の照り焼き",
			Reason:   "ラム酒と同じ原料の甘い香りが、タレや脂の甘みと重なります。",
		},
	},
	CategoryShochuSoba: {
		{
			Approach: "🕉 そば湯割り",
			Target:   "板わさ、焼き海苔、蕎麦前",
			Reason:   "そば湯で割ると香りがふくらみ、蕎麦屋の肴と完璧に揃います。",
		},
	},
	CategoryShochuCorn: {
		{
			Approach: "🌽 マイルド",
			Target:   "バター系の料理、グリル野菜",
			Reason:   "ほのかな甘みとマイルドさが、コクのある洋風つまみと合います。",
		},
	},
	CategoryAwamori: {
		{
			Approach: "🏝 どっしり",
			Target:   "ラフテー、ゴーヤチャンプルー",
			Reason:   "黒麹由来のコクとキレが、沖縄の濃い味付けを受け止めます。",
		},
	},
	CategoryShochu: {
		{
			Approach: "🥃 スタイル提案",
			Target:   "幅広い居酒屋料理",
			Reason:   "ロックなら素材の味を、水割りなら食事全体に寄り添います。",
		},
	},
	CategoryLiqueur: {
		{
			Approach: "🍹 デザート・〆",
			Target:   "バニラアイス、食後の余韻",
			Reason:   "濃厚な甘みと酸味が、食事の締めくくりを彩ります。",
		},
		{
			Approach: "🫧 ソーダ割り",
			Target:   "スパイシーな料理、揚げ物",
			Reason:   "甘酸っぱさと炭酸の刺激が、辛い料理や油を中和します。",
		},
	},
}

// SuggestPairings devuelve la lista ordenada de sugerencias (0-3) para el item.
// Función pura y determinista: depende solo de Classify(item). Categorías sin
// tabla (vinos, desconocidas) devuelven lista vacía, nunca error.
func SuggestPairings(item *entity.Item) []Pairing {
	category := Classify(item)
	table := pairingsByCategory[category]
	if len(table) == 0 {
		return nil
	}
	out := make([]Pairing, len(table))
	copy(out, table)
	return out
}

// Profile reúne la categoría y sus maridajes, tal como lo consume el front.
type Profile struct {
	Type     Info      `json:"type_info"`
	Pairings []Pairing `json:"roles"`
}

// BuildProfile clasifica el item y arma el perfil completo para mostrar.
func BuildProfile(item *entity.Item) Profile {
	category := Classify(item)
	info, _ := Lookup(category)
	return Profile{
		Type:     info,
		Pairings: SuggestPairings(item),
	}
}
