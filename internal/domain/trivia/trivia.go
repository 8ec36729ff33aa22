// Package trivia proyecta notas de conocimiento ("columnas") sobre un item:
// datos de arroz, métodos de elaboración y estilos de servicio que el personal
// puede usar como conversación de venta. Tabla de reglas fija, solo lectura.
package trivia

import (
	"sort"
	"strings"

	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
)

// Note es una nota de conocimiento aplicable al item.
type Note struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type rule struct {
	id       string
	priority int // mayor = más específica, sale primero
	match    func(item *entity.Item) bool
	note     Note
}

func hasTag(item *entity.Item, fragment string) bool {
	for _, tag := range item.Tags {
		if strings.Contains(tag, fragment) {
			return true
		}
	}
	return false
}

func isSakeWithTag(fragment string) func(*entity.Item) bool {
	return func(item *entity.Item) bool {
		return item.Kind == entity.KindSake && hasTag(item, fragment)
	}
}

var rules = []rule{
	{
		id:       "rank_matsu",
		priority: 4,
		match:    func(item *entity.Item) bool { return item.Rank == "Matsu" },
		note: Note{
			Icon:  "👑",
			Title: "最高ランク",
			Text:  "店舗の顔となる最高級ライン。特別な日に。",
		},
	},
	{
		id:       "rice_omachi",
		priority: 3,
		match:    isSakeWithTag("雄町"),
		note: Note{
			Icon:  "🌱",
			Title: "オマチストを魅了する「雄町」",
			Text:  "栽培が難しく一度は幻となったお米。優等生な山田錦に対し、野性味あふれる複雑で太い旨味が特徴。「オマチスト」と呼ばれる熱狂的なファンを持ちます。",
		},
	},
	{
		id:       "rice_aiyama",
		priority: 3,
		match:    isSakeWithTag("愛山"),
		note: Note{
			Icon:  "💎",
			Title: "幻の酒米「愛山」",
			Text:  "「酒米のダイヤモンド」とも呼ばれる希少米。非常に溶けやすく、独特の濃厚な甘みと酸味を持つ、ジューシーで色気のあるお酒に仕上がります。",
		},
	},
	{
		id:       "sake_yamahai",
		priority: 3,
		match:    isSakeWithTag("山廃"),
		note: Note{
			Icon:  "🏺",
			Title: "「山廃」のワイルドさ",
			Text:  "天然の乳酸菌を取り込んで発酵させる伝統製法。通常の倍の時間と手間がかかりますが、ヨーグルトのような酸と、腰の強い濃厚な旨味が生まれ、お燗で化けます。",
		},
	},
	{
		id:       "sake_kimoto",
		priority: 3,
		match:    isSakeWithTag("生酛"),
		note: Note{
			Icon:  "🏺",
			Title: "原点回帰「生酛（きもと）」",
			Text:  "山廃のさらに原型となる、江戸時代の手法。米をすり潰す重労働を経て育てた強力な酵母は、複雑味がありながらも後切れの良い、力強いお酒を生みます。",
		},
	},
	{
		id:       "sake_kijoshu",
		priority: 3,
		match:    isSakeWithTag("貴醸酒"),
		note: Note{
			Icon:  "🌙",
			Title: "お酒でお酒を仕込む？",
			Text:  "仕込み水の代わりに「日本酒」を使って仕込む贅沢なお酒。非常に濃厚で甘美な味わいになり、デザートワインのように食後酒として楽しむのがおすすめです。",
		},
	},
	{
		id:       "sake_koshu",
		priority: 3,
		match:    isSakeWithTag("古酒"),
		note: Note{
			Icon:  "📅",
			Title: "時が育てる「熟成古酒」",
			Text:  "日本酒もワイン同様、熟成します。数年寝かせることで色は琥珀色に、香りはナッツやドライフルーツのように変化し、中華料理やチーズとも渡り合える深みが生まれます。",
		},
	},
	{
		id:       "shochu_kokuto",
		priority: 3,
		match: func(item *entity.Item) bool {
			return item.Kind == entity.KindShochu && hasTag(item, "黒糖")
		},
		note: Note{
			Icon:  "☀️",
			Title: "黒糖焼酎は「奄美」だけ",
			Text:  "黒糖を原料に出来るのは、法律で奄美群島の蔵元だけと決まっています。ラム酒と同じ原料ですが、米麹を使うため食事に合うスッキリした甘い香りが特徴です。",
		},
	},
	{
		id:       "tag_karakuchi",
		priority: 2,
		match:    func(item *entity.Item) bool { return hasTag(item, "辛口") },
		note: Note{
			Icon:  "🔪",
			Title: "キレの辛口",
			Text:  "脂っこい料理の後に口をリセットする効果があります。",
		},
	},
	{
		id:       "shochu_maewari",
		priority: 1,
		match:    func(item *entity.Item) bool { return item.Kind == entity.KindShochu },
		note: Note{
			Icon:  "🍶",
			Title: "飲み方自在",
			Text:  "「前割り」しておくと、水とアルコールが馴染んでまろやかになります。",
		},
	},
	{
		id:       "liqueur_base",
		priority: 1,
		match:    func(item *entity.Item) bool { return item.Kind == entity.KindLiqueur },
		note: Note{
			Icon:  "🍋",
			Title: "ビタミン",
			Text:  "果実由来の成分が含まれています。ロックでじっくり味わうのも乙です。",
		},
	},
}

// List devuelve las notas aplicables al item, las más específicas primero.
// Orden estable: a igual prioridad manda la posición en la tabla. Nil-safe.
func List(item *entity.Item) []Note {
	if item == nil {
		return nil
	}
	type scored struct {
		idx  int
		rule rule
	}
	var matched []scored
	for i, r := range rules {
		if r.match(item) {
			matched = append(matched, scored{idx: i, rule: r})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].rule.priority > matched[j].rule.priority
	})
	notes := make([]Note, 0, len(matched))
	for _, m := range matched {
		notes = append(notes, m.rule.note)
	}
	return notes
}
