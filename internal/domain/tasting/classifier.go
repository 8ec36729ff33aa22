package tasting

import (
	"strings"

	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
)

// Reglas de clasificación de sake por palabras clave, en orden de prioridad:
// gana el primer grupo con alguna coincidencia y los siguientes no se evalúan.
// La tabla reúne el superconjunto de términos de las distintas cartas del local.
var sakeKeywordGroups = []struct {
	category Category
	keywords []string
}{
	{CategoryJukushu, []string{"古酒", "熟成", "長期熟成", "貴醸酒"}},
	{CategoryKunshu, []string{"大吟醸", "吟醸", "華やか", "フルーティー"}},
	{CategoryJunshu, []string{"山廃", "生酛", "純米", "旨味", "旨口", "無濾過", "コク"}},
	{CategorySoshu, []string{"辛口", "キレ", "淡麗", "本醸造", "生酒"}},
}

// Materias primas de shochu en orden fijo de prioridad. 麦 excluye 蕎麦 para que
// "蕎麦焼酎" no dispare la regla de cebada por el kanji compartido.
var shochuMaterials = []struct {
	category Category
	keywords []string
	exclude  string
}{
	{CategoryShochuImo, []string{"芋", "霧島"}, ""},
	{CategoryShochuMugi, []string{"麦"}, "蕎麦"},
	{CategoryShochuKome, []string{"米"}, ""},
	{CategoryShochuKokuto, []string{"黒糖"}, ""},
	{CategoryShochuSoba, []string{"そば", "蕎麦"}, ""},
	{CategoryShochuCorn, []string{"とうもろこし", "コーン"}, ""},
	{CategoryAwamori, []string{"泡盛"}, ""},
}

// Classify determina la categoría de sabor de un item. Nunca falla: si ninguna
// señal coincide devuelve la categoría media CategoryJunshu (umami balanceado).
//
// Prioridad de señales:
//  1. Kind explícito con mapeo directo (shochu refinado por materia prima,
//     licor, y los kinds de vino 1:1).
//  2. Coincidencia de palabras clave sobre nombre + tags + sales talk.
//  3. Posición en el mapa de sabor (AxisX/AxisY) como último recurso.
func Classify(item *entity.Item) Category {
	if item == nil {
		return CategoryJunshu
	}

	switch {
	case item.Kind == entity.KindShochu:
		return classifyShochuMaterial(item)
	case item.Kind == entity.KindLiqueur:
		return CategoryLiqueur
	case item.Kind.IsWine():
		return wineCategoryByKind[item.Kind]
	}

	text := signalText(item)
	for _, group := range sakeKeywordGroups {
		if containsAny(text, group.keywords) {
			return group.category
		}
	}

	// Último recurso: posición en el mapa de sabor (eje Y = aromático, eje X = seco).
	x, y := item.AxisX, item.AxisY
	switch {
	case y > 60:
		return CategoryKunshu
	case y < 40 && x > 60:
		return CategorySoshu
	case y < 60 && x < 40:
		return CategoryJunshu
	}
	return CategoryJunshu
}

// classifyShochuMaterial refina un shochu por materia prima buscando en
// nombre + tags. Sin coincidencia devuelve el genérico CategoryShochu.
func classifyShochuMaterial(item *entity.Item) Category {
	text := strings.ToLower(item.Name + strings.Join(item.Tags, ""))
	for _, m := range shochuMaterials {
		if m.exclude != "" && strings.Contains(text, m.exclude) && !containsOutsideExclude(text, m.keywords, m.exclude) {
			continue
		}
		if containsAny(text, m.keywords) {
			return m.category
		}
	}
	return CategoryShochu
}

// containsOutsideExclude reporta si alguna keyword aparece fuera de las
// ocurrencias de la secuencia excluida (ej. un 麦 que no forma parte de 蕎麦).
func containsOutsideExclude(text string, keywords []string, exclude string) bool {
	cleaned := strings.ReplaceAll(text, exclude, "")
	return containsAny(cleaned, keywords)
}

// signalText concatena las señales textuales del item en minúsculas.
func signalText(item *entity.Item) string {
	return strings.ToLower(item.Name + strings.Join(item.Tags, "") + item.SalesTalk)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
