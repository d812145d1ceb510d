// Package contentfilter реализует простую проверку текста на запрещённые слова.
// Используется модерацией чата: сообщение с запрещённым словом отклоняется
// до записи в хранилище.
package contentfilter

import "strings"

// Filter проверяет текст по списку запрещённых слов (без учёта регистра,
// по вхождению подстроки).
type Filter struct {
	badWords []string
}

// DefaultBadWords — базовый список запрещённых слов.
// TODO: вынести список в конфигурацию, чтобы модераторы могли пополнять его без релиза.
var DefaultBadWords = []string{
	"badword1", "badword2", "offensive1", "offensive2", "spamword",
}

// New создает фильтр с заданным списком слов. Пустой список допустим —
// такой фильтр ничего не блокирует.
func New(badWords []string) *Filter {
	words := make([]string, len(badWords))
	for i, w := range badWords {
		words[i] = strings.ToLower(w)
	}
	return &Filter{badWords: words}
}

// Contains сообщает, содержит ли текст хотя бы одно запрещённое слово.
func (f *Filter) Contains(text string) bool {
	textLower := strings.ToLower(text)
	for _, word := range f.badWords {
		if strings.Contains(textLower, word) {
			return true
		}
	}
	return false
}

// Find возвращает все запрещённые слова, найденные в тексте.
func (f *Filter) Find(text string) []string {
	textLower := strings.ToLower(text)
	var found []string
	for _, word := range f.badWords {
		if strings.Contains(textLower, word) {
			found = append(found, word)
		}
	}
	return found
}
