package dispatch

import "path/filepath"

// Resolution — разрешённый обработчик.
type Resolution struct {
	// Handler — валидированное имя обработчика.
	Handler string

	// ScriptPath — путь скрипта: script_root/handler.
	ScriptPath string
}

// Resolve извлекает имя обработчика из заголовков и строит путь скрипта.
//
// Возвращает false, если ключ отсутствует или значение не проходит
// валидацию — это штатный исход (сообщение без обработчика), не ошибка.
//
// Валидация выполняется до построения пути: алфавитно-цифровой
// allow-list исключает разделители путей и "..", поэтому результат
// никогда не выходит за пределы scriptRoot. Существование файла здесь
// не проверяется — это выяснится при запуске.
func Resolve(headers map[string]string, handlerKey, scriptRoot string) (Resolution, bool) {
	name, ok := headers[handlerKey]
	if !ok {
		return Resolution{}, false
	}

	if !ValidHandlerName(name) {
		return Resolution{}, false
	}

	return Resolution{
		Handler:    name,
		ScriptPath: filepath.Join(scriptRoot, name),
	}, true
}

// ValidHandlerName проверяет имя обработчика: один и более символов
// из [A-Za-z0-9]. Пустая строка невалидна.
func ValidHandlerName(name string) bool {
	if name == "" {
		return false
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}

	return true
}
