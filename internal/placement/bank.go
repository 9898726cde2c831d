package placement

import "github.com/example/vocabu/pkg/models"

// bankEntry is one term/translation pair with a difficulty weight (1-3)
type bankEntry struct {
	Term        string
	Translation string
	Weight      int
}

// Per-context question banks. 15 unique pairs each; the quiz samples and
// shuffles them.
var banks = map[string][]bankEntry{
	models.ContextLaw: {
		{"contract", "договор", 1},
		{"judge", "судья", 1},
		{"evidence", "доказательство", 2},
		{"lawsuit", "иск", 2},
		{"defendant", "ответчик", 2},
		{"plaintiff", "истец", 3},
		{"verdict", "вердикт", 2},
		{"appeal", "апелляция", 2},
		{"fine", "штраф", 1},
		{"trial", "судебный процесс", 1},
		{"witness", "свидетель", 1},
		{"clause", "пункт (договора)", 3},
		{"liability", "ответственность", 3},
		{"settlement", "урегулирование", 3},
		{"copyright", "авторское право", 2},
	},
	models.ContextTravel: {
		{"boarding pass", "посадочный талон", 1},
		{"reservation", "бронь", 1},
		{"departure", "вылет", 1},
		{"arrival", "прилет", 1},
		{"customs", "таможня", 2},
		{"luggage", "багаж", 1},
		{"gate", "выход на посадку", 1},
		{"transfer", "пересадка", 2},
		{"visa", "виза", 1},
		{"currency exchange", "обмен валюты", 2},
		{"itinerary", "маршрут", 3},
		{"delayed", "задержан", 2},
		{"check-in", "регистрация", 1},
		{"security", "досмотр", 2},
		{"terminal", "терминал", 1},
	},
	models.ContextIT: {
		{"deployment", "развертывание", 2},
		{"middleware", "промежуточное ПО", 3},
		{"version control", "система контроля версий", 2},
		{"commit", "коммит", 1},
		{"branch", "ветка", 1},
		{"merge", "слияние", 2},
		{"build", "сборка", 1},
		{"dependency", "зависимость", 2},
		{"endpoint", "конечная точка", 2},
		{"API", "интерфейс программирования", 1},
		{"database", "база данных", 1},
		{"query", "запрос", 1},
		{"cache", "кэш", 2},
		{"latency", "задержка", 3},
		{"scalability", "масштабируемость", 3},
	},
	models.ContextSenior: {
		{"museum", "музей", 1},
		{"guide", "экскурсовод", 2},
		{"reservation", "бронь", 2},
		{"smartphone", "смартфон", 1},
		{"message", "сообщение", 1},
		{"password", "пароль", 1},
		{"grocery", "продукты", 2},
		{"neighbour", "сосед", 2},
		{"repair", "ремонт", 2},
		{"grandchildren", "внуки", 1},
		{"celebrate", "праздновать", 2},
		{"invitation", "приглашение", 3},
		{"memory", "память", 1},
		{"course", "курс", 1},
		{"language", "язык", 1},
	},
}

// Bank returns the question bank for a context, defaulting to travel for
// unknown contexts.
func Bank(context string) []bankEntry {
	if b, ok := banks[context]; ok {
		return b
	}
	return banks[models.ContextTravel]
}

// Contexts lists the supported learning contexts.
func Contexts() []string {
	return []string{models.ContextLaw, models.ContextTravel, models.ContextIT, models.ContextSenior}
}
