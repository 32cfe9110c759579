package constants

// --- СТАТУСЫ ЗАКАЗОВ (Совпадает с кодами в хранилище) ---
const (
	StatusReceived   = "received"
	StatusInProgress = "in_progress"
	StatusReady      = "ready"
	StatusCompleted  = "completed"
)

// Жизненный цикл заказа. Переходы идут только вперёд по этой
// последовательности; хранилище само по себе это не проверяет,
// последовательность — подсказка для админки.
var StatusSequence = []string{
	StatusReceived,
	StatusInProgress,
	StatusReady,
	StatusCompleted,
}

var StatusLabels = map[string]string{
	StatusReceived:   "Принят",
	StatusInProgress: "В работе",
	StatusReady:      "Готов к выдаче",
	StatusCompleted:  "Выдан",
}

var StatusColors = map[string]string{
	StatusReceived:   "bg-gray-100 text-gray-800",
	StatusInProgress: "bg-blue-100 text-blue-800",
	StatusReady:      "bg-green-100 text-green-800",
	StatusCompleted:  "bg-purple-100 text-purple-800",
}

// Статусы, при которых заказ считается активным для дашборда.
var ActiveStatuses = []string{
	StatusReceived,
	StatusInProgress,
}

// Статусы, о которых уведомляем клиента.
var NotifiableStatuses = []string{
	StatusReady,
	StatusCompleted,
}

func IsValidStatus(code string) bool {
	for _, s := range StatusSequence {
		if s == code {
			return true
		}
	}
	return false
}

func IsNotifiableStatus(code string) bool {
	for _, s := range NotifiableStatuses {
		if s == code {
			return true
		}
	}
	return false
}

// NextStatus возвращает следующий статус в цикле и false для терминального.
func NextStatus(code string) (string, bool) {
	for i, s := range StatusSequence {
		if s == code && i+1 < len(StatusSequence) {
			return StatusSequence[i+1], true
		}
	}
	return "", false
}
