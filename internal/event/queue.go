// internal/event/queue.go
package event

// Queues — события одного тика. Пишет верхняя стадия конвейера, читают нижние;
// Reset вызывается перед следующим тиком, между тиками ничего не переносится.
type Queues struct {
	Damage  []DamageEvent
	Death   []DeathEvent
	LevelUp []LevelUpEvent

	// Для внешних подписчиков, симуляция их не читает.
	Spawned []EnemySpawnedData
	Killed  []EnemyKilledData
	Levels  []LevelUpData
}

// NewQueues создаёт пустые очереди.
func NewQueues() *Queues {
	return &Queues{}
}

// Reset опустошает очереди, сохраняя выделенную память.
func (q *Queues) Reset() {
	q.Damage = q.Damage[:0]
	q.Death = q.Death[:0]
	q.LevelUp = q.LevelUp[:0]
	q.Spawned = q.Spawned[:0]
	q.Killed = q.Killed[:0]
	q.Levels = q.Levels[:0]
}

// Empty сообщает, что в очередях ничего нет.
func (q *Queues) Empty() bool {
	return len(q.Damage) == 0 && len(q.Death) == 0 && len(q.LevelUp) == 0 &&
		len(q.Spawned) == 0 && len(q.Killed) == 0 && len(q.Levels) == 0
}
