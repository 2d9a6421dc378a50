package ports

type StoreStats struct {
	Categories     int
	Todos          int
	CompletedTodos int
}

type StatsReporter interface {
	Stats() StoreStats
}
