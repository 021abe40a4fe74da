package models

// Exercise describes a single exercise as served by the gym API.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Series      int    `json:"series"`
	Repetitions int    `json:"repetitions"`
	Demo        string `json:"demo"`
	Thumb       string `json:"thumb"`
}

// HistoryEntry is one completed exercise in the workout history.
type HistoryEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group"`
	Hour  string `json:"hour"`
}

// HistoryDay groups history entries under a day title, the shape the
// server returns for GET /history.
type HistoryDay struct {
	Title string         `json:"title"`
	Data  []HistoryEntry `json:"data"`
}
