package types

// ExportData is the document written by the JSON exporter.
type ExportData struct {
	ReferenceDate string                      `json:"reference_date"`
	Seed          int64                       `json:"seed"`
	Version       string                      `json:"version"`
	Counts        map[string]int              `json:"counts"`
	Tables        map[string][]map[string]any `json:"tables"`
}

// Manifest describes an exported dataset directory. It is written next to the
// table files and uploaded with them.
type Manifest struct {
	ReferenceDate string         `json:"reference_date"`
	Seed          int64          `json:"seed"`
	Format        string         `json:"format"`
	Files         []string       `json:"files"`
	Counts        map[string]int `json:"counts"`
}
