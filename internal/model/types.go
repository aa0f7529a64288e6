package model

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

type Conversion struct {
	Source   string `json:"source"`
	Selector string `json:"selector"`
	Engine   string `json:"engine"`
	Markdown string `json:"markdown"`
}

type Region struct {
	Index   int    `json:"index"`
	Tag     string `json:"tag"`
	Path    string `json:"path"`
	Preview string `json:"preview"`
}

type EditorSession struct {
	Source   string `json:"source"`
	Region   Region `json:"region"`
	Markdown string `json:"markdown"`
}
