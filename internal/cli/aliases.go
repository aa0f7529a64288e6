package cli

import "github.com/tengjizhang/demarcate/internal/model"

type OutputFormat = model.OutputFormat
type Conversion = model.Conversion
type Region = model.Region
type EditorSession = model.EditorSession

const (
	OutputText = model.OutputText
	OutputJSON = model.OutputJSON
)
