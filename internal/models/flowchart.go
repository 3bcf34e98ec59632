package models

import "github.com/hackflow/hackflow-api/pkg/flowchart"

// Flowchart is the node graph rendered next to a generated idea
type Flowchart = flowchart.Flowchart
