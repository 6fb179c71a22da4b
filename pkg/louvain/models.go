package louvain

// Result contains the complete output of a solver run.
type Result struct {
	Membership []int       `json:"membership"` // leaf vertex key -> top-level community id
	Iterations int         `json:"iterations"` // local-moving sweeps across all passes
	Passes     int         `json:"passes"`     // aggregation passes performed
	Modularity float64     `json:"modularity"`
	RuntimeMS  int64       `json:"runtime_ms"`
	Levels     []LevelInfo `json:"levels"`
}

// LevelInfo records one pass of the move/aggregate loop.
type LevelInfo struct {
	Level       int     `json:"level"`
	Vertices    int     `json:"vertices"`
	Communities int     `json:"communities"`
	Iterations  int     `json:"iterations"`
	Modularity  float64 `json:"modularity"`
	RuntimeMS   int64   `json:"runtime_ms"`
}

// VertexPair names one endpoint pair of a batch update. Batches are
// undirected: a logical edge appears as both (u,v) and (v,u), each batch
// sorted by source vertex.
type VertexPair struct {
	U int `json:"u"`
	V int `json:"v"`
}
