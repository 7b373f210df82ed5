package pkg

const (
	INVALID_LEVEL = -1
	NO_MATCH      = -1
)

const (
	GRAPH_FILE_EXT           = ".gr"
	SOLUTION_FILE_SUFFIX     = "_2.sol"
	BZIP2_FILE_EXT           = ".bz2"
	DEFAULT_BATCH_WORKERS    = 4
	DEFAULT_EDGE_PROBABILITY = 0.1
)
