package utilities

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/segmentio/ksuid"
)

// NewKSUID generates a new globally unique KSUID string.
func NewKSUID() string {
	return ksuid.New().String()
}

// NewRequestID generates a correlation id for one inbound request using a
// snowflake node configured via SNOWFLAKE_NODE. If node setup fails it
// falls back to a KSUID string so an id is always produced.
func NewRequestID() string {
	nodeEnv := os.Getenv("SNOWFLAKE_NODE")
	if nodeEnv == "" {
		return NewRequestIDWithNode(1)
	}
	nodeID, err := strconv.ParseInt(nodeEnv, 10, 64)
	if err != nil {
		return NewRequestIDWithNode(1)
	}
	return NewRequestIDWithNode(nodeID)
}

// NewRequestIDWithNode generates a snowflake id string using the provided
// node id, falling back to a KSUID when the node cannot be initialized.
func NewRequestIDWithNode(nodeID int64) string {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return NewKSUID()
	}
	return node.Generate().String()
}
