package utils

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// EmployeeIDProvider issues unique operator identifiers.
type EmployeeIDProvider interface {
	NextEmployeeID() string
}

type snowflakeIDProvider struct {
	node *snowflake.Node
}

// NewEmployeeIDProvider builds a snowflake-backed provider. NodeID must be
// unique per running instance.
func NewEmployeeIDProvider(nodeID int64) (EmployeeIDProvider, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("init snowflake node failed: %w", err)
	}
	return &snowflakeIDProvider{node: node}, nil
}

func (p *snowflakeIDProvider) NextEmployeeID() string {
	return "EMP" + p.node.Generate().String()
}
