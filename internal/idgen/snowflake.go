package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// snowflakeGenerator 基于 snowflake 的平台订单号生成器，前缀 P 保持收银台链接格式兼容
type snowflakeGenerator struct {
	node   *snowflake.Node
	prefix string
}

// NewSnowflake 初始化指定节点的生成器，nodeID 取值 0~1023
func NewSnowflake(nodeID int64, prefix string) (Generator, error) {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("init snowflake node failed: %w", err)
	}
	return &snowflakeGenerator{node: n, prefix: prefix}, nil
}

func (g *snowflakeGenerator) Next() string {
	return g.prefix + g.node.Generate().String()
}
