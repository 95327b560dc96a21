package garam

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bclarenc/garam/topology"
)

func TestVersion(t *testing.T) {
	assert := require.New(t)
	assert.NotEmpty(Version.String())
}

func TestShapes(t *testing.T) {
	assert := require.New(t)
	assert.Equal([]topology.Shape{topology.Cycle, topology.Grid}, Shapes())
}
