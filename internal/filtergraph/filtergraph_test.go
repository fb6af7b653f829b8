package filtergraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChain_LabelNumbering(t *testing.T) {
	c := NewChain(3)
	c.Append("crop=1920:800:0:140")
	c.Append("hqdn3d")
	c.Append("format=nv12|vaapi,hwupload")

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "0:vf:3-3", c.FinalLabel())
	assert.Equal(t,
		"[0:v:3]crop=1920:800:0:140[0:vf:3-1];"+
			"[0:vf:3-1]hqdn3d[0:vf:3-2];"+
			"[0:vf:3-2]format=nv12|vaapi,hwupload[0:vf:3-3]",
		c.String())
}

func TestChain_Empty(t *testing.T) {
	c := NewChain(0)

	assert.True(t, c.Empty())
	assert.Equal(t, "", c.String())
	assert.Equal(t, "0:v:0", c.FinalLabel())
}

func TestChain_SingleSegment(t *testing.T) {
	c := NewChain(0)
	c.Append("scale=1280:-2")

	assert.Equal(t, "0:vf:0-1", c.FinalLabel())
	assert.Equal(t, "[0:v:0]scale=1280:-2[0:vf:0-1]", c.String())
}

func TestSegment_String(t *testing.T) {
	seg := Segment{Input: "0:v:1", Expr: "crop=100:100:0:0", Output: "0:vf:1-1"}
	assert.Equal(t, "[0:v:1]crop=100:100:0:0[0:vf:1-1]", seg.String())
}
