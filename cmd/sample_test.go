// Filename: cmd/sample_test.go
package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftline/rbcore/internal/sampler"
	"github.com/driftline/rbcore/vecmath"
)

func TestWriteSampleText(t *testing.T) {
	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)

	batch := []vecmath.Vec3{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 2, Z: 0}}
	summary := sampler.Summarize(batch)
	writeSampleText(c, sampleResult{Vectors: batch, Summary: &summary})

	out := buf.String()
	assert.Contains(t, out, "count=2")
	assert.Contains(t, out, "mean_mag=1.5")
	assert.Contains(t, out, "max_mag=2")
}

func TestWriteJSON(t *testing.T) {
	prev := cfg.Output
	t.Cleanup(func() { cfg.Output = prev })

	cfg.Output.Format = "json"
	cfg.Output.Pretty = false

	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)

	summary := sampler.Summarize([]vecmath.Vec3{{X: 3, Y: 4, Z: 0}})
	require.NoError(t, writeJSON(c, sampleResult{Summary: &summary}))

	out := buf.String()
	assert.Contains(t, out, `"count":1`)
	assert.Contains(t, out, `"mean_mag":5`)
	assert.NotContains(t, out, `"vectors"`)
}
