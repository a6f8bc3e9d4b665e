package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agentstation/utc"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoreleave/shoreleave/pkg/errors"
	"github.com/shoreleave/shoreleave/pkg/reconcile"
)

func sampleOutcomes() []reconcile.Outcome {
	return []reconcile.Outcome{
		{Name: "Snorkel Tour", Action: reconcile.ActionSkipped, EntryID: "e1", At: utc.Now()},
		{Name: "Lava Tube Hike", Action: reconcile.ActionCreated, EntryID: "e2", At: utc.Now()},
		{Name: "Catamaran Sail", Action: reconcile.ActionFailed, Err: errors.New("store rejected page"), At: utc.Now()},
	}
}

func TestNewRunAggregatesTotals(t *testing.T) {
	run := NewRun("Cozumel", "gemini-2.5-flash", sampleOutcomes())

	assert.Equal(t, "Cozumel", run.Destination)
	assert.Equal(t, Totals{Skipped: 1, Created: 1, Failed: 1, Total: 3}, run.Totals)
	require.Len(t, run.Outcomes, 3)

	assert.Equal(t, "skipped", run.Outcomes[0].Action)
	assert.Empty(t, run.Outcomes[0].Error)
	assert.Equal(t, "store rejected page", run.Outcomes[2].Error)
	assert.Empty(t, run.Outcomes[2].EntryID)
}

func TestRenderRoundTrips(t *testing.T) {
	run := NewRun("Cozumel", "", sampleOutcomes())

	data, err := run.Render()
	require.NoError(t, err)

	var decoded Run
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	assert.Equal(t, run.Destination, decoded.Destination)
	assert.Equal(t, run.Totals, decoded.Totals)
	require.Len(t, decoded.Outcomes, 3)
	assert.Equal(t, "Lava Tube Hike", decoded.Outcomes[1].Name)

	// Empty model is omitted entirely.
	assert.NotContains(t, string(data), "model:")
}

func TestWriteCreatesFile(t *testing.T) {
	run := NewRun("Cozumel", "gemini-2.5-flash", sampleOutcomes())
	path := filepath.Join(t.TempDir(), "run.yaml")

	require.NoError(t, run.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "destination: Cozumel")
	assert.Contains(t, string(data), "name: Snorkel Tour")
}
