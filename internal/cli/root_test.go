package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cosmors/interaction"
)

const systemYAML = `
model:
  sw_useSegmentReferenceStateForInteractionMatrix: true
  sw_calculateContactStatisticsAndAdditionalProperties: 1
  partial_interaction_matrices: [E_mf, G_hb]
runtime:
  workers: 2
log:
  level: error
molecules: 2
temperatures: [298.15]
segments:
  - {molecule: 0, group: 1, sigma: -0.012, hb: 1, area: 2.5}
  - {molecule: 0, group: 1, sigma: 0.001, area: 7}
  - {molecule: 1, group: 1, sigma: 0.011, hb: 2, area: 1.5}
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "system.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestNewRootCommand_Structure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "cosmors", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))

	var sub *cobra.Command
	for _, c := range cmd.Commands() {
		if c.Name() == "matrix" {
			sub = c
		}
	}
	require.NotNil(t, sub)
	assert.NotNil(t, sub.Flags().Lookup("temperature"))
	assert.NotNil(t, sub.Flags().Lookup("print"))
}

func TestMatrix_ConfigTemperatures(t *testing.T) {
	out, err := run(t, "matrix", "-c", writeConfig(t, systemYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "T=298.15 K  types=3  neutral=[0,3)  partials=2")
	assert.Contains(t, out, "(built)")
}

func TestMatrix_RepeatedTemperatureHitsCache(t *testing.T) {
	out, err := run(t, "matrix", "-c", writeConfig(t, systemYAML),
		"--temperature", "300", "--temperature", "350", "--temperature", "300")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "T=300 K"))
	assert.True(t, strings.HasSuffix(lines[0], "(built)"))
	assert.True(t, strings.HasPrefix(lines[1], "T=350 K"))
	assert.True(t, strings.HasSuffix(lines[2], "(cached)"))
}

func TestMatrix_Print(t *testing.T) {
	out, err := run(t, "matrix", "-c", writeConfig(t, systemYAML), "--print")
	require.NoError(t, err)
	// Three rows of the mirrored 3×3 matrix follow the summary line.
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 4)
}

func TestMatrix_Errors(t *testing.T) {
	_, err := run(t, "matrix", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := `
log: {level: error}
segments:
  - {group: 1, sigma: -0.02, hb: 2, area: 1}
  - {group: 1, sigma: 0.02, hb: 1, area: 1}
`
	_, err = run(t, "matrix", "-c", writeConfig(t, bad))
	require.ErrorIs(t, err, interaction.ErrHBOrientation)
}

func TestGetCLIContext_Missing(t *testing.T) {
	_, err := GetCLIContext(&cobra.Command{})
	require.ErrorIs(t, err, errNoContext)
}
