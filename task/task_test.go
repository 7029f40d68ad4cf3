package task_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"git.fiblab.net/sim/syncer/v3"
	"github.com/OpenHUTB/carla-0.9.14/task"
	"github.com/OpenHUTB/carla-0.9.14/utils/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	metadataFile  = "../metadata/testdata/signals_v4.rrdata.xml"
	openDriveFile = "../metadata/testdata/signals.xodr"
	jID           = "{bbbbbbbb-0000-0000-0000-000000000001}"
	sigB          = "{22222222-2222-2222-2222-222222222222}"
)

func newConfig(mode string, file string) config.Config {
	return config.Config{
		Input: config.Input{
			Metadata:  config.InputPath{File: file},
			OpenDrive: &config.InputPath{File: openDriveFile},
		},
		Control: config.Control{
			Step:       config.ControlStep{Total: 55, Interval: 0.1},
			ImportMode: mode,
			Metrics:    true,
		},
	}
}

func run(t *testing.T, c config.Config) *task.Context {
	t.Helper()
	sidecar := syncer.NewSidecar(task.SelfName, "", "")
	ctx, err := task.NewContext(context.Background(), t.TempDir(), c, sidecar, false)
	require.NoError(t, err)
	require.NoError(t, ctx.Run())
	return ctx
}

func TestRunAllModes(t *testing.T) {
	for _, mode := range []string{"blueprint", "level", "datasmith"} {
		t.Run(mode, func(t *testing.T) {
			ctx := run(t, newConfig(mode, metadataFile))
			assert.Equal(t, int32(55), ctx.Clock().Step)
			ctrl := ctx.Controller()
			assert.Equal(t, []string{jID}, ctrl.JunctionIDs())
			j, ok := ctrl.Junction(jID)
			require.True(t, ok)
			// 5.5秒时处于第二个相位
			assert.Equal(t, 1, j.CurrentPhase())
			assert.Equal(t, 0, j.CurrentInterval())
			s, ok := ctrl.Signal(sigB)
			require.True(t, ok)
			assert.Equal(t, 2, s.Configuration())
			id, ok := ctrl.ResolveOpenDriveID(20)
			require.True(t, ok)
			assert.Equal(t, sigB, id)
		})
	}
}

func TestRunMalformedMetadata(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.rrdata.xml")
	require.NoError(t, os.WriteFile(file, []byte(`<RoadRunnerMetadata Version="4"/>`), 0o644))
	ctx := run(t, newConfig("level", file))
	assert.Nil(t, ctx.Scene())
	assert.Empty(t, ctx.Controller().JunctionIDs())
	assert.Empty(t, ctx.Controller().SignalIDs())
}

func TestNewContextMissingInput(t *testing.T) {
	sidecar := syncer.NewSidecar(task.SelfName, "", "")
	_, err := task.NewContext(context.Background(), "", newConfig("level", "not-exist.xml"), sidecar, false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
