package controller_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/OpenHUTB/carla-0.9.14/entity/controller"
	"github.com/OpenHUTB/carla-0.9.14/entity/junction"
	trafficv1 "github.com/OpenHUTB/carla-0.9.14/gen/roadrunner/traffic/v1"
	"github.com/OpenHUTB/carla-0.9.14/gen/roadrunner/traffic/v1/trafficv1connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, c *controller.TrafficController) trafficv1connect.TrafficServiceClient {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle(c.Handler()())
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return trafficv1connect.NewTrafficServiceClient(srv.Client(), srv.URL)
}

func TestRPCSetSignalStateIsQueued(t *testing.T) {
	w := newWorld(t)
	client := serve(t, w.ctrl)
	res, err := client.SetSignalState(context.Background(), connect.NewRequest(&trafficv1.SetSignalStateRequest{
		SignalId: sigB, Configuration: 1, ManualControl: true,
	}))
	require.NoError(t, err)
	assert.True(t, res.Msg.Queued)
	assert.Equal(t, 1, w.ctrl.Pending())
	assert.Equal(t, junction.Cycling, w.j.State())

	w.ctrl.Update(0.1)
	assert.Equal(t, junction.Held, w.j.State())
	assert.Equal(t, []bool{false, true, false}, lamps(t, w.ownerB))

	// 未知id同样返回成功，应用时告警
	res, err = client.SetSignalStateOpenDrive(context.Background(), connect.NewRequest(&trafficv1.SetSignalStateOpenDriveRequest{OpendriveId: 999}))
	require.NoError(t, err)
	assert.True(t, res.Msg.Queued)
	assert.NotPanics(t, func() { w.ctrl.Update(0.1) })
}

func TestRPCGetJunction(t *testing.T) {
	w := newWorld(t)
	w.ctrl.Update(5.1)
	w.ctrl.Prepare()
	client := serve(t, w.ctrl)
	res, err := client.GetJunction(context.Background(), connect.NewRequest(&trafficv1.GetJunctionRequest{JunctionId: jID}))
	require.NoError(t, err)
	assert.Equal(t, jID, res.Msg.JunctionId)
	assert.Equal(t, "cycling", res.Msg.State)
	assert.Equal(t, int32(1), res.Msg.Phase)
	assert.True(t, res.Msg.AutoMode)
	assert.Equal(t, []string{sigA, sigB}, res.Msg.SignalIds)

	_, err = client.GetJunction(context.Background(), connect.NewRequest(&trafficv1.GetJunctionRequest{JunctionId: "missing"}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := controller.NewMetrics(reg)
	require.NoError(t, err)
	w := newWorld(t, controller.WithMetrics(m))
	w.ctrl.Update(5.1)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "roadrunner_signal_commands_total")
	assert.Contains(t, string(body), "roadrunner_junction_interval_advances_total")
}
