package controller

import (
	"context"
	"fmt"
	"net/http"

	"connectrpc.com/connect"
	"git.fiblab.net/sim/syncer/v3"
	trafficv1 "github.com/OpenHUTB/carla-0.9.14/gen/roadrunner/traffic/v1"
	"github.com/OpenHUTB/carla-0.9.14/gen/roadrunner/traffic/v1/trafficv1connect"
)

// trafficService TrafficService的实现
// 说明：控制器自身的SetSignalState用于路口回调，RPC方法单独放在这里
type trafficService struct {
	c *TrafficController
}

var _ trafficv1connect.TrafficServiceHandler = (*trafficService)(nil)

// Handler 信控服务的handler构造函数
func (c *TrafficController) Handler() func(opts ...connect.HandlerOption) (pattern string, handler http.Handler) {
	return func(opts ...connect.HandlerOption) (string, http.Handler) {
		return trafficv1connect.NewTrafficServiceHandler(&trafficService{c: c}, opts...)
	}
}

// Register 将信控服务注册到sidecar
// 功能：注册信控服务与/metrics
// 参数：sidecar-同步器侧车实例
// 说明：/metrics不需要读写锁
func (c *TrafficController) Register(sidecar *syncer.Sidecar) {
	sidecar.Register(trafficv1connect.TrafficServiceName, c.Handler())
	if c.metrics != nil {
		sidecar.Register(
			"metrics",
			func(opts ...connect.HandlerOption) (pattern string, handler http.Handler) {
				return "/metrics", c.metrics.Handler()
			},
			syncer.WithNoLock(),
		)
	}
}

// SetSignalState RPC接口：按信号灯id设置配置
// 说明：只进入队列，未知id在应用时告警
func (s *trafficService) SetSignalState(
	ctx context.Context, in *connect.Request[trafficv1.SetSignalStateRequest],
) (*connect.Response[trafficv1.SetSignalStateResponse], error) {
	req := in.Msg
	s.c.Enqueue(Command{
		Kind:          SetSignalState,
		SignalID:      req.SignalId,
		Configuration: int(req.Configuration),
		ManualControl: req.ManualControl,
	})
	return connect.NewResponse(&trafficv1.SetSignalStateResponse{Queued: true}), nil
}

// SetSignalStateOpenDrive RPC接口：按OpenDRIVE信号灯id设置配置
func (s *trafficService) SetSignalStateOpenDrive(
	ctx context.Context, in *connect.Request[trafficv1.SetSignalStateOpenDriveRequest],
) (*connect.Response[trafficv1.SetSignalStateResponse], error) {
	req := in.Msg
	s.c.Enqueue(Command{
		Kind:          SetSignalStateOpenDrive,
		OpenDriveID:   int(req.OpendriveId),
		Configuration: int(req.Configuration),
		ManualControl: req.ManualControl,
	})
	return connect.NewResponse(&trafficv1.SetSignalStateResponse{Queued: true}), nil
}

// GetJunction RPC接口：获取路口在上一次Prepare时的状态
func (s *trafficService) GetJunction(
	ctx context.Context, in *connect.Request[trafficv1.GetJunctionRequest],
) (*connect.Response[trafficv1.GetJunctionResponse], error) {
	j, ok := s.c.Junction(in.Msg.JunctionId)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("junction %s does not exist", in.Msg.JunctionId))
	}
	snap := j.GetSnapshot()
	return connect.NewResponse(&trafficv1.GetJunctionResponse{
		JunctionId: snap.ID,
		State:      snap.State.String(),
		Phase:      int32(snap.Phase),
		Interval:   int32(snap.Interval),
		Timer:      snap.Timer,
		AutoMode:   snap.AutoMode,
		SignalIds:  j.SignalIDs(),
	}), nil
}
