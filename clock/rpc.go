package clock

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	clockv1 "git.fiblab.net/sim/protos/v2/go/city/clock/v1"
	"git.fiblab.net/sim/protos/v2/go/city/clock/v1/clockv1connect"
	"git.fiblab.net/sim/syncer/v3"
)

// Register 将ClockService注册到sidecar
// 功能：注册时钟服务的RPC处理器到sidecar中
// 参数：sidecar-sidecar实例
func (c *Clock) Register(sidecar *syncer.Sidecar) {
	sidecar.Register(clockv1connect.ClockServiceName, c.Handler())
}

// Handler 时钟服务的handler构造函数
func (c *Clock) Handler() func(opts ...connect.HandlerOption) (pattern string, handler http.Handler) {
	return func(opts ...connect.HandlerOption) (string, http.Handler) {
		return clockv1connect.NewClockServiceHandler(c, opts...)
	}
}

// Now 获取当前仿真时间
// 功能：RPC接口，返回当前仿真时间（秒）
func (c *Clock) Now(ctx context.Context, in *connect.Request[clockv1.NowRequest]) (*connect.Response[clockv1.NowResponse], error) {
	return connect.NewResponse(&clockv1.NowResponse{
		T: c.T,
	}), nil
}
