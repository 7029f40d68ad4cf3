// signalctl 通过RPC向运行中的信控服务下发指令或查询状态
//
// 用法：
//
//	signalctl [--server URL] set <signal-id> <configuration> [--manual]
//	signalctl [--server URL] set-od <opendrive-id> <configuration> [--manual]
//	signalctl [--server URL] junction <junction-id>
//	signalctl [--server URL] now
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"connectrpc.com/connect"
	"git.fiblab.net/general/common/v2/httputil"
	clockv1 "git.fiblab.net/sim/protos/v2/go/city/clock/v1"
	"git.fiblab.net/sim/protos/v2/go/city/clock/v1/clockv1connect"
	easy "git.fiblab.net/utils/logrus-easy-formatter"
	trafficv1 "github.com/OpenHUTB/carla-0.9.14/gen/roadrunner/traffic/v1"
	"github.com/OpenHUTB/carla-0.9.14/gen/roadrunner/traffic/v1/trafficv1connect"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var (
	server  = pflag.String("server", "http://localhost:51102", "roadrunner rpc address")
	manual  = pflag.Bool("manual", false, "hold the junction of the signal in manual control")
	timeout = pflag.Duration("timeout", 5*time.Second, "rpc timeout")

	log = logrus.WithField("module", "signalctl")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: signalctl [flags] set <signal-id> <configuration> | set-od <opendrive-id> <configuration> | junction <junction-id> | now\n")
	pflag.PrintDefaults()
}

// msg 取出响应消息
func msg[T any, PT interface {
	proto.Message
	*T
}](res *connect.Response[T], err error) (proto.Message, error) {
	if err != nil {
		return nil, err
	}
	return PT(res.Msg), nil
}

// run 执行子命令，返回待打印的响应
func run(ctx context.Context, args []string) (proto.Message, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing command")
	}
	httpClient := httputil.NewInsecureHTTP2Client()
	traffic := trafficv1connect.NewTrafficServiceClient(httpClient, *server, connect.WithGRPC())
	switch cmd, rest := args[0], args[1:]; cmd {
	case "set", "set-od":
		if len(rest) != 2 {
			return nil, fmt.Errorf("%s needs <id> <configuration>", cmd)
		}
		configuration, err := strconv.ParseInt(rest[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad configuration %q: %w", rest[1], err)
		}
		if cmd == "set" {
			return msg(traffic.SetSignalState(ctx, connect.NewRequest(&trafficv1.SetSignalStateRequest{
				SignalId:      rest[0],
				Configuration: int32(configuration),
				ManualControl: *manual,
			})))
		}
		odID, err := strconv.ParseInt(rest[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad opendrive id %q: %w", rest[0], err)
		}
		return msg(traffic.SetSignalStateOpenDrive(ctx, connect.NewRequest(&trafficv1.SetSignalStateOpenDriveRequest{
			OpendriveId:   int32(odID),
			Configuration: int32(configuration),
			ManualControl: *manual,
		})))
	case "junction":
		if len(rest) != 1 {
			return nil, fmt.Errorf("junction needs <junction-id>")
		}
		return msg(traffic.GetJunction(ctx, connect.NewRequest(&trafficv1.GetJunctionRequest{JunctionId: rest[0]})))
	case "now":
		clk := clockv1connect.NewClockServiceClient(httpClient, *server, connect.WithGRPC())
		return msg(clk.Now(ctx, connect.NewRequest(&clockv1.NowRequest{})))
	default:
		return nil, fmt.Errorf("unknown command %q", cmd)
	}
}

func main() {
	pflag.Usage = usage
	pflag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	res, err := run(ctx, pflag.Args())
	if err != nil {
		if connect.CodeOf(err) == connect.CodeUnknown {
			usage()
		}
		log.Fatal(err)
	}
	out, err := protojson.MarshalOptions{Multiline: true, EmitUnpopulated: true}.Marshal(res)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
