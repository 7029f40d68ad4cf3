package task

import (
	"flag"
)

const (
	SelfName = "roadrunner" // 本程序在模拟任务集群中的名字
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100, "心跳日志间隔步数")
)

// prepare 准备阶段，每步执行一次
// 功能：推进时钟并生成路口快照
// 说明：快照供update阶段并发执行的RPC读取
func (t *Context) prepare() {
	t.clock.Tick()
	log.Debugf("step %d: prepare", t.clock.Step)

	if *heartBeatInterval > 0 && t.clock.Step%int32(*heartBeatInterval) == 0 {
		log.Infof(
			"STEP: %d(%s) pending commands: %d",
			t.clock.Step, t.clock.String(), t.controller.Pending(),
		)
	}

	t.controller.Prepare()
}

// update 更新阶段，每步执行一次
// 功能：应用外部指令并推进各路口的时段计时
func (t *Context) update() {
	t.controller.Update(t.clock.DT)
}

// Run 运行
// 功能：导入场景后按prepare、update交替推进，直到达到结束步或收到退出指令
// 返回：导入失败时返回错误
func (t *Context) Run() error {
	defer t.Close()
	if err := t.Init(); err != nil {
		return err
	}
	// init syncer
	t.sidecar.Step(false)
	for {
		t.prepare()
		// 通知准备阶段完成
		t.sidecar.NotifyStepReady()
		t.update()
		log.Debugf("step %d: update complete", t.clock.Step)
		close := t.sidecar.Step(t.clock.Done())
		if close || t.stopped.Load() {
			break
		}
	}
	log.Infof("engine complete at %s", t.clock)
	return nil
}
