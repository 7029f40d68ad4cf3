package controller

import "sync"

// CommandKind 外部指令类型
type CommandKind int

const (
	SetSignalState CommandKind = iota
	SetSignalStateOpenDrive
)

// Command 外部下发的信号灯指令，在下一次Update开始时应用
type Command struct {
	Kind          CommandKind
	SignalID      string // Kind为SetSignalState时使用
	OpenDriveID   int    // Kind为SetSignalStateOpenDrive时使用
	Configuration int
	ManualControl bool
}

// commandQueue 外部指令缓冲区，RPC协程写入，仿真协程取出
type commandQueue struct {
	mtx      sync.Mutex
	commands []Command
}

func (q *commandQueue) push(c Command) {
	q.mtx.Lock()
	defer q.mtx.Unlock()
	q.commands = append(q.commands, c)
}

func (q *commandQueue) drain() []Command {
	q.mtx.Lock()
	defer q.mtx.Unlock()
	res := q.commands
	q.commands = nil
	return res
}

func (q *commandQueue) len() int {
	q.mtx.Lock()
	defer q.mtx.Unlock()
	return len(q.commands)
}
