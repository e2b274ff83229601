package anim

// TickFunc 每帧动画回调
// 参数 dt 为距上一帧的时间增量（秒），返回 true 表示任务完成
type TickFunc func(dt float64) bool

// Task 调度器中的一个动画任务句柄
// 用于取消任务以及检测任务是否仍在运行
type Task struct {
	fn       TickFunc
	finished bool
}

// Finished 任务是否已结束（完成或被取消）
func (t *Task) Finished() bool {
	return t.finished
}

// Scheduler 帧驱动动画调度器
// 宿主每帧调用一次 Update(dt)，调度器推进所有活动任务。
//
// 所有方法必须在同一个 UI/帧线程上调用，调度器本身不做加锁。
type Scheduler struct {
	tasks []*Task
}

// NewScheduler 创建动画调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks: make([]*Task, 0),
	}
}

// Add 注册一个每帧回调任务
// 返回任务句柄，可用于 Cancel
func (s *Scheduler) Add(fn TickFunc) *Task {
	task := &Task{fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

// Cancel 同步取消任务
// 已结束或 nil 任务为无害空操作
func (s *Scheduler) Cancel(task *Task) {
	if task == nil || task.finished {
		return
	}
	task.finished = true
	s.removeFinished()
}

// Update 推进所有活动任务（每帧调用一次）
// 参数：
//   - dt: 时间增量（秒）
func (s *Scheduler) Update(dt float64) {
	// 在副本上迭代：任务回调可能注册新任务或取消任务
	active := make([]*Task, len(s.tasks))
	copy(active, s.tasks)

	for _, task := range active {
		if task.finished {
			continue
		}
		if task.fn(dt) {
			task.finished = true
		}
	}

	s.removeFinished()
}

// Len 当前活动任务数
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// removeFinished 清理已结束的任务
func (s *Scheduler) removeFinished() {
	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if !task.finished {
			kept = append(kept, task)
		}
	}
	s.tasks = kept
}
