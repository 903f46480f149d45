package vm

import (
	"fmt"
	"sort"
)

// Scheduler runs every forked Process to completion using deterministic
// round-robin turn-passing. At most one process's goroutine is ever
// unblocked at a time; RunToCompletion is the single driver loop.
type Scheduler struct {
	nextID   uint64
	runQueue []*Process
	all      []*Process
	sleeping []*sleeper
	tick     int64
}

type sleeper struct {
	proc   *Process
	wakeAt int64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Fork creates a new process that will run block with args once the
// scheduler reaches it, and enqueues it as Ready.
func (s *Scheduler) Fork(interp *Interpreter, block *Block, args []Value) *Process {
	return s.ForkNamed(interp, block, args, "")
}

// ForkNamed is Fork with an explicit human-readable name; an empty name
// is replaced with a generated "Process-N" label.
func (s *Scheduler) ForkNamed(interp *Interpreter, block *Block, args []Value, name string) *Process {
	s.nextID++
	if name == "" {
		name = fmt.Sprintf("Process-%d", s.nextID)
	}
	p := &Process{
		ID:      s.nextID,
		Name:    name,
		State:   ProcReady,
		sched:   s,
		turn:    make(chan struct{}),
		yielded: make(chan yieldReason),
		block:   block,
		args:    args,
		interp:  interp,
	}
	s.all = append(s.all, p)
	s.runQueue = append(s.runQueue, p)
	return p
}

// RunToCompletion drives every runnable and sleeping process until the
// run queue and sleep set are both empty.
func (s *Scheduler) RunToCompletion() {
	for len(s.runQueue) > 0 || len(s.sleeping) > 0 {
		if len(s.runQueue) == 0 {
			s.advanceToNextWake()
			continue
		}
		proc := s.runQueue[0]
		s.runQueue = s.runQueue[1:]

		if !proc.started {
			proc.started = true
			go proc.run()
		}
		proc.State = ProcRunning
		proc.turn <- struct{}{}
		reason := <-proc.yielded
		s.tick++

		switch reason {
		case yieldReady:
			s.runQueue = append(s.runQueue, proc)
		case yieldBlocked, yieldSuspended:
			// Not requeued here; Resume/Signal puts it back on runQueue.
		case yieldTerminated:
			// Dropped from scheduling entirely.
		}
	}
}

// advanceToNextWake fires when every live process is sleeping: jump the
// clock to the earliest wake time so sleep: never deadlocks the run.
func (s *Scheduler) advanceToNextWake() {
	if len(s.sleeping) == 0 {
		return
	}
	sort.Slice(s.sleeping, func(i, j int) bool { return s.sleeping[i].wakeAt < s.sleeping[j].wakeAt })
	s.tick = s.sleeping[0].wakeAt
	var remaining []*sleeper
	for _, sl := range s.sleeping {
		if sl.wakeAt <= s.tick {
			sl.proc.State = ProcReady
			s.runQueue = append(s.runQueue, sl.proc)
		} else {
			remaining = append(remaining, sl)
		}
	}
	s.sleeping = remaining
}

// Sleep parks proc until at least durationTicks logical ticks have
// passed. There is no wall-clock timer: the scheduler's own tick counter
// stands in for time.
func (s *Scheduler) Sleep(proc *Process, durationTicks int64) {
	s.sleeping = append(s.sleeping, &sleeper{proc: proc, wakeAt: s.tick + durationTicks})
	proc.State = ProcBlocked
	proc.yielded <- yieldBlocked
	<-proc.turn
	proc.State = ProcRunning
}

// Resume moves a Suspended process back onto the run queue.
func (s *Scheduler) Resume(proc *Process) {
	if proc.State != ProcSuspended {
		return
	}
	proc.State = ProcReady
	s.runQueue = append(s.runQueue, proc)
}

// Terminate forcibly ends proc. A Ready process is dropped from the run
// queue before it ever gets a turn; a process already Running,
// Suspended, or Blocked is simply marked Terminated and will exit the
// next time its interpreter loop checks in (RunToCompletion drops any
// process whose run() goroutine reports yieldTerminated).
func (s *Scheduler) Terminate(proc *Process) {
	if proc.State == ProcTerminated {
		return
	}
	proc.State = ProcTerminated
	kept := s.runQueue[:0:0]
	for _, p := range s.runQueue {
		if p != proc {
			kept = append(kept, p)
		}
	}
	s.runQueue = kept
}

// wake moves a Blocked process (waiting on a Semaphore or Channel) back
// onto the run queue.
func (s *Scheduler) wake(proc *Process) {
	if proc.State != ProcBlocked {
		return
	}
	proc.State = ProcReady
	s.runQueue = append(s.runQueue, proc)
}

// Semaphore is a counting semaphore used for process synchronization,
// one of the two Process wait-condition kinds.
type Semaphore struct {
	count   int
	waiting []*Process
}

// NewSemaphore creates a Semaphore with the given initial count.
func NewSemaphore(count int) *Semaphore { return &Semaphore{count: count} }

// Wait blocks proc until the semaphore's count is positive, then
// decrements it.
func (sem *Semaphore) Wait(s *Scheduler, proc *Process) {
	if sem.count > 0 {
		sem.count--
		return
	}
	sem.waiting = append(sem.waiting, proc)
	proc.State = ProcBlocked
	proc.yielded <- yieldBlocked
	<-proc.turn
	proc.State = ProcRunning
}

// Signal wakes one process waiting on the semaphore, or increments its
// count if none are waiting.
func (sem *Semaphore) Signal(s *Scheduler) {
	if len(sem.waiting) > 0 {
		proc := sem.waiting[0]
		sem.waiting = sem.waiting[1:]
		s.wake(proc)
		return
	}
	sem.count++
}

// Channel is a bounded (or unbounded when capacity is 0) FIFO used for
// message passing between processes, the second wait-condition kind.
type Channel struct {
	capacity int
	buf      []Value
	senders  []*Process
	receivers []*Process
}

// NewChannel creates a Channel. capacity == 0 means unbounded.
func NewChannel(capacity int) *Channel { return &Channel{capacity: capacity} }

// Send enqueues v, blocking proc if the channel is at capacity.
func (c *Channel) Send(s *Scheduler, proc *Process, v Value) {
	for c.capacity > 0 && len(c.buf) >= c.capacity {
		c.senders = append(c.senders, proc)
		proc.State = ProcBlocked
		proc.yielded <- yieldBlocked
		<-proc.turn
		proc.State = ProcRunning
	}
	c.buf = append(c.buf, v)
	if len(c.receivers) > 0 {
		r := c.receivers[0]
		c.receivers = c.receivers[1:]
		s.wake(r)
	}
}

// Receive dequeues and returns the next value, blocking proc until one
// is available.
func (c *Channel) Receive(s *Scheduler, proc *Process) Value {
	for len(c.buf) == 0 {
		c.receivers = append(c.receivers, proc)
		proc.State = ProcBlocked
		proc.yielded <- yieldBlocked
		<-proc.turn
		proc.State = ProcRunning
	}
	v := c.buf[0]
	c.buf = c.buf[1:]
	if len(c.senders) > 0 {
		sd := c.senders[0]
		c.senders = c.senders[1:]
		s.wake(sd)
	}
	return v
}
