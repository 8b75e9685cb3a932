package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/MMN3003/carbondesk/src/action/domain"
	"github.com/MMN3003/carbondesk/src/logger"
	notification "github.com/MMN3003/carbondesk/src/notification/domain"
)

const defaultFailure = "Something went wrong. Please try again."

// Action describes one submission. Work is the seam where the ledger or
// remote service call happens; everything else runs locally.
type Action struct {
	Name string
	// Validate checks local preconditions. A non-nil error rejects the submission
	// before any work starts; its message becomes the error notification.
	Validate func() error
	Work     func(ctx context.Context) error
	// Success builds the success message after Work returned, so it may embed results.
	Success func() string
	// Failure is the generic message shown when Work fails.
	Failure string
	// OnSuccess applies local state changes. Skipped once the runner is detached.
	OnSuccess func()
	// OnFailure records a failed outcome locally. Skipped once the runner is detached.
	OnFailure func(err error)
}

// Runner guards one action instance with a busy flag and reports every
// outcome to the notifier. Runners are not shared between actions.
type Runner struct {
	name     string
	notifier notification.Notifier
	logger   *logger.Logger

	mu       sync.Mutex
	busy     bool
	detached bool
	last     domain.Outcome
}

func NewRunner(name string, n notification.Notifier, logg *logger.Logger) *Runner {
	return &Runner{
		name:     name,
		notifier: n,
		logger:   logg.WithField("action", name),
	}
}

func (r *Runner) Name() string { return r.name }

func (r *Runner) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

func (r *Runner) State() domain.State {
	if r.Busy() {
		return domain.StateBusy
	}
	return domain.StateIdle
}

// LastOutcome is the outcome of the most recent finished or rejected submission.
func (r *Runner) LastOutcome() domain.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Detach marks the owning state as discarded. Work already in flight still
// runs to completion and still notifies, but its local effects are dropped.
func (r *Runner) Detach() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detached = true
}

// Submit runs the action synchronously. A submission while busy is a no-op.
func (r *Runner) Submit(ctx context.Context, a Action) domain.Result {
	r.mu.Lock()
	if r.busy {
		r.mu.Unlock()
		r.logger.Debugf("submit ignored: busy")
		return domain.Result{Outcome: domain.OutcomeSkipped, Err: domain.ErrBusy}
	}
	if a.Validate != nil {
		panicked, err := validate(a.Validate)
		if panicked {
			r.last = domain.OutcomeFailed
			r.mu.Unlock()
			failure := &domain.ActionFailure{Action: r.name, Err: err}
			r.logger.Errorf("validate: %v", failure)
			id := r.notifier.Push(notification.KindError, failureMessage(a))
			return domain.Result{Outcome: domain.OutcomeFailed, NotificationID: id, Err: failure}
		}
		if err != nil {
			r.last = domain.OutcomeRejected
			r.mu.Unlock()
			r.logger.Debugf("submit rejected: %v", err)
			id := r.notifier.Push(notification.KindError, err.Error())
			return domain.Result{Outcome: domain.OutcomeRejected, NotificationID: id, Err: err}
		}
	}
	r.busy = true
	r.mu.Unlock()

	outcome := domain.OutcomeFailed
	defer func() {
		r.mu.Lock()
		r.busy = false
		r.last = outcome
		r.mu.Unlock()
	}()

	// Once started, work is not cancelled by the caller going away.
	err := invoke(context.WithoutCancel(ctx), a.Work)

	r.mu.Lock()
	detached := r.detached
	r.mu.Unlock()

	if err != nil {
		failure := &domain.ActionFailure{Action: r.name, Err: err}
		r.logger.Errorf("%v", failure)
		if !detached && a.OnFailure != nil {
			a.OnFailure(err)
		}
		id := r.notifier.Push(notification.KindError, failureMessage(a))
		return domain.Result{Outcome: domain.OutcomeFailed, NotificationID: id, Err: failure}
	}

	msg := r.name + " completed."
	if a.Success != nil {
		msg = a.Success()
	}
	if !detached && a.OnSuccess != nil {
		a.OnSuccess()
	}
	outcome = domain.OutcomeSucceeded
	r.logger.Infof("%s", msg)
	id := r.notifier.Push(notification.KindSuccess, msg)
	return domain.Result{Outcome: domain.OutcomeSucceeded, NotificationID: id}
}

func failureMessage(a Action) string {
	if a.Failure == "" {
		return defaultFailure
	}
	return a.Failure
}

// validate runs check and reports a panic separately from a rejection.
// It is called with the runner lock held, so a panic must not escape.
func validate(check func() error) (panicked bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			panicked, err = true, fmt.Errorf("panic: %v", p)
		}
	}()
	return false, check()
}

// invoke runs work and converts a panic into an error.
func invoke(ctx context.Context, work func(context.Context) error) (err error) {
	if work == nil {
		return nil
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return work(ctx)
}
