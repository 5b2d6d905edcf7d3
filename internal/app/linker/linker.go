// Package linker maintains the denormalized back-references between
// collections after a classroom has been durably created. Link propagation is
// decoupled from the triggering request: jobs run on a bounded worker pool,
// are retried with backoff, and fall back to a durable outbox drained by a
// background reconciler. The primary classroom write is never rolled back.
package linker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/apperrors"
)

// Appender applies an atomic classroom-id append to a single target
// document. Implementations must be safe under concurrent callers; the mongo
// repositories satisfy this with a server-side $push.
type Appender interface {
	AppendClassroom(ctx context.Context, targetID, classroomID primitive.ObjectID) error
}

// Outbox is the durable store for link jobs that exhausted their in-process
// retries.
type Outbox interface {
	Insert(ctx context.Context, job *models.LinkJob) error
	ListPending(ctx context.Context, limit int64) ([]*models.LinkJob, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Config controls the worker pool and retry behaviour
type Config struct {
	// Workers is the size of the worker pool
	Workers int
	// QueueSize bounds the job channel; Enqueue blocks when full
	QueueSize int
	// MaxAttempts is the number of in-process tries before a job is outboxed
	MaxAttempts int
	// RetryBackoff is the base delay between attempts, scaled linearly
	RetryBackoff time.Duration
	// OpTimeout bounds each store call made by a worker
	OpTimeout time.Duration
	// ReconcileInterval is how often the outbox is drained; 0 disables the
	// background reconciler (Reconcile can still be called directly)
	ReconcileInterval time.Duration
	// ReconcileBatch is the maximum number of outbox entries per drain pass
	ReconcileBatch int64
}

func (c *Config) setDefaults() {
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 256
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = 100 * time.Millisecond
	}
	if c.OpTimeout <= 0 {
		c.OpTimeout = 10 * time.Second
	}
	if c.ReconcileBatch <= 0 {
		c.ReconcileBatch = 100
	}
}

type job struct {
	kind        models.LinkTargetKind
	targetID    primitive.ObjectID
	classroomID primitive.ObjectID
}

// Maintainer owns the link-propagation pipeline. One instance serves the
// whole process; requests only touch it through EnqueueClassroomLinks.
type Maintainer struct {
	teachers Appender
	students Appender
	outbox   Outbox
	cfg      Config
	logger   zerolog.Logger

	jobs     chan job
	pending  sync.WaitGroup
	workers  sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a Maintainer. Call Start before enqueueing.
func New(teachers, students Appender, outbox Outbox, cfg Config, lgr zerolog.Logger) *Maintainer {
	cfg.setDefaults()
	return &Maintainer{
		teachers: teachers,
		students: students,
		outbox:   outbox,
		cfg:      cfg,
		logger:   lgr,
		jobs:     make(chan job, cfg.QueueSize),
		stop:     make(chan struct{}),
	}
}

// Start launches the worker pool and, when configured, the outbox reconciler
func (m *Maintainer) Start() {
	for i := 0; i < m.cfg.Workers; i++ {
		m.workers.Add(1)
		go m.worker()
	}
	if m.outbox != nil && m.cfg.ReconcileInterval > 0 {
		m.workers.Add(1)
		go m.reconcileLoop()
	}
}

// EnqueueClassroomLinks schedules the back-reference appends for a freshly
// created classroom: one job for its teacher, one per enrolled student. The
// jobs are independent of each other and none gates the caller; the creation
// response is already on its way when they run.
func (m *Maintainer) EnqueueClassroomLinks(classroom *models.Classroom) {
	m.enqueue(job{
		kind:        models.LinkTargetTeacher,
		targetID:    classroom.Teacher,
		classroomID: classroom.ID,
	})
	for _, studentID := range classroom.Students {
		m.enqueue(job{
			kind:        models.LinkTargetStudent,
			targetID:    studentID,
			classroomID: classroom.ID,
		})
	}
}

func (m *Maintainer) enqueue(j job) {
	m.pending.Add(1)
	select {
	case <-m.stop:
		// Pool is draining; run inline so the job is not lost.
		m.process(j)
		return
	case m.jobs <- j:
	}
	select {
	case <-m.stop:
		// The send can race with shutdown and land after the workers have
		// finished their drain and exited, which would strand the job and
		// block Flush until its context expires. Reclaim one queued job; if
		// a worker already took it the queue is empty.
		select {
		case queued := <-m.jobs:
			m.process(queued)
		default:
		}
	default:
	}
}

// Flush blocks until every job enqueued so far has settled: applied,
// outboxed, or dropped because its target no longer exists. Tests use it to
// await the decoupled cascade; shutdown uses it to drain.
func (m *Maintainer) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops the pool after draining queued jobs
func (m *Maintainer) Shutdown(ctx context.Context) error {
	m.stopOnce.Do(func() { close(m.stop) })
	done := make(chan struct{})
	go func() {
		m.workers.Wait()
		m.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Maintainer) worker() {
	defer m.workers.Done()
	for {
		select {
		case j := <-m.jobs:
			m.process(j)
		case <-m.stop:
			for {
				select {
				case j := <-m.jobs:
					m.process(j)
				default:
					return
				}
			}
		}
	}
}

// process applies one job, retrying in-process before falling back to the
// outbox. A missing target is terminal: retrying cannot make the document
// reappear, and deletions carry no cascade cleanup.
func (m *Maintainer) process(j job) {
	defer m.pending.Done()

	var lastErr error
	for attempt := 1; attempt <= m.cfg.MaxAttempts; attempt++ {
		err := m.apply(j.kind, j.targetID, j.classroomID)
		if err == nil {
			m.logger.Debug().
				Str("target", string(j.kind)).
				Str("targetId", j.targetID.Hex()).
				Str("classroomId", j.classroomID.Hex()).
				Msg("Back-reference appended")
			return
		}
		if isTargetMissing(err) {
			m.logger.Warn().
				Str("target", string(j.kind)).
				Str("targetId", j.targetID.Hex()).
				Str("classroomId", j.classroomID.Hex()).
				Msg("Link target missing, dropping back-reference append")
			return
		}
		lastErr = err
		if attempt < m.cfg.MaxAttempts {
			select {
			case <-time.After(time.Duration(attempt) * m.cfg.RetryBackoff):
			case <-m.stop:
				m.toOutbox(j, lastErr)
				return
			}
		}
	}
	m.toOutbox(j, lastErr)
}

func (m *Maintainer) apply(kind models.LinkTargetKind, targetID, classroomID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.OpTimeout)
	defer cancel()

	switch kind {
	case models.LinkTargetTeacher:
		return m.teachers.AppendClassroom(ctx, targetID, classroomID)
	case models.LinkTargetStudent:
		return m.students.AppendClassroom(ctx, targetID, classroomID)
	default:
		return fmt.Errorf("unknown link target kind %q", kind)
	}
}

func (m *Maintainer) toOutbox(j job, cause error) {
	lgr := m.logger.With().
		Str("target", string(j.kind)).
		Str("targetId", j.targetID.Hex()).
		Str("classroomId", j.classroomID.Hex()).
		Logger()

	if m.outbox == nil {
		lgr.Error().Err(cause).Msg("Back-reference append failed and no outbox is configured")
		return
	}

	entry := &models.LinkJob{
		TargetKind:  j.kind,
		TargetID:    j.targetID,
		ClassroomID: j.classroomID,
		Attempts:    m.cfg.MaxAttempts,
	}
	if cause != nil {
		entry.LastError = cause.Error()
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.OpTimeout)
	defer cancel()
	if err := m.outbox.Insert(ctx, entry); err != nil {
		// Worst case: the append is lost until an operator replays it by
		// hand. Log everything needed to do so.
		lgr.Error().Err(err).AnErr("cause", cause).Msg("Failed writing link job to outbox")
		return
	}
	lgr.Warn().Err(cause).Msg("Back-reference append moved to outbox")
}

func (m *Maintainer) reconcileLoop() {
	defer m.workers.Done()
	ticker := time.NewTicker(m.cfg.ReconcileInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := m.Reconcile(context.Background()); err != nil {
				m.logger.Error().Err(err).Msg("Outbox reconcile pass failed")
			}
		case <-m.stop:
			return
		}
	}
}

// Reconcile drains one batch of outboxed link jobs. Jobs whose append now
// succeeds are removed; jobs whose target is confirmed gone are removed with
// a warning; anything else stays for the next pass.
func (m *Maintainer) Reconcile(ctx context.Context) error {
	if m.outbox == nil {
		return nil
	}

	jobs, err := m.outbox.ListPending(ctx, m.cfg.ReconcileBatch)
	if err != nil {
		return fmt.Errorf("listing pending link jobs: %w", err)
	}

	for _, entry := range jobs {
		err := m.apply(entry.TargetKind, entry.TargetID, entry.ClassroomID)
		switch {
		case err == nil:
			if delErr := m.outbox.Delete(ctx, entry.ID); delErr != nil {
				m.logger.Error().Err(delErr).Str("jobId", entry.ID.Hex()).Msg("Failed removing replayed link job")
			} else {
				m.logger.Info().
					Str("target", string(entry.TargetKind)).
					Str("targetId", entry.TargetID.Hex()).
					Str("classroomId", entry.ClassroomID.Hex()).
					Msg("Outboxed back-reference replayed")
			}
		case isTargetMissing(err):
			m.logger.Warn().
				Str("target", string(entry.TargetKind)).
				Str("targetId", entry.TargetID.Hex()).
				Msg("Outboxed link target gone, abandoning job")
			if delErr := m.outbox.Delete(ctx, entry.ID); delErr != nil {
				m.logger.Error().Err(delErr).Str("jobId", entry.ID.Hex()).Msg("Failed removing abandoned link job")
			}
		default:
			m.logger.Error().Err(err).Str("jobId", entry.ID.Hex()).Msg("Outboxed link job still failing")
		}
	}
	return nil
}

func isTargetMissing(err error) bool {
	return errors.Is(err, apperrors.ErrResourceNotFound) ||
		errors.Is(err, apperrors.ErrTeacherNotFound) ||
		errors.Is(err, apperrors.ErrStudentNotFound)
}
