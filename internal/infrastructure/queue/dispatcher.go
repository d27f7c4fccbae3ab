package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/medicore/hospital-system/internal/api/metrics"
	"github.com/medicore/hospital-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher fans reminders out to a fixed set of workers using consistent
// hashing on the phone number, guaranteeing per-recipient delivery ordering.
type Dispatcher struct {
	workers []chan ports.Reminder
	service ports.AppointmentService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AppointmentService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.Reminder, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Reminder, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a reminder to the worker responsible for its phone number.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(r ports.Reminder) {
	idx := d.shardIndex(r.PhoneNumber)
	d.workers[idx] <- r
	metrics.ReminderQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// EnqueueBatch enqueues multiple reminders preserving per-recipient ordering.
func (d *Dispatcher) EnqueueBatch(reminders []ports.Reminder) {
	for _, r := range reminders {
		d.Enqueue(r)
	}
}

// shardIndex maps a phone number deterministically to a worker index.
func (d *Dispatcher) shardIndex(phoneNumber string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(phoneNumber))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Reminder) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Remind(ctx, r); err != nil {
				d.log.Error().Err(err).
					Str("phone_number", r.PhoneNumber).
					Int("worker_id", id).
					Msg("reminder delivery failed")
			}
			metrics.ReminderQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}
