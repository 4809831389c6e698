package scheduler

import (
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Refresher is the piece of the reports service the scheduler drives.
type Refresher interface {
	RefreshAllSalesTax() (int, error)
}

// Scheduler periodically re-derives the cached inventory sales tax values so
// they never stay stale after a tax rate edit.
type Scheduler struct {
	refresher Refresher
	logger    *logrus.Logger
	interval  time.Duration
	stopChan  chan struct{}
	wg        sync.WaitGroup
	jobMutex  sync.Mutex // Ensures sequential job execution
}

// New creates a scheduler that runs a refresh sweep every interval.
func New(refresher Refresher, logger *logrus.Logger, interval time.Duration) *Scheduler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Scheduler{
		refresher: refresher,
		logger:    logger,
		interval:  interval,
		stopChan:  make(chan struct{}),
	}
}

// Start begins the scheduled sweeps, running one immediately.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.runRefresh()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.runRefresh()
		}
	}
}

func (s *Scheduler) runRefresh() {
	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	s.logger.Info("Starting sales tax refresh sweep")
	updated, err := s.refresher.RefreshAllSalesTax()
	if err != nil {
		s.logger.WithError(err).Error("Sales tax refresh sweep failed")
		return
	}
	s.logger.WithField("updated", updated).Info("Sales tax refresh sweep completed")
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}
