package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nakamauwu/hirechat/cockroach"
)

type Config struct {
	Cockroach *cockroach.Cockroach

	// Marketplace collaborators. They default to the tables
	// shared through Cockroach when left nil.
	JobPostings   JobPostings
	CompanyRoster CompanyRoster
	Candidates    Candidates

	ActivitySink      ActivitySink
	Publisher         Publisher
	BaseCtx           context.Context
	BackgroundTimeout time.Duration
}

type Service struct {
	Cockroach     *cockroach.Cockroach
	JobPostings   JobPostings
	CompanyRoster CompanyRoster
	Candidates    Candidates
	ActivitySink  ActivitySink
	Publisher     Publisher

	baseCtx           context.Context
	backgroundTimeout time.Duration
	wg                sync.WaitGroup
	errs              chan error
}

func New(cfg *Config) *Service {
	svc := &Service{
		Cockroach:     cfg.Cockroach,
		JobPostings:   cfg.JobPostings,
		CompanyRoster: cfg.CompanyRoster,
		Candidates:    cfg.Candidates,
		ActivitySink:  cfg.ActivitySink,
		Publisher:     cfg.Publisher,

		baseCtx:           cfg.BaseCtx,
		backgroundTimeout: cfg.BackgroundTimeout,
		errs:              make(chan error, 1),
	}

	if svc.JobPostings == nil {
		svc.JobPostings = cfg.Cockroach
	}
	if svc.CompanyRoster == nil {
		svc.CompanyRoster = cfg.Cockroach
	}
	if svc.Candidates == nil {
		svc.Candidates = cfg.Cockroach
	}
	if svc.ActivitySink == nil {
		svc.ActivitySink = discardActivity{}
	}
	if svc.Publisher == nil {
		svc.Publisher = discardPublisher{}
	}
	if svc.baseCtx == nil {
		svc.baseCtx = context.Background()
	}
	if svc.backgroundTimeout <= 0 {
		svc.backgroundTimeout = 15 * time.Second
	}

	return svc
}

// Errs reports errors from background work: fan-out and activity notifications.
func (svc *Service) Errs() <-chan error {
	return svc.errs
}

func (svc *Service) Close() error {
	svc.wg.Wait()
	close(svc.errs)
	return nil
}

func (svc *Service) background(fn func(ctx context.Context) error) {
	svc.wg.Go(func() {
		defer func() {
			if rcv := recover(); rcv != nil {
				select {
				case svc.errs <- fmt.Errorf("service background panic: %v", rcv):
				default:
				}
			}
		}()

		ctx, cancel := context.WithTimeout(svc.baseCtx, svc.backgroundTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			select {
			case svc.errs <- fmt.Errorf("service background error: %w", err):
			default:
			}
		}
	})
}
