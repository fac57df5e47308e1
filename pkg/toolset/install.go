package toolset

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/forgeware/forge/pkg/forgeid"
	"github.com/forgeware/forge/pkg/settings"
)

// installPollInterval is how often a worker re-checks whether the
// versions it depends on have finished installing.
const installPollInterval = 100 * time.Millisecond

// InstallOptions configures one Install call.
type InstallOptions struct {
	Force    bool
	Jobs     int // 0 means take settings.Get().Jobs
	Progress ProgressReporter
}

// installJob is one forge's queued install: every ToolVersion the
// ToolVersionList resolved to, plus the dependency set gating it.
type installJob struct {
	forge    forgeid.ForgeId
	versions []ToolVersion
	deps     []forgeid.ForgeId
}

// Install concurrently installs every resolved, non-disabled,
// filter-passing version in the Toolset, honoring dependency order: a
// job only starts once every forge it depends on has finished.
//
//  1. Partition jobs into "leaves" (no unresolved deps within this
//     install batch) which can start immediately, and the rest.
//  2. Stable-sort the job list (already one job per forge) by ForgeId.Id,
//     so the order workers scan jobs in never depends on input order.
//  3. Run a bounded worker pool (Settings.Jobs workers); each worker scans
//     for any not-yet-started job whose dependencies are already done,
//     marking it "installing" under a mutex before releasing the lock to
//     do the actual (slow, network-bound) install — a job stuck behind an
//     unfinished dependency never blocks a later, already-ready job.
//  4. A worker whose next candidate job still has unsatisfied deps waits
//     installPollInterval and rechecks, rather than busy-spinning.
//  5. Any panic inside a worker is caught and re-raised from Install
//     after every worker has joined, so one worker's panic doesn't
//     silently abandon the others' in-flight installs.
func (t *Toolset) Install(opts InstallOptions) error {
	jobs, err := t.buildInstallJobs()
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return nil
	}

	// buildInstallJobs already yields one job per forge (t.order is
	// deduplicated by construction), so unlike the per-request flattening
	// the original scheduler grouped after the fact, no further group_by
	// step is needed here — only this deterministic sort, which is what the
	// REDESIGN FLAG fix actually requires.
	jobs = stableSortByForge(jobs)
	jobCount := len(jobs)
	jobPtrs := make([]*installJob, jobCount)
	for i := range jobs {
		jobPtrs[i] = &jobs[i]
	}

	nJobs := opts.Jobs
	if nJobs <= 0 {
		nJobs = settings.Get().Jobs
	}
	if nJobs < 1 {
		nJobs = 1
	}
	if nJobs > jobCount {
		nJobs = jobCount
	}

	var (
		mu         sync.Mutex
		installing = map[forgeid.ForgeId]bool{}
		done       = map[forgeid.ForgeId]bool{}
		started    = make([]bool, jobCount)
		remaining  = jobCount
		wg         sync.WaitGroup
		errs       *multierror.Error
		errsMu     sync.Mutex
		panics     []interface{}
		panicsMu   sync.Mutex
	)

	inBatch := make(map[forgeid.ForgeId]bool, jobCount)
	for _, job := range jobPtrs {
		inBatch[job.forge] = true
	}

	// depsSatisfiedLocked assumes mu is already held. A dependency that is
	// not part of this batch is never installed here, so it does not block.
	depsSatisfiedLocked := func(job *installJob) bool {
		for _, dep := range job.deps {
			if inBatch[dep] && !done[dep] {
				return false
			}
		}
		return true
	}

	// claim scans every not-yet-started job for one whose dependencies are
	// already done, so a worker can always make progress on a ready job
	// even if an earlier-sorted job is still waiting on its own deps.
	claim := func() *installJob {
		for {
			mu.Lock()
			for i := 0; i < jobCount; i++ {
				if started[i] {
					continue
				}
				candidate := jobPtrs[i]
				if !depsSatisfiedLocked(candidate) {
					continue
				}
				started[i] = true
				installing[candidate.forge] = true
				mu.Unlock()
				return candidate
			}
			exhausted := remaining == 0
			mu.Unlock()
			if exhausted {
				return nil
			}
			time.Sleep(installPollInterval)
		}
	}

	worker := func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				panicsMu.Lock()
				panics = append(panics, r)
				panicsMu.Unlock()
			}
		}()
		for {
			job := claim()
			if job == nil {
				return
			}
			func() {
				// the bookkeeping runs even if the install panics, so the
				// other workers still drain the queue and return.
				defer func() {
					mu.Lock()
					done[job.forge] = true
					delete(installing, job.forge)
					remaining--
					mu.Unlock()
				}()
				if err := t.installJobVersions(job, opts); err != nil {
					errsMu.Lock()
					errs = multierror.Append(errs, err)
					errsMu.Unlock()
				}
			}()
		}
	}

	wg.Add(nJobs)
	for i := 0; i < nJobs; i++ {
		go worker()
	}
	wg.Wait()

	if len(panics) > 0 {
		panic(panics[0])
	}
	return errs.ErrorOrNil()
}

func (t *Toolset) installJobVersions(job *installJob, opts InstallOptions) error {
	backend, err := t.resolver.Get(job.forge)
	if err != nil {
		return fmt.Errorf("%s: %w", job.forge, err)
	}
	if !backend.IsInstalled() {
		if err := backend.EnsureInstalled(opts.Progress, opts.Force); err != nil {
			return fmt.Errorf("%s: installing backend: %w", job.forge, err)
		}
	}
	var errs *multierror.Error
	for _, tv := range job.versions {
		if tv.IsSystem() {
			continue
		}
		if !opts.Force && backend.IsVersionInstalled(tv) {
			continue
		}
		progress := opts.Progress
		if progress != nil {
			progress = progress.Add(tv.Style())
		}
		if err := backend.InstallVersion(InstallContext{ToolVersion: tv, Force: opts.Force, Progress: progress}); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", tv, err))
		}
	}
	return errs.ErrorOrNil()
}

// buildInstallJobs flattens the Toolset's resolved versions into one job
// per forge, carrying the dependency ForgeIds declared by each version's
// originating request. Resolve must have been called first; a forge with
// no resolved versions yet is skipped.
func (t *Toolset) buildInstallJobs() ([]installJob, error) {
	jobs := make([]installJob, 0, len(t.order))
	for _, fa := range t.order {
		if !t.passesFilter(fa) {
			continue
		}
		list := t.versions[fa]
		if len(list.Versions) == 0 {
			continue
		}
		deps := map[forgeid.ForgeId]bool{}
		for _, tv := range list.Versions {
			reqDeps, err := tv.Request.Dependencies()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", fa, err)
			}
			for _, d := range reqDeps {
				deps[d] = true
			}
		}
		depList := make([]forgeid.ForgeId, 0, len(deps))
		for d := range deps {
			depList = append(depList, d)
		}
		jobs = append(jobs, installJob{forge: fa, versions: list.Versions, deps: depList})
	}
	return jobs, nil
}

// stableSortByForge sorts jobs by ForgeId.Id, stably. This is the
// REDESIGN FLAG fix: grouping jobs by forge without first sorting can
// split one forge's versions across two non-adjacent groups if the
// input wasn't already forge-ordered, breaking the "at most one queue
// entry per forge" invariant the original group_by-after-rev relied on.
func stableSortByForge(jobs []installJob) []installJob {
	sorted := make([]installJob, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].forge.Id < sorted[j].forge.Id
	})
	return sorted
}
