package service

import (
	"context"

	"github.com/nstepanov-dev/shortener/internal/model"
)

// LookupFunc ищет ранее выданный код для URL.
// Возвращает found=false, если URL ещё не сокращался
type LookupFunc func(ctx context.Context, url model.URL) (code model.Code, found bool, err error)

// BatchLookupResult содержит результат поиска кода для одного URL из батча
type BatchLookupResult struct {
	Code  model.Code
	Found bool
}

// BatchResolver выполняет поиск ранее выданных кодов для набора URL
// с использованием воркеров и fanIn паттерна
type BatchResolver struct {
	numWorkers int
}

// NewBatchResolver создает новый BatchResolver
func NewBatchResolver() *BatchResolver {
	return &BatchResolver{numWorkers: 4}
}

type lookupJob struct {
	index int
	url   model.URL
}

type lookupResult struct {
	index int
	code  model.Code
	found bool
	err   error
}

// ResolveExisting возвращает для каждого URL ранее выданный код, если он есть.
// Результаты индексированы позициями URL во входном срезе
func (r *BatchResolver) ResolveExisting(ctx context.Context, urls []model.URL, lookup LookupFunc) ([]BatchLookupResult, error) {
	results := make([]BatchLookupResult, len(urls))
	if len(urls) == 0 {
		return results, nil
	}

	numWorkers := r.numWorkers
	if len(urls) < numWorkers {
		numWorkers = len(urls)
	}

	jobs := make(chan lookupJob, len(urls))
	go func() {
		defer close(jobs)
		for i, url := range urls {
			jobs <- lookupJob{index: i, url: url}
		}
	}()

	// Каналы результатов от каждого воркера
	workerChannels := make([]chan lookupResult, numWorkers)
	for i := 0; i < numWorkers; i++ {
		workerChannels[i] = make(chan lookupResult, len(urls)/numWorkers+1)
	}

	for i := 0; i < numWorkers; i++ {
		go func(input <-chan lookupJob, output chan<- lookupResult) {
			defer close(output)
			for job := range input {
				code, found, err := lookup(ctx, job.url)
				output <- lookupResult{index: job.index, code: code, found: found, err: err}
			}
		}(jobs, workerChannels[i])
	}

	// FanIn: сливаем результаты от всех воркеров в один канал
	merged := make(chan lookupResult, len(urls))
	go func() {
		defer close(merged)
		for _, workerChan := range workerChannels {
			for result := range workerChan {
				merged <- result
			}
		}
	}()

	var firstErr error
	for result := range merged {
		if result.err != nil {
			if firstErr == nil {
				firstErr = result.err
			}
			continue
		}
		results[result.index] = BatchLookupResult{Code: result.code, Found: result.found}
	}

	if firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}
