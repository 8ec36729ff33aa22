package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tu-usuario/cellar-pro/internal/domain"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	mu    sync.Mutex
	items map[entity.Stream]map[string]*entity.Item
}

var _ repository.ItemRepository = (*fakeItemRepo)(nil)

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[entity.Stream]map[string]*entity.Item)}
}

func (r *fakeItemRepo) bucket(stream entity.Stream) map[string]*entity.Item {
	if r.items[stream] == nil {
		r.items[stream] = make(map[string]*entity.Item)
	}
	return r.items[stream]
}

func (r *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *item
	r.bucket(item.Stream)[item.ID] = &clone
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, stream entity.Stream, id string) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.bucket(stream)[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *fakeItemRepo) GetByName(_ context.Context, stream entity.Stream, name string) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.bucket(stream) {
		if item.Name == name {
			clone := *item
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeItemRepo) ListByStream(_ context.Context, stream entity.Stream) ([]*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Item, 0, len(r.bucket(stream)))
	for _, item := range r.bucket(stream) {
		clone := *item
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bucket(item.Stream)[item.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *item
	r.bucket(item.Stream)[item.ID] = &clone
	return nil
}

func (r *fakeItemRepo) UpdateStock(_ context.Context, stream entity.Stream, id string, delta int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.bucket(stream)[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	item.StockUnits += delta
	if item.StockUnits < 0 {
		item.StockUnits = 0
	}
	return item.StockUnits, nil
}

func (r *fakeItemRepo) UpdateStockLevel(_ context.Context, stream entity.Stream, id string, level int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.bucket(stream)[id]
	if !ok {
		return domain.ErrNotFound
	}
	item.StockLevel = level
	return nil
}

func (r *fakeItemRepo) AppendOrderEvent(_ context.Context, stream entity.Stream, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.bucket(stream)[id]
	if !ok {
		return domain.ErrNotFound
	}
	item.OrderHistory = append(item.OrderHistory, at)
	return nil
}

func (r *fakeItemRepo) ReplaceDailyStats(_ context.Context, stream entity.Stream, id string, stats []entity.DailyStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.bucket(stream)[id]
	if !ok {
		return domain.ErrNotFound
	}
	item.DailyStats = stats
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, stream entity.Stream, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bucket(stream)[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.bucket(stream), id)
	return nil
}

type fakeReportRepo struct {
	mu      sync.Mutex
	reports map[entity.Stream]map[string]*entity.DailyReport
}

var _ repository.ReportRepository = (*fakeReportRepo)(nil)

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[entity.Stream]map[string]*entity.DailyReport)}
}

func (r *fakeReportRepo) Upsert(_ context.Context, report *entity.DailyReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.reports[report.Stream] == nil {
		r.reports[report.Stream] = make(map[string]*entity.DailyReport)
	}
	clone := *report
	r.reports[report.Stream][report.DateKey] = &clone
	return nil
}

func (r *fakeReportRepo) GetByDateKey(_ context.Context, stream entity.Stream, dateKey string) (*entity.DailyReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[stream][dateKey]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *report
	return &clone, nil
}

func (r *fakeReportRepo) ListRecent(_ context.Context, stream entity.Stream, limit int) ([]*entity.DailyReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.DailyReport, 0, len(r.reports[stream]))
	for _, report := range r.reports[stream] {
		clone := *report
		out = append(out, &clone)
	}
	// date_key ISO ordena lexicográficamente igual que cronológicamente
	sort.Slice(out, func(i, j int) bool { return out[i].DateKey > out[j].DateKey })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeImageRepo struct {
	mu     sync.Mutex
	images map[entity.Stream]map[string]string
}

var _ repository.ImageRepository = (*fakeImageRepo)(nil)

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: make(map[entity.Stream]map[string]string)}
}

func (r *fakeImageRepo) GetAll(_ context.Context, stream entity.Stream) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.images[stream]))
	for id, url := range r.images[stream] {
		out[id] = url
	}
	return out, nil
}

func (r *fakeImageRepo) Put(_ context.Context, stream entity.Stream, itemID, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.images[stream] == nil {
		r.images[stream] = make(map[string]string)
	}
	r.images[stream][itemID] = url
	return nil
}

// fakeTxRunner emula la transacción con snapshot/restore del repo en memoria:
// si el callback falla, el estado previo se restaura completo.
type fakeTxRunner struct {
	repo *fakeItemRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(items repository.ItemRepository) error) error {
	snapshot := tx.snapshot()
	if err := fn(tx.repo); err != nil {
		tx.restore(snapshot)
		return err
	}
	return nil
}

func (tx *fakeTxRunner) snapshot() map[entity.Stream]map[string]*entity.Item {
	tx.repo.mu.Lock()
	defer tx.repo.mu.Unlock()
	snap := make(map[entity.Stream]map[string]*entity.Item)
	for stream, bucket := range tx.repo.items {
		snap[stream] = make(map[string]*entity.Item, len(bucket))
		for id, item := range bucket {
			clone := *item
			snap[stream][id] = &clone
		}
	}
	return snap
}

func (tx *fakeTxRunner) restore(snap map[entity.Stream]map[string]*entity.Item) {
	tx.repo.mu.Lock()
	defer tx.repo.mu.Unlock()
	tx.repo.items = snap
}
