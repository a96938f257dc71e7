package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"dimec-inventory/internal/adapters/persistence/models"
	"dimec-inventory/internal/core/domain"
)

// In-memory repository fakes. They implement just enough of the
// repository contracts for service tests; unimplemented lookups return
// gorm.ErrRecordNotFound like the real ones.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
	for _, u := range users {
		if u.ID == 0 {
			u.ID = r.nextID
		}
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeProductRepo struct {
	products map[int64]*models.Product
	nextID   int64
	adjusts  []int // record of AdjustStock deltas, in order
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[int64]*models.Product{}, nextID: 1}
	for _, p := range products {
		if p.ID == 0 {
			p.ID = r.nextID
		}
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, p *models.Product) error {
	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*models.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) List(_ context.Context) ([]*models.Product, error) {
	out := make([]*models.Product, 0, len(r.products))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock(ctx context.Context) ([]*models.Product, error) {
	all, _ := r.List(ctx)
	var out []*models.Product
	for _, p := range all {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Search(ctx context.Context, _ string) ([]*models.Product, error) {
	return r.List(ctx)
}

func (r *fakeProductRepo) Update(_ context.Context, p *models.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	delete(r.products, id)
	return nil
}

// AdjustStock mirrors the guarded update: it fails without applying
// anything when the delta would push the quantity negative.
func (r *fakeProductRepo) AdjustStock(_ context.Context, id int64, delta int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrInsufficientStock
	}
	if p.Quantity+delta < 0 {
		return domain.ErrInsufficientStock
	}
	p.Quantity += delta
	r.adjusts = append(r.adjusts, delta)
	return nil
}

func (r *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) CountLowStock(ctx context.Context) (int64, error) {
	low, _ := r.ListLowStock(ctx)
	return int64(len(low)), nil
}

type fakeIssuanceRepo struct {
	records   map[int64]*models.IssuanceRecord
	nextID    int64
	createErr error
}

func newFakeIssuanceRepo(records ...*models.IssuanceRecord) *fakeIssuanceRepo {
	r := &fakeIssuanceRepo{records: map[int64]*models.IssuanceRecord{}, nextID: 1}
	for _, rec := range records {
		if rec.ID == 0 {
			rec.ID = r.nextID
		}
		if rec.ID >= r.nextID {
			r.nextID = rec.ID + 1
		}
		r.records[rec.ID] = rec
	}
	return r
}

func (r *fakeIssuanceRepo) Create(_ context.Context, rec *models.IssuanceRecord) error {
	if r.createErr != nil {
		return r.createErr
	}
	rec.ID = r.nextID
	r.nextID++
	r.records[rec.ID] = rec
	return nil
}

func (r *fakeIssuanceRepo) GetByID(_ context.Context, id int64) (*models.IssuanceRecord, error) {
	if rec, ok := r.records[id]; ok {
		return rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeIssuanceRepo) List(_ context.Context) ([]*models.IssuanceRecord, error) {
	out := make([]*models.IssuanceRecord, 0, len(r.records))
	for id := r.nextID - 1; id >= 1; id-- {
		if rec, ok := r.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeIssuanceRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.IssuanceRecord, error) {
	all, _ := r.List(ctx)
	var out []*models.IssuanceRecord
	for _, rec := range all {
		if !rec.IssueDate.Before(start) && !rec.IssueDate.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeIssuanceRepo) Delete(_ context.Context, id int64) error {
	delete(r.records, id)
	return nil
}

func (r *fakeIssuanceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.records)), nil
}

type fakeCategoryRepo struct {
	categories map[int64]*models.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *models.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*models.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*models.Category, error) {
	out := make([]*models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *models.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

type fakeSupplierRepo struct {
	suppliers map[int64]*models.Supplier
}

func (r *fakeSupplierRepo) Create(_ context.Context, s *models.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, id int64) (*models.Supplier, error) {
	if s, ok := r.suppliers[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSupplierRepo) List(_ context.Context) ([]*models.Supplier, error) {
	out := make([]*models.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, s *models.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) Delete(_ context.Context, id int64) error {
	delete(r.suppliers, id)
	return nil
}

func (r *fakeSupplierRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.suppliers)), nil
}
