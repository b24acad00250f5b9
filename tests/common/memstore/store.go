//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for use-case tests.
// Within serializes transactions and applies their writes only on success.
package memstore

import (
	"context"
	"maps"
	"sync"
	"time"

	"storefront-backend/internal/domain/cart"
	"storefront-backend/internal/domain/coupon"
	"storefront-backend/internal/domain/order"
	"storefront-backend/internal/domain/product"
	"storefront-backend/internal/domain/user"
	"storefront-backend/internal/infra"
	"storefront-backend/internal/usecase/queries"
	"storefront-backend/internal/usecase/shared"
)

type state struct {
	orders   map[order.Number]*order.Order
	statuses map[order.Number]order.Status
	coupons  map[int64]*coupon.Coupon
	products map[int64]*product.Product
	users    map[string]*user.User
	carts    map[string]string
	settings map[string]string
	seq      int64
}

func (s *state) clone() *state {
	return &state{
		orders:   maps.Clone(s.orders),
		statuses: maps.Clone(s.statuses),
		coupons:  maps.Clone(s.coupons),
		products: maps.Clone(s.products),
		users:    maps.Clone(s.users),
		carts:    maps.Clone(s.carts),
		settings: maps.Clone(s.settings),
		seq:      s.seq,
	}
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

type Store struct {
	mu    sync.Mutex
	state *state

	// OrderInsertErr, when set, is returned by the next order insert.
	OrderInsertErr error
	// Commits counts successful Within calls.
	Commits int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{state: &state{
		orders:   map[order.Number]*order.Order{},
		statuses: map[order.Number]order.Status{},
		coupons:  map[int64]*coupon.Coupon{},
		products: map[int64]*product.Product{},
		users:    map[string]*user.User{},
		carts:    map[string]string{},
		settings: map[string]string{},
		seq:      100,
	}}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(ctx, &tx{store: s, st: work}); err != nil {
		return err
	}
	s.state = work
	s.Commits++
	return nil
}

func (s *Store) NonTx() shared.Tx {
	return &tx{store: s, autocommit: true}
}

// Seeding and inspection helpers. They bypass transactions.

func (s *Store) PutCoupon(c *coupon.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.coupons[c.ID()] = c
}

func (s *Store) Coupon(code string) *coupon.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	return findCoupon(s.state, coupon.NormalizeCode(code))
}

func (s *Store) PutProduct(p *product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.products[p.ID()] = p
}

func (s *Store) PutUser(u *user.User, rawCart string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := u.Email().String()
	s.state.users[key] = u
	s.state.carts[key] = rawCart
}

func (s *Store) PutOrder(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.orders[o.Number()] = o
	s.state.statuses[o.Number()] = o.Status()
}

func (s *Store) Order(n order.Number) *order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.orders[n]
}

func (s *Store) OrderStatus(n order.Number) order.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.statuses[n]
}

func (s *Store) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.orders)
}

func (s *Store) RawCart(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.state.carts[email]
	return raw, ok
}

func (s *Store) Setting(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.state.settings[key]
	return v, ok
}

// Read side, so queries can run against the same data.

var (
	_ queries.CartReadStore     = (*Store)(nil)
	_ queries.CouponReadStore   = (*Store)(nil)
	_ queries.SettingsReadStore = (*Store)(nil)
)

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.state.settings[key]
	if !ok {
		return "", notFound("setting")
	}
	return v, nil
}

func (s *Store) FindByOwner(_ context.Context, owner cart.Owner) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.users[owner.String()]; !ok {
		return "", notFound("user")
	}
	return s.state.carts[owner.String()], nil
}

func (s *Store) FindByCode(_ context.Context, code coupon.Code) (*coupon.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := findCoupon(s.state, code)
	if c == nil {
		return nil, notFound("coupon")
	}
	return c, nil
}

func (s *Store) List(context.Context) ([]*queries.CouponView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]*queries.CouponView, 0, len(s.state.coupons))
	for _, c := range s.state.coupons {
		views = append(views, &queries.CouponView{
			ID:            c.ID(),
			Code:          c.Code().String(),
			DiscountType:  c.Kind().String(),
			DiscountValue: c.Value(),
			MinOrderValue: c.MinOrderValue(),
			MaxDiscount:   c.MaxDiscount(),
			UsageLimit:    c.UsageLimit(),
			UsedCount:     c.UsedCount(),
			ExpiryDate:    c.ExpiryDate(),
			IsActive:      c.IsActive(),
			CreatedAt:     c.CreatedAt(),
		})
	}
	return views, nil
}

func findCoupon(st *state, code coupon.Code) *coupon.Coupon {
	for _, c := range st.coupons {
		if c.Code() == code {
			return c
		}
	}
	return nil
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func duplicate(what string) error {
	return infra.WrapRepoErr(what+" already exists", nil, infra.KindDuplicateKey)
}

// tx runs against a working copy inside Within, or against the live state
// under the store lock for NonTx.
type tx struct {
	store      *Store
	st         *state
	autocommit bool
}

func (t *tx) run(fn func(st *state) error) error {
	if !t.autocommit {
		return fn(t.st)
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return fn(t.store.state)
}

func (t *tx) Orders() shared.OrderRepository     { return orderRepo{t} }
func (t *tx) Coupons() shared.CouponRepository   { return couponRepo{t} }
func (t *tx) Products() shared.ProductRepository { return productRepo{t} }
func (t *tx) Users() shared.UserRepository       { return userRepo{t} }
func (t *tx) Settings() shared.SettingsRepository {
	return settingsRepo{t}
}

type orderRepo struct{ t *tx }

func (r orderRepo) Create(_ context.Context, o *order.Order) error {
	return r.t.run(func(st *state) error {
		if err := r.t.store.OrderInsertErr; err != nil {
			r.t.store.OrderInsertErr = nil
			return err
		}
		if _, ok := st.orders[o.Number()]; ok {
			return duplicate("order")
		}
		st.orders[o.Number()] = o
		st.statuses[o.Number()] = o.Status()
		return nil
	})
}

func (r orderRepo) UpdateStatus(_ context.Context, n order.Number, status order.Status) error {
	return r.t.run(func(st *state) error {
		if _, ok := st.orders[n]; !ok {
			return notFound("order")
		}
		st.statuses[n] = status
		return nil
	})
}

func (r orderRepo) Delete(_ context.Context, n order.Number) error {
	return r.t.run(func(st *state) error {
		if _, ok := st.orders[n]; !ok {
			return notFound("order")
		}
		delete(st.orders, n)
		delete(st.statuses, n)
		return nil
	})
}

func (r orderRepo) Reset(context.Context) error {
	return r.t.run(func(st *state) error {
		st.orders = map[order.Number]*order.Order{}
		st.statuses = map[order.Number]order.Status{}
		return nil
	})
}

type couponRepo struct{ t *tx }

func (r couponRepo) FindByCodeForUpdate(_ context.Context, code coupon.Code) (*coupon.Coupon, error) {
	var found *coupon.Coupon
	err := r.t.run(func(st *state) error {
		found = findCoupon(st, code)
		if found == nil {
			return notFound("coupon")
		}
		return nil
	})
	return found, err
}

func (r couponRepo) FindByID(_ context.Context, id int64) (*coupon.Coupon, error) {
	var found *coupon.Coupon
	err := r.t.run(func(st *state) error {
		c, ok := st.coupons[id]
		if !ok {
			return notFound("coupon")
		}
		found = c
		return nil
	})
	return found, err
}

func (r couponRepo) Create(_ context.Context, c *coupon.Coupon) (*coupon.Coupon, error) {
	var created *coupon.Coupon
	err := r.t.run(func(st *state) error {
		if findCoupon(st, c.Code()) != nil {
			return duplicate("coupon")
		}
		created = withCouponState(c, st.nextID(), 0, time.Now())
		st.coupons[created.ID()] = created
		return nil
	})
	return created, err
}

func (r couponRepo) Update(_ context.Context, c *coupon.Coupon) (*coupon.Coupon, error) {
	var updated *coupon.Coupon
	err := r.t.run(func(st *state) error {
		current, ok := st.coupons[c.ID()]
		if !ok {
			return notFound("coupon")
		}
		if other := findCoupon(st, c.Code()); other != nil && other.ID() != c.ID() {
			return duplicate("coupon")
		}
		updated = withCouponState(c, c.ID(), current.UsedCount(), current.CreatedAt())
		st.coupons[c.ID()] = updated
		return nil
	})
	return updated, err
}

func (r couponRepo) Delete(_ context.Context, id int64) error {
	return r.t.run(func(st *state) error {
		if _, ok := st.coupons[id]; !ok {
			return notFound("coupon")
		}
		delete(st.coupons, id)
		return nil
	})
}

func (r couponRepo) IncrementUsage(_ context.Context, code coupon.Code) (bool, error) {
	var changed bool
	err := r.t.run(func(st *state) error {
		c := findCoupon(st, code)
		if c == nil {
			return nil
		}
		if limit := c.UsageLimit(); limit != nil && c.UsedCount() >= *limit {
			return nil
		}
		st.coupons[c.ID()] = withCouponState(c, c.ID(), c.UsedCount()+1, c.CreatedAt())
		changed = true
		return nil
	})
	return changed, err
}

func withCouponState(c *coupon.Coupon, id int64, used int32, createdAt time.Time) *coupon.Coupon {
	return coupon.ReconstructCoupon(
		id, c.Code(), c.Kind(), c.Value(), c.MinOrderValue(), c.MaxDiscount(),
		c.UsageLimit(), used, c.ExpiryDate(), c.IsActive(), createdAt,
	)
}

type productRepo struct{ t *tx }

func (r productRepo) FindByID(_ context.Context, id int64) (*product.Product, error) {
	var found *product.Product
	err := r.t.run(func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return notFound("product")
		}
		found = p
		return nil
	})
	return found, err
}

func (r productRepo) Create(_ context.Context, p *product.Product) (*product.Product, error) {
	var created *product.Product
	err := r.t.run(func(st *state) error {
		now := time.Now()
		created = withProductID(p, st.nextID(), now, now)
		st.products[created.ID()] = created
		return nil
	})
	return created, err
}

func (r productRepo) Update(_ context.Context, p *product.Product) (*product.Product, error) {
	var updated *product.Product
	err := r.t.run(func(st *state) error {
		current, ok := st.products[p.ID()]
		if !ok {
			return notFound("product")
		}
		updated = withProductID(p, p.ID(), current.CreatedAt(), time.Now())
		st.products[p.ID()] = updated
		return nil
	})
	return updated, err
}

func (r productRepo) Delete(_ context.Context, id int64) error {
	return r.t.run(func(st *state) error {
		if _, ok := st.products[id]; !ok {
			return notFound("product")
		}
		delete(st.products, id)
		return nil
	})
}

func withProductID(p *product.Product, id int64, createdAt, updatedAt time.Time) *product.Product {
	return product.ReconstructProduct(
		id, p.Name(), p.Description(), p.Price(), p.Category(), p.Stock(), p.Rating(),
		p.Reviews(), p.Cover(), p.Gallery(), p.IsAvailable(), createdAt, updatedAt,
	)
}

type userRepo struct{ t *tx }

func (r userRepo) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	var found *user.User
	err := r.t.run(func(st *state) error {
		u, ok := st.users[email.String()]
		if !ok {
			return notFound("user")
		}
		found = u
		return nil
	})
	return found, err
}

func (r userRepo) Create(_ context.Context, u *user.User) (*user.User, error) {
	var created *user.User
	err := r.t.run(func(st *state) error {
		key := u.Email().String()
		if _, ok := st.users[key]; ok {
			return duplicate("user")
		}
		created = user.ReconstructUser(st.nextID(), u.Name(), u.Email(), u.PasswordHash(), u.Phone(), u.ExternalID(), time.Now())
		st.users[key] = created
		st.carts[key] = "[]"
		return nil
	})
	return created, err
}

func (r userRepo) UpsertExternal(_ context.Context, u *user.User) (*user.User, error) {
	var synced *user.User
	err := r.t.run(func(st *state) error {
		key := u.Email().String()
		current, ok := st.users[key]
		if !ok {
			synced = user.ReconstructUser(st.nextID(), u.Name(), u.Email(), u.PasswordHash(), u.Phone(), u.ExternalID(), time.Now())
			st.users[key] = synced
			st.carts[key] = "[]"
			return nil
		}
		phone := current.Phone()
		if phone == "" {
			phone = u.Phone()
		}
		externalID := current.ExternalID()
		if externalID == nil {
			externalID = u.ExternalID()
		}
		synced = user.ReconstructUser(current.ID(), current.Name(), current.Email(), current.PasswordHash(), phone, externalID, current.CreatedAt())
		st.users[key] = synced
		return nil
	})
	return synced, err
}

func (r userRepo) SaveCart(_ context.Context, owner cart.Owner, items cart.Items, _ time.Time) error {
	raw, err := items.Encode()
	if err != nil {
		return err
	}
	return r.t.run(func(st *state) error {
		if _, ok := st.users[owner.String()]; !ok {
			return notFound("user")
		}
		st.carts[owner.String()] = string(raw)
		return nil
	})
}

type settingsRepo struct{ t *tx }

func (r settingsRepo) Put(_ context.Context, key, value string) error {
	return r.t.run(func(st *state) error {
		st.settings[key] = value
		return nil
	})
}
