package handler

// In-memory fakes implementing the store interfaces the handlers accept.
// They mirror the SQL semantics the repositories provide, including the
// sentinel errors handlers switch on.

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/train-booking-api/internal/model"
	"github.com/iliyamo/train-booking-api/internal/repository"
	"github.com/iliyamo/train-booking-api/internal/utils"
)

type fakeUserStore struct {
	users  map[string]model.User // keyed by email
	nextID uint64

	// last UpdateProfile call, for asserting partial updates
	updatedID    uint64
	updatedName  *string
	updatedPhone *string
	updatedCity  *string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]model.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, email, password string, cost int) (uint64, error) {
	if _, ok := f.users[email]; ok {
		return 0, repository.ErrEmailExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	u := model.User{ID: f.nextID, Email: email, PasswordHash: hash}
	f.nextID++
	f.users[email] = u
	return u.ID, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, id uint64, name, phone, city *string) error {
	f.updatedID = id
	f.updatedName = name
	f.updatedPhone = phone
	f.updatedCity = city
	return nil
}

func (f *fakeUserStore) ListAll(_ context.Context) ([]model.User, error) {
	out := []model.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeTrainStore struct {
	trains map[uint64]model.Train
	nextID uint64
}

func newFakeTrainStore(trains ...model.Train) *fakeTrainStore {
	f := &fakeTrainStore{trains: map[uint64]model.Train{}, nextID: 1}
	for _, t := range trains {
		if t.ID >= f.nextID {
			f.nextID = t.ID + 1
		}
		f.trains[t.ID] = t
	}
	return f
}

func (f *fakeTrainStore) Search(_ context.Context, q repository.TrainSearchQuery) ([]model.Train, error) {
	out := []model.Train{}
	for id := uint64(1); id < f.nextID; id++ {
		t, ok := f.trains[id]
		if !ok {
			continue
		}
		if q.From != "" && !strings.Contains(strings.ToLower(t.FromCity), strings.ToLower(q.From)) {
			continue
		}
		if q.To != "" && !strings.Contains(strings.ToLower(t.ToCity), strings.ToLower(q.To)) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTrainStore) ListAll(ctx context.Context) ([]model.Train, error) {
	return f.Search(ctx, repository.TrainSearchQuery{})
}

func (f *fakeTrainStore) GetByID(_ context.Context, id uint64) (model.Train, error) {
	t, ok := f.trains[id]
	if !ok {
		return model.Train{}, sql.ErrNoRows
	}
	return t, nil
}

func (f *fakeTrainStore) Insert(_ context.Context, fromCity, toCity, departure string, price float64) (uint64, error) {
	id := f.nextID
	f.nextID++
	f.trains[id] = model.Train{ID: id, FromCity: fromCity, ToCity: toCity, Time: departure, Price: price}
	return id, nil
}

func (f *fakeTrainStore) Update(_ context.Context, id uint64, price *float64, departure, fromCity, toCity *string) error {
	t, ok := f.trains[id]
	if !ok {
		return sql.ErrNoRows
	}
	if price != nil {
		t.Price = *price
	}
	if departure != nil {
		t.Time = *departure
	}
	if fromCity != nil {
		t.FromCity = *fromCity
	}
	if toCity != nil {
		t.ToCity = *toCity
	}
	f.trains[id] = t
	return nil
}

func (f *fakeTrainStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.trains[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.trains, id)
	return nil
}

type fakeOrderStore struct {
	orders map[uint64]model.Order
	nextID uint64
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[uint64]model.Order{}, nextID: 1}
}

func (f *fakeOrderStore) Create(_ context.Context, userID, trainID uint64, passengerName string, passengerAge int) (model.Order, error) {
	o := model.Order{
		ID:            f.nextID,
		UserID:        userID,
		TrainID:       trainID,
		PassengerName: passengerName,
		PassengerAge:  passengerAge,
	}
	f.nextID++
	f.orders[o.ID] = o
	return o, nil
}

func (f *fakeOrderStore) ListByUser(_ context.Context, userID uint64) ([]model.Order, error) {
	out := []model.Order{}
	for id := uint64(1); id < f.nextID; id++ {
		if o, ok := f.orders[id]; ok && o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) MarkPaid(_ context.Context, id, userID uint64) error {
	o, ok := f.orders[id]
	if !ok || o.UserID != userID {
		return sql.ErrNoRows
	}
	if o.Paid {
		return repository.ErrAlreadyPaid
	}
	o.Paid = true
	f.orders[id] = o
	return nil
}

type fakePassengerStore struct {
	passengers []model.Passenger
	nextID     uint64
}

func newFakePassengerStore(ps ...model.Passenger) *fakePassengerStore {
	f := &fakePassengerStore{nextID: 100}
	f.passengers = append(f.passengers, ps...)
	return f
}

func (f *fakePassengerStore) ListVisible(_ context.Context, userID uint64) ([]model.Passenger, error) {
	out := []model.Passenger{}
	for _, p := range f.passengers {
		if p.UserID == nil || *p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePassengerStore) Insert(_ context.Context, userID uint64, name string, age int) (uint64, error) {
	id := f.nextID
	f.nextID++
	f.passengers = append(f.passengers, model.Passenger{ID: id, UserID: &userID, Name: name, Age: age})
	return id, nil
}

type fakeSupportStore struct {
	tickets []model.SupportTicket
	nextID  uint64
}

func newFakeSupportStore() *fakeSupportStore { return &fakeSupportStore{nextID: 1} }

func (f *fakeSupportStore) ListByUser(_ context.Context, userID uint64) ([]model.SupportTicket, error) {
	out := []model.SupportTicket{}
	for _, t := range f.tickets {
		if t.UserID != nil && *t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeSupportStore) Insert(_ context.Context, userID uint64, message string) (uint64, error) {
	id := f.nextID
	f.nextID++
	f.tickets = append(f.tickets, model.SupportTicket{ID: id, UserID: &userID, Message: message})
	return id, nil
}

type fakePromotionStore struct {
	promos []model.Promotion
}

func (f *fakePromotionStore) ListAll(_ context.Context) ([]model.Promotion, error) {
	return append([]model.Promotion{}, f.promos...), nil
}
