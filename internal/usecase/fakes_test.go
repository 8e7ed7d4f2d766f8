package usecase

import (
	"context"
	"fmt"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/pkg/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// In-memory fakes standing in for the pgx repositories and the Stripe
// processor. The rental fake shares the car map so the reserve/release
// compare-and-set behaves like the SQL it replaces.

type fakeCarRepo struct {
	cars map[uuid.UUID]*entity.Car
}

func newFakeCarRepo() *fakeCarRepo {
	return &fakeCarRepo{cars: make(map[uuid.UUID]*entity.Car)}
}

func (f *fakeCarRepo) Create(_ context.Context, car *entity.Car) error {
	c := *car
	f.cars[car.ID] = &c
	return nil
}

func (f *fakeCarRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Car, error) {
	car, ok := f.cars[id]
	if !ok {
		return nil, nil
	}
	c := *car
	return &c, nil
}

func (f *fakeCarRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Car, error) {
	var cars []*entity.Car
	for _, car := range f.cars {
		c := *car
		cars = append(cars, &c)
	}
	return cars, nil
}

func (f *fakeCarRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.cars)), nil
}

func (f *fakeCarRepo) Update(_ context.Context, car *entity.Car) error {
	if _, ok := f.cars[car.ID]; !ok {
		return fmt.Errorf("car %s not found", car.ID.String())
	}
	c := *car
	f.cars[car.ID] = &c
	return nil
}

func (f *fakeCarRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.cars[id]; !ok {
		return fmt.Errorf("car %s not found", id.String())
	}
	delete(f.cars, id)
	return nil
}

type fakeRentalRepo struct {
	rentals map[uuid.UUID]*entity.Rental
	cars    *fakeCarRepo
}

func newFakeRentalRepo(cars *fakeCarRepo) *fakeRentalRepo {
	return &fakeRentalRepo{
		rentals: make(map[uuid.UUID]*entity.Rental),
		cars:    cars,
	}
}

func (f *fakeRentalRepo) CreateAndReserveCar(_ context.Context, rental *entity.Rental) error {
	car, ok := f.cars.cars[rental.CarID]
	if !ok || !car.IsAvailable {
		return repository.ErrCarNotAvailable
	}
	car.IsAvailable = false
	r := *rental
	f.rentals[rental.ID] = &r
	return nil
}

func (f *fakeRentalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Rental, error) {
	rental, ok := f.rentals[id]
	if !ok {
		return nil, nil
	}
	r := *rental
	return &r, nil
}

func (f *fakeRentalRepo) FindAll(_ context.Context) ([]*entity.Rental, error) {
	var rentals []*entity.Rental
	for _, rental := range f.rentals {
		r := *rental
		rentals = append(rentals, &r)
	}
	return rentals, nil
}

func (f *fakeRentalRepo) Update(_ context.Context, rental *entity.Rental) error {
	if _, ok := f.rentals[rental.ID]; !ok {
		return fmt.Errorf("rental %s not found", rental.ID.String())
	}
	r := *rental
	f.rentals[rental.ID] = &r
	return nil
}

func (f *fakeRentalRepo) DeleteAndReleaseCar(_ context.Context, rentalID, carID uuid.UUID) error {
	if _, ok := f.rentals[rentalID]; !ok {
		return fmt.Errorf("rental %s not found", rentalID.String())
	}
	if car, ok := f.cars.cars[carID]; ok {
		car.IsAvailable = true
	}
	delete(f.rentals, rentalID)
	return nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (f *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	c := *p
	f.payments[p.ID] = &c
	return nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (f *fakePaymentRepo) FindByTransactionID(_ context.Context, transactionID string) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.TransactionID == transactionID {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindAll(_ context.Context) ([]*entity.Payment, error) {
	var payments []*entity.Payment
	for _, p := range f.payments {
		c := *p
		payments = append(payments, &c)
	}
	return payments, nil
}

type fakeProcessor struct {
	intents       map[string]*payment.Intent
	createErr     error
	lastAmount    int64
	lastCurrency  string
	lastMetadata  map[string]string
	createdIntent *payment.Intent
}

func newFakeProcessor() *fakeProcessor {
	return &fakeProcessor{intents: make(map[string]*payment.Intent)}
}

func (f *fakeProcessor) CreateIntent(_ context.Context, amount int64, currency string, metadata map[string]string) (*payment.Intent, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.lastAmount = amount
	f.lastCurrency = currency
	f.lastMetadata = metadata

	intent := &payment.Intent{
		ID:           "pi_" + uuid.NewString(),
		ClientSecret: "secret_" + uuid.NewString(),
		Status:       "requires_payment_method",
	}
	f.intents[intent.ID] = intent
	f.createdIntent = intent
	return intent, nil
}

func (f *fakeProcessor) RetrieveIntent(_ context.Context, id string) (*payment.Intent, error) {
	intent, ok := f.intents[id]
	if !ok {
		return nil, fmt.Errorf("%w: no such intent %s", payment.ErrProcessor, id)
	}
	return intent, nil
}

func newTestRepository() (*repository.Repository, *fakeCarRepo, *fakeRentalRepo, *fakePaymentRepo) {
	cars := newFakeCarRepo()
	rentals := newFakeRentalRepo(cars)
	payments := newFakePaymentRepo()

	return &repository.Repository{
		Car:     cars,
		Rental:  rentals,
		Payment: payments,
	}, cars, rentals, payments
}

func seedCar(cars *fakeCarRepo, rate string) *entity.Car {
	now := time.Now()
	car := &entity.Car{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Brand:       "Toyota",
		Model:       "Corolla",
		Year:        2022,
		Color:       "blue",
		DailyRate:   decimal.RequireFromString(rate),
		IsAvailable: true,
	}
	cars.cars[car.ID] = car
	return car
}
