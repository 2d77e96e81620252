// Seed loads a demo barbershop with a week of appointments, including a
// few deliberate double bookings, a holiday clash, time-off requests, and
// one over-capacity slot, so /api/conflicts has something to report.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"barberbook-backend/config"
	"barberbook-backend/models"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.Barbershop{},
		&models.Barber{},
		&models.Customer{},
		&models.Service{},
		&models.Appointment{},
		&models.Holiday{},
		&models.TimeOffRequest{},
		&models.ConflictScanLog{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	shop := models.Barbershop{
		Name:         "Fade District",
		Address:      gofakeit.Street() + ", " + gofakeit.City(),
		Timezone:     "UTC",
		BaseCapacity: models.DefaultBaseCapacity,
		IsActive:     true,
	}
	if err := config.DB.Create(&shop).Error; err != nil {
		log.Fatalf("seed barbershop: %v", err)
	}

	barbers, err := seedBarbers(shop.ID, 4)
	if err != nil {
		log.Fatalf("seed barbers: %v", err)
	}
	customers, err := seedCustomers(shop.ID, 30)
	if err != nil {
		log.Fatalf("seed customers: %v", err)
	}
	services, err := seedServices(shop.ID)
	if err != nil {
		log.Fatalf("seed services: %v", err)
	}
	if err := seedSchedule(shop.ID, barbers, customers, services); err != nil {
		log.Fatalf("seed schedule: %v", err)
	}

	log.Printf("seed complete, barbershop %s", shop.ID)
	fmt.Printf("export BARBERSHOP_ID=%s\n", shop.ID)
}

func seedBarbers(shopID uuid.UUID, count int) ([]models.Barber, error) {
	log.Printf("seeding %d barbers", count)

	specialties := []string{"Fades", "Beards", "Classic cuts", "Coloring"}

	barbers := make([]models.Barber, 0, count)
	for i := 0; i < count; i++ {
		barber := models.Barber{
			BarbershopID: shopID,
			Name:         gofakeit.Name(),
			Phone:        gofakeit.Phone(),
			Email:        gofakeit.Email(),
			Specialty:    specialties[i%len(specialties)],
			IsActive:     true,
		}
		if err := config.DB.Create(&barber).Error; err != nil {
			return nil, err
		}
		barbers = append(barbers, barber)
	}
	return barbers, nil
}

func seedCustomers(shopID uuid.UUID, count int) ([]models.Customer, error) {
	log.Printf("seeding %d customers", count)

	customers := make([]models.Customer, 0, count)
	for i := 0; i < count; i++ {
		customer := models.Customer{
			BarbershopID: shopID,
			Name:         gofakeit.Name(),
			Phone:        fmt.Sprintf("+1555%07d", i),
			Email:        gofakeit.Email(),
			IsActive:     true,
		}
		if err := config.DB.Create(&customer).Error; err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

func seedServices(shopID uuid.UUID) ([]models.Service, error) {
	catalog := []models.Service{
		{Name: "Haircut", Duration: 30, Price: 25, Category: "Hair"},
		{Name: "Haircut + Beard", Duration: 45, Price: 38, Category: "Hair"},
		{Name: "Beard Trim", Duration: 15, Price: 15, Category: "Beard"},
		{Name: "Hot Towel Shave", Duration: 30, Price: 30, Category: "Beard"},
		{Name: "Kids Cut", Duration: 20, Price: 18, Category: "Hair"},
		{Name: "Buzz Cut", Duration: 15, Price: 15, Category: "Hair"},
	}
	log.Printf("seeding %d services", len(catalog))

	services := make([]models.Service, 0, len(catalog))
	for _, svc := range catalog {
		svc.BarbershopID = shopID
		svc.IsActive = true
		if err := config.DB.Create(&svc).Error; err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, nil
}

func seedSchedule(shopID uuid.UUID, barbers []models.Barber, customers []models.Customer, services []models.Service) error {
	log.Println("seeding schedule")

	today := time.Now().Truncate(24 * time.Hour)
	book := func(barber models.Barber, customer models.Customer, svc models.Service, start time.Time, status string) error {
		apt := models.Appointment{
			BarbershopID: shopID,
			BarberID:     barber.ID,
			CustomerID:   customer.ID,
			ServiceID:    svc.ID,
			CustomerName: customer.Name,
			ServiceName:  svc.Name,
			StartTime:    start,
			EndTime:      start.Add(time.Duration(svc.Duration) * time.Minute),
			Status:       status,
		}
		return config.DB.Create(&apt).Error
	}

	// A normal working week: each barber gets a handful of bookings per day.
	ci := 0
	for day := 1; day <= 5; day++ {
		date := today.AddDate(0, 0, day)
		for _, barber := range barbers {
			for slot := 0; slot < 4; slot++ {
				start := date.Add(time.Duration(10+slot*2) * time.Hour)
				svc := services[gofakeit.Number(0, len(services)-1)]
				if err := book(barber, customers[ci%len(customers)], svc, start, models.AppointmentConfirmed); err != nil {
					return err
				}
				ci++
			}
		}
	}

	// Deliberate double booking for the first barber tomorrow at 10:00/10:15.
	tomorrow := today.AddDate(0, 0, 1)
	if err := book(barbers[0], customers[0], services[0], tomorrow.Add(10*time.Hour+15*time.Minute), models.AppointmentConfirmed); err != nil {
		return err
	}

	// Over-capacity slot: every barber plus one more all start at 12:00 in
	// two days.
	crowded := today.AddDate(0, 0, 2).Add(12 * time.Hour)
	for i := 0; i < len(barbers)+1; i++ {
		if err := book(barbers[i%len(barbers)], customers[(ci+i)%len(customers)], services[2], crowded, models.AppointmentConfirmed); err != nil {
			return err
		}
	}

	// Holiday clash three days out.
	holiday := models.Holiday{
		BarbershopID: shopID,
		Date:         today.AddDate(0, 0, 3),
		Reason:       "Founders Day",
	}
	if err := config.DB.Create(&holiday).Error; err != nil {
		return err
	}

	// One approved and one pending time-off request over booked days.
	timeOff := []models.TimeOffRequest{
		{
			BarbershopID: shopID,
			BarberID:     barbers[1].ID,
			StartDate:    today.AddDate(0, 0, 4),
			EndDate:      today.AddDate(0, 0, 5),
			Status:       models.TimeOffApproved,
			Reason:       "Vacation",
		},
		{
			BarbershopID: shopID,
			BarberID:     barbers[2].ID,
			StartDate:    today.AddDate(0, 0, 5),
			EndDate:      today.AddDate(0, 0, 5),
			Status:       models.TimeOffPending,
			Reason:       gofakeit.Sentence(3),
		},
	}
	for i := range timeOff {
		if err := config.DB.Create(&timeOff[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
